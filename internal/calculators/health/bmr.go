package health

import (
	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

var bmrBands = []calc.Band{
	{UpTo: 1200, Label: "low", Advice: "A low resting burn is common for smaller or older bodies. Strength training raises it over time."},
	{UpTo: 1800, Label: "typical", Advice: "Your resting metabolism is in the range typical for most adults."},
	{UpTo: calc.Open, Label: "high", Advice: "A larger or more muscular body burns more at rest. Fuel accordingly."},
}

// BMR estimates basal metabolic rate with the Mifflin-St Jeor equation.
type BMR struct{}

func (BMR) Info() calc.Info {
	return calc.Info{
		Slug:        "bmr",
		Name:        "BMR Calculator",
		Category:    calc.CategoryHealth,
		Description: "Resting calorie burn via Mifflin-St Jeor",
	}
}

func (BMR) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "sex", Label: "Sex", Type: calc.TypeEnum, Enum: []string{"male", "female"}, Required: true},
		{Name: "age", Label: "Age", Type: calc.TypeInteger, Unit: "years", Required: true, Min: calc.Ptr(minAge), Max: calc.Ptr(maxAge)},
		{Name: "height", Label: "Height", Type: calc.TypeNumber, Unit: "cm", Required: true, Min: calc.Ptr(minHeightCm), Max: calc.Ptr(maxHeightCm)},
		{Name: "weight", Label: "Weight", Type: calc.TypeNumber, Unit: "kg", Required: true, Min: calc.Ptr(minWeightKg), Max: calc.Ptr(maxWeightKg)},
	}}
}

func (BMR) Compute(in calc.Input) (*calc.Result, error) {
	bmr := mifflinStJeor(in.Enum("sex"), in.Number("weight"), in.Number("height"), float64(in.Int("age")))

	return &calc.Result{
		Values: []calc.Value{
			{Name: "bmr", Label: "Basal metabolic rate", Value: format.Round2(bmr), Unit: "kcal/day"},
			{Name: "bmr_weekly", Label: "Weekly resting burn", Value: format.Round2(bmr * 7), Unit: "kcal"},
		},
		Tiers: []calc.Tier{
			calc.Classify("bmr", bmr, bmrBands),
		},
		Notes: []string{"BMR is the energy your body uses at complete rest. Daily needs are higher; see the TDEE calculator."},
	}, nil
}

// mifflinStJeor returns resting calories per day. The 1990 equation
// outperforms Harris-Benedict on modern populations.
func mifflinStJeor(sex string, weightKg, heightCm, age float64) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*age
	if sex == "male" {
		return base + 5
	}
	return base - 161
}

func (BMR) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Basal metabolic rate is the energy your body consumes at complete rest for breathing, circulation and cell maintenance.",
		Sections: []calc.GuideSection{
			{Heading: "The equation", Body: "Mifflin-St Jeor: 10·weight + 6.25·height − 5·age, plus 5 for males or minus 161 for females (weight in kg, height in cm)."},
		},
		FAQs: []calc.FAQ{
			{Question: "Why not Harris-Benedict?", Answer: "Mifflin-St Jeor, published in 1990, tracks measured resting energy expenditure more closely in validation studies and is the equation most dietitians use today."},
		},
		Related: []string{"tdee", "bmi", "water-intake"},
	}
}
