package health

import (
	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// Standard physical activity level multipliers applied to BMR.
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

var tdeeBands = []calc.Band{
	{UpTo: 1800, Label: "low expenditure", Advice: "Smaller bodies and desk-bound days burn less. Watch portion sizes if weight is creeping up."},
	{UpTo: 2600, Label: "moderate expenditure", Advice: "A typical daily burn for an active adult. Maintenance calories sit right here."},
	{UpTo: calc.Open, Label: "high expenditure", Advice: "Heavy training or physical work drives needs up. Underfueling at this level costs recovery."},
}

// TDEE estimates total daily energy expenditure from BMR and an
// activity multiplier, plus cut and surplus targets.
type TDEE struct{}

func (TDEE) Info() calc.Info {
	return calc.Info{
		Slug:        "tdee",
		Name:        "TDEE Calculator",
		Category:    calc.CategoryHealth,
		Description: "Daily calorie needs by activity level",
	}
}

func (TDEE) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "sex", Label: "Sex", Type: calc.TypeEnum, Enum: []string{"male", "female"}, Required: true},
		{Name: "age", Label: "Age", Type: calc.TypeInteger, Unit: "years", Required: true, Min: calc.Ptr(minAge), Max: calc.Ptr(maxAge)},
		{Name: "height", Label: "Height", Type: calc.TypeNumber, Unit: "cm", Required: true, Min: calc.Ptr(minHeightCm), Max: calc.Ptr(maxHeightCm)},
		{Name: "weight", Label: "Weight", Type: calc.TypeNumber, Unit: "kg", Required: true, Min: calc.Ptr(minWeightKg), Max: calc.Ptr(maxWeightKg)},
		{Name: "activity", Label: "Activity level", Type: calc.TypeEnum,
			Enum: []string{"sedentary", "light", "moderate", "active", "very_active"}, Default: "moderate",
			Help: "sedentary = desk job, very_active = hard daily training or physical work"},
	}}
}

func (TDEE) Compute(in calc.Input) (*calc.Result, error) {
	bmr := mifflinStJeor(in.Enum("sex"), in.Number("weight"), in.Number("height"), float64(in.Int("age")))
	tdee := bmr * activityFactors[in.Enum("activity")]

	return &calc.Result{
		Values: []calc.Value{
			{Name: "tdee", Label: "Maintenance calories", Value: format.Round2(tdee), Unit: "kcal/day"},
			{Name: "bmr", Label: "Basal metabolic rate", Value: format.Round2(bmr), Unit: "kcal/day"},
			{Name: "cut", Label: "Weight-loss target (−20%)", Value: format.Round2(tdee * 0.8), Unit: "kcal/day"},
			{Name: "bulk", Label: "Weight-gain target (+10%)", Value: format.Round2(tdee * 1.1), Unit: "kcal/day"},
		},
		Tiers: []calc.Tier{
			calc.Classify("tdee", tdee, tdeeBands),
		},
	}, nil
}

func (TDEE) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Total daily energy expenditure scales your resting burn by how active your days are. Eat at it to maintain, below it to lose, above it to gain.",
		Sections: []calc.GuideSection{
			{Heading: "Activity multipliers", Body: "Sedentary ×1.2, light ×1.375, moderate ×1.55, active ×1.725, very active ×1.9. Most people overestimate their level; when in doubt pick the lower one."},
			{Heading: "Cut and bulk targets", Body: "A 20% deficit loses roughly half a kilogram per week for an average adult. A 10% surplus supports muscle gain with limited fat gain."},
		},
		FAQs: []calc.FAQ{
			{Question: "How accurate is this?", Answer: "Expect ±10%. Track weight for two or three weeks at the suggested intake and adjust by 100-200 kcal based on the trend."},
		},
		Related: []string{"bmr", "bmi", "one-rep-max"},
	}
}
