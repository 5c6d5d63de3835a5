package health

import (
	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

var waterBands = []calc.Band{
	{UpTo: 2, Label: "light", Advice: "A modest daily target that most people meet through normal drinking."},
	{UpTo: 3.5, Label: "moderate", Advice: "Spread intake across the day rather than drinking large amounts at once."},
	{UpTo: calc.Open, Label: "heavy", Advice: "Long training sessions in heat drive needs this high. Include electrolytes, not just water."},
}

// WaterIntake estimates a daily fluid target from body weight and
// exercise time.
type WaterIntake struct{}

func (WaterIntake) Info() calc.Info {
	return calc.Info{
		Slug:        "water-intake",
		Name:        "Water Intake Calculator",
		Category:    calc.CategoryHealth,
		Description: "Daily hydration target from weight and exercise",
	}
}

func (WaterIntake) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "weight", Label: "Weight", Type: calc.TypeNumber, Unit: "kg", Required: true, Min: calc.Ptr(minWeightKg), Max: calc.Ptr(maxWeightKg)},
		{Name: "exercise_minutes", Label: "Exercise per day", Type: calc.TypeNumber, Unit: "min", Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(600)},
	}}
}

func (WaterIntake) Compute(in calc.Input) (*calc.Result, error) {
	weight := in.Number("weight")
	exercise := in.Number("exercise_minutes")

	// 35 ml per kg baseline plus 350 ml per half hour of exercise.
	baseline := weight * 0.035
	extra := exercise / 30 * 0.35
	total := baseline + extra

	return &calc.Result{
		Values: []calc.Value{
			{Name: "total", Label: "Daily target", Value: format.RoundTo(total, 2), Unit: "L"},
			{Name: "baseline", Label: "Baseline need", Value: format.RoundTo(baseline, 2), Unit: "L"},
			{Name: "exercise_extra", Label: "Exercise addition", Value: format.RoundTo(extra, 2), Unit: "L"},
			{Name: "glasses", Label: "Glasses (250 ml)", Value: format.RoundTo(total/0.25, 0)},
		},
		Tiers: []calc.Tier{
			calc.Classify("total", total, waterBands),
		},
		Notes: []string{"Food typically covers around 20% of fluid needs, so the drinking target can run a little under the total."},
	}, nil
}

func (WaterIntake) Guide() calc.Guide {
	return calc.Guide{
		Summary: "A weight-based hydration estimate: 35 ml per kilogram of body weight, plus 350 ml for each half hour of exercise.",
		Sections: []calc.GuideSection{
			{Heading: "Adjusting for conditions", Body: "Heat, altitude and illness all raise fluid needs beyond this estimate. Urine color is the practical day-to-day check: pale straw is the target."},
		},
		FAQs: []calc.FAQ{
			{Question: "Do coffee and tea count?", Answer: "Yes. The diuretic effect of normal caffeine intake is smaller than the fluid delivered."},
		},
		Related: []string{"tdee", "bmr"},
	}
}
