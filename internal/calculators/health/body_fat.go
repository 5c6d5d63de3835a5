package health

import (
	"fmt"
	"math"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// ACE body fat categories, male scale. Female cutoffs run about 10
// points higher and are shifted in Compute before classifying.
var bodyFatBands = []calc.Band{
	{UpTo: 6, Label: "essential fat", Advice: "This is the physiological floor. Staying here long-term harms hormone function."},
	{UpTo: 14, Label: "athletic", Advice: "Lean, visible muscle definition. Typical for competitive athletes in season."},
	{UpTo: 18, Label: "fit", Advice: "A lean, sustainable level for active people."},
	{UpTo: 25, Label: "average", Advice: "Typical for the general population. Health risk is modest at this level."},
	{UpTo: calc.Open, Label: "elevated", Advice: "Body fat above the average range raises metabolic risk. Gradual loss through diet and activity helps."},
}

// BodyFat estimates body fat percentage with the US Navy
// circumference method.
type BodyFat struct{}

func (BodyFat) Info() calc.Info {
	return calc.Info{
		Slug:        "body-fat",
		Name:        "Body Fat Calculator",
		Category:    calc.CategoryHealth,
		Description: "US Navy tape-measure body fat estimate",
	}
}

func (BodyFat) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "sex", Label: "Sex", Type: calc.TypeEnum, Enum: []string{"male", "female"}, Required: true},
		{Name: "height", Label: "Height", Type: calc.TypeNumber, Unit: "cm", Required: true, Min: calc.Ptr(minHeightCm), Max: calc.Ptr(maxHeightCm)},
		{Name: "neck", Label: "Neck circumference", Type: calc.TypeNumber, Unit: "cm", Required: true, Min: calc.Ptr(20), Max: calc.Ptr(80)},
		{Name: "waist", Label: "Waist circumference", Type: calc.TypeNumber, Unit: "cm", Required: true, Min: calc.Ptr(40), Max: calc.Ptr(300)},
		{Name: "hip", Label: "Hip circumference", Type: calc.TypeNumber, Unit: "cm", Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(300),
			Help: "required for the female equation"},
	}}
}

func (BodyFat) Compute(in calc.Input) (*calc.Result, error) {
	sex := in.Enum("sex")
	height := in.Number("height")
	neck := in.Number("neck")
	waist := in.Number("waist")
	hip := in.Number("hip")

	var pct float64
	switch sex {
	case "male":
		if waist <= neck {
			return nil, fmt.Errorf("waist must be larger than neck for the male equation")
		}
		pct = 495/(1.0324-0.19077*math.Log10(waist-neck)+0.15456*math.Log10(height)) - 450
	default:
		if hip <= 0 {
			return nil, fmt.Errorf("hip circumference is required for the female equation")
		}
		if waist+hip <= neck {
			return nil, fmt.Errorf("waist plus hip must be larger than neck")
		}
		pct = 495/(1.29579-0.35004*math.Log10(waist+hip-neck)+0.22100*math.Log10(height)) - 450
	}

	if pct < 2 || pct > 70 {
		return nil, fmt.Errorf("measurements produce an implausible body fat estimate; re-check the tape readings")
	}

	// Bands are on the male scale; shift female readings into it.
	scaled := pct
	if sex == "female" {
		scaled -= 10
	}

	return &calc.Result{
		Values: []calc.Value{
			{Name: "body_fat", Label: "Body fat", Value: format.RoundTo(pct, 1), Unit: "%"},
			{Name: "lean_pct", Label: "Lean mass share", Value: format.RoundTo(100-pct, 1), Unit: "%"},
		},
		Tiers: []calc.Tier{
			calc.Classify("body_fat", scaled, bodyFatBands),
		},
		Notes: []string{"Tape-measure estimates carry roughly ±3 percentage points of error. Measure at the same time of day for consistent trends."},
	}, nil
}

func (BodyFat) Guide() calc.Guide {
	return calc.Guide{
		Summary: "The US Navy method estimates body fat from tape measurements of the neck, waist and, for women, hips.",
		Sections: []calc.GuideSection{
			{Heading: "Measuring", Body: "Measure the neck just below the larynx, the waist at the navel, and the hips at their widest point. Keep the tape snug but not compressing."},
			{Heading: "Accuracy", Body: "Against DEXA scans the method is accurate to within a few percentage points for most body types. It drifts for very muscular or very lean physiques."},
		},
		FAQs: []calc.FAQ{
			{Question: "Why does the female equation need hips?", Answer: "Women carry proportionally more fat in the hips, so the regression was fitted with that circumference included."},
		},
		Related: []string{"bmi", "ideal-weight", "tdee"},
	}
}
