// Package health implements body and fitness calculators: body mass
// index, energy expenditure, body composition and hydration estimates.
// Formulas follow the widely published clinical conventions (WHO BMI
// cutoffs, Mifflin-St Jeor, the US Navy circumference method).
package health

import (
	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

const (
	minHeightCm = 50.0
	maxHeightCm = 272.0
	minWeightKg = 10.0
	maxWeightKg = 650.0
	minAge      = 15.0
	maxAge      = 120.0
)

// WHO adult cutoffs.
var bmiBands = []calc.Band{
	{UpTo: 18.5, Label: "underweight", Advice: "A BMI below 18.5 may indicate insufficient body mass. Consider discussing nutrition with a professional."},
	{UpTo: 25, Label: "normal weight", Advice: "Your BMI sits in the range associated with the lowest health risk for most adults."},
	{UpTo: 30, Label: "overweight", Advice: "A BMI between 25 and 30 is associated with elevated health risk. Modest changes in diet and activity help."},
	{UpTo: calc.Open, Label: "obese", Advice: "A BMI of 30 or more carries significant health risk. Medical guidance is recommended."},
}

// BMI computes body mass index from height and weight.
type BMI struct{}

func (BMI) Info() calc.Info {
	return calc.Info{
		Slug:        "bmi",
		Name:        "BMI Calculator",
		Category:    calc.CategoryHealth,
		Description: "Body mass index with WHO weight classification",
	}
}

func (BMI) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "height", Label: "Height", Type: calc.TypeNumber, Unit: "cm", Required: true, Min: calc.Ptr(minHeightCm), Max: calc.Ptr(maxHeightCm)},
		{Name: "weight", Label: "Weight", Type: calc.TypeNumber, Unit: "kg", Required: true, Min: calc.Ptr(minWeightKg), Max: calc.Ptr(maxWeightKg)},
	}}
}

func (BMI) Compute(in calc.Input) (*calc.Result, error) {
	heightM := in.Number("height") / 100
	weight := in.Number("weight")

	bmi := weight / (heightM * heightM)

	// Healthy-range weights for this height, from the 18.5 and 25 cutoffs.
	lowKg := 18.5 * heightM * heightM
	highKg := 25 * heightM * heightM

	return &calc.Result{
		Values: []calc.Value{
			{Name: "bmi", Label: "Body mass index", Value: format.RoundTo(bmi, 1)},
			{Name: "healthy_low", Label: "Healthy range lower bound", Value: format.RoundTo(lowKg, 1), Unit: "kg"},
			{Name: "healthy_high", Label: "Healthy range upper bound", Value: format.RoundTo(highKg, 1), Unit: "kg"},
		},
		Tiers: []calc.Tier{
			calc.Classify("bmi", bmi, bmiBands),
		},
	}, nil
}

func (BMI) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Body mass index divides weight in kilograms by height in meters squared. It is a population screening tool, not a diagnosis.",
		Sections: []calc.GuideSection{
			{Heading: "How it works", Body: "BMI = weight / height². The WHO classifies adult BMI as underweight below 18.5, normal up to 25, overweight up to 30, and obese above that."},
			{Heading: "Limitations", Body: "BMI ignores body composition. Muscular athletes often read as overweight, and older adults can read as normal while carrying little muscle. Pair it with a body fat estimate for a fuller picture."},
		},
		FAQs: []calc.FAQ{
			{Question: "Does BMI apply to children?", Answer: "Not with adult cutoffs. Children are assessed against age- and sex-specific growth percentiles."},
			{Question: "Is a BMI of 24.9 meaningfully different from 25.1?", Answer: "No. The cutoffs are conventions over a continuous risk curve, not cliffs."},
		},
		Related: []string{"body-fat", "ideal-weight", "bmr"},
	}
}
