package health

import (
	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

const inchCm = 2.54

// IdealWeight estimates a reference body weight from height using
// three published formulas and reports their average.
type IdealWeight struct{}

func (IdealWeight) Info() calc.Info {
	return calc.Info{
		Slug:        "ideal-weight",
		Name:        "Ideal Weight Calculator",
		Category:    calc.CategoryHealth,
		Description: "Devine, Robinson and Miller reference weights",
	}
}

func (IdealWeight) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "sex", Label: "Sex", Type: calc.TypeEnum, Enum: []string{"male", "female"}, Required: true},
		{Name: "height", Label: "Height", Type: calc.TypeNumber, Unit: "cm", Required: true, Min: calc.Ptr(140), Max: calc.Ptr(maxHeightCm)},
	}}
}

func (IdealWeight) Compute(in calc.Input) (*calc.Result, error) {
	male := in.Enum("sex") == "male"
	// The formulas are specified in kg per inch over five feet.
	over := in.Number("height")/inchCm - 60
	if over < 0 {
		over = 0
	}

	var devine, robinson, miller float64
	if male {
		devine = 50 + 2.3*over
		robinson = 52 + 1.9*over
		miller = 56.2 + 1.41*over
	} else {
		devine = 45.5 + 2.3*over
		robinson = 49 + 1.7*over
		miller = 53.1 + 1.36*over
	}
	avg := (devine + robinson + miller) / 3

	return &calc.Result{
		Values: []calc.Value{
			{Name: "average", Label: "Average of the three", Value: format.RoundTo(avg, 1), Unit: "kg"},
			{Name: "devine", Label: "Devine (1974)", Value: format.RoundTo(devine, 1), Unit: "kg"},
			{Name: "robinson", Label: "Robinson (1983)", Value: format.RoundTo(robinson, 1), Unit: "kg"},
			{Name: "miller", Label: "Miller (1983)", Value: format.RoundTo(miller, 1), Unit: "kg"},
		},
		Notes: []string{"These formulas were built for drug dosing, not aesthetics. A healthy weight spans a range around these figures."},
	}, nil
}

func (IdealWeight) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Three classic height-based formulas estimate a reference body weight. They agree best between 160 and 190 cm.",
		Sections: []calc.GuideSection{
			{Heading: "Origins", Body: "Devine's 1974 formula was derived for medication dosing. Robinson and Miller refitted it in 1983 against insurance mortality tables. All three add a fixed amount per inch over five feet."},
		},
		FAQs: []calc.FAQ{
			{Question: "Which formula should I trust?", Answer: "None individually. The average of the three is a reasonable reference point, and the healthy BMI range gives the honest answer: a span, not a single number."},
		},
		Related: []string{"bmi", "body-fat"},
	}
}
