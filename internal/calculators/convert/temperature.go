package convert

import (
	"fmt"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

const absoluteZeroC = -273.15

// Temperature converts between celsius, fahrenheit and kelvin.
// Unlike the factor-based converters these scales have offset zeros,
// so conversion routes through celsius with affine maps.
type Temperature struct{}

func (Temperature) Info() calc.Info {
	return calc.Info{
		Slug:        "temperature",
		Name:        "Temperature Converter",
		Category:    calc.CategoryConvert,
		Description: "Celsius, Fahrenheit and Kelvin",
	}
}

func (Temperature) Schema() calc.Schema {
	units := []string{"celsius", "fahrenheit", "kelvin"}
	return calc.Schema{Fields: []calc.Field{
		{Name: "value", Label: "Value", Type: calc.TypeNumber, Required: true},
		{Name: "from", Label: "From scale", Type: calc.TypeEnum, Enum: units, Required: true},
		{Name: "to", Label: "To scale", Type: calc.TypeEnum, Enum: units, Default: "celsius"},
	}}
}

func (Temperature) Compute(in calc.Input) (*calc.Result, error) {
	value := in.Number("value")

	var c float64
	switch in.Enum("from") {
	case "celsius":
		c = value
	case "fahrenheit":
		c = (value - 32) * 5 / 9
	case "kelvin":
		c = value - 273.15
	}
	if c < absoluteZeroC {
		return nil, fmt.Errorf("%.2f %s is below absolute zero", value, in.Enum("from"))
	}

	var out float64
	to := in.Enum("to")
	switch to {
	case "celsius":
		out = c
	case "fahrenheit":
		out = c*9/5 + 32
	case "kelvin":
		out = c + 273.15
	}

	return &calc.Result{
		Values: []calc.Value{
			{Name: "converted", Label: "Converted value", Value: format.RoundTo(out, 2), Unit: to},
			{Name: "celsius", Label: "In celsius", Value: format.RoundTo(c, 2), Unit: "celsius"},
		},
	}, nil
}

func (Temperature) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Temperature scales differ in both size of degree and zero point, so conversion is affine: F = C·9/5 + 32 and K = C + 273.15.",
		Sections: []calc.GuideSection{
			{Heading: "Absolute zero", Body: "Nothing can be colder than 0 K (−273.15 °C, −459.67 °F). Inputs below it are rejected rather than converted."},
		},
		FAQs: []calc.FAQ{
			{Question: "Where do the scales cross?", Answer: "Celsius and Fahrenheit agree at −40 degrees. It is the one temperature where no conversion is needed."},
		},
		Related: []string{"pressure"},
	}
}
