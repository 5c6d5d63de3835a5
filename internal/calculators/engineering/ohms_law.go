package engineering

import (
	"fmt"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

var powerBands = []calc.Band{
	{UpTo: 0.25, Label: "signal level", Advice: "Standard quarter-watt resistors handle this comfortably."},
	{UpTo: 5, Label: "power resistor territory", Advice: "Use a component rated for the dissipation with margin; it will run warm."},
	{UpTo: calc.Open, Label: "serious heat", Advice: "Dissipation at this level needs heatsinking and thermal design, not just a bigger resistor."},
}

// OhmsLaw solves V = I·R and P = V·I from any two known quantities.
type OhmsLaw struct{}

func (OhmsLaw) Info() calc.Info {
	return calc.Info{
		Slug:        "ohms-law",
		Name:        "Ohm's Law Calculator",
		Category:    calc.CategoryEngineering,
		Description: "Voltage, current, resistance and power from any two",
	}
}

func (OhmsLaw) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "known", Label: "Known pair", Type: calc.TypeEnum,
			Enum: []string{"voltage_current", "voltage_resistance", "current_resistance"}, Required: true},
		{Name: "first", Label: "First value", Type: calc.TypeNumber, Required: true, Min: calc.Ptr(1e-9),
			Help: "voltage (V) or current (A), per the chosen pair"},
		{Name: "second", Label: "Second value", Type: calc.TypeNumber, Required: true, Min: calc.Ptr(1e-9),
			Help: "current (A) or resistance (Ω), per the chosen pair"},
	}}
}

func (OhmsLaw) Compute(in calc.Input) (*calc.Result, error) {
	a := in.Number("first")
	b := in.Number("second")

	var v, i, r float64
	switch in.Enum("known") {
	case "voltage_current":
		v, i = a, b
		r = v / i
	case "voltage_resistance":
		v, r = a, b
		i = v / r
	case "current_resistance":
		i, r = a, b
		v = i * r
	default:
		return nil, fmt.Errorf("unknown pair %q", in.Enum("known"))
	}
	p := v * i

	return &calc.Result{
		Values: []calc.Value{
			{Name: "voltage", Label: "Voltage", Value: format.RoundTo(v, 4), Unit: "V"},
			{Name: "current", Label: "Current", Value: format.RoundTo(i, 4), Unit: "A"},
			{Name: "resistance", Label: "Resistance", Value: format.RoundTo(r, 4), Unit: "Ω"},
			{Name: "power", Label: "Power", Value: format.RoundTo(p, 4), Unit: "W"},
		},
		Tiers: []calc.Tier{
			calc.Classify("power", p, powerBands),
		},
	}, nil
}

func (OhmsLaw) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Ohm's law relates voltage, current and resistance in a linear circuit element: V = I·R. Power follows as P = V·I.",
		Sections: []calc.GuideSection{
			{Heading: "The four quantities", Body: "Knowing any two of voltage, current and resistance fixes the third, and power drops out from the pair V and I. The derived forms P = I²R and P = V²/R are the same identity rearranged."},
		},
		FAQs: []calc.FAQ{
			{Question: "Does this apply to LEDs or motors?", Answer: "Not directly. Ohm's law describes linear resistive elements. Diodes, motors and other nonlinear loads need their own characteristic curves."},
		},
		Related: []string{"kinetic-energy"},
	}
}
