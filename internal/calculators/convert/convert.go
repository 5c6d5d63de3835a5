// Package convert implements unit converters. All except temperature
// reduce to a factor table keyed on a base unit; temperature needs an
// affine mapping through celsius.
package convert

import (
	"fmt"
	"sort"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// factorConverter is the shared engine behind the linear converters.
// factors map each unit to its size in the base unit.
type factorConverter struct {
	slug        string
	name        string
	description string
	quantity    string
	base        string
	factors     map[string]float64
	guide       calc.Guide
}

func (f factorConverter) Info() calc.Info {
	return calc.Info{
		Slug:        f.slug,
		Name:        f.name,
		Category:    calc.CategoryConvert,
		Description: f.description,
	}
}

func (f factorConverter) units() []string {
	us := make([]string, 0, len(f.factors))
	for u := range f.factors {
		us = append(us, u)
	}
	sort.Strings(us)
	return us
}

func (f factorConverter) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "value", Label: "Value", Type: calc.TypeNumber, Required: true},
		{Name: "from", Label: "From unit", Type: calc.TypeEnum, Enum: f.units(), Required: true},
		{Name: "to", Label: "To unit", Type: calc.TypeEnum, Enum: f.units(), Required: true},
	}}
}

func (f factorConverter) Compute(in calc.Input) (*calc.Result, error) {
	value := in.Number("value")
	from := in.Enum("from")
	to := in.Enum("to")
	if value < 0 {
		return nil, fmt.Errorf("%s cannot be negative", f.quantity)
	}

	inBase := value * f.factors[from]
	converted := inBase / f.factors[to]

	return &calc.Result{
		Values: []calc.Value{
			{Name: "converted", Label: "Converted value", Value: format.RoundTo(converted, 6), Unit: to},
			{Name: "base", Label: "In " + f.base, Value: format.RoundTo(inBase, 6), Unit: f.base},
		},
	}, nil
}

func (f factorConverter) Guide() calc.Guide { return f.guide }

// Length converts between metric and imperial length units.
var Length = factorConverter{
	slug:        "length",
	name:        "Length Converter",
	description: "Metric and imperial length units",
	quantity:    "length",
	base:        "m",
	factors: map[string]float64{
		"mm": 0.001,
		"cm": 0.01,
		"m":  1,
		"km": 1000,
		"in": 0.0254,
		"ft": 0.3048,
		"yd": 0.9144,
		"mi": 1609.344,
	},
	guide: calc.Guide{
		Summary: "Length conversion through meters. The imperial units are defined exactly against the meter: one inch is 25.4 mm by definition.",
		FAQs: []calc.FAQ{
			{Question: "Is a mile exactly 1609.344 meters?", Answer: "Yes. Since 1959 the international yard is defined as exactly 0.9144 m, which fixes the statute mile at 1609.344 m."},
		},
		Related: []string{"mass", "speed"},
	},
}

// Mass converts between metric and imperial mass units.
var Mass = factorConverter{
	slug:        "mass",
	name:        "Mass Converter",
	description: "Metric and imperial mass units",
	quantity:    "mass",
	base:        "kg",
	factors: map[string]float64{
		"mg":    1e-6,
		"g":     0.001,
		"kg":    1,
		"t":     1000,
		"oz":    0.028349523125,
		"lb":    0.45359237,
		"stone": 6.35029318,
	},
	guide: calc.Guide{
		Summary: "Mass conversion through kilograms. The avoirdupois pound is defined as exactly 0.45359237 kg.",
		FAQs: []calc.FAQ{
			{Question: "Is this weight or mass?", Answer: "Mass. Scales display mass by convention; weight is the gravitational force on it and is measured in newtons."},
		},
		Related: []string{"length"},
	},
}

// Pressure converts between common pressure units.
var Pressure = factorConverter{
	slug:        "pressure",
	name:        "Pressure Converter",
	description: "Pascals, bar, atmospheres, psi and torr",
	quantity:    "pressure",
	base:        "Pa",
	factors: map[string]float64{
		"Pa":   1,
		"kPa":  1000,
		"MPa":  1e6,
		"bar":  1e5,
		"atm":  101325,
		"psi":  6894.757293168,
		"torr": 101325.0 / 760,
	},
	guide: calc.Guide{
		Summary: "Pressure conversion through pascals. One standard atmosphere is defined as exactly 101325 Pa, and a torr as 1/760 of it.",
		FAQs: []calc.FAQ{
			{Question: "Are bar and atmosphere the same?", Answer: "Close but not equal: a bar is exactly 100 kPa while an atmosphere is 101.325 kPa, about 1.3% higher."},
		},
		Related: []string{"mass"},
	},
}

// Speed converts between common speed units.
var Speed = factorConverter{
	slug:        "speed",
	name:        "Speed Converter",
	description: "m/s, km/h, mph and knots",
	quantity:    "speed",
	base:        "m/s",
	factors: map[string]float64{
		"m/s":  1,
		"km/h": 1000.0 / 3600,
		"mph":  1609.344 / 3600,
		"knot": 1852.0 / 3600,
	},
	guide: calc.Guide{
		Summary: "Speed conversion through meters per second. A knot is one nautical mile (1852 m) per hour.",
		FAQs: []calc.FAQ{
			{Question: "Why do ships and aircraft use knots?", Answer: "A nautical mile is one minute of latitude, so speeds in knots map directly onto chart navigation."},
		},
		Related: []string{"length", "running-pace"},
	},
}

// DataSize converts between decimal and binary data size units.
var DataSize = factorConverter{
	slug:        "data-size",
	name:        "Data Size Converter",
	description: "Bytes through terabytes, decimal and binary",
	quantity:    "data size",
	base:        "B",
	factors: map[string]float64{
		"B":   1,
		"KB":  1e3,
		"MB":  1e6,
		"GB":  1e9,
		"TB":  1e12,
		"KiB": 1024,
		"MiB": 1024 * 1024,
		"GiB": 1024 * 1024 * 1024,
		"TiB": 1024 * 1024 * 1024 * 1024,
	},
	guide: calc.Guide{
		Summary: "Data size conversion through bytes, covering both decimal (KB = 1000 B) and binary (KiB = 1024 B) prefixes.",
		Sections: []calc.GuideSection{
			{Heading: "Why two systems", Body: "Storage vendors and networking use decimal prefixes; memory and many operating systems use binary ones. The gap compounds with scale: a decimal terabyte is about 9% smaller than a binary tebibyte."},
		},
		FAQs: []calc.FAQ{
			{Question: "Why does my 1 TB drive show as 931 GB?", Answer: "The drive is 10¹² bytes; the operating system divides by 1024³ and labels the result GB. Both numbers describe the same capacity."},
		},
		Related: []string{"length"},
	},
}
