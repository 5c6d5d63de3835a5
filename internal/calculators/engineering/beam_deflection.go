// Package engineering implements mechanics and electronics
// calculators built on textbook closed forms: Euler-Bernoulli beam
// deflection, Ohm's law, ideal projectile motion and kinetic energy.
package engineering

import (
	"fmt"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// Serviceability is judged against the span/360 limit common in
// building codes for live-load deflection.
var deflectionBands = []calc.Band{
	{UpTo: 1, Label: "within span/360", Advice: "Deflection satisfies the usual serviceability limit for floors and finished ceilings."},
	{UpTo: 1.5, Label: "within span/240", Advice: "Acceptable for roofs and non-plastered construction, but too flexible for brittle finishes."},
	{UpTo: calc.Open, Label: "excessive", Advice: "Deflection exceeds common serviceability limits. Increase section depth, stiffness or reduce span."},
}

// Beam load cases. All assume a prismatic elastic beam.
var beamCases = map[string]struct {
	label string
	// maxDeflection returns peak deflection for load w (N or N/m),
	// span L (m), and flexural rigidity EI (N·m²).
	maxDeflection func(w, L, EI float64) float64
}{
	"simple_point_center": {
		"simply supported, point load at center",
		func(P, L, EI float64) float64 { return P * L * L * L / (48 * EI) },
	},
	"simple_uniform": {
		"simply supported, uniform load",
		func(w, L, EI float64) float64 { return 5 * w * L * L * L * L / (384 * EI) },
	},
	"cantilever_point_end": {
		"cantilever, point load at free end",
		func(P, L, EI float64) float64 { return P * L * L * L / (3 * EI) },
	},
	"cantilever_uniform": {
		"cantilever, uniform load",
		func(w, L, EI float64) float64 { return w * L * L * L * L / (8 * EI) },
	},
}

// BeamDeflection computes peak elastic deflection for four standard
// load cases.
type BeamDeflection struct{}

func (BeamDeflection) Info() calc.Info {
	return calc.Info{
		Slug:        "beam-deflection",
		Name:        "Beam Deflection Calculator",
		Category:    calc.CategoryEngineering,
		Description: "Peak deflection for standard beam load cases",
	}
}

func (BeamDeflection) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "load_case", Label: "Load case", Type: calc.TypeEnum,
			Enum:    []string{"simple_point_center", "simple_uniform", "cantilever_point_end", "cantilever_uniform"},
			Default: "simple_point_center"},
		{Name: "load", Label: "Load", Type: calc.TypeNumber, Unit: "N or N/m", Required: true, Min: calc.Ptr(0.001),
			Help: "total force for point cases, force per meter for uniform cases"},
		{Name: "span", Label: "Span", Type: calc.TypeNumber, Unit: "m", Required: true, Min: calc.Ptr(0.01), Max: calc.Ptr(1000)},
		{Name: "elastic_modulus", Label: "Elastic modulus E", Type: calc.TypeNumber, Unit: "GPa", Required: true, Min: calc.Ptr(0.01), Max: calc.Ptr(1500)},
		{Name: "moment_of_inertia", Label: "Second moment of area I", Type: calc.TypeNumber, Unit: "cm⁴", Required: true, Min: calc.Ptr(0.001)},
	}}
}

func (BeamDeflection) Compute(in calc.Input) (*calc.Result, error) {
	bc, ok := beamCases[in.Enum("load_case")]
	if !ok {
		return nil, fmt.Errorf("unknown load case %q", in.Enum("load_case"))
	}

	load := in.Number("load")
	span := in.Number("span")
	E := in.Number("elastic_modulus") * 1e9 // GPa → Pa
	I := in.Number("moment_of_inertia") * 1e-8 // cm⁴ → m⁴
	EI := E * I

	deflection := bc.maxDeflection(load, span, EI)
	limit360 := span / 360
	ratio := deflection / limit360

	return &calc.Result{
		Values: []calc.Value{
			{Name: "deflection", Label: "Peak deflection", Value: format.RoundTo(deflection*1000, 3), Unit: "mm"},
			{Name: "span_360", Label: "Span/360 limit", Value: format.RoundTo(limit360*1000, 3), Unit: "mm"},
			{Name: "utilization", Label: "Share of span/360 limit", Value: format.RoundTo(ratio*100, 1), Unit: "%"},
		},
		Tiers: []calc.Tier{
			calc.Classify("deflection", ratio, deflectionBands),
		},
		Notes: []string{"Case: " + bc.label + ". Valid for small elastic deflections of prismatic beams."},
	}, nil
}

func (BeamDeflection) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Euler-Bernoulli closed forms give the peak elastic deflection for the four textbook beam configurations.",
		Sections: []calc.GuideSection{
			{Heading: "The formulas", Body: "Simply supported with a center point load: PL³/48EI. Simply supported uniform: 5wL⁴/384EI. Cantilever point at tip: PL³/3EI. Cantilever uniform: wL⁴/8EI."},
			{Heading: "Serviceability limits", Body: "Codes limit live-load deflection to span/360 where brittle finishes attach, and span/240 otherwise. These are comfort and cracking limits, not strength checks."},
		},
		FAQs: []calc.FAQ{
			{Question: "Where do I find E and I?", Answer: "E is a material property (steel ≈ 200 GPa, aluminium ≈ 69 GPa, softwood ≈ 10 GPa). I comes from section tables or b·h³/12 for a rectangle."},
			{Question: "Does passing the deflection check mean the beam is safe?", Answer: "No. Strength (bending and shear stress) is a separate check that this calculator does not perform."},
		},
		Related: []string{"kinetic-energy", "projectile"},
	}
}
