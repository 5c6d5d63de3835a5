package engineering

import (
	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

var energyBands = []calc.Band{
	{UpTo: 100, Label: "low energy", Advice: "Comparable to a dropped book. Minor hazard at most."},
	{UpTo: 10000, Label: "significant energy", Advice: "Comparable to a sprinting adult. Enough to injure; guard moving parts."},
	{UpTo: calc.Open, Label: "high energy", Advice: "Vehicle-scale energy. Containment and stopping distances are engineering problems at this level."},
}

// KineticEnergy computes translational kinetic energy and momentum.
type KineticEnergy struct{}

func (KineticEnergy) Info() calc.Info {
	return calc.Info{
		Slug:        "kinetic-energy",
		Name:        "Kinetic Energy Calculator",
		Category:    calc.CategoryEngineering,
		Description: "Energy and momentum of a moving mass",
	}
}

func (KineticEnergy) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "mass", Label: "Mass", Type: calc.TypeNumber, Unit: "kg", Required: true, Min: calc.Ptr(1e-9)},
		{Name: "speed", Label: "Speed", Type: calc.TypeNumber, Unit: "m/s", Required: true, Min: calc.Ptr(0)},
	}}
}

func (KineticEnergy) Compute(in calc.Input) (*calc.Result, error) {
	m := in.Number("mass")
	v := in.Number("speed")

	ke := 0.5 * m * v * v
	p := m * v

	return &calc.Result{
		Values: []calc.Value{
			{Name: "energy", Label: "Kinetic energy", Value: format.RoundTo(ke, 3), Unit: "J"},
			{Name: "momentum", Label: "Momentum", Value: format.RoundTo(p, 3), Unit: "kg·m/s"},
			{Name: "energy_wh", Label: "Energy", Value: format.RoundTo(ke/3600, 6), Unit: "Wh"},
		},
		Tiers: []calc.Tier{
			calc.Classify("energy", ke, energyBands),
		},
	}, nil
}

func (KineticEnergy) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Translational kinetic energy grows with the square of speed: KE = ½mv². Momentum, mv, grows only linearly.",
		Sections: []calc.GuideSection{
			{Heading: "Why the square matters", Body: "Doubling speed quadruples energy. Braking distance and impact severity both track energy, which is why small speed increases have outsized consequences."},
		},
		FAQs: []calc.FAQ{
			{Question: "Energy or momentum: which decides impact damage?", Answer: "Energy sets how much work the collision must absorb; momentum sets the impulse. Structural damage tracks energy, knockback tracks momentum."},
		},
		Related: []string{"projectile", "ohms-law"},
	}
}
