package engineering

import (
	"math"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

const gravity = 9.80665

// Projectile computes ideal (drag-free) projectile motion from launch
// speed and angle.
type Projectile struct{}

func (Projectile) Info() calc.Info {
	return calc.Info{
		Slug:        "projectile",
		Name:        "Projectile Motion Calculator",
		Category:    calc.CategoryEngineering,
		Description: "Range, peak height and flight time without drag",
	}
}

func (Projectile) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "speed", Label: "Launch speed", Type: calc.TypeNumber, Unit: "m/s", Required: true, Min: calc.Ptr(0.01), Max: calc.Ptr(10000)},
		{Name: "angle", Label: "Launch angle", Type: calc.TypeNumber, Unit: "°", Required: true, Min: calc.Ptr(0.1), Max: calc.Ptr(90)},
		{Name: "height", Label: "Launch height", Type: calc.TypeNumber, Unit: "m", Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(10000)},
	}}
}

func (Projectile) Compute(in calc.Input) (*calc.Result, error) {
	v0 := in.Number("speed")
	theta := in.Number("angle") * math.Pi / 180
	h0 := in.Number("height")

	vx := v0 * math.Cos(theta)
	vy := v0 * math.Sin(theta)

	// Time of flight from the quadratic, keeping the positive root so a
	// nonzero launch height extends the trajectory.
	t := (vy + math.Sqrt(vy*vy+2*gravity*h0)) / gravity
	rng := vx * t
	peak := h0 + vy*vy/(2*gravity)

	return &calc.Result{
		Values: []calc.Value{
			{Name: "range", Label: "Horizontal range", Value: format.RoundTo(rng, 2), Unit: "m"},
			{Name: "peak_height", Label: "Peak height", Value: format.RoundTo(peak, 2), Unit: "m"},
			{Name: "flight_time", Label: "Time of flight", Value: format.RoundTo(t, 2), Unit: "s"},
			{Name: "impact_speed", Label: "Impact speed", Value: format.RoundTo(math.Hypot(vx, gravity*t-vy), 2), Unit: "m/s"},
		},
		Notes: []string{"Ideal trajectory with g = 9.80665 m/s² and no air resistance. Real ranges run shorter, markedly so at high speeds."},
	}, nil
}

func (Projectile) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Classic kinematics for a projectile launched at speed and angle, optionally from a height, ignoring air resistance.",
		Sections: []calc.GuideSection{
			{Heading: "The equations", Body: "Horizontal and vertical motion separate: x = v·cosθ·t, y = h + v·sinθ·t − ½gt². Flight time is the positive root of y = 0, and range is the horizontal speed times that time."},
			{Heading: "The 45° rule", Body: "From ground level the range is maximized at 45°. Launching from a height shifts the optimum below 45°."},
		},
		FAQs: []calc.FAQ{
			{Question: "How wrong is ignoring drag?", Answer: "Negligible for a thrown ball over a few meters; dramatic for anything fast or light. A golf ball's real range is roughly half the vacuum prediction."},
		},
		Related: []string{"kinetic-energy", "beam-deflection"},
	}
}
