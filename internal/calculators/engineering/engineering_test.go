package engineering

import (
	"context"
	"math"
	"testing"

	"github.com/calcsuite/calcsuite/internal/calc"
)

func TestBandsWellFormed(t *testing.T) {
	bands := map[string][]calc.Band{
		"deflection": deflectionBands,
		"power":      powerBands,
		"energy":     energyBands,
	}
	for name, b := range bands {
		if err := calc.CheckBands(b); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestBeamDeflectionPointLoad(t *testing.T) {
	// Steel beam: E = 200 GPa, I = 2000 cm⁴, L = 4 m, P = 10 kN.
	// δ = PL³/48EI = 10000·64 / (48·200e9·2e-5) = 3.333e-3 m.
	res, err := calc.Evaluate(context.Background(), BeamDeflection{}, map[string]any{
		"load_case": "simple_point_center", "load": 10000.0, "span": 4.0,
		"elastic_modulus": 200.0, "moment_of_inertia": 2000.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("deflection"); math.Abs(got-3.333) > 0.001 {
		t.Errorf("deflection = %v mm, want 3.333", got)
	}
	// span/360 = 11.111 mm, so utilization is 30%.
	if got := res.Value("utilization"); math.Abs(got-30) > 0.1 {
		t.Errorf("utilization = %v%%, want 30", got)
	}
	if got := res.Tier("deflection").Label; got != "within span/360" {
		t.Errorf("tier = %q", got)
	}
}

func TestBeamDeflectionCaseOrdering(t *testing.T) {
	// Same load and geometry: a cantilever tip load deflects 16× the
	// simply supported center-load case (L³/3 vs L³/48).
	run := func(loadCase string) float64 {
		res, err := calc.Evaluate(context.Background(), BeamDeflection{}, map[string]any{
			"load_case": loadCase, "load": 1000.0, "span": 2.0,
			"elastic_modulus": 200.0, "moment_of_inertia": 500.0,
		})
		if err != nil {
			t.Fatalf("%s: %v", loadCase, err)
		}
		return res.Value("deflection")
	}
	simple := run("simple_point_center")
	cantilever := run("cantilever_point_end")
	if math.Abs(cantilever/simple-16) > 0.01 {
		t.Errorf("cantilever/simple = %v, want 16", cantilever/simple)
	}
}

func TestOhmsLaw(t *testing.T) {
	tests := []struct {
		name   string
		known  string
		first  float64
		second float64
		wantV  float64
		wantI  float64
		wantR  float64
		wantP  float64
	}{
		{"from V and I", "voltage_current", 12, 2, 12, 2, 6, 24},
		{"from V and R", "voltage_resistance", 9, 450, 9, 0.02, 450, 0.18},
		{"from I and R", "current_resistance", 0.5, 100, 50, 0.5, 100, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calc.Evaluate(context.Background(), OhmsLaw{}, map[string]any{
				"known": tt.known, "first": tt.first, "second": tt.second,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			checks := map[string]float64{
				"voltage": tt.wantV, "current": tt.wantI,
				"resistance": tt.wantR, "power": tt.wantP,
			}
			for name, want := range checks {
				if got := res.Value(name); math.Abs(got-want) > 1e-6 {
					t.Errorf("%s = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestProjectile(t *testing.T) {
	// 20 m/s at 45° from the ground: range v²·sin(2θ)/g = 400/9.80665.
	res, err := calc.Evaluate(context.Background(), Projectile{}, map[string]any{
		"speed": 20.0, "angle": 45.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantRange := 400 / gravity
	if got := res.Value("range"); math.Abs(got-wantRange) > 0.01 {
		t.Errorf("range = %v, want %.2f", got, wantRange)
	}
	// Peak height v²sin²θ/2g = 200·0.5/9.80665 = 10.197.
	if got := res.Value("peak_height"); math.Abs(got-10.2) > 0.01 {
		t.Errorf("peak_height = %v, want 10.2", got)
	}
	// Symmetric trajectory lands at launch speed.
	if got := res.Value("impact_speed"); math.Abs(got-20) > 0.01 {
		t.Errorf("impact_speed = %v, want 20", got)
	}
}

func TestProjectileLaunchHeightExtendsRange(t *testing.T) {
	ground, err := calc.Evaluate(context.Background(), Projectile{}, map[string]any{
		"speed": 15.0, "angle": 30.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	elevated, err := calc.Evaluate(context.Background(), Projectile{}, map[string]any{
		"speed": 15.0, "angle": 30.0, "height": 10.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if elevated.Value("range") <= ground.Value("range") {
		t.Error("launching from a height must extend the range")
	}
}

func TestKineticEnergy(t *testing.T) {
	// 1500 kg at 20 m/s: KE = 300 kJ, p = 30000 kg·m/s.
	res, err := calc.Evaluate(context.Background(), KineticEnergy{}, map[string]any{
		"mass": 1500.0, "speed": 20.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("energy"); got != 300000 {
		t.Errorf("energy = %v, want 300000", got)
	}
	if got := res.Value("momentum"); got != 30000 {
		t.Errorf("momentum = %v, want 30000", got)
	}
	if got := res.Tier("energy").Label; got != "high energy" {
		t.Errorf("tier = %q, want high energy", got)
	}
}
