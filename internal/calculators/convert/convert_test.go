package convert

import (
	"context"
	"math"
	"testing"

	"github.com/calcsuite/calcsuite/internal/calc"
)

func TestFactorConverters(t *testing.T) {
	tests := []struct {
		name string
		c    calc.Calculator
		raw  map[string]any
		want float64
	}{
		{"km to mi", Length, map[string]any{"value": 10.0, "from": "km", "to": "mi"}, 6.213712},
		{"ft to cm", Length, map[string]any{"value": 1.0, "from": "ft", "to": "cm"}, 30.48},
		{"lb to kg", Mass, map[string]any{"value": 10.0, "from": "lb", "to": "kg"}, 4.535924},
		{"stone to lb", Mass, map[string]any{"value": 1.0, "from": "stone", "to": "lb"}, 14},
		{"atm to psi", Pressure, map[string]any{"value": 1.0, "from": "atm", "to": "psi"}, 14.695949},
		{"bar to kPa", Pressure, map[string]any{"value": 1.0, "from": "bar", "to": "kPa"}, 100},
		{"km/h to m/s", Speed, map[string]any{"value": 36.0, "from": "km/h", "to": "m/s"}, 10},
		{"knot to km/h", Speed, map[string]any{"value": 1.0, "from": "knot", "to": "km/h"}, 1.852},
		{"GiB to GB", DataSize, map[string]any{"value": 1.0, "from": "GiB", "to": "GB"}, 1.073742},
		{"TB to GiB", DataSize, map[string]any{"value": 1.0, "from": "TB", "to": "GiB"}, 931.322575},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calc.Evaluate(context.Background(), tt.c, tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := res.Value("converted"); math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("converted = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFactorConverterRoundTrip(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), Length, map[string]any{
		"value": 26.2, "from": "mi", "to": "km",
	})
	if err != nil {
		t.Fatal(err)
	}
	back, err := calc.Evaluate(context.Background(), Length, map[string]any{
		"value": res.Value("converted"), "from": "km", "to": "mi",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := back.Value("converted"); math.Abs(got-26.2) > 1e-4 {
		t.Errorf("round trip = %v, want 26.2", got)
	}
}

func TestFactorConverterRejectsNegative(t *testing.T) {
	_, err := calc.Evaluate(context.Background(), Mass, map[string]any{
		"value": -5.0, "from": "kg", "to": "lb",
	})
	if err == nil {
		t.Fatal("expected error for negative mass")
	}
}

func TestFactorConverterRejectsUnknownUnit(t *testing.T) {
	_, err := calc.Evaluate(context.Background(), Length, map[string]any{
		"value": 1.0, "from": "furlong", "to": "m",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown unit")
	}
	if _, ok := calc.AsValidationError(err); !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestTemperature(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  string
		to    string
		want  float64
	}{
		{"boiling C to F", 100, "celsius", "fahrenheit", 212},
		{"freezing F to C", 32, "fahrenheit", "celsius", 0},
		{"body temp F to C", 98.6, "fahrenheit", "celsius", 37},
		{"zero C to K", 0, "celsius", "kelvin", 273.15},
		{"crossover", -40, "celsius", "fahrenheit", -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calc.Evaluate(context.Background(), Temperature{}, map[string]any{
				"value": tt.value, "from": tt.from, "to": tt.to,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := res.Value("converted"); math.Abs(got-tt.want) > 0.01 {
				t.Errorf("converted = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTemperatureBelowAbsoluteZero(t *testing.T) {
	_, err := calc.Evaluate(context.Background(), Temperature{}, map[string]any{
		"value": -300.0, "from": "celsius", "to": "kelvin",
	})
	if err == nil {
		t.Fatal("expected error below absolute zero")
	}
}
