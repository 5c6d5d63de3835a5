// Package calculators registers every concrete calculator with the
// global registry.
package calculators

import (
	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/internal/calculators/convert"
	"github.com/calcsuite/calcsuite/internal/calculators/engineering"
	"github.com/calcsuite/calcsuite/internal/calculators/finance"
	"github.com/calcsuite/calcsuite/internal/calculators/health"
	"github.com/calcsuite/calcsuite/internal/calculators/sports"
)

// RegisterAll registers the full catalog with the global registry.
func RegisterAll() error {
	return RegisterAllTo(calc.Global())
}

// RegisterAllTo registers the full catalog to the given registry.
func RegisterAllTo(reg *calc.Registry) error {
	all := []calc.Calculator{
		// --- Finance ---
		finance.Loan{},
		finance.DebtPayoff{},
		finance.CompoundInterest{},
		finance.SavingsGoal{},
		finance.BondPrice{},
		finance.BlackScholes{},
		finance.ROI{},
		finance.BreakEven{},
		finance.Inflation{},
		finance.PresentValue{},

		// --- Health ---
		health.BMI{},
		health.BMR{},
		health.TDEE{},
		health.BodyFat{},
		health.IdealWeight{},
		health.WaterIntake{},
		health.HeartRateZones{},

		// --- Engineering ---
		engineering.BeamDeflection{},
		engineering.OhmsLaw{},
		engineering.Projectile{},
		engineering.KineticEnergy{},

		// --- Unit conversion ---
		convert.Temperature{},
		convert.Length,
		convert.Mass,
		convert.Pressure,
		convert.Speed,
		convert.DataSize,

		// --- Sports ---
		sports.BowlingAverage{},
		sports.BattingStrikeRate{},
		sports.RunRate{},
		sports.RunningPace{},
		sports.OneRepMax{},
	}

	for _, c := range all {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
