package sports

import (
	"fmt"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// Percent-of-max loads for common training goals.
var trainingLoads = []struct {
	goal string
	pct  float64
	reps string
}{
	{"Strength", 90, "2-4"},
	{"Hypertrophy", 75, "8-12"},
	{"Endurance", 60, "15+"},
}

// OneRepMax estimates a one-repetition maximum from a submaximal set
// using the Epley and Brzycki formulas.
type OneRepMax struct{}

func (OneRepMax) Info() calc.Info {
	return calc.Info{
		Slug:        "one-rep-max",
		Name:        "One-Rep Max Calculator",
		Category:    calc.CategorySports,
		Description: "Epley and Brzycki 1RM estimates with training loads",
	}
}

func (OneRepMax) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "weight", Label: "Weight lifted", Type: calc.TypeNumber, Unit: "kg", Required: true, Min: calc.Ptr(1), Max: calc.Ptr(1000)},
		{Name: "reps", Label: "Reps completed", Type: calc.TypeInteger, Required: true, Min: calc.Ptr(1), Max: calc.Ptr(15),
			Help: "estimates degrade quickly past 10 reps"},
	}}
}

func (OneRepMax) Compute(in calc.Input) (*calc.Result, error) {
	weight := in.Number("weight")
	reps := float64(in.Int("reps"))

	epley := weight * (1 + reps/30)
	brzycki := weight * 36 / (37 - reps)
	if reps == 1 {
		epley = weight
		brzycki = weight
	}
	avg := (epley + brzycki) / 2

	table := &calc.Table{
		Title:   "Training loads from the estimated max",
		Columns: []string{"Goal", "% of 1RM", "Load (kg)", "Rep range"},
	}
	for _, tl := range trainingLoads {
		table.Rows = append(table.Rows, []string{
			tl.goal,
			fmt.Sprintf("%.0f%%", tl.pct),
			fmt.Sprintf("%.1f", format.RoundTo(avg*tl.pct/100, 1)),
			tl.reps,
		})
	}

	return &calc.Result{
		Values: []calc.Value{
			{Name: "one_rep_max", Label: "Estimated 1RM", Value: format.RoundTo(avg, 1), Unit: "kg"},
			{Name: "epley", Label: "Epley estimate", Value: format.RoundTo(epley, 1), Unit: "kg"},
			{Name: "brzycki", Label: "Brzycki estimate", Value: format.RoundTo(brzycki, 1), Unit: "kg"},
		},
		Table: table,
		Notes: []string{"Estimates from sets of 10 or fewer reps track tested maxes within a few percent. Never attempt an actual max without a spotter."},
	}, nil
}

func (OneRepMax) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Two standard formulas estimate the heaviest single lift from a submaximal set. The calculator reports both and averages them.",
		Sections: []calc.GuideSection{
			{Heading: "The formulas", Body: "Epley: w·(1 + reps/30). Brzycki: w·36/(37 − reps). They agree near 10 reps and diverge at the extremes; the average is a practical compromise."},
			{Heading: "Programming with percentages", Body: "Strength work lives near 90% of max for low reps, hypertrophy around 75%, endurance at 60% or lighter."},
		},
		FAQs: []calc.FAQ{
			{Question: "Why cap reps at 15?", Answer: "Both formulas were fitted on low-rep data. Past 15 reps the relationship between reps and max breaks down and the estimates inflate."},
		},
		Related: []string{"tdee", "bmr"},
	}
}
