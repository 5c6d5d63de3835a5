package sports

import (
	"fmt"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

var requiredRateBands = []calc.Band{
	{UpTo: 6, Label: "comfortable", Advice: "Under a run a ball needed. Keep wickets in hand and this is routine."},
	{UpTo: 9, Label: "demanding", Advice: "A sustained boundary-hitting effort is required, but well within modern chases."},
	{UpTo: 12, Label: "steep", Advice: "Nearly two a ball. The chase needs an exceptional passage of hitting."},
	{UpTo: calc.Open, Label: "improbable", Advice: "Beyond two a ball over the remaining overs. It has been done, rarely."},
}

// RunRate computes the current and required run rate of a chase.
type RunRate struct{}

func (RunRate) Info() calc.Info {
	return calc.Info{
		Slug:        "run-rate",
		Name:        "Run Rate Calculator",
		Category:    calc.CategorySports,
		Description: "Current and required rate for a chase",
	}
}

func (RunRate) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "runs", Label: "Runs scored", Type: calc.TypeInteger, Required: true, Min: calc.Ptr(0), Max: calc.Ptr(1000)},
		{Name: "overs", Label: "Overs faced", Type: calc.TypeNumber, Required: true, Min: calc.Ptr(0.1), Max: calc.Ptr(50)},
		{Name: "target", Label: "Target score", Type: calc.TypeInteger, Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(1000),
			Help: "optional; enables the required rate"},
		{Name: "total_overs", Label: "Overs in the innings", Type: calc.TypeNumber, Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(50)},
	}}
}

func (RunRate) Compute(in calc.Input) (*calc.Result, error) {
	runs := float64(in.Int("runs"))
	ballsFaced, err := oversToBalls("overs", in.Number("overs"))
	if err != nil {
		return nil, err
	}
	target := float64(in.Int("target"))
	totalOvers := in.Number("total_overs")

	current := runs / (ballsFaced / 6)
	values := []calc.Value{
		{Name: "current_rate", Label: "Current run rate", Value: format.Round2(current), Unit: "runs/over"},
	}
	var tiers []calc.Tier

	if target > 0 {
		if totalOvers <= 0 {
			return nil, fmt.Errorf("total_overs is required when a target is set")
		}
		totalBalls, err := oversToBalls("total_overs", totalOvers)
		if err != nil {
			return nil, err
		}
		ballsLeft := totalBalls - ballsFaced
		if ballsLeft <= 0 {
			return nil, fmt.Errorf("overs faced must be less than the innings total")
		}
		needed := target - runs
		if needed <= 0 {
			values = append(values, calc.Value{Name: "required_rate", Label: "Required run rate", Value: 0, Unit: "runs/over"})
		} else {
			required := needed / (ballsLeft / 6)
			values = append(values,
				calc.Value{Name: "required_rate", Label: "Required run rate", Value: format.Round2(required), Unit: "runs/over"},
				calc.Value{Name: "runs_needed", Label: "Runs still needed", Value: needed},
				calc.Value{Name: "balls_left", Label: "Balls remaining", Value: ballsLeft},
			)
			tiers = append(tiers, calc.Classify("required_rate", required, requiredRateBands))
		}
	}

	return &calc.Result{Values: values, Tiers: tiers}, nil
}

func (RunRate) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Run rate is runs per six-ball over. Against a target, the required rate over the remaining balls tells the state of the chase.",
		Sections: []calc.GuideSection{
			{Heading: "Overs notation", Body: "The decimal digit counts balls: 14.3 overs is 87 balls. The calculator expands the notation before dividing."},
		},
		FAQs: []calc.FAQ{
			{Question: "What is a good required rate?", Answer: "Context decides. Under 6 with wickets in hand is comfortable; above 12 has only ever been chased in short bursts."},
		},
		Related: []string{"batting-strike-rate", "bowling-average"},
	}
}
