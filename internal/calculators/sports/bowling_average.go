// Package sports implements cricket, running and strength-training
// calculators.
package sports

import (
	"fmt"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// Career-average cutoffs for frontline bowlers; lower is better.
var bowlingAverageBands = []calc.Band{
	{UpTo: 20, Label: "elite", Advice: "An average under 20 over a real sample of wickets is world-class territory."},
	{UpTo: 25, Label: "excellent", Advice: "Consistently match-winning figures for a frontline bowler."},
	{UpTo: 30, Label: "good", Advice: "A solid frontline average at most levels of the game."},
	{UpTo: 40, Label: "serviceable", Advice: "Useful support bowling, though expensive as a primary option."},
	{UpTo: calc.Open, Label: "expensive", Advice: "Runs conceded per wicket are high. Economy may still justify a containing role."},
}

// BowlingAverage computes a cricket bowler's average, economy and
// strike rate from career or match figures.
type BowlingAverage struct{}

func (BowlingAverage) Info() calc.Info {
	return calc.Info{
		Slug:        "bowling-average",
		Name:        "Bowling Average Calculator",
		Category:    calc.CategorySports,
		Description: "Average, economy and strike rate for bowlers",
	}
}

func (BowlingAverage) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "runs", Label: "Runs conceded", Type: calc.TypeInteger, Required: true, Min: calc.Ptr(0), Max: calc.Ptr(100000)},
		{Name: "wickets", Label: "Wickets taken", Type: calc.TypeInteger, Required: true, Min: calc.Ptr(0), Max: calc.Ptr(2000)},
		{Name: "overs", Label: "Overs bowled", Type: calc.TypeNumber, Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(20000),
			Help: "optional; enables economy and strike rate"},
	}}
}

func (BowlingAverage) Compute(in calc.Input) (*calc.Result, error) {
	runs := float64(in.Int("runs"))
	wickets := float64(in.Int("wickets"))
	overs := in.Number("overs")

	// Average is undefined without a wicket; division by zero here is a
	// user-facing condition, not a quiet Inf.
	if wickets == 0 {
		return nil, fmt.Errorf("bowling average is undefined with zero wickets; enter at least one wicket")
	}

	average := runs / wickets
	values := []calc.Value{
		{Name: "average", Label: "Bowling average", Value: format.Round2(average), Unit: "runs/wicket"},
	}

	if overs > 0 {
		balls, err := oversToBalls("overs", overs)
		if err != nil {
			return nil, err
		}
		values = append(values,
			calc.Value{Name: "economy", Label: "Economy rate", Value: format.Round2(runs / (balls / 6)), Unit: "runs/over"},
			calc.Value{Name: "strike_rate", Label: "Strike rate", Value: format.Round2(balls / wickets), Unit: "balls/wicket"},
		)
	}

	return &calc.Result{
		Values: values,
		Tiers: []calc.Tier{
			calc.Classify("average", average, bowlingAverageBands),
		},
	}, nil
}

// oversToBalls expands cricket over notation: 12.3 overs means twelve
// overs and three balls, not twelve and three tenths. The ball digit
// only runs 0 through 5; a sixth ball completes the next over.
func oversToBalls(field string, overs float64) (float64, error) {
	whole := float64(int(overs))
	partial := format.RoundTo((overs-whole)*10, 0)
	if partial > 5 {
		return 0, &calc.ValidationError{Fields: []calc.FieldError{{
			Field:   field,
			Message: "the digit after the decimal point counts balls (0-5); a completed over is the next whole number",
		}}}
	}
	return whole*6 + partial, nil
}

func (BowlingAverage) Guide() calc.Guide {
	return calc.Guide{
		Summary: "A bowler's average is runs conceded per wicket taken. Economy (runs per over) and strike rate (balls per wicket) complete the picture.",
		Sections: []calc.GuideSection{
			{Heading: "Reading the three numbers", Body: "Average measures cost per wicket, economy measures containment, strike rate measures penetration. Test cricket prizes average and strike rate; limited-overs formats lean on economy."},
			{Heading: "Overs notation", Body: "The digit after the decimal point counts balls, so 12.3 overs is 75 balls. Values above .5 are not valid overs figures."},
		},
		FAQs: []calc.FAQ{
			{Question: "Why can't the average be computed with zero wickets?", Answer: "The statistic is runs divided by wickets. With no wickets it has no defined value, which is also why career tables show a dash rather than a number."},
		},
		Related: []string{"batting-strike-rate", "run-rate"},
	}
}
