package sports

import (
	"fmt"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// T20-era cutoffs; a strike rate is runs per 100 balls.
var strikeRateBands = []calc.Band{
	{UpTo: 70, Label: "anchor", Advice: "A holding tempo suited to long-format batting or rebuilding after wickets."},
	{UpTo: 100, Label: "steady", Advice: "Scoring below a run a ball. Fine in one-day middle overs, slow for T20."},
	{UpTo: 130, Label: "brisk", Advice: "Above a run a ball. A healthy one-day tempo."},
	{UpTo: calc.Open, Label: "explosive", Advice: "Power-hitting territory that wins T20 matches."},
}

// BattingStrikeRate computes a batter's strike rate and average.
type BattingStrikeRate struct{}

func (BattingStrikeRate) Info() calc.Info {
	return calc.Info{
		Slug:        "batting-strike-rate",
		Name:        "Batting Strike Rate Calculator",
		Category:    calc.CategorySports,
		Description: "Runs per hundred balls, plus average",
	}
}

func (BattingStrikeRate) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "runs", Label: "Runs scored", Type: calc.TypeInteger, Required: true, Min: calc.Ptr(0), Max: calc.Ptr(100000)},
		{Name: "balls", Label: "Balls faced", Type: calc.TypeInteger, Required: true, Min: calc.Ptr(1), Max: calc.Ptr(100000)},
		{Name: "dismissals", Label: "Times dismissed", Type: calc.TypeInteger, Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(1000),
			Help: "optional; enables the batting average"},
	}}
}

func (BattingStrikeRate) Compute(in calc.Input) (*calc.Result, error) {
	runs := float64(in.Int("runs"))
	balls := float64(in.Int("balls"))
	dismissals := in.Int("dismissals")

	sr := runs / balls * 100
	values := []calc.Value{
		{Name: "strike_rate", Label: "Strike rate", Value: format.Round2(sr), Unit: "runs/100 balls"},
	}
	notes := []string{}

	if dismissals > 0 {
		values = append(values, calc.Value{
			Name: "average", Label: "Batting average", Value: format.Round2(runs / float64(dismissals)), Unit: "runs/dismissal",
		})
	} else {
		notes = append(notes, fmt.Sprintf("Not out across the sample: %v runs without dismissal, so the average is undefined.", runs))
	}

	return &calc.Result{
		Values: values,
		Tiers: []calc.Tier{
			calc.Classify("strike_rate", sr, strikeRateBands),
		},
		Notes: notes,
	}, nil
}

func (BattingStrikeRate) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Strike rate is runs scored per hundred balls faced, the standard tempo measure for batters.",
		Sections: []calc.GuideSection{
			{Heading: "Format context", Body: "A strike rate of 50 is respectable in Test cricket and unplayably slow in T20, where 130+ is the modern norm. Always read the number against the format."},
		},
		FAQs: []calc.FAQ{
			{Question: "Why is the average sometimes missing?", Answer: "Batting average divides runs by dismissals. A batter never dismissed in the sample has no defined average."},
		},
		Related: []string{"bowling-average", "run-rate"},
	}
}
