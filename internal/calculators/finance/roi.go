package finance

import (
	"math"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// ROI computes simple and annualized return on an investment.
type ROI struct{}

// roiBands classify the annualized return percentage.
var roiBands = []calc.Band{
	{UpTo: 0, Label: "loss", Advice: "The investment lost money on an annualized basis."},
	{UpTo: 4, Label: "below inflation", Advice: "Positive but likely trailing inflation; the real return may be negative."},
	{UpTo: 8, Label: "market-like", Advice: "In line with broad long-run equity market returns."},
	{UpTo: 15, Label: "strong", Advice: "Comfortably above typical market returns. Check whether the risk taken matches."},
	{UpTo: calc.Open, Label: "exceptional", Advice: "Returns this high rarely persist; treat them as outliers rather than a baseline."},
}

func (ROI) Info() calc.Info {
	return calc.Info{
		Slug:        "roi",
		Name:        "ROI Calculator",
		Category:    calc.CategoryFinance,
		Description: "Simple and annualized return on investment from cost and final value.",
	}
}

func (ROI) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "cost", Label: "Amount invested", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0.01)},
		{Name: "final_value", Label: "Final value", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0)},
		{Name: "years", Label: "Holding period", Type: calc.TypeNumber, Unit: "years", Required: true, Min: calc.Ptr(0.01), Max: calc.Ptr(100)},
	}}
}

func (ROI) Compute(in calc.Input) (*calc.Result, error) {
	cost := in.Number("cost")
	final := in.Number("final_value")
	years := in.Number("years")

	gain := final - cost
	simple := gain / cost * 100

	// Annualized (CAGR). A total loss cannot be annualized meaningfully.
	annualized := -100.0
	if final > 0 {
		annualized = (math.Pow(final/cost, 1/years) - 1) * 100
	}

	return &calc.Result{
		Values: []calc.Value{
			{Name: "gain", Label: "Net gain", Value: format.Round2(gain), Unit: "$"},
			{Name: "simple_roi", Label: "Simple ROI", Value: format.Round2(simple), Unit: "%"},
			{Name: "annualized_roi", Label: "Annualized ROI", Value: format.Round2(annualized), Unit: "%"},
		},
		Tiers: []calc.Tier{
			calc.Classify("annualized_roi", annualized, roiBands),
		},
	}, nil
}

func (ROI) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Turns a before/after pair of values into simple and annualized return figures.",
		Sections: []calc.GuideSection{
			{
				Heading: "Simple vs annualized",
				Body: "Simple ROI ignores time: doubling in one year and doubling in ten both read 100%. " +
					"The annualized figure spreads the growth over the holding period so different " +
					"investments become comparable.",
			},
		},
		Related: []string{"compound-interest", "inflation", "break-even"},
	}
}
