package finance

import (
	"math"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// Inflation projects future prices and the erosion of purchasing power.
type Inflation struct{}

// erosionBands classify the percentage of purchasing power lost.
var erosionBands = []calc.Band{
	{UpTo: 10, Label: "mild erosion", Advice: "Purchasing power is largely preserved over this horizon."},
	{UpTo: 30, Label: "noticeable erosion", Advice: "Cash loses a meaningful slice of its value; savings should at least match inflation."},
	{UpTo: 50, Label: "heavy erosion", Advice: "A third to half of today's purchasing power disappears. Uninvested cash is expensive."},
	{UpTo: calc.Open, Label: "severe erosion", Advice: "Most of today's value evaporates; only assets with real returns keep up."},
}

func (Inflation) Info() calc.Info {
	return calc.Info{
		Slug:        "inflation",
		Name:        "Inflation Calculator",
		Category:    calc.CategoryFinance,
		Description: "Future cost of today's spending and the purchasing power left in a fixed sum.",
	}
}

func (Inflation) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "amount", Label: "Amount today", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0.01)},
		{Name: "rate", Label: "Annual inflation rate", Type: calc.TypeNumber, Unit: "%", Required: true, Min: calc.Ptr(0), Max: calc.Ptr(50)},
		{Name: "years", Label: "Years", Type: calc.TypeInteger, Required: true, Min: calc.Ptr(1), Max: calc.Ptr(100)},
	}}
}

func (Inflation) Compute(in calc.Input) (*calc.Result, error) {
	amount := in.Number("amount")
	rate := in.Number("rate") / 100
	years := float64(in.Int("years"))

	factor := math.Pow(1+rate, years)
	futureCost := amount * factor
	futureValue := amount / factor
	lossPct := (1 - 1/factor) * 100

	return &calc.Result{
		Values: []calc.Value{
			{Name: "future_cost", Label: "Future cost of today's amount", Value: format.Round2(futureCost), Unit: "$"},
			{Name: "future_value", Label: "Purchasing power of the amount", Value: format.Round2(futureValue), Unit: "$"},
			{Name: "power_lost", Label: "Purchasing power lost", Value: format.Round2(lossPct), Unit: "%"},
		},
		Tiers: []calc.Tier{
			calc.Classify("power_lost", lossPct, erosionBands),
		},
	}, nil
}

func (Inflation) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Shows both sides of inflation: what today's spending will cost later, and what a fixed sum will still buy.",
		FAQs: []calc.FAQ{
			{Question: "Which rate should I use?", Answer: "Long-run headline inflation in developed economies has averaged around 2-3%, but your personal basket (housing, education, healthcare) may run higher."},
		},
		Related: []string{"compound-interest", "roi", "present-value"},
	}
}
