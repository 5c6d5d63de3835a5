package finance

import (
	"math"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// PresentValue discounts a future lump sum and an ordinary annuity back to
// today's money.
type PresentValue struct{}

// discountBands classify how much of the nominal total survives discounting.
var discountBands = []calc.Band{
	{UpTo: 50, Label: "deep discount", Advice: "Less than half the nominal cash flows survive discounting; distant money is worth little today."},
	{UpTo: 80, Label: "moderate discount", Advice: "Discounting takes a visible bite; the rate and horizon matter a lot at this range."},
	{UpTo: calc.Open, Label: "light discount", Advice: "Most of the nominal value holds up; the horizon is short or the rate low."},
}

func (PresentValue) Info() calc.Info {
	return calc.Info{
		Slug:        "present-value",
		Name:        "Present Value Calculator",
		Category:    calc.CategoryFinance,
		Description: "Today's value of a future lump sum plus a stream of annual payments.",
	}
}

func (PresentValue) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "future_sum", Label: "Future lump sum", Type: calc.TypeNumber, Unit: "$", Default: 0.0, Min: calc.Ptr(0)},
		{Name: "payment", Label: "Annual payment", Type: calc.TypeNumber, Unit: "$", Default: 0.0, Min: calc.Ptr(0)},
		{Name: "rate", Label: "Discount rate", Type: calc.TypeNumber, Unit: "%", Required: true, Min: calc.Ptr(0), Max: calc.Ptr(maxInterestRate)},
		{Name: "years", Label: "Years", Type: calc.TypeInteger, Required: true, Min: calc.Ptr(1), Max: calc.Ptr(100)},
	}}
}

func (PresentValue) Compute(in calc.Input) (*calc.Result, error) {
	futureSum := in.Number("future_sum")
	payment := in.Number("payment")
	rate := in.Number("rate") / 100
	years := float64(in.Int("years"))

	pvLump := futureSum
	pvAnnuity := payment * years
	if rate > 0 {
		pvLump = futureSum / math.Pow(1+rate, years)
		pvAnnuity = payment * (1 - math.Pow(1+rate, -years)) / rate
	}
	pv := pvLump + pvAnnuity

	nominal := futureSum + payment*years
	retained := 100.0
	if nominal > 0 {
		retained = pv / nominal * 100
	}

	return &calc.Result{
		Values: []calc.Value{
			{Name: "present_value", Label: "Present value", Value: format.Round2(pv), Unit: "$"},
			{Name: "pv_lump_sum", Label: "PV of lump sum", Value: format.Round2(pvLump), Unit: "$"},
			{Name: "pv_annuity", Label: "PV of payment stream", Value: format.Round2(pvAnnuity), Unit: "$"},
			{Name: "nominal_total", Label: "Undiscounted total", Value: format.Round2(nominal), Unit: "$"},
		},
		Tiers: []calc.Tier{
			calc.Classify("present_value", retained, discountBands),
		},
	}, nil
}

func (PresentValue) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Converts future money — a lump sum, a payment stream, or both — into its equivalent value today at a chosen discount rate.",
		Sections: []calc.GuideSection{
			{
				Heading: "The annuity formula",
				Body: "A stream of equal payments P for n years at rate r is worth " +
					"P × (1 − (1 + r)^−n) / r today. At a 0% rate it degenerates to P × n.",
			},
		},
		Related: []string{"bond-price", "inflation", "loan"},
	}
}
