package finance

import (
	"math"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// BlackScholes prices European call and put options with the classic
// closed-form model.
type BlackScholes struct{}

// moneynessBands classify spot/strike for a call option.
var moneynessBands = []calc.Band{
	{UpTo: 0.97, Label: "out of the money", Advice: "The call has no intrinsic value; its price is pure time value and volatility."},
	{UpTo: 1.03, Label: "at the money", Advice: "Spot and strike are close; time value and volatility dominate the premium."},
	{UpTo: calc.Open, Label: "in the money", Advice: "The call carries intrinsic value equal to the spot-strike gap."},
}

func (BlackScholes) Info() calc.Info {
	return calc.Info{
		Slug:        "black-scholes",
		Name:        "Black-Scholes Option Calculator",
		Category:    calc.CategoryFinance,
		Description: "European call and put prices from spot, strike, volatility, rate, and expiry.",
	}
}

func (BlackScholes) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "spot", Label: "Spot price", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0.01)},
		{Name: "strike", Label: "Strike price", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0.01)},
		{Name: "volatility", Label: "Implied volatility", Type: calc.TypeNumber, Unit: "%", Required: true, Min: calc.Ptr(0.1), Max: calc.Ptr(500)},
		{Name: "rate", Label: "Risk-free rate", Type: calc.TypeNumber, Unit: "%", Required: true, Min: calc.Ptr(0), Max: calc.Ptr(50)},
		{Name: "days", Label: "Days to expiry", Type: calc.TypeInteger, Required: true, Min: calc.Ptr(1), Max: calc.Ptr(3650)},
	}}
}

func (BlackScholes) Compute(in calc.Input) (*calc.Result, error) {
	s := in.Number("spot")
	k := in.Number("strike")
	sigma := in.Number("volatility") / 100
	r := in.Number("rate") / 100
	t := float64(in.Int("days")) / 365

	sqrtT := math.Sqrt(t)
	d1 := (math.Log(s/k) + (r+sigma*sigma/2)*t) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	call := s*normCDF(d1) - k*math.Exp(-r*t)*normCDF(d2)
	put := k*math.Exp(-r*t)*normCDF(-d2) - s*normCDF(-d1)

	return &calc.Result{
		Values: []calc.Value{
			{Name: "call", Label: "Call price", Value: format.Round2(call), Unit: "$"},
			{Name: "put", Label: "Put price", Value: format.Round2(put), Unit: "$"},
			{Name: "d1", Label: "d1", Value: format.RoundTo(d1, 4)},
			{Name: "d2", Label: "d2", Value: format.RoundTo(d2, 4)},
		},
		Tiers: []calc.Tier{
			calc.Classify("call", s/k, moneynessBands),
		},
	}, nil
}

func (BlackScholes) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Prices European options under the Black-Scholes assumptions: lognormal prices, constant volatility, no dividends.",
		Sections: []calc.GuideSection{
			{
				Heading: "What moves the premium",
				Body: "Higher volatility and more time raise both call and put prices. A higher " +
					"risk-free rate lifts calls and weighs on puts through the discounted strike.",
			},
		},
		FAQs: []calc.FAQ{
			{Question: "Does this work for American options?", Answer: "Only approximately. American options can be exercised early, which adds value the closed form does not capture — most visibly for deep in-the-money puts."},
		},
		Related: []string{"roi", "bond-price"},
	}
}

// normCDF is the standard normal CDF via the Abramowitz-Stegun 7.1.26
// polynomial approximation of erf, accurate to about 1.5e-7.
func normCDF(x float64) float64 {
	neg := x < 0
	x = math.Abs(x) / math.Sqrt2

	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)
	t := 1 / (1 + p*x)
	erf := 1 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)

	if neg {
		return (1 - erf) / 2
	}
	return (1 + erf) / 2
}
