package finance

import (
	"math"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

const maxBondPeriods = 600

// BondPrice values a fixed-coupon bond by discounting its cash flows at the
// yield to maturity.
type BondPrice struct{}

// bondPriceBands classify price as a percentage of face value.
var bondPriceBands = []calc.Band{
	{UpTo: 99.995, Label: "discount bond", Advice: "The bond trades below face value because its coupon is lower than the market yield."},
	{UpTo: 100.005, Label: "par bond", Advice: "Coupon and market yield match, so the bond is worth its face value."},
	{UpTo: calc.Open, Label: "premium bond", Advice: "The coupon beats the market yield, so buyers pay more than face value for the extra income."},
}

func (BondPrice) Info() calc.Info {
	return calc.Info{
		Slug:        "bond-price",
		Name:        "Bond Price Calculator",
		Category:    calc.CategoryFinance,
		Description: "Present value of a bond's coupons and redemption at a given yield to maturity.",
	}
}

func (BondPrice) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "face_value", Label: "Face value", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0.01)},
		{Name: "coupon_rate", Label: "Annual coupon rate", Type: calc.TypeNumber, Unit: "%", Required: true, Min: calc.Ptr(0), Max: calc.Ptr(maxInterestRate)},
		{Name: "years", Label: "Years to maturity", Type: calc.TypeInteger, Required: true, Min: calc.Ptr(1), Max: calc.Ptr(100)},
		{Name: "ytm", Label: "Yield to maturity", Type: calc.TypeNumber, Unit: "%", Required: true, Min: calc.Ptr(0), Max: calc.Ptr(maxInterestRate)},
		{Name: "payments_per_year", Label: "Coupon payments per year", Type: calc.TypeEnum, Enum: []string{"1", "2", "4", "12"}, Default: "2"},
	}}
}

func (BondPrice) Compute(in calc.Input) (*calc.Result, error) {
	face := in.Number("face_value")
	couponRate := in.Number("coupon_rate") / 100
	years := in.Int("years")
	ytm := in.Number("ytm") / 100
	freq := enumInt(in.Enum("payments_per_year"))

	periods := years * freq
	if periods > maxBondPeriods {
		periods = maxBondPeriods
	}
	coupon := face * couponRate / float64(freq)
	periodYield := ytm / float64(freq)

	// Sum the discounted coupon stream; the zero-yield edge collapses to
	// simple addition.
	price := 0.0
	for t := 1; t <= periods; t++ {
		discount := math.Pow(1+periodYield, float64(t))
		price += coupon / discount
	}
	price += face / math.Pow(1+periodYield, float64(periods))

	currentYield := 0.0
	if price > 0 {
		currentYield = face * couponRate / price * 100
	}
	pctOfFace := price / face * 100

	return &calc.Result{
		Values: []calc.Value{
			{Name: "price", Label: "Bond price", Value: format.Round2(price), Unit: "$"},
			{Name: "pct_of_face", Label: "Price as % of face", Value: format.Round2(pctOfFace), Unit: "%"},
			{Name: "current_yield", Label: "Current yield", Value: format.Round2(currentYield), Unit: "%"},
			{Name: "annual_coupon", Label: "Annual coupon income", Value: format.Round2(face * couponRate), Unit: "$"},
		},
		Tiers: []calc.Tier{
			calc.Classify("price", pctOfFace, bondPriceBands),
		},
	}, nil
}

func (BondPrice) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Prices a plain fixed-coupon bond by discounting every coupon and the final redemption at the market yield.",
		Sections: []calc.GuideSection{
			{
				Heading: "Why price moves opposite to yield",
				Body: "Each cash flow is divided by (1 + y)^t. When the market yield y rises, every " +
					"discount factor grows and the sum shrinks — so prices fall as yields rise, and " +
					"the longer the maturity the bigger the swing.",
			},
		},
		FAQs: []calc.FAQ{
			{Question: "What is the difference between current yield and YTM?", Answer: "Current yield is just coupon ÷ price. YTM also accounts for the pull to par at redemption, so it is the true annualized return if held to maturity."},
		},
		Related: []string{"present-value", "compound-interest"},
	}
}

func enumInt(s string) int {
	switch s {
	case "1":
		return 1
	case "2":
		return 2
	case "4":
		return 4
	case "12":
		return 12
	}
	return 1
}
