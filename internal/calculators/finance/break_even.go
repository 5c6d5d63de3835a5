package finance

import (
	"fmt"
	"math"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// BreakEven finds the sales volume at which revenue covers all costs.
type BreakEven struct{}

// marginOfSafetyBands classify expected sales above the break-even point.
var marginOfSafetyBands = []calc.Band{
	{UpTo: 0, Label: "below break-even", Advice: "Expected sales do not cover costs; every unit sold still loses money overall."},
	{UpTo: 10, Label: "thin cushion", Advice: "A small sales dip pushes the business into loss. Watch fixed costs closely."},
	{UpTo: 30, Label: "moderate cushion", Advice: "A reasonable buffer over break-even, but a bad quarter could erase it."},
	{UpTo: calc.Open, Label: "comfortable cushion", Advice: "Sales can fall substantially before the operation turns unprofitable."},
}

func (BreakEven) Info() calc.Info {
	return calc.Info{
		Slug:        "break-even",
		Name:        "Break-Even Calculator",
		Category:    calc.CategoryFinance,
		Description: "Units and revenue needed to cover fixed and variable costs, with margin of safety.",
	}
}

func (BreakEven) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "fixed_costs", Label: "Fixed costs", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0)},
		{Name: "price", Label: "Price per unit", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0.01)},
		{Name: "variable_cost", Label: "Variable cost per unit", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0)},
		{Name: "expected_units", Label: "Expected unit sales", Type: calc.TypeNumber, Default: 0.0, Min: calc.Ptr(0), Help: "optional; enables the margin-of-safety tier"},
	}}
}

func (BreakEven) Compute(in calc.Input) (*calc.Result, error) {
	fixed := in.Number("fixed_costs")
	price := in.Number("price")
	variable := in.Number("variable_cost")
	expected := in.Number("expected_units")

	contribution := price - variable
	if contribution <= 0 {
		return nil, fmt.Errorf("price must exceed the variable cost per unit; each sale currently loses %.2f", -contribution)
	}

	units := math.Ceil(fixed / contribution)
	revenue := units * price
	contributionMargin := contribution / price * 100

	res := &calc.Result{
		Values: []calc.Value{
			{Name: "break_even_units", Label: "Break-even units", Value: units},
			{Name: "break_even_revenue", Label: "Break-even revenue", Value: format.Round2(revenue), Unit: "$"},
			{Name: "contribution_margin", Label: "Contribution margin", Value: format.Round2(contributionMargin), Unit: "%"},
		},
	}

	if expected > 0 {
		safety := (expected - units) / expected * 100
		res.Values = append(res.Values, calc.Value{
			Name: "margin_of_safety", Label: "Margin of safety", Value: format.Round2(safety), Unit: "%",
		})
		res.Tiers = append(res.Tiers, calc.Classify("margin_of_safety", safety, marginOfSafetyBands))
	}
	return res, nil
}

func (BreakEven) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Finds the sales volume where total revenue equals total cost, and how much slack your forecast has above it.",
		Sections: []calc.GuideSection{
			{
				Heading: "Contribution margin",
				Body: "Each unit contributes price minus variable cost toward fixed costs. Break-even " +
					"units is simply fixed costs divided by that contribution, rounded up to whole units.",
			},
		},
		Related: []string{"roi", "loan"},
	}
}
