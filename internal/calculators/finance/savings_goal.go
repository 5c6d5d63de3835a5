package finance

import (
	"fmt"
	"math"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// SavingsGoal computes how many months of saving it takes to reach a target
// balance.
type SavingsGoal struct{}

var savingsHorizonBands = []calc.Band{
	{UpTo: 13, Label: "within reach", Advice: "Less than a year away. Park the money somewhere liquid and keep the deposits automatic."},
	{UpTo: 61, Label: "medium term", Advice: "A one-to-five-year goal. A high-yield account meaningfully shortens the time."},
	{UpTo: calc.Open, Label: "long term", Advice: "More than five years out. Check whether a higher contribution or return assumption fits your plan."},
}

func (SavingsGoal) Info() calc.Info {
	return calc.Info{
		Slug:        "savings-goal",
		Name:        "Savings Goal Calculator",
		Category:    calc.CategoryFinance,
		Description: "Months needed to reach a savings target with monthly deposits and interest.",
	}
}

func (SavingsGoal) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "target", Label: "Target amount", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0.01)},
		{Name: "current", Label: "Current savings", Type: calc.TypeNumber, Unit: "$", Default: 0.0, Min: calc.Ptr(0)},
		{Name: "deposit", Label: "Monthly deposit", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0.01)},
		{Name: "rate", Label: "Annual interest rate", Type: calc.TypeNumber, Unit: "%", Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(maxInterestRate)},
	}}
}

func (SavingsGoal) Compute(in calc.Input) (*calc.Result, error) {
	target := in.Number("target")
	current := in.Number("current")
	deposit := in.Number("deposit")
	rate := in.Number("rate") / 100 / 12

	if current >= target {
		return &calc.Result{
			Values: []calc.Value{
				{Name: "months", Label: "Months to goal", Value: 0},
				{Name: "final_balance", Label: "Balance at goal", Value: format.Round2(current), Unit: "$"},
				{Name: "total_deposits", Label: "Deposits needed", Value: 0, Unit: "$"},
			},
			Tiers: []calc.Tier{calc.Classify("months", 0, savingsHorizonBands)},
			Notes: []string{"Current savings already meet the target."},
		}, nil
	}

	var months float64
	if rate == 0 {
		months = math.Ceil((target - current) / deposit)
	} else {
		// Solve FV = current·(1+r)^n + deposit·((1+r)^n − 1)/r for n.
		numerator := target + deposit/rate
		denominator := current + deposit/rate
		months = math.Ceil(math.Log(numerator/denominator) / math.Log(1+rate))
	}
	if months > maxDebtPayoffMonths*2 {
		return nil, fmt.Errorf("goal takes longer than %d months at this deposit; increase the monthly amount", maxDebtPayoffMonths*2)
	}

	n := months
	final := current*math.Pow(1+rate, n) + deposit*n
	if rate > 0 {
		final = current*math.Pow(1+rate, n) + deposit*(math.Pow(1+rate, n)-1)/rate
	}

	return &calc.Result{
		Values: []calc.Value{
			{Name: "months", Label: "Months to goal", Value: months},
			{Name: "final_balance", Label: "Balance at goal", Value: format.Round2(final), Unit: "$"},
			{Name: "total_deposits", Label: "Deposits needed", Value: format.Round2(deposit * months), Unit: "$"},
		},
		Tiers: []calc.Tier{calc.Classify("months", months, savingsHorizonBands)},
		Notes: []string{fmt.Sprintf("Goal reached in %s.", format.Months(int(months)))},
	}, nil
}

func (SavingsGoal) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Answers how long a monthly saving habit takes to hit a target, with or without interest.",
		FAQs: []calc.FAQ{
			{Question: "Why does a small rate barely change the answer?", Answer: "Over short horizons deposits dominate; compounding only pulls the date in materially over multi-year goals."},
		},
		Related: []string{"compound-interest", "debt-payoff"},
	}
}
