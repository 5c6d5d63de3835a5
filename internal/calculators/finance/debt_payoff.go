package finance

import (
	"fmt"
	"math"
	"sort"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

const (
	maxDebtPayoffMonths  = 600
	debtBalanceTolerance = 0.01
)

// DebtPayoff simulates paying down up to three debts with the snowball or
// avalanche strategy and reports total interest and months to freedom.
type DebtPayoff struct{}

// debtDurationBands classify the months needed to clear all debts.
var debtDurationBands = []calc.Band{
	{UpTo: 13, Label: "short runway", Advice: "You can be debt-free within a year. Keep the extra payment steady and avoid new balances."},
	{UpTo: 37, Label: "medium runway", Advice: "A one-to-three-year plan. Revisit it whenever your available payment changes."},
	{UpTo: 73, Label: "long runway", Advice: "Several years of payments ahead. Even a small increase in the monthly budget shortens this noticeably."},
	{UpTo: calc.Open, Label: "very long runway", Advice: "At this budget the payoff stretches beyond six years. Consider consolidating the highest-rate balance."},
}

func (DebtPayoff) Info() calc.Info {
	return calc.Info{
		Slug:        "debt-payoff",
		Name:        "Debt Payoff Planner",
		Category:    calc.CategoryFinance,
		Description: "Snowball vs avalanche payoff plan across multiple debts with a month-by-month schedule.",
	}
}

func (DebtPayoff) Schema() calc.Schema {
	fields := []calc.Field{
		{Name: "budget", Label: "Monthly payment budget", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0.01)},
		{Name: "strategy", Label: "Strategy", Type: calc.TypeEnum, Enum: []string{"snowball", "avalanche"}, Default: "avalanche",
			Help: "snowball pays smallest balances first; avalanche pays highest rates first"},
	}
	for i := 1; i <= 3; i++ {
		required := i == 1
		fields = append(fields,
			calc.Field{Name: fmt.Sprintf("debt%d_balance", i), Label: fmt.Sprintf("Debt %d balance", i), Type: calc.TypeNumber, Unit: "$", Required: required, Min: calc.Ptr(0)},
			calc.Field{Name: fmt.Sprintf("debt%d_rate", i), Label: fmt.Sprintf("Debt %d annual rate", i), Type: calc.TypeNumber, Unit: "%", Required: required, Min: calc.Ptr(0), Max: calc.Ptr(maxInterestRate)},
			calc.Field{Name: fmt.Sprintf("debt%d_minimum", i), Label: fmt.Sprintf("Debt %d minimum payment", i), Type: calc.TypeNumber, Unit: "$", Required: required, Min: calc.Ptr(0)},
		)
	}
	return calc.Schema{Fields: fields}
}

type debt struct {
	name    string
	balance float64
	rate    float64
	minimum float64
}

func (DebtPayoff) Compute(in calc.Input) (*calc.Result, error) {
	var debts []debt
	totalMinimum := 0.0
	for i := 1; i <= 3; i++ {
		balance := in.Number(fmt.Sprintf("debt%d_balance", i))
		if balance <= 0 {
			continue
		}
		d := debt{
			name:    fmt.Sprintf("Debt %d", i),
			balance: balance,
			rate:    in.Number(fmt.Sprintf("debt%d_rate", i)),
			minimum: in.Number(fmt.Sprintf("debt%d_minimum", i)),
		}
		monthlyInterest := d.balance * d.rate / 100 / 12
		if d.minimum < monthlyInterest {
			return nil, fmt.Errorf("%s: minimum payment %.2f does not cover monthly interest %.2f",
				d.name, d.minimum, monthlyInterest)
		}
		totalMinimum += d.minimum
		debts = append(debts, d)
	}
	if len(debts) == 0 {
		return nil, fmt.Errorf("at least one debt with a positive balance is required")
	}

	budget := in.Number("budget")
	if totalMinimum > budget {
		return nil, fmt.Errorf("monthly budget %.2f does not cover the combined minimum payments %.2f",
			budget, totalMinimum)
	}

	strategy := in.Enum("strategy")
	plan := simulatePayoff(debts, budget, strategy)

	totalDebt := 0.0
	for _, d := range debts {
		totalDebt += d.balance
	}

	res := &calc.Result{
		Values: []calc.Value{
			{Name: "months", Label: "Months to debt-free", Value: float64(plan.months)},
			{Name: "total_debt", Label: "Starting debt", Value: format.Round2(totalDebt), Unit: "$"},
			{Name: "total_interest", Label: "Total interest paid", Value: format.Round2(plan.totalInterest), Unit: "$"},
			{Name: "total_paid", Label: "Total paid", Value: format.Round2(totalDebt + plan.totalInterest), Unit: "$"},
		},
		Tiers: []calc.Tier{
			calc.Classify("months", float64(plan.months), debtDurationBands),
		},
		Table: plan.table,
		Notes: []string{fmt.Sprintf("Strategy: %s. Debt-free in %s.", strategy, format.Months(plan.months))},
	}
	return res, nil
}

func (DebtPayoff) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Simulates month-by-month repayment of multiple debts and compares how long it takes to pay everything off.",
		Sections: []calc.GuideSection{
			{
				Heading: "Snowball vs avalanche",
				Body: "Snowball clears the smallest balance first for quick wins; avalanche targets the " +
					"highest interest rate first and always pays the least total interest. Both pay every " +
					"minimum each month and direct the leftover budget at one target debt.",
			},
		},
		FAQs: []calc.FAQ{
			{Question: "Which strategy is cheaper?", Answer: "Avalanche never pays more interest than snowball. Snowball trades a little extra interest for earlier visible progress."},
			{Question: "Why is my minimum payment rejected?", Answer: "A minimum below the monthly interest means the balance grows forever, so the plan would never terminate."},
		},
		Related: []string{"loan", "savings-goal"},
	}
}

type payoffPlan struct {
	months        int
	totalInterest float64
	table         *calc.Table
}

// simulatePayoff runs the month-by-month repayment. Each month accrues
// interest on open balances, pays every minimum, and directs the remaining
// budget at the strategy's target debt.
func simulatePayoff(debts []debt, budget float64, strategy string) payoffPlan {
	order := make([]debt, len(debts))
	copy(order, debts)
	if strategy == "snowball" {
		sort.Slice(order, func(i, j int) bool { return order[i].balance < order[j].balance })
	} else {
		sort.Slice(order, func(i, j int) bool { return order[i].rate > order[j].rate })
	}

	balances := make(map[string]float64, len(order))
	for _, d := range order {
		balances[d.name] = d.balance
	}

	table := &calc.Table{
		Title:   "Payoff schedule",
		Columns: []string{"Month", "Paid", "Interest", "Remaining"},
	}

	plan := payoffPlan{table: table}
	for plan.months < maxDebtPayoffMonths {
		plan.months++
		available := budget
		monthInterest := 0.0
		monthPaid := 0.0

		// Accrue interest and pay minimums on every open debt.
		for _, d := range order {
			if balances[d.name] <= 0 {
				continue
			}
			interest := balances[d.name] * d.rate / 100 / 12
			monthInterest += interest
			plan.totalInterest += interest
			balances[d.name] += interest

			payment := math.Min(d.minimum, balances[d.name])
			payment = math.Min(payment, available)
			balances[d.name] -= payment
			available -= payment
			monthPaid += payment
		}

		// Direct the surplus at the first open debt in strategy order.
		for _, d := range order {
			if available <= 0 {
				break
			}
			if balances[d.name] <= 0 {
				continue
			}
			extra := math.Min(available, balances[d.name])
			balances[d.name] -= extra
			available -= extra
			monthPaid += extra
			break
		}

		remaining := 0.0
		for _, d := range order {
			if balances[d.name] > 0 {
				remaining += balances[d.name]
			}
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", plan.months),
			format.Currency(monthPaid, "$"),
			format.Currency(monthInterest, "$"),
			format.Currency(remaining, "$"),
		})

		if remaining <= debtBalanceTolerance {
			break
		}
	}
	return plan
}
