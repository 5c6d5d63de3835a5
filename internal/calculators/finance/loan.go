// Package finance implements the finance calculators of the catalog:
// loans, debt payoff strategies, compound growth, bonds, options, and
// related planning widgets.
package finance

import (
	"fmt"
	"math"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

const (
	maxLoanAmount   = 1_000_000_000.0
	maxInterestRate = 100.0
	maxTermMonths   = 600
)

// Loan computes amortizing loan payments with a full repayment schedule.
type Loan struct{}

// loanCostBands classify total interest as a share of the principal.
var loanCostBands = []calc.Band{
	{UpTo: 10, Label: "low cost", Advice: "Interest adds less than 10% on top of the principal. The term and rate are working in your favor."},
	{UpTo: 30, Label: "moderate cost", Advice: "Interest adds a noticeable share of the principal. A shorter term or extra payments would reduce the total."},
	{UpTo: 60, Label: "high cost", Advice: "Interest makes up a large share of what you will repay. Compare offers or consider a larger down payment."},
	{UpTo: calc.Open, Label: "very high cost", Advice: "You will pay more than half the principal again in interest. Refinancing or shortening the term can save a lot."},
}

func (Loan) Info() calc.Info {
	return calc.Info{
		Slug:        "loan",
		Name:        "Loan Calculator",
		Category:    calc.CategoryFinance,
		Description: "Monthly payment, total interest, and amortization schedule for a fixed-rate loan.",
	}
}

func (Loan) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "amount", Label: "Loan amount", Type: calc.TypeNumber, Unit: "$", Required: true, Min: calc.Ptr(0.01), Max: calc.Ptr(maxLoanAmount)},
		{Name: "rate", Label: "Annual interest rate", Type: calc.TypeNumber, Unit: "%", Required: true, Min: calc.Ptr(0), Max: calc.Ptr(maxInterestRate)},
		{Name: "term_months", Label: "Term", Type: calc.TypeInteger, Unit: "months", Required: true, Min: calc.Ptr(1), Max: calc.Ptr(maxTermMonths)},
	}}
}

func (Loan) Compute(in calc.Input) (*calc.Result, error) {
	amount := in.Number("amount")
	rate := in.Number("rate")
	term := in.Int("term_months")

	payment := MonthlyPayment(amount, rate, term)
	total := payment * float64(term)
	interest := total - amount

	interestShare := 0.0
	if amount > 0 {
		interestShare = interest / amount * 100
	}

	res := &calc.Result{
		Values: []calc.Value{
			{Name: "monthly_payment", Label: "Monthly payment", Value: format.Round2(payment), Unit: "$"},
			{Name: "total_payment", Label: "Total payment", Value: format.Round2(total), Unit: "$"},
			{Name: "total_interest", Label: "Total interest", Value: format.Round2(interest), Unit: "$"},
		},
		Tiers: []calc.Tier{
			calc.Classify("total_interest", interestShare, loanCostBands),
		},
		Table: amortizationTable(amount, rate, term, payment),
	}
	return res, nil
}

func (Loan) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Estimates the fixed monthly payment on an amortizing loan and breaks down how much of the total goes to interest.",
		Sections: []calc.GuideSection{
			{
				Heading: "How the payment is calculated",
				Body: "The payment uses the standard annuity formula: P × r / (1 − (1 + r)^−n), " +
					"where r is the monthly rate and n the number of payments. At 0% interest the " +
					"payment is simply the principal divided by the term.",
			},
			{
				Heading: "Reading the amortization schedule",
				Body: "Early payments are mostly interest; the principal share grows every month. " +
					"Extra principal payments early in the term save the most interest.",
			},
		},
		FAQs: []calc.FAQ{
			{Question: "Does this include taxes or insurance?", Answer: "No. Only principal and interest are modeled; escrow items vary by lender and region."},
			{Question: "What if my rate is variable?", Answer: "The result assumes a fixed rate for the whole term. For a variable rate, recompute when the rate resets."},
		},
		Related: []string{"debt-payoff", "present-value", "savings-goal"},
	}
}

// MonthlyPayment returns the fixed payment on an amortizing loan.
// A zero rate falls back to straight division.
func MonthlyPayment(amount, annualRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		return amount / float64(termMonths)
	}
	r := annualRate / 100 / 12
	n := float64(termMonths)
	return amount * r / (1 - math.Pow(1+r, -n))
}

func amortizationTable(amount, annualRate float64, termMonths int, payment float64) *calc.Table {
	table := &calc.Table{
		Title:   "Amortization schedule",
		Columns: []string{"Month", "Payment", "Interest", "Principal", "Balance"},
	}

	r := annualRate / 100 / 12
	balance := amount
	for m := 1; m <= termMonths; m++ {
		interest := balance * r
		principal := payment - interest
		if principal > balance {
			principal = balance
		}
		balance -= principal
		if balance < 0 {
			balance = 0
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", m),
			format.Currency(payment, "$"),
			format.Currency(interest, "$"),
			format.Currency(principal, "$"),
			format.Currency(balance, "$"),
		})
	}
	return table
}
