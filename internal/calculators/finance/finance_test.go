package finance

import (
	"context"
	"math"
	"testing"

	"github.com/calcsuite/calcsuite/internal/calc"
)

func TestBandsWellFormed(t *testing.T) {
	bands := map[string][]calc.Band{
		"loanCost":       loanCostBands,
		"debtDuration":   debtDurationBands,
		"growth":         growthBands,
		"savingsHorizon": savingsHorizonBands,
		"bondPrice":      bondPriceBands,
		"moneyness":      moneynessBands,
		"roi":            roiBands,
		"marginOfSafety": marginOfSafetyBands,
		"erosion":        erosionBands,
		"discount":       discountBands,
	}
	for name, b := range bands {
		if err := calc.CheckBands(b); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		months int
		want   float64
		tol    float64
	}{
		{"zero interest", 1200, 0, 12, 100, 0.001},
		{"standard loan", 10000, 12, 24, 470.73, 0.01},
		{"mortgage-like", 300000, 6, 360, 1798.65, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(tt.amount, tt.rate, tt.months)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("MonthlyPayment() = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestLoanCompute(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), Loan{}, map[string]any{
		"amount": 10000.0, "rate": 12.0, "term_months": 24.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("monthly_payment"); math.Abs(got-470.73) > 0.01 {
		t.Errorf("monthly_payment = %v", got)
	}
	total := res.Value("monthly_payment") * 24
	if math.Abs(res.Value("total_payment")-total) > 0.5 {
		t.Errorf("total_payment inconsistent: %v vs %v", res.Value("total_payment"), total)
	}
	if res.Table == nil || len(res.Table.Rows) != 24 {
		t.Fatal("expected a 24-row amortization table")
	}
	if res.Tier("total_interest").Label == "" {
		t.Error("expected a cost tier")
	}
}

func TestLoanComputeDeterministic(t *testing.T) {
	raw := map[string]any{"amount": 5000.0, "rate": 7.5, "term_months": 36.0}
	a, err := calc.Evaluate(context.Background(), Loan{}, raw)
	if err != nil {
		t.Fatal(err)
	}
	b, err := calc.Evaluate(context.Background(), Loan{}, raw)
	if err != nil {
		t.Fatal(err)
	}
	if a.Value("total_interest") != b.Value("total_interest") {
		t.Error("same input must yield the same output")
	}
}

func TestLoanRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"negative amount", map[string]any{"amount": -1.0, "rate": 5.0, "term_months": 12.0}},
		{"missing term", map[string]any{"amount": 1000.0, "rate": 5.0}},
		{"rate too high", map[string]any{"amount": 1000.0, "rate": 150.0, "term_months": 12.0}},
		{"fractional term", map[string]any{"amount": 1000.0, "rate": 5.0, "term_months": 12.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Evaluate(context.Background(), Loan{}, tt.raw)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := calc.AsValidationError(err); !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestDebtPayoffAvalancheBeatsSnowball(t *testing.T) {
	base := map[string]any{
		"budget":        500.0,
		"debt1_balance": 3000.0, "debt1_rate": 22.0, "debt1_minimum": 90.0,
		"debt2_balance": 8000.0, "debt2_rate": 6.0, "debt2_minimum": 160.0,
	}

	run := func(strategy string) *calc.Result {
		raw := make(map[string]any, len(base)+1)
		for k, v := range base {
			raw[k] = v
		}
		raw["strategy"] = strategy
		res, err := calc.Evaluate(context.Background(), DebtPayoff{}, raw)
		if err != nil {
			t.Fatalf("%s: %v", strategy, err)
		}
		return res
	}

	snowball := run("snowball")
	avalanche := run("avalanche")

	if avalanche.Value("total_interest") > snowball.Value("total_interest") {
		t.Errorf("avalanche interest %.2f should not exceed snowball %.2f",
			avalanche.Value("total_interest"), snowball.Value("total_interest"))
	}
	if avalanche.Value("months") <= 0 {
		t.Error("expected a positive payoff duration")
	}
}

func TestDebtPayoffGuards(t *testing.T) {
	// Minimum payment below monthly interest can never terminate.
	_, err := calc.Evaluate(context.Background(), DebtPayoff{}, map[string]any{
		"budget":        500.0,
		"debt1_balance": 10000.0, "debt1_rate": 24.0, "debt1_minimum": 50.0,
	})
	if err == nil {
		t.Fatal("expected error for minimum below monthly interest")
	}

	// Budget below combined minimums.
	_, err = calc.Evaluate(context.Background(), DebtPayoff{}, map[string]any{
		"budget":        100.0,
		"debt1_balance": 3000.0, "debt1_rate": 10.0, "debt1_minimum": 200.0,
	})
	if err == nil {
		t.Fatal("expected error for insufficient budget")
	}
}

func TestCompoundInterest(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), CompoundInterest{}, map[string]any{
		"principal": 10000.0, "rate": 6.0, "years": 10.0, "compounding": "annually",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10000 * 1.06^10 = 17908.48
	if got := res.Value("final_balance"); math.Abs(got-17908.48) > 0.01 {
		t.Errorf("final_balance = %v, want 17908.48", got)
	}
}

func TestCompoundInterestZeroRate(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), CompoundInterest{}, map[string]any{
		"principal": 1000.0, "contribution": 100.0, "rate": 0.0, "years": 2.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("final_balance"); got != 3400 {
		t.Errorf("final_balance = %v, want 3400", got)
	}
	if got := res.Value("interest_earned"); got != 0 {
		t.Errorf("interest_earned = %v, want 0", got)
	}
}

func TestSavingsGoal(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), SavingsGoal{}, map[string]any{
		"target": 12000.0, "deposit": 1000.0, "rate": 0.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("months"); got != 12 {
		t.Errorf("months = %v, want 12", got)
	}
}

func TestSavingsGoalWithInterestIsFaster(t *testing.T) {
	base := map[string]any{"target": 50000.0, "deposit": 500.0}

	noRate, err := calc.Evaluate(context.Background(), SavingsGoal{}, map[string]any{
		"target": base["target"], "deposit": base["deposit"], "rate": 0.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	withRate, err := calc.Evaluate(context.Background(), SavingsGoal{}, map[string]any{
		"target": base["target"], "deposit": base["deposit"], "rate": 8.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if withRate.Value("months") >= noRate.Value("months") {
		t.Errorf("interest should shorten the horizon: %v vs %v",
			withRate.Value("months"), noRate.Value("months"))
	}
}

func TestSavingsGoalAlreadyMet(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), SavingsGoal{}, map[string]any{
		"target": 1000.0, "current": 2000.0, "deposit": 50.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value("months") != 0 {
		t.Errorf("months = %v, want 0", res.Value("months"))
	}
}

func TestBondPrice(t *testing.T) {
	tests := []struct {
		name      string
		coupon    float64
		ytm       float64
		wantLabel string
	}{
		{"par", 5, 5, "par bond"},
		{"discount", 4, 6, "discount bond"},
		{"premium", 8, 5, "premium bond"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calc.Evaluate(context.Background(), BondPrice{}, map[string]any{
				"face_value": 1000.0, "coupon_rate": tt.coupon, "years": 10.0, "ytm": tt.ytm,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := res.Tier("price").Label; got != tt.wantLabel {
				t.Errorf("tier = %q, want %q (price %.2f)", got, tt.wantLabel, res.Value("price"))
			}
		})
	}
}

func TestBondPriceParEqualsFace(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), BondPrice{}, map[string]any{
		"face_value": 1000.0, "coupon_rate": 6.0, "years": 5.0, "ytm": 6.0, "payments_per_year": "2",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Value("price"); math.Abs(got-1000) > 0.01 {
		t.Errorf("par bond price = %.4f, want 1000", got)
	}
}

func TestNormCDF(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0.5},
		{1.96, 0.975},
		{-1.96, 0.025},
		{3, 0.99865},
	}
	for _, tt := range tests {
		if got := normCDF(tt.x); math.Abs(got-tt.want) > 1e-4 {
			t.Errorf("normCDF(%v) = %.6f, want %.6f", tt.x, got, tt.want)
		}
	}
}

func TestBlackScholes(t *testing.T) {
	// Textbook case: S=100 K=100 sigma=20% r=5% T=1y → call ≈ 10.45, put ≈ 5.57.
	res, err := calc.Evaluate(context.Background(), BlackScholes{}, map[string]any{
		"spot": 100.0, "strike": 100.0, "volatility": 20.0, "rate": 5.0, "days": 365.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("call"); math.Abs(got-10.45) > 0.01 {
		t.Errorf("call = %.4f, want ~10.45", got)
	}
	if got := res.Value("put"); math.Abs(got-5.57) > 0.01 {
		t.Errorf("put = %.4f, want ~5.57", got)
	}
	// Put-call parity: C - P = S - K·e^(-rT).
	parity := 100 - 100*math.Exp(-0.05)
	if got := res.Value("call") - res.Value("put"); math.Abs(got-parity) > 0.02 {
		t.Errorf("put-call parity violated: %.4f vs %.4f", got, parity)
	}
}

func TestROI(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), ROI{}, map[string]any{
		"cost": 10000.0, "final_value": 14641.0, "years": 4.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1.4641^(1/4) = 1.10 → 10% annualized.
	if got := res.Value("annualized_roi"); math.Abs(got-10) > 0.01 {
		t.Errorf("annualized_roi = %v, want 10", got)
	}
	if got := res.Value("simple_roi"); math.Abs(got-46.41) > 0.01 {
		t.Errorf("simple_roi = %v, want 46.41", got)
	}
}

func TestBreakEven(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), BreakEven{}, map[string]any{
		"fixed_costs": 50000.0, "price": 25.0, "variable_cost": 15.0, "expected_units": 8000.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("break_even_units"); got != 5000 {
		t.Errorf("break_even_units = %v, want 5000", got)
	}
	if got := res.Value("margin_of_safety"); math.Abs(got-37.5) > 0.01 {
		t.Errorf("margin_of_safety = %v, want 37.5", got)
	}
}

func TestBreakEvenRejectsNegativeContribution(t *testing.T) {
	_, err := calc.Evaluate(context.Background(), BreakEven{}, map[string]any{
		"fixed_costs": 1000.0, "price": 10.0, "variable_cost": 12.0,
	})
	if err == nil {
		t.Fatal("expected error when variable cost exceeds price")
	}
}

func TestInflation(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), Inflation{}, map[string]any{
		"amount": 1000.0, "rate": 3.0, "years": 24.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Rule of 72: prices roughly double in 24 years at 3%.
	if got := res.Value("future_cost"); got < 1950 || got > 2100 {
		t.Errorf("future_cost = %v, want ~2033", got)
	}
	if got := res.Value("power_lost"); got <= 0 || got >= 100 {
		t.Errorf("power_lost out of range: %v", got)
	}
}

func TestPresentValue(t *testing.T) {
	// PV of 1000/yr for 10 years at 8% = 6710.08.
	res, err := calc.Evaluate(context.Background(), PresentValue{}, map[string]any{
		"payment": 1000.0, "rate": 8.0, "years": 10.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("pv_annuity"); math.Abs(got-6710.08) > 0.01 {
		t.Errorf("pv_annuity = %v, want 6710.08", got)
	}
}

func TestPresentValueZeroRate(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), PresentValue{}, map[string]any{
		"future_sum": 500.0, "payment": 100.0, "rate": 0.0, "years": 5.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("present_value"); got != 1000 {
		t.Errorf("present_value = %v, want 1000", got)
	}
}
