package sports

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/calcsuite/calcsuite/internal/calc"
)

func TestBandsWellFormed(t *testing.T) {
	bands := map[string][]calc.Band{
		"bowlingAverage": bowlingAverageBands,
		"strikeRate":     strikeRateBands,
		"requiredRate":   requiredRateBands,
	}
	for name, b := range bands {
		if err := calc.CheckBands(b); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestBowlingAverage(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), BowlingAverage{}, map[string]any{
		"runs": 1200.0, "wickets": 64.0, "overs": 400.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("average"); math.Abs(got-18.75) > 0.001 {
		t.Errorf("average = %v, want 18.75", got)
	}
	if got := res.Tier("average").Label; got != "elite" {
		t.Errorf("tier = %q, want elite", got)
	}
	// 400 overs = 2400 balls: economy 3.0, strike rate 37.5.
	if got := res.Value("economy"); math.Abs(got-3.0) > 0.001 {
		t.Errorf("economy = %v, want 3.0", got)
	}
	if got := res.Value("strike_rate"); math.Abs(got-37.5) > 0.001 {
		t.Errorf("strike_rate = %v, want 37.5", got)
	}
}

func TestBowlingAverageZeroWickets(t *testing.T) {
	_, err := calc.Evaluate(context.Background(), BowlingAverage{}, map[string]any{
		"runs": 150.0, "wickets": 0.0,
	})
	if err == nil {
		t.Fatal("expected error with zero wickets")
	}
	if !strings.Contains(err.Error(), "undefined") {
		t.Errorf("error should say the average is undefined, got %q", err)
	}
}

func TestOversToBalls(t *testing.T) {
	tests := []struct {
		overs float64
		want  float64
	}{
		{12.3, 75},
		{50, 300},
		{0.5, 5},
		{19.5, 119},
	}
	for _, tt := range tests {
		got, err := oversToBalls("overs", tt.overs)
		if err != nil {
			t.Errorf("oversToBalls(%v): %v", tt.overs, err)
			continue
		}
		if got != tt.want {
			t.Errorf("oversToBalls(%v) = %v, want %v", tt.overs, got, tt.want)
		}
	}
}

func TestOversToBallsRejectsBadBallDigit(t *testing.T) {
	// .6 through .9 are not overs figures; 12.6 is really 13.0.
	for _, overs := range []float64{12.6, 12.7, 0.9} {
		if _, err := oversToBalls("overs", overs); err == nil {
			t.Errorf("oversToBalls(%v) accepted an impossible ball digit", overs)
		}
	}

	_, err := calc.Evaluate(context.Background(), BowlingAverage{}, map[string]any{
		"runs": 100.0, "wickets": 4.0, "overs": 12.7,
	})
	verr, ok := calc.AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError for 12.7 overs, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "overs" {
		t.Errorf("field errors = %v, want one on overs", verr.Fields)
	}

	_, err = calc.Evaluate(context.Background(), RunRate{}, map[string]any{
		"runs": 100.0, "overs": 20.0, "target": 250.0, "total_overs": 49.8,
	})
	if _, ok := calc.AsValidationError(err); !ok {
		t.Fatalf("expected *ValidationError for 49.8 total overs, got %v", err)
	}
}

func TestBattingStrikeRate(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), BattingStrikeRate{}, map[string]any{
		"runs": 78.0, "balls": 52.0, "dismissals": 2.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("strike_rate"); got != 150 {
		t.Errorf("strike_rate = %v, want 150", got)
	}
	if got := res.Value("average"); got != 39 {
		t.Errorf("average = %v, want 39", got)
	}
	if got := res.Tier("strike_rate").Label; got != "explosive" {
		t.Errorf("tier = %q, want explosive", got)
	}
}

func TestBattingStrikeRateNotOut(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), BattingStrikeRate{}, map[string]any{
		"runs": 45.0, "balls": 60.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value("average") != 0 {
		t.Error("average should be absent when never dismissed")
	}
	if len(res.Notes) == 0 {
		t.Error("expected a note about the undefined average")
	}
}

func TestRunRate(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), RunRate{}, map[string]any{
		"runs": 120.0, "overs": 20.0, "target": 280.0, "total_overs": 50.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("current_rate"); got != 6 {
		t.Errorf("current_rate = %v, want 6", got)
	}
	// Need 160 off 30 overs.
	if got := res.Value("required_rate"); math.Abs(got-160.0/30) > 0.01 {
		t.Errorf("required_rate = %v, want %.2f", got, 160.0/30)
	}
	if got := res.Value("balls_left"); got != 180 {
		t.Errorf("balls_left = %v, want 180", got)
	}
}

func TestRunRateGuards(t *testing.T) {
	_, err := calc.Evaluate(context.Background(), RunRate{}, map[string]any{
		"runs": 100.0, "overs": 20.0, "target": 250.0,
	})
	if err == nil {
		t.Fatal("expected error when target set without total overs")
	}

	_, err = calc.Evaluate(context.Background(), RunRate{}, map[string]any{
		"runs": 100.0, "overs": 50.0, "target": 250.0, "total_overs": 50.0,
	})
	if err == nil {
		t.Fatal("expected error when no balls remain")
	}
}

func TestRunRateTargetAlreadyPassed(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), RunRate{}, map[string]any{
		"runs": 260.0, "overs": 45.0, "target": 250.0, "total_overs": 50.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("required_rate"); got != 0 {
		t.Errorf("required_rate = %v, want 0 once past the target", got)
	}
}

func TestRunningPace(t *testing.T) {
	// 10 km in 50 minutes: 300 s/km, 12 km/h.
	res, err := calc.Evaluate(context.Background(), RunningPace{}, map[string]any{
		"distance": 10.0, "minutes": 50.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("pace_seconds"); got != 300 {
		t.Errorf("pace_seconds = %v, want 300", got)
	}
	if got := res.Value("speed"); got != 12 {
		t.Errorf("speed = %v, want 12", got)
	}
	if res.Table == nil || len(res.Table.Rows) != 4 {
		t.Fatal("expected four race projections")
	}
	// 5K at 300 s/km is 25 minutes flat.
	if got := res.Table.Rows[0]; got[0] != "5K" || got[1] != "5" || got[2] != "25:00" {
		t.Errorf("5K projection row = %v, want [5K 5 25:00]", got)
	}
	if got := res.Table.Rows[2]; got[1] != "21.0975" {
		t.Errorf("half marathon distance cell = %q, want 21.0975", got[1])
	}
}

func TestRunningPaceZeroTime(t *testing.T) {
	_, err := calc.Evaluate(context.Background(), RunningPace{}, map[string]any{
		"distance": 5.0,
	})
	if err == nil {
		t.Fatal("expected error for zero total time")
	}
	if _, ok := calc.AsValidationError(err); !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestOneRepMax(t *testing.T) {
	// 100 kg × 5 reps: Epley 116.67, Brzycki 112.5.
	res, err := calc.Evaluate(context.Background(), OneRepMax{}, map[string]any{
		"weight": 100.0, "reps": 5.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("epley"); math.Abs(got-116.7) > 0.01 {
		t.Errorf("epley = %v, want 116.7", got)
	}
	if got := res.Value("brzycki"); math.Abs(got-112.5) > 0.01 {
		t.Errorf("brzycki = %v, want 112.5", got)
	}
	if res.Table == nil || len(res.Table.Rows) != 3 {
		t.Fatal("expected three training-load rows")
	}
	// Strength row: 90% of the 114.6 average is 103.1 kg.
	if got := res.Table.Rows[0]; got[0] != "Strength" || got[1] != "90%" || got[2] != "103.1" {
		t.Errorf("strength row = %v, want [Strength 90%% 103.1 2-4]", got)
	}
}

func TestOneRepMaxSingle(t *testing.T) {
	res, err := calc.Evaluate(context.Background(), OneRepMax{}, map[string]any{
		"weight": 140.0, "reps": 1.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Value("one_rep_max"); got != 140 {
		t.Errorf("one_rep_max = %v, a single is already the max", got)
	}
}
