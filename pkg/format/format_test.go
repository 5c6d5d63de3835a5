package format

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.0},
		{1.006, 1.01},
		{2.678, 2.68},
		{100.554, 100.55},
		{-1.234, -1.23},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234567.891, "$1,234,567.89"},
		{0, "$0.00"},
		{999.999, "$1,000.00"},
		{-45.5, "-$45.50"},
		{12, "$12.00"},
	}
	for _, tt := range tests {
		if got := Currency(tt.in, "$"); got != tt.want {
			t.Errorf("Currency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   string
	}{
		{1234567.894, 2, "1,234,567.89"},
		{1000, 0, "1,000"},
		{-2500.5, 1, "-2,500.5"},
		{12.3456, 3, "12.346"},
	}
	for _, tt := range tests {
		if got := Number(tt.in, tt.places); got != tt.want {
			t.Errorf("Number(%v, %d) = %q, want %q", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1927345, "1.93M"},
		{1500, "1.50K"},
		{2.5e9, "2.50B"},
		{-3.2e12, "-3.20T"},
		{42, "42.00"},
	}
	for _, tt := range tests {
		if got := Compact(tt.in); got != tt.want {
			t.Errorf("Compact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMonths(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0 months"},
		{1, "1 month"},
		{11, "11 months"},
		{12, "1 year"},
		{25, "2 years 1 month"},
		{36, "3 years"},
	}
	for _, tt := range tests {
		if got := Months(tt.in); got != tt.want {
			t.Errorf("Months(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{65, "1:05"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{299.6, "5:00"},
	}
	for _, tt := range tests {
		if got := Clock(tt.in); got != tt.want {
			t.Errorf("Clock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
