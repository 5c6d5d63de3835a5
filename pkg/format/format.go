// Package format provides number and duration formatting helpers shared by
// the CLI presenter and the export layer.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds a value to 2 decimal places. Every currency-like output in
// the catalog goes through this before rendering.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Currency formats an amount with a currency symbol and thousands grouping,
// e.g. Currency(1234567.891, "$") → "$1,234,567.89".
func Currency(amount float64, symbol string) string {
	negative := amount < 0
	amount = math.Abs(amount)

	intPart := int64(amount)
	frac := math.Round((amount - float64(intPart)) * 100)
	if frac >= 100 { // rounding carried into the integer part
		intPart++
		frac = 0
	}

	formatted := groupThousands(intPart) + fmt.Sprintf(".%02d", int64(frac))
	if negative {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// Number formats a value with thousands grouping and the given precision.
func Number(v float64, places int) string {
	negative := v < 0
	v = math.Abs(v)
	rounded := RoundTo(v, places)

	intPart := int64(rounded)
	out := groupThousands(intPart)
	if places > 0 {
		frac := rounded - float64(intPart)
		fracStr := fmt.Sprintf("%.*f", places, frac)
		out += fracStr[1:] // drop the leading "0"
	}
	if negative {
		return "-" + out
	}
	return out
}

// Percent formats a percentage value, e.g. Percent(12.345) → "12.35%".
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Compact formats a value in compact notation, e.g. 1927345 → "1.93M".
func Compact(v float64) string {
	negative := v < 0
	v = math.Abs(v)

	sign := ""
	if negative {
		sign = "-"
	}

	switch {
	case v >= 1e12:
		return fmt.Sprintf("%s%.2fT", sign, v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%s%.2fB", sign, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s%.2fM", sign, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s%.2fK", sign, v/1e3)
	default:
		return fmt.Sprintf("%s%.2f", sign, v)
	}
}

// Months renders a month count as "N months" or "Y years M months".
func Months(n int) string {
	if n < 0 {
		n = 0
	}
	years := n / 12
	months := n % 12
	switch {
	case years == 0:
		return fmt.Sprintf("%d month%s", months, plural(months))
	case months == 0:
		return fmt.Sprintf("%d year%s", years, plural(years))
	default:
		return fmt.Sprintf("%d year%s %d month%s", years, plural(years), months, plural(months))
	}
}

// Clock renders a duration in seconds as "h:mm:ss" or "m:ss".
func Clock(totalSeconds float64) string {
	s := int(math.Round(totalSeconds))
	if s < 0 {
		s = 0
	}
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	rem := len(s) % 3
	if rem > 0 {
		b.WriteString(s[:rem])
	}
	for i := rem; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
