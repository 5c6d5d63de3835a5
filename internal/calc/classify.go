package calc

import (
	"fmt"
	"math"
)

// Band is one threshold bucket of a classifier: every value strictly below
// UpTo (and not claimed by an earlier band) maps to Label and Advice.
// A chain of bands with ascending UpTo bounds and a final +Inf band
// partitions the whole value range with no gaps or overlaps.
type Band struct {
	UpTo   float64
	Label  string
	Advice string
}

// Open marks the final, unbounded band.
var Open = math.Inf(1)

// Classify maps v to the first band whose upper bound exceeds it.
// The last band catches everything else.
func Classify(metric string, v float64, bands []Band) Tier {
	for _, b := range bands {
		if v < b.UpTo {
			return Tier{Metric: metric, Label: b.Label, Advice: b.Advice}
		}
	}
	last := bands[len(bands)-1]
	return Tier{Metric: metric, Label: last.Label, Advice: last.Advice}
}

// CheckBands verifies a classifier chain is well-formed: non-empty, strictly
// ascending bounds, and a final unbounded band. Catalog tests run this over
// every classifier so the documented buckets always partition the range.
func CheckBands(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("no bands")
	}
	prev := math.Inf(-1)
	for i, b := range bands {
		if b.Label == "" {
			return fmt.Errorf("band %d: empty label", i)
		}
		if b.UpTo <= prev {
			return fmt.Errorf("band %d: bound %v not ascending", i, b.UpTo)
		}
		prev = b.UpTo
	}
	if !math.IsInf(bands[len(bands)-1].UpTo, 1) {
		return fmt.Errorf("last band must be unbounded")
	}
	return nil
}
