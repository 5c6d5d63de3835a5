package health

import (
	"fmt"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// Five-zone model as fractions of heart rate reserve (Karvonen).
var hrZones = []struct {
	name    string
	low, hi float64
	purpose string
}{
	{"Zone 1 (recovery)", 0.50, 0.60, "easy movement, active recovery"},
	{"Zone 2 (endurance)", 0.60, 0.70, "aerobic base, fat oxidation"},
	{"Zone 3 (tempo)", 0.70, 0.80, "sustained moderate effort"},
	{"Zone 4 (threshold)", 0.80, 0.90, "lactate threshold work"},
	{"Zone 5 (maximal)", 0.90, 1.00, "short intervals, peak power"},
}

// HeartRateZones computes five Karvonen training zones from age and
// resting heart rate.
type HeartRateZones struct{}

func (HeartRateZones) Info() calc.Info {
	return calc.Info{
		Slug:        "heart-rate-zones",
		Name:        "Heart Rate Zone Calculator",
		Category:    calc.CategoryHealth,
		Description: "Karvonen training zones from age and resting pulse",
	}
}

func (HeartRateZones) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "age", Label: "Age", Type: calc.TypeInteger, Unit: "years", Required: true, Min: calc.Ptr(minAge), Max: calc.Ptr(maxAge)},
		{Name: "resting_hr", Label: "Resting heart rate", Type: calc.TypeInteger, Unit: "bpm", Required: true, Min: calc.Ptr(30), Max: calc.Ptr(120)},
		{Name: "max_hr", Label: "Measured max heart rate", Type: calc.TypeInteger, Unit: "bpm", Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(230),
			Help: "optional; overrides the age-based 220−age estimate"},
	}}
}

func (HeartRateZones) Compute(in calc.Input) (*calc.Result, error) {
	resting := float64(in.Int("resting_hr"))
	maxHR := float64(in.Int("max_hr"))
	if maxHR == 0 {
		maxHR = 220 - float64(in.Int("age"))
	}
	if maxHR <= resting {
		return nil, fmt.Errorf("max heart rate must exceed resting heart rate")
	}
	reserve := maxHR - resting

	table := &calc.Table{
		Title:   "Training zones",
		Columns: []string{"Zone", "From (bpm)", "To (bpm)", "Purpose"},
	}
	for _, z := range hrZones {
		low := resting + reserve*z.low
		hi := resting + reserve*z.hi
		table.Rows = append(table.Rows, []string{
			z.name,
			fmt.Sprintf("%.0f", low),
			fmt.Sprintf("%.0f", hi),
			z.purpose,
		})
	}

	return &calc.Result{
		Values: []calc.Value{
			{Name: "max_hr", Label: "Max heart rate", Value: maxHR, Unit: "bpm"},
			{Name: "reserve", Label: "Heart rate reserve", Value: reserve, Unit: "bpm"},
			{Name: "zone2_low", Label: "Zone 2 floor", Value: format.RoundTo(resting+reserve*0.60, 0), Unit: "bpm"},
			{Name: "zone2_high", Label: "Zone 2 ceiling", Value: format.RoundTo(resting+reserve*0.70, 0), Unit: "bpm"},
		},
		Table: table,
	}, nil
}

func (HeartRateZones) Guide() calc.Guide {
	return calc.Guide{
		Summary: "The Karvonen method anchors training zones to your heart rate reserve, the span between resting and maximum pulse, which personalizes zones better than percentages of max alone.",
		Sections: []calc.GuideSection{
			{Heading: "Why reserve-based zones", Body: "Two athletes with the same max can have very different resting rates. Scaling from reserve shifts each zone to match fitness level."},
			{Heading: "Estimating max heart rate", Body: "220 minus age is a population average with a spread of ±10-12 bpm. A field test or a measured race max is worth entering if you have one."},
		},
		FAQs: []calc.FAQ{
			{Question: "Where should most training happen?", Answer: "Endurance plans typically put around 80% of weekly time in zones 1-2 and the rest in zones 4-5."},
		},
		Related: []string{"running-pace", "tdee"},
	}
}
