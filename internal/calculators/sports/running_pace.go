package sports

import (
	"fmt"

	"github.com/calcsuite/calcsuite/internal/calc"
	"github.com/calcsuite/calcsuite/pkg/format"
)

// Common race distances in kilometers for the projection table.
var raceDistances = []struct {
	name string
	km   float64
}{
	{"5K", 5},
	{"10K", 10},
	{"Half marathon", 21.0975},
	{"Marathon", 42.195},
}

// RunningPace converts between distance, time and pace, and projects
// equivalent finish times over standard race distances.
type RunningPace struct{}

func (RunningPace) Info() calc.Info {
	return calc.Info{
		Slug:        "running-pace",
		Name:        "Running Pace Calculator",
		Category:    calc.CategorySports,
		Description: "Pace per kilometer with race time projections",
	}
}

func (RunningPace) Schema() calc.Schema {
	return calc.Schema{Fields: []calc.Field{
		{Name: "distance", Label: "Distance", Type: calc.TypeNumber, Unit: "km", Required: true, Min: calc.Ptr(0.1), Max: calc.Ptr(1000)},
		{Name: "hours", Label: "Hours", Type: calc.TypeInteger, Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(200)},
		{Name: "minutes", Label: "Minutes", Type: calc.TypeInteger, Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(59)},
		{Name: "seconds", Label: "Seconds", Type: calc.TypeInteger, Default: 0.0, Min: calc.Ptr(0), Max: calc.Ptr(59)},
	}}
}

func (RunningPace) Compute(in calc.Input) (*calc.Result, error) {
	distance := in.Number("distance")
	totalSec := float64(in.Int("hours")*3600 + in.Int("minutes")*60 + in.Int("seconds"))
	if totalSec <= 0 {
		return nil, &calc.ValidationError{Fields: []calc.FieldError{
			{Field: "minutes", Message: "enter a nonzero total time"},
		}}
	}

	paceSec := totalSec / distance
	speedKmh := distance / (totalSec / 3600)

	table := &calc.Table{
		Title:   "Projected race times at this pace",
		Columns: []string{"Race", "Distance (km)", "Time"},
	}
	for _, race := range raceDistances {
		table.Rows = append(table.Rows, []string{
			race.name,
			fmt.Sprintf("%g", race.km),
			format.Clock(paceSec * race.km),
		})
	}

	return &calc.Result{
		Values: []calc.Value{
			{Name: "pace_seconds", Label: "Pace per km", Value: format.RoundTo(paceSec, 1), Unit: "s/km"},
			{Name: "speed", Label: "Speed", Value: format.Round2(speedKmh), Unit: "km/h"},
		},
		Table: table,
		Notes: []string{"Pace per km: " + format.Clock(paceSec) + ". Projections assume an even pace, which flatters longer distances."},
	}, nil
}

func (RunningPace) Guide() calc.Guide {
	return calc.Guide{
		Summary: "Pace is time per kilometer. Given a distance and a finish time, the calculator reports pace, speed and projected times over standard race distances.",
		Sections: []calc.GuideSection{
			{Heading: "Projections", Body: "Straight-line scaling assumes you hold the same pace regardless of distance. Real performances slow 5-8% each time the distance doubles, so treat long projections as optimistic."},
		},
		FAQs: []calc.FAQ{
			{Question: "What pace is a four-hour marathon?", Answer: "42.195 km in 14400 seconds is about 5:41 per km, or 10.5 km/h."},
		},
		Related: []string{"heart-rate-zones", "speed"},
	}
}
