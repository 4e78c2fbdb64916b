package simulation

import (
	"math"
	"time"
)

// Monthly activity multipliers: spring/summer peak, winter trough.
var seasonalFactors = map[time.Month]float64{
	time.January:   0.6,
	time.February:  0.7,
	time.March:     0.9,
	time.April:     1.2,
	time.May:       1.4,
	time.June:      1.5,
	time.July:      1.3,
	time.August:    1.1,
	time.September: 1.0,
	time.October:   0.8,
	time.November:  0.6,
	time.December:  0.5,
}

// Year-over-year organic growth. Years past the table use defaultGrowth.
var growthFactors = map[int]float64{
	2022: 0.7,
	2023: 0.9,
	2024: 1.0,
	2025: 1.1,
}

const defaultGrowth = 1.2

// Weekday activity: Friday peak, weekend trough.
var weekdayFactors = map[time.Weekday]float64{
	time.Monday:    0.3,
	time.Tuesday:   0.8,
	time.Wednesday: 1.0,
	time.Thursday:  1.0,
	time.Friday:    1.2,
	time.Saturday:  0.4,
	time.Sunday:    0.2,
}

// SeasonalMultiplier returns the month factor for a date.
func SeasonalMultiplier(date time.Time) float64 {
	return seasonalFactors[date.Month()]
}

// GrowthMultiplier returns the year-over-year factor for a date.
func GrowthMultiplier(date time.Time) float64 {
	if f, ok := growthFactors[date.Year()]; ok {
		return f
	}
	return defaultGrowth
}

// WeekdayMultiplier returns the day-of-week factor for a date.
func WeekdayMultiplier(date time.Time) float64 {
	return weekdayFactors[date.Weekday()]
}

// ActivityLevel combines the three calendar multipliers.
func ActivityLevel(date time.Time) float64 {
	return SeasonalMultiplier(date) * GrowthMultiplier(date) * WeekdayMultiplier(date)
}

// isBusinessDay reports whether date falls Monday through Friday.
func isBusinessDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// poisson draws from a Poisson distribution with the given mean using
// Knuth's product method. The daily means here stay well below the range
// where exp(-mean) underflows.
func (g *Generator) poisson(mean float64) int {
	if mean <= 0 {
		return 0
	}
	l := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		p *= g.rng.Float64()
		if p <= l {
			return k
		}
		k++
	}
}
