package simulation

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonalMultiplier(t *testing.T) {
	cases := []struct {
		month time.Month
		want  float64
	}{
		{time.January, 0.6},
		{time.June, 1.5},
		{time.December, 0.5},
	}
	for _, tc := range cases {
		got := SeasonalMultiplier(date(2024, tc.month, 15))
		if got != tc.want {
			t.Errorf("SeasonalMultiplier(%s) = %v, want %v", tc.month, got, tc.want)
		}
	}
}

func TestGrowthMultiplier(t *testing.T) {
	if got := GrowthMultiplier(date(2022, time.May, 1)); got != 0.7 {
		t.Errorf("2022 growth = %v, want 0.7", got)
	}
	if got := GrowthMultiplier(date(2025, time.May, 1)); got != 1.1 {
		t.Errorf("2025 growth = %v, want 1.1", got)
	}
	// Years past the table fall back to the plateau.
	if got := GrowthMultiplier(date(2031, time.May, 1)); got != defaultGrowth {
		t.Errorf("2031 growth = %v, want %v", got, defaultGrowth)
	}
}

func TestWeekdayMultiplier(t *testing.T) {
	// 2024-06-03 is a Monday.
	if got := WeekdayMultiplier(date(2024, time.June, 3)); got != 0.3 {
		t.Errorf("Monday = %v, want 0.3", got)
	}
	if got := WeekdayMultiplier(date(2024, time.June, 7)); got != 1.2 {
		t.Errorf("Friday = %v, want 1.2", got)
	}
	if got := WeekdayMultiplier(date(2024, time.June, 9)); got != 0.2 {
		t.Errorf("Sunday = %v, want 0.2", got)
	}
}

func TestIsBusinessDay(t *testing.T) {
	if !isBusinessDay(date(2024, time.June, 5)) {
		t.Error("Wednesday should be a business day")
	}
	if isBusinessDay(date(2024, time.June, 8)) {
		t.Error("Saturday should not be a business day")
	}
	if isBusinessDay(date(2024, time.June, 9)) {
		t.Error("Sunday should not be a business day")
	}
}

func TestPoissonMeanAndDeterminism(t *testing.T) {
	g1 := &Generator{rng: rand.New(rand.NewSource(7))}
	g2 := &Generator{rng: rand.New(rand.NewSource(7))}

	const n = 2000
	const mean = 150.0
	sum := 0
	for i := 0; i < n; i++ {
		a := g1.poisson(mean)
		b := g2.poisson(mean)
		if a != b {
			t.Fatalf("draw %d differs: %d vs %d", i, a, b)
		}
		sum += a
	}
	avg := float64(sum) / n
	if math.Abs(avg-mean) > 5 {
		t.Errorf("sample mean %v too far from %v", avg, mean)
	}
}
