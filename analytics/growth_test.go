package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vahan-analytics/models"
)

// Regression for the zero-previous policy: growth against a zero base
// is 0 everywhere, including when current is positive.
func TestGrowthZeroPreviousPolicy(t *testing.T) {
	assert.Equal(t, 0.0, Growth(100, 0))
	assert.Equal(t, 0.0, Growth(0, 0))
	assert.Equal(t, 50.0, Growth(150, 100))
	assert.Equal(t, -50.0, Growth(100, 200))
	assert.Equal(t, -100.0, Growth(0, 200))
}

func TestGrowthSummaryWindows(t *testing.T) {
	latest := month(2024, 12)
	w := windowsFor(latest)

	records := []models.RegistrationRecord{
		// 2W: current 150, previous quarter 100, previous year 75.
		rec(latest, models.TwoWheeler, "Hero MotoCorp", "Delhi", 150),
		rec(month(2024, 7), models.TwoWheeler, "Hero MotoCorp", "Delhi", 100),
		rec(month(2023, 10), models.TwoWheeler, "Hero MotoCorp", "Delhi", 75),
		// 3W: rows only in the current window.
		rec(latest, models.ThreeWheeler, "Bajaj Auto", "Delhi", 40),
	}

	// Sanity on the window boundaries the fixture relies on.
	require.True(t, w.inCurrent(latest))
	require.True(t, w.inPrevQuarter(month(2024, 7)))
	require.True(t, w.inPrevYear(month(2023, 10)))

	s := GrowthSummaryFor(records)

	two := s.ByCategory[models.TwoWheeler]
	assert.Equal(t, int64(150), two.QoQ.Current)
	assert.Equal(t, int64(100), two.QoQ.Previous)
	assert.Equal(t, 50.0, two.QoQ.GrowthPct)
	assert.Equal(t, int64(75), two.YoY.Previous)
	assert.Equal(t, 100.0, two.YoY.GrowthPct)

	// Explicit zero-fill: 3W had no rows in either comparison window,
	// so both growth figures follow the zero-previous policy.
	three := s.ByCategory[models.ThreeWheeler]
	assert.Equal(t, int64(40), three.QoQ.Current)
	assert.Equal(t, int64(0), three.QoQ.Previous)
	assert.Equal(t, 0.0, three.QoQ.GrowthPct)
	assert.Equal(t, 0.0, three.YoY.GrowthPct)

	// 4W never appears but still has an entry in the typed map.
	four, ok := s.ByCategory[models.FourWheeler]
	require.True(t, ok)
	assert.Equal(t, models.CategoryGrowth{}, four)

	// Grand total row spans all categories.
	assert.Equal(t, int64(190), s.Total.QoQ.Current)
	assert.Equal(t, int64(100), s.Total.QoQ.Previous)
	assert.Equal(t, 90.0, s.Total.QoQ.GrowthPct)
}

func TestGrowthSummaryEmptyInput(t *testing.T) {
	s := GrowthSummaryFor(nil)
	require.Len(t, s.ByCategory, len(models.KnownCategories))
	for _, c := range models.KnownCategories {
		assert.Equal(t, models.CategoryGrowth{}, s.ByCategory[c])
	}
	assert.Equal(t, models.CategoryGrowth{}, s.Total)
}

// The YoY window is a fixed 365-day shift, not calendar arithmetic.
func TestYearWindowIsFixedOffset(t *testing.T) {
	latest := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) // 2024 is a leap year
	w := windowsFor(latest)
	assert.Equal(t, time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC), w.prevYTo,
		"365-day shift lands one calendar day off across a leap year")
}
