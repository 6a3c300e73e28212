package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vahan-analytics/models"
)

func rec(date time.Time, cat models.Category, mfr, state string, n int64) models.RegistrationRecord {
	return models.NewRegistrationRecord(date, cat, "MOTORCYCLE", mfr, state, "MH01", n)
}

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestAggregatePreservesTotalMass(t *testing.T) {
	records := []models.RegistrationRecord{
		rec(month(2024, 1), models.TwoWheeler, "Hero MotoCorp", "Maharashtra", 5000),
		rec(month(2024, 2), models.FourWheeler, "Maruti Suzuki", "Gujarat", 3000),
		rec(month(2024, 2), models.TwoWheeler, "Honda", "Delhi", 1200),
		rec(month(2024, 3), models.ThreeWheeler, "Bajaj Auto", "Maharashtra", 700),
	}

	var want int64
	for _, r := range records {
		want += r.Registrations
	}

	noDims := Aggregate(records, nil, BucketNone)
	require.Equal(t, 1, noDims.Len())
	assert.Equal(t, want, noDims.GrandTotal())

	// Mass is preserved under any grouping.
	byState := Aggregate(records, []Dimension{DimState, DimManufacturer}, BucketQuarter)
	assert.Equal(t, want, byState.GrandTotal())
}

func TestAggregateMonthCategoryFixture(t *testing.T) {
	// Month 1: {A:100, B:200}; month 2: {A:150, B:100}.
	records := []models.RegistrationRecord{
		rec(month(2024, 1), "A", "M", "S", 100),
		rec(month(2024, 1), "B", "M", "S", 200),
		rec(month(2024, 2), "A", "M", "S", 150),
		rec(month(2024, 2), "B", "M", "S", 100),
	}

	agg := Aggregate(records, []Dimension{DimCategory}, BucketMonth)
	require.Equal(t, 4, agg.Len())

	for _, tc := range []struct {
		bucket string
		cat    string
		want   int64
	}{
		{"2024-01", "A", 100},
		{"2024-01", "B", 200},
		{"2024-02", "A", 150},
		{"2024-02", "B", 100},
	} {
		got, ok := agg.Total(tc.bucket, tc.cat)
		require.True(t, ok, "missing entry (%s, %s)", tc.bucket, tc.cat)
		assert.Equal(t, tc.want, got)
	}

	a1, _ := agg.Total("2024-01", "A")
	a2, _ := agg.Total("2024-02", "A")
	b1, _ := agg.Total("2024-01", "B")
	b2, _ := agg.Total("2024-02", "B")
	assert.Equal(t, 50.0, Growth(a2, a1))
	assert.Equal(t, -50.0, Growth(b2, b1))
}

func TestAggregateTotalsIgnoreRowOrder(t *testing.T) {
	records := []models.RegistrationRecord{
		rec(month(2023, 5), models.TwoWheeler, "Hero MotoCorp", "Delhi", 10),
		rec(month(2023, 5), models.TwoWheeler, "Hero MotoCorp", "Delhi", 20),
		rec(month(2023, 6), models.TwoWheeler, "TVS", "Delhi", 5),
	}
	reversed := []models.RegistrationRecord{records[2], records[1], records[0]}

	a := Aggregate(records, []Dimension{DimManufacturer}, BucketNone)
	b := Aggregate(reversed, []Dimension{DimManufacturer}, BucketNone)

	for _, mfr := range []string{"Hero MotoCorp", "TVS"} {
		av, aok := a.Total("", mfr)
		bv, bok := b.Total("", mfr)
		require.True(t, aok)
		require.True(t, bok)
		assert.Equal(t, av, bv)
	}
}

func TestAggregateAbsentCombinationsAbsent(t *testing.T) {
	records := []models.RegistrationRecord{
		rec(month(2024, 1), models.TwoWheeler, "Honda", "Delhi", 10),
	}
	agg := Aggregate(records, []Dimension{DimCategory}, BucketNone)

	_, ok := agg.Total("", string(models.FourWheeler))
	assert.False(t, ok, "no zero-fill for categories absent from input")
}

func TestAggregateUnknownCategoryPassesThrough(t *testing.T) {
	records := []models.RegistrationRecord{
		rec(month(2024, 1), "EV", "Ola Electric", "Karnataka", 42),
	}
	agg := Aggregate(records, []Dimension{DimCategory}, BucketNone)

	got, ok := agg.Total("", "EV")
	require.True(t, ok)
	assert.Equal(t, int64(42), got)
}

func TestAggregateEmptyInput(t *testing.T) {
	agg := Aggregate(nil, []Dimension{DimCategory}, BucketMonth)
	assert.Equal(t, 0, agg.Len())
	assert.Equal(t, int64(0), agg.GrandTotal())
}

func TestParseDimensionsAndBucket(t *testing.T) {
	dims, err := ParseDimensions("category, state")
	require.NoError(t, err)
	assert.Equal(t, []Dimension{DimCategory, DimState}, dims)

	_, err = ParseDimensions("category,bogus")
	assert.Error(t, err)

	b, err := ParseBucket("quarter")
	require.NoError(t, err)
	assert.Equal(t, BucketQuarter, b)

	_, err = ParseBucket("weekly")
	assert.Error(t, err)
}
