package analytics

import (
	"sort"
	"time"

	"vahan-analytics/models"
)

// SeasonalIndex profiles registration volume by calendar month, pooling
// every occurrence of a month across all years. For each month present
// in the data it reports the mean registrations per record and the
// seasonal index: month mean / mean of all month means × 100, rounded
// to 1 decimal. Months absent from the data yield no entry, so partial
// coverage produces a partial profile. Results are ordered Jan→Dec.
func SeasonalIndex(records []models.RegistrationRecord) []models.MonthIndex {
	sums := make(map[time.Month]int64)
	counts := make(map[time.Month]int)
	for _, rec := range records {
		m := rec.Date.Month()
		sums[m] += rec.Registrations
		counts[m]++
	}
	if len(counts) == 0 {
		return nil
	}

	means := make(map[time.Month]float64, len(counts))
	var meanOfMeans float64
	for m, n := range counts {
		means[m] = float64(sums[m]) / float64(n)
		meanOfMeans += means[m]
	}
	meanOfMeans /= float64(len(means))

	out := make([]models.MonthIndex, 0, len(means))
	for m, avg := range means {
		idx := 0.0
		if meanOfMeans != 0 {
			idx = round1(avg / meanOfMeans * 100)
		}
		out = append(out, models.MonthIndex{Month: m, AvgRegistrations: avg, Index: idx})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// PeakMonth returns the month with the highest seasonal index. ok is
// false when the collection is empty.
func PeakMonth(records []models.RegistrationRecord) (models.MonthIndex, bool) {
	profile := SeasonalIndex(records)
	if len(profile) == 0 {
		return models.MonthIndex{}, false
	}
	peak := profile[0]
	for _, mi := range profile[1:] {
		if mi.Index > peak.Index {
			peak = mi
		}
	}
	return peak, true
}
