package analytics

import (
	"math"
	"sort"

	"vahan-analytics/models"
)

// MarketShare ranks the entities of one dimension by their share of
// total registration volume. Percentages are rounded to 2 decimals and
// sorted descending; ties keep first-appearance order (stable sort).
// An empty collection yields an empty ranking.
func MarketShare(records []models.RegistrationRecord, dim Dimension) []models.ShareEntry {
	agg := Aggregate(records, []Dimension{dim}, BucketNone)
	grand := agg.GrandTotal()
	if grand == 0 {
		return nil
	}

	entries := make([]models.ShareEntry, 0, agg.Len())
	for _, e := range agg.Entries() {
		entries = append(entries, models.ShareEntry{
			Name:     e.Keys[0],
			Total:    e.Total,
			SharePct: round2(float64(e.Total) / float64(grand) * 100),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SharePct > entries[j].SharePct
	})
	return entries
}

// GrowthLeaders ranks manufacturers and categories by growth over the
// selected period, using the same 90-day window workflow as the
// headline metrics. Entities with zero previous-period volume are
// excluded from the ranking rather than scored as infinite growth,
// even when their current volume is positive. Sorted descending by
// growth percentage, first-appearance order on ties.
func GrowthLeaders(records []models.RegistrationRecord, period Period) []models.Leader {
	_, latest, ok := DateRange(records)
	if !ok {
		return nil
	}
	w := windowsFor(latest)

	var leaders []models.Leader
	collect := func(kind string, keyOf func(models.RegistrationRecord) string) {
		totals := collectWindowTotals(records, w, keyOf)
		for _, name := range totals.order {
			previous := totals.prevQ[name]
			if period == PeriodYoY {
				previous = totals.prevY[name]
			}
			if previous <= 0 {
				continue
			}
			current := totals.current[name]
			leaders = append(leaders, models.Leader{
				Kind:      kind,
				Name:      name,
				Current:   current,
				Previous:  previous,
				GrowthPct: Growth(current, previous),
			})
		}
	}

	collect("manufacturer", func(r models.RegistrationRecord) string { return r.Manufacturer })
	collect("category", func(r models.RegistrationRecord) string { return string(r.Category) })

	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].GrowthPct > leaders[j].GrowthPct
	})
	return leaders
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
