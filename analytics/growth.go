package analytics

import (
	"time"

	"vahan-analytics/models"
)

// Period selects which comparison window a growth computation uses.
type Period string

const (
	PeriodYoY Period = "yoy"
	PeriodQoQ Period = "qoq"
)

// Growth returns the percentage change from previous to current.
//
// Zero-previous policy: growth against a zero base is reported as 0,
// even when current is positive. The source dashboard disagreed with
// itself here (one call site said 100, another said 0); this package
// uses 0 everywhere. Rankings that would otherwise score an entity
// against a zero base exclude it instead (see GrowthLeaders).
func Growth(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

// growthWindows are the three 90-day comparison windows anchored at the
// latest date in the dataset. The year-over-year window is a fixed
// 365-day shift, not calendar-year arithmetic — it drifts across leap
// years, and that drift is the defined semantics.
type growthWindows struct {
	currentFrom time.Time // current: [currentFrom, latest]
	prevQFrom   time.Time // previous quarter: [prevQFrom, prevQTo)
	prevQTo     time.Time
	prevYFrom   time.Time // previous year: [prevYFrom, prevYTo)
	prevYTo     time.Time
}

func windowsFor(latest time.Time) growthWindows {
	const window = 90 * 24 * time.Hour
	prevQTo := latest.Add(-window)
	prevYTo := latest.Add(-365 * 24 * time.Hour)
	return growthWindows{
		currentFrom: prevQTo,
		prevQFrom:   prevQTo.Add(-window),
		prevQTo:     prevQTo,
		prevYFrom:   prevYTo.Add(-window),
		prevYTo:     prevYTo,
	}
}

func (w growthWindows) inCurrent(d time.Time) bool {
	return !d.Before(w.currentFrom)
}

func (w growthWindows) inPrevQuarter(d time.Time) bool {
	return !d.Before(w.prevQFrom) && d.Before(w.prevQTo)
}

func (w growthWindows) inPrevYear(d time.Time) bool {
	return !d.Before(w.prevYFrom) && d.Before(w.prevYTo)
}

// windowTotals sums registrations per key within each window. keyOf
// chooses the entity (category, manufacturer, ...). Keys absent from a
// window simply have total 0 — growth callers rely on that zero-fill.
type windowTotals struct {
	current map[string]int64
	prevQ   map[string]int64
	prevY   map[string]int64
	order   []string // first-appearance order across the whole dataset
}

func collectWindowTotals(records []models.RegistrationRecord, w growthWindows, keyOf func(models.RegistrationRecord) string) windowTotals {
	totals := windowTotals{
		current: make(map[string]int64),
		prevQ:   make(map[string]int64),
		prevY:   make(map[string]int64),
	}
	seen := make(map[string]struct{})

	for _, rec := range records {
		key := keyOf(rec)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			totals.order = append(totals.order, key)
		}
		switch {
		case w.inCurrent(rec.Date):
			totals.current[key] += rec.Registrations
		case w.inPrevQuarter(rec.Date):
			totals.prevQ[key] += rec.Registrations
		}
		// The previous-year window never overlaps the other two, but a
		// record can only be counted once above, so check it separately.
		if w.inPrevYear(rec.Date) {
			totals.prevY[key] += rec.Registrations
		}
	}
	return totals
}

// GrowthSummaryFor computes the headline YoY and QoQ growth per known
// category plus the grand total, using the 90-day window workflow.
// Categories with no rows in a window contribute an explicit zero.
func GrowthSummaryFor(records []models.RegistrationRecord) models.GrowthSummary {
	summary := models.GrowthSummary{
		ByCategory: make(map[models.Category]models.CategoryGrowth, len(models.KnownCategories)),
	}
	for _, c := range models.KnownCategories {
		summary.ByCategory[c] = models.CategoryGrowth{}
	}

	_, latest, ok := DateRange(records)
	if !ok {
		return summary
	}
	w := windowsFor(latest)
	totals := collectWindowTotals(records, w, func(r models.RegistrationRecord) string {
		return string(r.Category)
	})

	var curAll, prevQAll, prevYAll int64
	for _, key := range totals.order {
		curAll += totals.current[key]
		prevQAll += totals.prevQ[key]
		prevYAll += totals.prevY[key]
	}

	for _, c := range models.KnownCategories {
		key := string(c)
		summary.ByCategory[c] = models.CategoryGrowth{
			YoY: metric(totals.current[key], totals.prevY[key]),
			QoQ: metric(totals.current[key], totals.prevQ[key]),
		}
	}
	summary.Total = models.CategoryGrowth{
		YoY: metric(curAll, prevYAll),
		QoQ: metric(curAll, prevQAll),
	}
	return summary
}

func metric(current, previous int64) models.GrowthMetric {
	return models.GrowthMetric{
		Current:   current,
		Previous:  previous,
		GrowthPct: Growth(current, previous),
	}
}
