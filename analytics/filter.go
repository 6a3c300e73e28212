package analytics

import (
	"time"

	"vahan-analytics/models"
)

// FilterOptions narrows a record collection. Zero values mean "no
// constraint": a zero From/To skips the date check, empty slices allow
// every category/manufacturer.
type FilterOptions struct {
	From          time.Time
	To            time.Time
	Categories    []models.Category
	Manufacturers []string
}

// IsZero reports whether no constraint is set.
func (o FilterOptions) IsZero() bool {
	return o.From.IsZero() && o.To.IsZero() && len(o.Categories) == 0 && len(o.Manufacturers) == 0
}

// Filter returns the records matching opts, in input order. The input
// slice is never modified — the result is a fresh projection, so the
// shared collection stays immutable for other consumers.
func Filter(records []models.RegistrationRecord, opts FilterOptions) []models.RegistrationRecord {
	if opts.IsZero() {
		out := make([]models.RegistrationRecord, len(records))
		copy(out, records)
		return out
	}

	catSet := make(map[models.Category]struct{}, len(opts.Categories))
	for _, c := range opts.Categories {
		catSet[c] = struct{}{}
	}
	mfrSet := make(map[string]struct{}, len(opts.Manufacturers))
	for _, m := range opts.Manufacturers {
		mfrSet[m] = struct{}{}
	}

	out := make([]models.RegistrationRecord, 0, len(records))
	for _, rec := range records {
		if !opts.From.IsZero() && rec.Date.Before(opts.From) {
			continue
		}
		if !opts.To.IsZero() && rec.Date.After(opts.To) {
			continue
		}
		if len(catSet) > 0 {
			if _, ok := catSet[rec.Category]; !ok {
				continue
			}
		}
		if len(mfrSet) > 0 {
			if _, ok := mfrSet[rec.Manufacturer]; !ok {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

// DateRange returns the earliest and latest record dates. ok is false
// for an empty collection.
func DateRange(records []models.RegistrationRecord) (min, max time.Time, ok bool) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = records[0].Date, records[0].Date
	for _, rec := range records[1:] {
		if rec.Date.Before(min) {
			min = rec.Date
		}
		if rec.Date.After(max) {
			max = rec.Date
		}
	}
	return min, max, true
}
