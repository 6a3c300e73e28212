package services

import (
	"vahan-analytics/analytics"
	"vahan-analytics/models"
)

// Quality computes dataset health metrics: exact-duplicate rows, date
// coverage, and entity cardinality. Duplicates are reported, not
// removed — the collection is not deduplicated by design.
func (s *InsightService) Quality(records []models.RegistrationRecord) *models.QualityReport {
	report := &models.QualityReport{TotalRecords: len(records)}
	if len(records) == 0 {
		return report
	}

	report.EarliestDate, report.LatestDate, _ = analytics.DateRange(records)

	seen := make(map[models.RegistrationRecord]struct{}, len(records))
	manufacturers := make(map[string]struct{})
	statesSeen := make(map[string]struct{})
	catSeen := make(map[models.Category]struct{})

	for _, rec := range records {
		if _, dup := seen[rec]; dup {
			report.DuplicateRecords++
		} else {
			seen[rec] = struct{}{}
		}
		manufacturers[rec.Manufacturer] = struct{}{}
		statesSeen[rec.State] = struct{}{}
		if _, ok := catSeen[rec.Category]; !ok {
			catSeen[rec.Category] = struct{}{}
			report.Categories = append(report.Categories, rec.Category)
		}
	}

	report.UniqueManufacturers = len(manufacturers)
	report.UniqueStates = len(statesSeen)
	return report
}
