package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vahan-analytics/analytics"
	"vahan-analytics/models"
)

// Summary distills the dataset into an ordered list of labeled insight
// sentences for file-based reporting. Sections whose inputs are empty
// (no leaders, no seasonal data) are omitted rather than zero-filled.
func (s *InsightService) Summary(records []models.RegistrationRecord) []string {
	var insights []string

	if share := analytics.MarketShare(records, analytics.DimManufacturer); len(share) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Market Leadership: %s leads with %.1f%% market share",
			share[0].Name, share[0].SharePct))
	}

	if leaders := analytics.GrowthLeaders(records, analytics.PeriodYoY); len(leaders) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Fastest Growing: %s (%s) with %.1f%% YoY growth",
			leaders[0].Name, leaders[0].Kind, leaders[0].GrowthPct))
	}

	if peak, ok := analytics.PeakMonth(records); ok {
		insights = append(insights, fmt.Sprintf(
			"Peak Season: %s shows highest registration activity",
			peak.Month.String()[:3]))
	}

	if share := analytics.MarketShare(records, analytics.DimCategory); len(share) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Dominant Category: %s accounts for %.1f%% of total registrations",
			share[0].Name, share[0].SharePct))
	}

	return insights
}

// ExportSummary writes the insight sentences to a plain-text report
// and returns them.
func (s *InsightService) ExportSummary(records []models.RegistrationRecord, path string) ([]string, error) {
	insights := s.Summary(records)

	var b strings.Builder
	b.WriteString("Vehicle Registration Dashboard - Key Insights Summary\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	for _, insight := range insights {
		b.WriteString("- " + insight + "\n")
	}
	b.WriteString(fmt.Sprintf("\nGenerated on: %s\n", time.Now().Format("2006-01-02 15:04:05")))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("summary: create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return nil, fmt.Errorf("summary: write %q: %w", path, err)
	}

	s.logger.Infow("insight summary exported", "path", path, "insights", len(insights))
	return insights, nil
}
