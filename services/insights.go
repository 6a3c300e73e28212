package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"vahan-analytics/analytics"
	"vahan-analytics/models"
)

// InsightService composes the analytics core into the investor-facing
// report. It never mutates the record collection it is handed.
type InsightService struct {
	logger *zap.SugaredLogger
}

// NewInsightService creates an InsightService with the given logger.
func NewInsightService(logger *zap.SugaredLogger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the full insight report. An empty collection
// yields an empty report, not an error.
func (s *InsightService) Generate(records []models.RegistrationRecord) *models.InsightReport {
	report := &models.InsightReport{
		TotalRecords: len(records),
		ByCategory:   make(map[models.Category]int64),
	}
	if len(records) == 0 {
		report.Growth = analytics.GrowthSummaryFor(records)
		return report
	}

	byCategory := analytics.Aggregate(records, []analytics.Dimension{analytics.DimCategory}, analytics.BucketNone)
	report.TotalRegistrations = byCategory.GrandTotal()
	for _, e := range byCategory.Entries() {
		report.ByCategory[models.Category(e.Keys[0])] = e.Total
	}

	report.Growth = analytics.GrowthSummaryFor(records)
	report.ManufacturerShare = analytics.MarketShare(records, analytics.DimManufacturer)
	report.CategoryShare = analytics.MarketShare(records, analytics.DimCategory)
	report.Seasonality = analytics.SeasonalIndex(records)
	report.Leaders = analytics.GrowthLeaders(records, analytics.PeriodYoY)

	s.logger.Infow("insight report generated",
		"records", report.TotalRecords,
		"total_registrations", report.TotalRegistrations,
		"manufacturers", len(report.ManufacturerShare))
	return report
}

// Print renders the report to stdout for the CLI run.
func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 58)
	thin := strings.Repeat("─", 58)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  VEHICLE REGISTRATION INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overall Registration Trends\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total registrations : \033[1m%s\033[0m (%s%.1f%% YoY)\n",
		analytics.FormatCount(r.TotalRegistrations), growthSign(r.Growth.Total.YoY.GrowthPct), r.Growth.Total.YoY.GrowthPct)
	for _, c := range models.KnownCategories {
		g := r.Growth.ByCategory[c]
		fmt.Printf("  %-19s : \033[1m%s\033[0m (%s%.1f%% YoY, %s%.1f%% QoQ)\n",
			c.Label(),
			analytics.FormatCount(r.ByCategory[c]),
			growthSign(g.YoY.GrowthPct), g.YoY.GrowthPct,
			growthSign(g.QoQ.GrowthPct), g.QoQ.GrowthPct)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top Manufacturers by Market Share\033[0m\n")
	fmt.Printf("  %s\n", thin)
	top := r.ManufacturerShare
	if len(top) > 5 {
		top = top[:5]
	}
	for i, sh := range top {
		fmt.Printf("  \033[1m%d.\033[0m %-22s %6.2f%%  (%s)\n",
			i+1, sh.Name, sh.SharePct, analytics.FormatCount(sh.Total))
	}
	if len(top) == 0 {
		fmt.Printf("  No manufacturer data\n")
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Seasonal Profile\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.Seasonality) == 0 {
		fmt.Printf("  No seasonal data\n")
	} else {
		for _, mi := range r.Seasonality {
			bar := strings.Repeat("█", int(mi.Index/10))
			fmt.Printf("  %-9s %6.1f  %s\n", mi.Month.String(), mi.Index, bar)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func growthSign(pct float64) string {
	if pct > 0 {
		return "+"
	}
	return ""
}
