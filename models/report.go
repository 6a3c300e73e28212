package models

import "time"

// GrowthMetric compares one period's registration volume against a
// reference period. GrowthPct is a signed percentage; callers round
// for display.
type GrowthMetric struct {
	Current   int64   `json:"current"`
	Previous  int64   `json:"previous"`
	GrowthPct float64 `json:"growth_pct"`
}

// CategoryGrowth holds the two headline comparisons for one category.
type CategoryGrowth struct {
	YoY GrowthMetric `json:"yoy"`
	QoQ GrowthMetric `json:"qoq"`
}

// GrowthSummary is the typed replacement for a stringly-keyed metrics
// map ("2w_yoy_growth", ...): one CategoryGrowth per category plus the
// grand total across all categories.
type GrowthSummary struct {
	ByCategory map[Category]CategoryGrowth `json:"by_category"`
	Total      CategoryGrowth              `json:"total"`
}

// ShareEntry is one row of a market-share ranking.
type ShareEntry struct {
	Name     string  `json:"name"`
	Total    int64   `json:"total"`
	SharePct float64 `json:"share_pct"`
}

// MonthIndex is the seasonal profile of one calendar month, pooled
// across all years in the dataset.
type MonthIndex struct {
	Month            time.Month `json:"month"`
	AvgRegistrations float64    `json:"avg_registrations"`
	Index            float64    `json:"seasonal_index"`
}

// Leader is one row of a growth-leader ranking. Kind is "manufacturer"
// or "category".
type Leader struct {
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	Current   int64   `json:"current"`
	Previous  int64   `json:"previous"`
	GrowthPct float64 `json:"growth_pct"`
}

// InsightReport holds the computed analytics over one dataset — the
// values behind the investor console report and the API responses.
type InsightReport struct {
	TotalRecords       int                `json:"total_records"`
	TotalRegistrations int64              `json:"total_registrations"`
	ByCategory         map[Category]int64 `json:"by_category"`
	Growth             GrowthSummary      `json:"growth"`
	ManufacturerShare  []ShareEntry       `json:"manufacturer_share"`
	CategoryShare      []ShareEntry       `json:"category_share"`
	Seasonality        []MonthIndex       `json:"seasonality"`
	Leaders            []Leader           `json:"leaders"`
}

// QualityReport summarizes dataset health for the quality endpoint.
type QualityReport struct {
	TotalRecords        int        `json:"total_records"`
	DuplicateRecords    int        `json:"duplicate_records"`
	EarliestDate        time.Time  `json:"earliest_date"`
	LatestDate          time.Time  `json:"latest_date"`
	UniqueManufacturers int        `json:"unique_manufacturers"`
	UniqueStates        int        `json:"unique_states"`
	Categories          []Category `json:"categories"`
}
