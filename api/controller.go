package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"vahan-analytics/analytics"
	"vahan-analytics/models"
	"vahan-analytics/services"
)

const dateLayout = "2006-01-02"

// Controller answers the read-only analytics endpoints over one
// immutable record collection.
type Controller struct {
	records  []models.RegistrationRecord
	insights *services.InsightService
}

// NewController creates a Controller for the given dataset.
func NewController(records []models.RegistrationRecord, insights *services.InsightService) *Controller {
	return &Controller{records: records, insights: insights}
}

// GetRange reports the dataset's date bounds and size.
func (c *Controller) GetRange(ctx echo.Context) error {
	type response struct {
		MinDate *time.Time `json:"min_date,omitempty"`
		MaxDate *time.Time `json:"max_date,omitempty"`
		Records int        `json:"records"`
	}

	resp := response{Records: len(c.records)}
	if min, max, ok := analytics.DateRange(c.records); ok {
		resp.MinDate, resp.MaxDate = &min, &max
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetGrowth returns the YoY/QoQ growth summary, optionally narrowed by
// from/to dates, categories, and manufacturers.
func (c *Controller) GetGrowth(ctx echo.Context) error {
	opts, err := filterOptions(ctx)
	if err != nil {
		return err
	}
	records := analytics.Filter(c.records, opts)
	return ctx.JSON(http.StatusOK, analytics.GrowthSummaryFor(records))
}

// GetShare returns the market-share ranking for one dimension
// (group_by = manufacturer | category | state; default manufacturer).
func (c *Controller) GetShare(ctx echo.Context) error {
	groupBy := ctx.QueryParam("group_by")
	if groupBy == "" {
		groupBy = string(analytics.DimManufacturer)
	}

	var dim analytics.Dimension
	switch groupBy {
	case string(analytics.DimManufacturer):
		dim = analytics.DimManufacturer
	case string(analytics.DimCategory):
		dim = analytics.DimCategory
	case string(analytics.DimState):
		dim = analytics.DimState
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unsupported group_by %q", groupBy))
	}

	return ctx.JSON(http.StatusOK, analytics.MarketShare(c.records, dim))
}

// GetSeasonality returns the per-calendar-month seasonal profile.
func (c *Controller) GetSeasonality(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, analytics.SeasonalIndex(c.records))
}

// GetLeaders returns the growth-leader ranking
// (period = yoy | qoq; default yoy).
func (c *Controller) GetLeaders(ctx echo.Context) error {
	period := analytics.PeriodYoY
	switch ctx.QueryParam("period") {
	case "", string(analytics.PeriodYoY):
	case string(analytics.PeriodQoQ):
		period = analytics.PeriodQoQ
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unsupported period %q", ctx.QueryParam("period")))
	}

	return ctx.JSON(http.StatusOK, analytics.GrowthLeaders(c.records, period))
}

// GetAggregate runs an ad-hoc group-by-sum
// (dimensions = comma list; bucket = none | month | quarter | year).
func (c *Controller) GetAggregate(ctx echo.Context) error {
	dims, err := analytics.ParseDimensions(ctx.QueryParam("dimensions"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bucket, err := analytics.ParseBucket(ctx.QueryParam("bucket"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	agg := analytics.Aggregate(c.records, dims, bucket)
	return ctx.JSON(http.StatusOK, agg.Entries())
}

// GetSummary returns the labeled insight sentences.
func (c *Controller) GetSummary(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.insights.Summary(c.records))
}

// GetQuality returns dataset health metrics.
func (c *Controller) GetQuality(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.insights.Quality(c.records))
}

func filterOptions(ctx echo.Context) (analytics.FilterOptions, error) {
	var opts analytics.FilterOptions

	if v := ctx.QueryParam("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return opts, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("bad from date %q", v))
		}
		opts.From = t
	}
	if v := ctx.QueryParam("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return opts, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("bad to date %q", v))
		}
		opts.To = t
	}
	if v := ctx.QueryParam("categories"); v != "" {
		for _, part := range strings.Split(v, ",") {
			opts.Categories = append(opts.Categories, models.Category(strings.TrimSpace(part)))
		}
	}
	if v := ctx.QueryParam("manufacturers"); v != "" {
		for _, part := range strings.Split(v, ",") {
			opts.Manufacturers = append(opts.Manufacturers, strings.TrimSpace(part))
		}
	}
	return opts, nil
}
