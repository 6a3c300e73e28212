package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vahan-analytics/models"
	"vahan-analytics/services"
	"vahan-analytics/utils"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func testRecords() []models.RegistrationRecord {
	mk := func(date time.Time, cat models.Category, mfr string, n int64) models.RegistrationRecord {
		return models.NewRegistrationRecord(date, cat, "MOTORCYCLE", mfr, "Maharashtra", "MA01", n)
	}
	return []models.RegistrationRecord{
		mk(month(2023, time.October), models.TwoWheeler, "Hero MotoCorp", 4000),
		mk(month(2024, time.July), models.TwoWheeler, "Hero MotoCorp", 5000),
		mk(month(2024, time.December), models.TwoWheeler, "Hero MotoCorp", 6000),
		mk(month(2024, time.December), models.FourWheeler, "Maruti Suzuki", 3000),
	}
}

func invoke(t *testing.T, handler echo.HandlerFunc, target string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return rec, handler(e.NewContext(req, rec))
}

func testController() *Controller {
	return NewController(testRecords(), services.NewInsightService(utils.NewLogger()))
}

func TestGetRange(t *testing.T) {
	rec, err := invoke(t, testController().GetRange, "/api/v1/records/range")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		MinDate time.Time `json:"min_date"`
		MaxDate time.Time `json:"max_date"`
		Records int       `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Records)
	assert.True(t, resp.MinDate.Equal(month(2023, time.October)))
	assert.True(t, resp.MaxDate.Equal(month(2024, time.December)))
}

func TestGetShareByCategory(t *testing.T) {
	rec, err := invoke(t, testController().GetShare, "/api/v1/share?group_by=category")
	require.NoError(t, err)

	var shares []models.ShareEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shares))
	require.Len(t, shares, 2)
	assert.Equal(t, "2W", shares[0].Name)
}

func TestGetShareRejectsUnknownDimension(t *testing.T) {
	_, err := invoke(t, testController().GetShare, "/api/v1/share?group_by=rocket")
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetGrowthWithFilters(t *testing.T) {
	rec, err := invoke(t, testController().GetGrowth, "/api/v1/metrics/growth?categories=2W")
	require.NoError(t, err)

	var resp models.GrowthSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	two := resp.ByCategory[models.TwoWheeler]
	assert.Equal(t, int64(6000), two.QoQ.Current)
	assert.Equal(t, int64(5000), two.QoQ.Previous)
}

func TestGetGrowthRejectsBadDate(t *testing.T) {
	_, err := invoke(t, testController().GetGrowth, "/api/v1/metrics/growth?from=yesterday")
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetAggregate(t *testing.T) {
	rec, err := invoke(t, testController().GetAggregate, "/api/v1/aggregate?dimensions=category&bucket=year")
	require.NoError(t, err)

	var entries []struct {
		Bucket string   `json:"bucket"`
		Keys   []string `json:"keys"`
		Total  int64    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 3) // (2023,2W), (2024,2W), (2024,4W)
}

func TestGetLeadersDefaultsToYoY(t *testing.T) {
	rec, err := invoke(t, testController().GetLeaders, "/api/v1/leaders")
	require.NoError(t, err)

	var leaders []models.Leader
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leaders))
	for _, l := range leaders {
		assert.Greater(t, l.Previous, int64(0))
	}
}

func TestGetSummaryAndQuality(t *testing.T) {
	rec, err := invoke(t, testController().GetSummary, "/api/v1/summary")
	require.NoError(t, err)
	var insights []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insights))
	assert.NotEmpty(t, insights)

	rec, err = invoke(t, testController().GetQuality, "/api/v1/quality")
	require.NoError(t, err)
	var q models.QualityReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, 4, q.TotalRecords)
}
