package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"vahan-analytics/models"
	"vahan-analytics/services"
)

// Service serves the computed analytics as JSON for the presentation
// layer. It holds one immutable record collection for its lifetime;
// every handler reads it through non-destructive projections, so
// concurrent requests are safe without locking.
type Service struct {
	router *echo.Echo
	logger *zap.SugaredLogger
}

// ErrorResponse is the JSON envelope for failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// NewService wires the router, middleware, and controller routes.
func NewService(records []models.RegistrationRecord, insights *services.InsightService, logger *zap.SugaredLogger) *Service {
	svc := &Service{router: echo.New(), logger: logger}
	svc.router.HideBanner = true
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET},
		AllowHeaders: []string{"Content-Type"},
	}))

	cntrl := NewController(records, insights)
	api := svc.router.Group("/api/v1")

	api.GET("/records/range", cntrl.GetRange)
	api.GET("/metrics/growth", cntrl.GetGrowth)
	api.GET("/share", cntrl.GetShare)
	api.GET("/seasonality", cntrl.GetSeasonality)
	api.GET("/leaders", cntrl.GetLeaders)
	api.GET("/aggregate", cntrl.GetAggregate)
	api.GET("/summary", cntrl.GetSummary)
	api.GET("/quality", cntrl.GetQuality)

	return svc
}

// Serve blocks on the listener until shutdown.
func (s *Service) Serve(addr string) error {
	if err := s.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Service) Shutdown(ctx context.Context) error {
	return s.router.Shutdown(ctx)
}

func httpErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if !c.Response().Committed {
		_ = c.JSON(code, ErrorResponse{Message: msg, Code: code})
	}
}
