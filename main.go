package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vahan-analytics/api"
	"vahan-analytics/config"
	"vahan-analytics/generator/vahan"
	"vahan-analytics/models"
	"vahan-analytics/services"
	"vahan-analytics/storage"
	"vahan-analytics/utils"
)

func main() {
	logger := utils.NewLogger()
	defer func() { _ = logger.Sync() }()
	cfg := config.Load()

	logger.Info("=== Vehicle Registration Analytics starting ===")
	logger.Infof("Config — seed: %d | cache: %s | postgres: %v | api: %q",
		cfg.Seed, cfg.CachePath, cfg.PostgresEnabled, cfg.APIAddr)

	cache := storage.NewCSVStore(cfg.CachePath)

	var records []models.RegistrationRecord
	if cache.Exists() {
		var err error
		records, err = cache.FetchAll()
		if err != nil {
			logger.Errorf("Failed to load cached dataset: %v", err)
			os.Exit(1)
		}
		logger.Infof("Loaded %d records from cache %s", len(records), cfg.CachePath)
	} else {
		records = vahan.New(cfg, logger).Generate()
		if err := cache.Write(records); err != nil {
			logger.Errorf("Failed to write dataset cache: %v", err)
		} else {
			logger.Infof("Dataset cached to %s", cfg.CachePath)
		}
	}

	if len(records) == 0 {
		logger.Error("No registration data available. Exiting.")
		os.Exit(1)
	}

	if cfg.PostgresEnabled {
		pg, err := storage.NewPostgresStore(cfg.DSN())
		if err != nil {
			logger.Errorf("Failed to connect to PostgreSQL: %v", err)
			os.Exit(1)
		}
		defer pg.Close()

		if err := pg.Write(records); err != nil {
			logger.Errorf("PostgreSQL write failed: %v", err)
		} else if stored, err := pg.FetchAll(); err != nil {
			logger.Errorf("Failed to read registrations back from PostgreSQL: %v", err)
		} else {
			records = stored
			logger.Infof("Dataset stored in PostgreSQL (%d rows, table: registrations)", len(stored))
		}
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(records)
	insightSvc.Print(report)

	if _, err := insightSvc.ExportSummary(records, cfg.SummaryPath); err != nil {
		logger.Errorf("Summary export failed: %v", err)
	} else {
		logger.Infof("Insight summary written to %s", cfg.SummaryPath)
	}

	if cfg.APIAddr == "" {
		logger.Info("API_ADDR not set — done.")
		return
	}

	apiSvc := api.NewService(records, insightSvc, logger)
	go func() {
		if err := apiSvc.Serve(cfg.APIAddr); err != nil {
			logger.Errorf("API server failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Infof("Serving analytics API on %s", cfg.APIAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiSvc.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown error: %v", err)
	}
	logger.Info("API server stopped.")
}
