package vahan

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"vahan-analytics/config"
	"vahan-analytics/models"
)

// Parameter ranges mirror observed Vahan registration patterns: monthly
// volumes per category, a festival-season lift in the second half of
// the year, flagship-manufacturer share, and year-over-year growth.
const (
	startYear = 2022
	endYear   = 2024

	festivalMultiplier  = 1.3
	offSeasonMultiplier = 0.9
)

var manufacturers = map[models.Category][]string{
	models.TwoWheeler:   {"Hero MotoCorp", "Honda", "TVS", "Bajaj", "Yamaha", "Royal Enfield"},
	models.ThreeWheeler: {"Bajaj Auto", "Mahindra", "TVS", "Piaggio", "Force Motors"},
	models.FourWheeler:  {"Maruti Suzuki", "Hyundai", "Tata Motors", "Mahindra", "Honda Cars", "Toyota", "Kia"},
}

var vehicleClasses = map[models.Category][]string{
	models.TwoWheeler:   {"MOTORCYCLE", "SCOOTER", "MOPED"},
	models.ThreeWheeler: {"AUTO RICKSHAW", "3W GOODS VEHICLE", "E-RICKSHAW"},
	models.FourWheeler:  {"MOTOR CAR", "SUV", "COMMERCIAL VEHICLE", "BUS"},
}

// Only the first five states carry data, matching the demo dataset.
var states = []string{"Maharashtra", "Tamil Nadu", "Karnataka", "Gujarat", "Uttar Pradesh"}

// baseVolume holds the monthly registration range [lo, hi) per category.
var baseVolume = map[models.Category][2]int64{
	models.TwoWheeler:   {5000, 20000},
	models.ThreeWheeler: {500, 3000},
	models.FourWheeler:  {2000, 10000},
}

// Generator synthesizes the registration dataset the dashboard would
// otherwise scrape from the Vahan portal. The seed comes from config —
// the randomness source is explicit and local, never a process-wide
// global — so one seed always yields the identical dataset.
type Generator struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
}

// New creates a Generator for the configured seed.
func New(cfg *config.Config, logger *zap.SugaredLogger) *Generator {
	return &Generator{cfg: cfg, logger: logger}
}

// Generate produces one record per (month, category, manufacturer,
// state) combination for three years of history.
func (g *Generator) Generate() []models.RegistrationRecord {
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	records := make([]models.RegistrationRecord, 0, 4096)

	for year := startYear; year <= endYear; year++ {
		for m := 1; m <= 12; m++ {
			for _, category := range models.KnownCategories {
				for _, manufacturer := range manufacturers[category] {
					for _, state := range states {
						records = append(records, g.record(rng, year, m, category, manufacturer, state))
					}
				}
			}
		}
	}

	g.logger.Infow("generated mock registration dataset",
		"records", len(records), "seed", g.cfg.Seed,
		"years", fmt.Sprintf("%d-%d", startYear, endYear))
	return records
}

func (g *Generator) record(rng *rand.Rand, year, m int, category models.Category, manufacturer, state string) models.RegistrationRecord {
	seasonal := offSeasonMultiplier
	if m >= 7 {
		seasonal = festivalMultiplier
	}

	lo, hi := baseVolume[category][0], baseVolume[category][1]
	base := lo + rng.Int63n(hi-lo)

	registrations := int64(float64(base) *
		seasonal *
		shareMultiplier(manufacturer) *
		yearMultiplier(year) *
		(0.8 + rng.Float64()*0.4))

	date := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	class := vehicleClasses[category][rng.Intn(len(vehicleClasses[category]))]
	rto := fmt.Sprintf("%s%02d", strings.ToUpper(state[:2]), 1+rng.Intn(98))

	return models.NewRegistrationRecord(date, category, class, manufacturer, state, rto, registrations)
}

// shareMultiplier lifts the market leaders above the pack.
func shareMultiplier(manufacturer string) float64 {
	switch manufacturer {
	case "Hero MotoCorp", "Maruti Suzuki":
		return 1.4
	case "Honda", "Hyundai":
		return 1.2
	default:
		return 1.0
	}
}

// yearMultiplier applies the historical growth trend.
func yearMultiplier(year int) float64 {
	switch year {
	case 2024:
		return 1.15
	case 2023:
		return 1.08
	default:
		return 1.0
	}
}
