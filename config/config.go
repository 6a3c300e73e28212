package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables. Everything that used to be ambient process state — the
// mock-data seed, the cache path — is an explicit value here.
type Config struct {
	// Mock-data generation
	Seed int64

	// Flat-file cache of the processed dataset
	CachePath string

	// Insight summary export
	SummaryPath string

	// PostgreSQL (optional persistence of the registration table)
	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// HTTP API for the presentation layer; empty disables the server
	APIAddr string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		Seed:        getEnvInt64("MOCK_DATA_SEED", 42),
		CachePath:   getEnv("CACHE_PATH", "./data/processed_vehicle_data.csv"),
		SummaryPath: getEnv("SUMMARY_PATH", "./output/insights_summary.txt"),

		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "vahan"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "vahan123"),
		PostgresDB:       getEnv("POSTGRES_DB", "vahan_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		APIAddr: getEnv("API_ADDR", ""),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.ParseInt(val, 10, 64)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
