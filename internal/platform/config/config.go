package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// CalendarYear is the accounting year the period calendar covers.
	CalendarYear int

	// CashbookPath is the CSV the demo pipeline ingests.
	CashbookPath string
	// DefaultBankCode is the nominal cashbook movements post against.
	DefaultBankCode string
	// ReportsDir is where ledger listings and the trial balance are written.
	ReportsDir string

	// RateLimit uses the limiter format, e.g. "100-M" for 100 requests per minute.
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CALENDAR_YEAR", 2021)
	viper.SetDefault("CASHBOOK_PATH", "data/cashbook.csv")
	viper.SetDefault("DEFAULT_BANK_CODE", "nwa_ca")
	viper.SetDefault("REPORTS_DIR", "data/reports")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		CalendarYear:       viper.GetInt("CALENDAR_YEAR"),
		CashbookPath:       viper.GetString("CASHBOOK_PATH"),
		DefaultBankCode:    viper.GetString("DEFAULT_BANK_CODE"),
		ReportsDir:         viper.GetString("REPORTS_DIR"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.CalendarYear < 1900 || cfg.CalendarYear > 2200 {
		log.Printf("Warning: CALENDAR_YEAR %d looks wrong. Defaulting to 2021.\n", cfg.CalendarYear)
		cfg.CalendarYear = 2021
	}

	return cfg, nil
}
