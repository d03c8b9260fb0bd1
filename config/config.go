// config/config.go
package config

import (
	"fmt"
	"os"
)

// DefaultGvizBaseURL is the Google Sheets visualization API host.
const DefaultGvizBaseURL = "https://docs.google.com"

// Config holds all external configuration for the application.
// It is built once in main and passed into constructors so that no
// package reads ambient environment state.
type Config struct {
	SheetID       string
	UsersSheet    string
	PaymentsSheet string
	TripSheet     string
	ExpensesSheet string
	GvizBaseURL   string
	Port          string
}

// Load builds a Config from environment variables. SHEET_ID is required;
// sheet names default to the conventional tab names.
func Load() (*Config, error) {
	cfg := &Config{
		SheetID:       os.Getenv("SHEET_ID"),
		UsersSheet:    getEnvOrDefault("USERS_SHEET", "Users"),
		PaymentsSheet: getEnvOrDefault("PAYMENTS_SHEET", "Payments"),
		TripSheet:     getEnvOrDefault("TRIP_SHEET", "Trip"),
		ExpensesSheet: getEnvOrDefault("EXPENSES_SHEET", "Expenses"),
		GvizBaseURL:   getEnvOrDefault("GVIZ_BASE_URL", DefaultGvizBaseURL),
		Port:          getEnvOrDefault("PORT", "8080"),
	}

	if cfg.SheetID == "" {
		return nil, fmt.Errorf("SHEET_ID is required")
	}

	return cfg, nil
}

// Helper function to get environment variable with default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
