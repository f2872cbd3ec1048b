// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lagtech/expertos-api/pkg/businesstime"
)

// Config holds application configuration
type Config struct {
	DatabasePath string
	LogLevel     string
	Port         int
	DevMode      bool

	// Business calendar settings; parsed into a businesstime.Calendar at
	// startup, where invalid values are fatal.
	BusinessHoursStart string
	BusinessHoursEnd   string
	BusinessDays       string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnvAsInt("PORT", 3000),
		DevMode:            getEnvAsBool("DEV_MODE", false),
		DatabasePath:       getEnv("DATABASE_PATH", "./data/expertos.db"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		BusinessHoursStart: getEnv("BUSINESS_HOURS_START", "08:00"),
		BusinessHoursEnd:   getEnv("BUSINESS_HOURS_END", "18:00"),
		BusinessDays:       getEnv("BUSINESS_DAYS", "1,2,3,4,5"),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}

	return nil
}

// Calendar builds the business calendar from the configured settings.
// Invalid values are reported here so a misconfigured calendar is caught at
// startup rather than mid-request.
func (c *Config) Calendar() (businesstime.Calendar, error) {
	start, err := businesstime.ParseTimeOfDay(c.BusinessHoursStart)
	if err != nil {
		return businesstime.Calendar{}, fmt.Errorf("BUSINESS_HOURS_START: %w", err)
	}

	end, err := businesstime.ParseTimeOfDay(c.BusinessHoursEnd)
	if err != nil {
		return businesstime.Calendar{}, fmt.Errorf("BUSINESS_HOURS_END: %w", err)
	}

	weekdays, err := businesstime.ParseWeekdays(c.BusinessDays)
	if err != nil {
		return businesstime.Calendar{}, fmt.Errorf("BUSINESS_DAYS: %w", err)
	}

	return businesstime.NewCalendar(weekdays, start, end)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
