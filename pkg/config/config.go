package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Run modes for the composition root.
const (
	RunModeServer = "server"
	RunModeCLI    = "cli"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	RunMode      string

	// Rate source settings
	RateAPIBaseURL   string
	RateFetchTimeout time.Duration

	// Per-IP request limit for the HTTP API
	RateLimitPerMinute int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RUN_MODE", RunModeServer)
	viper.SetDefault("RATE_API_BASE_URL", "https://api.frankfurter.dev")
	viper.SetDefault("RATE_FETCH_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.RunMode = viper.GetString("RUN_MODE")
	if cfg.RunMode != RunModeServer && cfg.RunMode != RunModeCLI {
		log.Printf("Warning: Invalid value for RUN_MODE ('%s'). Defaulting to %s.\n", cfg.RunMode, RunModeServer)
		cfg.RunMode = RunModeServer
	}

	cfg.RateAPIBaseURL = viper.GetString("RATE_API_BASE_URL")

	timeoutStr := viper.GetString("RATE_FETCH_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 5 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for RATE_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.RateFetchTimeout = timeout

	cfg.RateLimitPerMinute = viper.GetInt64("RATE_LIMIT_PER_MINUTE")
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 120
	}

	return cfg, nil
}
