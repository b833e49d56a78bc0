package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`
	AuthEnabled                      bool   `mapstructure:"AUTH_ENABLED"`

	// Redis is optional. Without it sheet responses are not cached and
	// reconciliation events are only logged.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	SheetAPIURL    string        `mapstructure:"SHEET_API_URL"`
	SheetRateLimit float64       `mapstructure:"SHEET_RATE_LIMIT"` // requests per second
	SheetTimeout   time.Duration `mapstructure:"SHEET_TIMEOUT"`
	SheetCacheTTL  time.Duration `mapstructure:"SHEET_CACHE_TTL"`

	ReconcileQueue       string `mapstructure:"RECONCILE_QUEUE"`
	ReconcileSchedule    string `mapstructure:"RECONCILE_SCHEDULE"`
	ReconcileMaxAttempts int    `mapstructure:"RECONCILE_MAX_ATTEMPTS"`
	ReconcileBatchSize   int    `mapstructure:"RECONCILE_BATCH_SIZE"`
}

var appConfig *Config

var envKeys = []string{
	"PORT",
	"GIN_MODE",
	"FIREBASE_PROJECT_ID",
	"GOOGLE_APPLICATION_CREDENTIALS",
	"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64",
	"CLIENT_URL",
	"AUTH_ENABLED",
	"REDIS_ADDR",
	"REDIS_PASSWORD",
	"REDIS_DB",
	"SHEET_API_URL",
	"SHEET_RATE_LIMIT",
	"SHEET_TIMEOUT",
	"SHEET_CACHE_TTL",
	"RECONCILE_QUEUE",
	"RECONCILE_SCHEDULE",
	"RECONCILE_MAX_ATTEMPTS",
	"RECONCILE_BATCH_SIZE",
}

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SHEET_API_URL", "https://fianancial-assistant-backend.onrender.com/api/v1")
	v.SetDefault("SHEET_RATE_LIMIT", 5.0)
	v.SetDefault("SHEET_TIMEOUT", 15*time.Second)
	v.SetDefault("SHEET_CACHE_TTL", 5*time.Minute)
	v.SetDefault("RECONCILE_QUEUE", "gptsolver:reconcile")
	v.SetDefault("RECONCILE_SCHEDULE", "@every 1m")
	v.SetDefault("RECONCILE_MAX_ATTEMPTS", 5)
	v.SetDefault("RECONCILE_BATCH_SIZE", 50)

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.New("failed to bind env " + key + ": " + err.Error())
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	appConfig = &cfg
	return appConfig, nil
}

// Validate checks required fields and sane bounds.
func (c *Config) Validate() error {
	if c.FirebaseProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required")
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.SheetAPIURL == "" {
		return errors.New("SHEET_API_URL is required")
	}
	if c.SheetRateLimit <= 0 {
		return errors.New("SHEET_RATE_LIMIT must be positive")
	}
	if c.ReconcileMaxAttempts <= 0 {
		return errors.New("RECONCILE_MAX_ATTEMPTS must be positive")
	}
	if c.ReconcileBatchSize <= 0 {
		return errors.New("RECONCILE_BATCH_SIZE must be positive")
	}
	return nil
}

// IsRelease reports whether gin should run in release mode.
func (c *Config) IsRelease() bool {
	return strings.EqualFold(c.GinMode, "release")
}

// GetConfig returns the loaded application configuration.
// It will panic if LoadConfig has not been called successfully.
func GetConfig() *Config {
	if appConfig == nil {
		panic("config not loaded; call LoadConfig first")
	}
	return appConfig
}
