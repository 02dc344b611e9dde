package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	StorageBackendFile     = "file"
	StorageBackendMemory   = "memory"
	StorageBackendPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string `mapstructure:"PORT" validate:"required,numeric"`
	IsProduction bool   `mapstructure:"IS_PRODUCTION"`
	LogLevel     string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	// Storage
	StorageBackend  string `mapstructure:"STORAGE_BACKEND" validate:"oneof=file memory postgres"`
	StorageFilePath string `mapstructure:"STORAGE_FILE_PATH" validate:"required_if=StorageBackend file"`
	DatabaseURL     string `mapstructure:"PGSQL_URL" validate:"required_if=StorageBackend postgres"`
	MigrationsPath  string `mapstructure:"MIGRATIONS_PATH"`

	// Upstream providers
	MarketAPIBaseURL      string        `mapstructure:"MARKET_API_BASE_URL" validate:"required,url"`
	MarketPageSize        int           `mapstructure:"MARKET_PAGE_SIZE" validate:"min=1,max=250"`
	MarketRefreshInterval time.Duration `mapstructure:"MARKET_REFRESH_INTERVAL" validate:"min=0"`
	ExchangeRateAPIURL    string        `mapstructure:"EXCHANGE_RATE_API_URL" validate:"required,url"`
	RatesRefreshInterval  time.Duration `mapstructure:"RATES_REFRESH_INTERVAL" validate:"min=0"`
	HTTPTimeout           time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"gt=0"`

	// Auth
	AuthEnabled       bool          `mapstructure:"AUTH_ENABLED"`
	JWTSecret         string        `mapstructure:"JWT_SECRET" validate:"required_if=AuthEnabled true"`
	JWTIssuer         string        `mapstructure:"JWT_ISSUER"`
	JWTExpiryDuration time.Duration `mapstructure:"JWT_EXPIRY_DURATION"`

	RateLimit       string `mapstructure:"RATE_LIMIT"`
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_BACKEND", StorageBackendFile)
	v.SetDefault("STORAGE_FILE_PATH", "data/portfolio_store.json")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("MARKET_API_BASE_URL", "https://api.coingecko.com/api/v3")
	v.SetDefault("MARKET_PAGE_SIZE", 100)
	v.SetDefault("MARKET_REFRESH_INTERVAL", "5m")
	v.SetDefault("EXCHANGE_RATE_API_URL", "https://api.exchangerate-api.com/v4/latest/USD")
	v.SetDefault("RATES_REFRESH_INTERVAL", "30m")
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "crypto-portfolio-tracker")
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		StorageBackend:  strings.ToLower(v.GetString("STORAGE_BACKEND")),
		StorageFilePath: v.GetString("STORAGE_FILE_PATH"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),

		MarketAPIBaseURL:   strings.TrimRight(v.GetString("MARKET_API_BASE_URL"), "/"),
		MarketPageSize:     v.GetInt("MARKET_PAGE_SIZE"),
		ExchangeRateAPIURL: v.GetString("EXCHANGE_RATE_API_URL"),

		AuthEnabled: v.GetBool("AUTH_ENABLED"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		JWTIssuer:   v.GetString("JWT_ISSUER"),

		RateLimit:       v.GetString("RATE_LIMIT"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
	}

	var err error
	if cfg.MarketRefreshInterval, err = parseDuration(v, "MARKET_REFRESH_INTERVAL"); err != nil {
		return nil, err
	}
	if cfg.RatesRefreshInterval, err = parseDuration(v, "RATES_REFRESH_INTERVAL"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = parseDuration(v, "HTTP_TIMEOUT"); err != nil {
		return nil, err
	}

	// Load JWT Expiry Duration (e.g., "60m", "24h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	cfg.JWTExpiryDuration, err = time.ParseDuration(jwtExpiryStr)
	if err != nil {
		cfg.JWTExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, cfg.JWTExpiryDuration)
	}

	if cfg.AuthEnabled && cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}
