// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Cache    CacheConfig
	Exchange ExchangeConfig
	Search   SearchConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// ProviderConfig holds the upstream travel-data provider settings.
type ProviderConfig struct {
	BaseURL   string        `env:"PROVIDER_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	APIKey    string        `env:"PROVIDER_API_KEY"`
	APISecret string        `env:"PROVIDER_API_SECRET"`
	Timeout   time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
}

// CacheConfig holds the lookup cache settings. Flight results use a shorter
// TTL because fares move faster than hotel and car inventory.
type CacheConfig struct {
	DefaultTTL    time.Duration `env:"CACHE_DEFAULT_TTL" envDefault:"30m"`
	FlightTTL     time.Duration `env:"CACHE_FLIGHT_TTL" envDefault:"15m"`
	SweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"1m"`
}

// ExchangeConfig holds the fixed currency conversion settings.
type ExchangeConfig struct {
	FlightRate    float64 `env:"EXCHANGE_FLIGHT_RATE" envDefault:"25500"`
	CarRate       float64 `env:"EXCHANGE_CAR_RATE" envDefault:"25400"`
	LocalCurrency string  `env:"EXCHANGE_LOCAL_CURRENCY" envDefault:"VND"`
}

// SearchConfig holds search behavior settings.
type SearchConfig struct {
	// DefaultOrigin is used by the cheapest-destinations lookup when the
	// caller supplies no origin and geo resolution fails.
	DefaultOrigin string `env:"SEARCH_DEFAULT_ORIGIN" envDefault:"SGN"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional, won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Provider.Timeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive")
	}

	if cfg.Cache.DefaultTTL <= 0 {
		return fmt.Errorf("CACHE_DEFAULT_TTL must be positive")
	}
	if cfg.Cache.FlightTTL <= 0 {
		return fmt.Errorf("CACHE_FLIGHT_TTL must be positive")
	}
	if cfg.Cache.SweepInterval <= 0 {
		return fmt.Errorf("CACHE_SWEEP_INTERVAL must be positive")
	}

	if cfg.Exchange.FlightRate <= 0 {
		return fmt.Errorf("EXCHANGE_FLIGHT_RATE must be positive")
	}
	if cfg.Exchange.CarRate <= 0 {
		return fmt.Errorf("EXCHANGE_CAR_RATE must be positive")
	}
	if cfg.Exchange.LocalCurrency == "" {
		return fmt.Errorf("EXCHANGE_LOCAL_CURRENCY must not be empty")
	}

	if len(cfg.Search.DefaultOrigin) != 3 {
		return fmt.Errorf("SEARCH_DEFAULT_ORIGIN must be a 3-letter IATA code, got %q", cfg.Search.DefaultOrigin)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
