package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Data source kinds.
const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"
)

// HTTPConfig holds the listener settings.
type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// PostgresConfig holds the database settings.
type PostgresConfig struct {
	URL string
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv     string
	HTTP       HTTPConfig
	DataSource string
	Postgres   PostgresConfig
	SeedBanks  bool
}

// bindings maps viper keys to the environment variables that feed them.
var bindings = map[string]string{
	"app.env":                  "APP_ENV",
	"http.addr":                "HTTP_ADDR",
	"http.read_header_timeout": "HTTP_READ_HEADER_TIMEOUT",
	"http.shutdown_timeout":    "HTTP_SHUTDOWN_TIMEOUT",
	"datasource.kind":          "DATA_SOURCE",
	"postgres.url":             "DATABASE_URL",
	"bank.seed":                "BANK_SEED",
}

// Load loads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	// A missing .env is fine; the process environment is used as is.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	v.SetDefault("app.env", "dev")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_header_timeout", 5*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("datasource.kind", DataSourceMemory)
	v.SetDefault("bank.seed", true)

	cfg := Config{
		AppEnv: v.GetString("app.env"),
		HTTP: HTTPConfig{
			Addr:              v.GetString("http.addr"),
			ReadHeaderTimeout: v.GetDuration("http.read_header_timeout"),
			ShutdownTimeout:   v.GetDuration("http.shutdown_timeout"),
		},
		DataSource: v.GetString("datasource.kind"),
		Postgres: PostgresConfig{
			URL: v.GetString("postgres.url"),
		},
		SeedBanks: v.GetBool("bank.seed"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DataSource {
	case DataSourceMemory:
	case DataSourcePostgres:
		if c.Postgres.URL == "" {
			return errors.New("DATABASE_URL is required when DATA_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q (want %q or %q)", c.DataSource, DataSourceMemory, DataSourcePostgres)
	}

	if c.HTTP.Addr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	if c.HTTP.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_HEADER_TIMEOUT must be positive, got %s", c.HTTP.ReadHeaderTimeout)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %s", c.HTTP.ShutdownTimeout)
	}
	return nil
}
