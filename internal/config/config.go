package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Tally"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		DataDir string `envconfig:"DATA_DIR" default:"data"`
	}

	Report struct {
		CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"$"`
		WarningPercent int    `envconfig:"BUDGET_WARNING_PERCENT" default:"75"`
	}

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.App.Port))
	}

	if strings.TrimSpace(c.Storage.DataDir) == "" {
		errs = append(errs, errors.New("DATA_DIR must not be empty"))
	}

	if c.Report.WarningPercent <= 0 || c.Report.WarningPercent > 100 {
		errs = append(errs, fmt.Errorf("BUDGET_WARNING_PERCENT %d must be between 1 and 100", c.Report.WarningPercent))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// LogLevel maps LOG_LEVEL onto a slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q: %w", c.Log.Level, err)
	}

	return level, nil
}
