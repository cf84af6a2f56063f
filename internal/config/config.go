// Package config читает настройки сервиса из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Драйверы хранилища.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":5000"`
	DBDriver        string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBDSN           string        `env:"DB_DSN"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"committee.db"`
	DBMaxConns      int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load разбирает окружение и проверяет согласованность настроек.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return Config{}, fmt.Errorf("DB_DSN environment variable is required for driver %q", DriverPostgres)
		}
	case DriverSQLite:
		if strings.TrimSpace(cfg.SQLitePath) == "" {
			return Config{}, fmt.Errorf("SQLITE_PATH must not be empty")
		}
	default:
		return Config{}, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel переводит LOG_LEVEL в уровень slog.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
