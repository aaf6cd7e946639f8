// Package config reads the service configuration from SHOTCALC_* environment
// variables. Invalid values are logged and replaced with the defaults.
package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the service configuration.
type Config struct {
	HTTPAddr        string
	DBPath          string // empty disables the run history
	HistoryLimit    int
	ShutdownTimeout time.Duration
}

// Defaults.
const (
	DefaultHTTPAddr        = ":8080"
	DefaultHistoryLimit    = 50
	DefaultShutdownTimeout = 5 * time.Second
)

// LogLevel returns the level from SHOTCALC_LOG_LEVEL (debug, info, warn or
// error). The default is info.
func LogLevel() slog.Level {
	var level slog.Level
	if v := os.Getenv("SHOTCALC_LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return slog.LevelInfo
		}
	}
	return level
}

// NewLogger creates the JSON logger used by the binaries.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Load reads the configuration.
func Load(logger *slog.Logger) Config {
	cfg := Config{
		HTTPAddr:        DefaultHTTPAddr,
		DBPath:          os.Getenv("SHOTCALC_DB_PATH"),
		HistoryLimit:    DefaultHistoryLimit,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if v := os.Getenv("SHOTCALC_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}

	if v := os.Getenv("SHOTCALC_HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid SHOTCALC_HISTORY_LIMIT value, using default", "value", v, "default", DefaultHistoryLimit)
		} else {
			cfg.HistoryLimit = n
		}
	}

	if v := os.Getenv("SHOTCALC_SHUTDOWN_TIMEOUT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid SHOTCALC_SHUTDOWN_TIMEOUT value, using default", "value", v, "default", int(DefaultShutdownTimeout.Seconds()))
		} else {
			cfg.ShutdownTimeout = time.Duration(n) * time.Second
		}
	}

	logger.Info("service config",
		"component", "config",
		"http_addr", cfg.HTTPAddr,
		"db_path", cfg.DBPath,
		"history_limit", cfg.HistoryLimit,
		"shutdown_timeout_seconds", cfg.ShutdownTimeout.Seconds(),
	)

	return cfg
}
