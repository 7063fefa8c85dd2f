package logger

import (
	"os"
	"strings"
	"time"

	"github.com/andromedanny/storefront-service/internal/config"
	"github.com/rs/zerolog"
)

// New builds the service logger from config. The console format is for
// local runs, everything else logs JSON.
func New(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "console" {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		logger = zerolog.New(writer)
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().Timestamp().Str("service", "storefront-service").Logger()
}
