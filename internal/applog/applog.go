// Package applog wraps zerolog with the codec's logging conventions:
// pretty console output in development, JSON in production, service
// context attached to every event.
package applog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ha1tch/neurozip/internal/config"
)

// New builds a zerolog.Logger from cfg, tagged with the "neurozip"
// service name.
func New(cfg config.Defaults) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if strings.EqualFold(cfg.Environment, "development") || strings.EqualFold(cfg.Environment, "dev") {
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i interface{}) string {
				return fmt.Sprintf("| %-6s|", strings.ToUpper(fmt.Sprintf("%v", i)))
			},
		}
		logger = zerolog.New(output).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	return logger.With().Str("service", "neurozip").Logger()
}
