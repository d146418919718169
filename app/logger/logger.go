package logger

import (
	"os"
	"time"

	"corkboard/app/config"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger configured from cfg: JSON output by
// default, a human-readable console writer when format is "console".
func New(cfg config.LoggerConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(level).
			With().
			Timestamp().
			Str("service", "corkboard").
			Logger()
	}

	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", "corkboard").
		Logger()
}
