package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string
	Console bool      // Human readable output instead of JSON
	Writer  io.Writer // Log destination, stderr by default
}

// NewLogConfig creates a LogConfig writing info level console logs to stderr.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:   zerolog.InfoLevel.String(),
		Console: true,
		Writer:  os.Stderr,
	}
}

// Validate checks that Level names a zerolog level.
func (l *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", l.Level)
	}
	return nil
}

// Logger builds the configured logger. An unparsable level falls back to
// info.
func (l *LogConfig) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	w := l.Writer
	if w == nil {
		w = os.Stderr
	}
	if l.Console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
