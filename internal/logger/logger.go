package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/checklist/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the application logger. The terminal belongs to the UI, so
// records only go to cfg.File; without one the logger discards everything.
// The returned closer releases the log file.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse level: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	zerolog.TimestampFieldName = "timestamp"
	log := NewWithWriter(f, level)
	log.Info().Str("level", level.String()).Msg("initialized application logger")
	return log, f, nil
}

// NewWithWriter is New for an already open destination.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()
}
