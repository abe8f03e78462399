package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/checklist/internal/ui"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config covers presentation and diagnostics only; entry state is never
// configured or persisted.
type Config struct {
	Theme       string `env:"CHECKLIST_THEME" env-default:"classic"`
	Color       string `env:"CHECKLIST_COLOR" env-default:"auto"`
	Placeholder string `env:"CHECKLIST_PLACEHOLDER" env-default:"What needs doing?"`
	Log         LogConfig
}

type LogConfig struct {
	File  string `env:"CHECKLIST_LOG_FILE"`
	Level string `env:"CHECKLIST_LOG_LEVEL" env-default:"info"`
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if !ui.ValidTheme(c.Theme) {
		return fmt.Errorf("theme: unknown value %q", c.Theme)
	}
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: unknown value %q", c.Color)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
