package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/bjaus/dispfmt/display"
	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var errInvalidConfig = errors.New("invalid config")

// config is the resolved command configuration.
type config struct {
	Display display.Format
	Newline bool
	Buffer  int
	Style   string
}

var defaultConfig = map[string]interface{}{
	"display": string(display.FormatText),
	"newline": false,
	"buffer":  0,
	"style":   "",
}

var styles = map[string]func(lipgloss.Style) lipgloss.Style{
	"bold":      func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
	"italic":    func(s lipgloss.Style) lipgloss.Style { return s.Italic(true) },
	"underline": func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) },
	"faint":     func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) },
	"reverse":   func(s lipgloss.Style) lipgloss.Style { return s.Reverse(true) },
}

// defaultConfigPath returns $XDG_CONFIG_HOME/dispfmt/config.toml.
func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "dispfmt", "config.toml")
}

// loadConfig layers defaults, the TOML file at path and flag overrides.
// A missing file is an error only when required is set.
func loadConfig(path string, required bool, overrides map[string]interface{}) (config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultConfig, "."), nil); err != nil {
		return config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return config{}, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		} else if required {
			return config{}, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return config{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	format, err := display.ParseFormat(k.String("display"))
	if err != nil {
		return config{}, fmt.Errorf("%w: display: %w", errInvalidConfig, err)
	}
	cfg := config{
		Display: format,
		Newline: k.Bool("newline"),
		Buffer:  k.Int("buffer"),
		Style:   k.String("style"),
	}
	if cfg.Buffer < 0 {
		return config{}, fmt.Errorf("%w: buffer must not be negative, got %d", errInvalidConfig, cfg.Buffer)
	}
	if _, ok := styles[cfg.Style]; cfg.Style != "" && !ok {
		return config{}, fmt.Errorf("%w: unknown style %q", errInvalidConfig, cfg.Style)
	}
	return cfg, nil
}

// lipglossStyle returns the configured style and whether one is set.
func (c config) lipglossStyle() (lipgloss.Style, bool) {
	apply, ok := styles[c.Style]
	if !ok {
		return lipgloss.Style{}, false
	}
	return apply(lipgloss.NewStyle()), true
}
