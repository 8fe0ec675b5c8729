// Package config loads tint configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/tint/internal/theme"
)

// Config is the root configuration.
type Config struct {
	Theme ThemeConfig `mapstructure:"theme"`
	Log   LogConfig   `mapstructure:"log"`
}

// ThemeConfig selects the themes and the mode applied at startup.
type ThemeConfig struct {
	// Mode is applied once the controller is built (light, dark, device).
	Mode string `mapstructure:"mode"`

	// Strict rejects unknown modes and device hints.
	Strict bool `mapstructure:"strict"`

	// DeviceScheme forces the device hint instead of detecting it.
	DeviceScheme string `mapstructure:"device_scheme"`

	Dark  ThemeSpec `mapstructure:"dark"`
	Light ThemeSpec `mapstructure:"light"`
}

// ThemeSpec describes one theme slot: an optional built-in palette with
// token and prop overrides.
type ThemeSpec struct {
	Palette string            `mapstructure:"palette"`
	Name    string            `mapstructure:"name"`
	Tokens  theme.ThemeTokens `mapstructure:"tokens"`
	Props   map[string]string `mapstructure:"props"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Mode:  string(theme.ModeLight),
			Dark:  ThemeSpec{Palette: "dark"},
			Light: ThemeSpec{Palette: "light"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// InitialMode parses the configured startup mode.
func (c ThemeConfig) InitialMode() (theme.Mode, error) {
	if strings.TrimSpace(c.Mode) == "" {
		return theme.ModeLight, nil
	}
	return theme.ParseMode(c.Mode)
}

// Scheme parses the forced device hint. ok is false when detection should
// be used.
func (c ThemeConfig) Scheme() (scheme theme.ColorScheme, ok bool, err error) {
	if strings.TrimSpace(c.DeviceScheme) == "" {
		return theme.SchemeUnknown, false, nil
	}
	scheme, err = theme.ParseColorScheme(c.DeviceScheme)
	if err != nil {
		return theme.SchemeUnknown, false, err
	}
	return scheme, scheme.Known(), nil
}

// Themes builds the dark and light theme objects.
func (c ThemeConfig) Themes() (dark, light theme.Theme, err error) {
	dark, err = c.Dark.Build(theme.ModeDark)
	if err != nil {
		return theme.Theme{}, theme.Theme{}, fmt.Errorf("theme.dark: %w", err)
	}
	light, err = c.Light.Build(theme.ModeLight)
	if err != nil {
		return theme.Theme{}, theme.Theme{}, fmt.Errorf("theme.light: %w", err)
	}
	return dark, light, nil
}

// Build turns the configured entry into a theme object for the given slot. The slot
// decides the mode tag, so a dark slot always yields a dark theme.
func (s ThemeSpec) Build(slot theme.Mode) (theme.Theme, error) {
	if !slot.Concrete() {
		return theme.Theme{}, fmt.Errorf("%w: slot %q", theme.ErrInvalidTheme, string(slot))
	}

	base := theme.FallbackTheme(slot)
	if s.Palette != "" {
		palette, err := theme.LookupPalette(s.Palette)
		if err != nil {
			return theme.Theme{}, err
		}
		base = palette
	}

	if s.Name != "" {
		base.Name = s.Name
	}
	base.Mode = slot
	base.Tokens = base.Tokens.Merge(s.Tokens)
	return base.WithProps(s.Props), nil
}

// Validate checks every field that can be checked without side effects.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Theme.InitialMode(); err != nil {
		errs = append(errs, fmt.Errorf("theme.mode: %w", err))
	}
	if _, _, err := c.Theme.Scheme(); err != nil {
		errs = append(errs, fmt.Errorf("theme.device_scheme: %w", err))
	}
	if _, _, err := c.Theme.Themes(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "auto", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unsupported format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}
