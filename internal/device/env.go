package device

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/opencode-ai/tint/internal/theme"
)

// Environment variables consulted by Env.
const (
	EnvColorScheme = "TINT_COLOR_SCHEME"
	EnvColorFGBG   = "COLORFGBG"
)

// Env reads the scheme from the environment: TINT_COLOR_SCHEME first, then
// the background index of COLORFGBG ("fg;bg" as exported by rxvt and others).
type Env struct {
	lookup func(string) (string, bool)
}

// NewEnv returns an Env provider reading the process environment.
func NewEnv() *Env {
	return &Env{lookup: os.LookupEnv}
}

// Name implements Named.
func (e *Env) Name() string {
	return "env"
}

// ColorScheme implements Provider.
func (e *Env) ColorScheme(ctx context.Context) (theme.ColorScheme, error) {
	if err := ctx.Err(); err != nil {
		return theme.SchemeUnknown, err
	}
	lookup := e.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if value, ok := lookup(EnvColorScheme); ok && strings.TrimSpace(value) != "" {
		scheme, err := theme.ParseColorScheme(value)
		if err != nil {
			return theme.SchemeUnknown, fmt.Errorf("%s: %w", EnvColorScheme, err)
		}
		return scheme, nil
	}

	if value, ok := lookup(EnvColorFGBG); ok {
		return schemeFromColorFGBG(value), nil
	}

	return theme.SchemeUnknown, nil
}

// schemeFromColorFGBG maps the last field of COLORFGBG to a scheme. ANSI
// indexes 0-6 and 8 are dark backgrounds, 7 and 9-15 light ones.
func schemeFromColorFGBG(value string) theme.ColorScheme {
	parts := strings.Split(strings.TrimSpace(value), ";")
	if len(parts) < 2 {
		return theme.SchemeUnknown
	}
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || bg < 0 || bg > 15 {
		return theme.SchemeUnknown
	}
	if bg <= 6 || bg == 8 {
		return theme.SchemeDark
	}
	return theme.SchemeLight
}
