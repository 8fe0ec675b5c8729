// Package device provides collaborators that report the host's current
// appearance (dark or light).
package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/opencode-ai/tint/internal/theme"
)

// ErrNoScheme is returned when no provider could determine a scheme.
var ErrNoScheme = errors.New("device color scheme unavailable")

// Provider reports the device color scheme.
// Implementations return theme.SchemeUnknown with a nil error when the
// device has no opinion.
type Provider interface {
	ColorScheme(ctx context.Context) (theme.ColorScheme, error)
}

// Named is implemented by providers that can describe themselves.
type Named interface {
	Name() string
}

// NameOf returns the provider's name, or its type when it has none.
func NameOf(p Provider) string {
	if named, ok := p.(Named); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", p)
}

// Func adapts a plain function to Provider.
type Func func(ctx context.Context) (theme.ColorScheme, error)

// ColorScheme implements Provider.
func (f Func) ColorScheme(ctx context.Context) (theme.ColorScheme, error) {
	return f(ctx)
}

// Static always reports the same scheme.
type Static theme.ColorScheme

// ColorScheme implements Provider.
func (s Static) ColorScheme(ctx context.Context) (theme.ColorScheme, error) {
	if err := ctx.Err(); err != nil {
		return theme.SchemeUnknown, err
	}
	return theme.ColorScheme(s), nil
}

// Name implements Named.
func (s Static) Name() string {
	return "static"
}

// Unknown never has an opinion; ModeDevice then resolves to the light theme.
var Unknown Provider = Static(theme.SchemeUnknown)
