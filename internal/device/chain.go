package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/tint/internal/logging"
	"github.com/opencode-ai/tint/internal/theme"
)

// Chain asks each provider in order and returns the first known scheme.
type Chain struct {
	providers []Provider
	logger    zerolog.Logger
}

// NewChain creates a chain over providers, skipping nil entries.
func NewChain(providers ...Provider) *Chain {
	c := &Chain{logger: logging.Component("device")}
	for _, p := range providers {
		if p != nil {
			c.providers = append(c.providers, p)
		}
	}
	return c
}

// Default returns the chain used by the CLI: environment first, then the
// terminal itself.
func Default() *Chain {
	return NewChain(NewEnv(), NewTerminal(nil))
}

// Name implements Named.
func (c *Chain) Name() string {
	return "chain"
}

// ColorScheme implements Provider. Errors are returned only when no provider
// produced a known scheme and at least one failed.
func (c *Chain) ColorScheme(ctx context.Context) (theme.ColorScheme, error) {
	scheme, _, err := c.Lookup(ctx)
	return scheme, err
}

// Lookup is ColorScheme that also names the provider that answered. The
// source is empty when no provider knew the scheme.
func (c *Chain) Lookup(ctx context.Context) (theme.ColorScheme, string, error) {
	var errs []error

	for _, p := range c.providers {
		scheme, err := p.ColorScheme(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return theme.SchemeUnknown, "", ctxErr
			}
			c.logger.Debug().Err(err).Str("provider", NameOf(p)).Msg("color scheme provider failed")
			errs = append(errs, fmt.Errorf("%s: %w", NameOf(p), err))
			continue
		}
		if scheme.Known() {
			return scheme, NameOf(p), nil
		}
	}

	if len(errs) > 0 {
		return theme.SchemeUnknown, "", fmt.Errorf("%w: %w", ErrNoScheme, errors.Join(errs...))
	}
	return theme.SchemeUnknown, "", nil
}
