package device

import (
	"context"

	"github.com/opencode-ai/tint/internal/theme"
)

// Captured replays the answer another provider gave once.
//
// The terminal query reads its reply from the TTY, which a running TUI is
// already reading, so interactive sessions capture the scheme up front.
type Captured struct {
	source string
	scheme theme.ColorScheme
	err    error
}

// Capture queries p once and returns a provider that keeps reporting that
// answer, including its error.
func Capture(ctx context.Context, p Provider) *Captured {
	c := &Captured{source: NameOf(p)}
	if chain, ok := p.(*Chain); ok {
		var source string
		c.scheme, source, c.err = chain.Lookup(ctx)
		if source != "" {
			c.source = source
		}
		return c
	}
	c.scheme, c.err = p.ColorScheme(ctx)
	return c
}

// ColorScheme implements Provider.
func (c *Captured) ColorScheme(ctx context.Context) (theme.ColorScheme, error) {
	if err := ctx.Err(); err != nil {
		return theme.SchemeUnknown, err
	}
	return c.scheme, c.err
}

// Name implements Named.
func (c *Captured) Name() string {
	return "captured:" + c.source
}
