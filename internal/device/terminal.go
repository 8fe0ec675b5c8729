package device

import (
	"context"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/opencode-ai/tint/internal/theme"
)

// Terminal queries the terminal background color through termenv.
// The query writes an OSC escape and waits for the reply, so it only runs
// when the output is a TTY.
type Terminal struct {
	Output *os.File

	// isTTY and hasDark are swapped out in tests. Nil means the real check.
	isTTY   func(fd int) bool
	hasDark func(w io.Writer) bool
}

// NewTerminal returns a Terminal provider bound to out (stdout when nil).
func NewTerminal(out *os.File) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{
		Output:  out,
		isTTY:   term.IsTerminal,
		hasDark: hasDarkBackground,
	}
}

func hasDarkBackground(w io.Writer) bool {
	return termenv.NewOutput(w).HasDarkBackground()
}

// Name implements Named.
func (t *Terminal) Name() string {
	return "terminal"
}

// ColorScheme implements Provider. The background query runs on its own
// goroutine so a silent terminal cannot outlive ctx.
func (t *Terminal) ColorScheme(ctx context.Context) (theme.ColorScheme, error) {
	if err := ctx.Err(); err != nil {
		return theme.SchemeUnknown, err
	}
	isTTY, hasDark := t.isTTY, t.hasDark
	if isTTY == nil {
		isTTY = term.IsTerminal
	}
	if hasDark == nil {
		hasDark = hasDarkBackground
	}
	if t.Output == nil || !isTTY(int(t.Output.Fd())) {
		return theme.SchemeUnknown, nil
	}

	result := make(chan bool, 1)
	go func() {
		result <- hasDark(t.Output)
	}()

	select {
	case dark := <-result:
		if dark {
			return theme.SchemeDark, nil
		}
		return theme.SchemeLight, nil
	case <-ctx.Done():
		return theme.SchemeUnknown, ctx.Err()
	}
}
