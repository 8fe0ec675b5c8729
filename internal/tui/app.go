// Package tui implements the tint terminal user interface.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/opencode-ai/tint/internal/controller"
	"github.com/opencode-ai/tint/internal/logging"
	"github.com/opencode-ai/tint/internal/theme"
	"github.com/opencode-ai/tint/internal/tui/components"
)

// Config configures the TUI.
type Config struct {
	// Surface is the theme controller the TUI reads and drives.
	Surface controller.Surface

	// QueryTimeout bounds device scheme lookups triggered from the TUI.
	QueryTimeout time.Duration
}

// RunWithConfig launches the TUI program.
func RunWithConfig(cfg Config) error {
	if cfg.Surface == nil {
		return errors.New("tui: theme controller is required")
	}

	m := newModel(cfg)
	program := tea.NewProgram(m, tea.WithAltScreen())

	subscriberID := "tui-" + uuid.NewString()
	if err := subscribe(cfg.Surface, subscriberID, program); err != nil {
		return fmt.Errorf("subscribing to theme changes: %w", err)
	}
	defer func() {
		if err := cfg.Surface.Unsubscribe(subscriberID); err != nil {
			logger := logging.Component("tui")
			logger.Warn().Err(err).Msg("failed to unsubscribe")
		}
	}()

	_, err := program.Run()
	return err
}

type model struct {
	surface      controller.Surface
	queryTimeout time.Duration

	width       int
	height      int
	snapshot    controller.Snapshot
	styles      theme.Styles
	changes     uint64
	lastSeq     uint64
	lastUpdated time.Time
	lastErr     error
}

const (
	minWidth            = 40
	minHeight           = 12
	defaultQueryTimeout = 2 * time.Second
)

func newModel(cfg Config) model {
	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	snap := cfg.Surface.Snapshot()
	return model{
		surface:      cfg.Surface,
		queryTimeout: timeout,
		snapshot:     snap,
		styles:       theme.BuildStyles(snap.Theme),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "l":
			return m, setThemeCmd(m.surface, theme.ModeLight, m.queryTimeout)
		case "d":
			return m, setThemeCmd(m.surface, theme.ModeDark, m.queryTimeout)
		case "s":
			return m, setThemeCmd(m.surface, theme.ModeDevice, m.queryTimeout)
		case "t":
			return m, setThemeCmd(m.surface, toggled(m.snapshot), m.queryTimeout)
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case ThemeChangedMsg:
		// Commands run on their own goroutines, so changes can arrive late.
		if msg.Seq <= m.lastSeq {
			return m, nil
		}
		m.lastSeq = msg.Seq
		m.snapshot = msg.Snapshot
		m.styles = theme.BuildStyles(msg.Snapshot.Theme)
		m.changes++
		m.lastUpdated = msg.Timestamp
		m.lastErr = nil
	case SetThemeErrorMsg:
		m.lastErr = msg.Err
	}
	return m, nil
}

// toggled flips between light and dark based on what is shown, so toggling
// out of DEVICE lands on the opposite of the resolved theme.
func toggled(snap controller.Snapshot) theme.Mode {
	if snap.IsDarkTheme {
		return theme.ModeLight
	}
	return theme.ModeDark
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	snap := m.snapshot
	lines := []string{
		m.styles.Title.Render("tint") + "  " + components.RenderModeBadge(m.styles, snap.ThemeMode, snap.Theme.Mode),
		"",
		m.styles.Text.Render(fmt.Sprintf("Mode:  %s", snap.ThemeMode)),
		m.styles.Text.Render(fmt.Sprintf("Theme: %s (%s)", themeName(snap.Theme), snap.Theme.Mode)),
		m.styles.Text.Render(fmt.Sprintf("Dark:  %t", snap.IsDarkTheme)),
		"",
	}

	for _, swatch := range m.styles.Swatches() {
		if swatch.Color == "" {
			continue
		}
		lines = append(lines, swatch.Style.Render(fmt.Sprintf("%-11s %s", swatch.Role, swatch.Color)))
	}

	lines = append(lines, "", m.styles.Muted.Render(m.statusLine()))
	if m.lastErr != nil {
		lines = append(lines, m.styles.Error.Render(m.lastErr.Error()))
	}
	lines = append(lines, "", m.styles.Muted.Render("Shortcuts: l light | d dark | s device | t toggle | q quit"))

	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) statusLine() string {
	if m.lastUpdated.IsZero() {
		return fmt.Sprintf("Changes: %d", m.changes)
	}
	return fmt.Sprintf("Changes: %d | Last change: %s", m.changes, m.lastUpdated.Local().Format("15:04:05"))
}

func themeName(th theme.Theme) string {
	if th.Name == "" {
		return "unnamed"
	}
	return th.Name
}
