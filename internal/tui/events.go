package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/tint/internal/controller"
	"github.com/opencode-ai/tint/internal/theme"
)

// ThemeChangedMsg wraps a controller Change for the TUI.
type ThemeChangedMsg struct {
	Snapshot  controller.Snapshot
	Seq       uint64
	Timestamp time.Time
}

func toThemeChangedMsg(change controller.Change) ThemeChangedMsg {
	return ThemeChangedMsg{
		Snapshot:  change.Current,
		Seq:       change.Seq,
		Timestamp: change.Timestamp,
	}
}

// SetThemeErrorMsg reports a failed SetTheme request.
type SetThemeErrorMsg struct {
	Mode theme.Mode
	Err  error
}

// sender is the part of *tea.Program the subscriber needs.
type sender interface {
	Send(msg tea.Msg)
}

// themeSubscriber bridges the controller to the TUI.
type themeSubscriber struct {
	program sender
}

// OnThemeChange implements controller.Subscriber.
func (s *themeSubscriber) OnThemeChange(change controller.Change) {
	if s.program != nil {
		s.program.Send(toThemeChangedMsg(change))
	}
}

// subscribe registers program for theme changes under subscriberID.
func subscribe(surface controller.Surface, subscriberID string, program sender) error {
	return surface.Subscribe(subscriberID, &themeSubscriber{program: program})
}

// setThemeCmd asks the controller for mode. The resulting change arrives
// through the subscription, so success yields no message.
func setThemeCmd(surface controller.Surface, mode theme.Mode, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := surface.SetTheme(ctx, mode); err != nil {
			return SetThemeErrorMsg{Mode: mode, Err: err}
		}
		return nil
	}
}
