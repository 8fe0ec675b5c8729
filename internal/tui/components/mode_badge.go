// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/tint/internal/theme"
)

// RenderModeBadge renders the requested mode with an icon. For DEVICE the
// resolved theme is appended, since the mode alone does not say which one
// is showing.
func RenderModeBadge(styleSet theme.Styles, mode theme.Mode, resolved theme.Mode) string {
	icon, label, style := modeDescriptor(styleSet, mode)
	if mode == theme.ModeDevice {
		label = fmt.Sprintf("%s (%s)", label, resolved)
	}
	return style.Render(fmt.Sprintf("%s %s", icon, label))
}

func modeDescriptor(styleSet theme.Styles, mode theme.Mode) (string, string, lipgloss.Style) {
	switch mode {
	case theme.ModeLight:
		return "L", "Light", styleSet.Warning
	case theme.ModeDark:
		return "D", "Dark", styleSet.Info
	case theme.ModeDevice:
		return "~", "Device", styleSet.Accent
	default:
		return "?", normalizeModeLabel(mode), styleSet.Muted
	}
}

func normalizeModeLabel(mode theme.Mode) string {
	value := strings.TrimSpace(strings.ReplaceAll(string(mode), "_", " "))
	if value == "" {
		return "Unknown"
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
