package theme

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme   Theme
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
	Focus   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// BuildStyles converts theme tokens into lipgloss styles. Empty tokens leave
// the terminal default in place.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	return Styles{
		Theme:   theme,
		Title:   fg(tokens.Text).Bold(true),
		Text:    fg(tokens.Text),
		Muted:   fg(tokens.TextMuted),
		Accent:  fg(tokens.Accent),
		Panel:   fg(tokens.Text).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)).Padding(0, 1),
		Border:  fg(tokens.Border),
		Focus:   fg(tokens.Focus).Bold(true),
		Success: fg(tokens.Success),
		Warning: fg(tokens.Warning),
		Error:   fg(tokens.Error),
		Info:    fg(tokens.Info),
	}
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Swatch is a labelled color role for previews.
type Swatch struct {
	Role  string
	Color string
	Style lipgloss.Style
}

// Swatches lists one entry per token role, in a stable order.
func (s Styles) Swatches() []Swatch {
	tokens := s.Theme.Tokens
	return []Swatch{
		{Role: "text", Color: tokens.Text, Style: s.Text},
		{Role: "text_muted", Color: tokens.TextMuted, Style: s.Muted},
		{Role: "accent", Color: tokens.Accent, Style: s.Accent},
		{Role: "focus", Color: tokens.Focus, Style: s.Focus},
		{Role: "border", Color: tokens.Border, Style: s.Border},
		{Role: "success", Color: tokens.Success, Style: s.Success},
		{Role: "warning", Color: tokens.Warning, Style: s.Warning},
		{Role: "error", Color: tokens.Error, Style: s.Error},
		{Role: "info", Color: tokens.Info, Style: s.Info},
	}
}
