package theme

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// Theme errors.
var (
	ErrInvalidTheme   = errors.New("invalid theme")
	ErrUnknownPalette = errors.New("unknown palette")
)

// ThemeTokens defines the semantic color roles of a theme.
type ThemeTokens struct {
	Background string `json:"background,omitempty" mapstructure:"background"`
	Panel      string `json:"panel,omitempty" mapstructure:"panel"`
	Text       string `json:"text,omitempty" mapstructure:"text"`
	TextMuted  string `json:"text_muted,omitempty" mapstructure:"text_muted"`
	Border     string `json:"border,omitempty" mapstructure:"border"`
	Accent     string `json:"accent,omitempty" mapstructure:"accent"`
	Focus      string `json:"focus,omitempty" mapstructure:"focus"`
	Success    string `json:"success,omitempty" mapstructure:"success"`
	Warning    string `json:"warning,omitempty" mapstructure:"warning"`
	Error      string `json:"error,omitempty" mapstructure:"error"`
	Info       string `json:"info,omitempty" mapstructure:"info"`
}

// TokenNames lists the token keys in declaration order.
var TokenNames = []string{
	"background", "panel", "text", "text_muted", "border",
	"accent", "focus", "success", "warning", "error", "info",
}

// Lookup returns the token with the given name.
func (t ThemeTokens) Lookup(name string) (string, bool) {
	switch strings.ToLower(name) {
	case "background":
		return t.Background, true
	case "panel":
		return t.Panel, true
	case "text":
		return t.Text, true
	case "text_muted", "textmuted":
		return t.TextMuted, true
	case "border":
		return t.Border, true
	case "accent":
		return t.Accent, true
	case "focus":
		return t.Focus, true
	case "success":
		return t.Success, true
	case "warning":
		return t.Warning, true
	case "error":
		return t.Error, true
	case "info":
		return t.Info, true
	default:
		return "", false
	}
}

// Merge returns t with every non-empty token of override applied.
func (t ThemeTokens) Merge(override ThemeTokens) ThemeTokens {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return ThemeTokens{
		Background: pick(t.Background, override.Background),
		Panel:      pick(t.Panel, override.Panel),
		Text:       pick(t.Text, override.Text),
		TextMuted:  pick(t.TextMuted, override.TextMuted),
		Border:     pick(t.Border, override.Border),
		Accent:     pick(t.Accent, override.Accent),
		Focus:      pick(t.Focus, override.Focus),
		Success:    pick(t.Success, override.Success),
		Warning:    pick(t.Warning, override.Warning),
		Error:      pick(t.Error, override.Error),
		Info:       pick(t.Info, override.Info),
	}
}

// Theme is a named bundle of presentation values tagged with a mode.
// Props carries caller-defined values that have no token role.
type Theme struct {
	Name   string            `json:"name,omitempty"`
	Mode   Mode              `json:"mode"`
	Tokens ThemeTokens       `json:"tokens"`
	Props  map[string]string `json:"props,omitempty"`
}

// Get returns the value of a property. "mode" and "name" resolve to the
// theme's own fields, token names to tokens, anything else to Props.
// Non-empty tokens win over props of the same name.
func (t Theme) Get(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "mode":
		return string(t.Mode), true
	case "name":
		return t.Name, t.Name != ""
	}
	if value, ok := t.Tokens.Lookup(key); ok && value != "" {
		return value, true
	}
	value, ok := t.Props[key]
	return value, ok
}

// IsZero reports whether t carries no data at all.
func (t Theme) IsZero() bool {
	return t.Name == "" && t.Mode == "" && t.Tokens == (ThemeTokens{}) && len(t.Props) == 0
}

// IsDark reports whether the theme is tagged dark.
func (t Theme) IsDark() bool {
	return t.Mode == ModeDark
}

// Validate checks that the theme is tagged LIGHT or DARK.
func (t Theme) Validate() error {
	if !t.Mode.Concrete() {
		return fmt.Errorf("%w: mode %q must be light or dark", ErrInvalidTheme, string(t.Mode))
	}
	return nil
}

// Clone returns a deep copy of t.
func (t Theme) Clone() Theme {
	clone := t
	if t.Props != nil {
		clone.Props = maps.Clone(t.Props)
	}
	return clone
}

// WithProps returns a copy of t with props merged over the existing ones.
func (t Theme) WithProps(props map[string]string) Theme {
	clone := t.Clone()
	if len(props) == 0 {
		return clone
	}
	if clone.Props == nil {
		clone.Props = make(map[string]string, len(props))
	}
	maps.Copy(clone.Props, props)
	return clone
}
