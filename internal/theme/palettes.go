package theme

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultDarkTheme is the baseline dark palette.
var DefaultDarkTheme = Theme{
	Name: "dark",
	Mode: ModeDark,
	Tokens: ThemeTokens{
		Background: "#0B0F14",
		Panel:      "#121821",
		Text:       "#E6EDF3",
		TextMuted:  "#8B9AAE",
		Border:     "#223043",
		Accent:     "#5B8DEF",
		Focus:      "#7AA2F7",
		Success:    "#3FB950",
		Warning:    "#D29922",
		Error:      "#F85149",
		Info:       "#58A6FF",
	},
}

// DefaultLightTheme is the baseline light palette.
var DefaultLightTheme = Theme{
	Name: "light",
	Mode: ModeLight,
	Tokens: ThemeTokens{
		Background: "#FFFFFF",
		Panel:      "#F6F8FA",
		Text:       "#1F2328",
		TextMuted:  "#59636E",
		Border:     "#D1D9E0",
		Accent:     "#0969DA",
		Focus:      "#218BFF",
		Success:    "#1A7F37",
		Warning:    "#9A6700",
		Error:      "#D1242F",
		Info:       "#0550AE",
	},
}

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Mode: ModeDark,
	Tokens: ThemeTokens{
		Background: "#000000",
		Panel:      "#0A0A0A",
		Text:       "#FFFFFF",
		TextMuted:  "#C0C0C0",
		Border:     "#FFFFFF",
		Accent:     "#00A2FF",
		Focus:      "#FFD400",
		Success:    "#00FF5A",
		Warning:    "#FFB000",
		Error:      "#FF4040",
		Info:       "#66CCFF",
	},
}

// Palettes lists the built-in themes by name.
var Palettes = map[string]Theme{
	"dark":          DefaultDarkTheme,
	"light":         DefaultLightTheme,
	"high-contrast": HighContrastTheme,
}

// LookupPalette returns a copy of the named built-in theme.
func LookupPalette(name string) (Theme, error) {
	palette, ok := Palettes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return palette.Clone(), nil
}

// PaletteNames returns the built-in palette names, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FallbackTheme returns the minimal theme for a concrete mode: only the mode
// tag is set.
func FallbackTheme(mode Mode) Theme {
	if mode == ModeDark {
		return Theme{Mode: ModeDark}
	}
	return Theme{Mode: ModeLight}
}
