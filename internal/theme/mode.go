// Package theme defines theme modes, theme objects, and the built-in palettes.
package theme

import (
	"fmt"
	"strings"
)

// Mode is the user's requested theme preference.
type Mode string

// Theme modes.
const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeDevice Mode = "device"
)

// Modes lists every recognized mode in display order.
var Modes = []Mode{ModeLight, ModeDark, ModeDevice}

// Valid reports whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeLight, ModeDark, ModeDevice:
		return true
	default:
		return false
	}
}

// Concrete reports whether m can tag a theme object. DEVICE never can.
func (m Mode) Concrete() bool {
	return m == ModeLight || m == ModeDark
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode parses a mode name. "system" and "auto" are accepted as DEVICE.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	case "device", "system", "auto":
		return ModeDevice, nil
	default:
		return "", &InvalidModeError{Mode: Mode(value)}
	}
}

// ColorScheme is the device appearance hint consulted for ModeDevice.
type ColorScheme string

// Color schemes. Only SchemeDark selects the dark theme.
const (
	SchemeUnknown ColorScheme = ""
	SchemeDark    ColorScheme = "dark"
	SchemeLight   ColorScheme = "light"
)

// IsDark reports whether the scheme asks for the dark theme.
func (s ColorScheme) IsDark() bool {
	return s == SchemeDark
}

// Known reports whether the scheme carries an actual answer.
func (s ColorScheme) Known() bool {
	return s == SchemeDark || s == SchemeLight
}

func (s ColorScheme) String() string {
	if s == SchemeUnknown {
		return "unknown"
	}
	return string(s)
}

// ParseColorScheme parses a device hint strictly. The empty string is
// SchemeUnknown.
func ParseColorScheme(value string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return SchemeUnknown, nil
	case "dark":
		return SchemeDark, nil
	case "light":
		return SchemeLight, nil
	default:
		return SchemeUnknown, &InvalidSchemeError{Scheme: ColorScheme(value)}
	}
}

// InvalidModeError reports a mode outside the recognized set.
type InvalidModeError struct {
	Mode Mode
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid theme mode %q (want light, dark or device)", string(e.Mode))
}

// InvalidSchemeError reports a malformed device color-scheme hint.
type InvalidSchemeError struct {
	Scheme ColorScheme
}

func (e *InvalidSchemeError) Error() string {
	return fmt.Sprintf("invalid device color scheme %q (want dark or light)", string(e.Scheme))
}
