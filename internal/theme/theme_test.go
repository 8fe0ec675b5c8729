package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"light", ModeLight, false},
		{"DARK", ModeDark, false},
		{" device ", ModeDevice, false},
		{"system", ModeDevice, false},
		{"auto", ModeDevice, false},
		{"sepia", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				var modeErr *InvalidModeError
				require.ErrorAs(t, err, &modeErr)
				assert.Equal(t, Mode(tt.input), modeErr.Mode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModePredicates(t *testing.T) {
	assert.True(t, ModeDevice.Valid())
	assert.False(t, Mode("sepia").Valid())
	assert.True(t, ModeLight.Concrete())
	assert.True(t, ModeDark.Concrete())
	assert.False(t, ModeDevice.Concrete())
}

func TestParseColorScheme(t *testing.T) {
	got, err := ParseColorScheme("Dark")
	require.NoError(t, err)
	assert.Equal(t, SchemeDark, got)

	got, err = ParseColorScheme("")
	require.NoError(t, err)
	assert.Equal(t, SchemeUnknown, got)

	_, err = ParseColorScheme("Device color Scheme")
	var schemeErr *InvalidSchemeError
	require.ErrorAs(t, err, &schemeErr)
	assert.Contains(t, schemeErr.Error(), "Device color Scheme")
}

func TestColorSchemeIsDark(t *testing.T) {
	assert.True(t, SchemeDark.IsDark())
	assert.False(t, SchemeLight.IsDark())
	assert.False(t, SchemeUnknown.IsDark())
	assert.False(t, ColorScheme("DARK").IsDark(), "only the exact literal selects dark")
	assert.Equal(t, "unknown", SchemeUnknown.String())
}

func TestThemeGet(t *testing.T) {
	th := Theme{
		Name:   "custom",
		Mode:   ModeDark,
		Tokens: ThemeTokens{Accent: "#111"},
		Props:  map[string]string{"font": "mono", "accent": "#999"},
	}

	value, ok := th.Get("accent")
	require.True(t, ok)
	assert.Equal(t, "#111", value)

	value, ok = th.Get("font")
	require.True(t, ok)
	assert.Equal(t, "mono", value)

	value, ok = th.Get("mode")
	require.True(t, ok)
	assert.Equal(t, "dark", value)

	_, ok = th.Get("missing")
	assert.False(t, ok)
}

func TestThemeGetFallsBackToProps(t *testing.T) {
	th := Theme{Mode: ModeLight, Props: map[string]string{"accent": "#222"}}

	value, ok := th.Get("accent")
	require.True(t, ok)
	assert.Equal(t, "#222", value)
}

func TestThemeValidate(t *testing.T) {
	require.NoError(t, Theme{Mode: ModeLight}.Validate())
	require.NoError(t, Theme{Mode: ModeDark}.Validate())

	err := Theme{Mode: ModeDevice}.Validate()
	assert.True(t, errors.Is(err, ErrInvalidTheme))

	err = Theme{}.Validate()
	assert.True(t, errors.Is(err, ErrInvalidTheme))
}

func TestThemeCloneIsIndependent(t *testing.T) {
	original := Theme{Mode: ModeDark, Props: map[string]string{"accent": "#111"}}
	clone := original.Clone()
	clone.Props["accent"] = "#fff"

	assert.Equal(t, "#111", original.Props["accent"])
}

func TestThemeWithProps(t *testing.T) {
	base := Theme{Mode: ModeLight}
	withProps := base.WithProps(map[string]string{"radius": "4"})

	assert.Nil(t, base.Props)
	assert.Equal(t, "4", withProps.Props["radius"])
}

func TestTokensMerge(t *testing.T) {
	merged := DefaultDarkTheme.Tokens.Merge(ThemeTokens{Accent: "#111"})

	assert.Equal(t, "#111", merged.Accent)
	assert.Equal(t, DefaultDarkTheme.Tokens.Text, merged.Text)
}

func TestLookupPalette(t *testing.T) {
	palette, err := LookupPalette("High-Contrast")
	require.NoError(t, err)
	assert.Equal(t, ModeDark, palette.Mode)

	_, err = LookupPalette("solarized")
	assert.True(t, errors.Is(err, ErrUnknownPalette))
}

func TestPalettesAreConcrete(t *testing.T) {
	for _, name := range PaletteNames() {
		require.NoError(t, Palettes[name].Validate(), name)
	}
	assert.Equal(t, []string{"dark", "high-contrast", "light"}, PaletteNames())
}

func TestFallbackTheme(t *testing.T) {
	assert.Equal(t, Theme{Mode: ModeDark}, FallbackTheme(ModeDark))
	assert.Equal(t, Theme{Mode: ModeLight}, FallbackTheme(ModeLight))
	assert.Equal(t, Theme{Mode: ModeLight}, FallbackTheme(ModeDevice))
}

func TestBuildStyles(t *testing.T) {
	styleSet := BuildStyles(DefaultLightTheme)

	assert.Equal(t, DefaultLightTheme.Name, styleSet.Theme.Name)
	assert.True(t, strings.Contains(styleSet.Title.Render("hello"), "hello"))

	swatches := styleSet.Swatches()
	require.Len(t, swatches, 9)
	assert.Equal(t, "text", swatches[0].Role)
	assert.Equal(t, DefaultLightTheme.Tokens.Accent, swatches[2].Color)
}

func TestBuildStylesWithEmptyTokens(t *testing.T) {
	styleSet := BuildStyles(FallbackTheme(ModeDark))
	assert.Contains(t, styleSet.Text.Render("plain"), "plain")
}
