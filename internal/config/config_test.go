package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/tint/internal/theme"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup, mirroring testing.T.Chdir from newer Go releases.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// isolate points the working directory and HOME at empty temp dirs.
func isolate(t *testing.T) (cwd, home string) {
	t.Helper()
	cwd = t.TempDir()
	home = t.TempDir()
	chdir(t, cwd)
	t.Setenv("HOME", home)
	return cwd, home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme.Mode)
	assert.False(t, cfg.Theme.Strict)
	assert.Equal(t, "dark", cfg.Theme.Dark.Palette)
	assert.Equal(t, "light", cfg.Theme.Light.Palette)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.Log.Format)
}

func TestLoadProjectFile(t *testing.T) {
	cwd, _ := isolate(t)
	writeConfig(t, cwd, ".tint.yaml", `
theme:
  mode: device
  strict: true
  device_scheme: dark
  dark:
    palette: high-contrast
    name: midnight
    tokens:
      accent: "#111"
    props:
      font: mono
log:
  level: debug
  format: json
`)

	loader := NewLoader()
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Contains(t, loader.ConfigFileUsed(), ".tint.yaml")

	mode, err := cfg.Theme.InitialMode()
	require.NoError(t, err)
	assert.Equal(t, theme.ModeDevice, mode)
	assert.True(t, cfg.Theme.Strict)

	scheme, ok, err := cfg.Theme.Scheme()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, theme.SchemeDark, scheme)

	dark, light, err := cfg.Theme.Themes()
	require.NoError(t, err)
	assert.Equal(t, "midnight", dark.Name)
	assert.Equal(t, theme.ModeDark, dark.Mode)
	assert.Equal(t, "#111", dark.Tokens.Accent)
	assert.Equal(t, theme.HighContrastTheme.Tokens.Text, dark.Tokens.Text)
	assert.Equal(t, "mono", dark.Props["font"])
	assert.Equal(t, theme.DefaultLightTheme.Tokens, light.Tokens)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadUserFile(t *testing.T) {
	_, home := isolate(t)
	writeConfig(t, home, filepath.Join(".config", "tint", "config.yaml"), "theme:\n  mode: dark\n")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme.Mode)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "custom.yaml", "theme:\n  mode: dark\n")

	cfg, err := NewLoader().WithConfigFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme.Mode)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := NewLoader().WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	cwd, _ := isolate(t)
	writeConfig(t, cwd, ".tint.yaml", "theme:\n  mode: light\n")
	t.Setenv("TINT_THEME_MODE", "dark")
	t.Setenv("TINT_LOG_LEVEL", "warn")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme.Mode)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadTokenEnvOverride(t *testing.T) {
	cwd, _ := isolate(t)
	writeConfig(t, cwd, ".tint.yaml", `
theme:
  dark:
    tokens:
      accent: "#111"
      border: "#222"
`)
	t.Setenv("TINT_THEME_DARK_TOKENS_ACCENT", "#abc")
	t.Setenv("TINT_THEME_LIGHT_TOKENS_TEXT_MUTED", "#def")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "#abc", cfg.Theme.Dark.Tokens.Accent)
	assert.Equal(t, "#222", cfg.Theme.Dark.Tokens.Border)
	assert.Equal(t, "#def", cfg.Theme.Light.Tokens.TextMuted)

	dark, light, err := cfg.Theme.Themes()
	require.NoError(t, err)
	assert.Equal(t, "#abc", dark.Tokens.Accent)
	assert.Equal(t, "#def", light.Tokens.TextMuted)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "mode", body: "theme:\n  mode: sepia\n", want: "theme.mode"},
		{name: "scheme", body: "theme:\n  device_scheme: purple\n", want: "theme.device_scheme"},
		{name: "palette", body: "theme:\n  dark:\n    palette: solarized\n", want: "theme.dark"},
		{name: "log format", body: "log:\n  format: xml\n", want: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cwd, _ := isolate(t)
			writeConfig(t, cwd, ".tint.yaml", tt.body)

			_, err := NewLoader().Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestThemeSpecBuild(t *testing.T) {
	t.Run("empty entry falls back to mode-only theme", func(t *testing.T) {
		got, err := ThemeSpec{}.Build(theme.ModeDark)
		require.NoError(t, err)
		assert.Equal(t, theme.Theme{Mode: theme.ModeDark}, got)
	})

	t.Run("slot decides the mode tag", func(t *testing.T) {
		got, err := ThemeSpec{Palette: "high-contrast"}.Build(theme.ModeLight)
		require.NoError(t, err)
		assert.Equal(t, theme.ModeLight, got.Mode)
		assert.Equal(t, "high-contrast", got.Name)
	})

	t.Run("device slot rejected", func(t *testing.T) {
		_, err := ThemeSpec{}.Build(theme.ModeDevice)
		assert.ErrorIs(t, err, theme.ErrInvalidTheme)
	})

	t.Run("unknown palette", func(t *testing.T) {
		_, err := ThemeSpec{Palette: "nope"}.Build(theme.ModeDark)
		assert.ErrorIs(t, err, theme.ErrUnknownPalette)
	})
}

func TestSchemeUnset(t *testing.T) {
	scheme, ok, err := ThemeConfig{}.Scheme()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, theme.SchemeUnknown, scheme)
}

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}
