package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/tint/internal/theme"
)

// Loader handles configuration loading from multiple sources.
type Loader struct {
	v          *viper.Viper
	configFile string
	envPrefix  string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v:         viper.New(),
		envPrefix: "TINT",
	}
}

// WithConfigFile sets an explicit config file path.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// Viper returns the underlying viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// ConfigFileUsed returns the file the configuration was read from, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Load loads configuration from all sources.
// Precedence (highest to lowest): flags bound to the viper instance,
// TINT_* environment variables, ./.tint.yaml, ~/.config/tint/config.yaml,
// defaults.
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()

	l.v.SetEnvPrefix(l.envPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()
	if err := l.bindTokenEnv(); err != nil {
		return nil, err
	}

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName(".tint")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := l.readUserConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// readUserConfig reads ~/.config/tint/config.yaml when no project file exists.
func (l *Loader) readUserConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	path := filepath.Join(home, ".config", "tint", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// bindTokenEnv exposes theme.<slot>.tokens.<name> as TINT_THEME_<SLOT>_TOKENS_<NAME>.
// Token keys have no defaults, so AutomaticEnv alone never sees them. Props
// have free-form keys and are read from config files only.
func (l *Loader) bindTokenEnv() error {
	for _, slot := range []theme.Mode{theme.ModeDark, theme.ModeLight} {
		for _, name := range theme.TokenNames {
			key := fmt.Sprintf("theme.%s.tokens.%s", slot, name)
			if err := l.v.BindEnv(key); err != nil {
				return fmt.Errorf("binding %s: %w", key, err)
			}
		}
	}
	return nil
}

func (l *Loader) setDefaults() {
	defaults := Default()

	l.v.SetDefault("theme.mode", defaults.Theme.Mode)
	l.v.SetDefault("theme.strict", defaults.Theme.Strict)
	l.v.SetDefault("theme.device_scheme", defaults.Theme.DeviceScheme)
	l.v.SetDefault("theme.dark.palette", defaults.Theme.Dark.Palette)
	l.v.SetDefault("theme.dark.name", "")
	l.v.SetDefault("theme.light.palette", defaults.Theme.Light.Palette)
	l.v.SetDefault("theme.light.name", "")
	l.v.SetDefault("log.level", defaults.Log.Level)
	l.v.SetDefault("log.format", defaults.Log.Format)
}
