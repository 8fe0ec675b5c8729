// Package cli implements the tint command line.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/config"
	"github.com/opencode-ai/tint/internal/logging"
)

var (
	cfgFile        string
	logLevel       string
	logFormat      string
	jsonOutput     bool
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tint",
	Short: "Switch between light, dark and device themes",
	Long: `tint resolves a theme mode (light, dark or device) to a theme object.

The device mode follows the terminal's current appearance. Themes come from
built-in palettes and can be overridden in .tint.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./.tint.yaml or ~/.config/tint/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (auto, console, json)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or open the TUI")
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initConfig(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader.WithConfigFile(cfgFile)
	}

	v := loader.Viper()
	if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.format", cmd.Flags().Lookup("log-format")); err != nil {
		return err
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	appConfig = cfg

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	if used := loader.ConfigFileUsed(); used != "" {
		logger := logging.Component("cli")
		logger.Debug().Str("file", used).Msg("config loaded")
	}
	return nil
}

// GetConfig returns the loaded configuration, or the defaults before load.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}
