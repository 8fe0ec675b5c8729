package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/controller"
	"github.com/opencode-ai/tint/internal/logging"
	"github.com/opencode-ai/tint/internal/theme"
)

var setScheme string

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().StringVar(&setScheme, "scheme", "", "device color scheme to use instead of detecting it (dark, light)")
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the theme for the configured mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := newConfiguredController(cmd.Context(), GetConfig(), nil)
		if err != nil {
			return err
		}
		return writeSnapshot(cmd.OutOrStdout(), ctrl.Snapshot())
	},
}

var setCmd = &cobra.Command{
	Use:   "set <light|dark|device>",
	Short: "Resolve a theme mode and show the result",
	Long: `Resolve a theme mode and show the resulting theme.

Nothing is persisted. With --scheme the device hint is taken from the flag
instead of the terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ctrl, err := newController(cfg, nil)
		if err != nil {
			return err
		}

		mode, err := theme.ParseMode(args[0])
		if err != nil {
			if cfg.Theme.Strict {
				return err
			}
			logger := logging.Component("cli")
			logger.Warn().Str("mode", args[0]).Msg("unknown mode, resolving to light theme")
			mode = theme.Mode(args[0])
		}

		if cmd.Flags().Changed("scheme") {
			err = ctrl.ChangeTheme(mode, theme.ColorScheme(strings.ToLower(setScheme)))
		} else {
			err = ctrl.SetTheme(cmd.Context(), mode)
		}
		if err != nil {
			return err
		}
		return writeSnapshot(cmd.OutOrStdout(), ctrl.Snapshot())
	},
}

func writeSnapshot(out io.Writer, snap controller.Snapshot) error {
	if IsJSONOutput() {
		return WriteOutput(out, snap)
	}

	rows := [][]string{
		{"Mode:", string(snap.ThemeMode)},
		{"Theme:", fmt.Sprintf("%s (%s)", valueOrDash(snap.Theme.Name), snap.Theme.Mode)},
		{"Dark:", formatYesNo(snap.IsDarkTheme)},
	}
	if accent, ok := snap.Theme.Get("accent"); ok {
		rows = append(rows, []string{"Accent:", accent})
	}
	return writeTable(out, nil, rows)
}
