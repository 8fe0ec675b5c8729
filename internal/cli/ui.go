package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/tui"
)

// ErrNotInteractive is returned when the TUI is requested without a TTY.
var ErrNotInteractive = errors.New("the TUI requires an interactive terminal; use `tint show` or `tint set` instead")

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive theme switcher",
	Long:  "Launch the tint terminal user interface. Press l, d, s or t to switch themes.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func runTUI(cmd *cobra.Command) error {
	if IsNonInteractive() {
		return ErrNotInteractive
	}

	cfg := GetConfig()
	provider, err := capturedDeviceProvider(cmd.Context(), cfg.Theme)
	if err != nil {
		return err
	}
	ctrl, err := newConfiguredController(cmd.Context(), cfg, provider)
	if err != nil {
		return err
	}

	return tui.RunWithConfig(tui.Config{
		Surface:      ctrl,
		QueryTimeout: deviceQueryTimeout,
	})
}
