package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/theme"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(previewCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in palettes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := theme.PaletteNames()

		if IsJSONOutput() {
			palettes := make([]theme.Theme, 0, len(names))
			for _, name := range names {
				palettes = append(palettes, theme.Palettes[name])
			}
			return WriteOutput(cmd.OutOrStdout(), palettes)
		}

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			palette := theme.Palettes[name]
			rows = append(rows, []string{
				name,
				string(palette.Mode),
				palette.Tokens.Background,
				palette.Tokens.Accent,
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "MODE", "BACKGROUND", "ACCENT"}, rows)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [light|dark|device]",
	Short: "Render the resolved theme's colors",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ctrl, err := newConfiguredController(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return err
			}
			if err := ctrl.SetTheme(cmd.Context(), mode); err != nil {
				return err
			}
		}

		snap := ctrl.Snapshot()
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), snap.Theme)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), renderPreview(snap.ThemeMode, snap.Theme))
		return err
	},
}

func renderPreview(mode theme.Mode, th theme.Theme) string {
	styleSet := theme.BuildStyles(th)

	title := fmt.Sprintf("%s theme (mode %s)", valueOrDash(th.Name), mode)
	lines := []string{styleSet.Title.Render(title), ""}
	for _, swatch := range styleSet.Swatches() {
		label := fmt.Sprintf("%-11s %s", swatch.Role, valueOrDash(swatch.Color))
		lines = append(lines, swatch.Style.Render(label))
	}
	return styleSet.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
