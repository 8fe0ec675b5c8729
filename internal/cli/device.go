package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/device"
	"github.com/opencode-ai/tint/internal/theme"
)

const deviceQueryTimeout = 2 * time.Second

func init() {
	rootCmd.AddCommand(deviceCmd)
}

// DeviceStatus is the payload printed by `tint device`.
type DeviceStatus struct {
	Scheme   string `json:"scheme"`
	Source   string `json:"source,omitempty"`
	Resolves string `json:"resolves_to"`
	Error    string `json:"error,omitempty"`
}

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Show the detected device color scheme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newDeviceProvider(GetConfig().Theme)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), deviceQueryTimeout)
		defer cancel()

		scheme, source, queryErr := lookupScheme(ctx, provider)
		status := DeviceStatus{
			Scheme:   scheme.String(),
			Source:   source,
			Resolves: string(theme.ModeLight),
		}
		if scheme.IsDark() {
			status.Resolves = string(theme.ModeDark)
		}
		if queryErr != nil {
			status.Error = queryErr.Error()
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), status)
		}
		rows := [][]string{
			{"Scheme:", status.Scheme},
			{"Source:", valueOrDash(status.Source)},
			{"Device mode resolves to:", status.Resolves},
		}
		if status.Error != "" {
			rows = append(rows, []string{"Error:", status.Error})
		}
		return writeTable(cmd.OutOrStdout(), nil, rows)
	},
}

func lookupScheme(ctx context.Context, provider device.Provider) (theme.ColorScheme, string, error) {
	if chain, ok := provider.(*device.Chain); ok {
		return chain.Lookup(ctx)
	}
	scheme, err := provider.ColorScheme(ctx)
	if !scheme.Known() {
		return scheme, "", err
	}
	return scheme, device.NameOf(provider), err
}
