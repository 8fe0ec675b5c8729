package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/tint/internal/config"
	"github.com/opencode-ai/tint/internal/controller"
	"github.com/opencode-ai/tint/internal/device"
)

// newDeviceProvider picks the device collaborator: a forced scheme from
// config, otherwise environment then terminal detection. Tests replace it.
var newDeviceProvider = func(cfg config.ThemeConfig) (device.Provider, error) {
	scheme, forced, err := cfg.Scheme()
	if err != nil {
		return nil, err
	}
	if forced {
		return device.Static(scheme), nil
	}
	return device.Default(), nil
}

// newController builds the controller around provider, or around
// newDeviceProvider's choice when provider is nil.
func newController(cfg *config.Config, provider device.Provider) (*controller.Controller, error) {
	dark, light, err := cfg.Theme.Themes()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		provider, err = newDeviceProvider(cfg.Theme)
		if err != nil {
			return nil, fmt.Errorf("device provider: %w", err)
		}
	}

	ctrl, err := controller.New(controller.Options{
		DarkTheme:  dark,
		LightTheme: light,
		Device:     provider,
		Strict:     cfg.Theme.Strict,
	})
	if err != nil {
		return nil, err
	}
	return ctrl, nil
}

// newConfiguredController builds the controller and applies the configured
// startup mode.
func newConfiguredController(ctx context.Context, cfg *config.Config, provider device.Provider) (*controller.Controller, error) {
	ctrl, err := newController(cfg, provider)
	if err != nil {
		return nil, err
	}
	mode, err := cfg.Theme.InitialMode()
	if err != nil {
		return nil, err
	}
	if err := ctrl.SetTheme(ctx, mode); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// capturedDeviceProvider asks the device once, before anything else reads
// the terminal, and returns a provider that replays the answer.
func capturedDeviceProvider(ctx context.Context, cfg config.ThemeConfig) (device.Provider, error) {
	provider, err := newDeviceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("device provider: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, deviceQueryTimeout)
	defer cancel()
	return device.Capture(ctx, provider), nil
}
