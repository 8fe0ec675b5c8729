// Package controller holds the active theme and resolves mode changes.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/tint/internal/device"
	"github.com/opencode-ai/tint/internal/logging"
	"github.com/opencode-ai/tint/internal/theme"
)

// Controller errors.
var (
	ErrSubscriberExists   = errors.New("subscriber already exists")
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrInvalidSubscriber  = errors.New("invalid subscriber")
)

// Snapshot is the consumer-facing view of the controller state.
type Snapshot struct {
	ThemeMode   theme.Mode  `json:"theme_mode"`
	Theme       theme.Theme `json:"theme"`
	IsDarkTheme bool        `json:"is_dark_theme"`
}

// Surface is what consumers depend on: read the state, request a mode and
// subscribe to changes.
type Surface interface {
	Snapshot() Snapshot
	ThemeMode() theme.Mode
	Theme() theme.Theme
	IsDarkTheme() bool
	SetTheme(ctx context.Context, mode theme.Mode) error
	Subscribe(id string, subscriber Subscriber) error
	SubscribeFunc(id string, fn func(Change)) error
	Unsubscribe(id string) error
}

// Options configures a Controller.
type Options struct {
	// DarkTheme is selected for DARK, and for DEVICE when the device is dark.
	// Zero value means {mode: dark}.
	DarkTheme theme.Theme

	// LightTheme is selected for everything else. Zero value means {mode: light}.
	LightTheme theme.Theme

	// Device answers the color-scheme query for SetTheme(ModeDevice).
	// Nil means device.Unknown, which resolves DEVICE to the light theme.
	Device device.Provider

	// Strict rejects unknown modes and malformed device hints instead of
	// resolving them to the light theme.
	Strict bool

	// Logger overrides the component logger.
	Logger *zerolog.Logger
}

// Controller owns the active theme and mode.
type Controller struct {
	dark   theme.Theme
	light  theme.Theme
	device device.Provider
	strict bool
	logger zerolog.Logger

	mu         sync.RWMutex
	mode       theme.Mode
	theme      theme.Theme
	seq        uint64
	pending    []Change
	delivering bool

	subsMu sync.Mutex
	subs   []subscription
}

var _ Surface = (*Controller)(nil)

// New creates a controller in its initial state: mode LIGHT, light theme.
func New(opts Options) (*Controller, error) {
	dark, err := prepareTheme(opts.DarkTheme, theme.ModeDark)
	if err != nil {
		return nil, fmt.Errorf("dark theme: %w", err)
	}
	light, err := prepareTheme(opts.LightTheme, theme.ModeLight)
	if err != nil {
		return nil, fmt.Errorf("light theme: %w", err)
	}

	provider := opts.Device
	if provider == nil {
		provider = device.Unknown
	}

	logger := logging.Component("controller")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Controller{
		dark:   dark,
		light:  light,
		device: provider,
		strict: opts.Strict,
		logger: logger,
		mode:   theme.ModeLight,
		theme:  light,
	}, nil
}

func prepareTheme(t theme.Theme, fallback theme.Mode) (theme.Theme, error) {
	if t.IsZero() {
		return theme.FallbackTheme(fallback), nil
	}
	if err := t.Validate(); err != nil {
		return theme.Theme{}, err
	}
	return t.Clone(), nil
}

// ChangeTheme records requested as the active mode and selects the theme
// object for it, then notifies every subscriber once.
//
// Changes are delivered in Seq order. A call made while another call is
// delivering (from a subscriber or another goroutine) returns once its change
// is queued; the delivering call sends it before returning.
//
// DEVICE selects the dark theme only when scheme is exactly "dark". Any other
// mode selects the dark theme only when it is DARK. In strict mode unknown
// modes and schemes are rejected and the state is left untouched.
func (c *Controller) ChangeTheme(requested theme.Mode, scheme theme.ColorScheme) error {
	if c.strict {
		if !requested.Valid() {
			return &theme.InvalidModeError{Mode: requested}
		}
		if requested == theme.ModeDevice && scheme != theme.SchemeUnknown && !scheme.Known() {
			return &theme.InvalidSchemeError{Scheme: scheme}
		}
	}

	c.mu.Lock()
	previous := c.snapshotLocked()
	c.mode = requested
	c.theme = c.resolve(requested, scheme)
	c.seq++
	change := Change{
		Previous:  previous,
		Current:   c.snapshotLocked(),
		Scheme:    scheme,
		Seq:       c.seq,
		Timestamp: time.Now().UTC(),
	}
	c.pending = append(c.pending, change)
	drain := !c.delivering
	c.delivering = true
	c.mu.Unlock()

	c.logger.Debug().
		Str("requested", string(requested)).
		Str("scheme", scheme.String()).
		Str("resolved", string(change.Current.Theme.Mode)).
		Uint64("seq", change.Seq).
		Msg("theme changed")

	if drain {
		c.drain()
	}
	return nil
}

func (c *Controller) resolve(requested theme.Mode, scheme theme.ColorScheme) theme.Theme {
	if requested == theme.ModeDevice {
		if scheme.IsDark() {
			return c.dark
		}
		return c.light
	}
	if requested == theme.ModeDark {
		return c.dark
	}
	return c.light
}

// SetTheme is the public entry point. It asks the device provider for the
// current scheme when mode is DEVICE and forwards to ChangeTheme.
// A failing provider counts as no opinion.
func (c *Controller) SetTheme(ctx context.Context, mode theme.Mode) error {
	scheme := theme.SchemeUnknown
	if mode == theme.ModeDevice {
		detected, err := c.device.ColorScheme(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			c.logger.Warn().Err(err).Str("provider", device.NameOf(c.device)).Msg("device color scheme lookup failed")
		} else {
			scheme = detected
		}
	}
	return c.ChangeTheme(mode, scheme)
}

// Snapshot returns the current state with IsDarkTheme derived from the theme.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		ThemeMode:   c.mode,
		Theme:       c.theme.Clone(),
		IsDarkTheme: c.theme.Mode == theme.ModeDark,
	}
}

// ThemeMode returns the requested mode, which may be DEVICE.
func (c *Controller) ThemeMode() theme.Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Theme returns a copy of the active theme object.
func (c *Controller) Theme() theme.Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme.Clone()
}

// IsDarkTheme reports whether the active theme is tagged dark.
func (c *Controller) IsDarkTheme() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme.Mode == theme.ModeDark
}

// DarkTheme returns the dark theme the controller was built with.
func (c *Controller) DarkTheme() theme.Theme {
	return c.dark.Clone()
}

// LightTheme returns the light theme the controller was built with.
func (c *Controller) LightTheme() theme.Theme {
	return c.light.Clone()
}

// Seq returns the number of ChangeTheme calls applied so far.
func (c *Controller) Seq() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seq
}
