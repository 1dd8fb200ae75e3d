package theme

import (
	"context"
	"sync"

	"github.com/dstaley/umbra/internal/appearance"
	"github.com/dstaley/umbra/internal/log"
	"github.com/dstaley/umbra/internal/pubsub"
)

// Manager is the single source of truth for the current theme mode. It
// bridges the persisted preference, the live terminal appearance signal, and
// a precomputed light/dark theme pair.
//
// Construct one Manager per process and hand it to consumers; tests build a
// fresh one per case. NewManager performs the one-time preference read before
// returning, so a Manager you hold is always ready to resolve themes.
type Manager struct {
	mu      sync.RWMutex
	light   *Theme
	dark    *Theme
	mode    Mode
	ready   bool
	store   Store
	monitor *appearance.Monitor

	subCancel context.CancelFunc
	changes   <-chan pubsub.Event[appearance.Scheme]
}

// Option customizes a Manager at construction.
type Option func(*managerConfig)

type managerConfig struct {
	light *Theme
	dark  *Theme
}

// WithThemes overrides the default theme pair, e.g. with a preset-derived
// pair from Build.
func WithThemes(light, dark *Theme) Option {
	return func(c *managerConfig) {
		if light != nil && dark != nil {
			c.light = light
			c.dark = dark
		}
	}
}

// NewManager builds a Manager over the given preference store and appearance
// monitor. The persisted mode is read exactly once, here: a read error or an
// unrecognized stored value falls back to ModeSystem with a warning log and
// is never fatal. The manager subscribes to the monitor for its lifetime;
// call Close to release the subscription.
func NewManager(ctx context.Context, store Store, monitor *appearance.Monitor, opts ...Option) *Manager {
	cfg := managerConfig{light: Light, dark: Dark}
	for _, opt := range opts {
		opt(&cfg)
	}

	mode := ModeSystem
	if store != nil {
		value, ok, err := store.Get(ctx, ModeKey)
		switch {
		case err != nil:
			log.Warn(log.CatTheme, "Reading theme mode failed, defaulting to system", "error", err)
		case ok:
			parsed, perr := ParseMode(value)
			if perr != nil {
				log.Warn(log.CatTheme, "Stored theme mode unrecognized, defaulting to system", "value", value)
			} else {
				mode = parsed
			}
		}
	}

	m := &Manager{
		light:   cfg.light,
		dark:    cfg.dark,
		mode:    mode,
		ready:   true,
		store:   store,
		monitor: monitor,
	}

	if monitor != nil {
		subCtx, cancel := context.WithCancel(context.Background())
		m.subCancel = cancel
		m.changes = monitor.Subscribe(subCtx)
	}

	return m
}

// Ready reports whether the initial preference read has completed. It is
// true for any Manager returned by NewManager.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// Mode returns the stored mode (the user's intent, not the resolved
// appearance).
func (m *Manager) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// IsDark resolves the effective appearance from the stored mode and the live
// terminal signal. It is recomputed on every call; the signal can change at
// any time.
func (m *Manager) IsDark() bool {
	switch m.Mode() {
	case ModeDark:
		return true
	case ModeLight:
		return false
	default:
		return m.monitor != nil && m.monitor.Scheme() == appearance.SchemeDark
	}
}

// Current returns the active theme: one of the two precomputed instances,
// never a copy.
func (m *Manager) Current() *Theme {
	dark := m.IsDark()
	m.mu.RLock()
	defer m.mu.RUnlock()
	if dark {
		return m.dark
	}
	return m.light
}

// SetMode updates the mode. The in-memory update is synchronous and visible
// to the next Mode/Current call; the persistence write happens in the
// background. A failed write keeps the in-memory mode and logs a warning:
// the preference reverts on next launch, which is acceptable for a display
// setting. SetMode never reports an error to the caller.
func (m *Manager) SetMode(ctx context.Context, mode Mode) {
	if !mode.Valid() {
		log.Warn(log.CatTheme, "Ignoring invalid theme mode", "mode", mode)
		return
	}

	m.mu.Lock()
	m.mode = mode
	m.mu.Unlock()
	log.Debug(log.CatTheme, "Theme mode changed", "mode", mode)

	if m.store == nil {
		return
	}
	// Detached from the caller's cancellation: the write is allowed to run
	// to completion after the triggering UI event is long gone.
	writeCtx := context.WithoutCancel(ctx)
	go func() {
		if err := m.store.Set(writeCtx, ModeKey, mode.String()); err != nil {
			log.Warn(log.CatTheme, "Persisting theme mode failed, keeping in-memory value", "mode", mode, "error", err)
		}
	}()
}

// Toggle flips the resolved appearance. It always sets a concrete light or
// dark mode: toggling while in system mode pins the opposite of whatever the
// terminal currently reports, it never stays on system.
func (m *Manager) Toggle(ctx context.Context) {
	if m.IsDark() {
		m.SetMode(ctx, ModeLight)
	} else {
		m.SetMode(ctx, ModeDark)
	}
}

// Changes exposes the appearance subscription so consumers can redraw when
// the terminal scheme flips. Signals never mutate manager state; they only
// affect the next Current/IsDark through the derivation.
func (m *Manager) Changes() <-chan pubsub.Event[appearance.Scheme] {
	return m.changes
}

// Swap replaces the theme pair, e.g. after a config reload rebuilt it from a
// different preset. The instances themselves stay immutable.
func (m *Manager) Swap(light, dark *Theme) {
	if light == nil || dark == nil {
		return
	}
	m.mu.Lock()
	m.light = light
	m.dark = dark
	m.mu.Unlock()
}

// Close releases the appearance subscription. The manager remains usable for
// reads afterwards; it just stops observing the signal.
func (m *Manager) Close() {
	if m.subCancel != nil {
		m.subCancel()
	}
}
