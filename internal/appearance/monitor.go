package appearance

import (
	"context"
	"sync"
	"time"

	"github.com/dstaley/umbra/internal/log"
	"github.com/dstaley/umbra/internal/pubsub"
)

// Monitor holds the last observed terminal scheme and publishes a change
// event whenever a new observation differs from it. Observations come from
// Refresh (re-running the detector) or Set (an external signal).
type Monitor struct {
	mu      sync.RWMutex
	current Scheme
	detect  DetectFunc
	broker  *pubsub.Broker[Scheme]
}

// NewMonitor creates a monitor seeded with one detection. A nil detect falls
// back to Detect.
func NewMonitor(detect DetectFunc) *Monitor {
	if detect == nil {
		detect = Detect
	}
	return &Monitor{
		current: detect(),
		detect:  detect,
		broker:  pubsub.New[Scheme](),
	}
}

// Scheme returns the last observed scheme.
func (m *Monitor) Scheme() Scheme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Subscribe registers for change events. The subscription is released when
// ctx is cancelled.
func (m *Monitor) Subscribe(ctx context.Context) <-chan pubsub.Event[Scheme] {
	return m.broker.Subscribe(ctx)
}

// Set records an externally observed scheme, publishing only on change.
func (m *Monitor) Set(s Scheme) {
	m.mu.Lock()
	changed := m.current != s
	m.current = s
	m.mu.Unlock()

	if changed {
		log.Debug(log.CatAppearance, "Terminal scheme changed", "scheme", s)
		m.broker.Publish(s)
	}
}

// Refresh re-runs the detector and records the result.
func (m *Monitor) Refresh() {
	m.Set(m.detect())
}

// Poll re-runs the detector every interval until ctx is cancelled.
// lipgloss caches the terminal's OSC 11 answer for the process lifetime,
// so between ticks only the UMBRA_APPEARANCE override can change the
// result; real background flips arrive through Set from the host.
func (m *Monitor) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Refresh()
		}
	}
}

// Close shuts down the broker and all subscriber channels.
func (m *Monitor) Close() {
	m.broker.Close()
}
