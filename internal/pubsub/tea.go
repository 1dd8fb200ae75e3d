package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// WaitCmd returns a Bubble Tea command that blocks until the next event on ch
// and returns it as a tea.Msg. It returns nil when the context is cancelled
// or the channel closes.
func WaitCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}

// Listener couples a broker subscription with the context that scopes it,
// for use from a Bubble Tea update loop. Call Wait after handling each event
// to re-arm the subscription.
type Listener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewListener subscribes to the broker. The subscription is released when
// ctx is cancelled.
func NewListener[T any](ctx context.Context, broker *Broker[T]) *Listener[T] {
	return &Listener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// Wait returns a tea.Cmd that yields the next event.
func (l *Listener[T]) Wait() tea.Cmd {
	return WaitCmd(l.ctx, l.ch)
}
