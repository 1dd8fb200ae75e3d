// Package pubsub provides a small generic publish/subscribe broker.
package pubsub

import (
	"context"
	"sync"
	"time"
)

const defaultBufferSize = 16

// Event is a published value with its publication time.
type Event[T any] struct {
	Payload T
	At      time.Time
}

// Broker fans events out to subscribers. Publishing never blocks: events are
// dropped for subscribers whose channel buffer is full.
type Broker[T any] struct {
	mu     sync.RWMutex
	subs   map[chan Event[T]]struct{}
	done   chan struct{}
	buffer int
}

// New creates a broker with the default subscriber buffer size.
func New[T any]() *Broker[T] {
	return &Broker[T]{
		subs:   make(map[chan Event[T]]struct{}),
		done:   make(chan struct{}),
		buffer: defaultBufferSize,
	}
}

// Subscribe registers a new subscriber. The returned channel is closed and
// the subscription removed when ctx is cancelled or the broker closes.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed() {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := make(chan Event[T], b.buffer)
	b.subs[sub] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
			return // Close already closed the subscriber channels
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.closed() {
			return
		}
		delete(b.subs, sub)
		close(sub)
	}()

	return sub
}

// Publish delivers payload to every subscriber that has buffer space.
func (b *Broker[T]) Publish(payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed() {
		return
	}

	event := Event[T]{Payload: payload, At: time.Now()}
	for sub := range b.subs {
		select {
		case sub <- event:
		default:
			// Subscriber is not keeping up; drop rather than block.
		}
	}
}

// Close shuts down the broker and closes all subscriber channels.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed() {
		return
	}
	close(b.done)
	for sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}

// SubscriberCount returns the number of active subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Broker[T]) closed() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}
