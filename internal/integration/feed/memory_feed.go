// Package feed implements the change feed that drives live collection updates.
package feed

import (
	"context"
	"sync"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// memorySubscriber serializes deliveries to one callback.
type memorySubscriber struct {
	mu      sync.Mutex
	onEvent func(adapter.ChangeEvent)
	closed  bool
}

func (s *memorySubscriber) deliver(event adapter.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.onEvent(event)
}

func (s *memorySubscriber) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// MemoryFeed is an in-process change feed. It serves single-instance
// deployments and the device-local guest scope when Redis is not configured.
type MemoryFeed struct {
	mu          sync.RWMutex
	subscribers map[string]map[*memorySubscriber]struct{}
}

// NewMemoryFeed creates a new in-process change feed.
func NewMemoryFeed() *MemoryFeed {
	return &MemoryFeed{
		subscribers: make(map[string]map[*memorySubscriber]struct{}),
	}
}

// Publish delivers the event to every current subscriber of its channel.
func (f *MemoryFeed) Publish(_ context.Context, event adapter.ChangeEvent) error {
	channel := channelName(event.ScopeKey, event.Collection)

	f.mu.RLock()
	targets := make([]*memorySubscriber, 0, len(f.subscribers[channel]))
	for sub := range f.subscribers[channel] {
		targets = append(targets, sub)
	}
	f.mu.RUnlock()

	for _, sub := range targets {
		sub.deliver(event)
	}
	return nil
}

// Subscribe registers onEvent until the returned Unsubscribe is called or ctx is done.
func (f *MemoryFeed) Subscribe(
	ctx context.Context,
	scope entity.Scope,
	collection entity.Collection,
	onEvent func(adapter.ChangeEvent),
) (adapter.Unsubscribe, error) {
	channel := channelName(scope.Key(), collection)
	sub := &memorySubscriber{onEvent: onEvent}

	f.mu.Lock()
	if f.subscribers[channel] == nil {
		f.subscribers[channel] = make(map[*memorySubscriber]struct{})
	}
	f.subscribers[channel][sub] = struct{}{}
	f.mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			sub.close()

			f.mu.Lock()
			delete(f.subscribers[channel], sub)
			if len(f.subscribers[channel]) == 0 {
				delete(f.subscribers, channel)
			}
			f.mu.Unlock()
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			unsubscribe()
		case <-done:
		}
	}()

	return unsubscribe, nil
}

// subscriberCount reports the number of live subscriptions on a channel.
func (f *MemoryFeed) subscriberCount(scope entity.Scope, collection entity.Collection) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers[channelName(scope.Key(), collection)])
}
