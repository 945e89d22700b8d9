// Package subscription contains the live-update use cases: announcing changes
// after writes and watching a collection for changes.
package subscription

import (
	"context"
	"fmt"
	"sync"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// Loader reads the full current collection of a scope.
type Loader[T any] func(ctx context.Context, scope entity.Scope) ([]T, error)

// Watch delivers the full collection to onChange once on registration and
// again after every change event for the scope and collection. Load failures
// are passed to onError and the watch keeps running. Bursts of events are
// coalesced into a single reload. Callbacks run on one goroutine, never
// concurrently.
//
// The watch ends when the returned Unsubscribe is called or ctx is done.
func Watch[T any](
	ctx context.Context,
	feed adapter.ChangeFeed,
	scope entity.Scope,
	collection entity.Collection,
	load Loader[T],
	onChange func([]T),
	onError func(error),
) (adapter.Unsubscribe, error) {
	pending := make(chan struct{}, 1)
	signal := func() {
		select {
		case pending <- struct{}{}:
		default:
		}
	}

	cancelFeed, err := feed.Subscribe(ctx, scope, collection, func(adapter.ChangeEvent) { signal() })
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", collection, err)
	}

	done := make(chan struct{})
	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(done)
			cancelFeed()
		})
	}

	signal()
	go func() {
		defer stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-pending:
			}

			records, err := load(ctx, scope)
			if ctx.Err() != nil {
				return
			}
			select {
			case <-done:
				return
			default:
			}
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(records)
		}
	}()

	return stop, nil
}
