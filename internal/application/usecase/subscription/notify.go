// Package subscription contains the live-update use cases: announcing changes
// after writes and watching a collection for changes.
package subscription

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
)

// Notifier publishes change events after successful writes.
type Notifier struct {
	feed adapter.ChangeFeed
	now  func() time.Time
}

// NewNotifier creates a new Notifier. A nil feed disables notifications.
func NewNotifier(feed adapter.ChangeFeed) *Notifier {
	return &Notifier{
		feed: feed,
		now:  time.Now,
	}
}

// Notify announces a change. The write it follows has already succeeded, so a
// failed publish is logged rather than returned; subscribers catch up on the
// next change.
func (n *Notifier) Notify(
	ctx context.Context,
	scope entity.Scope,
	collection entity.Collection,
	action adapter.ChangeAction,
	recordID uuid.UUID,
) {
	if n == nil || n.feed == nil {
		return
	}

	event := adapter.ChangeEvent{
		Collection: collection,
		ScopeKey:   scope.Key(),
		Action:     action,
		RecordID:   recordID,
		At:         n.now().UTC(),
	}

	if err := n.feed.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish change event",
			"collection", collection,
			"scope", scope.Key(),
			"action", action,
			"record_id", recordID,
			"error", err,
		)
	}
}
