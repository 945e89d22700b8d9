// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-pal/backend/internal/domain/entity"
)

// ChangeAction describes what happened to a record.
type ChangeAction string

const (
	ChangeActionCreated ChangeAction = "created"
	ChangeActionUpdated ChangeAction = "updated"
	ChangeActionDeleted ChangeAction = "deleted"
)

// ChangeEvent notifies subscribers that a collection of a scope changed.
type ChangeEvent struct {
	Collection entity.Collection `json:"collection"`
	ScopeKey   string            `json:"scope"`
	Action     ChangeAction      `json:"action"`
	RecordID   uuid.UUID         `json:"record_id"`
	At         time.Time         `json:"at"`
}

// Unsubscribe cancels a subscription. Calling it more than once is a no-op.
type Unsubscribe func()

// ChangeFeed fans out change events per scope and collection.
type ChangeFeed interface {
	// Publish announces a change to every subscriber of the event's scope and collection.
	Publish(ctx context.Context, event ChangeEvent) error

	// Subscribe registers onEvent for changes of one collection in a scope.
	// onEvent is never called concurrently for the same subscription.
	Subscribe(ctx context.Context, scope entity.Scope, collection entity.Collection, onEvent func(ChangeEvent)) (Unsubscribe, error)
}
