// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-pal/backend/internal/application/usecase/subscription"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
	"github.com/finance-pal/backend/internal/integration/entrypoint/dto"
	"github.com/finance-pal/backend/internal/integration/entrypoint/middleware"
)

// Server-sent event names.
const (
	eventSnapshot  = "snapshot"
	eventError     = "error"
	eventHeartbeat = "heartbeat"
)

// StreamController pushes live collection snapshots over server-sent events.
type StreamController struct {
	watchUseCase *subscription.WatchCollectionUseCase
	heartbeat    time.Duration
}

// NewStreamController creates a new stream controller instance. A zero
// heartbeat disables keep-alive events.
func NewStreamController(watchUseCase *subscription.WatchCollectionUseCase, heartbeat time.Duration) *StreamController {
	return &StreamController{
		watchUseCase: watchUseCase,
		heartbeat:    heartbeat,
	}
}

// Stream handles GET /stream/:collection requests. The full collection is sent
// as a "snapshot" event on connect and after every change until the client
// disconnects.
func (c *StreamController) Stream(ctx *gin.Context) {
	scope, ok := requireScope(ctx)
	if !ok {
		return
	}

	collection := entity.Collection(ctx.Param("collection"))
	if !collection.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrUnknownCollection.Error(),
			Code:  string(domainerror.ErrCodeUnknownCollection),
		})
		return
	}

	reqCtx := ctx.Request.Context()
	snapshots := make(chan subscription.Snapshot, 1)
	failures := make(chan error, 1)

	stop, err := c.watchUseCase.Execute(reqCtx, subscription.WatchCollectionInput{
		Scope:      scope,
		Collection: collection,
		OnChange: func(s subscription.Snapshot) {
			select {
			case snapshots <- s:
			case <-reqCtx.Done():
			}
		},
		OnError: func(err error) {
			select {
			case failures <- err:
			case <-reqCtx.Done():
			}
		},
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}
	defer stop()

	var heartbeat <-chan time.Time
	if c.heartbeat > 0 {
		ticker := time.NewTicker(c.heartbeat)
		defer ticker.Stop()
		heartbeat = ticker.C
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")
	ctx.Status(http.StatusOK)
	ctx.Writer.Flush()

	email, _ := middleware.GetUserEmailFromContext(ctx)
	slog.Debug("Stream opened", "scope", scope.Key(), "collection", collection, "email", email)
	defer slog.Debug("Stream closed", "scope", scope.Key(), "collection", collection)

	for {
		select {
		case <-reqCtx.Done():
			return
		case s := <-snapshots:
			ctx.SSEvent(eventSnapshot, dto.ToSnapshotEvent(s))
		case err := <-failures:
			slog.Warn("Failed to load collection for stream",
				"scope", scope.Key(),
				"collection", collection,
				"error", err,
			)
			ctx.SSEvent(eventError, dto.ErrorResponse{
				Error: "Failed to load " + string(collection),
				Code:  string(domainerror.ErrCodeStoreUnavailable),
			})
		case t := <-heartbeat:
			ctx.SSEvent(eventHeartbeat, t.UTC().Format(time.RFC3339))
		}
		ctx.Writer.Flush()
	}
}
