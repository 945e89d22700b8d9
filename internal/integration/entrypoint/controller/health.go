// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StoreCheck reports whether one backing store is reachable. A nil Check
// means the store is not configured.
type StoreCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// storeCheckTimeout bounds each store ping.
const storeCheckTimeout = 2 * time.Second

// HealthController handles health check endpoints.
type HealthController struct {
	stores []StoreCheck
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string            `json:"status"`
	Stores    map[string]string `json:"stores"`
	Timestamp string            `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(stores ...StoreCheck) *HealthController {
	return &HealthController{
		stores: stores,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its stores.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	stores := make(map[string]string, len(h.stores))

	for _, store := range h.stores {
		if store.Check == nil {
			stores[store.Name] = "disabled"
			continue
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeCheckTimeout)
		err := store.Check(ctx)
		cancel()
		if err != nil {
			stores[store.Name] = "disconnected"
			status = "degraded"
			continue
		}
		stores[store.Name] = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Stores:    stores,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
