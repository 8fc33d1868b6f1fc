package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"aquagest/internal/infrastructure/persist"
)

// Pinger is implemented by slot stores with a liveness check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	storage Pinger
	sync    *persist.SyncIndicator
}

// NewHealthHandler creates a new health handler. storage may be nil when
// the slot store has no connectivity to check (file or memory).
func NewHealthHandler(storage Pinger, sync *persist.SyncIndicator) *HealthHandler {
	return &HealthHandler{storage: storage, sync: sync}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.storage != nil {
		if err := h.storage.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"checks": map[string]string{
					"storage": "unhealthy: " + err.Error(),
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"storage": "healthy",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	syncing := false
	failed := false
	if h.sync != nil {
		syncing = h.sync.Syncing()
		failed = h.sync.Failed()
	}

	c.JSON(http.StatusOK, gin.H{
		"app":     "aquagest",
		"version": "0.1.0",
		"persistence": map[string]any{
			"syncing":     syncing,
			"last_failed": failed,
		},
	})
}
