package handlers

import (
	"github.com/gin-gonic/gin"

	"aquagest/internal/domain/delivery"
	"aquagest/internal/domain/state"
	"aquagest/internal/infrastructure/http/v1/dto"
)

// DeliveryHandler serves the delivery list and lifecycle transitions.
type DeliveryHandler struct {
	*BaseHandler
	store *state.Store
}

// NewDeliveryHandler creates a delivery handler.
func NewDeliveryHandler(base *BaseHandler, store *state.Store) *DeliveryHandler {
	return &DeliveryHandler{BaseHandler: base, store: store}
}

// List returns all deliveries, newest first.
// GET /deliveries
func (h *DeliveryHandler) List(c *gin.Context) {
	h.OK(c, h.store.Snapshot().Deliveries)
}

// UpdateStatus applies one lifecycle transition.
// PATCH /deliveries/:id/status
func (h *DeliveryHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateDeliveryStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	deliveryID := c.Param("id")
	snap, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		return delivery.SetStatus(s, delivery.Transition{
			DeliveryID: deliveryID,
			Status:     state.DeliveryStatus(req.Status),
			Deliverer:  req.Deliverer,
		})
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	updated, _ := snap.FindDelivery(deliveryID)
	h.OK(c, updated)
}
