package handlers

import (
	"github.com/gin-gonic/gin"

	"aquagest/internal/domain/state"
	"aquagest/internal/infrastructure/http/v1/dto"
)

// DelivererHandler serves the deliverer name registry.
type DelivererHandler struct {
	*BaseHandler
	store *state.Store
}

// NewDelivererHandler creates a deliverer handler.
func NewDelivererHandler(base *BaseHandler, store *state.Store) *DelivererHandler {
	return &DelivererHandler{BaseHandler: base, store: store}
}

// List returns the registry in insertion order.
// GET /deliverers
func (h *DelivererHandler) List(c *gin.Context) {
	h.OK(c, dto.DeliverersResponse{Deliverers: h.store.Snapshot().Deliverers})
}

// Create registers a name. Exact duplicates are accepted and ignored.
// POST /deliverers
func (h *DelivererHandler) Create(c *gin.Context) {
	var req dto.DelivererRequest
	if !h.BindJSON(c, &req) {
		return
	}

	snap, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		return s.AddDeliverer(req.Name), nil
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.DeliverersResponse{Deliverers: snap.Deliverers})
}

// Delete removes the exact name. Deliveries keep their denormalized
// deliverer name.
// DELETE /deliverers/:name
func (h *DelivererHandler) Delete(c *gin.Context) {
	_, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		return s.RemoveDeliverer(c.Param("name")), nil
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
