package handlers

import (
	"github.com/gin-gonic/gin"

	"aquagest/internal/domain/state"
	"aquagest/internal/infrastructure/http/v1/dto"
)

// ClientHandler serves the client collection.
type ClientHandler struct {
	*BaseHandler
	store *state.Store
}

// NewClientHandler creates a client handler.
func NewClientHandler(base *BaseHandler, store *state.Store) *ClientHandler {
	return &ClientHandler{BaseHandler: base, store: store}
}

// List returns all clients, most recently added first.
// GET /clients
func (h *ClientHandler) List(c *gin.Context) {
	h.OK(c, h.store.Snapshot().Clients)
}

// Create adds a client.
// POST /clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	var created state.Client
	_, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		var next state.State
		next, created = s.AddClient(state.ClientInput{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
			Type:    state.ClientType(req.Type),
		})
		return next, nil
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, created.ID)
}

// Update replaces a client wholesale. Updating an unknown id changes
// nothing and still returns 204.
// PUT /clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	var req dto.UpdateClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	client := state.Client{
		ID:            c.Param("id"),
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Type:          state.ClientType(req.Type),
		LastPurchase:  req.LastPurchase,
		PurchaseCount: req.PurchaseCount,
	}

	_, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		return s.UpdateClient(client), nil
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Delete removes a client. Sales keep their denormalized client name.
// DELETE /clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	_, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		return s.RemoveClient(c.Param("id")), nil
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
