package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aquagest/internal/core/apperror"
	"aquagest/internal/domain/sales"
	"aquagest/internal/domain/state"
	"aquagest/internal/infrastructure/http/v1/dto"
)

// SaleHandler serves the sale history and the commit endpoint.
type SaleHandler struct {
	*BaseHandler
	store *state.Store
}

// NewSaleHandler creates a sale handler.
func NewSaleHandler(base *BaseHandler, store *state.Store) *SaleHandler {
	return &SaleHandler{BaseHandler: base, store: store}
}

// List returns the sale history, newest first.
// GET /sales
func (h *SaleHandler) List(c *gin.Context) {
	h.OK(c, h.store.Snapshot().Sales)
}

// Create commits a sale and its delivery in one transition.
// POST /sales
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if len(req.Items) == 0 {
		h.Error(c, apperror.NewValidation("sale must contain at least one item"))
		return
	}

	method := state.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		h.Error(c, apperror.NewValidation("unknown payment method").
			WithDetail("paymentMethod", req.PaymentMethod))
		return
	}

	var (
		sale     state.Sale
		delivery state.Delivery
	)
	_, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		var next state.State
		next, sale, delivery = sales.Commit(s, sales.Input{
			ClientID:      req.ClientID,
			Items:         req.DomainItems(),
			Total:         req.Total,
			PaymentMethod: method,
			Address:       req.Address,
		})
		return next, nil
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateSaleResponse{
		Sale:     sale,
		Delivery: delivery,
	})
}
