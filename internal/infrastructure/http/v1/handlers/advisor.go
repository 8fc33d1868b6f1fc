package handlers

import (
	"github.com/gin-gonic/gin"

	"aquagest/internal/domain/advisor"
	"aquagest/internal/domain/state"
	"aquagest/internal/infrastructure/http/v1/dto"
)

// AdvisorHandler serves the model-backed suggestion endpoints. All of
// them degrade to canned answers; none can fail the request.
type AdvisorHandler struct {
	*BaseHandler
	store   *state.Store
	service *advisor.Service
}

// NewAdvisorHandler creates an advisor handler.
func NewAdvisorHandler(base *BaseHandler, store *state.Store, service *advisor.Service) *AdvisorHandler {
	return &AdvisorHandler{BaseHandler: base, store: store, service: service}
}

// Ask answers a free-form question about the current business state.
// POST /advisor/ask
func (h *AdvisorHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	answer := h.service.Ask(c.Request.Context(), h.store.Snapshot(), req.Question)
	h.OK(c, dto.AskResponse{Answer: answer})
}

// Prediction forecasts demand for the next 7 days.
// GET /advisor/prediction
func (h *AdvisorHandler) Prediction(c *gin.Context) {
	h.OK(c, h.service.PredictDemand(c.Request.Context(), h.store.Snapshot()))
}

// Promotions suggests promotions based on current stock.
// GET /advisor/promotions
func (h *AdvisorHandler) Promotions(c *gin.Context) {
	h.OK(c, h.service.SuggestPromotions(c.Request.Context(), h.store.Snapshot()))
}
