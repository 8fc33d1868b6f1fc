package handlers

import (
	"github.com/gin-gonic/gin"

	"aquagest/internal/domain/state"
	"aquagest/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the product catalog.
type ProductHandler struct {
	*BaseHandler
	store *state.Store
}

// NewProductHandler creates a product handler.
func NewProductHandler(base *BaseHandler, store *state.Store) *ProductHandler {
	return &ProductHandler{BaseHandler: base, store: store}
}

// List returns the catalog in insertion order.
// GET /products
func (h *ProductHandler) List(c *gin.Context) {
	h.OK(c, h.store.Snapshot().Products)
}

// Create adds a product to the end of the catalog.
// POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	var created state.Product
	_, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		var next state.State
		next, created = s.AddProduct(state.ProductInput{
			Name:     req.Name,
			Category: state.ProductCategory(req.Category),
			Price:    req.Price,
			Stock:    req.Stock,
			MinStock: req.MinStock,
			Icon:     req.Icon,
		})
		return next, nil
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, created.ID)
}

// Update replaces a product wholesale; unknown ids change nothing.
// PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product := state.Product{
		ID:       c.Param("id"),
		Name:     req.Name,
		Category: state.ProductCategory(req.Category),
		Price:    req.Price,
		Stock:    req.Stock,
		MinStock: req.MinStock,
		Icon:     req.Icon,
	}

	_, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		return s.UpdateProduct(product), nil
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Delete removes a product. Past sale lines keep their denormalized name
// and price.
// DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	_, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		return s.RemoveProduct(c.Param("id")), nil
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// AdjustStock applies a relative adjustment, clamped at zero.
// POST /products/:id/stock
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	var req dto.AdjustStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	snap, err := h.store.Apply(c.Request.Context(), func(s state.State) (state.State, error) {
		return s.AdjustStock(c.Param("id"), req.Delta), nil
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	if product, ok := snap.FindProduct(c.Param("id")); ok {
		h.OK(c, product)
		return
	}
	h.NoContent(c)
}
