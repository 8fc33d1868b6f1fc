package dto

import (
	"time"

	"aquagest/internal/core/types"
	"aquagest/internal/domain/state"
)

// --- Clients ---

// CreateClientRequest for creating clients. All fields optional; missing
// values fall back to zero values and the RESIDENTIAL type.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// UpdateClientRequest replaces the stored client wholesale.
type UpdateClientRequest struct {
	Name          string     `json:"name" binding:"required"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	Type          string     `json:"type" binding:"required"`
	LastPurchase  *time.Time `json:"lastPurchase"`
	PurchaseCount int        `json:"purchaseCount"`
}

// --- Products ---

// CreateProductRequest for creating products.
type CreateProductRequest struct {
	Name     string      `json:"name" binding:"required"`
	Category string      `json:"category"`
	Price    types.Money `json:"price"`
	Stock    int         `json:"stock"`
	MinStock int         `json:"minStock"`
	Icon     string      `json:"icon"`
}

// UpdateProductRequest replaces the stored product wholesale.
type UpdateProductRequest struct {
	Name     string      `json:"name" binding:"required"`
	Category string      `json:"category" binding:"required"`
	Price    types.Money `json:"price"`
	Stock    int         `json:"stock"`
	MinStock int         `json:"minStock"`
	Icon     string      `json:"icon"`
}

// AdjustStockRequest applies a relative stock adjustment. A zero delta is
// accepted and changes nothing.
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// --- Sales ---

// SaleItemRequest is one line of a sale request.
type SaleItemRequest struct {
	ProductID string      `json:"productId" binding:"required"`
	Name      string      `json:"name" binding:"required"`
	Quantity  int         `json:"quantity" binding:"required,min=1"`
	Price     types.Money `json:"price"`
}

// CreateSaleRequest commits a sale with its delivery.
type CreateSaleRequest struct {
	ClientID      string            `json:"clientId" binding:"required"`
	Items         []SaleItemRequest `json:"items" binding:"required"`
	Total         types.Money       `json:"total"`
	PaymentMethod string            `json:"paymentMethod" binding:"required"`
	Address       string            `json:"address"`
}

// DomainItems converts request lines to domain sale items.
func (r CreateSaleRequest) DomainItems() []state.SaleItem {
	items := make([]state.SaleItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = state.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return items
}

// CreateSaleResponse returns the committed sale and its delivery.
type CreateSaleResponse struct {
	Sale     state.Sale     `json:"sale"`
	Delivery state.Delivery `json:"delivery"`
}

// --- Deliveries ---

// UpdateDeliveryStatusRequest moves a delivery through its lifecycle.
type UpdateDeliveryStatusRequest struct {
	Status    string `json:"status" binding:"required"`
	Deliverer string `json:"deliverer"`
}

// --- Deliverers ---

// DelivererRequest names a deliverer.
type DelivererRequest struct {
	Name string `json:"name" binding:"required"`
}

// DeliverersResponse wraps the registry.
type DeliverersResponse struct {
	Deliverers []string `json:"deliverers"`
}

// --- Auth ---

// LoginRequest carries the operator credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token.
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt string     `json:"expiresAt"`
	User      state.User `json:"user"`
}

// --- Advisor ---

// AskRequest is a free-form operator question.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskResponse is the advisor's answer.
type AskResponse struct {
	Answer string `json:"answer"`
}
