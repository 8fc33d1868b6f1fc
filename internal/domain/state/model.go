// Package state holds the snapshot value of the whole business state and
// the pure mutation operations over it. Every operation takes the current
// snapshot and returns a new one; previously returned snapshots are never
// mutated in place.
package state

import (
	"time"

	"aquagest/internal/core/types"
)

// ClientType classifies a client.
type ClientType string

const (
	ClientResidential ClientType = "RESIDENTIAL"
	ClientCommercial  ClientType = "COMMERCIAL"
)

// Valid reports whether the client type is a known value.
func (t ClientType) Valid() bool {
	switch t {
	case ClientResidential, ClientCommercial:
		return true
	}
	return false
}

// ProductCategory classifies a catalog product.
type ProductCategory string

const (
	CategoryWater ProductCategory = "WATER"
	CategoryGas   ProductCategory = "GAS"
	CategoryPack  ProductCategory = "PACK"
	CategoryOther ProductCategory = "OTHER"
)

// Valid reports whether the category is a known value.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryWater, CategoryGas, CategoryPack, CategoryOther:
		return true
	}
	return false
}

// PaymentMethod is how a sale was paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentPix  PaymentMethod = "PIX"
	PaymentCard PaymentMethod = "CARD"
	PaymentDebt PaymentMethod = "DEBT" // fiado
)

// Valid reports whether the payment method is a known value.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCard, PaymentDebt:
		return true
	}
	return false
}

// DeliveryStatus is the lifecycle state of a delivery job.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryInRoute   DeliveryStatus = "IN_ROUTE"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryCancelled DeliveryStatus = "CANCELLED"
)

// Valid reports whether the status is a known value.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryPending, DeliveryInRoute, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

// UserRole is the role of the active session user.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleDeliverer UserRole = "DELIVERER"
	RoleSales     UserRole = "SALES"
)

// Client is a customer of the resale.
type Client struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	Type          ClientType `json:"type"`
	LastPurchase  *time.Time `json:"lastPurchase,omitempty"`
	PurchaseCount int        `json:"purchaseCount"`
}

// Product is a catalog entry with its current stock level.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category ProductCategory `json:"category"`
	Price    types.Money     `json:"price"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"minStock"`
	// Icon is an opaque display token, never interpreted by the core.
	Icon string `json:"icon"`
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

// SaleItem is one line of a sale. Name and Price are denormalized at sale
// time and stay meaningful after the product changes or is removed.
type SaleItem struct {
	ProductID string      `json:"productId"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	Price     types.Money `json:"price"`
}

// Sale is an immutable record of a completed sale. There is no update or
// delete operation for sales.
type Sale struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	// ClientName is a snapshot of the client's name at sale time.
	ClientName    string        `json:"clientName"`
	Items         []SaleItem    `json:"items"`
	Total         types.Money   `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Date          time.Time     `json:"date"`
	DeliveryID    string        `json:"deliveryId,omitempty"`
}

// Delivery is the job spawned by a sale. Exactly one delivery exists per
// sale, created in the same commit.
type Delivery struct {
	ID       string `json:"id"`
	SaleID   string `json:"saleId"`
	ClientID string `json:"clientId"`
	// ClientName is a snapshot of the client's name at sale time.
	ClientName string `json:"clientName"`
	// Address may differ from the client's stored address.
	Address string         `json:"address"`
	Status  DeliveryStatus `json:"status"`
	// DelivererName is set only by a transition to IN_ROUTE and kept even
	// if the deliverer is later removed from the registry.
	DelivererName string     `json:"delivererName,omitempty"`
	ScheduledFor  time.Time  `json:"scheduledFor"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// User is the active session user.
type User struct {
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}
