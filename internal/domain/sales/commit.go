// Package sales provides the sale commit workflow: one sale, its delivery
// job, the stock decrements and the client purchase-count increment applied
// together as a single snapshot transition.
package sales

import (
	"time"

	"aquagest/internal/core/id"
	"aquagest/internal/core/types"
	"aquagest/internal/domain/state"
)

const (
	// FallbackClientName is used when the client id cannot be resolved.
	// The workflow proceeds anyway; the UI layer is expected to have
	// constrained the choice already.
	FallbackClientName = "Cliente"

	// FallbackAddress is used when neither an explicit address nor a
	// client address is available.
	FallbackAddress = "Endereço não informado"
)

// Input describes a sale to commit. Items carry denormalized names and
// prices; Total is stored as given and never recomputed against the items.
type Input struct {
	ClientID      string
	Items         []state.SaleItem
	Total         types.Money
	PaymentMethod state.PaymentMethod
	// Address overrides the client's stored address when set.
	Address string
}

// Commit applies the sale as one atomic snapshot transition:
//
//  1. fresh sale and delivery ids
//  2. sale with the client's current name denormalized in
//  3. pending delivery with the resolved address
//  4. stock decrement per line item, without a floor (oversell is allowed
//     on this path, unlike AdjustStock)
//  5. client purchase-count increment
//
// Sale and delivery are prepended to their lists. A call with no items is
// a complete no-op and returns a zero Sale. Commit itself never fails.
func Commit(s state.State, in Input) (state.State, state.Sale, state.Delivery) {
	if len(in.Items) == 0 {
		return s, state.Sale{}, state.Delivery{}
	}

	now := time.Now().UTC()
	saleID := id.NewString()
	deliveryID := id.NewString()

	client, clientFound := s.FindClient(in.ClientID)

	clientName := FallbackClientName
	if clientFound {
		clientName = client.Name
	}

	address := in.Address
	if address == "" {
		if clientFound && client.Address != "" {
			address = client.Address
		} else {
			address = FallbackAddress
		}
	}

	items := make([]state.SaleItem, len(in.Items))
	copy(items, in.Items)

	sale := state.Sale{
		ID:            saleID,
		ClientID:      in.ClientID,
		ClientName:    clientName,
		Items:         items,
		Total:         in.Total,
		PaymentMethod: in.PaymentMethod,
		Date:          now,
		DeliveryID:    deliveryID,
	}

	delivery := state.Delivery{
		ID:           deliveryID,
		SaleID:       saleID,
		ClientID:     in.ClientID,
		ClientName:   clientName,
		Address:      address,
		Status:       state.DeliveryPending,
		ScheduledFor: now,
	}

	next := s

	next.Sales = make([]state.Sale, 0, len(s.Sales)+1)
	next.Sales = append(next.Sales, sale)
	next.Sales = append(next.Sales, s.Sales...)

	next.Deliveries = make([]state.Delivery, 0, len(s.Deliveries)+1)
	next.Deliveries = append(next.Deliveries, delivery)
	next.Deliveries = append(next.Deliveries, s.Deliveries...)

	next.Products = make([]state.Product, len(s.Products))
	copy(next.Products, s.Products)
	for i := range next.Products {
		for _, item := range items {
			if item.ProductID == next.Products[i].ID {
				// No floor here: stock may go negative when oversold.
				next.Products[i].Stock -= item.Quantity
				break
			}
		}
	}

	next.Clients = make([]state.Client, len(s.Clients))
	copy(next.Clients, s.Clients)
	for i := range next.Clients {
		if next.Clients[i].ID == in.ClientID {
			next.Clients[i].PurchaseCount++
			break
		}
	}

	return next, sale, delivery
}
