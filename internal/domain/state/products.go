package state

import (
	"aquagest/internal/core/id"
	"aquagest/internal/core/types"
)

// DefaultMinStock is the reorder threshold applied when none is given.
const DefaultMinStock = 5

// DefaultIcon is the display token applied when none is given.
const DefaultIcon = "📦"

// ProductInput carries the fields a caller may set when creating a product.
type ProductInput struct {
	Name     string
	Category ProductCategory
	Price    types.Money
	Stock    int
	MinStock int
	Icon     string
}

// AddProduct creates a product with a fresh id and appends it to the list.
// Append order (unlike the prepend order of clients) is intentional and
// part of the contract. MinStock defaults to 5, category to WATER.
func (s State) AddProduct(in ProductInput) (State, Product) {
	p := Product{
		ID:       id.NewString(),
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
		MinStock: in.MinStock,
		Icon:     in.Icon,
	}
	if p.Category == "" {
		p.Category = CategoryWater
	}
	if p.MinStock == 0 {
		p.MinStock = DefaultMinStock
	}
	if p.Icon == "" {
		p.Icon = DefaultIcon
	}

	next := s
	next.Products = make([]Product, 0, len(s.Products)+1)
	next.Products = append(next.Products, s.Products...)
	next.Products = append(next.Products, p)
	return next, p
}

// UpdateProduct replaces the product with the matching id; silent no-op on
// a stale id.
func (s State) UpdateProduct(p Product) State {
	idx := -1
	for i := range s.Products {
		if s.Products[i].ID == p.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	next := s
	next.Products = make([]Product, len(s.Products))
	copy(next.Products, s.Products)
	next.Products[idx] = p
	return next
}

// RemoveProduct deletes the product by id; no-op if absent. Existing sale
// lines keep their denormalized name and price.
func (s State) RemoveProduct(productID string) State {
	idx := -1
	for i := range s.Products {
		if s.Products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	next := s
	next.Products = make([]Product, 0, len(s.Products)-1)
	next.Products = append(next.Products, s.Products[:idx]...)
	next.Products = append(next.Products, s.Products[idx+1:]...)
	return next
}

// AdjustStock applies a direct stock adjustment clamped at zero. This path
// can never drive stock negative; the sale commit path deliberately can.
func (s State) AdjustStock(productID string, delta int) State {
	idx := -1
	for i := range s.Products {
		if s.Products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	next := s
	next.Products = make([]Product, len(s.Products))
	copy(next.Products, s.Products)

	stock := next.Products[idx].Stock + delta
	if stock < 0 {
		stock = 0
	}
	next.Products[idx].Stock = stock
	return next
}
