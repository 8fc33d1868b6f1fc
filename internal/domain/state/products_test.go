package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquagest/internal/core/types"
)

func TestAddProduct_AppendsInOrder(t *testing.T) {
	s := Empty()

	s, first := s.AddProduct(ProductInput{Name: "Galão 20L"})
	s, second := s.AddProduct(ProductInput{Name: "Gás P13"})

	require.Len(t, s.Products, 2)
	assert.Equal(t, first.ID, s.Products[0].ID)
	assert.Equal(t, second.ID, s.Products[1].ID)
}

func TestAddProduct_Defaults(t *testing.T) {
	s := Empty()

	_, created := s.AddProduct(ProductInput{Name: "Galão 20L"})

	assert.Equal(t, CategoryWater, created.Category)
	assert.Equal(t, DefaultMinStock, created.MinStock)
	assert.Equal(t, DefaultIcon, created.Icon)
	assert.Equal(t, 0, created.Stock)
}

func TestAddProduct_ExplicitValuesKept(t *testing.T) {
	s := Empty()

	_, created := s.AddProduct(ProductInput{
		Name:     "Gás P13",
		Category: CategoryGas,
		Price:    types.MustMoney("115.00"),
		Stock:    15,
		MinStock: 3,
		Icon:     "🔥",
	})

	assert.Equal(t, CategoryGas, created.Category)
	assert.Equal(t, 3, created.MinStock)
	assert.Equal(t, "🔥", created.Icon)
	assert.True(t, created.Price.Equal(types.MustMoney("115.00")))
}

func TestAdjustStock_ClampsAtZero(t *testing.T) {
	s := Empty()
	s, p := s.AddProduct(ProductInput{Name: "Galão", Stock: 10})

	next := s.AdjustStock(p.ID, -25)
	got, _ := next.FindProduct(p.ID)
	assert.Equal(t, 0, got.Stock)

	next = next.AdjustStock(p.ID, 7)
	got, _ = next.FindProduct(p.ID)
	assert.Equal(t, 7, got.Stock)
}

func TestAdjustStock_UnknownIDIsNoOp(t *testing.T) {
	s := Empty()
	s, _ = s.AddProduct(ProductInput{Name: "Galão", Stock: 10})

	next := s.AdjustStock("missing", 5)
	assert.Equal(t, s.Products, next.Products)
}

func TestLowStock(t *testing.T) {
	p := Product{Stock: 5, MinStock: 5}
	assert.True(t, p.LowStock())

	p.Stock = 6
	assert.False(t, p.LowStock())
}

func TestRemoveProduct(t *testing.T) {
	s := Empty()
	s, a := s.AddProduct(ProductInput{Name: "A"})
	s, b := s.AddProduct(ProductInput{Name: "B"})

	next := s.RemoveProduct(a.ID)

	require.Len(t, next.Products, 1)
	assert.Equal(t, b.ID, next.Products[0].ID)
	require.Len(t, s.Products, 2, "prior snapshot untouched")
}
