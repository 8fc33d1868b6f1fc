package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquagest/internal/core/types"
	"aquagest/internal/domain/delivery"
	"aquagest/internal/domain/state"
)

func fixture() state.State {
	s := state.Empty()
	s.Clients = []state.Client{
		{ID: "c1", Name: "Maria Silva", Address: "Rua 108, 400", PurchaseCount: 3},
		{ID: "c2", Name: "Padaria Sol", Address: "", PurchaseCount: 10},
	}
	s.Products = []state.Product{
		{ID: "p1", Name: "Galão 20L", Price: types.MustMoney("14.99"), Stock: 50},
		{ID: "p2", Name: "Gás P13", Price: types.MustMoney("115.00"), Stock: 2},
	}
	return s
}

func TestCommit_CreatesSaleAndPendingDelivery(t *testing.T) {
	s := fixture()

	next, sale, delivery := Commit(s, Input{
		ClientID: "c1",
		Items: []state.SaleItem{
			{ProductID: "p1", Name: "Galão 20L", Quantity: 2, Price: types.MustMoney("14.99")},
		},
		Total:         types.MustMoney("29.98"),
		PaymentMethod: state.PaymentPix,
	})

	require.NotEmpty(t, sale.ID)
	require.NotEmpty(t, delivery.ID)
	assert.NotEqual(t, sale.ID, delivery.ID)

	assert.Equal(t, "Maria Silva", sale.ClientName)
	assert.Equal(t, delivery.ID, sale.DeliveryID)
	assert.Equal(t, sale.ID, delivery.SaleID)
	assert.Equal(t, state.DeliveryPending, delivery.Status)
	assert.Equal(t, "Maria Silva", delivery.ClientName)
	assert.Equal(t, "Rua 108, 400", delivery.Address)
	assert.False(t, sale.Date.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), sale.Date, time.Minute)

	// Prepended, newest first.
	require.Len(t, next.Sales, 1)
	require.Len(t, next.Deliveries, 1)

	// Stock decremented, purchase count incremented.
	p, _ := next.FindProduct("p1")
	assert.Equal(t, 48, p.Stock)
	c, _ := next.FindClient("c1")
	assert.Equal(t, 4, c.PurchaseCount)

	// Prior snapshot untouched.
	assert.Empty(t, s.Sales)
	prior, _ := s.FindProduct("p1")
	assert.Equal(t, 50, prior.Stock)
}

func TestCommit_PrependsNewestFirst(t *testing.T) {
	s := fixture()

	s, firstSale, _ := Commit(s, Input{
		ClientID:      "c1",
		Items:         []state.SaleItem{{ProductID: "p1", Name: "Galão", Quantity: 1}},
		PaymentMethod: state.PaymentCash,
	})
	s, secondSale, _ := Commit(s, Input{
		ClientID:      "c2",
		Items:         []state.SaleItem{{ProductID: "p1", Name: "Galão", Quantity: 1}},
		PaymentMethod: state.PaymentCash,
	})

	require.Len(t, s.Sales, 2)
	assert.Equal(t, secondSale.ID, s.Sales[0].ID)
	assert.Equal(t, firstSale.ID, s.Sales[1].ID)
}

func TestCommit_ExplicitAddressWins(t *testing.T) {
	s := fixture()

	_, _, delivery := Commit(s, Input{
		ClientID:      "c1",
		Items:         []state.SaleItem{{ProductID: "p1", Name: "Galão", Quantity: 1}},
		PaymentMethod: state.PaymentCash,
		Address:       "Entrega no trabalho, Av. Central 99",
	})

	assert.Equal(t, "Entrega no trabalho, Av. Central 99", delivery.Address)
}

func TestCommit_AddressFallsBackToDefault(t *testing.T) {
	s := fixture()

	// c2 has no stored address.
	_, _, delivery := Commit(s, Input{
		ClientID:      "c2",
		Items:         []state.SaleItem{{ProductID: "p1", Name: "Galão", Quantity: 1}},
		PaymentMethod: state.PaymentCash,
	})

	assert.Equal(t, FallbackAddress, delivery.Address)
}

func TestCommit_UnknownClientUsesFallbackName(t *testing.T) {
	s := fixture()

	next, sale, delivery := Commit(s, Input{
		ClientID:      "ghost",
		Items:         []state.SaleItem{{ProductID: "p1", Name: "Galão", Quantity: 1}},
		PaymentMethod: state.PaymentCash,
	})

	assert.Equal(t, FallbackClientName, sale.ClientName)
	assert.Equal(t, FallbackClientName, delivery.ClientName)
	assert.Equal(t, FallbackAddress, delivery.Address)

	// Sale still recorded; no client counter moved.
	require.Len(t, next.Sales, 1)
	for _, c := range next.Clients {
		orig, _ := s.FindClient(c.ID)
		assert.Equal(t, orig.PurchaseCount, c.PurchaseCount)
	}
}

func TestCommit_OversellDrivesStockNegative(t *testing.T) {
	s := fixture()

	next, _, _ := Commit(s, Input{
		ClientID:      "c1",
		Items:         []state.SaleItem{{ProductID: "p2", Name: "Gás P13", Quantity: 5}},
		PaymentMethod: state.PaymentDebt,
	})

	p, _ := next.FindProduct("p2")
	assert.Equal(t, -3, p.Stock)
}

func TestCommit_DuplicateLinesDecrementOncePerProduct(t *testing.T) {
	s := fixture()

	next, _, _ := Commit(s, Input{
		ClientID: "c1",
		Items: []state.SaleItem{
			{ProductID: "p1", Name: "Galão", Quantity: 2},
			{ProductID: "p1", Name: "Galão", Quantity: 3},
		},
		PaymentMethod: state.PaymentCash,
	})

	// Only the first matching line per product moves stock.
	p, _ := next.FindProduct("p1")
	assert.Equal(t, 48, p.Stock)
}

func TestCommit_UnknownProductLineIsIgnoredForStock(t *testing.T) {
	s := fixture()

	next, sale, _ := Commit(s, Input{
		ClientID:      "c1",
		Items:         []state.SaleItem{{ProductID: "gone", Name: "Descontinuado", Quantity: 1}},
		PaymentMethod: state.PaymentCash,
	})

	require.Len(t, sale.Items, 1)
	for i := range next.Products {
		assert.Equal(t, s.Products[i].Stock, next.Products[i].Stock)
	}
}

func TestCommit_EmptyItemsIsNoOp(t *testing.T) {
	s := fixture()

	next, sale, delivery := Commit(s, Input{
		ClientID:      "c1",
		PaymentMethod: state.PaymentCash,
	})

	assert.Empty(t, sale.ID)
	assert.Empty(t, delivery.ID)
	assert.Empty(t, next.Sales)
	assert.Empty(t, next.Deliveries)
	c, _ := next.FindClient("c1")
	assert.Equal(t, 3, c.PurchaseCount)
}

func TestCommit_DenormalizedNamesSurviveSourceChanges(t *testing.T) {
	s := fixture()

	s, sale, job := Commit(s, Input{
		ClientID: "c1",
		Items: []state.SaleItem{
			{ProductID: "p1", Name: "Galão 20L", Quantity: 2, Price: types.MustMoney("14.99")},
		},
		Total:         types.MustMoney("29.98"),
		PaymentMethod: state.PaymentPix,
	})

	next, err := delivery.SetStatus(s, delivery.Transition{
		DeliveryID: job.ID,
		Status:     state.DeliveryInRoute,
		Deliverer:  "Carlos",
	})
	require.NoError(t, err)
	s = next

	// Rename and remove every source the records snapshotted from.
	renamed, _ := s.FindClient("c1")
	renamed.Name = "Maria Souza"
	s = s.UpdateClient(renamed)
	s = s.RemoveClient("c1")
	s = s.RemoveDeliverer("Carlos")
	s = s.RemoveProduct("p1")

	got := s.Sales[0]
	require.Equal(t, sale.ID, got.ID)
	assert.Equal(t, "Maria Silva", got.ClientName)
	assert.Equal(t, "Galão 20L", got.Items[0].Name)
	assert.True(t, got.Items[0].Price.Equal(types.MustMoney("14.99")))

	assert.Equal(t, "Maria Silva", s.Deliveries[0].ClientName)
	assert.Equal(t, "Carlos", s.Deliveries[0].DelivererName)
}

func TestCommit_TotalStoredAsGiven(t *testing.T) {
	s := fixture()

	// Total deliberately disagrees with the line items.
	_, sale, _ := Commit(s, Input{
		ClientID:      "c1",
		Items:         []state.SaleItem{{ProductID: "p1", Name: "Galão", Quantity: 2, Price: types.MustMoney("14.99")}},
		Total:         types.MustMoney("10.00"),
		PaymentMethod: state.PaymentCash,
	})

	assert.True(t, sale.Total.Equal(types.MustMoney("10.00")))
}
