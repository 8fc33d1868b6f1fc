package state

import (
	"aquagest/internal/core/types"
)

// Seed returns the starter snapshot used when no prior snapshot exists:
// the fixed starter catalog and client list, no sales, deliveries or
// deliverers, and an admin session user.
func Seed() State {
	return State{
		Clients: []Client{
			{ID: "c1", Name: "Maria Silva", Phone: "85992592012", Address: "Rua 108, 400 - Conj. Esperança", Type: ClientResidential, PurchaseCount: 15},
			{ID: "c2", Name: "Padaria Sol", Phone: "85988776655", Address: "Rua das Flores, 10", Type: ClientCommercial, PurchaseCount: 42},
			{ID: "c3", Name: "João Pereira", Phone: "85977665544", Address: "Av. Contorno, 500", Type: ClientResidential, PurchaseCount: 2},
		},
		Products: []Product{
			// Águas minerais
			{ID: "p1", Name: "Naturagua (mineral)", Category: CategoryWater, Price: types.MustMoney("14.99"), Stock: 50, MinStock: 10, Icon: "💧"},
			{ID: "p2", Name: "Límpida (mineral)", Category: CategoryWater, Price: types.MustMoney("13.99"), Stock: 40, MinStock: 10, Icon: "💧"},
			{ID: "p3", Name: "Neblina (mineral)", Category: CategoryWater, Price: types.MustMoney("13.99"), Stock: 35, MinStock: 8, Icon: "💧"},
			{ID: "p4", Name: "Serra Grande (mineral)", Category: CategoryWater, Price: types.MustMoney("13.99"), Stock: 30, MinStock: 8, Icon: "💧"},
			// Águas adicionadas de sais
			{ID: "p5", Name: "Realfina (adicionada)", Category: CategoryWater, Price: types.MustMoney("5.99"), Stock: 100, MinStock: 20, Icon: "🧂"},
			{ID: "p6", Name: "Plurágua (adicionada)", Category: CategoryWater, Price: types.MustMoney("5.99"), Stock: 80, MinStock: 15, Icon: "🧂"},
			{ID: "p7", Name: "Ouro Azul (adicionada)", Category: CategoryWater, Price: types.MustMoney("7.99"), Stock: 60, MinStock: 12, Icon: "🧂"},
			// Outros e gás
			{ID: "p8", Name: "Caderneta (Taxa)", Category: CategoryOther, Price: types.MustMoney("0.50"), Stock: 999, MinStock: 0, Icon: "📔"},
			{ID: "p9", Name: "Gás P13", Category: CategoryGas, Price: types.MustMoney("115.00"), Stock: 15, MinStock: 5, Icon: "🔥"},
		},
		Sales:      []Sale{},
		Deliveries: []Delivery{},
		Deliverers: []string{},
		CurrentUser: &User{
			Name: "Admin H Água",
			Role: RoleAdmin,
		},
	}
}
