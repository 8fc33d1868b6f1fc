package state

// State is the complete snapshot of all entity collections at one instant.
// It is a value: operations return a new State and never touch the slices
// of the one they received beyond copying.
type State struct {
	Clients    []Client   `json:"clients"`
	Products   []Product  `json:"products"`
	Sales      []Sale     `json:"sales"`
	Deliveries []Delivery `json:"deliveries"`
	Deliverers []string   `json:"deliverers"`
	CurrentUser *User     `json:"currentUser"`
}

// Empty returns a snapshot with all collections present but empty.
func Empty() State {
	return State{
		Clients:    []Client{},
		Products:   []Product{},
		Sales:      []Sale{},
		Deliveries: []Delivery{},
		Deliverers: []string{},
	}
}

// Normalize replaces nil collections with empty ones. Older persisted
// snapshots may lack the deliverers list entirely.
func (s State) Normalize() State {
	if s.Clients == nil {
		s.Clients = []Client{}
	}
	if s.Products == nil {
		s.Products = []Product{}
	}
	if s.Sales == nil {
		s.Sales = []Sale{}
	}
	if s.Deliveries == nil {
		s.Deliveries = []Delivery{}
	}
	if s.Deliverers == nil {
		s.Deliverers = []string{}
	}
	return s
}

// FindClient returns the client with the given id.
func (s State) FindClient(id string) (Client, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// FindProduct returns the product with the given id.
func (s State) FindProduct(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindSale returns the sale with the given id.
func (s State) FindSale(id string) (Sale, bool) {
	for _, sl := range s.Sales {
		if sl.ID == id {
			return sl, true
		}
	}
	return Sale{}, false
}

// FindDelivery returns the delivery with the given id.
func (s State) FindDelivery(id string) (Delivery, bool) {
	for _, d := range s.Deliveries {
		if d.ID == id {
			return d, true
		}
	}
	return Delivery{}, false
}

// HasDeliverer reports whether the registry contains the exact name.
// No case folding or whitespace normalization is applied.
func (s State) HasDeliverer(name string) bool {
	for _, n := range s.Deliverers {
		if n == name {
			return true
		}
	}
	return false
}
