package state

import (
	"aquagest/internal/core/id"
)

// ClientInput carries the fields a caller may set when creating a client.
// Unset fields default silently: empty strings, RESIDENTIAL, zero purchases.
type ClientInput struct {
	Name    string
	Phone   string
	Address string
	Type    ClientType
}

// AddClient creates a client with a fresh id and prepends it to the list.
// Most-recent-first ordering is part of the contract. Never fails.
func (s State) AddClient(in ClientInput) (State, Client) {
	c := Client{
		ID:      id.NewString(),
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		Type:    in.Type,
	}
	if c.Type == "" {
		c.Type = ClientResidential
	}

	next := s
	next.Clients = make([]Client, 0, len(s.Clients)+1)
	next.Clients = append(next.Clients, c)
	next.Clients = append(next.Clients, s.Clients...)
	return next, c
}

// UpdateClient replaces the client with the matching id. A stale id is a
// silent no-op so retried UI actions stay idempotent-safe.
func (s State) UpdateClient(c Client) State {
	idx := -1
	for i := range s.Clients {
		if s.Clients[i].ID == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	next := s
	next.Clients = make([]Client, len(s.Clients))
	copy(next.Clients, s.Clients)
	next.Clients[idx] = c
	return next
}

// RemoveClient deletes the client by id; no-op if absent. Sales and
// deliveries keep their denormalized client names.
func (s State) RemoveClient(clientID string) State {
	idx := -1
	for i := range s.Clients {
		if s.Clients[i].ID == clientID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	next := s
	next.Clients = make([]Client, 0, len(s.Clients)-1)
	next.Clients = append(next.Clients, s.Clients[:idx]...)
	next.Clients = append(next.Clients, s.Clients[idx+1:]...)
	return next
}
