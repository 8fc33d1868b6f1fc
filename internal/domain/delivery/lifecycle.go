// Package delivery implements the delivery job lifecycle: the status state
// machine and the deliverer assignment rules that go with it.
package delivery

import (
	"time"

	"aquagest/internal/core/apperror"
	"aquagest/internal/domain/state"
)

// Transition carries a requested status change for one delivery.
type Transition struct {
	DeliveryID string
	Status     state.DeliveryStatus
	// Deliverer is required when moving to IN_ROUTE and ignored otherwise.
	Deliverer string
}

// allowed enumerates the legal status edges. Terminal states have no
// outgoing edges; a transition to the current status is not an edge either.
var allowed = map[state.DeliveryStatus][]state.DeliveryStatus{
	state.DeliveryPending: {state.DeliveryInRoute, state.DeliveryCancelled},
	state.DeliveryInRoute: {state.DeliveryDelivered, state.DeliveryCancelled},
}

func edgeAllowed(from, to state.DeliveryStatus) bool {
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SetStatus applies one lifecycle transition as a snapshot change.
//
// PENDING may move to IN_ROUTE or CANCELLED; IN_ROUTE may move to
// DELIVERED or CANCELLED. DELIVERED and CANCELLED are terminal. Moving to
// IN_ROUTE requires a non-empty deliverer name, which is stamped on the
// delivery and registered in the deliverer list if new. DELIVERED stamps
// the completion time.
func SetStatus(s state.State, t Transition) (state.State, error) {
	if !t.Status.Valid() {
		return s, apperror.NewValidation("unknown delivery status").WithDetail("status", string(t.Status))
	}

	idx := -1
	for i := range s.Deliveries {
		if s.Deliveries[i].ID == t.DeliveryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, apperror.NewNotFound("delivery", t.DeliveryID)
	}

	current := s.Deliveries[idx]
	if !edgeAllowed(current.Status, t.Status) {
		return s, apperror.NewInvalidTransition(t.DeliveryID, string(current.Status), string(t.Status))
	}

	next := s
	next.Deliveries = make([]state.Delivery, len(s.Deliveries))
	copy(next.Deliveries, s.Deliveries)

	d := &next.Deliveries[idx]
	d.Status = t.Status

	switch t.Status {
	case state.DeliveryInRoute:
		if t.Deliverer == "" {
			return s, apperror.NewDelivererRequired(t.DeliveryID)
		}
		d.DelivererName = t.Deliverer
		next = next.AddDeliverer(t.Deliverer)
	case state.DeliveryDelivered:
		completed := time.Now().UTC()
		d.CompletedAt = &completed
	}

	return next, nil
}
