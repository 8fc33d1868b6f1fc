package state

// AddDeliverer appends a name to the registry. Empty names and exact
// duplicates are silent no-ops. Near-duplicates (case or whitespace
// variants) are accepted as distinct entries on purpose.
func (s State) AddDeliverer(name string) State {
	if name == "" || s.HasDeliverer(name) {
		return s
	}

	next := s
	next.Deliverers = make([]string, 0, len(s.Deliverers)+1)
	next.Deliverers = append(next.Deliverers, s.Deliverers...)
	next.Deliverers = append(next.Deliverers, name)
	return next
}

// RemoveDeliverer removes the exact name if present. Deliveries that
// denormalized the name keep it; that is a snapshot, not a dangling
// reference.
func (s State) RemoveDeliverer(name string) State {
	idx := -1
	for i, n := range s.Deliverers {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	next := s
	next.Deliverers = make([]string, 0, len(s.Deliverers)-1)
	next.Deliverers = append(next.Deliverers, s.Deliverers[:idx]...)
	next.Deliverers = append(next.Deliverers, s.Deliverers[idx+1:]...)
	return next
}
