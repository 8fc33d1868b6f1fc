// Package persist is the persistence boundary: the snapshot codec, the
// keyed durable slot stores and the gateway that ties snapshot commits to
// durable writes.
package persist

import (
	"encoding/json"

	"aquagest/internal/core/apperror"
	"aquagest/internal/domain/state"
)

// Slot keys. The two slots are independent: clearing one never touches
// the other.
const (
	SlotState = "state"
	SlotAuth  = "auth"
)

// EncodeSnapshot serializes a snapshot for a durable slot or a backup file.
func EncodeSnapshot(snap state.State) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return data, nil
}

// DecodeSnapshot parses a previously written snapshot. Older snapshots may
// predate some collections; missing ones come back as empty, never nil.
func DecodeSnapshot(data []byte) (state.State, error) {
	var snap state.State
	if err := json.Unmarshal(data, &snap); err != nil {
		return state.State{}, apperror.NewValidation("malformed snapshot document").WithCause(err)
	}
	return snap.Normalize(), nil
}

// restoreProbe distinguishes a field that is absent from one that is an
// empty array. Restore requires both clients and products to be present.
type restoreProbe struct {
	Clients  *[]json.RawMessage `json:"clients"`
	Products *[]json.RawMessage `json:"products"`
}

// DecodeRestore parses an externally supplied backup document. Unlike
// DecodeSnapshot it is all-or-nothing: documents missing the clients or
// products arrays are rejected without changing anything.
func DecodeRestore(data []byte) (state.State, error) {
	var probe restoreProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return state.State{}, apperror.NewRestoreRejected("backup file is not valid JSON")
	}
	if probe.Clients == nil || probe.Products == nil {
		return state.State{}, apperror.NewRestoreRejected("backup file is missing the clients or products collection")
	}

	var snap state.State
	if err := json.Unmarshal(data, &snap); err != nil {
		return state.State{}, apperror.NewRestoreRejected("backup file does not match the snapshot schema")
	}
	return snap.Normalize(), nil
}
