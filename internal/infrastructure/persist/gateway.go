package persist

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"aquagest/internal/domain/state"
	"aquagest/pkg/logger"
)

var tracer = otel.Tracer("aquagest/persist")

// Gateway sits between the in-memory snapshot store and a SlotStore. It
// persists every committed snapshot, loads the last one on startup, and
// implements backup export and restore.
//
// Save failures are logged and surfaced on the sync indicator but never
// fail the mutation that triggered them: the in-memory state is the
// source of truth while the process lives.
type Gateway struct {
	slots SlotStore
	sync  *SyncIndicator
}

// NewGateway wires a gateway over the given slot store.
func NewGateway(slots SlotStore, sync *SyncIndicator) *Gateway {
	return &Gateway{slots: slots, sync: sync}
}

// Attach registers the gateway as the store's commit hook.
func (g *Gateway) Attach(st *state.Store) {
	st.OnCommit(g.Save)
}

// Save writes the snapshot to the state slot. Called on every commit.
func (g *Gateway) Save(ctx context.Context, snap state.State) {
	ctx, span := tracer.Start(ctx, "persist.Save", trace.WithAttributes(
		attribute.Int("snapshot.sales", len(snap.Sales)),
		attribute.Int("snapshot.deliveries", len(snap.Deliveries)),
	))
	defer span.End()

	data, err := EncodeSnapshot(snap)
	if err != nil {
		span.RecordError(err)
		logger.Error(ctx, "encode snapshot failed", "error", err)
		if g.sync != nil {
			g.sync.MarkFailure()
		}
		return
	}

	if err := g.slots.Set(ctx, SlotState, data); err != nil {
		span.RecordError(err)
		logger.Error(ctx, "persist snapshot failed", "error", err)
		if g.sync != nil {
			g.sync.MarkFailure()
		}
		return
	}

	if g.sync != nil {
		g.sync.MarkSuccess()
	}
}

// Load reads the last saved snapshot. The second return is false when the
// slot is empty (first run); the caller then seeds the store.
func (g *Gateway) Load(ctx context.Context) (state.State, bool, error) {
	ctx, span := tracer.Start(ctx, "persist.Load")
	defer span.End()

	data, err := g.slots.Get(ctx, SlotState)
	if err != nil {
		span.RecordError(err)
		return state.State{}, false, err
	}
	if data == nil {
		return state.State{}, false, nil
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		span.RecordError(err)
		return state.State{}, false, err
	}
	return snap, true, nil
}

// Export serializes the current snapshot as a downloadable backup and
// names the file with the current date.
func (g *Gateway) Export(ctx context.Context, snap state.State) (string, []byte, error) {
	_, span := tracer.Start(ctx, "persist.Export")
	defer span.End()

	data, err := EncodeSnapshot(snap)
	if err != nil {
		span.RecordError(err)
		return "", nil, err
	}
	name := fmt.Sprintf("aquagest-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	return name, data, nil
}

// Restore validates an uploaded backup and swaps it in as the current
// snapshot. Invalid documents are rejected without changing anything; the
// new snapshot is persisted immediately via the commit hook.
func (g *Gateway) Restore(ctx context.Context, st *state.Store, data []byte) (state.State, error) {
	ctx, span := tracer.Start(ctx, "persist.Restore", trace.WithAttributes(
		attribute.Int("backup.bytes", len(data)),
	))
	defer span.End()

	snap, err := DecodeRestore(data)
	if err != nil {
		span.RecordError(err)
		return state.State{}, err
	}
	return st.Replace(ctx, snap), nil
}

// ClearAuth removes the auth slot, logging the session out durably. The
// state slot is untouched.
func (g *Gateway) ClearAuth(ctx context.Context) error {
	return g.slots.Delete(ctx, SlotAuth)
}

// SaveAuth writes the auth slot.
func (g *Gateway) SaveAuth(ctx context.Context, data []byte) error {
	return g.slots.Set(ctx, SlotAuth, data)
}

// LoadAuth reads the auth slot; (nil, nil) when empty.
func (g *Gateway) LoadAuth(ctx context.Context) ([]byte, error) {
	return g.slots.Get(ctx, SlotAuth)
}
