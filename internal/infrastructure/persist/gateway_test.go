package persist

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquagest/internal/domain/state"
)

func TestGateway_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(NewMemoryStore(), nil)

	original := sampleState()
	gw.Save(ctx, original)

	loaded, found, err := gw.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, original.Clients, loaded.Clients)
	assert.Equal(t, original.Deliverers, loaded.Deliverers)
}

func TestGateway_LoadEmptySlot(t *testing.T) {
	gw := NewGateway(NewMemoryStore(), nil)

	_, found, err := gw.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, found)
}

func TestGateway_AttachPersistsEveryCommit(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(NewMemoryStore(), nil)

	st := state.NewStore(state.Empty())
	gw.Attach(st)

	_, err := st.Apply(ctx, func(s state.State) (state.State, error) {
		next, _ := s.AddClient(state.ClientInput{Name: "Maria"})
		return next, nil
	})
	require.NoError(t, err)

	loaded, found, err := gw.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, loaded.Clients, 1)
	assert.Equal(t, "Maria", loaded.Clients[0].Name)
}

func TestGateway_ExportFilename(t *testing.T) {
	gw := NewGateway(NewMemoryStore(), nil)

	name, data, err := gw.Export(context.Background(), sampleState())

	require.NoError(t, err)
	expected := fmt.Sprintf("aquagest-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	assert.Equal(t, expected, name)
	assert.NotEmpty(t, data)
}

func TestGateway_RestoreSwapsAndPersists(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(NewMemoryStore(), nil)

	st := state.NewStore(state.Seed())
	gw.Attach(st)

	backup := []byte(`{"clients":[{"id":"cX","name":"Restored","purchaseCount":1,"type":"COMMERCIAL","phone":"","address":""}],"products":[]}`)

	snap, err := gw.Restore(ctx, st, backup)
	require.NoError(t, err)
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, "Restored", snap.Clients[0].Name)
	assert.Empty(t, snap.Products)

	// The restored snapshot became current and durable.
	assert.Equal(t, snap.Clients, st.Snapshot().Clients)
	loaded, found, err := gw.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snap.Clients, loaded.Clients)
}

func TestGateway_RestoreRejectionLeavesStateIntact(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(NewMemoryStore(), nil)

	st := state.NewStore(state.Seed())
	gw.Attach(st)
	before := st.Snapshot()

	_, err := gw.Restore(ctx, st, []byte(`{"sales":[]}`))

	require.Error(t, err)
	assert.Equal(t, before.Clients, st.Snapshot().Clients)
	assert.Equal(t, before.Products, st.Snapshot().Products)
}

func TestGateway_AuthSlotIndependentOfState(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(NewMemoryStore(), nil)

	gw.Save(ctx, sampleState())
	require.NoError(t, gw.SaveAuth(ctx, []byte(`{"userId":"u1"}`)))

	// Clearing auth leaves the state slot alone.
	require.NoError(t, gw.ClearAuth(ctx))

	data, err := gw.LoadAuth(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)

	_, found, err := gw.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestGateway_SaveFailureSetsIndicator(t *testing.T) {
	ctx := context.Background()
	sync := NewSyncIndicator()
	gw := NewGateway(failingStore{}, sync)

	gw.Save(ctx, sampleState())
	assert.True(t, sync.Failed())

	// A later success clears the flag.
	ok := NewGateway(NewMemoryStore(), sync)
	ok.Save(ctx, sampleState())
	assert.False(t, sync.Failed())
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, nil }
func (failingStore) Set(context.Context, string, []byte) error {
	return fmt.Errorf("disk full")
}
func (failingStore) Delete(context.Context, string) error { return nil }
