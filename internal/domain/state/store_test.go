package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ApplyCommitsAndNotifies(t *testing.T) {
	st := NewStore(Empty())

	var committed []State
	st.OnCommit(func(_ context.Context, snap State) {
		committed = append(committed, snap)
	})

	snap, err := st.Apply(context.Background(), func(s State) (State, error) {
		next, _ := s.AddClient(ClientInput{Name: "Maria"})
		return next, nil
	})

	require.NoError(t, err)
	require.Len(t, snap.Clients, 1)
	require.Len(t, committed, 1)
	assert.Equal(t, snap.Clients, committed[0].Clients)
	assert.Equal(t, snap.Clients, st.Snapshot().Clients)
}

func TestStore_ApplyErrorLeavesStateUntouched(t *testing.T) {
	st := NewStore(Empty())

	hookCalled := false
	st.OnCommit(func(context.Context, State) { hookCalled = true })

	boom := errors.New("boom")
	snap, err := st.Apply(context.Background(), func(s State) (State, error) {
		next, _ := s.AddClient(ClientInput{Name: "Maria"})
		return next, boom
	})

	require.ErrorIs(t, err, boom)
	assert.Empty(t, snap.Clients)
	assert.Empty(t, st.Snapshot().Clients)
	assert.False(t, hookCalled)
}

func TestStore_ConcurrentMutationsAllLand(t *testing.T) {
	st := NewStore(Empty())

	var commits int
	st.OnCommit(func(context.Context, State) { commits++ })

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Apply(context.Background(), func(s State) (State, error) {
				next, _ := s.AddClient(ClientInput{Name: "c"})
				return next, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, st.Snapshot().Clients, 20)
	assert.Equal(t, 20, commits)
}

func TestStore_ReplaceNormalizes(t *testing.T) {
	st := NewStore(Empty())

	snap := st.Replace(context.Background(), State{
		Clients:  []Client{{ID: "c1", Name: "Maria"}},
		Products: []Product{},
	})

	require.NotNil(t, snap.Sales)
	require.NotNil(t, snap.Deliveries)
	require.NotNil(t, snap.Deliverers)
	assert.Len(t, snap.Clients, 1)
}

func TestNormalize_FillsMissingCollections(t *testing.T) {
	s := State{}.Normalize()

	assert.NotNil(t, s.Clients)
	assert.NotNil(t, s.Products)
	assert.NotNil(t, s.Sales)
	assert.NotNil(t, s.Deliveries)
	assert.NotNil(t, s.Deliverers)
}
