package persist

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"aquagest/internal/core/apperror"
)

// SlotStore is a keyed durable byte store. Each key addresses one slot
// holding the latest full document; every write replaces the previous
// content wholesale.
type SlotStore interface {
	// Get returns the slot content, or (nil, nil) when the slot is empty.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the slot content.
	Set(ctx context.Context, key string, data []byte) error
	// Delete clears the slot. Clearing an empty slot is not an error.
	Delete(ctx context.Context, key string) error
}

// FileStore keeps each slot as one file under a directory. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// truncated slot.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperror.NewStorage(err)
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

func (fs *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(fs.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewStorage(err)
	}
	return data, nil
}

func (fs *FileStore) Set(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(fs.dir, key+".*.tmp")
	if err != nil {
		return apperror.NewStorage(err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperror.NewStorage(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperror.NewStorage(err)
	}
	if err := os.Rename(tmpName, fs.path(key)); err != nil {
		os.Remove(tmpName)
		return apperror.NewStorage(err)
	}
	return nil
}

func (fs *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(fs.path(key))
	if err != nil && !os.IsNotExist(err) {
		return apperror.NewStorage(err)
	}
	return nil
}

// MemoryStore is a SlotStore for tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (ms *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	data, ok := ms.slots[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (ms *MemoryStore) Set(_ context.Context, key string, data []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	ms.slots[key] = stored
	return nil
}

func (ms *MemoryStore) Delete(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.slots, key)
	return nil
}
