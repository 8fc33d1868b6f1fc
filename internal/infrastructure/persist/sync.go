package persist

import (
	"context"
	"sync/atomic"
	"time"
)

// Sync indicator timings: a pulse every syncInterval, each lasting
// pulseDuration. Purely informational; no data moves on this timer.
const (
	syncInterval  = 30 * time.Second
	pulseDuration = 2 * time.Second
)

// SyncIndicator exposes a coarse "syncing/ok/failed" signal for status
// endpoints. The periodic pulse reassures without doing any work; the
// real writes happen on the commit hook.
type SyncIndicator struct {
	syncing atomic.Bool
	failed  atomic.Bool
}

func NewSyncIndicator() *SyncIndicator {
	return &SyncIndicator{}
}

// Run pulses the indicator until the context is cancelled. Call in its
// own goroutine.
func (si *SyncIndicator) Run(ctx context.Context) {
	ticker := time.NewTicker(syncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			si.syncing.Store(true)
			select {
			case <-ctx.Done():
				si.syncing.Store(false)
				return
			case <-time.After(pulseDuration):
				si.syncing.Store(false)
			}
		}
	}
}

// Syncing reports whether a pulse is currently active.
func (si *SyncIndicator) Syncing() bool {
	return si.syncing.Load()
}

// Failed reports whether the most recent durable write failed.
func (si *SyncIndicator) Failed() bool {
	return si.failed.Load()
}

// MarkSuccess clears the failure flag.
func (si *SyncIndicator) MarkSuccess() {
	si.failed.Store(false)
}

// MarkFailure sets the failure flag until the next successful write.
func (si *SyncIndicator) MarkFailure() {
	si.failed.Store(true)
}
