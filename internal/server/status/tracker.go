// Package status keeps a per-owner summary of sync activity: the last pull
// checkpoint, the last push time and how many records and conflicts they
// carried. It is advisory; callers log tracker failures and carry on.
package status

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/todosync/internal/server/models"
)

// Tracker records and reports sync activity per owner. Implementations are
// safe for concurrent use.
type Tracker interface {
	RecordPull(ctx context.Context, ownerID string, checkpoint int64, records int) error
	RecordPush(ctx context.Context, ownerID string, at int64, records, conflicts int) error
	// Get returns the owner's status. An owner that never synced gets a
	// zero status, not an error.
	Get(ctx context.Context, ownerID string) (models.SyncStatus, error)
	Close() error
}

// MemoryTracker keeps status in process memory. It is used when no Redis is
// configured and in tests.
type MemoryTracker struct {
	mu      sync.Mutex
	entries map[string]models.SyncStatus
}

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{entries: make(map[string]models.SyncStatus)}
}

func (m *MemoryTracker) RecordPull(_ context.Context, ownerID string, checkpoint int64, records int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.entries[ownerID]
	s.OwnerID = ownerID
	s.LastPulledAt = checkpoint
	s.LastPullRecords = int64(records)
	m.entries[ownerID] = s
	return nil
}

func (m *MemoryTracker) RecordPush(_ context.Context, ownerID string, at int64, records, conflicts int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.entries[ownerID]
	s.OwnerID = ownerID
	s.LastPushedAt = at
	s.LastPushRecords = int64(records)
	s.LastPushConflicts = int64(conflicts)
	m.entries[ownerID] = s
	return nil
}

func (m *MemoryTracker) Get(_ context.Context, ownerID string) (models.SyncStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.entries[ownerID]
	if !ok {
		return models.SyncStatus{OwnerID: ownerID}, nil
	}
	return s, nil
}

func (m *MemoryTracker) Close() error { return nil }
