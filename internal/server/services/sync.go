// Package services implements the sync engine: the change-log query, the pull
// assembler and the push coordinator, plus the status lookup built on them.
package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/todosync/internal/logging"
	"github.com/dmitrijs2005/todosync/internal/server/archive"
	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/dmitrijs2005/todosync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todosync/internal/server/status"
	"github.com/google/uuid"
)

// SyncService reconciles client replicas with the server store.
type SyncService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tracker     status.Tracker
	archiver    archive.Archiver
	logger      logging.Logger

	now   func() time.Time
	newID func() string
}

// NewSyncService wires the engine. A nil tracker or archiver falls back to
// an in-memory tracker and no archiving.
func NewSyncService(db *sql.DB, repomanager repomanager.RepositoryManager, tracker status.Tracker,
	archiver archive.Archiver, logger logging.Logger) *SyncService {
	if tracker == nil {
		tracker = status.NewMemoryTracker()
	}
	if archiver == nil {
		archiver = archive.Nop{}
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &SyncService{
		db:          db,
		repomanager: repomanager,
		tracker:     tracker,
		archiver:    archiver,
		logger:      logger.With("module", "sync"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Status reports the owner's last sync activity.
func (s *SyncService) Status(ctx context.Context, ownerID string) (models.SyncStatus, error) {
	if ownerID == "" {
		return models.SyncStatus{}, errNoOwner
	}
	return s.tracker.Get(ctx, ownerID)
}
