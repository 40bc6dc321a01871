package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todosync/internal/common"
	"github.com/dmitrijs2005/todosync/internal/dbx"
	"github.com/dmitrijs2005/todosync/internal/logging"
	"github.com/dmitrijs2005/todosync/internal/server/archive"
	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/dmitrijs2005/todosync/internal/server/reconcile"
	"github.com/dmitrijs2005/todosync/internal/server/repositories/records"
	"github.com/dmitrijs2005/todosync/internal/server/schema"
)

var errNoOwner = fmt.Errorf("%w: missing owner", common.ErrMalformedRequest)

// batch is one collection's validated share of a push, in storage schema.
type batch struct {
	entity  *schema.Entity
	created []*models.Record
	updated []*models.Record
	deleted []string
}

func (b batch) len() int {
	return len(b.created) + len(b.updated) + len(b.deleted)
}

// tombstone is a record soft-deleted by the current push.
type tombstone struct {
	entity *schema.Entity
	id     string
}

// Push applies a client's changes in one transaction and returns the ledger
// of every resolution made. Collections are applied in schema.Entities order;
// within a collection created, then updated, then deleted.
//
// A malformed request fails with common.ErrMalformedRequest before the store
// is touched. Any store error rolls the whole push back.
//
// References to records the push soft-deletes are cleared after every
// collection has been applied, inside the same transaction. A referrer edited
// by the same push is therefore resolved against its stored version first.
//
// Deletes carry no client timestamp, so they are resolved with the server
// clock read once at the start of the push. Ordering a delete against a
// concurrent edit therefore follows server processing time, not the time the
// client deleted.
func (s *SyncService) Push(ctx context.Context, ownerID string, req *models.PushRequest) (*models.PushResult, error) {
	batches, err := validatePush(ownerID, req)
	if err != nil {
		return nil, err
	}

	started := s.now()
	deleteTS := started.UnixMilli()
	pushID := s.newID()
	log := s.logger.With("owner", ownerID, "push", pushID)

	var ledger *reconcile.Ledger
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ledger = reconcile.NewLedger()
		var gone []tombstone
		for _, b := range batches {
			ids, err := s.applyBatch(ctx, tx, ownerID, b, deleteTS, ledger, log)
			if err != nil {
				return err
			}
			for _, id := range ids {
				gone = append(gone, tombstone{entity: b.entity, id: id})
			}
		}
		return s.clearReferences(ctx, tx, ownerID, gone, deleteTS, log)
	})
	if err != nil {
		log.Error(ctx, "push rolled back", "error", err)
		return nil, err
	}

	total := 0
	for _, b := range batches {
		total += b.len()
	}
	log.Info(ctx, "push committed", "records", total, "conflicts", ledger.Len(), "local_wins", ledger.LocalWins())
	if req.LastPulledAt != nil {
		log.Debug(ctx, "push base checkpoint", "last_pulled_at", *req.LastPulledAt)
	}

	s.afterPush(ctx, log, ownerID, pushID, started.UnixMilli(), total, ledger)

	return &models.PushResult{OK: true, PushID: pushID, Conflicts: ledger.Entries()}, nil
}

func (s *SyncService) afterPush(ctx context.Context, log logging.Logger, ownerID, pushID string, at int64, total int, ledger *reconcile.Ledger) {
	if err := s.tracker.RecordPush(ctx, ownerID, at, total, ledger.Len()); err != nil {
		log.Warn(ctx, "status tracker failed", "error", err)
	}
	if ledger.Len() == 0 {
		return
	}
	key, err := s.archiver.Archive(ctx, archive.Document{
		PushID:    pushID,
		OwnerID:   ownerID,
		PushedAt:  time.UnixMilli(at).UTC(),
		Conflicts: ledger.Entries(),
	})
	if err != nil {
		log.Warn(ctx, "ledger archive failed", "error", err)
		return
	}
	if key != "" {
		log.Debug(ctx, "ledger archived", "key", key)
	}
}

// applyBatch applies one collection and returns the ids it soft-deleted.
func (s *SyncService) applyBatch(ctx context.Context, tx dbx.DBTX, ownerID string, b batch, deleteTS int64,
	ledger *reconcile.Ledger, log logging.Logger) ([]string, error) {
	repo := s.repomanager.Records(tx, b.entity)

	for _, rec := range b.created {
		if err := s.applyUpsert(ctx, repo, b.entity, ownerID, reconcile.OpCreate, rec, ledger, log); err != nil {
			return nil, err
		}
	}
	for _, rec := range b.updated {
		if err := s.applyUpsert(ctx, repo, b.entity, ownerID, reconcile.OpUpdate, rec, ledger, log); err != nil {
			return nil, err
		}
	}
	var gone []string
	for _, id := range b.deleted {
		deleted, err := s.applyDelete(ctx, repo, b.entity, ownerID, id, deleteTS, ledger, log)
		if err != nil {
			return nil, err
		}
		if deleted {
			gone = append(gone, id)
		}
	}
	return gone, nil
}

// clearReferences nulls every column that points at a tombstone. Touched rows
// get modified_ms = max(modified_ms+1, deleteTS) so the change reaches the
// next pull.
func (s *SyncService) clearReferences(ctx context.Context, tx dbx.DBTX, ownerID string, gone []tombstone,
	deleteTS int64, log logging.Logger) error {
	for _, t := range gone {
		for _, br := range schema.Referencing(t.entity.Collection) {
			n, err := s.repomanager.Records(tx, br.Entity).ClearReference(ctx, ownerID, br.Column, t.id, deleteTS)
			if err != nil {
				return err
			}
			if n > 0 {
				log.Debug(ctx, "references cleared", "collection", br.Entity.Collection, "column", br.Column, "target", t.id, "rows", n)
			}
		}
	}
	return nil
}

// lookup reports whether the owner has a row with id. Not found is not an
// error.
func lookup(ctx context.Context, repo records.Repository, ownerID, id string) (*models.Record, bool, error) {
	existing, err := repo.Get(ctx, ownerID, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return existing, true, nil
}

func (s *SyncService) applyUpsert(ctx context.Context, repo records.Repository, e *schema.Entity, ownerID string,
	op reconcile.Op, rec *models.Record, ledger *reconcile.Ledger, log logging.Logger) error {
	rec.OwnerID = ownerID

	existing, exists, err := lookup(ctx, repo, ownerID, rec.ID)
	if err != nil {
		return err
	}

	var winner models.Winner
	if exists {
		res := reconcile.Resolve(rec.UpdatedAt, existing.UpdatedAt)
		ledger.Record(e.Collection, rec.ID, rec.UpdatedAt, existing.UpdatedAt, res)
		winner = res.Winner
	}

	action := reconcile.Decide(op, exists, winner)
	log.Debug(ctx, "record decided", "collection", e.Collection, "id", rec.ID, "op", op.String(), "action", action.String())

	switch action {
	case reconcile.ActionInsert:
		return repo.Insert(ctx, rec)
	case reconcile.ActionUpdate:
		if err := repo.Update(ctx, rec); err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
	}
	return nil
}

// applyDelete reports whether the record was soft-deleted.
func (s *SyncService) applyDelete(ctx context.Context, repo records.Repository, e *schema.Entity, ownerID, id string,
	deleteTS int64, ledger *reconcile.Ledger, log logging.Logger) (bool, error) {
	existing, exists, err := lookup(ctx, repo, ownerID, id)
	if err != nil {
		return false, err
	}

	var winner models.Winner
	if exists {
		res := reconcile.Resolve(deleteTS, existing.UpdatedAt)
		ledger.Record(e.Collection, id, deleteTS, existing.UpdatedAt, res)
		winner = res.Winner
	}

	action := reconcile.Decide(reconcile.OpDelete, exists, winner)
	log.Debug(ctx, "record decided", "collection", e.Collection, "id", id, "op", reconcile.OpDelete.String(), "action", action.String())

	if action != reconcile.ActionSoftDelete {
		return false, nil
	}
	if err := repo.SoftDelete(ctx, ownerID, id, deleteTS); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// validatePush checks the request shape and normalizes every record. It
// touches nothing but the request.
func validatePush(ownerID string, req *models.PushRequest) ([]batch, error) {
	if ownerID == "" {
		return nil, errNoOwner
	}
	if req == nil || req.Changes == nil {
		return nil, fmt.Errorf("%w: missing changes", common.ErrMalformedRequest)
	}
	for name := range req.Changes {
		if _, ok := schema.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: unknown collection %q", common.ErrMalformedRequest, name)
		}
	}

	batches := make([]batch, 0, len(schema.Entities))
	for _, e := range schema.Entities {
		cs, ok := req.Changes[e.Collection]
		if !ok || cs == nil {
			return nil, fmt.Errorf("%w: missing change set for %s", common.ErrMalformedRequest, e.Collection)
		}

		b := batch{entity: e}
		var err error
		if b.created, err = normalizeAll(e, cs.Created); err != nil {
			return nil, err
		}
		if b.updated, err = normalizeAll(e, cs.Updated); err != nil {
			return nil, err
		}
		for _, id := range cs.Deleted {
			if id == "" {
				return nil, fmt.Errorf("%w: %s: empty id in deleted", common.ErrMalformedRequest, e.Collection)
			}
		}
		b.deleted = cs.Deleted
		batches = append(batches, b)
	}
	return batches, nil
}

func normalizeAll(e *schema.Entity, raws []models.Raw) ([]*models.Record, error) {
	out := make([]*models.Record, 0, len(raws))
	for _, raw := range raws {
		n, err := e.Normalize(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e.FromClient(n))
	}
	return out, nil
}
