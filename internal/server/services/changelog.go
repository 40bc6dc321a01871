package services

import (
	"context"

	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/dmitrijs2005/todosync/internal/server/repositories/records"
	"github.com/dmitrijs2005/todosync/internal/server/schema"
)

// ChangesSince returns what changed in one collection of the owner since the
// checkpoint, in client schema.
//
// A nil checkpoint is a bootstrap: every live record is reported as created.
// Otherwise rows with modified_ms > *since are partitioned in ascending
// modification order: soft-deleted rows go to Deleted (id only), rows created
// after the checkpoint to Created, the rest to Updated. Deletion is tested
// first, so a record created and deleted within the window is only Deleted.
func ChangesSince(ctx context.Context, repo records.Repository, e *schema.Entity, ownerID string, since *int64) (models.ChangeSet, error) {
	cs := models.NewChangeSet()

	if since == nil {
		rows, err := repo.SelectActive(ctx, ownerID)
		if err != nil {
			return cs, err
		}
		for _, r := range rows {
			cs.Created = append(cs.Created, e.ToClient(r))
		}
		return cs, nil
	}

	rows, err := repo.SelectChangedSince(ctx, ownerID, *since)
	if err != nil {
		return cs, err
	}
	for _, r := range rows {
		switch {
		case r.Deleted:
			cs.Deleted = append(cs.Deleted, r.ID)
		case r.CreatedAt > *since:
			cs.Created = append(cs.Created, e.ToClient(r))
		default:
			cs.Updated = append(cs.Updated, e.ToClient(r))
		}
	}
	return cs, nil
}
