package records

import (
	"context"

	"github.com/dmitrijs2005/todosync/internal/server/models"
)

// Repository is the backing store of one synced collection. Every method is
// scoped by owner.
type Repository interface {
	// Get returns the row with the given id, soft-deleted or not.
	// It returns common.ErrorNotFound when there is none.
	Get(ctx context.Context, ownerID, id string) (*models.Record, error)
	// SelectActive returns every row that is not soft-deleted.
	SelectActive(ctx context.Context, ownerID string) ([]*models.Record, error)
	// SelectChangedSince returns rows with modified_ms > since, in ascending
	// modification order.
	SelectChangedSince(ctx context.Context, ownerID string, since int64) ([]*models.Record, error)
	Insert(ctx context.Context, rec *models.Record) error
	// Update overwrites the mutable columns and the modification timestamp
	// and clears the soft-delete flag. created_ms is kept.
	Update(ctx context.Context, rec *models.Record) error
	SoftDelete(ctx context.Context, ownerID, id string, modifiedMs int64) error
	// ClearReference sets column to NULL on every row of the owner that
	// points at refID and advances their modification timestamp. It returns
	// the number of rows touched.
	ClearReference(ctx context.Context, ownerID, column, refID string, modifiedMs int64) (int64, error)
}
