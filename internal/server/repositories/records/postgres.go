// Package records provides a PostgreSQL repository for synced collections.
// One implementation serves every collection; table and column names come
// from the schema.Entity it is built for.
package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/todosync/internal/common"
	"github.com/dmitrijs2005/todosync/internal/dbx"
	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/dmitrijs2005/todosync/internal/server/schema"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db     dbx.DBTX
	entity *schema.Entity
	q      queries
}

type queries struct {
	get, active, changed, insert, update, softDelete string
}

// NewPostgresRepository constructs a repository for entity bound to db.
func NewPostgresRepository(db dbx.DBTX, entity *schema.Entity) *PostgresRepository {
	return &PostgresRepository{db: db, entity: entity, q: buildQueries(entity)}
}

func buildQueries(e *schema.Entity) queries {
	cols := []string{schema.ColumnID, schema.ColumnOwner, schema.ColumnCreated, schema.ColumnModified, schema.ColumnDeleted}
	for _, c := range e.Columns {
		cols = append(cols, c.Name)
	}
	selectList := strings.Join(cols, ", ")

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	// $1 id, $2 owner, then the entity columns, then modified_ms.
	sets := make([]string, 0, len(e.Columns)+2)
	for i, c := range e.Columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Name, i+3))
	}
	sets = append(sets,
		fmt.Sprintf("%s = $%d", schema.ColumnModified, len(e.Columns)+3),
		schema.ColumnDeleted+" = false",
	)

	return queries{
		get: fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 AND %s = $2",
			selectList, e.Table, schema.ColumnID, schema.ColumnOwner),
		active: fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 AND %s = false ORDER BY %s ASC, %s ASC",
			selectList, e.Table, schema.ColumnOwner, schema.ColumnDeleted, schema.ColumnModified, schema.ColumnID),
		changed: fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 AND %s > $2 ORDER BY %s ASC, %s ASC",
			selectList, e.Table, schema.ColumnOwner, schema.ColumnModified, schema.ColumnModified, schema.ColumnID),
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			e.Table, selectList, strings.Join(placeholders, ", ")),
		update: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1 AND %s = $2",
			e.Table, strings.Join(sets, ", "), schema.ColumnID, schema.ColumnOwner),
		softDelete: fmt.Sprintf("UPDATE %s SET %s = true, %s = $3 WHERE %s = $1 AND %s = $2",
			e.Table, schema.ColumnDeleted, schema.ColumnModified, schema.ColumnID, schema.ColumnOwner),
	}
}

// Get returns the owner's row with the given id, or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (*models.Record, error) {
	rec, err := r.scan(r.db.QueryRowContext(ctx, r.q.get, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

// SelectActive returns every non-deleted row of the owner.
func (r *PostgresRepository) SelectActive(ctx context.Context, ownerID string) ([]*models.Record, error) {
	return r.list(ctx, r.q.active, ownerID)
}

// SelectChangedSince returns rows of the owner modified after since,
// oldest modification first.
func (r *PostgresRepository) SelectChangedSince(ctx context.Context, ownerID string, since int64) ([]*models.Record, error) {
	return r.list(ctx, r.q.changed, ownerID, since)
}

// Insert stores a new row. A primary key collision is returned as is.
func (r *PostgresRepository) Insert(ctx context.Context, rec *models.Record) error {
	args := []any{rec.ID, rec.OwnerID, rec.CreatedAt, rec.UpdatedAt, rec.Deleted}
	args = append(args, r.fieldArgs(rec)...)
	if _, err := r.db.ExecContext(ctx, r.q.insert, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", r.entity.Table, err)
	}
	return nil
}

// Update overwrites mutable columns of an existing row and un-deletes it.
func (r *PostgresRepository) Update(ctx context.Context, rec *models.Record) error {
	args := []any{rec.ID, rec.OwnerID}
	args = append(args, r.fieldArgs(rec)...)
	args = append(args, rec.UpdatedAt)
	res, err := r.db.ExecContext(ctx, r.q.update, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.entity.Table, err)
	}
	return expectOne(res)
}

// SoftDelete flags a row deleted and stamps its modification time.
func (r *PostgresRepository) SoftDelete(ctx context.Context, ownerID, id string, modifiedMs int64) error {
	res, err := r.db.ExecContext(ctx, r.q.softDelete, id, ownerID, modifiedMs)
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", r.entity.Table, err)
	}
	return expectOne(res)
}

// ClearReference nulls column on every row of the owner pointing at refID.
// The modification timestamp becomes max(modified_ms+1, modifiedMs) so
// that it always advances.
func (r *PostgresRepository) ClearReference(ctx context.Context, ownerID, column, refID string, modifiedMs int64) (int64, error) {
	if !r.hasColumn(column) {
		return 0, fmt.Errorf("%s has no column %q", r.entity.Table, column)
	}
	query := fmt.Sprintf("UPDATE %s SET %s = NULL, %s = GREATEST(%s + 1, $3) WHERE %s = $1 AND %s = $2",
		r.entity.Table, column, schema.ColumnModified, schema.ColumnModified, schema.ColumnOwner, column)
	res, err := r.db.ExecContext(ctx, query, ownerID, refID, modifiedMs)
	if err != nil {
		return 0, fmt.Errorf("clear %s.%s: %w", r.entity.Table, column, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) hasColumn(name string) bool {
	for _, c := range r.entity.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (r *PostgresRepository) fieldArgs(rec *models.Record) []any {
	args := make([]any, 0, len(r.entity.Columns))
	for _, c := range r.entity.Columns {
		v := rec.Fields[c.Name]
		switch c.Kind {
		case schema.KindText:
			if v == nil {
				v = ""
			}
		case schema.KindBool:
			if v == nil {
				v = false
			}
		}
		args = append(args, v)
	}
	return args
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", r.entity.Table, err)
	}
	defer rows.Close()

	result := []*models.Record{}
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) scan(s scanner) (*models.Record, error) {
	rec := &models.Record{Fields: make(map[string]any, len(r.entity.Columns))}
	dest := []any{&rec.ID, &rec.OwnerID, &rec.CreatedAt, &rec.UpdatedAt, &rec.Deleted}

	vals := make([]any, len(r.entity.Columns))
	for i, c := range r.entity.Columns {
		switch c.Kind {
		case schema.KindBool:
			vals[i] = new(bool)
		case schema.KindNullableText:
			vals[i] = new(sql.NullString)
		default:
			vals[i] = new(string)
		}
	}
	dest = append(dest, vals...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	for i, c := range r.entity.Columns {
		switch v := vals[i].(type) {
		case *bool:
			rec.Fields[c.Name] = *v
		case *sql.NullString:
			if v.Valid {
				rec.Fields[c.Name] = v.String
			} else {
				rec.Fields[c.Name] = nil
			}
		case *string:
			rec.Fields[c.Name] = *v
		}
	}
	return rec, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
