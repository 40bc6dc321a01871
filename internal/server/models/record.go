// Package models defines the server-side data shapes shared by the sync
// engine, the repositories and the request layer.
package models

// Record is one stored row of a synced collection (a category or a todo).
//
// Fields holds the entity-specific values keyed by storage column name; the
// system columns (id, owner, timestamps, soft-delete flag) are lifted into
// dedicated struct fields because every collection carries them.
type Record struct {
	// ID is the client-generated, globally unique identifier. It is never
	// reused, not even after soft deletion.
	ID string
	// OwnerID scopes the record to an account.
	OwnerID string
	// Fields maps storage column name to value (string, bool or nil).
	Fields map[string]any
	// CreatedAt is milliseconds since epoch, immutable once set.
	CreatedAt int64
	// UpdatedAt is milliseconds since epoch of the last accepted mutation.
	UpdatedAt int64
	// Deleted marks the record as soft-deleted.
	Deleted bool
}

// Raw is a record in the client's schema, as a JSON object.
type Raw map[string]any
