// Package schema describes the synced collections and translates records
// between the client's logical field names and the server's storage columns.
//
// Both collections share one reconciliation algorithm; everything that differs
// between them lives in an Entity descriptor.
package schema

import "github.com/dmitrijs2005/todosync/internal/server/models"

// Kind is the value type of an entity-specific column.
type Kind int

const (
	// KindText is a NOT NULL text column.
	KindText Kind = iota
	// KindNullableText is a text column that may hold NULL.
	KindNullableText
	// KindBool is a NOT NULL boolean column.
	KindBool
)

// Client-schema names of the system fields every collection carries.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Storage column names of the system fields every table carries.
// owner_id and is_deleted are server-only and never reach a client.
const (
	ColumnID       = "id"
	ColumnOwner    = "owner_id"
	ColumnCreated  = "created_ms"
	ColumnModified = "modified_ms"
	ColumnDeleted  = "is_deleted"
)

// Column binds one entity-specific client field to its storage column.
type Column struct {
	Field string
	Name  string
	Kind  Kind
}

// Reference declares that a column points at a record of another collection.
// When the referenced record is soft-deleted the column is cleared.
type Reference struct {
	Column     string
	Collection string
}

// Entity describes one synced collection.
type Entity struct {
	Collection string
	Table      string
	Columns    []Column
	References []Reference
}

var Categories = &Entity{
	Collection: models.CollectionCategories,
	Table:      "categories",
	Columns: []Column{
		{Field: "name", Name: "title", Kind: KindText},
		{Field: "color", Name: "color", Kind: KindNullableText},
	},
}

var Todos = &Entity{
	Collection: models.CollectionTodos,
	Table:      "todos",
	Columns: []Column{
		{Field: "title", Name: "title", Kind: KindText},
		{Field: "description", Name: "details", Kind: KindText},
		{Field: "is_completed", Name: "completed", Kind: KindBool},
		{Field: "category_id", Name: "category_ref", Kind: KindNullableText},
	},
	References: []Reference{
		{Column: "category_ref", Collection: models.CollectionCategories},
	},
}

// Entities lists every synced collection in dependency order: a collection
// appears after every collection it references.
var Entities = []*Entity{Categories, Todos}

// Lookup finds an entity by collection name.
func Lookup(collection string) (*Entity, bool) {
	for _, e := range Entities {
		if e.Collection == collection {
			return e, true
		}
	}
	return nil, false
}

// Referencing returns the references, across all entities, that point at the
// given collection, paired with the entity that owns each one.
func Referencing(collection string) []Backref {
	var out []Backref
	for _, e := range Entities {
		for _, ref := range e.References {
			if ref.Collection == collection {
				out = append(out, Backref{Entity: e, Column: ref.Column})
			}
		}
	}
	return out
}

// Backref is a reference seen from the referenced side.
type Backref struct {
	Entity *Entity
	Column string
}
