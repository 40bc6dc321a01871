package schema

import "github.com/dmitrijs2005/todosync/internal/server/models"

// ToClient renders a stored record in client schema. Server-only columns
// (owner, soft-delete flag) are not exposed.
func (e *Entity) ToClient(r *models.Record) models.Raw {
	raw := make(models.Raw, len(e.Columns)+3)
	raw[FieldID] = r.ID
	raw[FieldCreatedAt] = r.CreatedAt
	raw[FieldUpdatedAt] = r.UpdatedAt
	for _, c := range e.Columns {
		raw[c.Field] = r.Fields[c.Name]
	}
	return raw
}

// FromClient maps a client record onto storage columns. The input must have
// been through Normalize; FromClient itself never fails. OwnerID and Deleted
// are left for the caller.
func (e *Entity) FromClient(raw models.Raw) *models.Record {
	r := &models.Record{Fields: make(map[string]any, len(e.Columns))}
	r.ID, _ = raw[FieldID].(string)
	r.CreatedAt, _ = raw[FieldCreatedAt].(int64)
	r.UpdatedAt, _ = raw[FieldUpdatedAt].(int64)
	for _, c := range e.Columns {
		r.Fields[c.Name] = raw[c.Field]
	}
	return r
}
