package schema

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/dmitrijs2005/todosync/internal/common"
	"github.com/dmitrijs2005/todosync/internal/server/models"
)

// Normalize validates a client record and returns a copy holding only the
// fields this entity knows, with canonical Go types: timestamps as int64,
// text as string, nullable text as string or nil, flags as bool.
//
// Client bookkeeping keys (such as "_status" or "_changed") are dropped.
// A missing created_at defaults to updated_at. Any violation wraps
// common.ErrMalformedRequest.
func (e *Entity) Normalize(raw models.Raw) (models.Raw, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: %s: null record", common.ErrMalformedRequest, e.Collection)
	}

	id, ok := raw[FieldID].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: %s: record without a string id", common.ErrMalformedRequest, e.Collection)
	}

	updatedAt, ok := toMillis(raw[FieldUpdatedAt])
	if !ok {
		return nil, e.fieldError(id, FieldUpdatedAt, "a non-negative integer timestamp")
	}

	createdAt := updatedAt
	if v, present := raw[FieldCreatedAt]; present && v != nil {
		if createdAt, ok = toMillis(v); !ok {
			return nil, e.fieldError(id, FieldCreatedAt, "a non-negative integer timestamp")
		}
	}

	out := make(models.Raw, len(e.Columns)+3)
	out[FieldID] = id
	out[FieldCreatedAt] = createdAt
	out[FieldUpdatedAt] = updatedAt

	for _, c := range e.Columns {
		v := raw[c.Field]
		switch c.Kind {
		case KindText:
			if v == nil {
				out[c.Field] = ""
				continue
			}
			s, ok := v.(string)
			if !ok {
				return nil, e.fieldError(id, c.Field, "a string")
			}
			out[c.Field] = s
		case KindNullableText:
			if v == nil {
				out[c.Field] = nil
				continue
			}
			s, ok := v.(string)
			if !ok {
				return nil, e.fieldError(id, c.Field, "a string or null")
			}
			out[c.Field] = s
		case KindBool:
			if v == nil {
				out[c.Field] = false
				continue
			}
			b, ok := v.(bool)
			if !ok {
				return nil, e.fieldError(id, c.Field, "a boolean")
			}
			out[c.Field] = b
		}
	}

	return out, nil
}

func (e *Entity) fieldError(id, field, want string) error {
	return fmt.Errorf("%w: %s record %q: %s must be %s", common.ErrMalformedRequest, e.Collection, id, field, want)
}

// toMillis accepts the numeric shapes a JSON decoder can produce.
func toMillis(v any) (int64, bool) {
	var n int64
	switch x := v.(type) {
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			f, ferr := x.Float64()
			if ferr != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
				return 0, false
			}
			i = int64(f)
		}
		n = i
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > 1<<53 {
			return 0, false
		}
		n = int64(x)
	case int64:
		n = x
	case int:
		n = int64(x)
	default:
		return 0, false
	}
	return n, n >= 0
}
