package reconcile

import "github.com/dmitrijs2005/todosync/internal/server/models"

// Op is the change a client asked for.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Action is what the push coordinator does to the store for one record.
type Action int

const (
	// ActionSkip leaves the store untouched.
	ActionSkip Action = iota
	// ActionInsert inserts the client version as a new row.
	ActionInsert
	// ActionUpdate overwrites mutable fields with the client version,
	// sets the modification timestamp to the client's and clears the
	// soft-delete flag. The creation timestamp is kept.
	ActionUpdate
	// ActionSoftDelete flags the row deleted.
	ActionSoftDelete
)

func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionInsert:
		return "insert"
	case ActionUpdate:
		return "update"
	case ActionSoftDelete:
		return "soft-delete"
	default:
		return "unknown"
	}
}

// Decide maps (requested op, row existence, resolver verdict) to a store
// action. winner is ignored when the row does not exist, since no resolution
// takes place then.
//
//	op      absent   present+local   present+remote
//	create  insert   update          skip
//	update  skip     update          skip
//	delete  skip     soft-delete     skip
func Decide(op Op, exists bool, winner models.Winner) Action {
	if !exists {
		if op == OpCreate {
			return ActionInsert
		}
		return ActionSkip
	}
	if winner != models.WinnerLocal {
		return ActionSkip
	}
	switch op {
	case OpCreate, OpUpdate:
		return ActionUpdate
	case OpDelete:
		return ActionSoftDelete
	default:
		return ActionSkip
	}
}
