package reconcile

import (
	"github.com/dmitrijs2005/todosync/internal/server/models"
)

// Ledger accumulates the resolutions made during one push, in order.
// It is created per push and handed through the pipeline; it is not safe
// for concurrent use.
type Ledger struct {
	entries []models.ConflictResolution
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: []models.ConflictResolution{}}
}

// Record appends a resolution for one record.
func (l *Ledger) Record(collection, recordID string, local, remote int64, res Resolution) {
	l.entries = append(l.entries, models.ConflictResolution{
		RecordID:        recordID,
		Collection:      collection,
		Winner:          res.Winner,
		LocalUpdatedAt:  local,
		RemoteUpdatedAt: remote,
		Reason:          res.Reason,
	})
}

// Entries returns the recorded resolutions. The slice is never nil.
func (l *Ledger) Entries() []models.ConflictResolution {
	return l.entries
}

// Len returns the number of recorded resolutions.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// LocalWins counts the resolutions the client won.
func (l *Ledger) LocalWins() int {
	n := 0
	for _, e := range l.entries {
		if e.Winner == models.WinnerLocal {
			n++
		}
	}
	return n
}
