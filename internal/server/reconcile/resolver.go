// Package reconcile holds the pure parts of push reconciliation: the
// last-write-wins resolver, the per-record decision table and the conflict
// ledger. Nothing here touches the store.
package reconcile

import (
	"fmt"

	"github.com/dmitrijs2005/todosync/internal/server/models"
)

// Resolution is the verdict of Resolve together with a human-readable reason
// quoting both timestamps.
type Resolution struct {
	Winner models.Winner
	Reason string
}

// Resolve applies last-write-wins to two modification timestamps (ms since
// epoch). The local (client) side wins only when strictly newer; on equality
// the server keeps its version.
func Resolve(local, remote int64) Resolution {
	switch {
	case local > remote:
		return Resolution{
			Winner: models.WinnerLocal,
			Reason: fmt.Sprintf("local updated_at %d is newer than remote updated_at %d", local, remote),
		}
	case local == remote:
		return Resolution{
			Winner: models.WinnerRemote,
			Reason: fmt.Sprintf("local updated_at %d equals remote updated_at %d, server wins ties", local, remote),
		}
	default:
		return Resolution{
			Winner: models.WinnerRemote,
			Reason: fmt.Sprintf("remote updated_at %d is newer than local updated_at %d", remote, local),
		}
	}
}
