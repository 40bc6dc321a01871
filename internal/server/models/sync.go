package models

// Collection names as seen by clients.
const (
	CollectionCategories = "categories"
	CollectionTodos      = "todos"
)

// ChangeSet is the created/updated/deleted partition of one collection within
// a sync window, in client schema.
type ChangeSet struct {
	Created []Raw    `json:"created"`
	Updated []Raw    `json:"updated"`
	Deleted []string `json:"deleted"`
}

// NewChangeSet returns a change set whose slices encode as [] rather than null.
func NewChangeSet() ChangeSet {
	return ChangeSet{Created: []Raw{}, Updated: []Raw{}, Deleted: []string{}}
}

// Len returns the total number of entries across the three buckets.
func (c ChangeSet) Len() int {
	return len(c.Created) + len(c.Updated) + len(c.Deleted)
}

// PullResult is the snapshot handed to a pulling client. Timestamp is the
// checkpoint the client must send as lastPulledAt on its next pull.
type PullResult struct {
	Changes   map[string]ChangeSet
	Timestamp int64
}

// PushRequest carries a client's local changes. Changes is keyed by
// collection name; a nil ChangeSet pointer means the client omitted it.
type PushRequest struct {
	Changes      map[string]*ChangeSet
	LastPulledAt *int64
}

// Winner names the side whose version a resolution kept.
type Winner string

const (
	WinnerLocal  Winner = "local"
	WinnerRemote Winner = "remote"
)

// ConflictResolution is one entry of the conflict ledger.
type ConflictResolution struct {
	RecordID        string `json:"recordId"`
	Collection      string `json:"collection"`
	Winner          Winner `json:"winner"`
	LocalUpdatedAt  int64  `json:"localUpdatedAt"`
	RemoteUpdatedAt int64  `json:"remoteUpdatedAt"`
	Reason          string `json:"reason"`
}

// PushResult is returned for a committed push. Conflicts lists every
// resolution made, in processing order, regardless of which side won.
type PushResult struct {
	OK        bool
	PushID    string
	Conflicts []ConflictResolution
}

// SyncStatus summarises the last sync activity of an owner.
type SyncStatus struct {
	OwnerID           string `json:"ownerId"`
	LastPulledAt      int64  `json:"lastPulledAt"`
	LastPullRecords   int64  `json:"lastPullRecords"`
	LastPushedAt      int64  `json:"lastPushedAt"`
	LastPushRecords   int64  `json:"lastPushRecords"`
	LastPushConflicts int64  `json:"lastPushConflicts"`
}
