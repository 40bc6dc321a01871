package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/todosync/internal/common"
	"github.com/dmitrijs2005/todosync/internal/dbx"
	"github.com/dmitrijs2005/todosync/internal/logging"
	"github.com/dmitrijs2005/todosync/internal/server/archive"
	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/dmitrijs2005/todosync/internal/server/repositories/records"
	"github.com/dmitrijs2005/todosync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todosync/internal/server/schema"
	"github.com/dmitrijs2005/todosync/internal/server/status"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory stand-in for the Postgres tables. Rows are keyed
// by collection and id; ids are unique across owners like a primary key.
type memStore struct {
	mu     sync.Mutex
	tables map[string]map[string]*models.Record
	// failOn makes the named operation ("get", "insert", ...) fail.
	failOn map[string]error
}

func newMemStore() *memStore {
	return &memStore{tables: map[string]map[string]*models.Record{}, failOn: map[string]error{}}
}

func clone(r *models.Record) *models.Record {
	c := *r
	c.Fields = make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		c.Fields[k] = v
	}
	return &c
}

func (m *memStore) put(collection string, r *models.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tables[collection] == nil {
		m.tables[collection] = map[string]*models.Record{}
	}
	m.tables[collection][r.ID] = clone(r)
}

func (m *memStore) row(collection, id string) *models.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.tables[collection][id]
	if !ok {
		return nil
	}
	return clone(r)
}

type memRepo struct {
	store  *memStore
	entity *schema.Entity
}

var _ records.Repository = (*memRepo)(nil)

func (r *memRepo) fail(op string) error {
	return r.store.failOn[op]
}

func (r *memRepo) table() map[string]*models.Record {
	t := r.store.tables[r.entity.Collection]
	if t == nil {
		t = map[string]*models.Record{}
		r.store.tables[r.entity.Collection] = t
	}
	return t
}

func (r *memRepo) Get(_ context.Context, ownerID, id string) (*models.Record, error) {
	if err := r.fail("get"); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.table()[id]
	if !ok || rec.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	return clone(rec), nil
}

func (r *memRepo) selectWhere(ownerID string, keep func(*models.Record) bool) []*models.Record {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []*models.Record{}
	for _, rec := range r.table() {
		if rec.OwnerID == ownerID && keep(rec) {
			out = append(out, clone(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt != out[j].UpdatedAt {
			return out[i].UpdatedAt < out[j].UpdatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *memRepo) SelectActive(_ context.Context, ownerID string) ([]*models.Record, error) {
	if err := r.fail("select"); err != nil {
		return nil, err
	}
	return r.selectWhere(ownerID, func(rec *models.Record) bool { return !rec.Deleted }), nil
}

func (r *memRepo) SelectChangedSince(_ context.Context, ownerID string, since int64) ([]*models.Record, error) {
	if err := r.fail("select"); err != nil {
		return nil, err
	}
	return r.selectWhere(ownerID, func(rec *models.Record) bool { return rec.UpdatedAt > since }), nil
}

func (r *memRepo) Insert(_ context.Context, rec *models.Record) error {
	if err := r.fail("insert"); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, dup := r.table()[rec.ID]; dup {
		return fmt.Errorf("insert into %s: duplicate key %q", r.entity.Table, rec.ID)
	}
	r.table()[rec.ID] = clone(rec)
	return nil
}

func (r *memRepo) Update(_ context.Context, rec *models.Record) error {
	if err := r.fail("update"); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cur, ok := r.table()[rec.ID]
	if !ok || cur.OwnerID != rec.OwnerID {
		return common.ErrorNotFound
	}
	next := clone(rec)
	next.CreatedAt = cur.CreatedAt
	next.Deleted = false
	r.table()[rec.ID] = next
	return nil
}

func (r *memRepo) SoftDelete(_ context.Context, ownerID, id string, modifiedMs int64) error {
	if err := r.fail("delete"); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cur, ok := r.table()[id]
	if !ok || cur.OwnerID != ownerID {
		return common.ErrorNotFound
	}
	cur.Deleted = true
	cur.UpdatedAt = modifiedMs
	return nil
}

func (r *memRepo) ClearReference(_ context.Context, ownerID, column, refID string, modifiedMs int64) (int64, error) {
	if err := r.fail("clear"); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, rec := range r.table() {
		if rec.OwnerID == ownerID && rec.Fields[column] == refID {
			rec.Fields[column] = nil
			rec.UpdatedAt = max(rec.UpdatedAt+1, modifiedMs)
			n++
		}
	}
	return n, nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	store *memStore
}

func (f *fakeRepoManager) Records(_ dbx.DBTX, e *schema.Entity) records.Repository {
	return &memRepo{store: f.store, entity: e}
}

type recordingArchiver struct {
	docs []archive.Document
	err  error
}

func (a *recordingArchiver) Archive(_ context.Context, doc archive.Document) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.docs = append(a.docs, doc)
	return archive.ObjectKey(doc), nil
}

type failingTracker struct {
	status.Tracker
}

func (failingTracker) RecordPull(context.Context, string, int64, int) error {
	return errors.New("redis down")
}

func (failingTracker) RecordPush(context.Context, string, int64, int, int) error {
	return errors.New("redis down")
}

// stepClock returns start, start+step, start+2*step, ... on successive calls.
func stepClock(start int64, step int64) func() time.Time {
	var mu sync.Mutex
	cur := start - step
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur += step
		return time.UnixMilli(cur)
	}
}

type harness struct {
	svc      *SyncService
	store    *memStore
	mock     sqlmock.Sqlmock
	db       *sql.DB
	tracker  *status.MemoryTracker
	archiver *recordingArchiver
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := newMemStore()
	tracker := status.NewMemoryTracker()
	arch := &recordingArchiver{}

	svc := NewSyncService(db, &fakeRepoManager{store: store}, tracker, arch, logging.NopLogger{})
	svc.now = stepClock(5000, 1)
	ids := 0
	svc.newID = func() string {
		ids++
		return fmt.Sprintf("push-%d", ids)
	}

	return &harness{svc: svc, store: store, mock: mock, db: db, tracker: tracker, archiver: arch}
}

// expectTx registers one transaction that ends with commit or rollback.
func (h *harness) expectTx(commit bool) {
	h.mock.ExpectBegin()
	if commit {
		h.mock.ExpectCommit()
	} else {
		h.mock.ExpectRollback()
	}
}

func todo(id, owner string, created, modified int64, title string) *models.Record {
	return &models.Record{
		ID: id, OwnerID: owner, CreatedAt: created, UpdatedAt: modified,
		Fields: map[string]any{"title": title, "details": "", "completed": false, "category_ref": nil},
	}
}

func category(id, owner string, created, modified int64, name string) *models.Record {
	return &models.Record{
		ID: id, OwnerID: owner, CreatedAt: created, UpdatedAt: modified,
		Fields: map[string]any{"title": name, "color": nil},
	}
}

// pushOf builds a push request; nil sets become empty change sets.
func pushOf(categories, todos *models.ChangeSet) *models.PushRequest {
	if categories == nil {
		cs := models.NewChangeSet()
		categories = &cs
	}
	if todos == nil {
		cs := models.NewChangeSet()
		todos = &cs
	}
	return &models.PushRequest{Changes: map[string]*models.ChangeSet{
		models.CollectionCategories: categories,
		models.CollectionTodos:      todos,
	}}
}
