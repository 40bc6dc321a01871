package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/todosync/internal/common"
	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawTodo(id string, updated int64, title string) models.Raw {
	return models.Raw{
		"id": id, "title": title, "description": "", "is_completed": false,
		"category_id": nil, "created_at": updated, "updated_at": updated,
	}
}

func created(raws ...models.Raw) *models.ChangeSet {
	cs := models.NewChangeSet()
	cs.Created = raws
	return &cs
}

func updated(raws ...models.Raw) *models.ChangeSet {
	cs := models.NewChangeSet()
	cs.Updated = raws
	return &cs
}

func deleted(ids ...string) *models.ChangeSet {
	cs := models.NewChangeSet()
	cs.Deleted = ids
	return &cs
}

func TestPush_InsertsNewRecords(t *testing.T) {
	h := newHarness(t)
	h.expectTx(true)

	cat := models.Raw{"id": "c1", "name": "Home", "color": "#fff", "updated_at": int64(100)}
	td := rawTodo("t1", 110, "Buy milk")
	td["category_id"] = "c1"

	res, err := h.svc.Push(context.Background(), "u1", pushOf(created(cat), created(td)))
	require.NoError(t, err)

	assert.True(t, res.OK)
	assert.Equal(t, "push-1", res.PushID)
	assert.Empty(t, res.Conflicts, "inserts of absent records are not resolutions")
	assert.NotNil(t, res.Conflicts)

	c := h.store.row("categories", "c1")
	require.NotNil(t, c)
	assert.Equal(t, "u1", c.OwnerID)
	assert.Equal(t, "Home", c.Fields["title"])
	assert.Equal(t, int64(100), c.CreatedAt)

	tr := h.store.row("todos", "t1")
	require.NotNil(t, tr)
	assert.Equal(t, "c1", tr.Fields["category_ref"])
	assert.Equal(t, "Buy milk", tr.Fields["title"])

	assert.Empty(t, h.archiver.docs, "nothing to archive without resolutions")
	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestPush_CreatedExistingLocalNewerWins(t *testing.T) {
	h := newHarness(t)
	h.store.put("todos", todo("t1", "u1", 800, 900, "stale"))
	h.expectTx(true)

	pushed := rawTodo("t1", 1000, "fresh")
	pushed["description"] = "from phone"
	pushed["is_completed"] = true

	res, err := h.svc.Push(context.Background(), "u1", pushOf(nil, created(pushed)))
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 1)
	c := res.Conflicts[0]
	assert.Equal(t, "t1", c.RecordID)
	assert.Equal(t, models.CollectionTodos, c.Collection)
	assert.Equal(t, models.WinnerLocal, c.Winner)
	assert.Equal(t, int64(1000), c.LocalUpdatedAt)
	assert.Equal(t, int64(900), c.RemoteUpdatedAt)
	assert.Contains(t, c.Reason, "1000")
	assert.Contains(t, c.Reason, "900")

	row := h.store.row("todos", "t1")
	assert.Equal(t, "fresh", row.Fields["title"])
	assert.Equal(t, "from phone", row.Fields["details"])
	assert.Equal(t, true, row.Fields["completed"])
	assert.Equal(t, int64(1000), row.UpdatedAt)
	assert.Equal(t, int64(800), row.CreatedAt, "creation time is immutable")

	require.Len(t, h.archiver.docs, 1)
	assert.Equal(t, "push-1", h.archiver.docs[0].PushID)
	assert.Equal(t, res.Conflicts, h.archiver.docs[0].Conflicts)
	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestPush_CreatedExistingUndeletesWhenLocalWins(t *testing.T) {
	h := newHarness(t)
	gone := todo("t1", "u1", 100, 200, "old")
	gone.Deleted = true
	h.store.put("todos", gone)
	h.expectTx(true)

	_, err := h.svc.Push(context.Background(), "u1", pushOf(nil, created(rawTodo("t1", 300, "back"))))
	require.NoError(t, err)

	row := h.store.row("todos", "t1")
	assert.False(t, row.Deleted)
	assert.Equal(t, "back", row.Fields["title"])
}

func TestPush_SameCreateTwiceIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.expectTx(true)
	h.expectTx(true)

	req := func() *models.PushRequest { return pushOf(nil, created(rawTodo("t1", 1000, "once"))) }

	first, err := h.svc.Push(context.Background(), "u1", req())
	require.NoError(t, err)
	assert.Empty(t, first.Conflicts)
	after := h.store.row("todos", "t1")

	second, err := h.svc.Push(context.Background(), "u1", req())
	require.NoError(t, err)
	require.Len(t, second.Conflicts, 1)
	assert.Equal(t, models.WinnerRemote, second.Conflicts[0].Winner, "ties go to the server")

	assert.Equal(t, after, h.store.row("todos", "t1"))
	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestPush_UpdateRemoteNewerIsKept(t *testing.T) {
	h := newHarness(t)
	h.store.put("categories", category("c1", "u1", 10, 2000, "server"))
	h.expectTx(true)

	cat := models.Raw{"id": "c1", "name": "client", "updated_at": int64(1500)}
	res, err := h.svc.Push(context.Background(), "u1", pushOf(updated(cat), nil))
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, models.WinnerRemote, res.Conflicts[0].Winner)
	assert.Equal(t, "server", h.store.row("categories", "c1").Fields["title"])
}

func TestPush_UpdateMissingRecordIsSkipped(t *testing.T) {
	h := newHarness(t)
	h.expectTx(true)

	res, err := h.svc.Push(context.Background(), "u1", pushOf(nil, updated(rawTodo("ghost", 1000, "x"))))
	require.NoError(t, err)

	assert.True(t, res.OK)
	assert.Empty(t, res.Conflicts)
	assert.Nil(t, h.store.row("todos", "ghost"), "update never inserts")
	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestPush_DeleteLosesToFutureEdit(t *testing.T) {
	h := newHarness(t)
	// push clock starts at 5000
	h.store.put("todos", todo("t1", "u1", 100, 9000, "edited later"))
	h.expectTx(true)

	res, err := h.svc.Push(context.Background(), "u1", pushOf(nil, deleted("t1")))
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, models.WinnerRemote, res.Conflicts[0].Winner)
	assert.Equal(t, int64(5000), res.Conflicts[0].LocalUpdatedAt)
	assert.Equal(t, int64(9000), res.Conflicts[0].RemoteUpdatedAt)
	assert.False(t, h.store.row("todos", "t1").Deleted)
}

func TestPush_DeleteWinsAndUsesPushTime(t *testing.T) {
	h := newHarness(t)
	h.store.put("todos", todo("t1", "u1", 100, 200, "done"))
	h.expectTx(true)

	res, err := h.svc.Push(context.Background(), "u1", pushOf(nil, deleted("t1", "never-existed")))
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 1, "absent ids are a no-op")
	assert.Equal(t, models.WinnerLocal, res.Conflicts[0].Winner)

	row := h.store.row("todos", "t1")
	assert.True(t, row.Deleted)
	assert.Equal(t, int64(5000), row.UpdatedAt)
}

func TestPush_CategoryDeleteClearsTodoReferences(t *testing.T) {
	h := newHarness(t)
	h.store.put("categories", category("c1", "u1", 10, 10, "Work"))
	linked := todo("t1", "u1", 20, 20, "linked")
	linked.Fields["category_ref"] = "c1"
	h.store.put("todos", linked)
	other := todo("t2", "u1", 20, 20, "elsewhere")
	other.Fields["category_ref"] = "c2"
	h.store.put("todos", other)
	h.expectTx(true)

	_, err := h.svc.Push(context.Background(), "u1", pushOf(deleted("c1"), nil))
	require.NoError(t, err)

	assert.True(t, h.store.row("categories", "c1").Deleted)

	t1 := h.store.row("todos", "t1")
	assert.False(t, t1.Deleted, "todos are never deleted by the cascade")
	assert.Nil(t, t1.Fields["category_ref"])
	assert.Equal(t, int64(5000), t1.UpdatedAt)

	t2 := h.store.row("todos", "t2")
	assert.Equal(t, "c2", t2.Fields["category_ref"])
	assert.Equal(t, int64(20), t2.UpdatedAt)
}

func TestPush_CategoryDeleteWithTodoUpdateInSamePush(t *testing.T) {
	h := newHarness(t)
	h.store.put("categories", category("c1", "u1", 10, 10, "Work"))
	linked := todo("t1", "u1", 20, 20, "old title")
	linked.Fields["category_ref"] = "c1"
	h.store.put("todos", linked)
	h.expectTx(true)

	edit := rawTodo("t1", 1000, "new title")
	edit["category_id"] = "c1"

	res, err := h.svc.Push(context.Background(), "u1", pushOf(deleted("c1"), updated(edit)))
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 2)
	assert.Equal(t, "todos", res.Conflicts[1].Collection)
	assert.Equal(t, models.WinnerLocal, res.Conflicts[1].Winner)
	assert.Equal(t, int64(1000), res.Conflicts[1].LocalUpdatedAt)
	assert.Equal(t, int64(20), res.Conflicts[1].RemoteUpdatedAt)

	t1 := h.store.row("todos", "t1")
	assert.Equal(t, "new title", t1.Fields["title"])
	assert.Nil(t, t1.Fields["category_ref"])
	assert.Equal(t, int64(5000), t1.UpdatedAt)
	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestPush_CategoryDeleteWithTodoCreateInSamePush(t *testing.T) {
	h := newHarness(t)
	h.store.put("categories", category("c1", "u1", 10, 10, "Work"))
	h.expectTx(true)

	fresh := rawTodo("t2", 1000, "filed under work")
	fresh["category_id"] = "c1"

	res, err := h.svc.Push(context.Background(), "u1", pushOf(deleted("c1"), created(fresh)))
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "categories", res.Conflicts[0].Collection)

	t2 := h.store.row("todos", "t2")
	require.NotNil(t, t2)
	assert.Equal(t, "filed under work", t2.Fields["title"])
	assert.Nil(t, t2.Fields["category_ref"], "a todo created under a deleted category is detached")
	assert.Equal(t, int64(1000), t2.CreatedAt)
	assert.Equal(t, int64(5000), t2.UpdatedAt)
}

func TestPush_CategoryDeleteWithLosingTodoUpdate(t *testing.T) {
	h := newHarness(t)
	h.store.put("categories", category("c1", "u1", 10, 10, "Work"))
	linked := todo("t1", "u1", 20, 9000, "server title")
	linked.Fields["category_ref"] = "c1"
	h.store.put("todos", linked)
	h.expectTx(true)

	edit := rawTodo("t1", 1000, "stale title")
	edit["category_id"] = "c1"

	res, err := h.svc.Push(context.Background(), "u1", pushOf(deleted("c1"), updated(edit)))
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 2)
	assert.Equal(t, models.WinnerRemote, res.Conflicts[1].Winner)

	t1 := h.store.row("todos", "t1")
	assert.Equal(t, "server title", t1.Fields["title"])
	assert.Nil(t, t1.Fields["category_ref"])
	assert.Equal(t, int64(9001), t1.UpdatedAt, "the cascade still moves the row forward")
}

func TestPush_ClearReferenceErrorRollsBack(t *testing.T) {
	h := newHarness(t)
	h.store.put("categories", category("c1", "u1", 10, 10, "Work"))
	h.store.failOn["clear"] = errors.New("lock timeout")
	h.expectTx(false)

	res, err := h.svc.Push(context.Background(), "u1", pushOf(deleted("c1"), updated(rawTodo("t1", 1000, "x"))))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "lock timeout")
	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestPush_LedgerFollowsProcessingOrder(t *testing.T) {
	h := newHarness(t)
	h.store.put("categories", category("c1", "u1", 1, 1, "a"))
	h.store.put("todos", todo("t1", "u1", 1, 1, "a"))
	h.store.put("todos", todo("t2", "u1", 1, 1, "b"))
	h.store.put("todos", todo("t3", "u1", 1, 1, "c"))
	h.expectTx(true)

	todos := models.NewChangeSet()
	todos.Created = []models.Raw{rawTodo("t1", 10, "a")}
	todos.Updated = []models.Raw{rawTodo("t2", 10, "b")}
	todos.Deleted = []string{"t3"}
	cats := updated(models.Raw{"id": "c1", "name": "a2", "updated_at": int64(10)})

	res, err := h.svc.Push(context.Background(), "u1", pushOf(cats, &todos))
	require.NoError(t, err)

	var order []string
	for _, c := range res.Conflicts {
		order = append(order, c.Collection+"/"+c.RecordID)
	}
	assert.Equal(t, []string{"categories/c1", "todos/t1", "todos/t2", "todos/t3"}, order)
}

func TestPush_StoreErrorRollsBack(t *testing.T) {
	h := newHarness(t)
	h.store.failOn["insert"] = errors.New("disk full")
	h.expectTx(false)

	res, err := h.svc.Push(context.Background(), "u1", pushOf(nil, created(rawTodo("t1", 1, "x"))))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "disk full")
	assert.NotErrorIs(t, err, common.ErrMalformedRequest)
	assert.Empty(t, h.archiver.docs)

	st, _ := h.tracker.Get(context.Background(), "u1")
	assert.Zero(t, st.LastPushedAt, "failed pushes are not tracked")
	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestPush_CrossOwnerIDCollisionFails(t *testing.T) {
	h := newHarness(t)
	h.store.put("todos", todo("t1", "someone-else", 1, 1, "theirs"))
	h.expectTx(false)

	_, err := h.svc.Push(context.Background(), "u1", pushOf(nil, created(rawTodo("t1", 50, "mine"))))
	require.Error(t, err)
	assert.Equal(t, "theirs", h.store.row("todos", "t1").Fields["title"])
	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestPush_GetErrorRollsBack(t *testing.T) {
	h := newHarness(t)
	h.store.failOn["get"] = errors.New("timeout")
	h.expectTx(false)

	_, err := h.svc.Push(context.Background(), "u1", pushOf(nil, deleted("t1")))
	require.Error(t, err)
	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestPush_MalformedRequestsNeverTouchTheStore(t *testing.T) {
	full := func() *models.PushRequest { return pushOf(nil, nil) }

	tests := []struct {
		name  string
		owner string
		req   *models.PushRequest
	}{
		{"no owner", "", full()},
		{"nil request", "u1", nil},
		{"nil changes", "u1", &models.PushRequest{}},
		{"missing todos", "u1", &models.PushRequest{Changes: map[string]*models.ChangeSet{
			models.CollectionCategories: created(),
		}}},
		{"null change set", "u1", &models.PushRequest{Changes: map[string]*models.ChangeSet{
			models.CollectionCategories: created(), models.CollectionTodos: nil,
		}}},
		{"unknown collection", "u1", func() *models.PushRequest {
			r := full()
			r.Changes["notes"] = created()
			return r
		}()},
		{"record without id", "u1", pushOf(nil, created(models.Raw{"title": "x", "updated_at": int64(1)}))},
		{"bad timestamp", "u1", pushOf(nil, updated(models.Raw{"id": "t1", "updated_at": "yesterday"}))},
		{"empty deleted id", "u1", pushOf(deleted(""), nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			_, err := h.svc.Push(context.Background(), tt.owner, tt.req)
			assert.ErrorIs(t, err, common.ErrMalformedRequest)
			require.NoError(t, h.mock.ExpectationsWereMet(), "no transaction may start")
		})
	}
}

func TestPush_AuxiliaryFailuresDoNotFailPush(t *testing.T) {
	h := newHarness(t)
	h.svc.tracker = failingTracker{}
	h.archiver.err = errors.New("bucket missing")
	h.store.put("todos", todo("t1", "u1", 1, 1, "a"))
	h.expectTx(true)

	res, err := h.svc.Push(context.Background(), "u1", pushOf(nil, updated(rawTodo("t1", 2, "b"))))
	require.NoError(t, err)
	assert.True(t, res.OK)
	require.Len(t, res.Conflicts, 1)
}

func TestPush_RecordsStatus(t *testing.T) {
	h := newHarness(t)
	h.store.put("todos", todo("t1", "u1", 1, 1, "a"))
	h.expectTx(true)

	last := int64(4000)
	req := pushOf(created(models.Raw{"id": "c1", "name": "n", "updated_at": int64(3)}), updated(rawTodo("t1", 2, "b")))
	req.LastPulledAt = &last

	_, err := h.svc.Push(context.Background(), "u1", req)
	require.NoError(t, err)

	st, err := h.svc.Status(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), st.LastPushedAt)
	assert.Equal(t, int64(2), st.LastPushRecords)
	assert.Equal(t, int64(1), st.LastPushConflicts)
}
