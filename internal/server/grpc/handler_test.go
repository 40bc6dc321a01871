package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/todosync/internal/common"
	"github.com/dmitrijs2005/todosync/internal/logging"
	pb "github.com/dmitrijs2005/todosync/internal/proto"
	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/testing/protocmp"
)

// ---- fakes ----

type fakeSync struct {
	pullRes *models.PullResult
	pullErr error
	pushRes *models.PushResult
	pushErr error
	status  models.SyncStatus
	statErr error

	gotOwner string
	gotSince *int64
	gotPush  *models.PushRequest
}

func (f *fakeSync) Pull(ctx context.Context, ownerID string, lastPulledAt *int64) (*models.PullResult, error) {
	f.gotOwner, f.gotSince = ownerID, lastPulledAt
	return f.pullRes, f.pullErr
}

func (f *fakeSync) Push(ctx context.Context, ownerID string, req *models.PushRequest) (*models.PushResult, error) {
	f.gotOwner, f.gotPush = ownerID, req
	return f.pushRes, f.pushErr
}

func (f *fakeSync) Status(ctx context.Context, ownerID string) (models.SyncStatus, error) {
	f.gotOwner = ownerID
	return f.status, f.statErr
}

// ---- helpers ----

func newServer(s SyncService) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.NopLogger{}, s, "k", time.Second)
}

func asOwner(id string) context.Context {
	return context.WithValue(context.Background(), userIDKey, id)
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeSync{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestHandlers_RequireOwner(t *testing.T) {
	s := newServer(&fakeSync{})
	ctx := context.Background()

	_, err := s.Pull(ctx, &pb.PullRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.Push(ctx, &pb.PushRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.Status(ctx, &pb.StatusRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestPull_OK(t *testing.T) {
	cs := models.NewChangeSet()
	cs.Created = []models.Raw{{
		"id": "t1", "title": "a", "description": "", "is_completed": false,
		"category_id": nil, "created_at": int64(5), "updated_at": int64(6),
	}}
	f := &fakeSync{pullRes: &models.PullResult{
		Changes: map[string]models.ChangeSet{
			models.CollectionTodos:      cs,
			models.CollectionCategories: {},
		},
		Timestamp: 42,
	}}
	s := newServer(f)

	since := int64(7)
	resp, err := s.Pull(asOwner("u1"), &pb.PullRequest{LastPulledAt: &since})
	require.NoError(t, err)

	assert.Equal(t, "u1", f.gotOwner)
	assert.Equal(t, &since, f.gotSince)

	created := int64(5)
	want := &pb.PullResponse{
		Changes: &pb.Changes{
			Categories: &pb.CategoryChanges{Deleted: []string{}},
			Todos: &pb.TodoChanges{
				Created: []*pb.Todo{{Id: "t1", Title: "a", CreatedAt: &created, UpdatedAt: 6}},
				Deleted: []string{},
			},
		},
		Timestamp: 42,
	}
	assert.Empty(t, cmp.Diff(want, resp, protocmp.Transform()))
}

func TestPush_OK(t *testing.T) {
	f := &fakeSync{pushRes: &models.PushResult{OK: true, PushID: "p1", Conflicts: []models.ConflictResolution{{
		RecordID: "t1", Collection: "todos", Winner: models.WinnerLocal, LocalUpdatedAt: 2, RemoteUpdatedAt: 1, Reason: "r",
	}}}}
	s := newServer(f)

	last := int64(3)
	req := &pb.PushRequest{
		Changes: &pb.Changes{
			Todos: &pb.TodoChanges{Created: []*pb.Todo{{Id: "t1", UpdatedAt: 9}}, Deleted: []string{"t9"}},
		},
		LastPulledAt: &last,
	}
	resp, err := s.Push(asOwner("u1"), req)
	require.NoError(t, err)

	assert.True(t, resp.GetOk())
	assert.Equal(t, "p1", resp.GetPushId())
	require.Len(t, resp.GetConflicts(), 1)
	assert.Equal(t, "local", resp.Conflicts[0].GetWinner())
	assert.Equal(t, "t1", resp.Conflicts[0].GetRecordId())

	require.NotNil(t, f.gotPush)
	assert.Equal(t, &last, f.gotPush.LastPulledAt)
	assert.Equal(t, []models.Raw{{
		"id": "t1", "title": "", "description": "", "is_completed": false,
		"category_id": nil, "updated_at": int64(9),
	}}, f.gotPush.Changes["todos"].Created)
	assert.Equal(t, []string{"t9"}, f.gotPush.Changes["todos"].Deleted)
	_, present := f.gotPush.Changes["categories"]
	assert.False(t, present, "absent change sets do not reach the engine")
}

func TestPush_NilChangesStayNil(t *testing.T) {
	f := &fakeSync{pushErr: fmt.Errorf("%w: missing changes", common.ErrMalformedRequest)}
	s := newServer(f)

	_, err := s.Push(asOwner("u1"), &pb.PushRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Nil(t, f.gotPush.Changes)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"malformed", fmt.Errorf("%w: bad", common.ErrMalformedRequest), codes.InvalidArgument},
		{"unauthorized", common.ErrorUnauthorized, codes.Unauthenticated},
		{"canceled", context.Canceled, codes.Canceled},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
		{"store", errors.New("connection refused"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(&fakeSync{pullErr: tt.err, pushErr: tt.err, statErr: tt.err})

			_, err := s.Pull(asOwner("u1"), &pb.PullRequest{})
			assert.Equal(t, tt.want, status.Code(err))
			_, err = s.Push(asOwner("u1"), &pb.PushRequest{})
			assert.Equal(t, tt.want, status.Code(err))
			_, err = s.Status(asOwner("u1"), &pb.StatusRequest{})
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}

func TestInternalErrorsHideDetail(t *testing.T) {
	s := newServer(&fakeSync{pushErr: errors.New("pq: password authentication failed")})
	_, err := s.Push(asOwner("u1"), &pb.PushRequest{})
	assert.Equal(t, "internal error", status.Convert(err).Message())
}

func TestStatus_OK(t *testing.T) {
	f := &fakeSync{status: models.SyncStatus{OwnerID: "u1", LastPulledAt: 10, LastPushConflicts: 2}}
	s := newServer(f)

	resp, err := s.Status(asOwner("u1"), &pb.StatusRequest{})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(&pb.StatusResponse{OwnerId: "u1", LastPulledAt: 10, LastPushConflicts: 2}, resp, protocmp.Transform()))
}
