package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/todosync/internal/common"
	pb "github.com/dmitrijs2005/todosync/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Pull(ctx context.Context, req *pb.PullRequest) (*pb.PullResponse, error) {
	ownerID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	res, err := s.sync.Pull(ctx, ownerID, req.LastPulledAt)
	if err != nil {
		return nil, s.toStatus(ctx, "pull", err)
	}

	return &pb.PullResponse{Changes: changesToPB(res.Changes), Timestamp: res.Timestamp}, nil
}

// Push applies a client's local changes in one transaction. A request with a
// missing or invalid change set fails with codes.InvalidArgument. A push that
// fails after validation is rolled back and surfaces as codes.Internal; the
// response carries Ok=true only for a committed push and is never sent with
// Ok=false.
func (s *GRPCServer) Push(ctx context.Context, req *pb.PushRequest) (*pb.PushResponse, error) {
	ownerID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	res, err := s.sync.Push(ctx, ownerID, pushFromPB(req))
	if err != nil {
		return nil, s.toStatus(ctx, "push", err)
	}

	out := &pb.PushResponse{Ok: res.OK, PushId: res.PushID, Conflicts: make([]*pb.ConflictResolution, 0, len(res.Conflicts))}
	for _, c := range res.Conflicts {
		out.Conflicts = append(out.Conflicts, &pb.ConflictResolution{
			RecordId:        c.RecordID,
			Collection:      c.Collection,
			Winner:          string(c.Winner),
			LocalUpdatedAt:  c.LocalUpdatedAt,
			RemoteUpdatedAt: c.RemoteUpdatedAt,
			Reason:          c.Reason,
		})
	}
	return out, nil
}

func (s *GRPCServer) Status(ctx context.Context, req *pb.StatusRequest) (*pb.StatusResponse, error) {
	ownerID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	st, err := s.sync.Status(ctx, ownerID)
	if err != nil {
		return nil, s.toStatus(ctx, "status", err)
	}

	return &pb.StatusResponse{
		OwnerId:           st.OwnerID,
		LastPulledAt:      st.LastPulledAt,
		LastPullRecords:   st.LastPullRecords,
		LastPushedAt:      st.LastPushedAt,
		LastPushRecords:   st.LastPushRecords,
		LastPushConflicts: st.LastPushConflicts,
	}, nil
}

// toStatus maps engine errors to gRPC codes. Store failures are logged and
// reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrMalformedRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.Error(ctx, op+" failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
