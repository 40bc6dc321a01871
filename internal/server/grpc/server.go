// Package grpc exposes the sync engine over gRPC: the server lifecycle, the
// access token interceptor and the request handlers.
package grpc

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dmitrijs2005/todosync/internal/logging"
	pb "github.com/dmitrijs2005/todosync/internal/proto"
	"github.com/dmitrijs2005/todosync/internal/server/models"
	"google.golang.org/grpc"
)

// SyncService is the engine the handlers delegate to.
type SyncService interface {
	Pull(ctx context.Context, ownerID string, lastPulledAt *int64) (*models.PullResult, error)
	Push(ctx context.Context, ownerID string, req *models.PushRequest) (*models.PushResult, error)
	Status(ctx context.Context, ownerID string) (models.SyncStatus, error)
}

type GRPCServer struct {
	pb.UnimplementedSyncServiceServer
	address         string
	sync            SyncService
	logger          logging.Logger
	jwtSecret       []byte
	shutdownTimeout time.Duration
}

// NewGRPCServer builds a server for address a. shutdownTimeout bounds the
// graceful stop; after it in-flight calls are cut.
func NewGRPCServer(a string, l logging.Logger, sync SyncService, secretKey string, shutdownTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		sync:            sync,
		jwtSecret:       []byte(secretKey),
		shutdownTimeout: shutdownTimeout,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterSyncServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		s.stop(srv)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (s *GRPCServer) stop(srv *grpc.Server) {
	if s.shutdownTimeout <= 0 {
		srv.GracefulStop()
		return
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(s.shutdownTimeout):
		s.logger.Warn(context.Background(), "graceful stop timed out, closing connections")
		srv.Stop()
	}
}
