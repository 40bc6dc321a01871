// Package server initializes and runs the sync server: it opens the store,
// applies migrations, wires the sync engine with its status tracker and
// ledger archive, and serves gRPC until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/todosync/internal/logging"
	"github.com/dmitrijs2005/todosync/internal/server/archive"
	"github.com/dmitrijs2005/todosync/internal/server/config"
	"github.com/dmitrijs2005/todosync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todosync/internal/server/services"
	"github.com/dmitrijs2005/todosync/internal/server/status"
	"github.com/dmitrijs2005/todosync/internal/server/store"

	gs "github.com/dmitrijs2005/todosync/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	tracker     status.Tracker
	syncService *services.SyncService
}

var (
	openDB = store.Open

	newRepoManager = repomanager.NewPostgresRepositoryManager

	newS3Archiver = func(ctx context.Context, c *config.Config) (archive.Archiver, error) {
		return archive.NewS3Archiver(ctx, c)
	}
)

// NewApp connects every backend named in c. Redis and S3 are optional:
// without RedisURL status is kept in memory, without S3Bucket ledgers are
// not archived.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(logging.NewWriter(c.LogFile), nil)))

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	var tracker status.Tracker = status.NewMemoryTracker()
	if c.RedisURL != "" {
		rt, err := status.NewRedisTracker(ctx, c.RedisURL)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("status tracker init error: %w", err)
		}
		tracker = rt
	}

	var archiver archive.Archiver = archive.Nop{}
	if c.S3Bucket != "" {
		archiver, err = newS3Archiver(ctx, c)
		if err != nil {
			_ = tracker.Close()
			_ = db.Close()
			return nil, fmt.Errorf("ledger archive init error: %w", err)
		}
	}

	logger.Info(ctx, "backends ready",
		"redis", c.RedisURL != "", "archive_bucket", c.S3Bucket)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		tracker:     tracker,
		syncService: services.NewSyncService(db, rm, tracker, archiver, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.syncService, app.config.SecretKey, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a shutdown signal arrives, then
// releases the backends.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close()
}

func (app *App) close() {
	ctx := context.Background()
	if err := app.tracker.Close(); err != nil {
		app.logger.Warn(ctx, "status tracker close", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}
