package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todosync/internal/common"
	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/dmitrijs2005/todosync/internal/server/schema"
	"golang.org/x/sync/errgroup"
)

// Pull assembles every collection's changes since lastPulledAt. The
// collections are read concurrently and are not transactionally linked.
// The returned timestamp is taken after the reads complete and is the
// checkpoint for the client's next pull.
func (s *SyncService) Pull(ctx context.Context, ownerID string, lastPulledAt *int64) (*models.PullResult, error) {
	if ownerID == "" {
		return nil, errNoOwner
	}
	if lastPulledAt != nil && *lastPulledAt < 0 {
		return nil, fmt.Errorf("%w: negative lastPulledAt %d", common.ErrMalformedRequest, *lastPulledAt)
	}

	sets := make([]models.ChangeSet, len(schema.Entities))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range schema.Entities {
		g.Go(func() error {
			cs, err := ChangesSince(gctx, s.repomanager.Records(s.db, e), e, ownerID, lastPulledAt)
			if err != nil {
				return fmt.Errorf("changes of %s: %w", e.Collection, err)
			}
			sets[i] = cs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &models.PullResult{
		Changes:   make(map[string]models.ChangeSet, len(sets)),
		Timestamp: s.now().UnixMilli(),
	}
	total := 0
	for i, e := range schema.Entities {
		res.Changes[e.Collection] = sets[i]
		total += sets[i].Len()
	}

	s.logger.Info(ctx, "pull served",
		"owner", ownerID, "bootstrap", lastPulledAt == nil, "records", total, "timestamp", res.Timestamp)

	if err := s.tracker.RecordPull(ctx, ownerID, res.Timestamp, total); err != nil {
		s.logger.Warn(ctx, "status tracker failed", "owner", ownerID, "error", err)
	}

	return res, nil
}
