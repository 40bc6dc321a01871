package status

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "syncstatus:"
	// DefaultTTL bounds how long an idle owner's status is kept.
	DefaultTTL = 30 * 24 * time.Hour
)

// hash fields
const (
	fieldPulledAt      = "pulled_at"
	fieldPullRecords   = "pull_records"
	fieldPushedAt      = "pushed_at"
	fieldPushRecords   = "push_records"
	fieldPushConflicts = "push_conflicts"
)

// RedisTracker stores each owner's status as a Redis hash with a TTL that is
// refreshed on every write.
type RedisTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTracker connects to redisURL and checks the connection.
func NewRedisTracker(ctx context.Context, redisURL string) (*RedisTracker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisTrackerWithClient(client, DefaultTTL), nil
}

// NewRedisTrackerWithClient wraps an existing client.
func NewRedisTrackerWithClient(client *redis.Client, ttl time.Duration) *RedisTracker {
	return &RedisTracker{client: client, ttl: ttl}
}

func (r *RedisTracker) key(ownerID string) string {
	return keyPrefix + ownerID
}

func (r *RedisTracker) write(ctx context.Context, ownerID string, values ...any) error {
	key := r.key(ownerID)
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, values...)
		p.Expire(ctx, key, r.ttl)
		return nil
	})
	return err
}

func (r *RedisTracker) RecordPull(ctx context.Context, ownerID string, checkpoint int64, records int) error {
	if err := r.write(ctx, ownerID,
		fieldPulledAt, checkpoint,
		fieldPullRecords, records,
	); err != nil {
		return fmt.Errorf("record pull: %w", err)
	}
	return nil
}

func (r *RedisTracker) RecordPush(ctx context.Context, ownerID string, at int64, records, conflicts int) error {
	if err := r.write(ctx, ownerID,
		fieldPushedAt, at,
		fieldPushRecords, records,
		fieldPushConflicts, conflicts,
	); err != nil {
		return fmt.Errorf("record push: %w", err)
	}
	return nil
}

func (r *RedisTracker) Get(ctx context.Context, ownerID string) (models.SyncStatus, error) {
	vals, err := r.client.HGetAll(ctx, r.key(ownerID)).Result()
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("read status: %w", err)
	}

	s := models.SyncStatus{OwnerID: ownerID}
	for field, dst := range map[string]*int64{
		fieldPulledAt:      &s.LastPulledAt,
		fieldPullRecords:   &s.LastPullRecords,
		fieldPushedAt:      &s.LastPushedAt,
		fieldPushRecords:   &s.LastPushRecords,
		fieldPushConflicts: &s.LastPushConflicts,
	} {
		raw, ok := vals[field]
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.SyncStatus{}, fmt.Errorf("status field %s: %w", field, err)
		}
		*dst = n
	}
	return s, nil
}

// Close closes the Redis connection.
func (r *RedisTracker) Close() error {
	return r.client.Close()
}
