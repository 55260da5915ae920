package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/driftcli/drift/pkg/errors"
)

// redisKey is the list key holding history entries, newest first.
const redisKey = "drift:history"

// RedisOptions configures the redis history backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int

	// TTL is reset on every Put; 0 keeps the history forever.
	TTL time.Duration
}

// RedisStore keeps history in a redis list. Entries are pushed to the
// head, so LRange order is already newest-first.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect redis at %s", opts.Addr)
	}
	return &RedisStore{client: client, ttl: opts.TTL}, nil
}

// Put records an entry at the head of the list and refreshes the TTL.
func (s *RedisStore) Put(ctx context.Context, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal entry")
	}
	if err := s.client.LPush(ctx, redisKey, data).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "push entry")
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, redisKey, s.ttl).Err(); err != nil {
			return errors.Wrap(errors.ErrCodeStore, err, "refresh history ttl")
		}
	}
	return nil
}

// List returns up to limit entries, newest first.
func (s *RedisStore) List(ctx context.Context, limit int) ([]Entry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	vals, err := s.client.LRange(ctx, redisKey, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list entries")
	}

	entries := make([]Entry, 0, len(vals))
	for _, v := range vals {
		var e Entry
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Clear removes the whole history list.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, redisKey).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "clear history")
	}
	return nil
}

// Close closes the redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
