package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// namespace prefixes every key stored in redis.
const namespace = "dashboard"

// Redis is a Store backed by a redis server. Values never expire.
type Redis struct {
	client redis.UniversalClient // works with both single and cluster
}

// NewRedis returns a Redis store using client.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

func (r *Redis) key(key string) string { return namespace + ":" + key }

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cannot read preference %q: %w", key, err)
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("cannot write preference %q: %w", key, err)
	}
	return nil
}

// Close releases the redis connections.
func (r *Redis) Close() error { return r.client.Close() }
