// SPDX-License-Identifier: MIT

package pathcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/waypath/search"
)

const (
	// DefaultRedisPrefix namespaces keys written by Redis.
	DefaultRedisPrefix = "waypath:path:"
	// DefaultRedisTTL bounds how long an entry survives a rebuild.
	DefaultRedisTTL = 10 * time.Minute
)

// RedisOption configures a Redis cache.
type RedisOption func(*Redis)

// WithTTL sets the expiry of stored entries; 0 keeps them forever.
// Panics if ttl < 0.
func WithTTL(ttl time.Duration) RedisOption {
	if ttl < 0 {
		panic(fmt.Sprintf("pathcache: WithTTL(%s)", ttl))
	}
	return func(r *Redis) { r.ttl = ttl }
}

// WithPrefix sets the key namespace. Panics on an empty prefix.
func WithPrefix(prefix string) RedisOption {
	if prefix == "" {
		panic("pathcache: WithPrefix(\"\")")
	}
	return func(r *Redis) { r.prefix = prefix }
}

// Redis stores results as JSON strings in a shared Redis, so several
// processes serving the same topology share their work.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis wraps client. Defaults: DefaultRedisPrefix, DefaultRedisTTL.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{client: client, prefix: DefaultRedisPrefix, ttl: DefaultRedisTTL}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the stored result, ErrCacheMiss, or a transport/decoding error.
func (r *Redis) Get(ctx context.Context, key string) (search.Result, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return search.Result{}, ErrCacheMiss
		}
		return search.Result{}, fmt.Errorf("pathcache: GET %s: %w", key, err)
	}

	var res search.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return search.Result{}, fmt.Errorf("pathcache: decode %s: %w", key, err)
	}
	return res, nil
}

// Set stores res under key with the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, res search.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("pathcache: encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, r.prefix+key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("pathcache: SET %s: %w", key, err)
	}
	return nil
}
