// SPDX-License-Identifier: MIT

// Package pathcache memoises search results per graph snapshot.
//
// Keys embed the snapshot ID, so a rebuilt graph never serves paths computed
// on its predecessor; stale entries simply age out (FIFO eviction in Memory,
// TTL in Redis). A miss is reported as ErrCacheMiss.
package pathcache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/waypath/search"
)

// ErrCacheMiss indicates that no result is stored under the key.
var ErrCacheMiss = errors.New("pathcache: miss")

// Cache stores search results by key. Implementations are safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (search.Result, error)
	Set(ctx context.Context, key string, res search.Result) error
}

// Key builds the cache key for one request on one snapshot.
// Node IDs are quoted so that separators inside IDs cannot collide.
func Key(snapshot uuid.UUID, mode search.Mode, start, goal string) string {
	return fmt.Sprintf("%s:%s:%s:%s", snapshot, mode, strconv.Quote(start), strconv.Quote(goal))
}
