// SPDX-License-Identifier: MIT

package pathcache

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/waypath/search"
)

// DefaultMemoryCapacity is the entry limit used when NewMemory gets 0.
const DefaultMemoryCapacity = 1024

// Memory is an in-process cache holding at most capacity entries.
// The oldest insertion is evicted first.
type Memory struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]search.Result
	order    []string
}

// NewMemory returns an empty Memory cache. capacity 0 selects
// DefaultMemoryCapacity; a negative capacity panics.
func NewMemory(capacity int) *Memory {
	if capacity < 0 {
		panic(fmt.Sprintf("pathcache: NewMemory(%d)", capacity))
	}
	if capacity == 0 {
		capacity = DefaultMemoryCapacity
	}
	return &Memory{capacity: capacity, entries: make(map[string]search.Result)}
}

// Get returns a copy of the stored result or ErrCacheMiss.
func (m *Memory) Get(_ context.Context, key string) (search.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, ok := m.entries[key]
	if !ok {
		return search.Result{}, ErrCacheMiss
	}
	return clone(res), nil
}

// Set stores a copy of res, evicting the oldest entry when full.
func (m *Memory) Set(_ context.Context, key string, res search.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; !ok {
		if len(m.order) >= m.capacity {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.entries, oldest)
		}
		m.order = append(m.order, key)
	}
	m.entries[key] = clone(res)
	return nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// clone detaches the slices so callers cannot mutate cached paths.
func clone(res search.Result) search.Result {
	res.Nodes = slices.Clone(res.Nodes)
	res.Positions = slices.Clone(res.Positions)
	return res
}
