package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory is an in-process LRU cache whose entries share one expiry.
type Memory struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemory builds a Memory cache holding at most maxEntries items that
// expire ttl after they were last written. A non-positive maxEntries means
// unbounded and a non-positive ttl means entries only leave by eviction.
func NewMemory(maxEntries int, ttl time.Duration) *Memory {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &Memory{lru: expirable.NewLRU[string, []byte](maxEntries, nil, ttl)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := m.lru.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	return append([]byte(nil), value...), nil
}

// Set stores value. The cache-wide ttl given to NewMemory applies; the
// per-call ttl is ignored.
func (m *Memory) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.lru.Add(key, append([]byte(nil), value...))
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Name() string { return "memory" }

// Len reports the number of stored entries. Expired entries are dropped in
// the background, so they may be counted briefly.
func (m *Memory) Len() int {
	return m.lru.Len()
}
