package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

//go:generate mockgen -source internal/cache/cache.go -destination=internal/cache/cache_mock_test.go -package=cache

// Cache stores serialized payloads by key. Entries have no TTL and live
// until they are deleted by an invalidation.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Has(ctx context.Context, key string) (bool, error)
}

// Memory is a process-local cache. size bounds the number of keys; when it
// is reached the least recently used entry is dropped, which only costs a
// recomputation on the next read. Entries never expire; the default
// CACHE_CAP is far above the handful of fixed listing and report keys, so
// only per-id entries are dropped in practice.
type Memory struct {
	lru *lru.Cache[string, string]
}

func NewMemory(size int) (*Memory, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("memory cache: %w", err)
	}
	return &Memory{lru: c}, nil
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.lru.Get(key)
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.lru.Add(key, value)
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.lru.Remove(k)
	}
	return nil
}

func (m *Memory) Has(_ context.Context, key string) (bool, error) {
	return m.lru.Contains(key), nil
}

func (m *Memory) Len() int { return m.lru.Len() }
