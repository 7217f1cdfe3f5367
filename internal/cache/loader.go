package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/TemirB/shop-dashboard/internal/observability"
)

type LookupSource string

const (
	SourceCache LookupSource = "cache"
	SourceDB    LookupSource = "db"
)

type LookupStats struct {
	Source  LookupSource
	CacheMs float64
	DBMs    float64
}

// Loader serves values read-through: a hit is decoded from the cache, a
// miss is computed once per key at a time and stored unconditionally.
//
// Evict and the store step of a computation are serialized by one epoch
// shared by all keys: a computation that overlaps any eviction does not
// write its result back, so an entry in the cache is never older than the
// last eviction.
type Loader struct {
	cache   Cache
	group   singleflight.Group
	mu      sync.RWMutex
	epoch   uint64
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewLoader(c Cache, logger *zap.Logger, metrics observability.Metrics) *Loader {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Loader{
		cache:   c,
		logger:  logger,
		metrics: metrics,
	}
}

// Load returns the value cached under key, or computes, stores and returns it.
func Load[T any](ctx context.Context, l *Loader, key string, compute func(context.Context) (T, error)) (T, LookupStats, error) {
	var (
		zero T
		st   LookupStats
	)

	tCacheStart := time.Now()
	if v, ok := decodeHit[T](ctx, l, key); ok {
		st.Source = SourceCache
		st.CacheMs = convertToMs(tCacheStart)
		l.metrics.IncCacheHit()
		l.metrics.ObserveLookup(Family(key), string(st.Source), st.CacheMs, 0)
		return v, st, nil
	}

	l.metrics.IncCacheMiss()
	st.CacheMs = convertToMs(tCacheStart)

	tDbStart := time.Now()
	res, err, shared := l.group.Do(key, func() (any, error) {
		return l.compute(ctx, key, func(ctx context.Context) (any, error) { return compute(ctx) })
	})
	if err != nil {
		l.logger.Error("Can't compute cached value",
			zap.String("key", key),
			zap.Error(err),
		)
		return zero, st, err
	}

	st.Source = SourceDB
	st.DBMs = convertToMs(tDbStart)
	l.metrics.ObserveLookup(Family(key), string(st.Source), st.CacheMs, st.DBMs)
	l.logger.Debug("Value computed on cache miss",
		zap.String("key", key),
		zap.Bool("shared", shared),
		zap.Float64("db_ms", st.DBMs),
	)

	v, ok := res.(T)
	if !ok {
		return zero, st, fmt.Errorf("cache: unexpected value type %T for %s", res, key)
	}
	return v, st, nil
}

func decodeHit[T any](ctx context.Context, l *Loader, key string) (T, bool) {
	var v T
	raw, ok, err := l.cache.Get(ctx, key)
	if err != nil {
		l.logger.Warn("Error while reading cache, falling back to store",
			zap.String("key", key),
			zap.Error(err),
		)
		return v, false
	}
	if !ok {
		return v, false
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		l.logger.Warn("Dropping undecodable cache entry",
			zap.String("key", key),
			zap.Error(err),
		)
		return v, false
	}
	return v, true
}

func (l *Loader) compute(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	l.mu.RLock()
	started := l.epoch
	l.mu.RUnlock()

	// Shared by every caller waiting on this key, so one caller going away
	// must not abort it.
	ctx = context.WithoutCancel(ctx)
	v, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cache: encode %s: %w", key, err)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.epoch != started {
		l.logger.Debug("Skipping cache store, invalidated during computation", zap.String("key", key))
		return v, nil
	}
	if err := l.cache.Set(ctx, key, string(payload)); err != nil {
		l.logger.Warn("Error while set value in cache",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return v, nil
}

// Evict deletes keys and makes in-flight computations skip their store.
func (l *Loader) Evict(ctx context.Context, keys ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.epoch++
	for _, k := range keys {
		l.group.Forget(k)
	}
	return l.cache.Delete(ctx, keys...)
}

func (l *Loader) Cache() Cache { return l.cache }

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
