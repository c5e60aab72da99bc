package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/2beens/blogdesk/internal/telemetry/metrics"
)

const (
	DefaultStaleTime = 5 * time.Minute
	DefaultSizeMB    = 16

	megabyte = 1024 * 1024
)

type Config struct {
	SizeMB int
	// Timer drives entry expiry, nil uses the wall clock
	Timer freecache.Timer
}

// QueryCache keeps fetched query results for their freshness window and makes sure
// there is at most one in-flight fetch per key. Safe for concurrent use.
type QueryCache struct {
	store   *freecache.Cache
	timer   freecache.Timer
	group   singleflight.Group
	metrics *metrics.Manager

	mu sync.Mutex
	// entries over freecache's per-entry limit (about 1/1024 of its size)
	large map[string]largeEntry
	// only keys with a fetch in flight are tracked
	keys map[string]*keyState
}

type largeEntry struct {
	value    []byte
	expireAt uint32
}

type keyState struct {
	// bumped on invalidation, so a fetch started before it won't store its result
	epoch    uint64
	inflight int
}

type wallClock struct{}

func (wallClock) Now() uint32 {
	return uint32(time.Now().Unix())
}

func NewQueryCache(cfg Config, metricsManager *metrics.Manager) *QueryCache {
	if cfg.SizeMB <= 0 {
		cfg.SizeMB = DefaultSizeMB
	}
	if cfg.Timer == nil {
		cfg.Timer = wallClock{}
	}

	return &QueryCache{
		store:   freecache.NewCacheCustomTimer(cfg.SizeMB*megabyte, cfg.Timer),
		timer:   cfg.Timer,
		metrics: metricsManager,
		large:   make(map[string]largeEntry),
		keys:    make(map[string]*keyState),
	}
}

// Fetch returns the cached value for key while it is fresh, otherwise calls fn. Concurrent
// calls for the same key share one fn call. Errors are never cached. A staleTime under one
// second disables storing, only the in-flight dedup applies then.
func Fetch[T any](
	ctx context.Context,
	c *QueryCache,
	key Key,
	staleTime time.Duration,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	var value T
	storeKey := key.String()

	if cachedBytes, ok := c.get(storeKey); ok {
		err := json.Unmarshal(cachedBytes, &value)
		if err == nil {
			log.Tracef("query [%s] served from cache", storeKey)
			c.countHit()
			return value, nil
		}
		log.Errorf("failed to unmarshal cached query [%s]: %s", storeKey, err)
	}
	c.countMiss()

	epoch := c.acquire(storeKey)
	res, err, shared := c.group.Do(storeKey, func() (any, error) {
		// a flight for the same key may have landed since the lookup above
		if cachedBytes, ok := c.get(storeKey); ok {
			return cachedBytes, nil
		}

		log.Debugf("query [%s] not in cache, fetching", storeKey)
		fetched, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		valueBytes, err := json.Marshal(fetched)
		if err != nil {
			return nil, fmt.Errorf("marshal query [%s] result: %w", storeKey, err)
		}

		c.save(storeKey, valueBytes, staleTime, epoch)
		return valueBytes, nil
	})
	c.release(storeKey)
	if shared {
		c.countShared()
	}
	if err != nil {
		return value, err
	}

	// every caller decodes its own copy
	if err := json.Unmarshal(res.([]byte), &value); err != nil {
		return value, fmt.Errorf("unmarshal query [%s] result: %w", storeKey, err)
	}
	return value, nil
}

// Invalidate drops every entry whose key starts with prefix, and returns how many were dropped.
// In-flight fetches for those keys won't store their results.
func (c *QueryCache) Invalidate(prefix Key) int {
	var toDelete []string

	it := c.store.NewIterator()
	for entry := it.Next(); entry != nil; entry = it.Next() {
		storeKey := string(entry.Key)
		if parseKey(storeKey).HasPrefix(prefix) {
			toDelete = append(toDelete, storeKey)
		}
	}

	c.mu.Lock()
	for storeKey, state := range c.keys {
		if parseKey(storeKey).HasPrefix(prefix) {
			state.epoch++
			c.group.Forget(storeKey)
		}
	}
	now := c.timer.Now()
	for storeKey, entry := range c.large {
		if !parseKey(storeKey).HasPrefix(prefix) {
			continue
		}
		delete(c.large, storeKey)
		if !entry.expired(now) {
			toDelete = append(toDelete, storeKey)
		}
	}
	c.mu.Unlock()

	for _, storeKey := range toDelete {
		c.store.Del([]byte(storeKey))
	}

	if c.metrics != nil {
		c.metrics.CounterCacheInvalidations.Add(float64(len(toDelete)))
	}
	log.Debugf("invalidated %d queries with prefix [%s]", len(toDelete), prefix)

	return len(toDelete)
}

// Peek reports whether a fresh entry exists for key.
func (c *QueryCache) Peek(key Key) bool {
	_, ok := c.get(key.String())
	return ok
}

func (c *QueryCache) Len() int64 {
	c.mu.Lock()
	c.sweepLarge()
	large := len(c.large)
	c.mu.Unlock()
	return c.store.EntryCount() + int64(large)
}

// Close drops all entries, the cache is not meant to outlive the app.
func (c *QueryCache) Close() {
	c.store.Clear()
	c.mu.Lock()
	c.large = make(map[string]largeEntry)
	c.keys = make(map[string]*keyState)
	c.mu.Unlock()
}

func (c *QueryCache) get(storeKey string) ([]byte, bool) {
	if cachedBytes, err := c.store.Get([]byte(storeKey)); err == nil {
		return cachedBytes, true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.large[storeKey]
	if !ok {
		return nil, false
	}
	if entry.expired(c.timer.Now()) {
		delete(c.large, storeKey)
		return nil, false
	}
	return entry.value, true
}

// acquire registers a fetch for storeKey and returns the epoch it started in.
func (c *QueryCache) acquire(storeKey string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, ok := c.keys[storeKey]
	if !ok {
		state = &keyState{}
		c.keys[storeKey] = state
	}
	state.inflight++
	return state.epoch
}

func (c *QueryCache) release(storeKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state, ok := c.keys[storeKey]
	if !ok {
		return
	}
	state.inflight--
	if state.inflight <= 0 {
		delete(c.keys, storeKey)
	}
}

func (c *QueryCache) save(storeKey string, valueBytes []byte, staleTime time.Duration, epoch uint64) {
	expireSeconds := int(staleTime / time.Second)
	if expireSeconds <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if state, ok := c.keys[storeKey]; !ok || state.epoch != epoch {
		log.Debugf("query [%s] invalidated while in flight, result not cached", storeKey)
		return
	}

	err := c.store.Set([]byte(storeKey), valueBytes, expireSeconds)
	switch {
	case err == nil:
		delete(c.large, storeKey)
		log.Tracef("query [%s] cached for %s", storeKey, staleTime)
	case errors.Is(err, freecache.ErrLargeEntry):
		c.sweepLarge()
		c.large[storeKey] = largeEntry{
			value:    valueBytes,
			expireAt: c.timer.Now() + uint32(expireSeconds),
		}
		log.Debugf("query [%s] too large for the store (%d bytes), cached aside for %s", storeKey, len(valueBytes), staleTime)
	default:
		log.Errorf("failed to cache query [%s]: %s", storeKey, err)
	}
}

// sweepLarge drops expired large entries, c.mu must be held.
func (c *QueryCache) sweepLarge() {
	now := c.timer.Now()
	for storeKey, entry := range c.large {
		if entry.expired(now) {
			delete(c.large, storeKey)
		}
	}
}

func (e largeEntry) expired(now uint32) bool {
	return e.expireAt <= now
}

func (c *QueryCache) countHit() {
	if c.metrics != nil {
		c.metrics.CounterCacheHits.Inc()
	}
}

func (c *QueryCache) countMiss() {
	if c.metrics != nil {
		c.metrics.CounterCacheMisses.Inc()
	}
}

func (c *QueryCache) countShared() {
	if c.metrics != nil {
		c.metrics.CounterCacheShared.Inc()
	}
}
