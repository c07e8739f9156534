// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// CacheKey identifies one cached query result: the operation name plus the
// request it built, after defaults were applied.
type CacheKey struct {
	Operation string
	Method    string
	URL       string
}

func (k CacheKey) String() string {
	return k.Operation + " " + k.Method + " " + k.URL
}

// FetchFunc performs the request behind a cache miss.
type FetchFunc func(ctx context.Context) ([]byte, error)

type cacheEntry struct {
	key        CacheKey
	body       []byte
	tags       []Tag
	stale      bool
	fetchedAt  time.Time
	accessedAt time.Time
}

// Cache stores query results with two indices: results by key and keys by
// tag. It is safe for concurrent use; the mutex is never held across a fetch.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	byTag   map[Tag]map[string]struct{}

	// tagGen counts invalidations per tag and epoch counts resets. A fetch
	// that overlaps either stores its result as stale.
	tagGen map[Tag]uint64
	epoch  uint64

	group singleflight.Group
	now   func() time.Time

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// CacheOption customises a [Cache].
type CacheOption func(*Cache)

// WithCacheMetrics records lookups and invalidations on m.
func WithCacheMetrics(m *metrics.Metrics) CacheOption {
	return func(c *Cache) {
		c.metrics = m
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

func NewCache(logger *logger.Logger, opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[string]*cacheEntry),
		byTag:   make(map[Tag]map[string]struct{}),
		tagGen:  make(map[Tag]uint64),
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type fetchSnapshot struct {
	epoch uint64
	gens  []uint64
}

// flightKey scopes fetch sharing to one epoch and one generation of every
// tag, so a read issued after Reset or Invalidate never joins an older fetch.
func (s fetchSnapshot) flightKey(k string) string {
	var b strings.Builder
	b.WriteString(k)
	b.WriteString("#")
	b.WriteString(strconv.FormatUint(s.epoch, 10))
	for _, gen := range s.gens {
		b.WriteString(":")
		b.WriteString(strconv.FormatUint(gen, 10))
	}
	return b.String()
}

// GetOrFetch returns the fresh cached result for key, or calls fetch when the
// entry is missing or stale. Concurrent callers for the same key share one
// fetch.
//
// The fetch is detached from ctx: if ctx ends first the caller gets ctx.Err()
// while the request completes and still fills the cache. A failed fetch
// stores nothing and leaves a stale entry stale.
func (c *Cache) GetOrFetch(ctx context.Context, key CacheKey, tags []Tag, fetch FetchFunc) ([]byte, error) {
	k := key.String()

	c.mu.Lock()
	e, ok := c.entries[k]
	if ok && !e.stale {
		e.accessedAt = c.now()
		body := e.body
		c.mu.Unlock()

		c.metrics.RecordLookup(key.Operation, "hit")
		return body, nil
	}
	snap := c.snapshotLocked(tags)
	c.mu.Unlock()

	if ok {
		c.metrics.RecordLookup(key.Operation, "stale")
	} else {
		c.metrics.RecordLookup(key.Operation, "miss")
	}

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(snap.flightKey(k), func() (any, error) {
		body, err := fetch(detached)
		if err != nil {
			return nil, err
		}
		c.store(key, tags, body, snap)
		return body, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// snapshotLocked must be called with c.mu held.
func (c *Cache) snapshotLocked(tags []Tag) fetchSnapshot {
	snap := fetchSnapshot{epoch: c.epoch, gens: make([]uint64, len(tags))}
	for i, tag := range tags {
		snap.gens[i] = c.tagGen[tag]
	}
	return snap
}

func (c *Cache) store(key CacheKey, tags []Tag, body []byte, snap fetchSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snap.epoch != c.epoch {
		// reset while in flight: the result belongs to a previous session
		return
	}
	stale := false
	for i, tag := range tags {
		if c.tagGen[tag] != snap.gens[i] {
			stale = true
			break
		}
	}

	k := key.String()
	if old, ok := c.entries[k]; ok {
		if stale && !old.stale {
			// a later read already stored a fresh result
			return
		}
		c.unindex(k, old.tags)
	}

	now := c.now()
	c.entries[k] = &cacheEntry{
		key:        key,
		body:       body,
		tags:       append([]Tag(nil), tags...),
		stale:      stale,
		fetchedAt:  now,
		accessedAt: now,
	}
	for _, tag := range tags {
		keys, ok := c.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.byTag[tag] = keys
		}
		keys[k] = struct{}{}
	}
	c.metrics.SetCacheEntries(len(c.entries))
}

func (c *Cache) unindex(k string, tags []Tag) {
	for _, tag := range tags {
		keys := c.byTag[tag]
		delete(keys, k)
		if len(keys) == 0 {
			delete(c.byTag, tag)
		}
	}
}

// Invalidate marks every result providing one of tags as stale and returns
// how many entries changed state. Nothing is re-fetched here.
func (c *Cache) Invalidate(tags ...Tag) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, tag := range tags {
		c.tagGen[tag]++

		marked := 0
		for k := range c.byTag[tag] {
			if e, ok := c.entries[k]; ok && !e.stale {
				e.stale = true
				marked++
			}
		}
		c.metrics.RecordInvalidation(string(tag), marked)
		total += marked
	}

	if total > 0 {
		c.logger.Debug().Interface("tags", tags).Int("entries", total).Msg("cache entries marked stale")
	}
	return total
}

// Sweep drops entries not read for longer than maxIdle and returns how many
// were removed.
func (c *Cache) Sweep(maxIdle time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if now.Sub(e.accessedAt) <= maxIdle {
			continue
		}
		c.unindex(k, e.tags)
		delete(c.entries, k)
		removed++
	}

	if removed > 0 {
		c.metrics.SetCacheEntries(len(c.entries))
		c.logger.Debug().Int("entries", removed).Dur("max_idle", maxIdle).Msg("idle cache entries swept")
	}
	return removed
}

// Reset drops every entry. Fetches in flight when Reset is called do not
// store their results, and later reads start their own fetch.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.byTag = make(map[Tag]map[string]struct{})
	c.epoch++
	c.metrics.SetCacheEntries(0)
}

// Stale reports whether key is cached and, if so, whether it is stale.
func (c *Cache) Stale(key CacheKey) (stale bool, cached bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return false, false
	}
	return e.stale, true
}

// Len returns the number of cached entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Keys returns the keys currently indexed under tag.
func (c *Cache) Keys(tag Tag) []CacheKey {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]CacheKey, 0, len(c.byTag[tag]))
	for k := range c.byTag[tag] {
		keys = append(keys, c.entries[k].key)
	}
	return keys
}
