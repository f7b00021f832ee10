package tracker

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/HeroTracker_Go/internal/metrics"
)

type cachedEntry[T any] struct {
	Version  string
	Value    *T
	CachedAt time.Time
}

// summaryCache is an expiring LRU of computed summaries.
// Entries written under an older CacheSchemaVersion are treated as misses.
type summaryCache[T any] struct {
	lru *expirable.LRU[string, *cachedEntry[T]]
}

func newSummaryCache[T any](size int, ttl time.Duration) *summaryCache[T] {
	if size < 1 {
		size = 1
	}
	return &summaryCache[T]{
		lru: expirable.NewLRU[string, *cachedEntry[T]](size, nil, ttl),
	}
}

func (c *summaryCache[T]) Get(key string) (*T, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		metrics.SummaryCacheMisses.Inc()
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		metrics.SummaryCacheMisses.Inc()
		return nil, false
	}
	metrics.SummaryCacheHits.Inc()
	return entry.Value, true
}

func (c *summaryCache[T]) Set(key string, value *T) {
	c.lru.Add(key, &cachedEntry[T]{
		Version:  CacheSchemaVersion,
		Value:    value,
		CachedAt: time.Now(),
	})
}

func (c *summaryCache[T]) Clear() {
	c.lru.Purge()
}

func (c *summaryCache[T]) Len() int {
	return c.lru.Len()
}
