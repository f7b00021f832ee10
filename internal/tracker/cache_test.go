package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroTracker_Go/internal/domain"
)

func TestSummaryCache(t *testing.T) {
	c := newSummaryCache[domain.HeroSummary](2, time.Minute)

	_, ok := c.Get("rein")
	assert.False(t, ok)

	want := &domain.HeroSummary{TotalXP: 42}
	c.Set("rein", want)
	got, ok := c.Get("rein")
	require.True(t, ok)
	assert.Same(t, want, got)

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestSummaryCache_StaleVersionIsMiss(t *testing.T) {
	c := newSummaryCache[domain.HeroSummary](2, time.Minute)
	c.lru.Add("rein", &cachedEntry[domain.HeroSummary]{Version: "0.1", Value: &domain.HeroSummary{}})

	_, ok := c.Get("rein")
	assert.False(t, ok)
	assert.Zero(t, c.Len(), "stale entries are evicted on read")
}

func TestSummaryCache_Evicts(t *testing.T) {
	c := newSummaryCache[domain.HeroSummary](1, time.Minute)
	c.Set("a", &domain.HeroSummary{})
	c.Set("b", &domain.HeroSummary{})

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
}
