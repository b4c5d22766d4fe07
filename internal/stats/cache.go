package stats

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/skyrim-alchemy/internal/metrics"
)

// summaryCache memoizes summaries by entity key. The underlying LRU is
// safe for concurrent use.
type summaryCache struct {
	lru *expirable.LRU[string, any]
}

func newSummaryCache(size int, ttl time.Duration) *summaryCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &summaryCache{
		lru: expirable.NewLRU[string, any](size, nil, ttl),
	}
}

func (c *summaryCache) get(key string) (any, bool) {
	summary, found := c.lru.Get(key)
	if !found {
		metrics.StatsCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}
	metrics.StatsCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	return summary, true
}

func (c *summaryCache) set(key string, summary any) {
	c.lru.Add(key, summary)
}

func (c *summaryCache) purge() {
	c.lru.Purge()
}
