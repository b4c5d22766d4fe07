package stats

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/metrics"
)

func TestSummaryCache_HitAndMiss(t *testing.T) {
	cache := newSummaryCache(0, DefaultCacheTTL)
	hits := testutil.ToFloat64(metrics.StatsCacheLookups.WithLabelValues(metrics.ResultHit))
	misses := testutil.ToFloat64(metrics.StatsCacheLookups.WithLabelValues(metrics.ResultMiss))

	_, ok := cache.get("effect:Cure")
	assert.False(t, ok)

	cache.set("effect:Cure", &domain.EffectSummary{Effect: "Cure"})
	got, ok := cache.get("effect:Cure")
	require.True(t, ok)
	assert.Equal(t, "Cure", got.(*domain.EffectSummary).Effect)

	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.StatsCacheLookups.WithLabelValues(metrics.ResultHit)))
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.StatsCacheLookups.WithLabelValues(metrics.ResultMiss)))
}

func TestSummaryCache_EvictsAndPurges(t *testing.T) {
	cache := newSummaryCache(1, DefaultCacheTTL)

	cache.set("effect:Cure", &domain.EffectSummary{Effect: "Cure"})
	cache.set("effect:Harm", &domain.EffectSummary{Effect: "Harm"})
	_, ok := cache.get("effect:Cure")
	assert.False(t, ok)
	_, ok = cache.get("effect:Harm")
	assert.True(t, ok)

	cache.purge()
	_, ok = cache.get("effect:Harm")
	assert.False(t, ok)
}

func TestSummaryCache_Expires(t *testing.T) {
	cache := newSummaryCache(4, 10*time.Millisecond)

	cache.set("ingredient:Wheat", &domain.IngredientSummary{Ingredient: "Wheat"})
	assert.Eventually(t, func() bool {
		_, ok := cache.get("ingredient:Wheat")
		return !ok
	}, time.Second, 5*time.Millisecond)
}
