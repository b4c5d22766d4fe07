package stats

import "time"

// Cache defaults
const (
	DefaultCacheSize = 512
	// DefaultCacheTTL of zero keeps entries until evicted or purged. The
	// dataset is immutable, so summaries never go stale on their own.
	DefaultCacheTTL time.Duration = 0
)

// Cache key prefixes
const (
	keyPrefixEffect     = "effect:"
	keyPrefixIngredient = "ingredient:"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEffectSummarized     = "Effect summarized"
	LogMsgIngredientSummarized = "Ingredient summarized"
	LogMsgCachePurged          = "Statistics cache purged"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgPotionsFailed = "failed to enumerate potions for %q: %w"
	ErrMsgScoreFailed   = "failed to score ingredient %q: %w"
)
