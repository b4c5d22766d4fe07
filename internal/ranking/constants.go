package ranking

import "github.com/osse101/skyrim-alchemy/internal/domain"

// Accessibility weights
const (
	DefaultScale          = 100.0
	DefaultValueScale     = 100.0
	DefaultPlantableBonus = 2.0
	DefaultRarityStep     = 0.5

	// DefaultUniquePenalty applies to unique sources without an explicit entry
	DefaultUniquePenalty = 4.0
)

// DefaultUniquePenalties divides the score of ingredients tied to a source.
// Requiem ingredients are treated as regular, fishing is the hardest to farm.
var DefaultUniquePenalties = map[domain.UniqueSource]float64{
	domain.UniqueSourceRequiem: 1,
	domain.UniqueSourceFishing: 9,
}

// ==================== Error Messages ====================

const (
	ErrMsgInvalidWeights = "invalid accessibility weights: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgScoresComputed     = "Accessibility scores computed"
	LogMsgRecommendedRanked  = "Recommended potions ranked"
	LogMsgValuablePotionsFor = "Valuable potions ranked"
)
