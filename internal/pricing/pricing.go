package pricing

import (
	"math"

	"github.com/osse101/skyrim-alchemy/internal/domain"
)

// EffectPrice returns the value of an effect delivered at the given magnitude and duration.
//
//	price = baseCost * magnitude^1.5 * duration/10
//
// A zero magnitude or zero duration contributes a factor of 1, so instantaneous
// effects are priced on magnitude alone and fixed-strength effects on duration alone.
func EffectPrice(baseCost, magnitude, duration float64) float64 {
	return baseCost * magnitudeFactor(magnitude) * durationFactor(duration)
}

// PotencyPrice computes the price of a potency for the given effect.
func PotencyPrice(effect domain.Effect, magnitude, duration float64) float64 {
	return EffectPrice(effect.BaseCost, magnitude, duration)
}

// PotionPrice sums the effect prices of a potion. No rounding is applied.
func PotionPrice(effects []domain.Potency) float64 {
	var total float64
	for _, eff := range effects {
		total += eff.Price
	}
	return total
}

func magnitudeFactor(magnitude float64) float64 {
	if magnitude <= 0 {
		return 1
	}
	return math.Pow(magnitude, MagnitudeExponent)
}

func durationFactor(duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return duration / DurationDivisor
}
