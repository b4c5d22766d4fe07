package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/skyrim-alchemy/internal/domain"
)

func TestEffectPrice(t *testing.T) {
	tests := []struct {
		name      string
		baseCost  float64
		magnitude float64
		duration  float64
		expected  float64
	}{
		{
			name:      "magnitude and duration",
			baseCost:  2,
			magnitude: 4,
			duration:  20,
			expected:  2 * 8 * 2,
		},
		{
			name:      "instantaneous effect ignores duration",
			baseCost:  0.5,
			magnitude: 9,
			duration:  0,
			expected:  0.5 * 27,
		},
		{
			name:      "zero magnitude priced on duration",
			baseCost:  100,
			magnitude: 0,
			duration:  30,
			expected:  300,
		},
		{
			name:      "both zero yields base cost",
			baseCost:  3.2,
			magnitude: 0,
			duration:  0,
			expected:  3.2,
		},
		{
			name:      "fractional duration below ten seconds",
			baseCost:  1,
			magnitude: 1,
			duration:  5,
			expected:  0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EffectPrice(tt.baseCost, tt.magnitude, tt.duration), 1e-9)
		})
	}
}

func TestEffectPrice_Idempotent(t *testing.T) {
	first := EffectPrice(0.38, 5, 60)
	second := EffectPrice(0.38, 5, 60)
	assert.Equal(t, first, second)
	assert.False(t, math.IsNaN(first))
}

func TestPotionPrice(t *testing.T) {
	effects := []domain.Potency{{Price: 1.25}, {Price: 2.5}, {Price: 0.125}}
	assert.Equal(t, 3.875, PotionPrice(effects))
	assert.Equal(t, 0.0, PotionPrice(nil))
}

func TestPotencyPrice(t *testing.T) {
	eff := domain.Effect{Name: "Restore Health", BaseCost: 0.5}
	assert.InDelta(t, EffectPrice(0.5, 5, 0), PotencyPrice(eff, 5, 0), 1e-12)
}
