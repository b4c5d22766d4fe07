package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skyrim-alchemy/internal/domain"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "single value", values: []float64{7}, expected: 7},
		{name: "odd size picks middle", values: []float64{10, 20, 30}, expected: 20},
		{name: "even size averages middle pair", values: []float64{10, 20, 30, 40}, expected: 25},
		{name: "unsorted input", values: []float64{30, 10, 40, 20}, expected: 25},
		{name: "ties", values: []float64{5, 5, 1, 9}, expected: 5},
		{name: "zeros are values", values: []float64{0, 0, 60}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Median(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Median(values)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMedian_Empty(t *testing.T) {
	_, err := Median(nil)
	assert.True(t, errors.Is(err, domain.ErrNoData))
	assert.False(t, MedianStatistic(nil).Valid)
}

func TestMean(t *testing.T) {
	got, err := Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	_, err = Mean([]float64{})
	assert.True(t, errors.Is(err, domain.ErrNoData))

	stat := MeanStatistic([]float64{2, 4})
	assert.True(t, stat.Valid)
	assert.Equal(t, 3.0, stat.Value)
}

// TestDiminishingReturns verifies the diminishing returns formula
func TestDiminishingReturns(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		scale    float64
		expected float64
	}{
		{name: "zero value returns zero", value: 0, scale: 100, expected: 0},
		{name: "negative value returns zero", value: -50, scale: 100, expected: 0},
		{name: "value equals scale gives 0.5", value: 100, scale: 100, expected: 0.5},
		{name: "double the scale", value: 50, scale: 100, expected: 0.3333333333333333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DiminishingReturns(tt.value, tt.scale), 1e-12)
		})
	}
}

func TestCropNumber(t *testing.T) {
	assert.Equal(t, 12.0, CropNumber(12))
	assert.Equal(t, 12.3, CropNumber(12.34))
	assert.Equal(t, 0.1, CropNumber(0.06))
	assert.Equal(t, 3.14, Round(3.14159, 2))
}
