package utils

import (
	"math"
	"sort"

	"github.com/osse101/skyrim-alchemy/internal/domain"
)

// Median returns the statistical median of values without modifying the input.
// Even-sized inputs yield the mean of the two middle values.
// Returns domain.ErrNoData for an empty input.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, domain.ErrNoData
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// Mean returns the arithmetic mean of values.
// Returns domain.ErrNoData for an empty input.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, domain.ErrNoData
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// MedianStatistic wraps Median into an optional statistic.
func MedianStatistic(values []float64) domain.Statistic {
	v, err := Median(values)
	if err != nil {
		return domain.Statistic{}
	}
	return domain.NewStatistic(v)
}

// MeanStatistic wraps Mean into an optional statistic.
func MeanStatistic(values []float64) domain.Statistic {
	v, err := Mean(values)
	if err != nil {
		return domain.Statistic{}
	}
	return domain.NewStatistic(v)
}

// DiminishingReturns calculates a value with diminishing returns.
// value: The input value.
// scale: The value at which the output is 50% of the maximum possible output (asymptote).
// formula: value / (value + scale) -> returns a factor between 0 and 1
// To get a result scaled to a max, multiply the result by max.
func DiminishingReturns(value, scale float64) float64 {
	if value < 0 {
		return 0
	}
	return value / (value + scale)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// CropNumber prepares a number for display: whole numbers keep no decimals,
// everything else is rounded to one decimal place.
func CropNumber(v float64) float64 {
	if v == math.Trunc(v) {
		return v
	}
	return Round(v, 1)
}
