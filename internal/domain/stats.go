package domain

import "encoding/json"

// Statistic is an aggregate that is absent when its source collection is empty.
// An absent statistic is never reported as zero.
type Statistic struct {
	Value float64
	Valid bool
}

// NewStatistic wraps a computed value.
func NewStatistic(v float64) Statistic {
	return Statistic{Value: v, Valid: true}
}

// Float64 returns the value or ErrNoData.
func (s Statistic) Float64() (float64, error) {
	if !s.Valid {
		return 0, ErrNoData
	}
	return s.Value, nil
}

// MarshalJSON encodes an absent statistic as null.
func (s Statistic) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON decodes null as an absent statistic.
func (s *Statistic) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*s = Statistic{}
		return nil
	}
	*s = NewStatistic(*v)
	return nil
}

// EffectSummary holds the aggregate statistics of one effect across all ingredients.
type EffectSummary struct {
	Effect              string    `json:"effect"`
	IngredientCount     int       `json:"ingredient_count"`
	MedianMagnitude     Statistic `json:"median_magnitude"`
	MedianDuration      Statistic `json:"median_duration"`
	MedianPrice         Statistic `json:"median_price"`
	MedianAccessibility Statistic `json:"median_accessibility"`
}

// IngredientSummary holds the aggregate statistics of one ingredient.
type IngredientSummary struct {
	Ingredient          string    `json:"ingredient"`
	PotionCount         int       `json:"potion_count"`
	MedianMagnitude     Statistic `json:"median_magnitude"`
	MedianDuration      Statistic `json:"median_duration"`
	MedianPrice         Statistic `json:"median_price"`
	AveragePotencyPrice Statistic `json:"average_potency_price"`
	AveragePotionPrice  Statistic `json:"average_potion_price"`
	MedianPotionPrice   Statistic `json:"median_potion_price"`
}
