package domain

import "fmt"

// Effect is a magical effect an ingredient can produce. Name is the primary key.
type Effect struct {
	Name     string     `json:"name"`
	Type     EffectType `json:"effect_type,omitempty"`
	BaseCost float64    `json:"base_cost"`
}

// EffectType classifies an effect. Empty means unclassified.
type EffectType string

const (
	EffectTypeUnclassified EffectType = ""
	EffectTypeBeneficial   EffectType = EffectTypeNameBeneficial
	EffectTypeHarmful      EffectType = EffectTypeNameHarmful
)

// ParseEffectType converts a dataset value into an EffectType.
func ParseEffectType(s string) (EffectType, error) {
	switch EffectType(s) {
	case EffectTypeUnclassified, EffectTypeBeneficial, EffectTypeHarmful:
		return EffectType(s), nil
	default:
		return EffectTypeUnclassified, fmt.Errorf("%w: unknown effect type %q", ErrInvalidData, s)
	}
}

// EffectLess orders effects by base cost, then name.
func EffectLess(a, b Effect) bool {
	if a.BaseCost != b.BaseCost {
		return a.BaseCost < b.BaseCost
	}
	return a.Name < b.Name
}
