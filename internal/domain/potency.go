package domain

// Potency is the strength of one effect as delivered by one ingredient.
// Potion-scoped potencies leave Ingredient empty.
type Potency struct {
	Ingredient string  `json:"ingredient,omitempty"`
	Effect     string  `json:"effect"`
	Magnitude  float64 `json:"magnitude"`
	Duration   float64 `json:"duration"` // Seconds, 0 for instantaneous effects
	Price      float64 `json:"price"`
}

// Trait is the ranked association between an ingredient and one of its potencies.
// Order 1 is the most commonly known effect slot.
type Trait struct {
	Ingredient string  `json:"ingredient"`
	Order      int     `json:"order"`
	Potency    Potency `json:"potency"`
}

// Effect returns the name of the effect carried by the trait.
func (t Trait) Effect() string {
	return t.Potency.Effect
}
