package domain

import (
	"strconv"
	"strings"
)

// Availability summarizes how every ingredient of a potion can be obtained.
type Availability string

// Potion is the transient result of combining 2 to 4 distinct ingredients.
type Potion struct {
	Ingredients   []string     `json:"ingredients"`
	Effects       []Potency    `json:"effects"`
	Price         float64      `json:"price"`
	Accessibility float64      `json:"accessibility"`
	RelativeValue float64      `json:"relative_value"`
	Availability  Availability `json:"availability,omitempty"`
}

// Key identifies the ingredient combination.
func (p Potion) Key() string {
	return strings.Join(p.Ingredients, "+")
}

// Signature identifies the effect profile. Potions with equal signatures are
// interchangeable for grouping purposes.
func (p Potion) Signature() string {
	var b strings.Builder
	for i, eff := range p.Effects {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(eff.Effect)
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(eff.Magnitude, 'g', -1, 64))
		b.WriteByte('/')
		b.WriteString(strconv.FormatFloat(eff.Duration, 'g', -1, 64))
		b.WriteByte('/')
		b.WriteString(strconv.FormatFloat(eff.Price, 'g', -1, 64))
	}
	return b.String()
}

// EffectNames returns the names of the potion's effects in order.
func (p Potion) EffectNames() []string {
	names := make([]string, len(p.Effects))
	for i, eff := range p.Effects {
		names[i] = eff.Effect
	}
	return names
}

// Contains reports whether the ingredient takes part in the potion.
func (p Potion) Contains(ingredient string) bool {
	for _, name := range p.Ingredients {
		if name == ingredient {
			return true
		}
	}
	return false
}

// PotionGroup collects every ingredient combination producing the same effect profile.
type PotionGroup struct {
	Key          string    `json:"key"`
	Effects      []Potency `json:"effects"`
	Price        float64   `json:"price"`
	Combinations []Potion  `json:"combinations"`
}
