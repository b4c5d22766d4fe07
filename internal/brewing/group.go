package brewing

import (
	"sort"
	"strings"

	"github.com/osse101/skyrim-alchemy/internal/domain"
)

// Group collapses potions with identical effect profiles. Groups are ordered
// by price descending then key; combinations inside a group by accessibility
// descending then ingredient names.
func Group(potions []domain.Potion) []domain.PotionGroup {
	byKey := make(map[string]int)
	var groups []domain.PotionGroup

	for _, p := range potions {
		key := p.Signature()
		i, ok := byKey[key]
		if !ok {
			i = len(groups)
			byKey[key] = i
			groups = append(groups, domain.PotionGroup{
				Key:     key,
				Effects: append([]domain.Potency(nil), p.Effects...),
				Price:   p.Price,
			})
		}
		groups[i].Combinations = append(groups[i].Combinations, p)
	}

	for i := range groups {
		combos := groups[i].Combinations
		sort.SliceStable(combos, func(a, b int) bool {
			if combos[a].Accessibility != combos[b].Accessibility {
				return combos[a].Accessibility > combos[b].Accessibility
			}
			return LessIngredients(combos[a].Ingredients, combos[b].Ingredients)
		})
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if groups[a].Price != groups[b].Price {
			return groups[a].Price > groups[b].Price
		}
		return groups[a].Key < groups[b].Key
	})
	return groups
}

// LessIngredients orders ingredient lists by count, then lexicographically.
// It is the enumeration order.
func LessIngredients(a, b []string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return strings.Join(a, "\x00") < strings.Join(b, "\x00")
}
