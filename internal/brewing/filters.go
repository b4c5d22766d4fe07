package brewing

import (
	"github.com/osse101/skyrim-alchemy/internal/domain"
)

// isPure reports whether every effect has the same effect type. Unclassified
// counts as a type of its own, so a single-effect potion is always pure.
func (e *engine) isPure(effects []shared) bool {
	first := e.effects[effects[0].effect].Type
	for _, s := range effects[1:] {
		if e.effects[s.effect].Type != first {
			return false
		}
	}
	return true
}

// isImprovement reports whether no proper sub-combination of at least two
// ingredients brews the same effect profile
func (e *engine) isImprovement(combo []int, full []shared) bool {
	if len(combo) <= domain.MinIngredients {
		return true
	}

	sub := make([]int, 0, len(combo))
	// every non-empty proper subset, as a bitmask over combo positions
	for mask := 1; mask < (1<<len(combo))-1; mask++ {
		sub = sub[:0]
		for i, idx := range combo {
			if mask&(1<<i) != 0 {
				sub = append(sub, idx)
			}
		}
		if len(sub) < domain.MinIngredients {
			continue
		}
		if sameProfile(full, e.profile(sub)) {
			return false
		}
	}
	return true
}

func sameProfile(a, b []shared) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].effect != b[i].effect || a[i].magnitude != b[i].magnitude || a[i].duration != b[i].duration {
			return false
		}
	}
	return true
}

// availability flags potions whose ingredients can all be grown, or all be
// bought at or below one vendor rarity
func availability(ingredients []domain.Ingredient) domain.Availability {
	allPlantable := true
	allSold := true
	worst := domain.VendorRarityNone
	for _, ing := range ingredients {
		allPlantable = allPlantable && ing.Plantable
		allSold = allSold && ing.VendorRarity.IsVendorSold()
		if ing.VendorRarity > worst {
			worst = ing.VendorRarity
		}
	}

	switch {
	case allPlantable:
		return domain.AvailabilityPlantable
	case !allSold:
		return domain.AvailabilityNone
	case worst == domain.VendorRarityCommon:
		return domain.AvailabilityCommon
	case worst == domain.VendorRarityUncommon:
		return domain.AvailabilityUncommon
	case worst == domain.VendorRarityRare:
		return domain.AvailabilityRare
	default:
		return domain.AvailabilityNone
	}
}
