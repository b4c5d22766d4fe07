package dataset

// Records is the raw dataset as read from disk, before indexing.
type Records struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	// Checksum is the sha256 of the source bytes, empty for in-memory records
	Checksum string `json:"-"`

	Ingredients []IngredientRecord `json:"ingredients" validate:"dive"`
	Effects     []EffectRecord     `json:"effects" validate:"dive"`
	Traits      []TraitRecord      `json:"traits" validate:"dive"`
}

// IngredientRecord is one row of the ingredients table
type IngredientRecord struct {
	Name         string  `json:"name" validate:"required"`
	Value        float64 `json:"value" validate:"gt=0"`
	Plantable    bool    `json:"plantable"`
	VendorRarity *string `json:"vendor_rarity" validate:"omitempty,oneof=common uncommon rare limited"`
	UniqueTo     *string `json:"unique_to"`
}

// EffectRecord is one row of the effects table
type EffectRecord struct {
	Name       string  `json:"name" validate:"required"`
	EffectType *string `json:"effect_type" validate:"omitempty,oneof=beneficial harmful"`
	BaseCost   float64 `json:"base_cost" validate:"gt=0"`
}

// TraitRecord links an ingredient to an effect with its potency
type TraitRecord struct {
	Ingredient string  `json:"ingredient" validate:"required"`
	Effect     string  `json:"effect" validate:"required"`
	Magnitude  float64 `json:"magnitude" validate:"gte=0"`
	Duration   float64 `json:"duration" validate:"gte=0"`
	Order      int     `json:"order" validate:"min=1,max=4"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
