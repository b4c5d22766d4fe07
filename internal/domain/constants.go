package domain

// Combination size limits
const (
	MinIngredients = 2
	MaxIngredients = 4
)

// Trait order limits
const (
	MinTraitOrder = 1
	MaxTraitOrder = 4
)

// Vendor rarity values as they appear in the dataset
const (
	RarityNameCommon   = "common"
	RarityNameUncommon = "uncommon"
	RarityNameRare     = "rare"
	RarityNameLimited  = "limited"
)

// Effect type values as they appear in the dataset
const (
	EffectTypeNameBeneficial = "beneficial"
	EffectTypeNameHarmful    = "harmful"
)

// Availability flags for potions
const (
	AvailabilityPlantable Availability = "plantable"
	AvailabilityCommon    Availability = "common"
	AvailabilityUncommon  Availability = "uncommon"
	AvailabilityRare      Availability = "rare"
	AvailabilityNone      Availability = ""
)
