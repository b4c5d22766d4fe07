package dataset

// ==================== File Names ====================

// CSV layout file names
const (
	IngredientsCSV = "ingredients.csv"
	EffectsCSV     = "effects.csv"
	TraitsCSV      = "traits.csv"
)

// CSV headers, in column order
var (
	IngredientsHeader = []string{"name", "value", "plantable", "vendor_rarity", "unique_to"}
	EffectsHeader     = []string{"name", "effect_type", "base_cost"}
	TraitsHeader      = []string{"ingredient_name", "effect_name", "magnitude", "duration", "order"}
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadDatasetFailed  = "failed to read dataset file: %w"
	ErrMsgParseDatasetFailed = "failed to parse dataset: %w"
	ErrMsgOpenCSVFailed      = "failed to open %s: %w"
	ErrMsgReadCSVFailed      = "failed to read %s: %w"
)

// Format strings used with fmt.Errorf and domain.ErrInvalidData
const (
	ErrFmtSchemaValidation  = "%w: schema validation failed for %s: %v"
	ErrFmtRecordValidation  = "%w: %v"
	ErrFmtCSVHeader         = "%w: %s: expected header %v, got %v"
	ErrFmtCSVField          = "%w: %s line %d: column %s: %v"
	ErrFmtDuplicateIngr     = "%w: duplicate ingredient %q"
	ErrFmtDuplicateEffect   = "%w: duplicate effect %q"
	ErrFmtUnknownIngredient = "%w: trait references unknown ingredient %q"
	ErrFmtUnknownEffect     = "%w: trait references unknown effect %q"
	ErrFmtDuplicateTrait    = "%w: ingredient %q carries effect %q more than once"
	ErrFmtNoTraits          = "%w: ingredient %q has no traits"
	ErrFmtTraitOrder        = "%w: ingredient %q has trait orders %v, want 1..%d"
	ErrFmtTooManyTraits     = "%w: ingredient %q has %d traits, at most %d allowed"
)

// Lookup error formats, used with domain.ErrNotFound
const (
	ErrFmtIngredientNotFound = "%w: ingredient %q"
	ErrFmtEffectNotFound     = "%w: effect %q"
)

// ==================== Log Messages ====================

const (
	LogMsgDatasetLoaded      = "Dataset loaded"
	LogMsgIngredientsIndexed = "Ingredients indexed"
	LogMsgEffectsIndexed     = "Effects indexed"
	LogMsgTraitsIndexed      = "Traits indexed"
	LogMsgStoreBuilt         = "Dataset store built"
)
