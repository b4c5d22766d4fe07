package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Lookup error messages
	ErrMsgGetDatasetFailed     = "Failed to retrieve dataset"
	ErrMsgGetIngredientsFailed = "Failed to retrieve ingredients"
	ErrMsgGetIngredientFailed  = "Failed to retrieve ingredient"
	ErrMsgGetEffectsFailed     = "Failed to retrieve effects"
	ErrMsgGetEffectFailed      = "Failed to retrieve effect"

	// Brewing error messages
	ErrMsgBrewFailed           = "Failed to brew potion"
	ErrMsgListPotionsFailed    = "Failed to list potions"
	ErrMsgRecommendFailed      = "Failed to rank potions"
	ErrMsgValuablePotionFailed = "Failed to rank ingredient potions"
)

// Query parameter names
const (
	ParamName        = "name"
	QueryIngredients = "ingredients"
	QueryRequire     = "require"
	QueryLimit       = "limit"
)

// Limits for list endpoints
const (
	DefaultLimit = 20
	MaxLimit     = 1000
)

// Log messages
const (
	LogMsgRequestFailed = "Request failed"
	LogMsgBrewRequest   = "Brew request"
	LogMsgNothingShared = "Ingredients share no effect"
)
