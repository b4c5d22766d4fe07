package brewing

// Option defaults
const (
	DefaultMaxIngredients = 4
	DefaultWorkers        = 1
)

// ==================== Error Messages ====================

const (
	ErrMsgInvalidOptions      = "invalid brewing options: %w"
	ErrMsgScoreFailed         = "failed to score ingredient %q: %w"
	ErrFmtCombinationSize     = "%w: %d ingredients, need %d to %d"
	ErrFmtDuplicateIngredient = "%w: %q appears more than once"
)

// ==================== Log Messages ====================

const (
	LogMsgEngineReady        = "Brewing engine ready"
	LogMsgEnumerationStarted = "Enumerating potions"
	LogMsgEnumerationDone    = "Potion enumeration completed"
	LogMsgEnumerationAborted = "Potion enumeration aborted"
)
