package report

// Output file names
const (
	IndexFile       = "index.json"
	IngredientsFile = "ingredients.json"
	EffectsFile     = "effects.json"
	RecommendedFile = "recommended.json"
	IngredientsDir  = "ingredients"
	EffectsDir      = "effects"
)

// Defaults
const (
	DefaultTopPotions = 20
	filePerm          = 0o644
	dirPerm           = 0o755
)

// ==================== Error Messages ====================

const (
	ErrMsgCreateDirFailed = "failed to create directory %s: %w"
	ErrMsgWriteFileFailed = "failed to write %s: %w"
	ErrMsgEncodeFailed    = "failed to encode %s: %w"
	ErrMsgSummaryFailed   = "summary for %s: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgReportWriting = "Writing report"
	LogMsgReportWritten = "Report written"
	LogMsgPageWritten   = "Report page written"

	LogMsgIngredientPageBuilt = "Built ingredient page"
	LogMsgNoSharedEffect      = "No shared effect"
)
