package bootstrap

// =============================================================================
// Logger Messages
// =============================================================================

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting skyrim-alchemy"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Service Wiring Messages
// =============================================================================

const (
	LogMsgServicesInitialized = "Services initialized"

	ErrMsgFailedOpenDataset    = "failed to open dataset"
	ErrMsgFailedScoreDataset   = "failed to score ingredients"
	ErrMsgFailedBuildEngine    = "failed to build brewing engine"
	ErrMsgFailedLoadConfig     = "failed to load configuration"
	ErrMsgFailedValidateConfig = "invalid environment"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgCachesPurged         = "Caches purged"
)
