package config

// Default values
const (
	DefaultEnvironment    = "dev"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultServiceName    = "skyrim-alchemy"
	DefaultVersion        = "dev"
	DefaultPort           = "8080"
	DefaultOutputDir      = "out/report"
	DefaultMaxIngredients = 4
	DefaultWorkers        = 1
	DefaultTopPotions     = 10
	DefaultCacheSize      = 512
	DefaultRateLimit      = 1000
)
