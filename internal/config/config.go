package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	ServiceName string `validate:"required"`
	Version     string

	Port int `validate:"min=0,max=65535"`
	// RateLimit caps requests per client IP in each rate window. 0 disables it.
	RateLimit      int `validate:"min=0"`
	TrustedProxies []string

	// DatasetPath points at a dataset JSON file or a directory of CSV files.
	// Empty means the embedded sample dataset.
	DatasetPath string
	OutputDir   string `validate:"required"`
	MetricsFile string

	MaxIngredients     int `validate:"min=2,max=4"`
	Workers            int `validate:"min=1,max=64"`
	PureOnly           bool
	RequireImprovement bool
	TopPotions         int `validate:"min=0"`

	CacheSize int `validate:"min=1"`
	CacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		DatasetPath: getEnv("DATASET_PATH", ""),
		OutputDir:   getEnv("OUTPUT_DIR", DefaultOutputDir),
		MetricsFile: getEnv("METRICS_FILE", ""),

		MaxIngredients:     getEnvAsInt("MAX_INGREDIENTS", DefaultMaxIngredients),
		Workers:            getEnvAsInt("WORKERS", DefaultWorkers),
		PureOnly:           getEnvAsBool("PURE_ONLY", false),
		RequireImprovement: getEnvAsBool("REQUIRE_IMPROVEMENT", false),
		TopPotions:         getEnvAsInt("TOP_POTIONS", DefaultTopPotions),

		CacheSize: getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:  getEnvAsDuration("CACHE_TTL", 0),

		RateLimit:      getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back on parse errors
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool retrieves a boolean environment variable, falling back on parse errors
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves a duration environment variable, falling back on parse errors
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
