package config

import (
	"fmt"
	"os"
	"strconv"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks that the schema version matches expectations.
// An unset ENV_SCHEMA_VERSION is accepted since every variable has a default.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for settings that are legal but probably unintended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DATASET_PATH") == "" {
		warnings = append(warnings, "DATASET_PATH is not set - using the embedded sample dataset")
	}

	if v, err := strconv.Atoi(os.Getenv("WORKERS")); err == nil && v > 1 && os.Getenv("MAX_INGREDIENTS") == "2" {
		warnings = append(warnings, "WORKERS > 1 has little effect when MAX_INGREDIENTS=2")
	}

	return warnings, nil
}
