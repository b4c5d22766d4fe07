// Package configs ships the dataset JSON schema and the sample dataset with the binary.
package configs

import "embed"

// Paths inside FS
const (
	DatasetSchemaPath = "schemas/dataset.schema.json"
	SampleDatasetPath = "dataset/skyrim.json"
)

// FS holds the JSON schemas and the sample dataset.
//
//go:embed schemas/*.json dataset/*.json
var FS embed.FS

// SampleDataset returns the embedded sample dataset document.
func SampleDataset() ([]byte, error) {
	return FS.ReadFile(SampleDatasetPath)
}
