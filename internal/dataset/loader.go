package dataset

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osse101/skyrim-alchemy/configs"
	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/validation"
)

// Loader reads dataset records from disk or from the embedded sample
type Loader interface {
	// Load reads a dataset JSON document, validating it against the dataset schema
	Load(path string) (*Records, error)
	// LoadBytes validates and decodes an in-memory dataset JSON document
	LoadBytes(data []byte, source string) (*Records, error)
	// LoadCSV reads ingredients.csv, effects.csv and traits.csv from dir
	LoadCSV(dir string) (*Records, error)
	// LoadPath picks the embedded sample for "", LoadCSV for directories and Load otherwise
	LoadPath(path string) (*Records, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader validating against the embedded dataset schema
func NewLoader() Loader {
	return &loader{
		schemaValidator: validation.NewFSSchemaValidator(configs.FS),
	}
}

func (l *loader) LoadPath(path string) (*Records, error) {
	if path == "" {
		data, err := configs.SampleDataset()
		if err != nil {
			return nil, fmt.Errorf(ErrMsgReadDatasetFailed, err)
		}
		return l.LoadBytes(data, configs.SampleDatasetPath)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadDatasetFailed, err)
	}
	if info.IsDir() {
		return l.LoadCSV(path)
	}
	return l.Load(path)
}

func (l *loader) Load(path string) (*Records, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadDatasetFailed, err)
	}
	return l.LoadBytes(data, path)
}

func (l *loader) LoadBytes(data []byte, source string) (*Records, error) {
	if err := l.schemaValidator.ValidateBytes(data, configs.DatasetSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaValidation, domain.ErrInvalidData, source, err)
	}

	var records Records
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf(ErrMsgParseDatasetFailed, err)
	}
	records.Checksum = checksum(data)

	return &records, nil
}

func (l *loader) LoadCSV(dir string) (*Records, error) {
	hash := sha256.New()
	records := &Records{Description: dir}

	ingredientRows, err := readCSV(filepath.Join(dir, IngredientsCSV), IngredientsHeader, hash)
	if err != nil {
		return nil, err
	}
	for i, row := range ingredientRows {
		rec, err := parseIngredientRow(row, i+2)
		if err != nil {
			return nil, err
		}
		records.Ingredients = append(records.Ingredients, rec)
	}

	effectRows, err := readCSV(filepath.Join(dir, EffectsCSV), EffectsHeader, hash)
	if err != nil {
		return nil, err
	}
	for i, row := range effectRows {
		rec, err := parseEffectRow(row, i+2)
		if err != nil {
			return nil, err
		}
		records.Effects = append(records.Effects, rec)
	}

	traitRows, err := readCSV(filepath.Join(dir, TraitsCSV), TraitsHeader, hash)
	if err != nil {
		return nil, err
	}
	for i, row := range traitRows {
		rec, err := parseTraitRow(row, i+2)
		if err != nil {
			return nil, err
		}
		records.Traits = append(records.Traits, rec)
	}

	records.Checksum = hex.EncodeToString(hash.Sum(nil))
	return records, nil
}

// readCSV returns the data rows of a headed CSV file, feeding the raw bytes into hash
func readCSV(path string, header []string, hash io.Writer) ([][]string, error) {
	name := filepath.Base(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenCSVFailed, name, err)
	}
	defer file.Close()

	reader := csv.NewReader(io.TeeReader(file, hash))
	reader.FieldsPerRecord = len(header)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCSVFailed, name, fmt.Errorf("%w: %v", domain.ErrInvalidData, err))
	}
	if len(rows) == 0 || !headerMatches(rows[0], header) {
		got := []string{}
		if len(rows) > 0 {
			got = rows[0]
		}
		return nil, fmt.Errorf(ErrFmtCSVHeader, domain.ErrInvalidData, name, header, got)
	}

	return rows[1:], nil
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if strings.TrimSpace(strings.ToLower(got[i])) != want[i] {
			return false
		}
	}
	return true
}

func parseIngredientRow(row []string, line int) (IngredientRecord, error) {
	value, err := parseFloat(row[1], IngredientsCSV, line, "value")
	if err != nil {
		return IngredientRecord{}, err
	}
	plantable, err := parseBool(row[2], IngredientsCSV, line, "plantable")
	if err != nil {
		return IngredientRecord{}, err
	}

	return IngredientRecord{
		Name:         strings.TrimSpace(row[0]),
		Value:        value,
		Plantable:    plantable,
		VendorRarity: optional(row[3]),
		UniqueTo:     optional(row[4]),
	}, nil
}

func parseEffectRow(row []string, line int) (EffectRecord, error) {
	baseCost, err := parseFloat(row[2], EffectsCSV, line, "base_cost")
	if err != nil {
		return EffectRecord{}, err
	}

	return EffectRecord{
		Name:       strings.TrimSpace(row[0]),
		EffectType: optional(row[1]),
		BaseCost:   baseCost,
	}, nil
}

func parseTraitRow(row []string, line int) (TraitRecord, error) {
	magnitude, err := parseFloat(row[2], TraitsCSV, line, "magnitude")
	if err != nil {
		return TraitRecord{}, err
	}
	duration, err := parseFloat(row[3], TraitsCSV, line, "duration")
	if err != nil {
		return TraitRecord{}, err
	}
	order, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil {
		return TraitRecord{}, fmt.Errorf(ErrFmtCSVField, domain.ErrInvalidData, TraitsCSV, line, "order", err)
	}

	return TraitRecord{
		Ingredient: strings.TrimSpace(row[0]),
		Effect:     strings.TrimSpace(row[1]),
		Magnitude:  magnitude,
		Duration:   duration,
		Order:      order,
	}, nil
}

func parseFloat(raw, file string, line int, column string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtCSVField, domain.ErrInvalidData, file, line, column, err)
	}
	return v, nil
}

func parseBool(raw, file string, line int, column string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf(ErrFmtCSVField, domain.ErrInvalidData, file, line, column, err)
	}
	return v, nil
}

// optional maps empty cells to nil, matching JSON null
func optional(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
