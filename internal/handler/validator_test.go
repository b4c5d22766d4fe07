package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_BrewQuery(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name        string
		ingredients []string
		wantErr     bool
		field       string
		message     string
	}{
		{"pair", []string{"Wheat", "Blisterwort"}, false, "", ""},
		{"four", []string{"Wheat", "Blisterwort", "Nightshade", "Nirnroot"}, false, "", ""},
		{"single", []string{"Wheat"}, true, "ingredients", "Must be at least 2"},
		{"five", []string{"a", "b", "c", "d", "e"}, true, "ingredients", "Must be at most 4"},
		{"repeat", []string{"Wheat", "Wheat"}, true, "ingredients", "Must not repeat an ingredient"},
		{"control char", []string{"Wheat", "Bad\tName"}, true, "ingredients[1]", "Invalid ingredient name"},
		{"too long", []string{"Wheat", strings.Repeat("x", maxNameLength+1)}, true, "ingredients[1]", "Invalid ingredient name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(BrewQuery{Ingredients: tt.ingredients})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.message, FormatValidationError(err)[tt.field])
		})
	}
}

func TestValidator_PotionsQuery(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(PotionsQuery{}))
	assert.NoError(t, v.ValidateStruct(PotionsQuery{Require: []string{"Wheat"}, Limit: 10}))
	assert.Error(t, v.ValidateStruct(PotionsQuery{Limit: MaxLimit + 1}))
	assert.Error(t, v.ValidateStruct(PotionsQuery{Require: []string{"a", "b", "c", "d", "e"}}))
}

func TestFormatValidationError_NotValidation(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
