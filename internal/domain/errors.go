package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound = "not found"

	// Load-time errors
	ErrMsgInvalidData = "invalid data"

	// Brewing errors
	ErrMsgInvalidCombination = "invalid combination"

	// Aggregation errors
	ErrMsgNoData = "no data"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound is returned when an ingredient or effect name is unknown.
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrInvalidData is returned when a dataset violates a structural rule at load time.
	// It is fatal to engine initialization.
	ErrInvalidData = errors.New(ErrMsgInvalidData)

	// ErrInvalidCombination is returned for ingredient sets outside [MinIngredients, MaxIngredients]
	// or containing the same ingredient twice.
	ErrInvalidCombination = errors.New(ErrMsgInvalidCombination)

	// ErrNoData is returned when an aggregate is requested over an empty collection.
	ErrNoData = errors.New(ErrMsgNoData)
)
