package brewing

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Options tunes potion enumeration
type Options struct {
	// MaxIngredients caps the combination size used by Enumerate
	MaxIngredients int `json:"max_ingredients" validate:"min=2,max=4"`
	// Workers > 1 shards enumeration by the first ingredient of each combination
	Workers int `json:"workers" validate:"min=1"`
	// PureOnly drops potions mixing effect types
	PureOnly bool `json:"pure_only"`
	// RequireImprovement drops potions a smaller sub-combination already brews
	RequireImprovement bool `json:"require_improvement"`
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{
		MaxIngredients: DefaultMaxIngredients,
		Workers:        DefaultWorkers,
	}
}

// Validate checks the option bounds
func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf(ErrMsgInvalidOptions, err)
	}
	return nil
}

// Query selects which combinations Enumerate considers
type Query struct {
	// Pool restricts the candidate ingredients. Nil means the whole dataset.
	Pool []string
	// Require keeps only combinations containing every listed ingredient
	Require []string
	// Limit caps the number of potions returned. 0 means unlimited.
	Limit int
}
