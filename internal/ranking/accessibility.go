package ranking

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/utils"
)

// Weights parameterize the accessibility score
//
//	score = Scale
//	      * (1 - value / (value + ValueScale))
//	      * (PlantableBonus if plantable)
//	      / (1 + RarityStep * rarity ordinal)
//	      / unique penalty
type Weights struct {
	Scale          float64 `validate:"gt=0"`
	ValueScale     float64 `validate:"gt=0"`
	PlantableBonus float64 `validate:"gte=1"`
	RarityStep     float64 `validate:"gte=0"`

	UniquePenalties      map[domain.UniqueSource]float64 `validate:"dive,gte=1"`
	DefaultUniquePenalty float64                         `validate:"gte=1"`
}

// DefaultWeights returns the standard weights
func DefaultWeights() Weights {
	penalties := make(map[domain.UniqueSource]float64, len(DefaultUniquePenalties))
	for k, v := range DefaultUniquePenalties {
		penalties[k] = v
	}
	return Weights{
		Scale:                DefaultScale,
		ValueScale:           DefaultValueScale,
		PlantableBonus:       DefaultPlantableBonus,
		RarityStep:           DefaultRarityStep,
		UniquePenalties:      penalties,
		DefaultUniquePenalty: DefaultUniquePenalty,
	}
}

// Score computes the accessibility of a single ingredient. Higher is easier
// to obtain: plantable ingredients never score lower, and unique or pricier
// ingredients never score higher, than otherwise identical ones.
func (w Weights) Score(ing domain.Ingredient) float64 {
	score := w.Scale * (1 - utils.DiminishingReturns(ing.Value, w.ValueScale))
	if ing.Plantable {
		score *= w.PlantableBonus
	}
	score /= 1 + w.RarityStep*float64(ing.VendorRarity.Ordinal())
	return score / w.uniquePenalty(ing.UniqueTo)
}

func (w Weights) uniquePenalty(source domain.UniqueSource) float64 {
	if !source.IsUnique() {
		return 1
	}
	if penalty, ok := w.UniquePenalties[source]; ok {
		return penalty
	}
	return w.DefaultUniquePenalty
}

// Ingredients is the read-only ingredient source scored by Accessibility
type Ingredients interface {
	Get(name string) (domain.Ingredient, error)
	Ingredients() []domain.Ingredient
}

// Accessibility holds precomputed scores for every ingredient of a dataset.
// It satisfies brewing.Scorer.
type Accessibility struct {
	source Ingredients
	scores map[string]float64 // canonical name -> score
}

// NewAccessibility scores every ingredient of source with w
func NewAccessibility(ctx context.Context, source Ingredients, w Weights) (*Accessibility, error) {
	if err := validator.New().Struct(w); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidWeights, err)
	}

	ingredients := source.Ingredients()
	a := &Accessibility{
		source: source,
		scores: make(map[string]float64, len(ingredients)),
	}
	for _, ing := range ingredients {
		a.scores[ing.Name] = w.Score(ing)
	}

	logger.FromContext(ctx).Debug(LogMsgScoresComputed, "ingredients", len(a.scores))
	return a, nil
}

// Score returns the accessibility of the named ingredient
func (a *Accessibility) Score(name string) (float64, error) {
	ing, err := a.source.Get(name)
	if err != nil {
		return 0, err
	}
	return a.scores[ing.Name], nil
}
