package ranking

import (
	"context"
	"sort"

	"github.com/osse101/skyrim-alchemy/internal/brewing"
	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/logger"
)

// Service ranks ingredients and potions by how worthwhile they are to brew
type Service interface {
	IngredientAccessibility(name string) (float64, error)
	// ValuablePotions lists the potions containing ingredient by relative value, capped at topN when topN > 0
	ValuablePotions(ctx context.Context, ingredient string, topN int) ([]domain.Potion, error)
	// Recommended lists the most valuable potion per distinct effect profile across the dataset
	Recommended(ctx context.Context, topN int) ([]domain.Potion, error)
}

type service struct {
	accessibility *Accessibility
	engine        brewing.Engine
}

// NewService creates a new ranking service
func NewService(accessibility *Accessibility, engine brewing.Engine) Service {
	return &service{
		accessibility: accessibility,
		engine:        engine,
	}
}

func (s *service) IngredientAccessibility(name string) (float64, error) {
	return s.accessibility.Score(name)
}

func (s *service) ValuablePotions(ctx context.Context, ingredient string, topN int) ([]domain.Potion, error) {
	potions, err := s.engine.PotionsWith(ctx, ingredient)
	if err != nil {
		return nil, err
	}

	potions = TopByValue(potions, topN)

	logger.FromContext(ctx).Debug(LogMsgValuablePotionsFor, "ingredient", ingredient, "count", len(potions))
	return potions, nil
}

func (s *service) Recommended(ctx context.Context, topN int) ([]domain.Potion, error) {
	potions, err := s.engine.Enumerate(ctx, brewing.Query{})
	if err != nil {
		return nil, err
	}

	groups := brewing.Group(potions)
	best := make([]domain.Potion, 0, len(groups))
	for _, g := range groups {
		// combinations are ordered most accessible first, which is also the
		// highest relative value for a fixed price
		best = append(best, g.Combinations[0])
	}

	SortByValue(best)
	best = truncate(best, topN)

	logger.FromContext(ctx).Debug(LogMsgRecommendedRanked, "groups", len(groups), "count", len(best))
	return best, nil
}

// SortByValue orders potions by relative value descending, then price
// descending, then ingredient names
func SortByValue(potions []domain.Potion) {
	sort.SliceStable(potions, func(i, j int) bool {
		a, b := potions[i], potions[j]
		if a.RelativeValue != b.RelativeValue {
			return a.RelativeValue > b.RelativeValue
		}
		if a.Price != b.Price {
			return a.Price > b.Price
		}
		return brewing.LessIngredients(a.Ingredients, b.Ingredients)
	})
}

// TopByValue returns a value-sorted copy of potions capped at topN when
// topN > 0. The input slice is left untouched.
func TopByValue(potions []domain.Potion, topN int) []domain.Potion {
	sorted := append([]domain.Potion(nil), potions...)
	SortByValue(sorted)
	return truncate(sorted, topN)
}

func truncate(potions []domain.Potion, topN int) []domain.Potion {
	if topN > 0 && len(potions) > topN {
		return potions[:topN]
	}
	return potions
}
