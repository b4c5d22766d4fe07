package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/skyrim-alchemy/internal/brewing"
	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/utils"
)

// Dataset is the read-only store view needed for aggregation
type Dataset interface {
	Get(name string) (domain.Ingredient, error)
	Effect(name string) (domain.Effect, error)
	Traits(ingredient string) []domain.Trait
	EffectPotencies(effect string) []domain.Potency
}

// Service computes memoized per-entity aggregates. Every field of a summary
// is absent, never zero, when its source collection is empty.
type Service interface {
	EffectSummary(ctx context.Context, name string) (*domain.EffectSummary, error)
	IngredientSummary(ctx context.Context, name string) (*domain.IngredientSummary, error)
	// Purge drops every memoized summary
	Purge(ctx context.Context)
}

// CacheConfig sizes the summary cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type service struct {
	dataset Dataset
	scorer  brewing.Scorer
	engine  brewing.Engine
	cache   *summaryCache
}

// NewService creates a new stats service
func NewService(ds Dataset, scorer brewing.Scorer, engine brewing.Engine, cfg CacheConfig) Service {
	return &service{
		dataset: ds,
		scorer:  scorer,
		engine:  engine,
		cache:   newSummaryCache(cfg.Size, cfg.TTL),
	}
}

func (s *service) EffectSummary(ctx context.Context, name string) (*domain.EffectSummary, error) {
	eff, err := s.dataset.Effect(name)
	if err != nil {
		return nil, err
	}

	key := keyPrefixEffect + eff.Name
	if cached, ok := s.cache.get(key); ok {
		summary := *cached.(*domain.EffectSummary)
		return &summary, nil
	}

	potencies := s.dataset.EffectPotencies(eff.Name)
	magnitudes := make([]float64, len(potencies))
	durations := make([]float64, len(potencies))
	prices := make([]float64, len(potencies))
	scores := make([]float64, len(potencies))
	for i, p := range potencies {
		magnitudes[i] = p.Magnitude
		durations[i] = p.Duration
		prices[i] = p.Price
		score, err := s.scorer.Score(p.Ingredient)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScoreFailed, p.Ingredient, err)
		}
		scores[i] = score
	}

	summary := &domain.EffectSummary{
		Effect:              eff.Name,
		IngredientCount:     len(potencies),
		MedianMagnitude:     utils.MedianStatistic(magnitudes),
		MedianDuration:      utils.MedianStatistic(durations),
		MedianPrice:         utils.MedianStatistic(prices),
		MedianAccessibility: utils.MedianStatistic(scores),
	}
	s.cache.set(key, summary)

	logger.FromContext(ctx).Debug(LogMsgEffectSummarized, "effect", eff.Name, "ingredients", len(potencies))
	out := *summary
	return &out, nil
}

func (s *service) IngredientSummary(ctx context.Context, name string) (*domain.IngredientSummary, error) {
	ing, err := s.dataset.Get(name)
	if err != nil {
		return nil, err
	}

	key := keyPrefixIngredient + ing.Name
	if cached, ok := s.cache.get(key); ok {
		summary := *cached.(*domain.IngredientSummary)
		return &summary, nil
	}

	traits := s.dataset.Traits(ing.Name)
	magnitudes := make([]float64, len(traits))
	durations := make([]float64, len(traits))
	prices := make([]float64, len(traits))
	for i, t := range traits {
		magnitudes[i] = t.Potency.Magnitude
		durations[i] = t.Potency.Duration
		prices[i] = t.Potency.Price
	}

	potions, err := s.engine.PotionsWith(ctx, ing.Name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgPotionsFailed, ing.Name, err)
	}
	potionPrices := make([]float64, len(potions))
	for i, p := range potions {
		potionPrices[i] = p.Price
	}

	summary := &domain.IngredientSummary{
		Ingredient:          ing.Name,
		PotionCount:         len(potions),
		MedianMagnitude:     utils.MedianStatistic(magnitudes),
		MedianDuration:      utils.MedianStatistic(durations),
		MedianPrice:         utils.MedianStatistic(prices),
		AveragePotencyPrice: utils.MeanStatistic(prices),
		AveragePotionPrice:  utils.MeanStatistic(potionPrices),
		MedianPotionPrice:   utils.MedianStatistic(potionPrices),
	}
	s.cache.set(key, summary)

	logger.FromContext(ctx).Debug(LogMsgIngredientSummarized, "ingredient", ing.Name, "potions", len(potions))
	out := *summary
	return &out, nil
}

func (s *service) Purge(ctx context.Context) {
	s.cache.purge()
	logger.FromContext(ctx).Debug(LogMsgCachePurged)
}
