package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/skyrim-alchemy/internal/brewing"
	"github.com/osse101/skyrim-alchemy/internal/dataset"
	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/ranking"
	"github.com/osse101/skyrim-alchemy/internal/stats"
	"github.com/osse101/skyrim-alchemy/internal/utils"
)

// Catalog is the read-only dataset view the report layer needs
type Catalog interface {
	Info() dataset.Info
	Len() (ingredients, effects, traits int)
	Get(name string) (domain.Ingredient, error)
	Effect(name string) (domain.Effect, error)
	Ingredients() []domain.Ingredient
	Effects() []domain.Effect
	Traits(ingredient string) []domain.Trait
	EffectPotencies(effect string) []domain.Potency
	CompatibleIngredients(name string) ([]string, error)
}

// Service builds the display views served over HTTP and written to disk
type Service interface {
	Index(ctx context.Context) (*Index, error)
	Ingredients(ctx context.Context) ([]IngredientRow, error)
	Ingredient(ctx context.Context, name string) (*IngredientPage, error)
	Effects(ctx context.Context) ([]EffectRow, error)
	Effect(ctx context.Context, name string) (*EffectPage, error)
	// Brew returns nil when the ingredients share no effect
	Brew(ctx context.Context, names []string) (*PotionView, error)
	Potions(ctx context.Context, q brewing.Query) ([]PotionView, error)
	// ValuablePotions ranks the potions containing an ingredient by relative value
	ValuablePotions(ctx context.Context, ingredient string, topN int) ([]PotionView, error)
	Recommended(ctx context.Context, topN int) ([]PotionView, error)
}

// Config tunes the size of the generated views
type Config struct {
	// TopPotions caps the valuable potions listed on an ingredient page
	TopPotions int
	// RunID is stamped into the index when set
	RunID string
}

type service struct {
	catalog Catalog
	ranking ranking.Service
	stats   stats.Service
	engine  brewing.Engine
	cfg     Config
}

// NewService creates a report service
func NewService(catalog Catalog, rank ranking.Service, st stats.Service, engine brewing.Engine, cfg Config) Service {
	if cfg.TopPotions <= 0 {
		cfg.TopPotions = DefaultTopPotions
	}
	return &service{
		catalog: catalog,
		ranking: rank,
		stats:   st,
		engine:  engine,
		cfg:     cfg,
	}
}

func (s *service) Index(_ context.Context) (*Index, error) {
	ingredients, effects, traits := s.catalog.Len()
	return &Index{
		RunID:       s.cfg.RunID,
		Dataset:     s.catalog.Info(),
		Ingredients: ingredients,
		Effects:     effects,
		Traits:      traits,
		Options:     s.engine.Options(),
	}, nil
}

func (s *service) Ingredients(_ context.Context) ([]IngredientRow, error) {
	all := s.catalog.Ingredients()
	rows := make([]IngredientRow, 0, len(all))
	for _, ing := range all {
		row, err := s.ingredientRow(ing)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *service) ingredientRow(ing domain.Ingredient) (IngredientRow, error) {
	score, err := s.ranking.IngredientAccessibility(ing.Name)
	if err != nil {
		return IngredientRow{}, err
	}
	traits := s.catalog.Traits(ing.Name)
	effects := make([]string, len(traits))
	for i, t := range traits {
		effects[i] = t.Effect()
	}
	return IngredientRow{
		Name:          ing.Name,
		Value:         utils.CropNumber(ing.Value),
		Plantable:     ing.Plantable,
		VendorRarity:  ing.VendorRarity,
		UniqueTo:      ing.UniqueTo,
		Accessibility: utils.CropNumber(score),
		Effects:       effects,
	}, nil
}

func (s *service) Ingredient(ctx context.Context, name string) (*IngredientPage, error) {
	log := logger.FromContext(ctx)

	ing, err := s.catalog.Get(name)
	if err != nil {
		return nil, err
	}
	row, err := s.ingredientRow(ing)
	if err != nil {
		return nil, err
	}

	traits := s.catalog.Traits(ing.Name)
	views := make([]TraitView, len(traits))
	for i, t := range traits {
		views[i] = TraitView{
			Order:     t.Order,
			Effect:    t.Effect(),
			Magnitude: utils.CropNumber(t.Potency.Magnitude),
			Duration:  utils.CropNumber(t.Potency.Duration),
			Price:     utils.CropNumber(t.Potency.Price),
		}
	}

	summary, err := s.stats.IngredientSummary(ctx, ing.Name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSummaryFailed, ing.Name, err)
	}
	compatible, err := s.catalog.CompatibleIngredients(ing.Name)
	if err != nil {
		return nil, err
	}
	all, err := s.engine.PotionsWith(ctx, ing.Name)
	if err != nil {
		return nil, err
	}
	potions := ranking.TopByValue(all, s.cfg.TopPotions)
	groups := brewing.Group(all)

	log.Debug(LogMsgIngredientPageBuilt, "ingredient", ing.Name, "potions", len(potions), "groups", len(groups))
	return &IngredientPage{
		IngredientRow: row,
		Traits:        views,
		Summary:       cropIngredientSummary(*summary),
		Compatible:    compatible,
		Potions:       newPotionViews(potions),
		Groups:        newGroupViews(groups),
	}, nil
}

func (s *service) Effects(ctx context.Context) ([]EffectRow, error) {
	all := s.catalog.Effects()
	rows := make([]EffectRow, 0, len(all))
	for _, eff := range all {
		row, err := s.effectRow(ctx, eff)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *service) effectRow(ctx context.Context, eff domain.Effect) (EffectRow, error) {
	summary, err := s.stats.EffectSummary(ctx, eff.Name)
	if err != nil {
		return EffectRow{}, fmt.Errorf(ErrMsgSummaryFailed, eff.Name, err)
	}
	return EffectRow{
		Name:     eff.Name,
		Type:     eff.Type,
		BaseCost: utils.CropNumber(eff.BaseCost),
		Summary:  cropEffectSummary(*summary),
	}, nil
}

func (s *service) Effect(ctx context.Context, name string) (*EffectPage, error) {
	eff, err := s.catalog.Effect(name)
	if err != nil {
		return nil, err
	}
	row, err := s.effectRow(ctx, eff)
	if err != nil {
		return nil, err
	}

	potencies := s.catalog.EffectPotencies(eff.Name)
	views := make([]PotencyView, 0, len(potencies))
	for _, p := range potencies {
		score, err := s.ranking.IngredientAccessibility(p.Ingredient)
		if err != nil {
			return nil, err
		}
		views = append(views, PotencyView{
			Ingredient:    p.Ingredient,
			Magnitude:     utils.CropNumber(p.Magnitude),
			Duration:      utils.CropNumber(p.Duration),
			Price:         utils.CropNumber(p.Price),
			Accessibility: utils.CropNumber(score),
		})
	}
	return &EffectPage{EffectRow: row, Ingredients: views}, nil
}

func (s *service) Brew(ctx context.Context, names []string) (*PotionView, error) {
	potion, ok, err := s.engine.Brew(ctx, names)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgNoSharedEffect, "ingredients", strings.Join(names, ", "))
		return nil, nil
	}
	view := newPotionView(potion)
	return &view, nil
}

func (s *service) Potions(ctx context.Context, q brewing.Query) ([]PotionView, error) {
	potions, err := s.engine.Enumerate(ctx, q)
	if err != nil {
		return nil, err
	}
	return newPotionViews(potions), nil
}

func (s *service) Recommended(ctx context.Context, topN int) ([]PotionView, error) {
	potions, err := s.ranking.Recommended(ctx, topN)
	if err != nil {
		return nil, err
	}
	return newPotionViews(potions), nil
}

func (s *service) ValuablePotions(ctx context.Context, ingredient string, topN int) ([]PotionView, error) {
	potions, err := s.ranking.ValuablePotions(ctx, ingredient, topN)
	if err != nil {
		return nil, err
	}
	return newPotionViews(potions), nil
}
