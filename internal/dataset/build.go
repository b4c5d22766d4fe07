package dataset

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/metrics"
	"github.com/osse101/skyrim-alchemy/internal/pricing"
)

// Build validates the records and indexes them into a Store. Any structural
// violation yields domain.ErrInvalidData and no store.
func Build(ctx context.Context, records *Records) (*Store, error) {
	log := logger.FromContext(ctx)

	if records == nil {
		return nil, fmt.Errorf("%w: no records", domain.ErrInvalidData)
	}
	if err := validator.New().Struct(records); err != nil {
		return nil, fmt.Errorf(ErrFmtRecordValidation, domain.ErrInvalidData, err)
	}

	s := &Store{
		info: Info{
			Version:     records.Version,
			Description: records.Description,
			Checksum:    records.Checksum,
		},
		ingredients: make(map[string]domain.Ingredient, len(records.Ingredients)),
		effects:     make(map[string]domain.Effect, len(records.Effects)),
		traits:      make(map[string][]domain.Trait, len(records.Ingredients)),
		byEffect:    make(map[string][]domain.Potency, len(records.Effects)),
		potencies:   make(map[pairKey]domain.Potency, len(records.Traits)),
	}

	if err := s.indexIngredients(records.Ingredients); err != nil {
		return nil, err
	}
	log.Debug(LogMsgIngredientsIndexed, "count", len(s.ingredients))

	if err := s.indexEffects(records.Effects); err != nil {
		return nil, err
	}
	log.Debug(LogMsgEffectsIndexed, "count", len(s.effects))

	if err := s.indexTraits(records.Traits); err != nil {
		return nil, err
	}
	log.Debug(LogMsgTraitsIndexed, "count", s.traitCount)

	metrics.RecordDataset(len(s.ingredients), len(s.effects), s.traitCount)
	log.Info(LogMsgStoreBuilt,
		"version", s.info.Version,
		"ingredients", len(s.ingredients),
		"effects", len(s.effects),
		"traits", s.traitCount)

	return s, nil
}

func (s *Store) indexIngredients(recs []IngredientRecord) error {
	for _, rec := range recs {
		key := foldKey(rec.Name)
		if _, dup := s.ingredients[key]; dup {
			return fmt.Errorf(ErrFmtDuplicateIngr, domain.ErrInvalidData, rec.Name)
		}

		rarity, err := domain.ParseVendorRarity(deref(rec.VendorRarity))
		if err != nil {
			return err
		}

		s.ingredients[key] = domain.Ingredient{
			Name:         rec.Name,
			Value:        rec.Value,
			Plantable:    rec.Plantable,
			VendorRarity: rarity,
			UniqueTo:     domain.UniqueSource(deref(rec.UniqueTo)),
		}
		s.ingredientNames = append(s.ingredientNames, rec.Name)
	}
	sort.Strings(s.ingredientNames)
	return nil
}

func (s *Store) indexEffects(recs []EffectRecord) error {
	for _, rec := range recs {
		key := foldKey(rec.Name)
		if _, dup := s.effects[key]; dup {
			return fmt.Errorf(ErrFmtDuplicateEffect, domain.ErrInvalidData, rec.Name)
		}

		effectType, err := domain.ParseEffectType(deref(rec.EffectType))
		if err != nil {
			return err
		}

		eff := domain.Effect{Name: rec.Name, Type: effectType, BaseCost: rec.BaseCost}
		s.effects[key] = eff
		s.effectOrder = append(s.effectOrder, eff)
	}
	sort.Slice(s.effectOrder, func(i, j int) bool {
		return domain.EffectLess(s.effectOrder[i], s.effectOrder[j])
	})
	return nil
}

func (s *Store) indexTraits(recs []TraitRecord) error {
	for _, rec := range recs {
		ing, ok := s.ingredients[foldKey(rec.Ingredient)]
		if !ok {
			return fmt.Errorf(ErrFmtUnknownIngredient, domain.ErrInvalidData, rec.Ingredient)
		}
		eff, ok := s.effects[foldKey(rec.Effect)]
		if !ok {
			return fmt.Errorf(ErrFmtUnknownEffect, domain.ErrInvalidData, rec.Effect)
		}

		key := pairKey{ingredient: foldKey(ing.Name), effect: foldKey(eff.Name)}
		if _, dup := s.potencies[key]; dup {
			return fmt.Errorf(ErrFmtDuplicateTrait, domain.ErrInvalidData, ing.Name, eff.Name)
		}

		potency := domain.Potency{
			Ingredient: ing.Name,
			Effect:     eff.Name,
			Magnitude:  rec.Magnitude,
			Duration:   rec.Duration,
			Price:      pricing.EffectPrice(eff.BaseCost, rec.Magnitude, rec.Duration),
		}
		s.potencies[key] = potency
		s.traits[key.ingredient] = append(s.traits[key.ingredient], domain.Trait{
			Ingredient: ing.Name,
			Order:      rec.Order,
			Potency:    potency,
		})
		s.byEffect[key.effect] = append(s.byEffect[key.effect], potency)
		s.traitCount++
	}

	for _, name := range s.ingredientNames {
		if err := s.checkTraitOrders(name); err != nil {
			return err
		}
	}

	for key := range s.byEffect {
		potencies := s.byEffect[key]
		sort.Slice(potencies, func(i, j int) bool {
			return potencies[i].Ingredient < potencies[j].Ingredient
		})
	}
	return nil
}

// checkTraitOrders requires the orders of an ingredient's traits to be exactly 1..k
func (s *Store) checkTraitOrders(name string) error {
	key := foldKey(name)
	traits := s.traits[key]
	if len(traits) == 0 {
		return fmt.Errorf(ErrFmtNoTraits, domain.ErrInvalidData, name)
	}
	if len(traits) > domain.MaxTraitOrder {
		return fmt.Errorf(ErrFmtTooManyTraits, domain.ErrInvalidData, name, len(traits), domain.MaxTraitOrder)
	}

	sort.Slice(traits, func(i, j int) bool { return traits[i].Order < traits[j].Order })
	for i, trait := range traits {
		if trait.Order != i+domain.MinTraitOrder {
			orders := make([]int, len(traits))
			for j, t := range traits {
				orders[j] = t.Order
			}
			return fmt.Errorf(ErrFmtTraitOrder, domain.ErrInvalidData, name, orders, len(traits))
		}
	}
	return nil
}

// Open loads records from path (see Loader.LoadPath) and builds the store
func Open(ctx context.Context, l Loader, path string) (*Store, error) {
	records, err := l.LoadPath(path)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgDatasetLoaded,
		"path", path,
		"version", records.Version,
		"checksum", records.Checksum)

	return Build(ctx, records)
}
