package brewing

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/pricing"
)

// Dataset is the read-only view of the ingredient store used by the engine
type Dataset interface {
	Get(name string) (domain.Ingredient, error)
	Effect(name string) (domain.Effect, error)
	IngredientNames() []string
	Traits(ingredient string) []domain.Trait
}

// Scorer rates how easy an ingredient is to obtain. Higher is easier.
type Scorer interface {
	Score(ingredient string) (float64, error)
}

// Engine combines ingredients into potions
type Engine interface {
	// Brew combines 2 to 4 distinct ingredients. ok is false when they share no effect.
	Brew(ctx context.Context, names []string) (potion domain.Potion, ok bool, err error)
	// Enumerate lists every valid potion selected by q, by ingredient count then names
	Enumerate(ctx context.Context, q Query) ([]domain.Potion, error)
	// PotionsWith lists every valid potion containing the ingredient
	PotionsWith(ctx context.Context, ingredient string) ([]domain.Potion, error)
	// GroupedPotions groups PotionsWith by effect profile
	GroupedPotions(ctx context.Context, ingredient string) ([]domain.PotionGroup, error)
	Options() Options
}

type trait struct {
	effect    int // index into engine.effects
	magnitude float64
	duration  float64
}

type entry struct {
	ingredient domain.Ingredient
	score      float64
	traits     []trait
}

type engine struct {
	dataset Dataset
	opts    Options

	entries []entry         // sorted by ingredient name
	index   map[string]int  // canonical ingredient name -> entries index
	effects []domain.Effect // sorted by name, so effect indexes order like names
}

// NewEngine precomputes per-ingredient traits and accessibility scores
func NewEngine(ctx context.Context, ds Dataset, scorer Scorer, opts Options) (Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	names := ds.IngredientNames()
	e := &engine{
		dataset: ds,
		opts:    opts,
		entries: make([]entry, len(names)),
		index:   make(map[string]int, len(names)),
	}

	effectIndex := make(map[string]int)
	for _, name := range names {
		for _, t := range ds.Traits(name) {
			effectIndex[t.Effect()] = 0
		}
	}
	effectNames := make([]string, 0, len(effectIndex))
	for name := range effectIndex {
		effectNames = append(effectNames, name)
	}
	sort.Strings(effectNames)
	e.effects = make([]domain.Effect, len(effectNames))
	for i, name := range effectNames {
		eff, err := ds.Effect(name)
		if err != nil {
			return nil, err
		}
		e.effects[i] = eff
		effectIndex[name] = i
	}

	for i, name := range names {
		ing, err := ds.Get(name)
		if err != nil {
			return nil, err
		}
		score, err := scorer.Score(name)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScoreFailed, name, err)
		}

		traits := ds.Traits(name)
		ent := entry{ingredient: ing, score: score, traits: make([]trait, len(traits))}
		for j, t := range traits {
			ent.traits[j] = trait{
				effect:    effectIndex[t.Effect()],
				magnitude: t.Potency.Magnitude,
				duration:  t.Potency.Duration,
			}
		}
		e.entries[i] = ent
		e.index[name] = i
	}

	logger.FromContext(ctx).Debug(LogMsgEngineReady,
		"ingredients", len(e.entries),
		"effects", len(e.effects),
		"max_ingredients", opts.MaxIngredients,
		"workers", opts.Workers)

	return e, nil
}

func (e *engine) Options() Options {
	return e.opts
}

func (e *engine) Brew(_ context.Context, names []string) (domain.Potion, bool, error) {
	if len(names) < domain.MinIngredients || len(names) > domain.MaxIngredients {
		return domain.Potion{}, false, fmt.Errorf(ErrFmtCombinationSize,
			domain.ErrInvalidCombination, len(names), domain.MinIngredients, domain.MaxIngredients)
	}

	combo, err := e.resolve(names)
	if err != nil {
		return domain.Potion{}, false, err
	}

	seen := make(map[int]bool, len(combo))
	for _, idx := range combo {
		if seen[idx] {
			return domain.Potion{}, false, fmt.Errorf(ErrFmtDuplicateIngredient,
				domain.ErrInvalidCombination, e.entries[idx].ingredient.Name)
		}
		seen[idx] = true
	}
	sort.Ints(combo)

	potion, ok := e.brew(combo)
	return potion, ok, nil
}

// resolve maps names to entry indexes, keeping duplicates
func (e *engine) resolve(names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		ing, err := e.dataset.Get(name)
		if err != nil {
			return nil, err
		}
		out[i] = e.index[ing.Name]
	}
	return out, nil
}

// resolveSet maps names to sorted, distinct entry indexes
func (e *engine) resolveSet(names []string) ([]int, error) {
	resolved, err := e.resolve(names)
	if err != nil {
		return nil, err
	}
	sort.Ints(resolved)

	out := resolved[:0]
	for i, idx := range resolved {
		if i == 0 || idx != resolved[i-1] {
			out = append(out, idx)
		}
	}
	return out, nil
}

type shared struct {
	effect    int
	carriers  int
	magnitude float64
	duration  float64
}

// profile returns the effects carried by at least two ingredients of combo,
// each at the strongest magnitude and longest duration, ordered by effect name
func (e *engine) profile(combo []int) []shared {
	var acc []shared
	for _, idx := range combo {
		for _, t := range e.entries[idx].traits {
			found := false
			for k := range acc {
				if acc[k].effect == t.effect {
					acc[k].carriers++
					acc[k].magnitude = max(acc[k].magnitude, t.magnitude)
					acc[k].duration = max(acc[k].duration, t.duration)
					found = true
					break
				}
			}
			if !found {
				acc = append(acc, shared{effect: t.effect, carriers: 1, magnitude: t.magnitude, duration: t.duration})
			}
		}
	}

	out := acc[:0]
	for _, s := range acc {
		if s.carriers >= 2 {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].effect < out[j].effect })
	return out
}

// brew builds the potion for combo, which must be sorted and distinct
func (e *engine) brew(combo []int) (domain.Potion, bool) {
	effects := e.profile(combo)
	if len(effects) == 0 {
		return domain.Potion{}, false
	}
	return e.potion(combo, effects), true
}

// brewFiltered is brew with the enumeration filters applied
func (e *engine) brewFiltered(combo []int) (domain.Potion, bool) {
	effects := e.profile(combo)
	if len(effects) == 0 {
		return domain.Potion{}, false
	}
	if e.opts.PureOnly && !e.isPure(effects) {
		return domain.Potion{}, false
	}
	if e.opts.RequireImprovement && !e.isImprovement(combo, effects) {
		return domain.Potion{}, false
	}
	return e.potion(combo, effects), true
}

func (e *engine) potion(combo []int, effects []shared) domain.Potion {
	potion := domain.Potion{
		Ingredients: make([]string, len(combo)),
		Effects:     make([]domain.Potency, len(effects)),
	}

	ingredients := make([]domain.Ingredient, len(combo))
	for i, idx := range combo {
		ent := e.entries[idx]
		ingredients[i] = ent.ingredient
		potion.Ingredients[i] = ent.ingredient.Name
		if i == 0 || ent.score < potion.Accessibility {
			potion.Accessibility = ent.score
		}
	}

	for i, s := range effects {
		eff := e.effects[s.effect]
		potion.Effects[i] = domain.Potency{
			Effect:    eff.Name,
			Magnitude: s.magnitude,
			Duration:  s.duration,
			Price:     pricing.PotencyPrice(eff, s.magnitude, s.duration),
		}
	}

	potion.Price = pricing.PotionPrice(potion.Effects)
	if potion.Accessibility > 0 {
		potion.RelativeValue = potion.Price / potion.Accessibility
	}
	potion.Availability = availability(ingredients)

	return potion
}
