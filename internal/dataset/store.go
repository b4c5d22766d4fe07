package dataset

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/skyrim-alchemy/internal/domain"
)

// Info describes where the dataset came from
type Info struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Checksum    string `json:"checksum,omitempty"`
}

// Store is the immutable, indexed dataset. All lookups are case-insensitive
// and every returned slice is a copy, so a Store can be shared between
// goroutines without locking.
type Store struct {
	info Info

	ingredients map[string]domain.Ingredient // folded name -> ingredient
	effects     map[string]domain.Effect     // folded name -> effect
	traits      map[string][]domain.Trait    // folded ingredient -> traits by order
	byEffect    map[string][]domain.Potency  // folded effect -> potencies by ingredient name
	potencies   map[pairKey]domain.Potency

	ingredientNames []string        // canonical names, sorted
	effectOrder     []domain.Effect // by base cost, then name
	traitCount      int
}

type pairKey struct {
	ingredient string
	effect     string
}

// foldKey normalizes a name for lookup. A new Caser is created per call
// because Casers are stateful.
func foldKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Info returns the dataset provenance
func (s *Store) Info() Info {
	return s.info
}

// Get returns the ingredient with the given name
func (s *Store) Get(name string) (domain.Ingredient, error) {
	ing, ok := s.ingredients[foldKey(name)]
	if !ok {
		return domain.Ingredient{}, fmt.Errorf(ErrFmtIngredientNotFound, domain.ErrNotFound, name)
	}
	return ing, nil
}

// Effect returns the effect with the given name
func (s *Store) Effect(name string) (domain.Effect, error) {
	eff, ok := s.effects[foldKey(name)]
	if !ok {
		return domain.Effect{}, fmt.Errorf(ErrFmtEffectNotFound, domain.ErrNotFound, name)
	}
	return eff, nil
}

// Ingredients returns every ingredient sorted by name
func (s *Store) Ingredients() []domain.Ingredient {
	out := make([]domain.Ingredient, len(s.ingredientNames))
	for i, name := range s.ingredientNames {
		out[i] = s.ingredients[foldKey(name)]
	}
	return out
}

// IngredientNames returns every canonical ingredient name, sorted
func (s *Store) IngredientNames() []string {
	return append([]string(nil), s.ingredientNames...)
}

// Effects returns every effect ordered by base cost, then name
func (s *Store) Effects() []domain.Effect {
	return append([]domain.Effect(nil), s.effectOrder...)
}

// Traits returns the ingredient's traits ordered by trait order.
// Unknown ingredients have no traits.
func (s *Store) Traits(ingredient string) []domain.Trait {
	return append([]domain.Trait(nil), s.traits[foldKey(ingredient)]...)
}

// EffectPotencies returns every ingredient potency of the effect, by ingredient name
func (s *Store) EffectPotencies(effect string) []domain.Potency {
	return append([]domain.Potency(nil), s.byEffect[foldKey(effect)]...)
}

// EffectIngredients returns the names of the ingredients carrying the effect
func (s *Store) EffectIngredients(effect string) []string {
	potencies := s.byEffect[foldKey(effect)]
	names := make([]string, len(potencies))
	for i, p := range potencies {
		names[i] = p.Ingredient
	}
	return names
}

// Potency returns the potency of effect when delivered by ingredient
func (s *Store) Potency(ingredient, effect string) (domain.Potency, bool) {
	p, ok := s.potencies[pairKey{ingredient: foldKey(ingredient), effect: foldKey(effect)}]
	return p, ok
}

// CompatibleIngredients returns, sorted by name, every other ingredient
// sharing at least one effect with the named one
func (s *Store) CompatibleIngredients(name string) ([]string, error) {
	ing, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, trait := range s.traits[foldKey(ing.Name)] {
		for _, p := range s.byEffect[foldKey(trait.Effect())] {
			if p.Ingredient != ing.Name {
				seen[p.Ingredient] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// Len returns the number of ingredients, effects and traits
func (s *Store) Len() (ingredients, effects, traits int) {
	return len(s.ingredients), len(s.effects), s.traitCount
}
