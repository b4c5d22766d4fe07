package brewing

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/skyrim-alchemy/internal/dataset"
	"github.com/osse101/skyrim-alchemy/internal/domain"
)

func strPtr(s string) *string { return &s }

// testRecords sorts as Alpha Root, Beta Cap, Delta Moss, Gamma Scale.
//
//	Alpha Root:  Restore X 10/5, Fortify Y 4/60
//	Beta Cap:    Restore X 15/3, Damage Z 3/0
//	Delta Moss:  Fortify Y 2/30, Cure W 1/0
//	Gamma Scale: Damage Z 1/0
func testRecords() *dataset.Records {
	return &dataset.Records{
		Version: "1.0",
		Ingredients: []dataset.IngredientRecord{
			{Name: "Alpha Root", Value: 2, Plantable: true, VendorRarity: strPtr("common")},
			{Name: "Beta Cap", Value: 10, VendorRarity: strPtr("rare")},
			{Name: "Delta Moss", Value: 4, Plantable: true, VendorRarity: strPtr("uncommon")},
			{Name: "Gamma Scale", Value: 25, UniqueTo: strPtr("Dragonborn")},
		},
		Effects: []dataset.EffectRecord{
			{Name: "Restore X", EffectType: strPtr("beneficial"), BaseCost: 1},
			{Name: "Fortify Y", EffectType: strPtr("beneficial"), BaseCost: 0.5},
			{Name: "Damage Z", EffectType: strPtr("harmful"), BaseCost: 2},
			{Name: "Cure W", BaseCost: 3},
		},
		Traits: []dataset.TraitRecord{
			{Ingredient: "Alpha Root", Effect: "Restore X", Magnitude: 10, Duration: 5, Order: 1},
			{Ingredient: "Alpha Root", Effect: "Fortify Y", Magnitude: 4, Duration: 60, Order: 2},
			{Ingredient: "Beta Cap", Effect: "Restore X", Magnitude: 15, Duration: 3, Order: 1},
			{Ingredient: "Beta Cap", Effect: "Damage Z", Magnitude: 3, Order: 2},
			{Ingredient: "Delta Moss", Effect: "Fortify Y", Magnitude: 2, Duration: 30, Order: 1},
			{Ingredient: "Delta Moss", Effect: "Cure W", Magnitude: 1, Order: 2},
			{Ingredient: "Gamma Scale", Effect: "Damage Z", Magnitude: 1, Order: 1},
		},
	}
}

// mapScorer scores ingredients from a fixed table
type mapScorer map[string]float64

func (m mapScorer) Score(name string) (float64, error) {
	score, ok := m[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	return score, nil
}

var testScores = mapScorer{
	"Alpha Root":  50,
	"Beta Cap":    10,
	"Delta Moss":  40,
	"Gamma Scale": 5,
}

func newTestEngine(t testing.TB, opts Options) Engine {
	t.Helper()
	store, err := dataset.Build(context.Background(), testRecords())
	require.NoError(t, err)

	engine, err := NewEngine(context.Background(), store, testScores, opts)
	require.NoError(t, err)
	return engine
}

func sampleStore(t testing.TB) *dataset.Store {
	t.Helper()
	store, err := dataset.Open(context.Background(), dataset.NewLoader(), "")
	require.NoError(t, err)
	return store
}

func sampleEngine(t testing.TB, opts Options) Engine {
	t.Helper()
	store := sampleStore(t)

	scores := make(mapScorer)
	for i, name := range store.IngredientNames() {
		scores[name] = float64(10 + i)
	}

	engine, err := NewEngine(context.Background(), store, scores, opts)
	require.NoError(t, err)
	return engine
}

func sampleEngineWithScorer(t testing.TB, scorer Scorer) (Engine, error) {
	t.Helper()
	return NewEngine(context.Background(), sampleStore(t), scorer, DefaultOptions())
}

func keys(potions []domain.Potion) []string {
	out := make([]string, len(potions))
	for i, p := range potions {
		out[i] = p.Key()
	}
	return out
}
