package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/skyrim-alchemy/internal/brewing"
	"github.com/osse101/skyrim-alchemy/internal/dataset"
	"github.com/osse101/skyrim-alchemy/internal/ranking"
	"github.com/osse101/skyrim-alchemy/internal/stats"
)

func strPtr(s string) *string { return &s }

// Accessibility with default weights:
//
//	Alpha Root  130.7
//	Beta Cap     36.4
//	Gamma Scale   5.7
func testRecords() *dataset.Records {
	return &dataset.Records{
		Version:     "1.0",
		Description: "report fixture",
		Ingredients: []dataset.IngredientRecord{
			{Name: "Alpha Root", Value: 2, Plantable: true, VendorRarity: strPtr("common")},
			{Name: "Beta Cap", Value: 10, VendorRarity: strPtr("rare")},
			{Name: "Gamma Scale", Value: 25, UniqueTo: strPtr("Dragonborn")},
		},
		Effects: []dataset.EffectRecord{
			{Name: "Restore X", EffectType: strPtr("beneficial"), BaseCost: 1},
			{Name: "Damage Z", EffectType: strPtr("harmful"), BaseCost: 2},
			{Name: "Cure W", BaseCost: 3},
		},
		Traits: []dataset.TraitRecord{
			{Ingredient: "Alpha Root", Effect: "Restore X", Magnitude: 10, Duration: 5, Order: 1},
			{Ingredient: "Alpha Root", Effect: "Cure W", Magnitude: 1, Order: 2},
			{Ingredient: "Beta Cap", Effect: "Restore X", Magnitude: 15, Duration: 3, Order: 1},
			{Ingredient: "Beta Cap", Effect: "Damage Z", Magnitude: 3, Order: 2},
			{Ingredient: "Gamma Scale", Effect: "Damage Z", Magnitude: 1, Order: 1},
		},
	}
}

func newTestService(t testing.TB) Service {
	t.Helper()
	ctx := context.Background()

	store, err := dataset.Build(ctx, testRecords())
	require.NoError(t, err)

	access, err := ranking.NewAccessibility(ctx, store, ranking.DefaultWeights())
	require.NoError(t, err)

	engine, err := brewing.NewEngine(ctx, store, access, brewing.DefaultOptions())
	require.NoError(t, err)

	return NewService(
		store,
		ranking.NewService(access, engine),
		stats.NewService(store, access, engine, stats.CacheConfig{}),
		engine,
		Config{RunID: "run-1"},
	)
}
