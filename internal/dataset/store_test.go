package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skyrim-alchemy/internal/domain"
)

func buildSmall(t *testing.T) *Store {
	t.Helper()
	store, err := Build(context.Background(), smallRecords())
	require.NoError(t, err)
	return store
}

func TestStore_Get(t *testing.T) {
	store := buildSmall(t)

	ing, err := store.Get("beta cap")
	require.NoError(t, err)
	assert.Equal(t, "Beta Cap", ing.Name)

	ing, err = store.Get("  BETA CAP ")
	require.NoError(t, err)
	assert.Equal(t, "Beta Cap", ing.Name)

	_, err = store.Get("Delta Moss")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Delta Moss")
}

func TestStore_Effect(t *testing.T) {
	store := buildSmall(t)

	eff, err := store.Effect("RESTORE X")
	require.NoError(t, err)
	assert.Equal(t, "Restore X", eff.Name)

	_, err = store.Effect("Cure W")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Ordering(t *testing.T) {
	store := buildSmall(t)

	assert.Equal(t, []string{"Alpha Root", "Beta Cap", "Gamma Scale"}, store.IngredientNames())

	ingredients := store.Ingredients()
	require.Len(t, ingredients, 3)
	assert.Equal(t, "Alpha Root", ingredients[0].Name)

	effects := store.Effects()
	require.Len(t, effects, 3)
	assert.Equal(t, "Fortify Y", effects[0].Name)
	assert.Equal(t, "Restore X", effects[1].Name)
	assert.Equal(t, "Damage Z", effects[2].Name)
}

func TestStore_EffectIndexes(t *testing.T) {
	store := buildSmall(t)

	assert.Equal(t, []string{"Alpha Root", "Beta Cap"}, store.EffectIngredients("Restore X"))
	assert.Equal(t, []string{"Beta Cap", "Gamma Scale"}, store.EffectIngredients("damage z"))
	assert.Empty(t, store.EffectIngredients("Cure W"))

	potencies := store.EffectPotencies("Restore X")
	require.Len(t, potencies, 2)
	assert.Equal(t, 10.0, potencies[0].Magnitude)
	assert.Equal(t, 15.0, potencies[1].Magnitude)
}

func TestStore_Potency(t *testing.T) {
	store := buildSmall(t)

	p, ok := store.Potency("beta cap", "restore x")
	require.True(t, ok)
	assert.Equal(t, "Beta Cap", p.Ingredient)
	assert.Equal(t, "Restore X", p.Effect)
	assert.Equal(t, 15.0, p.Magnitude)
	assert.Equal(t, 3.0, p.Duration)

	_, ok = store.Potency("Gamma Scale", "Restore X")
	assert.False(t, ok)
}

func TestStore_CompatibleIngredients(t *testing.T) {
	store := buildSmall(t)

	names, err := store.CompatibleIngredients("Beta Cap")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha Root", "Gamma Scale"}, names)

	names, err = store.CompatibleIngredients("Gamma Scale")
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta Cap"}, names)

	_, err = store.CompatibleIngredients("Delta Moss")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := buildSmall(t)

	traits := store.Traits("Alpha Root")
	traits[0].Potency.Magnitude = 999

	names := store.IngredientNames()
	names[0] = "Mutated"

	effects := store.Effects()
	effects[0].BaseCost = 999

	again := store.Traits("Alpha Root")
	assert.Equal(t, 10.0, again[0].Potency.Magnitude)
	assert.Equal(t, "Alpha Root", store.IngredientNames()[0])
	assert.Equal(t, 0.5, store.Effects()[0].BaseCost)
}
