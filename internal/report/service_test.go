package report

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skyrim-alchemy/internal/brewing"
	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/metrics"
)

func potionKeys(views []PotionView) [][]string {
	out := make([][]string, len(views))
	for i, v := range views {
		out[i] = v.Ingredients
	}
	return out
}

func TestIndex(t *testing.T) {
	svc := newTestService(t)

	index, err := svc.Index(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "run-1", index.RunID)
	assert.Equal(t, "1.0", index.Dataset.Version)
	assert.Equal(t, "report fixture", index.Dataset.Description)
	assert.Equal(t, 3, index.Ingredients)
	assert.Equal(t, 3, index.Effects)
	assert.Equal(t, 5, index.Traits)
	assert.Equal(t, brewing.DefaultOptions(), index.Options)
}

func TestIngredients(t *testing.T) {
	svc := newTestService(t)

	rows, err := svc.Ingredients(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Alpha Root", rows[0].Name)
	assert.Equal(t, 130.7, rows[0].Accessibility)
	assert.Equal(t, []string{"Restore X", "Cure W"}, rows[0].Effects)
	assert.Equal(t, domain.VendorRarityCommon, rows[0].VendorRarity)

	assert.Equal(t, 36.4, rows[1].Accessibility)

	assert.Equal(t, "Gamma Scale", rows[2].Name)
	assert.Equal(t, 5.7, rows[2].Accessibility)
	assert.Equal(t, domain.UniqueSourceDragonborn, rows[2].UniqueTo)
	assert.Equal(t, domain.VendorRarityNone, rows[2].VendorRarity)
}

func TestIngredient(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.Ingredient(context.Background(), "alpha root")
	require.NoError(t, err)

	assert.Equal(t, "Alpha Root", page.Name)
	require.Len(t, page.Traits, 2)
	assert.Equal(t, TraitView{Order: 1, Effect: "Restore X", Magnitude: 10, Duration: 5, Price: 15.8}, page.Traits[0])
	assert.Equal(t, []string{"Beta Cap"}, page.Compatible)

	assert.Equal(t, [][]string{
		{"Alpha Root", "Beta Cap", "Gamma Scale"},
		{"Alpha Root", "Beta Cap"},
	}, potionKeys(page.Potions))
	assert.Equal(t, 29.0, page.Potions[1].Price)
	assert.Equal(t, 36.4, page.Potions[1].Accessibility)

	require.Len(t, page.Groups, 2)
	assert.Equal(t, 39.4, page.Groups[0].Price)
	assert.Equal(t, [][]string{{"Alpha Root", "Beta Cap"}}, page.Groups[1].Combinations)

	assert.Equal(t, "Alpha Root", page.Summary.Ingredient)
	assert.Equal(t, 2, page.Summary.PotionCount)
}

func TestIngredient_EnumeratesOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// first call memoizes the summary
	_, err := svc.Ingredient(ctx, "Alpha Root")
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.CombinationsEvaluated)
	_, err = svc.Ingredient(ctx, "Alpha Root")
	require.NoError(t, err)

	// two pairs and one triple hold Alpha Root
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.CombinationsEvaluated)-before)
}

func TestIngredient_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Ingredient(context.Background(), "Nirnroot")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEffects(t *testing.T) {
	svc := newTestService(t)

	rows, err := svc.Effects(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Restore X", "Damage Z", "Cure W"}, []string{rows[0].Name, rows[1].Name, rows[2].Name})
	assert.Equal(t, domain.EffectTypeHarmful, rows[1].Type)
	assert.Equal(t, 2, rows[1].Summary.IngredientCount)
}

func TestEffect(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.Effect(context.Background(), "DAMAGE Z")
	require.NoError(t, err)

	assert.Equal(t, "Damage Z", page.Name)
	require.Len(t, page.Ingredients, 2)
	assert.Equal(t, PotencyView{Ingredient: "Beta Cap", Magnitude: 3, Price: 10.4, Accessibility: 36.4}, page.Ingredients[0])
	assert.Equal(t, "Gamma Scale", page.Ingredients[1].Ingredient)
	assert.Equal(t, 5.7, page.Ingredients[1].Accessibility)

	_, err = svc.Effect(context.Background(), "Fortify Nothing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBrew(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.Brew(ctx, []string{"Beta Cap", "Alpha Root"})
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, []string{"Alpha Root", "Beta Cap"}, view.Ingredients)
	assert.Equal(t, []EffectView{{Effect: "Restore X", Magnitude: 15, Duration: 5, Price: 29.0}}, view.Effects)

	view, err = svc.Brew(ctx, []string{"Alpha Root", "Gamma Scale"})
	require.NoError(t, err)
	assert.Nil(t, view)

	_, err = svc.Brew(ctx, []string{"Alpha Root"})
	assert.ErrorIs(t, err, domain.ErrInvalidCombination)
}

func TestPotions(t *testing.T) {
	svc := newTestService(t)

	views, err := svc.Potions(context.Background(), brewing.Query{Require: []string{"Gamma Scale"}})
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Beta Cap", "Gamma Scale"},
		{"Alpha Root", "Beta Cap", "Gamma Scale"},
	}, potionKeys(views))
}

func TestRecommended(t *testing.T) {
	svc := newTestService(t)

	views, err := svc.Recommended(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Alpha Root", "Beta Cap", "Gamma Scale"},
		{"Beta Cap", "Gamma Scale"},
		{"Alpha Root", "Beta Cap"},
	}, potionKeys(views))
	assert.Equal(t, 6.9, views[0].RelativeValue)

	views, err = svc.Recommended(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestPotionView_JSON(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.Brew(context.Background(), []string{"Alpha Root", "Beta Cap"})
	require.NoError(t, err)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"ingredients": ["Alpha Root", "Beta Cap"],
		"effects": [{"effect": "Restore X", "magnitude": 15, "duration": 5, "price": 29}],
		"price": 29,
		"accessibility": 36.4,
		"relative_value": 0.8,
		"availability": "rare"
	}`, string(data))
}

func TestValuablePotions(t *testing.T) {
	svc := newTestService(t)

	views, err := svc.ValuablePotions(context.Background(), "Gamma Scale", 0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Alpha Root", "Beta Cap", "Gamma Scale"},
		{"Beta Cap", "Gamma Scale"},
	}, potionKeys(views))

	_, err = svc.ValuablePotions(context.Background(), "Nirnroot", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
