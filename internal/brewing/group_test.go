package brewing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skyrim-alchemy/internal/domain"
)

func TestGroup_CollapsesIdenticalProfiles(t *testing.T) {
	engine := newTestEngine(t, DefaultOptions())

	potions, err := engine.Enumerate(context.Background(), Query{})
	require.NoError(t, err)

	groups := Group(potions)
	require.Len(t, groups, 6)

	for i := 1; i < len(groups); i++ {
		assert.GreaterOrEqual(t, groups[i-1].Price, groups[i].Price)
	}

	var fortify domain.PotionGroup
	for _, g := range groups {
		if len(g.Effects) == 1 && g.Effects[0].Effect == "Fortify Y" {
			fortify = g
		}
	}
	require.Len(t, fortify.Combinations, 2)
	// higher accessibility first
	assert.Equal(t, "Alpha Root+Delta Moss", fortify.Combinations[0].Key())
	assert.Equal(t, "Alpha Root+Delta Moss+Gamma Scale", fortify.Combinations[1].Key())
	assert.Equal(t, fortify.Combinations[0].Signature(), fortify.Key)
}

func TestGroup_TiesOrderedByNames(t *testing.T) {
	effects := []domain.Potency{{Effect: "Restore X", Magnitude: 1, Price: 1}}
	potions := []domain.Potion{
		{Ingredients: []string{"B", "C", "D"}, Effects: effects, Price: 1, Accessibility: 7},
		{Ingredients: []string{"B", "C"}, Effects: effects, Price: 1, Accessibility: 7},
		{Ingredients: []string{"A", "Z"}, Effects: effects, Price: 1, Accessibility: 7},
	}

	groups := Group(potions)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"A+Z", "B+C", "B+C+D"}, keys(groups[0].Combinations))
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, Group(nil))
}

func TestGroupedPotions(t *testing.T) {
	engine := newTestEngine(t, DefaultOptions())

	groups, err := engine.GroupedPotions(context.Background(), "Gamma Scale")
	require.NoError(t, err)
	// Z alone (two combinations), X+Z, Y alone, X+Y+Z
	assert.Len(t, groups, 4)

	_, err = engine.GroupedPotions(context.Background(), "Omega Leaf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
