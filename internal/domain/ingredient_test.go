package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVendorRarity(t *testing.T) {
	tests := []struct {
		input    string
		expected VendorRarity
		ordinal  int
	}{
		{"", VendorRarityNone, 5},
		{"common", VendorRarityCommon, 1},
		{"uncommon", VendorRarityUncommon, 2},
		{"rare", VendorRarityRare, 3},
		{"limited", VendorRarityLimited, 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseVendorRarity(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
			assert.Equal(t, tt.ordinal, r.Ordinal())
			assert.Equal(t, tt.input, r.String())
		})
	}

	_, err := ParseVendorRarity("legendary")
	assert.True(t, errors.Is(err, ErrInvalidData))
}

func TestVendorRarity_JSON(t *testing.T) {
	var ing struct {
		Rarity VendorRarity `json:"vendor_rarity"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"vendor_rarity":"rare"}`), &ing))
	assert.Equal(t, VendorRarityRare, ing.Rarity)
	assert.True(t, ing.Rarity.IsVendorSold())

	require.NoError(t, json.Unmarshal([]byte(`{"vendor_rarity":null}`), &ing))
	assert.Equal(t, VendorRarityNone, ing.Rarity)
	assert.False(t, ing.Rarity.IsVendorSold())

	data, err := json.Marshal(Ingredient{Name: "Salt Pile", Value: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Salt Pile","value":2,"plantable":false,"vendor_rarity":null,"unique_to":null}`, string(data))
}

func TestUniqueSource(t *testing.T) {
	assert.False(t, Unrestricted.IsUnique())
	assert.True(t, UniqueSourceDawnguard.IsUnique())
}

func TestParseEffectType(t *testing.T) {
	for _, s := range []string{"", "beneficial", "harmful"} {
		et, err := ParseEffectType(s)
		require.NoError(t, err)
		assert.Equal(t, EffectType(s), et)
	}
	_, err := ParseEffectType("neutral")
	assert.True(t, errors.Is(err, ErrInvalidData))
}

func TestEffectLess(t *testing.T) {
	cheap := Effect{Name: "Restore Stamina", BaseCost: 1.8}
	pricey := Effect{Name: "Fortify Health", BaseCost: 0.35}
	assert.True(t, EffectLess(pricey, cheap))
	assert.False(t, EffectLess(cheap, pricey))

	a := Effect{Name: "A", BaseCost: 1}
	b := Effect{Name: "B", BaseCost: 1}
	assert.True(t, EffectLess(a, b))
}
