package domain

import (
	"encoding/json"
	"fmt"
)

// Ingredient is an alchemy ingredient. Name is the primary key.
type Ingredient struct {
	Name         string       `json:"name"`
	Value        float64      `json:"value"` // Base vendor price
	Plantable    bool         `json:"plantable"`
	VendorRarity VendorRarity `json:"vendor_rarity"`
	UniqueTo     UniqueSource `json:"unique_to"`
}

// VendorRarity describes how rarely vendors stock an ingredient.
// The zero value VendorRarityNone means the ingredient is not sold by vendors.
type VendorRarity int

const (
	VendorRarityNone VendorRarity = iota
	VendorRarityCommon
	VendorRarityUncommon
	VendorRarityRare
	VendorRarityLimited
)

// unsoldOrdinal ranks "not sold" above the rarest stocked tier.
const unsoldOrdinal = 5

// ParseVendorRarity converts a dataset value into a VendorRarity.
// An empty string maps to VendorRarityNone.
func ParseVendorRarity(s string) (VendorRarity, error) {
	switch s {
	case "":
		return VendorRarityNone, nil
	case RarityNameCommon:
		return VendorRarityCommon, nil
	case RarityNameUncommon:
		return VendorRarityUncommon, nil
	case RarityNameRare:
		return VendorRarityRare, nil
	case RarityNameLimited:
		return VendorRarityLimited, nil
	default:
		return VendorRarityNone, fmt.Errorf("%w: unknown vendor rarity %q", ErrInvalidData, s)
	}
}

// IsVendorSold reports whether any vendor stocks the ingredient.
func (r VendorRarity) IsVendorSold() bool {
	return r != VendorRarityNone
}

// Ordinal returns 1 (common) to 4 (limited) for stocked ingredients and 5 when unsold.
func (r VendorRarity) Ordinal() int {
	if r == VendorRarityNone {
		return unsoldOrdinal
	}
	return int(r)
}

func (r VendorRarity) String() string {
	switch r {
	case VendorRarityCommon:
		return RarityNameCommon
	case VendorRarityUncommon:
		return RarityNameUncommon
	case VendorRarityRare:
		return RarityNameRare
	case VendorRarityLimited:
		return RarityNameLimited
	default:
		return ""
	}
}

// MarshalJSON encodes unsold ingredients as null.
func (r VendorRarity) MarshalJSON() ([]byte, error) {
	if r == VendorRarityNone {
		return []byte("null"), nil
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts null, "" or one of the rarity names.
func (r *VendorRarity) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*r = VendorRarityNone
		return nil
	}
	parsed, err := ParseVendorRarity(*s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// UniqueSource names the DLC, plugin, quest or location an ingredient is tied to.
// The zero value Unrestricted means the ingredient is generally available.
type UniqueSource string

// Unrestricted marks an ingredient with no unique source.
const Unrestricted UniqueSource = ""

// Known unique sources
const (
	UniqueSourceDawnguard    UniqueSource = "Dawnguard"
	UniqueSourceDragonborn   UniqueSource = "Dragonborn"
	UniqueSourceHearthfire   UniqueSource = "Hearthfire"
	UniqueSourceFishing      UniqueSource = "Fishing"
	UniqueSourceResourcePack UniqueSource = "ResourcePack"
	UniqueSourceRequiem      UniqueSource = "Requiem"
)

// IsUnique reports whether the ingredient is gated behind a unique source.
func (u UniqueSource) IsUnique() bool {
	return u != Unrestricted
}

// MarshalJSON encodes unrestricted ingredients as null.
func (u UniqueSource) MarshalJSON() ([]byte, error) {
	if u == Unrestricted {
		return []byte("null"), nil
	}
	return json.Marshal(string(u))
}
