package report

import (
	"github.com/osse101/skyrim-alchemy/internal/brewing"
	"github.com/osse101/skyrim-alchemy/internal/dataset"
	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/utils"
)

// Index summarizes a report run
type Index struct {
	RunID       string          `json:"run_id,omitempty"`
	Dataset     dataset.Info    `json:"dataset"`
	Ingredients int             `json:"ingredients"`
	Effects     int             `json:"effects"`
	Traits      int             `json:"traits"`
	Options     brewing.Options `json:"options"`
}

// IngredientRow is one line of the ingredient table
type IngredientRow struct {
	Name          string              `json:"name"`
	Value         float64             `json:"value"`
	Plantable     bool                `json:"plantable"`
	VendorRarity  domain.VendorRarity `json:"vendor_rarity"`
	UniqueTo      domain.UniqueSource `json:"unique_to"`
	Accessibility float64             `json:"accessibility"`
	Effects       []string            `json:"effects"`
}

// TraitView is one effect slot of an ingredient
type TraitView struct {
	Order     int     `json:"order"`
	Effect    string  `json:"effect"`
	Magnitude float64 `json:"magnitude"`
	Duration  float64 `json:"duration"`
	Price     float64 `json:"price"`
}

// IngredientPage is the detail view of an ingredient
type IngredientPage struct {
	IngredientRow
	Traits     []TraitView              `json:"traits"`
	Summary    domain.IngredientSummary `json:"summary"`
	Compatible []string                 `json:"compatible"`
	Potions    []PotionView             `json:"potions"`
	Groups     []GroupView              `json:"groups"`
}

// EffectRow is one line of the effect table
type EffectRow struct {
	Name     string               `json:"name"`
	Type     domain.EffectType    `json:"effect_type"`
	BaseCost float64              `json:"base_cost"`
	Summary  domain.EffectSummary `json:"summary"`
}

// PotencyView is one ingredient's delivery of an effect
type PotencyView struct {
	Ingredient    string  `json:"ingredient"`
	Magnitude     float64 `json:"magnitude"`
	Duration      float64 `json:"duration"`
	Price         float64 `json:"price"`
	Accessibility float64 `json:"accessibility"`
}

// EffectPage is the detail view of an effect
type EffectPage struct {
	EffectRow
	Ingredients []PotencyView `json:"ingredients"`
}

// EffectView is one effect of a potion
type EffectView struct {
	Effect    string  `json:"effect"`
	Magnitude float64 `json:"magnitude"`
	Duration  float64 `json:"duration"`
	Price     float64 `json:"price"`
}

// PotionView is a potion prepared for display
type PotionView struct {
	Ingredients   []string            `json:"ingredients"`
	Effects       []EffectView        `json:"effects"`
	Price         float64             `json:"price"`
	Accessibility float64             `json:"accessibility"`
	RelativeValue float64             `json:"relative_value"`
	Availability  domain.Availability `json:"availability,omitempty"`
}

// GroupView lists every combination brewing one effect profile
type GroupView struct {
	Effects      []EffectView `json:"effects"`
	Price        float64      `json:"price"`
	Combinations [][]string   `json:"combinations"`
}

func newPotionView(p domain.Potion) PotionView {
	return PotionView{
		Ingredients:   append([]string(nil), p.Ingredients...),
		Effects:       newEffectViews(p.Effects),
		Price:         utils.CropNumber(p.Price),
		Accessibility: utils.CropNumber(p.Accessibility),
		RelativeValue: utils.CropNumber(p.RelativeValue),
		Availability:  p.Availability,
	}
}

func newPotionViews(potions []domain.Potion) []PotionView {
	out := make([]PotionView, len(potions))
	for i, p := range potions {
		out[i] = newPotionView(p)
	}
	return out
}

func newEffectViews(effects []domain.Potency) []EffectView {
	out := make([]EffectView, len(effects))
	for i, e := range effects {
		out[i] = EffectView{
			Effect:    e.Effect,
			Magnitude: utils.CropNumber(e.Magnitude),
			Duration:  utils.CropNumber(e.Duration),
			Price:     utils.CropNumber(e.Price),
		}
	}
	return out
}

func newGroupViews(groups []domain.PotionGroup) []GroupView {
	out := make([]GroupView, len(groups))
	for i, g := range groups {
		combos := make([][]string, len(g.Combinations))
		for j, c := range g.Combinations {
			combos[j] = append([]string(nil), c.Ingredients...)
		}
		out[i] = GroupView{
			Effects:      newEffectViews(g.Effects),
			Price:        utils.CropNumber(g.Price),
			Combinations: combos,
		}
	}
	return out
}

func cropStatistic(s domain.Statistic) domain.Statistic {
	if !s.Valid {
		return s
	}
	return domain.NewStatistic(utils.CropNumber(s.Value))
}

func cropEffectSummary(s domain.EffectSummary) domain.EffectSummary {
	s.MedianMagnitude = cropStatistic(s.MedianMagnitude)
	s.MedianDuration = cropStatistic(s.MedianDuration)
	s.MedianPrice = cropStatistic(s.MedianPrice)
	s.MedianAccessibility = cropStatistic(s.MedianAccessibility)
	return s
}

func cropIngredientSummary(s domain.IngredientSummary) domain.IngredientSummary {
	s.MedianMagnitude = cropStatistic(s.MedianMagnitude)
	s.MedianDuration = cropStatistic(s.MedianDuration)
	s.MedianPrice = cropStatistic(s.MedianPrice)
	s.AveragePotencyPrice = cropStatistic(s.AveragePotencyPrice)
	s.AveragePotionPrice = cropStatistic(s.AveragePotionPrice)
	s.MedianPotionPrice = cropStatistic(s.MedianPotionPrice)
	return s
}
