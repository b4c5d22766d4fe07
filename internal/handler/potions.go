package handler

import (
	"net/http"

	"github.com/osse101/skyrim-alchemy/internal/brewing"
	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/report"
)

// BrewQuery is the validated form of GET /brew
type BrewQuery struct {
	Ingredients []string `validate:"min=2,max=4,unique,dive,ingredient_name"`
}

// PotionsQuery is the validated form of GET /potions
type PotionsQuery struct {
	Require []string `validate:"max=4,dive,ingredient_name"`
	Limit   int      `validate:"gte=0,lte=1000"`
}

// BrewResponse wraps the brewed potion. Potion is null when the ingredients
// share no effect.
type BrewResponse struct {
	Potion *report.PotionView `json:"potion"`
}

// HandleBrew combines 2 to 4 ingredients
// @Summary Brew a potion
// @Description Combine ingredients; potion is null when they share no effect
// @Tags potions
// @Produce json
// @Param ingredients query string true "Comma separated ingredient names"
// @Success 200 {object} BrewResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/brew [get]
func HandleBrew(svc report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		raw, ok := GetQueryParam(r, w, QueryIngredients)
		if !ok {
			return
		}
		q := BrewQuery{Ingredients: splitList(raw)}
		if err := validateQuery(w, r, q); err != nil {
			return
		}

		log.Debug(LogMsgBrewRequest, "ingredients", q.Ingredients)
		potion, err := svc.Brew(r.Context(), q.Ingredients)
		if err != nil {
			respondServiceError(w, r, ErrMsgBrewFailed, err)
			return
		}
		if potion == nil {
			log.Debug(LogMsgNothingShared, "ingredients", q.Ingredients)
		}
		respondJSON(w, http.StatusOK, BrewResponse{Potion: potion})
	}
}

// HandleListPotions enumerates potions in count-then-name order
// @Summary Enumerate potions
// @Tags potions
// @Produce json
// @Param require query string false "Comma separated ingredients every potion must contain"
// @Param limit query int false "Maximum potions, 0 for all" default(20)
// @Success 200 {object} DataResponse{data=[]report.PotionView}
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/potions [get]
func HandleListPotions(svc report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(r, w, DefaultLimit)
		if !ok {
			return
		}
		q := PotionsQuery{
			Require: splitList(GetOptionalQueryParam(r, QueryRequire, "")),
			Limit:   limit,
		}
		if err := validateQuery(w, r, q); err != nil {
			return
		}

		potions, err := svc.Potions(r.Context(), brewing.Query{Require: q.Require, Limit: q.Limit})
		if err != nil {
			respondServiceError(w, r, ErrMsgListPotionsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(potions), Data: potions})
	}
}

// HandleRecommended returns the best combination of each effect profile
// @Summary Recommended potions
// @Tags potions
// @Produce json
// @Param limit query int false "Maximum potions, 0 for all" default(20)
// @Success 200 {object} DataResponse{data=[]report.PotionView}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/potions/recommended [get]
func HandleRecommended(svc report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(r, w, DefaultLimit)
		if !ok {
			return
		}

		potions, err := svc.Recommended(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgRecommendFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(potions), Data: potions})
	}
}
