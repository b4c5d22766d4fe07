package handler

import (
	"net/http"

	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/report"
)

// HandleListIngredients lists every ingredient with its accessibility
// @Summary List ingredients
// @Tags ingredients
// @Produce json
// @Success 200 {object} DataResponse{data=[]report.IngredientRow}
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ingredients [get]
func HandleListIngredients(svc report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Ingredients(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetIngredientsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(rows), Data: rows})
	}
}

// HandleGetIngredient returns the detail page of one ingredient
// @Summary Get ingredient
// @Description Traits, statistics, compatible ingredients, valuable potions and potion groups
// @Tags ingredients
// @Produce json
// @Param name path string true "Ingredient name (case-insensitive)"
// @Success 200 {object} report.IngredientPage
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ingredients/{name} [get]
func HandleGetIngredient(svc report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := pathName(r)
		logger.FromContext(r.Context()).Debug("Get ingredient", "name", name)

		page, err := svc.Ingredient(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetIngredientFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, page)
	}
}

// HandleGetIngredientPotions ranks the potions an ingredient takes part in
// @Summary Valuable potions of an ingredient
// @Tags ingredients
// @Produce json
// @Param name path string true "Ingredient name (case-insensitive)"
// @Param limit query int false "Maximum potions, 0 for all" default(20)
// @Success 200 {object} DataResponse{data=[]report.PotionView}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/ingredients/{name}/potions [get]
func HandleGetIngredientPotions(svc report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(r, w, DefaultLimit)
		if !ok {
			return
		}

		potions, err := svc.ValuablePotions(r.Context(), pathName(r), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgValuablePotionFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(potions), Data: potions})
	}
}
