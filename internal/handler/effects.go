package handler

import (
	"net/http"

	"github.com/osse101/skyrim-alchemy/internal/report"
)

// HandleListEffects lists every effect with its statistics
// @Summary List effects
// @Tags effects
// @Produce json
// @Success 200 {object} DataResponse{data=[]report.EffectRow}
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/effects [get]
func HandleListEffects(svc report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Effects(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetEffectsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(rows), Data: rows})
	}
}

// HandleGetEffect returns one effect and every ingredient carrying it
// @Summary Get effect
// @Tags effects
// @Produce json
// @Param name path string true "Effect name (case-insensitive)"
// @Success 200 {object} report.EffectPage
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/effects/{name} [get]
func HandleGetEffect(svc report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.Effect(r.Context(), pathName(r))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetEffectFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, page)
	}
}
