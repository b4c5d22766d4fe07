package handler

import (
	"net/http"

	"github.com/osse101/skyrim-alchemy/internal/report"
)

// HandleGetDataset returns dataset provenance, counts and brewing options
// @Summary Dataset index
// @Description Version, checksum and size of the loaded dataset
// @Tags dataset
// @Produce json
// @Success 200 {object} report.Index
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dataset [get]
func HandleGetDataset(svc report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := svc.Index(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetDatasetFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, index)
	}
}
