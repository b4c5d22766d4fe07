package handler

import (
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Dataset string `json:"dataset,omitempty"`
}

// HandleHealthz provides a liveness check. The dataset is loaded before the
// server starts, so a running server is always ready.
// @Summary Liveness check
// @Description Returns OK and the loaded dataset version
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz(datasetVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Dataset: datasetVersion})
	}
}
