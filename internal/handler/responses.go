package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/skyrim-alchemy/internal/domain"
	"github.com/osse101/skyrim-alchemy/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Count int         `json:"count"`
	Data  interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to an HTTP response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status == http.StatusInternalServerError {
		log.Error(LogMsgRequestFailed, "operation", opName, "error", err)
		respondError(w, status, opName)
		return
	}
	log.Warn(LogMsgRequestFailed, "operation", opName, "status", status, "error", err)
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgNotFoundError        = "No ingredient or effect by that name"
	ErrMsgInvalidCombinationEr = "Use 2 to 4 different ingredients"
	ErrMsgNoDataError          = "Nothing to aggregate"
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Not-found lookups are 404, malformed combinations are 400.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	case errors.Is(err, domain.ErrInvalidCombination):
		return http.StatusBadRequest, ErrMsgInvalidCombinationEr
	case errors.Is(err, domain.ErrNoData):
		return http.StatusNotFound, ErrMsgNoDataError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
