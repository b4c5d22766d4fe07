package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/skyrim-alchemy/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// validateQuery validates a decoded query struct and writes a 400 on failure.
// If it returns an error the response has already been written.
func validateQuery(w http.ResponseWriter, r *http.Request, q interface{}) error {
	if err := GetValidator().ValidateStruct(q); err != nil {
		logger.FromContext(r.Context()).Warn("Invalid query", "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// GetQueryParam retrieves a required query parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	raw, ok := GetQueryParam(r, w, "ingredients")
//	if !ok {
//	    return
//	}
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back to defaultValue
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseLimit reads the limit query parameter. Missing means defaultValue,
// 0 means unlimited.
func parseLimit(r *http.Request, w http.ResponseWriter, defaultValue int) (int, bool) {
	raw := GetOptionalQueryParam(r, QueryLimit, strconv.Itoa(defaultValue))
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 || limit > MaxLimit {
		logger.FromContext(r.Context()).Warn(ErrMsgInvalidLimit, "limit", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}

// splitList splits a comma separated query value, dropping blanks
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// pathName returns the unescaped {name} route parameter
func pathName(r *http.Request) string {
	raw := chi.URLParam(r, ParamName)
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
