package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reportmocks "github.com/osse101/skyrim-alchemy/internal/report/mocks"
)

// undocumented routes serve tooling rather than the JSON API
var undocumented = map[string]bool{
	"/metrics":   true,
	"/swagger/*": true,
}

func TestSwaggerDocument_MatchesRouter(t *testing.T) {
	router := NewRouter(Options{DatasetVersion: "1.0"}, reportmocks.NewMockService(t))

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	var documented []string
	for path, methods := range doc.Paths {
		for method := range methods {
			documented = append(documented, strings.ToUpper(method)+" "+path)
		}
	}

	var routed []string
	routes, ok := router.(chi.Routes)
	require.True(t, ok)
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		if !undocumented[route] {
			routed = append(routed, method+" "+route)
		}
		return nil
	})
	require.NoError(t, err)

	sort.Strings(documented)
	sort.Strings(routed)
	assert.Equal(t, routed, documented)
}
