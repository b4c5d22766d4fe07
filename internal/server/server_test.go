package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/skyrim-alchemy/internal/report"
	reportmocks "github.com/osse101/skyrim-alchemy/internal/report/mocks"
)

func TestRouter_Routes(t *testing.T) {
	svc := reportmocks.NewMockService(t)
	svc.On("Ingredients", mock.Anything).Return([]report.IngredientRow{}, nil)
	svc.On("Ingredient", mock.Anything, "Giant's Toe").Return(&report.IngredientPage{}, nil)
	svc.On("ValuablePotions", mock.Anything, "Wheat", 3).Return([]report.PotionView{}, nil)
	svc.On("Effects", mock.Anything).Return([]report.EffectRow{}, nil)
	svc.On("Effect", mock.Anything, "Restore Health").Return(&report.EffectPage{}, nil)
	svc.On("Recommended", mock.Anything, 20).Return([]report.PotionView{}, nil)
	svc.On("Brew", mock.Anything, []string{"Wheat", "Nirnroot"}).Return(nil, nil)
	svc.On("Index", mock.Anything).Return(&report.Index{}, nil)

	router := NewRouter(Options{RateLimit: 100, DatasetVersion: "1.0"}, svc)

	tests := []struct {
		target string
		status int
	}{
		{"/healthz", http.StatusOK},
		{"/version", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/v1/dataset", http.StatusOK},
		{"/api/v1/ingredients", http.StatusOK},
		{"/api/v1/ingredients/Giant's%20Toe", http.StatusOK},
		{"/api/v1/ingredients/Wheat/potions?limit=3", http.StatusOK},
		{"/api/v1/effects", http.StatusOK},
		{"/api/v1/effects/Restore%20Health", http.StatusOK},
		{"/api/v1/potions/recommended", http.StatusOK},
		{"/api/v1/brew?ingredients=Wheat,Nirnroot", http.StatusOK},
		{"/api/v1/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := NewRouter(Options{}, reportmocks.NewMockService(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ingredients", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
