//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
)

type listResponse struct {
	Count int               `json:"count"`
	Data  []json.RawMessage `json:"data"`
}

func TestDatasetIndex(t *testing.T) {
	resp, body := makeRequest(t, http.MethodGet, "/api/v1/dataset")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var index struct {
		Ingredients int `json:"ingredients"`
		Effects     int `json:"effects"`
	}
	if err := json.Unmarshal(body, &index); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if index.Ingredients == 0 || index.Effects == 0 {
		t.Errorf("Expected a populated dataset, got %+v", index)
	}
}

func TestListIngredients(t *testing.T) {
	resp, body := makeRequest(t, http.MethodGet, "/api/v1/ingredients/")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if list.Count == 0 || list.Count != len(list.Data) {
		t.Errorf("Expected a non-empty consistent list, got count %d with %d rows", list.Count, len(list.Data))
	}
}

func TestBrew(t *testing.T) {
	q := url.Values{"ingredients": {"Wheat,Blue Mountain Flower"}}
	resp, body := makeRequest(t, http.MethodGet, "/api/v1/brew?"+q.Encode())

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var brew struct {
		Potion *struct {
			Effects []json.RawMessage `json:"effects"`
			Price   float64           `json:"price"`
		} `json:"potion"`
	}
	if err := json.Unmarshal(body, &brew); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if brew.Potion == nil || len(brew.Potion.Effects) == 0 {
		t.Fatal("Expected a potion with at least one effect")
	}
	if brew.Potion.Price <= 0 {
		t.Errorf("Expected a positive price, got %v", brew.Potion.Price)
	}
}

func TestBrew_InvalidCombination(t *testing.T) {
	q := url.Values{"ingredients": {"Wheat"}}
	resp, _ := makeRequest(t, http.MethodGet, "/api/v1/brew?"+q.Encode())

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestUnknownIngredient(t *testing.T) {
	resp, _ := makeRequest(t, http.MethodGet, "/api/v1/ingredients/"+url.PathEscape("Not An Ingredient"))

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestRecommended(t *testing.T) {
	resp, body := makeRequest(t, http.MethodGet, "/api/v1/potions/recommended?limit=5")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if list.Count == 0 || list.Count > 5 {
		t.Errorf("Expected between 1 and 5 potions, got %d", list.Count)
	}
}
