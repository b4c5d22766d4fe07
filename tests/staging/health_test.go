//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	resp, body := makeRequest(t, http.MethodGet, "/healthz")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var health struct {
		Status  string `json:"status"`
		Dataset string `json:"dataset"`
	}
	if err := json.Unmarshal(body, &health); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("Expected status ok, got %q", health.Status)
	}
	if health.Dataset == "" {
		t.Error("Expected a dataset version")
	}
}

func TestVersion(t *testing.T) {
	resp, _ := makeRequest(t, http.MethodGet, "/version")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}
