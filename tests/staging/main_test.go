//go:build staging

// Package staging runs read-only smoke tests against a deployed API.
// Set API_URL to target something other than a local server.
package staging

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

const (
	defaultAPIURL  = "http://localhost:8080"
	requestTimeout = 10 * time.Second
	readyTimeout   = 30 * time.Second
)

var (
	stagingURL string
	client     *http.Client
)

func TestMain(m *testing.M) {
	stagingURL = os.Getenv("API_URL")
	if stagingURL == "" {
		stagingURL = defaultAPIURL
	}
	client = &http.Client{Timeout: requestTimeout}

	if err := waitReady(readyTimeout); err != nil {
		os.Stderr.WriteString("staging API not ready: " + err.Error() + "\n")
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// waitReady polls /healthz until it answers 200 or timeout passes
func waitReady(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, stagingURL+"/healthz", nil)
		if err != nil {
			return err
		}
		if resp, err := client.Do(req); err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
}

// makeRequest sends a bodiless request and returns the response with its body read
func makeRequest(t *testing.T, method, path string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, stagingURL+path, nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request to %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return resp, body
}
