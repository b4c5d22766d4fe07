package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ingredients", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	captureLogs(t)

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		loggingMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/effects", nil))
		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/effects", nil)
		req.Header.Set(HeaderRequestID, "upstream-1")
		rec := httptest.NewRecorder()
		loggingMiddleware(okHandler()).ServeHTTP(rec, req)
		assert.Equal(t, "upstream-1", rec.Header().Get(HeaderRequestID))
	})
}

func TestLoggingMiddleware_SkipsHealth(t *testing.T) {
	buf := captureLogs(t)

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Empty(t, buf.String())
}
