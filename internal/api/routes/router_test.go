package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmarienko/ai-health-assistant/internal/api/handlers"
	"github.com/tmarienko/ai-health-assistant/internal/application/services"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	kb, err := services.NewKnowledgeBase()
	require.NoError(t, err)
	engine := services.NewAnalysisService(kb)
	analysisHandler := handlers.NewAnalysisHandler(engine, nil, nil, 100, 60)
	return NewRouter(analysisHandler, nil).SetupRoutes()
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, "AI Health Assistant", payload["service"])
}

func TestRootBanner(t *testing.T) {
	handler := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI Health Assistant API is running")
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze-symptom", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAnalyzeRouteWired(t *testing.T) {
	handler := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-symptom",
		jsonBody(`{"symptom":"nausea"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "possible_causes")
}

func jsonBody(body string) io.Reader {
	return bytes.NewBufferString(body)
}
