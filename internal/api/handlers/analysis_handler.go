package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tmarienko/ai-health-assistant/internal/domain/entities"
	"github.com/tmarienko/ai-health-assistant/internal/domain/providers"
	"github.com/tmarienko/ai-health-assistant/internal/infrastructure/observability"
	apperrors "github.com/tmarienko/ai-health-assistant/pkg/errors"
	"go.opentelemetry.io/otel/trace"
)

// rateCacheMetricKey keeps the cache metric attribute low-cardinality; the
// full cache key embeds the client IP.
const rateCacheMetricKey = "analyze:rate"

// AnalysisEngine defines the evaluation operation used by the handler.
type AnalysisEngine interface {
	Evaluate(ctx context.Context, query *entities.SymptomQuery) (*entities.HealthReport, error)
}

// AnalysisHandler handles symptom analysis requests.
type AnalysisHandler struct {
	engine     AnalysisEngine
	cache      providers.CacheProvider
	metrics    *observability.Metrics
	local      *localRateLimiter
	rateLimit  int
	rateWindow time.Duration
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(engine AnalysisEngine, cache providers.CacheProvider, metrics *observability.Metrics, rateLimit, rateWindowSeconds int) *AnalysisHandler {
	return &AnalysisHandler{
		engine:     engine,
		cache:      cache,
		metrics:    metrics,
		local:      newLocalRateLimiter(),
		rateLimit:  rateLimit,
		rateWindow: time.Duration(rateWindowSeconds) * time.Second,
	}
}

// AnalyzeSymptom handles POST /api/analyze-symptom
func (h *AnalysisHandler) AnalyzeSymptom(w http.ResponseWriter, r *http.Request) {
	key := "analyze:rate:" + clientIP(r)
	allowed, retryAfter := h.allowRequest(r.Context(), key)
	if !allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		respondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	var query entities.SymptomQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	query.Symptom = strings.TrimSpace(query.Symptom)

	report, err := h.engine.Evaluate(r.Context(), &query)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Type == apperrors.ErrorTypeValidation {
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		}
		observability.RecordError(trace.SpanFromContext(r.Context()), err)
		// Internal detail never crosses the boundary
		respondWithError(w, http.StatusInternalServerError, "error analyzing symptom")
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

func (h *AnalysisHandler) allowRequest(ctx context.Context, key string) (bool, time.Duration) {
	if h.cache == nil {
		return h.local.allow(key, h.rateLimit, h.rateWindow)
	}

	state := rateLimitState{}
	if data, err := h.cache.Get(ctx, key); err == nil {
		if h.metrics != nil {
			observability.RecordCacheHit(ctx, h.metrics, rateCacheMetricKey)
		}
		_ = json.Unmarshal(data, &state)
	} else if h.metrics != nil {
		observability.RecordCacheMiss(ctx, h.metrics, rateCacheMetricKey)
	}

	if state.Count >= h.rateLimit {
		return false, h.rateWindow
	}

	state.Count++
	data, _ := json.Marshal(state)
	_ = h.cache.Set(ctx, key, data, int(h.rateWindow.Seconds()))
	return true, h.rateWindow
}

type rateLimitState struct {
	Count int `json:"count"`
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
