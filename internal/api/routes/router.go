package routes

import (
	"encoding/json"
	"net/http"

	"github.com/tmarienko/ai-health-assistant/internal/api/handlers"
	"github.com/tmarienko/ai-health-assistant/internal/api/middleware"
	"github.com/tmarienko/ai-health-assistant/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	analysisHandler *handlers.AnalysisHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(analysisHandler *handlers.AnalysisHandler, metrics *observability.Metrics) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		analysisHandler: analysisHandler,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			http.NotFound(w, req)
			return
		}
		respondJSON(w, map[string]string{
			"message": "AI Health Assistant API is running",
		})
	})

	// Health check endpoint
	r.mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, map[string]string{
			"status":  "healthy",
			"service": "AI Health Assistant",
		})
	})

	r.mux.HandleFunc("POST /api/analyze-symptom", r.analysisHandler.AnalyzeSymptom)

	var handler http.Handler = r.mux
	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}

func respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payload)
}
