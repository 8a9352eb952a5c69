package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmarienko/ai-health-assistant/internal/adapters/cache"
	"github.com/tmarienko/ai-health-assistant/internal/api/handlers"
	"github.com/tmarienko/ai-health-assistant/internal/api/routes"
	"github.com/tmarienko/ai-health-assistant/internal/application/services"
	"github.com/tmarienko/ai-health-assistant/internal/domain/providers"
	redisclient "github.com/tmarienko/ai-health-assistant/internal/infrastructure/clients/redis"
	"github.com/tmarienko/ai-health-assistant/internal/infrastructure/observability"
	"github.com/tmarienko/ai-health-assistant/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.App.ServiceName, cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Build the knowledge base. A missing list in any declared category is
	// fatal here, never at request time.
	var kb *services.KnowledgeBase
	if cfg.App.KnowledgePath != "" {
		kb, err = services.NewKnowledgeBaseFromFile(cfg.App.KnowledgePath)
		if err != nil {
			log.Fatalf("Failed to load knowledge base from %s: %v", cfg.App.KnowledgePath, err)
		}
		log.Printf("Knowledge base loaded from %s", cfg.App.KnowledgePath)
	} else {
		kb, err = services.NewKnowledgeBase()
		if err != nil {
			log.Fatalf("Failed to build knowledge base: %v", err)
		}
	}

	// Rate limiting uses Redis when configured; otherwise a local
	// in-process fallback
	var cacheProvider providers.CacheProvider
	if cfg.Redis.Enabled {
		redisClient, err := redisclient.NewClient(&cfg.Redis)
		if err != nil {
			log.Printf("Warning: Failed to initialize Redis client: %v", err)
			cacheProvider = cache.NewMemoryAdapter()
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			log.Println("Redis client initialized successfully")
		}
	}

	analysisService := services.NewAnalysisService(kb)
	analysisService.SetMetrics(metrics)
	analysisHandler := handlers.NewAnalysisHandler(
		analysisService,
		cacheProvider,
		metrics,
		cfg.RateLimit.Requests,
		cfg.RateLimit.WindowSeconds,
	)

	router := routes.NewRouter(analysisHandler, metrics)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
