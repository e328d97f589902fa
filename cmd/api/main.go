// Ring Analytics API
//
// REST API over smart-ring data: day-bucketed metric history, sleep and
// readiness scoring, heart-rate sleep-stage classification and LLM insights.
//
//	@title			Ring Analytics API
//	@version		1.0
//	@description	Seven-day metric history, sleep and readiness scores, heart-rate stage classification and night insights for smart-ring users.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-sessions
//	@tag.description	Synced sleep sessions from the ring
//
//	@tag.name			history
//	@tag.description	Day-bucketed metric history and live summaries
//
//	@tag.name			analysis
//	@tag.description	Night reports, readiness and stage classification
//
//	@tag.name			scores
//	@tag.description	Stateless sleep and readiness scoring
//
//	@tag.name			insights
//	@tag.description	LLM commentary and feedback
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/ring-analytics/internal/analytics"
	"github.com/blaisecz/ring-analytics/internal/api"
	"github.com/blaisecz/ring-analytics/internal/api/handler"
	"github.com/blaisecz/ring-analytics/internal/config"
	"github.com/blaisecz/ring-analytics/internal/langfuse"
	"github.com/blaisecz/ring-analytics/internal/llm"
	"github.com/blaisecz/ring-analytics/internal/repository"
	"github.com/blaisecz/ring-analytics/internal/seed"
	"github.com/blaisecz/ring-analytics/internal/service"
	"github.com/blaisecz/ring-analytics/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, telemetry.ServiceName)
	if err != nil {
		log.Fatalf("Failed to initialise tracing: %v", err)
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSleepSessionRepository(db)
	readingRepo := repository.NewReadingRepository(db)

	// Initialize services
	classifier := analytics.NewClassifier(cfg.ClassifierConfig())
	liveStore := service.NewLiveSummaryStore()
	historyService := service.NewHistoryService(userRepo, sessionRepo, readingRepo, liveStore, service.HistoryConfig{Days: cfg.HistoryDays})
	liveService := service.NewLiveService(liveStore, userRepo, nil)
	analysisService := service.NewAnalysisService(historyService, readingRepo, classifier)
	sleepSessionService := service.NewSleepSessionService(sessionRepo, userRepo, historyService)
	userService := service.NewUserService(userRepo, cfg.DefaultTimezone)

	langfuseClient := langfuse.NewClient(cfg.LangfuseConfig())

	prompt, err := langfuse.LoadPrompt(ctx, cfg.PromptLoaderConfig(llm.DefaultSystemPrompt))
	if err != nil {
		log.Fatalf("Failed to load insights prompt: %v", err)
	}
	log.Printf("Insights prompt loaded from %s (version %d)", prompt.Origin, prompt.Version)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel, prompt.Text)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(analysisService, openaiClient, langfuseClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	sleepSessionHandler := handler.NewSleepSessionHandler(sleepSessionService)
	historyHandler := handler.NewHistoryHandler(historyService, liveService)
	analysisHandler := handler.NewAnalysisHandler(analysisService, classifier)
	insightsHandler := handler.NewInsightsHandler(insightsService, langfuseClient)

	// Setup router
	router := api.NewRouter(userHandler, sleepSessionHandler, historyHandler, analysisHandler, insightsHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := langfuseClient.Flush(shutdownCtx); err != nil {
		log.Printf("Langfuse flush: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("Tracer shutdown: %v", err)
	}
}
