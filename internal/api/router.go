package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/ring-analytics/docs"
	"github.com/blaisecz/ring-analytics/internal/api/handler"
	"github.com/blaisecz/ring-analytics/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler         *handler.UserHandler
	sleepSessionHandler *handler.SleepSessionHandler
	historyHandler      *handler.HistoryHandler
	analysisHandler     *handler.AnalysisHandler
	insightsHandler     *handler.InsightsHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	sleepSessionHandler *handler.SleepSessionHandler,
	historyHandler *handler.HistoryHandler,
	analysisHandler *handler.AnalysisHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		userHandler:         userHandler,
		sleepSessionHandler: sleepSessionHandler,
		historyHandler:      historyHandler,
		analysisHandler:     analysisHandler,
		insightsHandler:     insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)

				r.Route("/sleep-sessions", func(r chi.Router) {
					r.Post("/", rt.sleepSessionHandler.Create)
					r.Get("/", rt.sleepSessionHandler.List)
				})

				r.Get("/history/{metric}", rt.historyHandler.GetHistory)
				r.Get("/history/{metric}/{date}", rt.historyHandler.GetDay)
				r.Put("/live/{metric}", rt.historyHandler.PushLive)

				r.Get("/nights/{date}", rt.analysisHandler.GetNight)
				r.Get("/nights/{date}/insights", rt.insightsHandler.GetInsights)
				r.Post("/nights/{date}/insights/feedback", rt.insightsHandler.PostFeedback)
				r.Get("/readiness/{date}", rt.analysisHandler.GetReadiness)
			})
		})

		// Stateless scoring and classification
		r.Post("/scores/sleep", rt.analysisHandler.ScoreSleep)
		r.Post("/scores/readiness", rt.analysisHandler.ScoreReadiness)
		r.Post("/analysis/classify", rt.analysisHandler.Classify)
		r.Post("/analysis/agreement", rt.analysisHandler.Agreement)
	})

	return r
}
