package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/blaisecz/ring-analytics/internal/langfuse"
	"github.com/blaisecz/ring-analytics/internal/service"
	"github.com/blaisecz/ring-analytics/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// FeedbackScoreName is the Langfuse score name for user ratings.
const FeedbackScoreName = "user_rating"

// InsightsHandler handles LLM insights endpoints.
type InsightsHandler struct {
	insightsService service.InsightsService
	langfuseClient  langfuse.Client
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService service.InsightsService, langfuseClient langfuse.Client) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		langfuseClient:  langfuseClient,
	}
}

// GetInsights handles GET /v1/users/{userId}/nights/{date}/insights
// @Summary Get LLM commentary on a night
// @Description Generate non-medical commentary from the night report and readiness. The trace_id can be used to submit feedback.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Local day the night started on" example(2024-01-15)
// @Success 200 {object} domain.InsightsResponse "Night insights with LLM analysis"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "No night recorded for date"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service or metric store unavailable"
// @Router /users/{userId}/nights/{date}/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	date, ok := parseDateKey(w, r)
	if !ok {
		return
	}

	result, err := h.insightsService.Generate(r.Context(), userID, date)
	if err != nil {
		writeError(w, err, "Failed to generate insights")
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	if result.TraceID == "" {
		if sc := trace.SpanFromContext(r.Context()).SpanContext(); sc.IsValid() {
			result.TraceID = sc.TraceID().String()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// FeedbackRequest is the request body for insights feedback.
// @Description Request body for submitting feedback on insights.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The deep sleep note was useful."`
}

// PostFeedback handles POST /v1/users/{userId}/nights/{date}/insights/feedback
// @Summary Submit feedback on night insights
// @Description Submit a user rating and optional comment for a previous insights response.
// @Tags insights
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Local day the night started on" example(2024-01-15)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /users/{userId}/nights/{date}/insights/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	date, ok := parseDateKey(w, r)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	if !h.langfuseClient.IsEnabled() {
		log.Printf("[insights] feedback for %s on %s accepted without Langfuse", userID, date)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// Scores are sent asynchronously; failures are logged by the client.
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    FeedbackScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}
