package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/llm"
	"github.com/blaisecz/ring-analytics/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// writeError maps service errors onto problem responses. fallback is the
// detail used for unexpected failures.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		problem.Unauthorized("Unknown user").Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(err.Error()).Write(w)
	case errors.Is(err, domain.ErrUnknownMetric):
		problem.NotFound(err.Error()).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	case errors.Is(err, domain.ErrOverlappingSleep):
		problem.Conflict("Overlapping sleep period detected").Write(w)
	case errors.Is(err, domain.ErrConflict):
		problem.Conflict(err.Error()).Write(w)
	case errors.Is(err, domain.ErrOverlappingSegments):
		problem.ValidationError("Sleep segments overlap", []problem.FieldError{
			{Field: "segments", Message: "must not overlap"},
		}).Write(w)
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Printf("[api] %s: %v", fallback, err)
		problem.ServiceUnavailable("Metric store is unavailable, retry later").Write(w)
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		log.Printf("[api] %s: %v", fallback, err)
		problem.BadGateway("Failed to generate insights from LLM").Write(w)
	default:
		log.Printf("[api] %s: %v", fallback, err)
		problem.InternalError(fallback).Write(w)
	}
}

func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}
	return userID, true
}

func parseDateKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse(domain.DateKeyLayout, date); err != nil {
		problem.BadRequest("date must be YYYY-MM-DD").Write(w)
		return "", false
	}
	return date, true
}

func parseMetric(w http.ResponseWriter, r *http.Request) (domain.MetricKind, bool) {
	kind, err := domain.ParseMetricKind(chi.URLParam(r, "metric"))
	if err != nil {
		problem.NotFound(err.Error()).Write(w)
		return "", false
	}
	return kind, true
}
