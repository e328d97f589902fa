package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/ring-analytics/internal/api/validation"
	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/service"
	"github.com/blaisecz/ring-analytics/pkg/problem"
)

// HistoryHandler serves day-bucketed metric history and accepts live
// summaries from the device bridge.
type HistoryHandler struct {
	history service.HistoryService
	live    service.LiveService
}

func NewHistoryHandler(history service.HistoryService, live service.LiveService) *HistoryHandler {
	return &HistoryHandler{history: history, live: live}
}

// GetHistory handles GET /v1/users/{userId}/history/{metric}
// @Summary Metric history
// @Description Day-keyed records for the last seven local days (today included). Days without data are absent.
// @Tags history
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param metric path string true "Metric kind" Enums(sleep, heart-rate, hrv, spo2, temperature, activity)
// @Success 200 {object} domain.HistoryResponse
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem "Unknown user"
// @Failure 404 {object} problem.Problem "Unknown metric"
// @Failure 503 {object} problem.Problem "Metric store unavailable"
// @Router /users/{userId}/history/{metric} [get]
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	kind, ok := parseMetric(w, r)
	if !ok {
		return
	}

	bucket, err := h.history.Resolve(r.Context(), kind, userID)
	if err != nil {
		writeError(w, err, "Failed to resolve history")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bucket.ToResponse())
}

// GetDay handles GET /v1/users/{userId}/history/{metric}/{date}
// @Summary Metric day
// @Description One day's record tagged with its source: store, live_fallback (today only) or none.
// @Tags history
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param metric path string true "Metric kind" Enums(sleep, heart-rate, hrv, spo2, temperature, activity)
// @Param date path string true "Local day" example(2024-01-16)
// @Success 200 {object} domain.DayResolution
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem "Unknown user"
// @Failure 404 {object} problem.Problem "Unknown metric"
// @Failure 503 {object} problem.Problem "Metric store unavailable"
// @Router /users/{userId}/history/{metric}/{date} [get]
func (h *HistoryHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	kind, ok := parseMetric(w, r)
	if !ok {
		return
	}
	date, ok := parseDateKey(w, r)
	if !ok {
		return
	}

	res, err := h.history.ResolveDay(r.Context(), kind, userID, date)
	if err != nil {
		writeError(w, err, "Failed to resolve day")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// PushLive handles PUT /v1/users/{userId}/live/{metric}
// @Summary Push a live summary
// @Description Replace the "today so far" summary for a metric. Used when the store has nothing for today yet.
// @Tags history
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param metric path string true "Metric kind" Enums(sleep, heart-rate, hrv, spo2, temperature, activity)
// @Param request body domain.LiveSummaryRequest true "Live summary"
// @Success 200 {object} object "The stored day record"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /users/{userId}/live/{metric} [put]
func (h *HistoryHandler) PushLive(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	kind, ok := parseMetric(w, r)
	if !ok {
		return
	}

	var req domain.LiveSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	rec, err := h.live.Push(r.Context(), kind, userID, &req)
	if err != nil {
		writeError(w, err, "Failed to store live summary")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
