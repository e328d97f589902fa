package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/ring-analytics/internal/analytics"
	"github.com/blaisecz/ring-analytics/internal/api/validation"
	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/service"
	"github.com/blaisecz/ring-analytics/pkg/problem"
)

// AnalysisHandler exposes night analysis and readiness over stored history,
// plus stateless scoring endpoints that work on request bodies only.
type AnalysisHandler struct {
	analysis   service.AnalysisService
	classifier *analytics.Classifier
}

func NewAnalysisHandler(analysis service.AnalysisService, classifier *analytics.Classifier) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, classifier: classifier}
}

// GetNight handles GET /v1/users/{userId}/nights/{date}
// @Summary Night report
// @Description Classify the night keyed by date from overnight heart rate and compare it with the ring's own stages.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Local day the night started on" example(2024-01-15)
// @Success 200 {object} domain.NightReport
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem "Unknown user"
// @Failure 404 {object} problem.Problem "No night recorded for date"
// @Failure 503 {object} problem.Problem "Metric store unavailable"
// @Router /users/{userId}/nights/{date} [get]
func (h *AnalysisHandler) GetNight(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	date, ok := parseDateKey(w, r)
	if !ok {
		return
	}

	report, err := h.analysis.AnalyzeNight(r.Context(), userID, date)
	if err != nil {
		writeError(w, err, "Failed to analyze night")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// GetReadiness handles GET /v1/users/{userId}/readiness/{date}
// @Summary Readiness
// @Description Readiness for a day from sleep score, resting heart rate and steps. Missing inputs fall back to neutral values; with neither sleep nor heart rate the score is no_data.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Local day" example(2024-01-16)
// @Success 200 {object} domain.ReadinessReport
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem "Unknown user"
// @Failure 503 {object} problem.Problem "Metric store unavailable"
// @Router /users/{userId}/readiness/{date} [get]
func (h *AnalysisHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	date, ok := parseDateKey(w, r)
	if !ok {
		return
	}

	report, err := h.analysis.Readiness(r.Context(), userID, date)
	if err != nil {
		writeError(w, err, "Failed to compute readiness")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// ScoreSleep handles POST /v1/scores/sleep
// @Summary Score a night
// @Description Stateless sleep score from stage minutes. Out-of-range values are clamped.
// @Tags scores
// @Accept json
// @Produce json
// @Param request body domain.SleepScoreRequest true "Stage minutes"
// @Success 200 {object} domain.SleepScore
// @Failure 400 {object} problem.Problem
// @Router /scores/sleep [post]
func (h *AnalysisHandler) ScoreSleep(w http.ResponseWriter, r *http.Request) {
	var req domain.SleepScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	score := analytics.ScoreSleep(req.TotalMinutes, req.DeepMinutes, req.LightMinutes, req.REMMinutes, req.AwakeMinutes)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(score)
}

// ScoreReadiness handles POST /v1/scores/readiness
// @Summary Score readiness
// @Description Stateless readiness from sleep score, resting heart rate and steps so far today.
// @Tags scores
// @Accept json
// @Produce json
// @Param request body domain.ReadinessRequest true "Readiness inputs"
// @Success 200 {object} domain.ReadinessScore
// @Failure 400 {object} problem.Problem
// @Router /scores/readiness [post]
func (h *AnalysisHandler) ScoreReadiness(w http.ResponseWriter, r *http.Request) {
	var req domain.ReadinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	score := analytics.ScoreReadiness(req.SleepScore, req.RestingHR, req.StepsToday)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(score)
}

// Classify handles POST /v1/analysis/classify
// @Summary Classify heart-rate samples
// @Description Stateless stage classification of a night's heart-rate samples against their own baseline.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body domain.ClassifyRequest true "Night window and samples"
// @Success 200 {object} domain.ClassifyResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /analysis/classify [post]
func (h *AnalysisHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req domain.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	classified := h.classifier.Classify(req.Samples, req.NightStart, req.NightEnd)
	if classified == nil {
		classified = []domain.ClassifiedStage{}
	}
	baseline := analytics.NightBaseline(req.Samples, req.NightStart, req.NightEnd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.ClassifyResponse{
		Classified: classified,
		Totals:     domain.TotalsFromClassified(classified),
		Baseline:   analytics.Rounded(baseline),
	})
}

// Agreement handles POST /v1/analysis/agreement
// @Summary Compare two stage timelines
// @Description Stateless per-stage and overall agreement between a classified timeline and the ring's reference.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body domain.AgreementRequest true "Classified and reference timelines"
// @Success 200 {object} domain.AgreementResult
// @Failure 400 {object} problem.Problem
// @Router /analysis/agreement [post]
func (h *AnalysisHandler) Agreement(w http.ResponseWriter, r *http.Request) {
	var req domain.AgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	result := analytics.Compare(req.Classified, req.Reference)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
