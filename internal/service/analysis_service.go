package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/ring-analytics/internal/analytics"
	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MinConfidentSamples is the overnight sample count below which a night
// report is flagged low confidence.
const MinConfidentSamples = 12

// AnalysisService runs the engine over stored history.
type AnalysisService interface {
	// AnalyzeNight classifies the night keyed by dateKey from overnight heart
	// rate and compares it with the ring's own stages.
	AnalyzeNight(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.NightReport, error)
	// Readiness scores recovery for dateKey from sleep, resting HR and steps.
	Readiness(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.ReadinessReport, error)
}

type analysisService struct {
	history     HistoryService
	readingRepo repository.ReadingRepository
	classifier  *analytics.Classifier
}

func NewAnalysisService(history HistoryService, readingRepo repository.ReadingRepository, classifier *analytics.Classifier) AnalysisService {
	return &analysisService{
		history:     history,
		readingRepo: readingRepo,
		classifier:  classifier,
	}
}

func (s *analysisService) AnalyzeNight(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.NightReport, error) {
	tracer := otel.Tracer("ring-analytics/analysis")
	ctx, span := tracer.Start(ctx, "AnalysisService.AnalyzeNight",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("night.date", dateKey),
		),
	)
	defer span.End()

	res, err := s.history.ResolveDay(ctx, domain.MetricSleep, userID, dateKey)
	if err != nil {
		return nil, err
	}
	night, ok := res.Record.(domain.DaySleep)
	if !ok {
		return nil, fmt.Errorf("%w: no sleep recorded for %s", domain.ErrNotFound, dateKey)
	}

	start, end, ok := nightWindow(night)
	if !ok {
		return nil, fmt.Errorf("%w: night %s has no time window", domain.ErrNotFound, dateKey)
	}

	rows, err := s.readingRepo.ListHeartRate(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: overnight heart rate: %v", domain.ErrStoreUnavailable, err)
	}
	samples := make([]domain.Sample, 0, len(rows))
	for _, r := range rows {
		samples = append(samples, domain.Sample{Timestamp: r.RecordedAt, Value: float64(r.HeartRate)})
	}

	classified := s.classifier.Classify(samples, start, end)
	classifiedTotals := domain.TotalsFromClassified(classified)
	deviceTotals := night.Totals()
	baseline := analytics.ComputeBaseline(analytics.SampleValues(samples))

	report := &domain.NightReport{
		Date:            dateKey,
		Source:          res.Source,
		Baseline:        analytics.Rounded(baseline),
		Classified:      classified,
		Reference:       night.Segments,
		Agreement:       analytics.CompareTotals(classifiedTotals, deviceTotals),
		DeviceScore:     analytics.ScoreSleepTotals(deviceTotals),
		ClassifiedScore: analytics.ScoreSleepTotals(classifiedTotals),
		Architecture:    analytics.AnalyzeArchitecture(night.Segments),
		SampleCount:     baseline.Count,
		LowConfidence:   baseline.Count < MinConfidentSamples,
	}
	if report.Architecture == nil {
		report.Architecture = analytics.AnalyzeArchitecture(classifiedSegments(classified))
	}
	if report.LowConfidence {
		log.Printf("[analysis] night %s for %s has only %d heart-rate samples", dateKey, userID, baseline.Count)
	}

	span.SetAttributes(
		attribute.Int("samples.count", baseline.Count),
		attribute.Int("classified.intervals", len(classified)),
		attribute.Float64("agreement.overall", report.Agreement.OverallMatch),
	)
	if outputJSON, err := json.Marshal(report.Agreement); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return report, nil
}

// nightWindow prefers the stored bed/wake times and falls back to the
// segment extent.
func nightWindow(night domain.DaySleep) (time.Time, time.Time, bool) {
	if night.BedTime != nil && night.WakeTime != nil && night.WakeTime.After(*night.BedTime) {
		return *night.BedTime, *night.WakeTime, true
	}
	if len(night.Segments) == 0 {
		return time.Time{}, time.Time{}, false
	}
	start, end := night.Segments[0].StartTime, night.Segments[0].EndTime
	for _, seg := range night.Segments[1:] {
		if seg.StartTime.Before(start) {
			start = seg.StartTime
		}
		if seg.EndTime.After(end) {
			end = seg.EndTime
		}
	}
	return start, end, end.After(start)
}

func classifiedSegments(stages []domain.ClassifiedStage) []domain.SleepSegment {
	out := make([]domain.SleepSegment, len(stages))
	for i, st := range stages {
		out[i] = st.SleepSegment
	}
	return out
}

func (s *analysisService) Readiness(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.ReadinessReport, error) {
	tracer := otel.Tracer("ring-analytics/analysis")
	ctx, span := tracer.Start(ctx, "AnalysisService.Readiness",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("readiness.date", dateKey),
		),
	)
	defer span.End()

	sleepRes, err := s.history.ResolveDay(ctx, domain.MetricSleep, userID, dateKey)
	if err != nil {
		return nil, err
	}
	hrRes, err := s.history.ResolveDay(ctx, domain.MetricHeartRate, userID, dateKey)
	if err != nil {
		return nil, err
	}
	activityRes, err := s.history.ResolveDay(ctx, domain.MetricActivity, userID, dateKey)
	if err != nil {
		return nil, err
	}

	report := &domain.ReadinessReport{
		Date:           dateKey,
		SleepSource:    sleepRes.Source,
		HRSource:       hrRes.Source,
		ActivitySource: activityRes.Source,
	}

	if night, ok := sleepRes.Record.(domain.DaySleep); ok {
		report.SleepScore = night.Score
		if report.SleepScore <= 0 && night.TotalSleepMinutes > 0 {
			report.SleepScore = analytics.ScoreSleepTotals(night.Totals()).Total
		}
		report.RestingHR = night.RestingHR
	}
	if hr, ok := hrRes.Record.(domain.DayHeartRate); ok && hr.RestingHR > 0 {
		report.RestingHR = hr.RestingHR
	}
	if activity, ok := activityRes.Record.(domain.DayActivity); ok {
		report.Steps = activity.Steps
	}

	report.Score = analytics.ScoreReadiness(report.SleepScore, report.RestingHR, report.Steps)
	report.SleepLabel = analytics.SleepLabel(report.SleepScore)
	report.HRLabel = analytics.HRLabel(report.RestingHR)

	if inputJSON, err := json.Marshal(map[string]any{
		"sleep_score": report.SleepScore,
		"resting_hr":  report.RestingHR,
		"steps":       report.Steps,
	}); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}
	if outputJSON, err := json.Marshal(report.Score); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return report, nil
}
