package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/blaisecz/ring-analytics/internal/langfuse"
	"github.com/blaisecz/ring-analytics/internal/llm"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InsightsTraceName names Langfuse traces created for night insights.
const InsightsTraceName = "night-insights"

// InsightsService produces LLM commentary for a night.
type InsightsService interface {
	Generate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.InsightsResponse, error)
}

type insightsService struct {
	analysis  AnalysisService
	llmClient llm.InsightsLLM
	langfuse  langfuse.Client
}

// NewInsightsService creates an InsightsService. langfuseClient may be nil.
func NewInsightsService(analysis AnalysisService, llmClient llm.InsightsLLM, langfuseClient langfuse.Client) InsightsService {
	return &insightsService{
		analysis:  analysis,
		llmClient: llmClient,
		langfuse:  langfuseClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID, dateKey string) (*domain.InsightsResponse, error) {
	tracer := otel.Tracer("ring-analytics/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("night.date", dateKey),
		),
	)
	defer span.End()

	night, err := s.analysis.AnalyzeNight(ctx, userID, dateKey)
	if err != nil {
		return nil, err
	}
	readiness, err := s.analysis.Readiness(ctx, userID, dateKey)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{Night: *night, Readiness: *readiness}
	if inputJSON, err := json.Marshal(insightsCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if outputJSON, err := json.Marshal(output); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	response := &domain.InsightsResponse{
		Night:     *night,
		Readiness: *readiness,
		Insights:  *output,
	}

	if sc := span.SpanContext(); sc.IsValid() {
		response.TraceID = sc.TraceID().String()
	} else if s.langfuse != nil && s.langfuse.IsEnabled() {
		// Without an exporter there is no OTEL trace to score against, so
		// record one directly.
		traceID, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
			UserID:    userID.String(),
			SessionID: dateKey,
			Name:      InsightsTraceName,
			Input:     insightsCtx,
			Output:    output,
			Tags:      []string{"insights"},
		})
		if err != nil {
			log.Printf("[insights] langfuse trace failed: %v", err)
		}
		response.TraceID = traceID
	}

	return response, nil
}
