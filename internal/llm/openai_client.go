// Package llm turns a night report into short, non-medical commentary.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// DefaultSystemPrompt is used when no prompt is loaded from Langfuse or disk.
const DefaultSystemPrompt = `You are a non-medical assistant for a smart-ring sleep and recovery app.

You receive one night's analysis and the matching readiness score for a single user. Base every statement only on the provided data.

The night contains:
- "device_score": the ring's stage totals scored 0-100 with a component breakdown.
- "classified": an independent sleep-stage estimate from overnight heart rate, with per-interval confidence.
- "agreement": how closely that estimate matches the ring, per stage and overall, with notes.
- "architecture": time in bed, efficiency, WASO, stage percentages and estimated sleep cycles.
- "low_confidence": true when few heart-rate samples were available.

Readiness combines sleep score, resting heart rate and today's step load. When "no_data" is true, say that readiness could not be computed.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Treat the heart-rate stage estimate as a rough second opinion, never as ground truth.
- If data is limited or low confidence, say so explicitly.
- Be concise and concrete.

Respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences on last night and today's readiness.",
  "observations": ["3-5 items on duration, stage balance, efficiency, agreement with the ring, resting heart rate"],
  "guidance": ["2-4 practical, non-medical suggestions for today"]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's night and readiness.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM generates commentary for a night.
type InsightsLLM interface {
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.InsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a client. Returns nil if apiKey is empty; a nil
// client answers every call with ErrOpenAIUnavailable.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = DefaultModel
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	return &OpenAIClient{
		client:       openai.NewClient(option.WithAPIKey(apiKey)),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateInsights calls OpenAI with the serialised night and readiness.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.InsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(contextJSON))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return ParseInsights(resp.Choices[0].Message.Content)
}

// ParseInsights decodes the model's JSON answer, tolerating a fenced code
// block around it.
func ParseInsights(content string) (*domain.InsightsOutput, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var output domain.InsightsOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &output, nil
}
