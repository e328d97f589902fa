// Script to test Langfuse connectivity by sending a night-insights trace,
// a feedback score and fetching the insights prompt.
// Usage: go run ./scripts/langfuse-test
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/ring-analytics/internal/config"
	"github.com/blaisecz/ring-analytics/internal/langfuse"
	"github.com/blaisecz/ring-analytics/internal/llm"
	"github.com/google/uuid"
)

func main() {
	appCfg := config.Load()
	cfg := appCfg.LangfuseConfig()

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", cfg.BaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(cfg.PublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(cfg.SecretKey))
	fmt.Printf("Environment: %s\n", cfg.Environment)
	fmt.Println()

	client := langfuse.NewClient(cfg)

	if !client.IsEnabled() {
		log.Fatal("Langfuse client is disabled. Check your env vars.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dateKey := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		ID:        uuid.NewString(),
		UserID:    "langfuse-test",
		SessionID: dateKey,
		Name:      "night-insights",
		Input: map[string]any{
			"date":        dateKey,
			"sleep_score": 82,
		},
		Output: map[string]any{
			"summary": "Connectivity check from langfuse-test script",
		},
		Tags: []string{"test", "manual"},
	})
	if err != nil {
		log.Fatalf("Failed to create trace: %v", err)
	}

	if err := client.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    "user_rating",
		Value:   5,
		Comment: "langfuse-test",
	}); err != nil {
		log.Fatalf("Failed to create score: %v", err)
	}

	if err := client.Flush(ctx); err != nil {
		log.Fatalf("Failed to flush: %v", err)
	}

	fmt.Println("✓ Test trace and score sent")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.BaseURL, traceID)

	prompt, err := langfuse.LoadPrompt(ctx, appCfg.PromptLoaderConfig(llm.DefaultSystemPrompt))
	if err != nil {
		log.Fatalf("Failed to load prompt: %v", err)
	}
	fmt.Printf("✓ Prompt %q loaded from %s (version %d)\n", appCfg.LangfusePromptName, prompt.Origin, prompt.Version)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
