package telemetry

import (
	"context"
	"testing"

	"github.com/blaisecz/ring-analytics/internal/config"
)

func TestInitTracer_DisabledIsNoop(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &config.Config{LangfuseBaseURL: "http://localhost:3000"}, ServiceName)
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}

func TestInitTracer_Enabled(t *testing.T) {
	cfg := &config.Config{
		LangfuseBaseURL:   "http://localhost:3000",
		LangfusePublicKey: "pk",
		LangfuseSecretKey: "sk",
		LangfuseEnv:       "test",
	}
	shutdown, err := InitTracer(context.Background(), cfg, ServiceName)
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}
	// Nothing was recorded, so shutdown has nothing to export.
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}

func TestTracesEndpoint(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
	}{
		{"https://cloud.langfuse.com", "https://cloud.langfuse.com/api/public/otel/v1/traces"},
		{"http://localhost:3000/", "http://localhost:3000/api/public/otel/v1/traces"},
	}
	for _, tt := range tests {
		if got := TracesEndpoint(tt.baseURL); got != tt.want {
			t.Errorf("TracesEndpoint(%q) = %q, want %q", tt.baseURL, got, tt.want)
		}
	}
}
