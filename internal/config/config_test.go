package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetEnvNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "14", 14},
		{"empty", "", 7},
		{"garbage", "seven", 7},
		{"zero", "0", 7},
		{"negative", "-3", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CFG_INT", tt.value)
			if got := getEnvInt("CFG_INT", 7); got != tt.want {
				t.Errorf("getEnvInt(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}

	t.Setenv("CFG_FLOAT", "12.5")
	if got := getEnvFloat("CFG_FLOAT", 10); got != 12.5 {
		t.Errorf("getEnvFloat = %v, want 12.5", got)
	}
	t.Setenv("CFG_FLOAT", "-1")
	if got := getEnvFloat("CFG_FLOAT", 10); got != 10 {
		t.Errorf("getEnvFloat(-1) = %v, want default", got)
	}

	t.Setenv("CFG_BOOL", "1")
	if !getEnvBool("CFG_BOOL", false) {
		t.Error("getEnvBool(1) = false, want true")
	}
	t.Setenv("CFG_BOOL", "maybe")
	if getEnvBool("CFG_BOOL", false) {
		t.Error("getEnvBool(maybe) = true, want default")
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	for _, key := range []string{
		"PORT", "DATABASE_URL", "LOG_LEVEL", "SEED", "DEFAULT_TIMEZONE", "HISTORY_DAYS",
		"CLASSIFIER_DEEP_DROP_BPM", "CLASSIFIER_MIN_INTERVAL_MINUTES",
		"OPENAI_API_KEY", "OPENAI_INSIGHTS_MODEL", "LANGFUSE_PROMPT_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.DefaultTimezone != "UTC" || cfg.HistoryDays != 7 {
		t.Fatalf("history defaults not applied: %+v", cfg)
	}
	if cfg.LangfusePromptName != "night-insights" {
		t.Fatalf("prompt name default = %q", cfg.LangfusePromptName)
	}

	classifier := cfg.ClassifierConfig()
	if classifier.DeepDropBPM != 10 || classifier.MinInterval != 3*time.Minute || classifier.SampleSpan != 10*time.Minute {
		t.Fatalf("classifier defaults not applied: %+v", classifier)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("DEFAULT_TIMEZONE", "Europe/Prague")
	t.Setenv("HISTORY_DAYS", "14")
	t.Setenv("CLASSIFIER_DEEP_DROP_BPM", "12")
	t.Setenv("CLASSIFIER_MIN_INTERVAL_MINUTES", "5")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_INSIGHTS_MODEL", "model")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.DefaultTimezone != "Europe/Prague" || cfg.HistoryDays != 14 {
		t.Fatalf("history overrides not applied: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAIInsightsModel != "model" {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}

	classifier = cfg.ClassifierConfig()
	if classifier.DeepDropBPM != 12 || classifier.MinInterval != 5*time.Minute {
		t.Fatalf("classifier overrides not applied: %+v", classifier)
	}
	if classifier.VariabilityWindow != 6 {
		t.Fatalf("VariabilityWindow = %d, want stock 6", classifier.VariabilityWindow)
	}
}

func TestLangfuseConfig(t *testing.T) {
	cfg := &Config{
		LangfuseBaseURL:     "https://cloud.langfuse.com",
		LangfusePublicKey:   "pk",
		LangfuseSecretKey:   "sk",
		LangfuseEnv:         "staging",
		LangfusePromptName:  "night-insights",
		LangfusePromptLabel: "latest",
		PromptCachePath:     "/tmp/prompt.txt",
	}

	client := cfg.LangfuseConfig()
	if client.BaseURL != cfg.LangfuseBaseURL || client.Environment != "staging" {
		t.Errorf("LangfuseConfig() = %+v", client)
	}

	loader := cfg.PromptLoaderConfig("fallback")
	if loader.PromptLabel != "latest" || loader.CachePath != "/tmp/prompt.txt" || loader.Default != "fallback" {
		t.Errorf("PromptLoaderConfig() = %+v", loader)
	}
}
