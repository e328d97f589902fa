package langfuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func promptServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/public/v2/prompts/night-insights" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("label"); got != "production" {
			t.Errorf("label = %q, want production", got)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func loaderConfig(baseURL, cachePath string) PromptLoaderConfig {
	return PromptLoaderConfig{
		BaseURL:     baseURL,
		PublicKey:   "pk",
		SecretKey:   "sk",
		PromptName:  "night-insights",
		PromptLabel: "production",
		CachePath:   cachePath,
		Default:     "default prompt",
	}
}

func TestLoadPrompt_TextPromptIsCached(t *testing.T) {
	server := promptServer(t, http.StatusOK, `{"type":"text","version":3,"prompt":"You are a sleep coach."}`)
	cache := filepath.Join(t.TempDir(), "prompts", "insights.txt")

	prompt, err := LoadPrompt(context.Background(), loaderConfig(server.URL, cache))
	if err != nil {
		t.Fatalf("LoadPrompt() error = %v", err)
	}
	if prompt.Text != "You are a sleep coach." || prompt.Version != 3 || prompt.Origin != OriginLangfuse {
		t.Errorf("LoadPrompt() = %+v", prompt)
	}

	data, err := os.ReadFile(cache)
	if err != nil || string(data) != "You are a sleep coach." {
		t.Errorf("cache = %q, %v", data, err)
	}
}

func TestLoadPrompt_ChatPromptKeepsSystemMessages(t *testing.T) {
	server := promptServer(t, http.StatusOK, `{"type":"chat","version":1,"prompt":[
		{"role":"system","content":"Rule one."},
		{"type":"placeholder","name":"history"},
		{"role":"user","content":"{{night}}"},
		{"role":"system","content":"Rule two."}
	]}`)

	prompt, err := LoadPrompt(context.Background(), loaderConfig(server.URL, ""))
	if err != nil {
		t.Fatalf("LoadPrompt() error = %v", err)
	}
	if prompt.Text != "Rule one.\n\nRule two." {
		t.Errorf("Text = %q", prompt.Text)
	}
}

func TestLoadPrompt_Fallbacks(t *testing.T) {
	failing := promptServer(t, http.StatusNotFound, `{"message":"not found"}`)

	t.Run("cache after fetch failure", func(t *testing.T) {
		cache := filepath.Join(t.TempDir(), "insights.txt")
		if err := os.WriteFile(cache, []byte("cached prompt"), 0o600); err != nil {
			t.Fatal(err)
		}

		prompt, err := LoadPrompt(context.Background(), loaderConfig(failing.URL, cache))
		if err != nil {
			t.Fatalf("LoadPrompt() error = %v", err)
		}
		if prompt.Text != "cached prompt" || prompt.Origin != OriginCache {
			t.Errorf("LoadPrompt() = %+v, want cached prompt", prompt)
		}
	})

	t.Run("default without langfuse or cache", func(t *testing.T) {
		cfg := loaderConfig("", filepath.Join(t.TempDir(), "missing.txt"))

		prompt, err := LoadPrompt(context.Background(), cfg)
		if err != nil {
			t.Fatalf("LoadPrompt() error = %v", err)
		}
		if prompt.Text != "default prompt" || prompt.Origin != OriginDefault {
			t.Errorf("LoadPrompt() = %+v, want default", prompt)
		}
	})

	t.Run("nothing available", func(t *testing.T) {
		cfg := loaderConfig("", "")
		cfg.Default = ""

		if _, err := LoadPrompt(context.Background(), cfg); err == nil {
			t.Error("expected error when no prompt is available")
		}
	})
}
