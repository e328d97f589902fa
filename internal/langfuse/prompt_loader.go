package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PromptOrigin reports where a loaded prompt came from.
type PromptOrigin string

const (
	OriginLangfuse PromptOrigin = "langfuse"
	OriginCache    PromptOrigin = "cache"
	OriginDefault  PromptOrigin = "default"
)

// Prompt is a loaded system prompt.
type Prompt struct {
	Text    string
	Version int
	Origin  PromptOrigin
}

// PromptLoaderConfig describes how to load the insights prompt.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	// CachePath keeps the last fetched prompt for offline starts.
	CachePath string
	// Default is used when neither Langfuse nor the cache has a prompt.
	Default string
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// LoadPrompt tries Langfuse, then the local cache, then the default text.
// It only fails when all three are empty.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	if cfg.PromptName != "" {
		prompt, err := fetchPromptFromLangfuse(ctx, cfg)
		if err == nil {
			if err := savePromptToFile(cfg.CachePath, prompt.Text); err != nil {
				log.Printf("[langfuse] failed to cache prompt locally: %v", err)
			}
			return prompt, nil
		}
		if !errors.Is(err, errLangfuseDisabled) {
			log.Printf("[langfuse] prompt fetch failed: %v", err)
		}
	}

	if text, err := readPromptFromFile(cfg.CachePath); err == nil && strings.TrimSpace(text) != "" {
		return Prompt{Text: text, Origin: OriginCache}, nil
	}

	if strings.TrimSpace(cfg.Default) == "" {
		return Prompt{}, fmt.Errorf("no prompt available for %q", cfg.PromptName)
	}
	return Prompt{Text: cfg.Default, Origin: OriginDefault}, nil
}

func fetchPromptFromLangfuse(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return Prompt{}, errLangfuseDisabled
	}

	parsed, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return Prompt{}, fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	query := parsed.Query()
	if cfg.PromptLabel != "" {
		query.Set("label", cfg.PromptLabel)
	}
	parsed.RawQuery = query.Encode()

	requestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return Prompt{}, fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Prompt{}, fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Prompt{}, fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type    string          `json:"type"`
		Version int             `json:"version"`
		Prompt  json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return Prompt{}, fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	prompt := Prompt{Version: promptResp.Version, Origin: OriginLangfuse}
	switch promptResp.Type {
	case "", "text":
		if err := json.Unmarshal(promptResp.Prompt, &prompt.Text); err != nil {
			return Prompt{}, fmt.Errorf("parse text prompt: %w", err)
		}
	case "chat":
		var chatMessages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &chatMessages); err != nil {
			return Prompt{}, fmt.Errorf("parse chat prompt: %w", err)
		}
		prompt.Text = systemText(chatMessages)
	default:
		return Prompt{}, fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}

	if strings.TrimSpace(prompt.Text) == "" {
		return Prompt{}, fmt.Errorf("prompt %q is empty", cfg.PromptName)
	}
	return prompt, nil
}

type chatPromptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// systemText keeps the system messages of a chat prompt; the user turn is
// built from the night report at request time. A chat prompt without a
// system message falls back to all message contents.
func systemText(messages []chatPromptMessage) string {
	var system, all []string
	for _, msg := range messages {
		if msg.Type == "placeholder" || strings.TrimSpace(msg.Content) == "" {
			continue
		}
		all = append(all, msg.Content)
		if msg.Role == "system" {
			system = append(system, msg.Content)
		}
	}
	if len(system) > 0 {
		return strings.Join(system, "\n\n")
	}
	return strings.Join(all, "\n\n")
}

func readPromptFromFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no local prompt file configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read local prompt file: %w", err)
	}
	return string(data), nil
}

func savePromptToFile(path, prompt string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
