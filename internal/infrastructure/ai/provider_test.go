package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aido-sh/aido/internal/domain"
)

func sseHandler(t *testing.T, lines []string, capture *http.Request) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			*capture = *r
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, line := range lines {
			_, _ = w.Write([]byte(line + "\n\n"))
		}
	}
}

func TestGenerateScriptStreamsCompletion(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	var captured http.Request
	server := httptest.NewServer(sseHandler(t, []string{
		`data: {"choices":[{"delta":{"content":"ls"}}]}`,
		`data: {"choices":[{"delta":{"content":" *.js"}}]}`,
		`data: [DONE]`,
	}, &captured))
	defer server.Close()

	factory := NewFactory()
	provider, err := factory.ForModel(domain.ModelDefinition{
		Name:     "test",
		Endpoint: server.URL,
		ModelID:  "gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("ForModel() error = %v", err)
	}

	stream, err := provider.GenerateScript(context.Background(), "list js files", domain.EnvSnapshot{Shell: "zsh", OS: "linux"})
	if err != nil {
		t.Fatalf("GenerateScript() error = %v", err)
	}
	full, err := stream.Drain(nil)
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if full != "ls *.js" {
		t.Fatalf("full = %q", full)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer test-key" {
		t.Fatalf("authorization header = %q", got)
	}
	if got := captured.Header.Get("Accept"); got != "text/event-stream" {
		t.Fatalf("accept header = %q", got)
	}
}

func TestMissingCredentialIsConfigError(t *testing.T) {
	t.Setenv("AIDO_TEST_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	factory := NewFactory()
	provider, err := factory.ForModel(domain.ModelDefinition{
		Name:       "test",
		Endpoint:   "http://localhost:1/v1/chat/completions",
		ModelID:    "gpt-4o-mini",
		AuthEnvVar: "AIDO_TEST_KEY",
	})
	if err != nil {
		t.Fatalf("ForModel() error = %v", err)
	}

	_, err = provider.GenerateScript(context.Background(), "anything", domain.EnvSnapshot{})
	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if !strings.Contains(cfgErr.Reason, "AIDO_TEST_KEY") {
		t.Fatalf("reason must name the variable, got %q", cfgErr.Reason)
	}
}

func TestServerErrorSurfacesStatusAndBody(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	factory := NewFactory()
	provider, err := factory.ForModel(domain.ModelDefinition{Name: "test", Endpoint: server.URL, ModelID: "x"})
	if err != nil {
		t.Fatalf("ForModel() error = %v", err)
	}

	_, err = provider.GenerateScript(context.Background(), "anything", domain.EnvSnapshot{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "model overloaded") {
		t.Fatalf("error lacks status or body detail: %v", err)
	}
}

func TestInferProviderKind(t *testing.T) {
	tests := []struct {
		endpoint string
		name     string
		want     domain.ProviderKind
	}{
		{"https://api.anthropic.com/v1/messages", "claude", domain.ProviderKindAnthropic},
		{"https://api.openai.com/v1/chat/completions", "gpt", domain.ProviderKindOpenAI},
		{"http://localhost:11434/v1/chat/completions", "llama", domain.ProviderKindOllama},
		{"http://gpu-box:8080/v1/chat/completions", "my-ollama", domain.ProviderKindOllama},
		{"https://llm.example.com/v1/chat/completions", "custom", domain.ProviderKindUnknown},
	}
	for _, tt := range tests {
		if got := inferProviderKind(tt.endpoint, tt.name); got != tt.want {
			t.Errorf("inferProviderKind(%q, %q) = %v, want %v", tt.endpoint, tt.name, got, tt.want)
		}
	}
}

func TestResolveAuthPrefersPrimaryVariable(t *testing.T) {
	t.Setenv("AIDO_PRIMARY", "primary-key")
	t.Setenv("OPENAI_API_KEY", "fallback-key")

	if got := resolveAuth("AIDO_PRIMARY", "OPENAI_API_KEY"); got != "primary-key" {
		t.Fatalf("resolveAuth = %q", got)
	}

	t.Setenv("AIDO_PRIMARY", "")
	if got := resolveAuth("AIDO_PRIMARY", "OPENAI_API_KEY"); got != "fallback-key" {
		t.Fatalf("resolveAuth fallback = %q", got)
	}
}

func TestAnthropicRequestSplitsSystemPrompt(t *testing.T) {
	model := domain.ModelDefinition{ModelID: "claude-3-5-haiku", MaxTokens: 0}
	messages := []promptMessage{
		{Role: "system", Content: "You write shell commands."},
		{Role: "user", Content: "list files"},
	}

	raw, err := buildAnthropicRequest(model, messages)
	if err != nil {
		t.Fatalf("buildAnthropicRequest() error = %v", err)
	}
	body := string(raw)
	if !strings.Contains(body, `"system":"You write shell commands."`) {
		t.Fatalf("system prompt not lifted: %s", body)
	}
	if !strings.Contains(body, `"max_tokens":1024`) {
		t.Fatalf("default max_tokens missing: %s", body)
	}
	if !strings.Contains(body, `"stream":true`) {
		t.Fatalf("stream flag missing: %s", body)
	}
	if strings.Contains(body, `"role":"system"`) {
		t.Fatalf("system message leaked into chat messages: %s", body)
	}
}
