// Package ai implements streaming completion providers over the chat APIs
// of Anthropic, OpenAI, and OpenAI-compatible servers such as Ollama.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aido-sh/aido/internal/domain"
	"github.com/aido-sh/aido/internal/ports"
)

type httpProvider struct {
	name       string
	model      domain.ModelDefinition
	httpClient *http.Client
	adapter    providerAdapter
	examples   []promptExample
}

// providerAdapter encapsulates the protocol differences between backends.
type providerAdapter struct {
	buildRequest func(domain.ModelDefinition, []promptMessage) ([]byte, error)
	parseChunk   chunkParser
	setHeaders   func(*http.Request, domain.ModelDefinition) error
}

func newHTTPProvider(name string, model domain.ModelDefinition, client *http.Client, adapter providerAdapter, examples []promptExample) ports.CompletionProvider {
	return &httpProvider{
		name:       name,
		model:      model,
		httpClient: client,
		adapter:    adapter,
		examples:   examples,
	}
}

func (p *httpProvider) Name() string {
	return p.name
}

func (p *httpProvider) GenerateScript(ctx context.Context, prompt string, env domain.EnvSnapshot) (ports.Stream, error) {
	return p.open(ctx, scriptMessages(prompt, env, p.examples))
}

func (p *httpProvider) GenerateExplanation(ctx context.Context, script string) (ports.Stream, error) {
	return p.open(ctx, explainMessages(script))
}

func (p *httpProvider) GenerateRevision(ctx context.Context, feedback, script string) (ports.Stream, error) {
	return p.open(ctx, revisionMessages(feedback, script))
}

// open issues the streaming request and hands the body to an sseStream.
func (p *httpProvider) open(ctx context.Context, messages []promptMessage) (ports.Stream, error) {
	requestBody, err := p.adapter.buildRequest(p.model, messages)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.model.Endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("accept", "text/event-stream")
	if err := p.adapter.setHeaders(httpReq, p.model); err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		detail := readErrorBody(resp.Body)
		resp.Body.Close()
		if detail != "" {
			return nil, fmt.Errorf("%s: %s: %s", p.name, resp.Status, detail)
		}
		return nil, fmt.Errorf("%s: %s", p.name, resp.Status)
	}

	return newSSEStream(resp.Body, p.adapter.parseChunk), nil
}

func readErrorBody(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 2048))
	if err != nil {
		return ""
	}
	return string(bytes.TrimSpace(raw))
}

func anthropicAdapter() providerAdapter {
	return providerAdapter{
		buildRequest: buildAnthropicRequest,
		parseChunk:   parseAnthropicChunk,
		setHeaders:   setAnthropicHeaders,
	}
}

func openaiAdapter() providerAdapter {
	return providerAdapter{
		buildRequest: buildChatCompletionRequest,
		parseChunk:   parseChatCompletionChunk,
		setHeaders:   setOpenAIHeaders,
	}
}

func ollamaAdapter() providerAdapter {
	return providerAdapter{
		buildRequest: buildChatCompletionRequest,
		parseChunk:   parseChatCompletionChunk,
		setHeaders:   setOllamaHeaders,
	}
}

func buildAnthropicRequest(model domain.ModelDefinition, messages []promptMessage) ([]byte, error) {
	system, chat := splitSystemMessages(messages)

	request := map[string]interface{}{
		"model":      model.ModelID,
		"max_tokens": defaultInt(model.MaxTokens, 1024),
		"messages":   chat,
		"stream":     true,
	}
	if system != "" {
		request["system"] = system
	}
	return json.Marshal(request)
}

func splitSystemMessages(messages []promptMessage) (string, []map[string]string) {
	var system string
	chat := make([]map[string]string, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == "system" {
			if system != "" {
				system += "\n"
			}
			system += msg.Content
			continue
		}
		chat = append(chat, map[string]string{"role": msg.Role, "content": msg.Content})
	}
	return system, chat
}

// parseAnthropicChunk handles the Anthropic event stream: text deltas arrive
// as content_block_delta events and message_stop marks end-of-stream.
func parseAnthropicChunk(data string) (string, bool, error) {
	var event struct {
		Type  string `json:"type"`
		Delta struct {
			Text string `json:"text"`
		} `json:"delta"`
	}
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return "", false, err
	}
	switch event.Type {
	case "content_block_delta":
		return event.Delta.Text, false, nil
	case "message_stop":
		return "", true, nil
	default:
		return "", false, nil
	}
}

func setAnthropicHeaders(req *http.Request, model domain.ModelDefinition) error {
	apiKey := resolveAuth(model.AuthEnvVar, "ANTHROPIC_API_KEY")
	if apiKey == "" {
		return missingCredential(model, "ANTHROPIC_API_KEY")
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	return nil
}

func buildChatCompletionRequest(model domain.ModelDefinition, messages []promptMessage) ([]byte, error) {
	chat := make([]map[string]string, 0, len(messages))
	for _, msg := range messages {
		chat = append(chat, map[string]string{"role": msg.Role, "content": msg.Content})
	}

	request := map[string]interface{}{
		"model":    model.ModelID,
		"messages": chat,
		"stream":   true,
	}
	if model.MaxTokens > 0 {
		request["max_tokens"] = model.MaxTokens
	}
	return json.Marshal(request)
}

// parseChatCompletionChunk handles OpenAI-style streaming: content deltas in
// choices, a [DONE] sentinel (or a finish_reason) at end-of-stream.
func parseChatCompletionChunk(data string) (string, bool, error) {
	if data == "[DONE]" {
		return "", true, nil
	}
	var chunk struct {
		Choices []struct {
			Delta struct {
				Content string `json:"content"`
			} `json:"delta"`
			FinishReason *string `json:"finish_reason"`
		} `json:"choices"`
	}
	if err := json.Unmarshal([]byte(data), &chunk); err != nil {
		return "", false, err
	}
	if len(chunk.Choices) == 0 {
		return "", false, nil
	}
	choice := chunk.Choices[0]
	done := choice.FinishReason != nil && *choice.FinishReason != ""
	return choice.Delta.Content, done, nil
}

func setOpenAIHeaders(req *http.Request, model domain.ModelDefinition) error {
	apiKey := resolveAuth(model.AuthEnvVar, "OPENAI_API_KEY")
	if apiKey == "" {
		return missingCredential(model, "OPENAI_API_KEY")
	}
	req.Header.Set("authorization", "Bearer "+apiKey)
	return nil
}

func setOllamaHeaders(*http.Request, domain.ModelDefinition) error {
	// Local Ollama servers are unauthenticated.
	return nil
}

func missingCredential(model domain.ModelDefinition, fallbackVar string) error {
	name := model.AuthEnvVar
	if name == "" {
		name = fallbackVar
	}
	return &domain.ConfigError{
		Property: fmt.Sprintf("models.%s.auth_env_var", model.Name),
		Reason:   fmt.Sprintf("environment variable %s is not set", name),
	}
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
