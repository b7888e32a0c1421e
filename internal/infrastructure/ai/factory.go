package ai

import (
	"net/http"
	"os"
	"strings"

	"github.com/aido-sh/aido/internal/domain"
	"github.com/aido-sh/aido/internal/ports"
)

// Factory builds completion providers from model definitions. Streaming
// responses arrive incrementally, so the shared client carries no timeout;
// per-request deadlines come from the caller's context. The few-shot example
// set is resolved once here and handed to every provider.
type Factory struct {
	httpClient *http.Client
	examples   []promptExample
}

func NewFactory() *Factory {
	return &Factory{httpClient: &http.Client{}, examples: defaultExamples()}
}

func (f *Factory) ForModel(model domain.ModelDefinition) (ports.CompletionProvider, error) {
	switch inferProviderKind(model.Endpoint, model.Name) {
	case domain.ProviderKindAnthropic:
		return newHTTPProvider("anthropic", model, f.httpClient, anthropicAdapter(), f.examples), nil
	case domain.ProviderKindOllama:
		return newHTTPProvider("ollama", model, f.httpClient, ollamaAdapter(), f.examples), nil
	default:
		// OpenAI-compatible is the lingua franca of completion endpoints.
		return newHTTPProvider("openai", model, f.httpClient, openaiAdapter(), f.examples), nil
	}
}

func inferProviderKind(endpoint string, name string) domain.ProviderKind {
	nameLower := strings.ToLower(name)

	switch {
	case strings.Contains(endpoint, "anthropic.com"):
		return domain.ProviderKindAnthropic
	case strings.Contains(endpoint, "openai.com"):
		return domain.ProviderKindOpenAI
	case strings.Contains(nameLower, "ollama"), strings.Contains(endpoint, "11434"):
		return domain.ProviderKindOllama
	default:
		return domain.ProviderKindUnknown
	}
}

func resolveAuth(primary string, fallback string) string {
	if primary != "" {
		if value := os.Getenv(primary); value != "" {
			return value
		}
	}
	if fallback == "" {
		return ""
	}
	return os.Getenv(fallback)
}

var _ ports.ProviderFactory = (*Factory)(nil)
