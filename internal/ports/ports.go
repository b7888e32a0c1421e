// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends only on these contracts; concrete adapters
// live in the infrastructure layer (HTTP completion clients, the terminal
// prompter, the sqlite history store, and so on).
package ports

import (
	"context"

	"github.com/aido-sh/aido/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.aido/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Stream delivers generated text incrementally. Drain must be called exactly
// once per generation round: it forwards every chunk to onChunk in arrival
// order and returns the full concatenated text once the stream ends. Abnormal
// transport termination before the end-of-stream signal yields a
// *domain.StreamError; chunks already emitted are not retracted.
type Stream interface {
	Drain(onChunk func(text string)) (string, error)
}

// CompletionProvider wraps one completion backend. Each operation opens an
// in-flight streaming call; credentials, model identifier, and endpoint are
// bound at construction time from the model definition.
type CompletionProvider interface {
	Name() string
	GenerateScript(ctx context.Context, prompt string, env domain.EnvSnapshot) (Stream, error)
	GenerateExplanation(ctx context.Context, script string) (Stream, error)
	GenerateRevision(ctx context.Context, feedback, script string) (Stream, error)
}

// ProviderFactory builds completion providers from model definitions.
type ProviderFactory interface {
	ForModel(domain.ModelDefinition) (CompletionProvider, error)
}

// EnvProbe gathers the environment data (shell, OS, working directory) that
// parameterizes generation prompts.
type EnvProbe interface {
	Collect(context.Context) domain.EnvSnapshot
}

// CommandExecutor runs a finalized script in a subshell wired to the user's
// terminal. A nonzero exit is not reported as an error: the subshell already
// surfaced its own diagnostics. Only spawn failures come back.
type CommandExecutor interface {
	Run(ctx context.Context, script string) error
}

// Clipboard provides best-effort system clipboard integration.
type Clipboard interface {
	Write(text string) error
	Enabled() bool
}

// HistoryStore persists executed commands. Appends are fire-and-forget from
// the flow's point of view; callers log and ignore failures.
type HistoryStore interface {
	Append(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Close() error
}

// Translator resolves localization keys to display strings. A missing key
// falls back to the default catalog and finally to the key itself.
type Translator interface {
	Translate(key string) string
}

// SecurityService matches a script against advisory guardrail rules.
type SecurityService interface {
	Evaluate(script string) domain.RiskAssessment
}

// Prompter handles the interactive terminal exchanges of the decision loop.
// All label arguments are localization keys. An error return means the input
// stream was interrupted; the flow treats that as a cancel.
type Prompter interface {
	// Text asks for a line of input, re-prompting until validate accepts it.
	Text(labelKey string, validate func(string) error) (string, error)
	// Select renders the decision menu and returns the chosen decision.
	Select(titleKey string, options []domain.MenuOption) (domain.Decision, error)
	// Edit offers the current script for modification. ok is false when the
	// user backed out, in which case value must be ignored.
	Edit(labelKey, initial string) (value string, ok bool, err error)
}

// StreamRenderer displays one generation round: a progress indicator from
// Begin until the first chunk arrives, then live chunk echo until Done.
type StreamRenderer interface {
	Begin(labelKey string)
	WriteChunk(text string)
	Done()
}

// Logger provides leveled logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
