// Package flow implements the interactive command-resolution loop: one user
// intent becomes a generation round, a streamed presentation, and a series of
// user-directed transitions (run, edit, explain, revise, copy, cancel).
package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	appconfig "github.com/aido-sh/aido/internal/application/config"
	"github.com/aido-sh/aido/internal/domain"
	"github.com/aido-sh/aido/internal/ports"
)

// Service orchestrates the session lifecycle end-to-end.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	ProviderFactory ports.ProviderFactory
	EnvProbe        ports.EnvProbe
	Executor        ports.CommandExecutor
	Clipboard       ports.Clipboard
	HistoryStore    ports.HistoryStore
	Security        ports.SecurityService
	Prompter        ports.Prompter
	Renderer        ports.StreamRenderer
	Translator      ports.Translator
	Logger          ports.Logger
	Out             io.Writer

	// callTimeout bounds each backend call; it covers a single generation
	// round, never the time the user spends at a prompt.
	callTimeout time.Duration
}

// Request captures user intent originating from the CLI surface.
type Request struct {
	Context       context.Context
	Prompt        string
	ModelOverride string
	// Silent is honored only when SilentSet is true; an explicit flag wins
	// over the persisted configuration value.
	Silent    bool
	SilentSet bool
}

// Run drives one session: prompt capture, generation, and the decision loop.
func (s *Service) Run(req Request) error {
	if s.ConfigProvider == nil || s.ProviderFactory == nil || s.EnvProbe == nil ||
		s.Executor == nil || s.Prompter == nil || s.Renderer == nil || s.Logger == nil {
		return errors.New("flow.Service dependencies not satisfied")
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := appconfig.Validate(cfg); err != nil {
		return err
	}

	s.callTimeout = time.Duration(cfg.Preferences.TimeoutSeconds) * time.Second

	modelDef, err := pickModel(cfg, req.ModelOverride)
	if err != nil {
		return err
	}

	provider, err := s.ProviderFactory.ForModel(modelDef)
	if err != nil {
		return fmt.Errorf("provider init: %w", err)
	}

	prompt, ok, err := s.capturePrompt(req.Prompt)
	if err != nil {
		return err
	}
	if !ok {
		s.farewell()
		return nil
	}

	sess := &domain.Session{
		Prompt: prompt,
		Silent: effectiveSilent(req, cfg),
	}

	env := s.EnvProbe.Collect(ctx)

	s.Logger.Info("calling provider", map[string]interface{}{
		"provider": provider.Name(),
		"model":    modelDef.ModelID,
	})

	if err := s.generate(ctx, provider, sess, env); err != nil {
		return err
	}
	s.present(sess)

	if sess.Silent {
		return nil
	}
	return s.decisionLoop(ctx, provider, modelDef, sess)
}

// capturePrompt returns the trimmed prompt, asking interactively when the
// CLI supplied none. ok is false when the user interrupted the prompt.
func (s *Service) capturePrompt(initial string) (string, bool, error) {
	prompt := strings.TrimSpace(initial)
	if prompt != "" {
		return prompt, true, nil
	}
	prompt, err := s.Prompter.Text("prompt.ask", s.nonEmpty("prompt.empty"))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read prompt: %w", err)
	}
	return prompt, true, nil
}

// decisionLoop is the AwaitingDecision state, modeled as an explicit loop so
// long revision sessions do not grow the stack.
func (s *Service) decisionLoop(
	ctx context.Context,
	provider ports.CompletionProvider,
	modelDef domain.ModelDefinition,
	sess *domain.Session,
) error {
	for {
		decision, err := s.Prompter.Select(sess.TitleKey(), sess.Options())
		if err != nil {
			s.farewell()
			return nil
		}

		switch decision {
		case domain.DecisionRun:
			s.execute(ctx, sess, modelDef, domain.HistoryActionRun)
			return nil

		case domain.DecisionEdit:
			edited, ok, err := s.Prompter.Edit("prompt.edit", sess.Script)
			if err != nil || !ok {
				continue
			}
			sess.Script = edited
			s.execute(ctx, sess, modelDef, domain.HistoryActionEdit)
			return nil

		case domain.DecisionExplain:
			if sess.Info != "" {
				// Already known for this script version; nothing to fetch.
				continue
			}
			if err := s.explain(ctx, provider, sess); err != nil {
				return err
			}

		case domain.DecisionRevise:
			ok, err := s.revise(ctx, provider, sess)
			if err != nil {
				return err
			}
			if ok {
				s.present(sess)
			}

		case domain.DecisionCopy:
			s.copyScript(sess.Script)
			return nil

		case domain.DecisionCancel:
			s.farewell()
			return nil
		}
	}
}

func (s *Service) generate(ctx context.Context, provider ports.CompletionProvider, sess *domain.Session, env domain.EnvSnapshot) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	stream, err := provider.GenerateScript(ctx, sess.Prompt, env)
	if err != nil {
		return fmt.Errorf("generate script: %w", err)
	}
	full, err := s.drain("status.thinking", stream)
	if err != nil {
		return fmt.Errorf("generate script: %w", err)
	}
	script, info := Extract(full)
	sess.Script = script
	sess.Info = info
	return nil
}

func (s *Service) explain(ctx context.Context, provider ports.CompletionProvider, sess *domain.Session) error {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	stream, err := provider.GenerateExplanation(ctx, sess.Script)
	if err != nil {
		return fmt.Errorf("generate explanation: %w", err)
	}
	full, err := s.drain("status.explaining", stream)
	if err != nil {
		return fmt.Errorf("generate explanation: %w", err)
	}
	sess.Info = full
	return nil
}

// revise asks for feedback and replaces the script. ok is false when the
// feedback prompt was interrupted; the session continues unchanged.
func (s *Service) revise(ctx context.Context, provider ports.CompletionProvider, sess *domain.Session) (bool, error) {
	feedback, err := s.Prompter.Text("prompt.revise", s.nonEmpty("prompt.revise_empty"))
	if err != nil {
		return false, nil
	}
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	stream, err := provider.GenerateRevision(callCtx, feedback, sess.Script)
	if err != nil {
		return false, fmt.Errorf("generate revision: %w", err)
	}
	full, err := s.drain("status.revising", stream)
	if err != nil {
		return false, fmt.Errorf("generate revision: %w", err)
	}
	script, _ := Extract(full)
	sess.ReplaceScript(script)
	return true, nil
}

func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.callTimeout)
}

func (s *Service) drain(labelKey string, stream ports.Stream) (string, error) {
	s.Renderer.Begin(labelKey)
	defer s.Renderer.Done()
	return stream.Drain(s.Renderer.WriteChunk)
}

// execute runs the finalized script. Nonzero exits never come back from the
// executor; a spawn failure is logged and reported, then the session still
// ends with a zero exit because the error has been shown to the user.
func (s *Service) execute(ctx context.Context, sess *domain.Session, modelDef domain.ModelDefinition, action domain.HistoryAction) {
	if s.Security != nil {
		if risk := s.Security.Evaluate(sess.Script); risk.Elevated() {
			fmt.Fprintf(s.Out, "%s\n", s.t("risk.warning"))
			for _, reason := range risk.Reasons {
				fmt.Fprintf(s.Out, " - %s\n", reason)
			}
		}
	}

	err := s.Executor.Run(ctx, sess.Script)
	if err != nil {
		s.Logger.Warn("shell spawn failed", map[string]interface{}{"error": err.Error()})
		fmt.Fprintf(s.Out, "%s %v\n", s.t("run.spawn_failed"), err)
		return
	}

	if s.HistoryStore == nil {
		return
	}
	record := domain.HistoryRecord{
		Timestamp: time.Now(),
		Prompt:    sess.Prompt,
		Script:    sess.Script,
		Model:     modelDef.Name,
		Action:    action,
		Executed:  true,
	}
	if herr := s.HistoryStore.Append(record); herr != nil {
		s.Logger.Warn("history append failed", map[string]interface{}{"error": herr.Error()})
	}
}

func (s *Service) copyScript(script string) {
	if s.Clipboard == nil || !s.Clipboard.Enabled() {
		fmt.Fprintln(s.Out, s.t("copy.unavailable"))
		return
	}
	if err := s.Clipboard.Write(script); err != nil {
		s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
		fmt.Fprintln(s.Out, s.t("copy.failed"))
		return
	}
	fmt.Fprintln(s.Out, s.t("copy.done"))
}

func (s *Service) present(sess *domain.Session) {
	if sess.Script == "" {
		fmt.Fprintf(s.Out, "\n%s\n", s.t("script.none"))
		return
	}
	fmt.Fprintf(s.Out, "\n%s\n  %s\n", s.t("script.title"), sess.Script)
}

func (s *Service) farewell() {
	fmt.Fprintln(s.Out, s.t("cancel.goodbye"))
}

// nonEmpty builds a validator rejecting blank input with a localized message.
func (s *Service) nonEmpty(messageKey string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(s.t(messageKey))
		}
		return nil
	}
}

func (s *Service) t(key string) string {
	if s.Translator == nil {
		return key
	}
	return s.Translator.Translate(key)
}

func effectiveSilent(req Request, cfg domain.Config) bool {
	if req.SilentSet {
		return req.Silent
	}
	return cfg.Preferences.Silent
}

func pickModel(cfg domain.Config, override string) (domain.ModelDefinition, error) {
	name := override
	if name == "" {
		name = cfg.Preferences.DefaultModel
	}
	if name == "" && len(cfg.Models) > 0 {
		return cfg.Models[0], nil
	}
	for _, model := range cfg.Models {
		if model.Name == name {
			return model, nil
		}
	}
	return domain.ModelDefinition{}, &domain.ConfigError{
		Property: "preferences.default_model",
		Reason:   fmt.Sprintf("model %s not configured", name),
	}
}
