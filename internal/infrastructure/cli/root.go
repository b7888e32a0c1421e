package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aido-sh/aido/internal/app"
	"github.com/aido-sh/aido/internal/application/flow"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.FlowService.Prompter = NewPrompter(nil, nil, container.Translator)
	container.FlowService.Renderer = NewStreamWriter(os.Stdout, container.Translator)
	container.FlowService.Clipboard = NewClipboard()
	container.DoctorService.Clipboard = NewClipboard()

	var (
		model   string
		silent  bool
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:   "aido [prompt...]",
		Short: "AIDO - turn natural language into shell commands",
		Long: "AIDO converts a natural language request into a shell command,\n" +
			"then lets you run, edit, explain, revise, or copy it.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			req := flow.Request{
				Context:       ctx,
				Prompt:        strings.Join(args, " "),
				ModelOverride: model,
				Silent:        silent,
				SilentSet:     cmd.Flags().Changed("silent"),
			}
			return container.FlowService.Run(req)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&model, "model", "m", "", "Override model name (default from config)")
	root.Flags().BoolVarP(&silent, "silent", "s", false, "Print the generated script and exit without the decision menu")
	root.Flags().DurationVar(&timeout, "timeout", 0, "Override request timeout (0 uses the config value)")

	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
