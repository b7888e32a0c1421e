// Package executor runs finalized scripts in a subshell wired to the
// caller's terminal.
package executor

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/aido-sh/aido/internal/ports"
)

// LocalExecutor runs scripts on the host shell.
type LocalExecutor struct {
	shell string
}

// NewLocalExecutor builds a new executor, shell defaults to $SHELL then /bin/sh.
func NewLocalExecutor(shell string) *LocalExecutor {
	if shell == "" || shell == "auto" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{shell: shell}
}

// Run implements ports.CommandExecutor. Standard streams are inherited so
// interactive commands (pagers, editors) work transparently, and the call
// waits for the subshell end-to-end. A nonzero exit is swallowed: the
// subshell has already reported its own diagnostics to the terminal. Only
// spawn failures are returned.
func (e *LocalExecutor) Run(ctx context.Context, script string) error {
	cmd := exec.CommandContext(ctx, e.shell, "-c", script)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
