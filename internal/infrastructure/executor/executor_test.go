package executor

import (
	"context"
	"testing"
)

func TestNonzeroExitIsSwallowed(t *testing.T) {
	exec := NewLocalExecutor("/bin/sh")

	if err := exec.Run(context.Background(), "exit 3"); err != nil {
		t.Fatalf("nonzero exit must not surface, got %v", err)
	}
}

func TestSpawnFailureIsReturned(t *testing.T) {
	exec := NewLocalExecutor("/nonexistent/shell")

	if err := exec.Run(context.Background(), "true"); err == nil {
		t.Fatal("expected a spawn failure")
	}
}

func TestShellResolutionDefaults(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	if got := NewLocalExecutor("auto").shell; got != "/bin/zsh" {
		t.Fatalf("shell = %q, want /bin/zsh", got)
	}

	t.Setenv("SHELL", "")
	if got := NewLocalExecutor("").shell; got != "/bin/sh" {
		t.Fatalf("shell = %q, want /bin/sh", got)
	}

	if got := NewLocalExecutor("/usr/bin/fish").shell; got != "/usr/bin/fish" {
		t.Fatalf("explicit shell ignored, got %q", got)
	}
}
