// Package envprobe gathers the environment data that parameterizes
// generation prompts.
package envprobe

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/aido-sh/aido/internal/domain"
	"github.com/aido-sh/aido/internal/ports"
)

// BasicProbe detects shell, OS, user, and working directory.
type BasicProbe struct{}

func NewBasicProbe() *BasicProbe {
	return &BasicProbe{}
}

// Collect gathers the snapshot. Every field is best-effort; a partially
// filled snapshot is fine.
func (p *BasicProbe) Collect(context.Context) domain.EnvSnapshot {
	wd, _ := os.Getwd()
	return domain.EnvSnapshot{
		WorkingDir: wd,
		Shell:      detectShell(),
		OS:         runtime.GOOS,
		User:       os.Getenv("USER"),
	}
}

func detectShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	if runtime.GOOS == "windows" {
		return "powershell"
	}
	return "sh"
}

var _ ports.EnvProbe = (*BasicProbe)(nil)
