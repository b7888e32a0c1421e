// Package filesystem resolves the user-level paths the tool keeps state in.
package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory, falling back to the
// working directory when it cannot be resolved.
func UserHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// DataDir returns the directory holding configuration and history (~/.aido).
func DataDir() string {
	return filepath.Join(UserHomeDir(), ".aido")
}
