package cli

import (
	"github.com/atotto/clipboard"

	"github.com/aido-sh/aido/internal/ports"
)

// Clipboard implements ports.Clipboard via the system clipboard.
type Clipboard struct{}

// NewClipboard builds the clipboard helper.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) Enabled() bool {
	return !clipboard.Unsupported
}

// Write copies text to the system clipboard.
func (c *Clipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

var _ ports.Clipboard = (*Clipboard)(nil)
