package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/aido-sh/aido/internal/ports"
)

// StreamWriter echoes generation chunks to the terminal as they arrive. A
// spinner covers the gap between request submission and the first chunk;
// it is suppressed when stdout is not a terminal.
type StreamWriter struct {
	out        io.Writer
	translator ports.Translator
	spin       *spinner.Spinner
	animate    bool
	wrote      bool
}

// NewStreamWriter builds a StreamWriter for the given output.
func NewStreamWriter(out io.Writer, translator ports.Translator) *StreamWriter {
	if out == nil {
		out = os.Stdout
	}
	animate := false
	if f, ok := out.(*os.File); ok {
		animate = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &StreamWriter{out: out, translator: translator, animate: animate}
}

func (w *StreamWriter) Begin(labelKey string) {
	w.wrote = false
	if !w.animate {
		return
	}
	w.spin = spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(os.Stderr))
	w.spin.Suffix = " " + w.t(labelKey)
	w.spin.Start()
}

func (w *StreamWriter) WriteChunk(text string) {
	if text == "" {
		return
	}
	w.stopSpinner()
	w.wrote = true
	fmt.Fprint(w.out, text)
}

func (w *StreamWriter) Done() {
	w.stopSpinner()
	if w.wrote {
		fmt.Fprintln(w.out)
	}
}

func (w *StreamWriter) stopSpinner() {
	if w.spin != nil {
		w.spin.Stop()
		w.spin = nil
	}
}

func (w *StreamWriter) t(key string) string {
	if w.translator == nil {
		return key
	}
	return w.translator.Translate(key)
}

var _ ports.StreamRenderer = (*StreamWriter)(nil)
