package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aido-sh/aido/internal/domain"
	"github.com/aido-sh/aido/internal/ports"
)

// Prompter implements ports.Prompter over stdio.
type Prompter struct {
	in         *bufio.Reader
	out        io.Writer
	translator ports.Translator
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer, translator ports.Translator) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:         bufio.NewReader(in),
		out:        out,
		translator: translator,
	}
}

// Text asks for one line of input, re-prompting until validate accepts it.
// Validation failures are shown and resolved here; they never escape.
func (p *Prompter) Text(labelKey string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s ", p.t(labelKey))
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if validate != nil {
			if verr := validate(line); verr != nil {
				fmt.Fprintln(p.out, verr.Error())
				continue
			}
		}
		return line, nil
	}
}

// Select renders a numbered menu and reads the choice. Unparseable input
// re-renders the menu.
func (p *Prompter) Select(titleKey string, options []domain.MenuOption) (domain.Decision, error) {
	for {
		fmt.Fprintf(p.out, "\n%s\n", p.t(titleKey))
		for i, opt := range options {
			label := p.t(opt.LabelKey)
			if opt.HintKey != "" {
				label = fmt.Sprintf("%s %s", label, p.t(opt.HintKey))
			}
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, label)
		}
		fmt.Fprint(p.out, "> ")

		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if idx, aerr := strconv.Atoi(line); aerr == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1].Decision, nil
		}
	}
}

// Edit shows the current script and reads a replacement. An empty submission
// keeps the script unchanged and reports ok=false.
func (p *Prompter) Edit(labelKey, initial string) (string, bool, error) {
	fmt.Fprintf(p.out, "%s\n  %s\n> ", p.t(labelKey), initial)
	line, err := p.readLine()
	if err != nil {
		return "", false, err
	}
	if line == "" {
		return "", false, nil
	}
	return line, true, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) t(key string) string {
	if p.translator == nil {
		return key
	}
	return p.translator.Translate(key)
}

var _ ports.Prompter = (*Prompter)(nil)
