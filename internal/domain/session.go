// Package domain defines core business entities and value objects for AIDO.
package domain

// Decision is the closed set of actions a user can take on a generated script.
type Decision string

const (
	DecisionRun     Decision = "run"
	DecisionEdit    Decision = "edit"
	DecisionExplain Decision = "explain"
	DecisionRevise  Decision = "revise"
	DecisionCopy    Decision = "copy"
	DecisionCancel  Decision = "cancel"
)

// MenuOption pairs a decision with the localization keys used to display it.
type MenuOption struct {
	Decision Decision
	LabelKey string
	HintKey  string
}

// Session holds the mutable state of one invocation, from initial prompt to
// terminal action. It is exclusively owned by the running flow.
type Session struct {
	Prompt string
	Script string
	Info   string
	Silent bool
}

// ReplaceScript swaps in a freshly generated script. Any cached explanation
// refers to the previous script and is discarded.
func (s *Session) ReplaceScript(script string) {
	s.Script = script
	s.Info = ""
}

// Options builds the decision menu for the current script. Run and Edit are
// omitted while the script is empty, since there is nothing to run.
func (s *Session) Options() []MenuOption {
	options := make([]MenuOption, 0, 6)
	if s.Script != "" {
		options = append(options,
			MenuOption{Decision: DecisionRun, LabelKey: "menu.run", HintKey: "menu.run_hint"},
			MenuOption{Decision: DecisionEdit, LabelKey: "menu.edit", HintKey: "menu.edit_hint"},
		)
	}
	options = append(options,
		MenuOption{Decision: DecisionExplain, LabelKey: "menu.explain"},
		MenuOption{Decision: DecisionRevise, LabelKey: "menu.revise"},
		MenuOption{Decision: DecisionCopy, LabelKey: "menu.copy"},
		MenuOption{Decision: DecisionCancel, LabelKey: "menu.cancel"},
	)
	return options
}

// TitleKey returns the localization key for the menu heading. An empty
// script reframes the question from running to revising.
func (s *Session) TitleKey() string {
	if s.Script == "" {
		return "menu.title_revise"
	}
	return "menu.title_run"
}

// Terminal reports whether the decision ends the session.
func (d Decision) Terminal() bool {
	switch d {
	case DecisionRun, DecisionCopy, DecisionCancel:
		return true
	default:
		return false
	}
}
