package ai

import (
	"strings"
	"testing"

	"github.com/aido-sh/aido/internal/domain"
)

func TestScriptMessagesShape(t *testing.T) {
	examples := []promptExample{
		{Request: "list files", Command: "ls"},
	}
	env := domain.EnvSnapshot{Shell: "zsh", OS: "darwin", WorkingDir: "/home/dev"}

	messages := scriptMessages("show open ports", env, examples)

	if len(messages) != 4 {
		t.Fatalf("expected system + example pair + user, got %d messages", len(messages))
	}
	if messages[0].Role != "system" || !strings.Contains(messages[0].Content, "zsh") || !strings.Contains(messages[0].Content, "darwin") {
		t.Fatalf("system message not parameterized: %+v", messages[0])
	}
	if messages[1].Role != "user" || messages[1].Content != "list files" {
		t.Fatalf("example request misplaced: %+v", messages[1])
	}
	if messages[2].Role != "assistant" || !strings.Contains(messages[2].Content, "ls") {
		t.Fatalf("example command misplaced: %+v", messages[2])
	}
	last := messages[len(messages)-1]
	if last.Role != "user" || !strings.Contains(last.Content, "show open ports") {
		t.Fatalf("user prompt misplaced: %+v", last)
	}
	if !strings.Contains(last.Content, "Current directory: /home/dev") {
		t.Fatalf("working directory not injected: %q", last.Content)
	}
}

func TestScriptMessagesDefaultsShellAndOS(t *testing.T) {
	messages := scriptMessages("anything", domain.EnvSnapshot{}, nil)

	system := messages[0].Content
	if !strings.Contains(system, "sh") || !strings.Contains(system, "linux") {
		t.Fatalf("defaults not applied: %q", system)
	}
}

func TestRevisionMessagesCarryScriptAndFeedback(t *testing.T) {
	messages := revisionMessages("use long listing", "ls *.js")

	if len(messages) != 2 {
		t.Fatalf("expected system + user, got %d", len(messages))
	}
	user := messages[1].Content
	if !strings.Contains(user, "ls *.js") || !strings.Contains(user, "use long listing") {
		t.Fatalf("revision message incomplete: %q", user)
	}
}
