package ai

import (
	"fmt"
	"strings"

	"github.com/aido-sh/aido/internal/domain"
)

// promptMessage follows the role/content pair required by chat APIs.
type promptMessage struct {
	Role    string
	Content string
}

// promptExample is one few-shot request/command pair seeding generation. The
// set is resolved once at factory construction and passed down explicitly.
type promptExample struct {
	Request string
	Command string
}

func defaultExamples() []promptExample {
	return []promptExample{
		{Request: "list all files including hidden ones", Command: "ls -la"},
		{Request: "show disk usage of the current directory", Command: "du -sh ."},
		{Request: "find every markdown file under src", Command: "find src -name '*.md'"},
	}
}

const scriptSystemPrompt = `You translate natural language requests into a single %s command for %s.
Reply with the command inside a fenced code block marked sh. You may add a
short explanation after the block. If no command can satisfy the request,
reply with an empty code block.`

const explainSystemPrompt = `You explain shell commands. Describe concisely,
step by step, what the given command does. Do not suggest alternatives.`

const revisionSystemPrompt = `You revise shell commands according to user
feedback. Reply with only the updated command inside a fenced code block
marked sh. Do not add commentary.`

func scriptMessages(prompt string, env domain.EnvSnapshot, examples []promptExample) []promptMessage {
	shell := env.Shell
	if shell == "" {
		shell = "sh"
	}
	osName := env.OS
	if osName == "" {
		osName = "linux"
	}

	user := strings.TrimSpace(prompt)
	if env.WorkingDir != "" {
		user = fmt.Sprintf("%s\n\nCurrent directory: %s", user, env.WorkingDir)
	}

	messages := make([]promptMessage, 0, 2+2*len(examples))
	messages = append(messages, promptMessage{
		Role:    "system",
		Content: fmt.Sprintf(scriptSystemPrompt, shell, osName),
	})
	for _, example := range examples {
		messages = append(messages,
			promptMessage{Role: "user", Content: example.Request},
			promptMessage{Role: "assistant", Content: fmt.Sprintf("```sh\n%s\n```", example.Command)},
		)
	}
	return append(messages, promptMessage{Role: "user", Content: user})
}

func explainMessages(script string) []promptMessage {
	return []promptMessage{
		{Role: "system", Content: explainSystemPrompt},
		{Role: "user", Content: script},
	}
}

func revisionMessages(feedback, script string) []promptMessage {
	return []promptMessage{
		{Role: "system", Content: revisionSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Command:\n```sh\n%s\n```\n\nFeedback: %s", script, feedback)},
	}
}
