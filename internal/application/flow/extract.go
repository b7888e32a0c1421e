package flow

import "strings"

// Extract splits a raw model response into the runnable script and any
// explanatory text bundled with it. An empty info string means "not yet
// known", never "known to be absent": downstream logic fetches an
// explanation on demand only while info is empty.
//
// The backend is prompted to put the command in a fenced code block, but
// responses vary: a bare single-line reply is taken as the command itself,
// while fenceless prose is treated as a declined generation (empty script).
func Extract(raw string) (script, info string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	if block, rest, found := splitCodeBlock(raw); found {
		return strings.TrimSpace(block), strings.TrimSpace(rest)
	}

	if !strings.Contains(raw, "\n") {
		return raw, ""
	}
	return "", raw
}

// splitCodeBlock extracts the first fenced block and returns the remaining
// text around it.
func splitCodeBlock(content string) (block, rest string, found bool) {
	start := strings.Index(content, "```")
	if start == -1 {
		return "", "", false
	}
	after := content[start+3:]
	end := strings.Index(after, "```")
	if end == -1 {
		return "", "", false
	}

	block = after[:end]
	rest = content[:start] + after[end+3:]

	lines := strings.Split(block, "\n")
	if len(lines) > 0 && isLanguageTag(strings.TrimSpace(lines[0])) {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n"), rest, true
}

func isLanguageTag(line string) bool {
	switch strings.ToLower(line) {
	case "sh", "bash", "zsh", "shell", "console":
		return true
	default:
		return false
	}
}
