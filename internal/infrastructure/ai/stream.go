package ai

import (
	"bufio"
	"io"
	"strings"

	"github.com/aido-sh/aido/internal/domain"
	"github.com/aido-sh/aido/internal/ports"
)

// chunkParser decodes one event payload. done marks the provider's
// end-of-stream signal; a non-nil error marks a payload to skip.
type chunkParser func(data string) (delta string, done bool, err error)

// sseStream drains a server-sent-events response body, decoding each data
// payload through a provider-specific parser. It owns the body and closes
// it when the drain finishes.
type sseStream struct {
	body  io.ReadCloser
	parse chunkParser
}

func newSSEStream(body io.ReadCloser, parse chunkParser) *sseStream {
	return &sseStream{body: body, parse: parse}
}

// Drain implements ports.Stream. EOF before the provider's end-of-stream
// signal counts as abnormal termination: the accumulated text is returned
// alongside a *domain.StreamError so callers never mistake a truncated
// response for a complete one.
func (s *sseStream) Drain(onChunk func(string)) (string, error) {
	defer s.body.Close()

	reader := bufio.NewReader(s.body)
	var full strings.Builder
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return full.String(), &domain.StreamError{Cause: err}
		}

		data, ok := eventData(line)
		if !ok {
			continue
		}

		delta, done, perr := s.parse(data)
		if perr != nil {
			// Malformed keep-alive or vendor extension; skip it.
			continue
		}
		if delta != "" {
			full.WriteString(delta)
			if onChunk != nil {
				onChunk(delta)
			}
		}
		if done {
			return full.String(), nil
		}
	}
}

// eventData strips SSE framing. Bare JSON lines are accepted too, for
// backends that stream newline-delimited JSON instead of SSE.
func eventData(line string) (string, bool) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return "", false
	case strings.HasPrefix(line, "data:"):
		return strings.TrimSpace(strings.TrimPrefix(line, "data:")), true
	case strings.HasPrefix(line, "{"):
		return line, true
	default:
		return "", false
	}
}

var _ ports.Stream = (*sseStream)(nil)
