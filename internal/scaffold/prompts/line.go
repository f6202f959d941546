package prompts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input stream ends before an answer is read.
var ErrNoInput = errors.New("no input available")

// LineAnswerSource reads answers one line at a time. It is used when stdin
// is not a terminal and in tests.
type LineAnswerSource struct {
	r *bufio.Reader
	w io.Writer
}

// NewLineAnswerSource creates a LineAnswerSource reading from r and writing
// prompts to w.
func NewLineAnswerSource(r io.Reader, w io.Writer) *LineAnswerSource {
	if w == nil {
		w = io.Discard
	}
	return &LineAnswerSource{r: bufio.NewReader(r), w: w}
}

// Ask writes "Question (default): " or "Question: " and reads one line.
func (s *LineAnswerSource) Ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(s.w, "%s (%s): ", question, def)
	} else {
		fmt.Fprintf(s.w, "%s: ", question)
	}

	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if line == "" {
			fmt.Fprintln(s.w)
			return "", ErrNoInput
		}
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
