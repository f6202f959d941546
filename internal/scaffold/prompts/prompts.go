// Package prompts sequences scaffold questions through an AnswerSource.
package prompts

import (
	"fmt"
	"io"
	"strings"
)

// NodeRedPrefix is stripped from a project name to derive the default node name.
const NodeRedPrefix = "node-red-contrib-"

// AnswerSource yields one answer per question. Implementations block until
// the operator answers and return the trimmed answer, or def when it is blank.
type AnswerSource interface {
	Ask(question, def string) (string, error)
}

// Question describes a single prompt.
type Question struct {
	Key      string
	Question string
	Default  string
	// Validate, when set, is applied to the final answer. A non-nil error
	// causes the question to be asked again.
	Validate func(string) error
}

// Answers is an ordered key->value mapping populated by a Prompter.
type Answers struct {
	keys   []string
	values map[string]string
}

// NewAnswers returns an empty Answers.
func NewAnswers() *Answers {
	return &Answers{values: make(map[string]string)}
}

// Set stores value under key, keeping the first insertion order.
func (a *Answers) Set(key, value string) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value for key and whether it was set.
func (a *Answers) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Keys returns keys in insertion order.
func (a *Answers) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Map returns a copy of the answers as a plain map.
func (a *Answers) Map() map[string]string {
	out := make(map[string]string, len(a.values))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}

// Prompter asks questions in order and collects the answers.
type Prompter struct {
	source AnswerSource
	out    io.Writer
}

// NewPrompter creates a Prompter. Validation failures are written to out.
func NewPrompter(source AnswerSource, out io.Writer) *Prompter {
	if out == nil {
		out = io.Discard
	}
	return &Prompter{source: source, out: out}
}

// Run asks every question, re-asking validated questions until the answer
// passes. Every question key is present in the result.
func (p *Prompter) Run(questions []Question) (*Answers, error) {
	answers := NewAnswers()

	for _, q := range questions {
		answer, err := p.ask(q)
		if err != nil {
			return nil, err
		}
		answers.Set(q.Key, answer)
	}

	return answers, nil
}

func (p *Prompter) ask(q Question) (string, error) {
	for {
		answer, err := p.source.Ask(q.Question, q.Default)
		if err != nil {
			return "", fmt.Errorf("asking %s: %w", q.Key, err)
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			answer = q.Default
		}

		if q.Validate == nil {
			return answer, nil
		}
		if err := q.Validate(answer); err != nil {
			fmt.Fprintf(p.out, "❌ %s\n", err)
			continue
		}
		return answer, nil
	}
}

// DefaultNodeName strips the Node-RED contrib prefix from projectName.
func DefaultNodeName(projectName string) string {
	return strings.TrimPrefix(projectName, NodeRedPrefix)
}
