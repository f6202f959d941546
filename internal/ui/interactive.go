package ui

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/x/term"
)

// ErrAborted is returned when the operator cancels a prompt.
var ErrAborted = errors.New("aborted")

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// IsAbort reports whether err came from the operator cancelling a prompt.
func IsAbort(err error) bool {
	return errors.Is(err, ErrAborted) || errors.Is(err, huh.ErrUserAborted)
}

// NormalizeAbort maps huh's abort error to ErrAborted.
func NormalizeAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// HuhAnswerSource asks each question with a single-field huh form.
type HuhAnswerSource struct{}

func (s HuhAnswerSource) Ask(question, def string) (string, error) {
	var answer string

	input := huh.NewInput().
		Title(question).
		Value(&answer)
	if def != "" {
		input = input.Placeholder(def)
	}

	form := huh.NewForm(huh.NewGroup(input)).WithTheme(huh.ThemeCatppuccin())
	if err := form.Run(); err != nil {
		return "", NormalizeAbort(err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// RunWithSpinner runs fn behind a spinner when attached to a terminal, and
// plainly otherwise.
func RunWithSpinner(title string, fn func() error) error {
	if !IsInteractive() {
		return fn()
	}

	var fnErr error
	if err := spinner.New().
		Title(title).
		Action(func() { fnErr = fn() }).
		Run(); err != nil {
		return err
	}
	return fnErr
}
