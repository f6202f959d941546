// Package errors defines the error taxonomy used when a scaffold run fails.
// Every fatal error carries a stable Code so the top-level handler can map it
// to an exit status and an operator-facing hint.
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable error code string.
type Code string

const (
	EUsage           Code = "E_USAGE"
	ETargetConflict  Code = "E_TARGET_CONFLICT"
	ETemplateMissing Code = "E_TEMPLATE_MISSING"
	EManifest        Code = "E_MANIFEST"
	EInstall         Code = "E_INSTALL"
	EFilesystem      Code = "E_FILESYSTEM"
	EPrompt          Code = "E_PROMPT"
)

var (
	ErrNameRequired = errors.New("project name required")
	ErrTargetExists = errors.New("target directory already exists")
)

// ScaffoldError is a fatal error tagged with the state the run was in.
type ScaffoldError struct {
	Code  Code
	Msg   string
	State string
	Cause error
}

func (e *ScaffoldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// New creates a ScaffoldError without an underlying cause.
func New(code Code, msg string) error {
	return &ScaffoldError{Code: code, Msg: msg}
}

// Wrap creates a ScaffoldError around err.
func Wrap(code Code, msg string, err error) error {
	return &ScaffoldError{Code: code, Msg: msg, Cause: err}
}

// WithState records the state a failure happened in. Non-scaffold errors
// are wrapped as filesystem errors.
func WithState(err error, state string) error {
	if err == nil {
		return nil
	}
	var se *ScaffoldError
	if errors.As(err, &se) {
		if se.State == "" {
			se.State = state
		}
		return err
	}
	return &ScaffoldError{Code: EFilesystem, Msg: "scaffold failed", State: state, Cause: err}
}

// GetCode extracts the error code from err, or "" if err is not a ScaffoldError.
func GetCode(err error) Code {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// GetState returns the state recorded on err, if any.
func GetState(err error) string {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se.State
	}
	return ""
}

// ExitCode returns 0 for nil and 1 for every fatal error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Hint returns operator guidance for the given error, or "".
func Hint(err error) string {
	switch GetCode(err) {
	case EUsage:
		return "Usage: create-pochade <project-name>"
	case ETargetConflict:
		return "Choose another project name or remove the existing directory."
	case ETemplateMissing:
		return "The template assets are missing; reinstall create-pochade or fix --template-dir."
	case EManifest:
		return "The project directory was left on disk; check its package.json."
	case EInstall:
		return "The project was created; run the install command inside it to retry."
	}
	return ""
}
