package validation

import (
	"errors"
	"regexp"
)

var (
	projectNamePattern = regexp.MustCompile(`^[a-z0-9\-_]+$`)
	nodeNamePattern    = regexp.MustCompile(`^[a-z0-9\-]+$`)
)

// NotEmpty rejects the empty string.
type NotEmpty struct {
	Reason string
}

func (n NotEmpty) Validate(value string) error {
	if value == "" {
		return errors.New(n.Reason)
	}
	return nil
}

// MatchesPattern rejects values that do not match Pattern.
type MatchesPattern struct {
	Pattern *regexp.Regexp
	Reason  string
}

func (m MatchesPattern) Validate(value string) error {
	if !m.Pattern.MatchString(value) {
		return errors.New(m.Reason)
	}
	return nil
}
