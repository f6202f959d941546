// Package validation provides the naming rules a scaffold applies to
// operator-supplied identifiers. Rules are pure and composable; a
// Validator reports the first rule that rejects a value.
package validation

// Rule defines a single validation rule applied to a candidate value.
type Rule interface {
	// Validate returns an error carrying a human-readable reason when
	// value is rejected, nil otherwise.
	Validate(value string) error
}

// Validator aggregates rules for one kind of value.
type Validator struct {
	// Rules is the ordered list of validation rules to apply.
	Rules []Rule
}

func NewValidator() *Validator {
	return &Validator{Rules: make([]Rule, 0)}
}

// AddRule adds a validation rule to the validator.
func (v *Validator) AddRule(rule Rule) *Validator {
	v.Rules = append(v.Rules, rule)
	return v
}

// Validate fails fast on the first rule that rejects value.
// The returned error message is the rule's reason, unprefixed, so it can
// be shown to an operator as-is.
func (v *Validator) Validate(value string) error {
	for _, rule := range v.Rules {
		if err := rule.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

var (
	projectName = NewValidator().
			AddRule(NotEmpty{Reason: "Name cannot be empty"}).
			AddRule(MatchesPattern{
			Pattern: projectNamePattern,
			Reason:  "Name must only contain lowercase letters, numbers, hyphens, and underscores",
		})

	nodeName = NewValidator().
			AddRule(NotEmpty{Reason: "Name cannot be empty"}).
			AddRule(MatchesPattern{
			Pattern: nodeNamePattern,
			Reason:  "Name must only contain lowercase letters, numbers, and hyphens",
		})
)

// ValidateProjectName accepts non-empty names made of [a-z0-9-_].
func ValidateProjectName(name string) error {
	return projectName.Validate(name)
}

// ValidateNodeName accepts non-empty names made of [a-z0-9-]. Underscores
// are rejected because the name becomes a file name and a registry key.
func ValidateNodeName(name string) error {
	return nodeName.Validate(name)
}
