// Package template resolves ${key} placeholder tokens in project files.
package template

import (
	"regexp"
)

// tokenPattern matches ${key} with optional whitespace around the key.
var tokenPattern = regexp.MustCompile(`\$\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}`)

// Substitute replaces every ${key} token whose key is in tokens with its
// value. Unknown tokens are left as literal text. Values are inserted
// verbatim and never re-scanned.
func Substitute(text string, tokens map[string]string) string {
	if len(tokens) == 0 {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := tokenPattern.FindStringSubmatch(match)[1]
		if value, ok := tokens[key]; ok {
			return value
		}
		return match
	})
}

// Orphans returns the distinct keys of tokens in text that tokens does not
// define, in order of first appearance.
func Orphans(text string, tokens map[string]string) []string {
	var orphans []string
	seen := make(map[string]bool)

	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		key := m[1]
		if _, ok := tokens[key]; ok || seen[key] {
			continue
		}
		seen[key] = true
		orphans = append(orphans, key)
	}

	return orphans
}
