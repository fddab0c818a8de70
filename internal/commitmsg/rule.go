// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commitmsg validates commit message subject lines against the
// Conventional Commits grammar.
package commitmsg

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SubjectMaxLength is the longest subject, in characters, that passes.
const SubjectMaxLength = 72

// Example is the subject shown in the grammar guidance block.
const Example = "feat(data-pipeline): add workflow triggers"

var allowedTypes = []string{
	"build",
	"chore",
	"ci",
	"docs",
	"feat",
	"fix",
	"perf",
	"refactor",
	"revert",
	"style",
	"test",
}

// Rule is the fixed subject grammar: a type from the allowed set, an optional
// lowercase (scope), an optional breaking-change "!", ": " and a message that
// does not start with whitespace.
type Rule struct {
	types     []string
	maxLength int
	pattern   *regexp.Regexp
}

var defaultRule = newRule(allowedTypes, SubjectMaxLength)

// DefaultRule returns the process-wide rule. It is built once and never mutated.
func DefaultRule() *Rule {
	return defaultRule
}

func newRule(types []string, maxLength int) *Rule {
	expr := `^(` + strings.Join(types, "|") + `)(?:\([a-z0-9\-]+\))?!?: [^\s].+$`
	return &Rule{
		types:     append([]string(nil), types...),
		maxLength: maxLength,
		pattern:   regexp.MustCompile(expr),
	}
}

// AllowedTypes returns a copy of the allowed type tags in display order.
func (r *Rule) AllowedTypes() []string {
	return append([]string(nil), r.types...)
}

// Matches reports whether subject satisfies the grammar. Length is not checked.
func (r *Rule) Matches(subject string) bool {
	if !r.pattern.MatchString(subject) {
		return false
	}
	// RE2 \s is ASCII only. Neither type nor scope may contain ':', so the
	// first ": " is the separator and the message starts right after it.
	i := strings.Index(subject, ": ")
	first, _ := utf8.DecodeRuneInString(subject[i+2:])
	return !isSpace(first)
}

// isSpace is the whitespace set of Unicode-aware tooling: unicode.IsSpace
// plus the information separators U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Guidance is the multi-line block reported on a grammar mismatch.
func (r *Rule) Guidance() string {
	lines := []string{
		"Subject must follow Conventional Commits:",
		"<type>(<optional-scope>): <imperative message>",
		"Allowed types: " + strings.Join(r.types, ", "),
		"Example: " + Example,
	}
	return strings.Join(lines, "\n")
}
