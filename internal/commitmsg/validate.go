// SPDX-License-Identifier: AGPL-3.0-or-later

package commitmsg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotFound is returned by ValidateFile when the message file does not exist.
var ErrNotFound = errors.New("commit message file not found")

// MissingSubject is the diagnostic for an empty subject line.
const MissingSubject = "Commit message must include a subject line."

// Result is the outcome of validating one subject line.
type Result struct {
	Subject     string
	Diagnostics []string
}

// OK reports whether no rule was violated.
func (r Result) OK() bool { return len(r.Diagnostics) == 0 }

// ExtractSubject returns the first line of a commit message with surrounding
// whitespace removed. Leading and trailing newlines of the message are ignored,
// so an empty message yields an empty subject. Besides "\n", every Unicode line
// boundary ends the first line.
func ExtractSubject(content string) string {
	content = strings.Trim(content, "\n")
	if i := strings.IndexFunc(content, isLineBreak); i >= 0 {
		content = content[:i]
	}
	return strings.TrimFunc(content, isSpace)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// ValidateSubject checks subject against the default rule.
func ValidateSubject(subject string) Result {
	return DefaultRule().Validate(subject)
}

// Validate checks subject against r. Length and grammar are checked
// independently and every violation is reported.
func (r *Rule) Validate(subject string) Result {
	res := Result{Subject: subject}
	if subject == "" {
		res.Diagnostics = append(res.Diagnostics, MissingSubject)
		return res
	}

	if n := utf8.RuneCountInString(subject); n > r.maxLength {
		res.Diagnostics = append(res.Diagnostics,
			fmt.Sprintf("Subject must be <= %d chars (got %d).", r.maxLength, n))
	}
	if !r.Matches(subject) {
		res.Diagnostics = append(res.Diagnostics, r.Guidance())
	}
	return res
}

// ValidateMessage extracts the subject from a full message and validates it.
func ValidateMessage(content string) Result {
	return ValidateSubject(ExtractSubject(content))
}

// ValidateFile reads the commit message at path and validates its subject.
// The file is never modified.
func ValidateFile(path string) (Result, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the hook argument
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Result{}, fmt.Errorf("reading commit message %s: %w", path, err)
	}
	return ValidateMessage(string(data)), nil
}
