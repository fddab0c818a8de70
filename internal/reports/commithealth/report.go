// SPDX-License-Identifier: AGPL-3.0-or-later

package commithealth

import (
	"context"
	"fmt"
	"strings"

	"github.com/bartekus/devhooks/internal/commitmsg"
)

// Finding is a commit whose subject failed validation.
type Finding struct {
	Commit      CommitMetadata `json:"commit"`
	Diagnostics []string       `json:"diagnostics"`
}

// Report summarizes subject compliance across history.
type Report struct {
	Total      int            `json:"total"`
	Compliant  int            `json:"compliant"`
	Violations int            `json:"violations"`
	Ratio      float64        `json:"compliance_ratio"`
	ByType     map[string]int `json:"by_type"`
	Findings   []Finding      `json:"findings"`
}

// Options limits how much history is analyzed.
type Options struct {
	// Limit caps the number of most recent commits checked; 0 means all.
	Limit int
}

// Generate reads src and validates each subject.
func Generate(ctx context.Context, src HistorySource, opts Options) (*Report, error) {
	commits, err := src.Commits(ctx)
	if err != nil {
		return nil, err
	}
	if opts.Limit > 0 && len(commits) > opts.Limit {
		commits = commits[:opts.Limit]
	}
	return Analyze(commits), nil
}

// Analyze validates every commit subject with the default rule.
func Analyze(commits []CommitMetadata) *Report {
	rule := commitmsg.DefaultRule()
	r := &Report{
		Total:    len(commits),
		ByType:   map[string]int{},
		Findings: []Finding{},
	}

	for _, c := range commits {
		res := rule.Validate(c.Subject)
		if !res.OK() {
			r.Violations++
			r.Findings = append(r.Findings, Finding{Commit: c, Diagnostics: res.Diagnostics})
			continue
		}
		r.Compliant++
		r.ByType[typeOf(c.Subject)]++
	}

	if r.Total > 0 {
		r.Ratio = float64(r.Compliant) / float64(r.Total)
	}
	return r
}

// typeOf returns the type tag of a subject already known to be valid.
func typeOf(subject string) string {
	end := strings.IndexAny(subject, "(!:")
	if end < 0 {
		return subject
	}
	return subject[:end]
}

// FormatText renders the report for terminals. Diagnostics are reduced to
// their first line so each finding stays compact.
func FormatText(r *Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Commit health: %d/%d compliant (%.1f%%)\n", r.Compliant, r.Total, r.Ratio*100)

	if len(r.ByType) > 0 {
		sb.WriteString("\nBy type:\n")
		for _, t := range commitmsg.DefaultRule().AllowedTypes() {
			if n := r.ByType[t]; n > 0 {
				fmt.Fprintf(&sb, "  %-8s %d\n", t, n)
			}
		}
	}

	if len(r.Findings) > 0 {
		sb.WriteString("\nViolations:\n")
		for _, f := range r.Findings {
			fmt.Fprintf(&sb, "  %s %s %s\n", f.Commit.Date, f.Commit.ShortSHA, f.Commit.Subject)
			for _, d := range f.Diagnostics {
				first, _, _ := strings.Cut(d, "\n")
				fmt.Fprintf(&sb, "    - %s\n", first)
			}
		}
	}
	return sb.String()
}
