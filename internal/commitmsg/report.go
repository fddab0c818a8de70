// SPDX-License-Identifier: AGPL-3.0-or-later

package commitmsg

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// FailureHeader opens every failure report.
const FailureHeader = "Commit message check failed:"

// FormatReport renders the diagnostics of res as an indented bullet list under
// FailureHeader. A passing result renders as the empty string. Continuation
// lines of a multi-line diagnostic are kept verbatim.
func FormatReport(res Result, colorize bool) string {
	if res.OK() {
		return ""
	}

	header, bullet := FailureHeader, "-"
	if colorize {
		header = paint(color.FgRed, color.Bold).Sprint(FailureHeader)
		bullet = paint(color.FgRed).Sprint("-")
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	for _, issue := range res.Diagnostics {
		sb.WriteString("  ")
		sb.WriteString(bullet)
		sb.WriteString(" ")
		sb.WriteString(issue)
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteReport writes FormatReport(res, colorize) to w.
func WriteReport(w io.Writer, res Result, colorize bool) error {
	out := FormatReport(res, colorize)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out)
	return err
}

// paint forces color on regardless of color.NoColor; the caller already
// decided the destination supports it.
func paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}
