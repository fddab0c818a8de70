// SPDX-License-Identifier: AGPL-3.0-or-later

// Package changelog renders commit history into CHANGELOG.md.
package changelog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bartekus/devhooks/internal/history"
)

const (
	// DefaultFileName is written at the repository root.
	DefaultFileName = "CHANGELOG.md"
	// DefaultBranchLabel names the branch in the header. It is a label only:
	// history is always read from the current HEAD.
	DefaultBranchLabel = "master"
	// NoCommits replaces the body when history is empty.
	NoCommits = "No commits found."

	timestampLayout = "2006-01-02 15:04 UTC"
)

// Options controls rendering.
type Options struct {
	// BranchLabel defaults to DefaultBranchLabel.
	BranchLabel string
	// Now defaults to time.Now. The result is converted to UTC.
	Now func() time.Time
}

func (o Options) branchLabel() string {
	if o.BranchLabel == "" {
		return DefaultBranchLabel
	}
	return o.BranchLabel
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now().UTC()
	}
	return o.Now().UTC()
}

// Render produces the changelog document for entries.
func Render(entries []history.Entry, opts Options) string {
	body := NoCommits
	if lines := history.Lines(entries); len(lines) > 0 {
		body = strings.Join(lines, "\n")
	}

	var sb strings.Builder
	sb.WriteString("# Changelog\n\n")
	fmt.Fprintf(&sb, "Generated automatically on %s from %s branch commit history.\n\n",
		opts.now().Format(timestampLayout), opts.branchLabel())
	sb.WriteString(body)
	sb.WriteString("\n")
	return sb.String()
}

// Generate reads src and writes the rendered changelog to path, replacing any
// existing file. Errors from src are returned unchanged and nothing is written.
func Generate(ctx context.Context, src history.Source, path string, opts Options) error {
	entries, err := src.Entries(ctx)
	if err != nil {
		return err
	}
	return Write(path, Render(entries, opts))
}

// Write replaces the file at path with content.
func Write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create changelog directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // G306: changelog is a tracked, world-readable file
		return fmt.Errorf("write changelog %q: %w", path, err)
	}
	return nil
}
