// SPDX-License-Identifier: AGPL-3.0-or-later

/*
devhooks - commit discipline and changelog tooling for git repositories.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package history reads commit history for the changelog and commit-health
// report. Two sources are provided: ExecSource shells out to git, RepoSource
// reads the object database through go-git.
package history

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Entry is one commit as it appears in `git log --date=short`.
type Entry struct {
	Hash        string
	ShortHash   string
	Date        string // author date, YYYY-MM-DD in the author's zone
	AuthorName  string
	AuthorEmail string
	Subject     string
}

// Line renders the entry as a changelog bullet, `- <date> <hash> <subject>`,
// with trailing whitespace removed.
func (e Entry) Line() string {
	line := fmt.Sprintf("- %s %s %s", e.Date, e.ShortHash, e.Subject)
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// Source provides commit history, newest first.
type Source interface {
	Entries(ctx context.Context) ([]Entry, error)
}

// Kind names a Source implementation in configuration.
type Kind string

const (
	KindExec Kind = "git"
	KindRepo Kind = "go-git"
)

// New returns the Source of the given kind rooted at dir.
func New(kind Kind, dir string) (Source, error) {
	switch kind {
	case KindExec, "":
		return NewExecSource(dir), nil
	case KindRepo:
		return NewRepoSource(dir), nil
	default:
		return nil, fmt.Errorf("unknown history source %q (must be %q or %q)", kind, KindExec, KindRepo)
	}
}

// Lines renders entries as changelog bullets, dropping any that render blank.
func Lines(entries []Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := e.Line()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// subjectOf mirrors git's %s: the first paragraph of the message with its
// lines joined by single spaces.
func subjectOf(message string) string {
	message = strings.TrimLeft(message, "\r\n")
	var parts []string
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}
