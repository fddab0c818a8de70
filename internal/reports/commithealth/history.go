// SPDX-License-Identifier: AGPL-3.0-or-later

/*
devhooks - commit discipline and changelog tooling for git repositories.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package commithealth checks every commit subject in history against the
// Conventional Commits rule and summarizes the result.
package commithealth

import (
	"context"
	"fmt"

	"github.com/bartekus/devhooks/internal/history"
)

// CommitMetadata represents a single commit's metadata.
type CommitMetadata struct {
	SHA         string `json:"sha"`
	ShortSHA    string `json:"short_sha"`
	Date        string `json:"date"`
	Subject     string `json:"subject"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}

// HistorySource provides commit history for analysis.
type HistorySource interface {
	Commits(ctx context.Context) ([]CommitMetadata, error)
}

// FromHistory adapts a history.Source.
func FromHistory(src history.Source) HistorySource {
	return historyAdapter{src: src}
}

type historyAdapter struct {
	src history.Source
}

func (h historyAdapter) Commits(ctx context.Context) ([]CommitMetadata, error) {
	entries, err := h.src.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	commits := make([]CommitMetadata, 0, len(entries))
	for _, e := range entries {
		commits = append(commits, CommitMetadata{
			SHA:         e.Hash,
			ShortSHA:    e.ShortHash,
			Date:        e.Date,
			Subject:     e.Subject,
			AuthorName:  e.AuthorName,
			AuthorEmail: e.AuthorEmail,
		})
	}
	return commits, nil
}
