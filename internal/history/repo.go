// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

const shortHashLen = 7

// RepoSource reads history through go-git, without a git binary.
//
// Short hashes are a fixed 7 characters; git may print longer ones in large
// repositories where 7 is ambiguous.
type RepoSource struct {
	dir string
}

// NewRepoSource creates a source for the repository containing dir.
func NewRepoSource(dir string) *RepoSource {
	return &RepoSource{dir: dir}
}

// Entries walks history from HEAD in committer-time order. A repository
// without commits yields no entries.
func (s *RepoSource) Entries(ctx context.Context) ([]Entry, error) {
	repo, err := git.PlainOpenWithOptions(s.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", s.dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	var entries []Entry
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries = append(entries, entryOf(c))
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("walking log: %w", err)
	}
	return entries, nil
}

func entryOf(c *object.Commit) Entry {
	hash := c.Hash.String()
	return Entry{
		Hash:        hash,
		ShortHash:   hash[:shortHashLen],
		Date:        c.Author.When.Format("2006-01-02"),
		AuthorName:  c.Author.Name,
		AuthorEmail: c.Author.Email,
		Subject:     subjectOf(c.Message),
	}
}
