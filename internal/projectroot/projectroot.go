// Package projectroot locates the root of the git repository a command runs in.
package projectroot

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when no enclosing git repository exists.
var ErrNotRepository = errors.New("not inside a git repository")

// Find returns the absolute worktree root of the repository containing start.
// Inside a linked worktree that is the worktree's own directory.
func Find(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", ErrNotRepository, abs)
		}
		return "", fmt.Errorf("opening repository at %s: %w", abs, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}
