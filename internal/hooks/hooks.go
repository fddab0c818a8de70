// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hooks installs the git commit-msg hook that runs commit_message_lint.
package hooks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// Marker identifies hooks written by devhooks.
const Marker = "# Installed by devhooks."

// HookName is the git hook that receives the commit message file path.
const HookName = "commit-msg"

// ErrHookExists is returned when a foreign commit-msg hook is already present.
var ErrHookExists = errors.New("commit-msg hook already exists")

// Script is the hook body. Git passes the message file path as $1.
func Script(linter string) string {
	return strings.Join([]string{
		"#!/bin/sh",
		Marker,
		fmt.Sprintf("exec %s \"$1\"", linter),
		"",
	}, "\n")
}

// Dir returns the hooks directory of the repository at root. core.hooksPath
// wins when set in the repository or the global git config; a relative value
// is anchored at root. Otherwise hooks live in the common git directory, which
// a linked worktree shares with its main checkout.
func Dir(root string) (string, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{EnableDotGitCommonDir: true})
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", root, err)
	}
	cfg, err := repo.Config()
	if err != nil {
		return "", fmt.Errorf("reading repository config: %w", err)
	}

	p := cfg.Raw.Section("core").Option("hooksPath")
	if p == "" {
		global, err := config.LoadConfig(config.GlobalScope)
		if err != nil {
			return "", fmt.Errorf("reading global git config: %w", err)
		}
		p = global.Raw.Section("core").Option("hooksPath")
	}
	if p != "" {
		return resolveHooksPath(root, p)
	}

	common, err := commonDir(root)
	if err != nil {
		return "", err
	}
	return filepath.Join(common, "hooks"), nil
}

func resolveHooksPath(root, p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding core.hooksPath %q: %w", p, err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
	}
	if filepath.IsAbs(p) {
		return p, nil
	}
	return filepath.Join(root, p), nil
}

// commonDir locates the git directory shared by all worktrees. In a linked
// worktree .git is a file pointing at a per-worktree directory whose
// commondir file names the shared one.
func commonDir(root string) (string, error) {
	dotGit := filepath.Join(root, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		return "", fmt.Errorf("locating git directory: %w", err)
	}
	if info.IsDir() {
		return dotGit, nil
	}

	data, err := os.ReadFile(dotGit) //nolint:gosec // G304: .git file of the repository root
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dotGit, err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	gitDir, ok := strings.CutPrefix(strings.TrimSpace(line), "gitdir:")
	if !ok {
		return "", fmt.Errorf("%s: missing gitdir line", dotGit)
	}
	gitDir = anchor(root, strings.TrimSpace(gitDir))

	data, err = os.ReadFile(filepath.Join(gitDir, "commondir")) //nolint:gosec // G304: inside the git directory
	switch {
	case err == nil:
		return anchor(gitDir, strings.TrimSpace(string(data))), nil
	case os.IsNotExist(err):
		return gitDir, nil
	default:
		return "", fmt.Errorf("reading commondir: %w", err)
	}
}

func anchor(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// Install writes the commit-msg hook into dir and returns its path. An
// existing hook is replaced only if devhooks wrote it or force is set.
func Install(dir, linter string, force bool) (string, error) {
	path := filepath.Join(dir, HookName)

	existing, err := os.ReadFile(path) //nolint:gosec // G304: path is inside the hooks directory
	switch {
	case err == nil:
		if !force && !strings.Contains(string(existing), Marker) {
			return path, fmt.Errorf("%w at %s (use --force to replace)", ErrHookExists, path)
		}
	case !os.IsNotExist(err):
		return path, fmt.Errorf("reading existing hook: %w", err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return path, fmt.Errorf("create hooks directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Script(linter)), 0o755); err != nil { //nolint:gosec // G306: hooks must be executable
		return path, fmt.Errorf("write hook %s: %w", path, err)
	}
	return path, nil
}
