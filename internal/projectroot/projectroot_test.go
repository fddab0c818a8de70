package projectroot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	for _, start := range []string{root, nested} {
		got, err := Find(start)
		require.NoError(t, err)
		got, err = filepath.EvalSymlinks(got)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFind_NotRepository(t *testing.T) {
	_, err := Find(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotRepository))
}

func TestFind_LinkedWorktree(t *testing.T) {
	main := t.TempDir()
	_, err := git.PlainInit(main, false)
	require.NoError(t, err)

	meta := filepath.Join(main, ".git", "worktrees", "wt")
	require.NoError(t, os.MkdirAll(meta, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(meta, "commondir"), []byte("../..\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(meta, "HEAD"), []byte("ref: refs/heads/wt\n"), 0o600))

	wt := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wt, ".git"), []byte("gitdir: "+meta+"\n"), 0o600))
	nested := filepath.Join(wt, "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Find(nested)
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(wt)
	require.NoError(t, err)
	got, err = filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
