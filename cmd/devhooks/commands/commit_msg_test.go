package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lintRun struct {
	code   int
	stdout string
	stderr string
}

func runLint(t *testing.T, args ...string) lintRun {
	t.Helper()
	cmd := NewCommitLintCmd(LintProgram)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))

	code := Execute(context.Background(), cmd, &stderr)
	return lintRun{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeMessage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCommitLint_Valid(t *testing.T) {
	chdir(t, t.TempDir())

	r := runLint(t, writeMessage(t, "feat(auth): add login flow"))
	assert.Equal(t, 0, r.code)
	assert.Empty(t, r.stdout)
	assert.Empty(t, r.stderr)
}

func TestCommitLint_GrammarViolation(t *testing.T) {
	chdir(t, t.TempDir())

	r := runLint(t, writeMessage(t, "update stuff"))
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.True(t, strings.HasPrefix(r.stderr, "Commit message check failed:\n\n  - "))
	assert.Contains(t, r.stderr, "Subject must follow Conventional Commits")
	assert.Contains(t, r.stderr, "Allowed types: build, chore, ci, docs, feat, fix, perf, refactor, revert, style, test")
	assert.Contains(t, r.stderr, "Example: feat(data-pipeline): add workflow triggers")
}

func TestCommitLint_TooLong(t *testing.T) {
	chdir(t, t.TempDir())

	r := runLint(t, writeMessage(t, "fix: "+strings.Repeat("a", 75)+"\n"))
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "Subject must be <= 72 chars (got 80)")
	assert.NotContains(t, r.stderr, "Conventional Commits")
}

func TestCommitLint_BothViolations(t *testing.T) {
	chdir(t, t.TempDir())

	r := runLint(t, writeMessage(t, "chang "+strings.Repeat("b", 70)))
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "  - Subject must be <= 72 chars (got 76).\n")
	assert.Contains(t, r.stderr, "  - Subject must follow Conventional Commits:\n")
}

func TestCommitLint_EmptyFile(t *testing.T) {
	chdir(t, t.TempDir())

	r := runLint(t, writeMessage(t, ""))
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "Commit message check failed:\n\n  - Commit message must include a subject line.\n", r.stderr)
}

func TestCommitLint_MissingArgument(t *testing.T) {
	chdir(t, t.TempDir())

	r := runLint(t)
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "commit_message_lint: no commit message file provided.\n", r.stderr)
	assert.Empty(t, r.stdout)
}

func TestCommitLint_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	r := runLint(t, "/tmp/does-not-exist.txt")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "file '/tmp/does-not-exist.txt' not found.")
	assert.Equal(t, "commit_message_lint: file '/tmp/does-not-exist.txt' not found.\n", r.stderr)
}

func TestCommitLint_ColorAlways(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DEVHOOKS_COLOR", "always")

	r := runLint(t, writeMessage(t, "nope"))
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "\x1b[")
}

// brokenConfigRepo enters a fresh repository whose project file does not parse.
func brokenConfigRepo(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".devhooks.yml"), []byte("color: [\n"), 0o600))
	chdir(t, root)
}

func TestCommitLint_BrokenConfigDoesNotAffectVerdict(t *testing.T) {
	brokenConfigRepo(t)

	r := runLint(t, writeMessage(t, "feat(auth): add login flow"))
	assert.Equal(t, 0, r.code)
	assert.Empty(t, r.stderr)

	r = runLint(t, "/tmp/does-not-exist.txt")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "commit_message_lint: file '/tmp/does-not-exist.txt' not found.\n", r.stderr)

	r = runLint(t)
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "commit_message_lint: no commit message file provided.\n", r.stderr)
}

func TestCommitLint_BrokenConfigStillReports(t *testing.T) {
	brokenConfigRepo(t)

	r := runLint(t, writeMessage(t, "update stuff"))
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "level=WARN")
	assert.Contains(t, r.stderr, "ignoring devhooks configuration")
	assert.Contains(t, r.stderr, "Commit message check failed:\n\n  - Subject must follow Conventional Commits:\n")
}

func TestCommitLint_InvalidColorSetting(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DEVHOOKS_COLOR", "yes")

	r := runLint(t, writeMessage(t, "fix: handle nil config"))
	assert.Equal(t, 0, r.code)
	assert.Empty(t, r.stderr)

	r = runLint(t, writeMessage(t, "nope"))
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "level=WARN")
	assert.Contains(t, r.stderr, "Commit message check failed:")
	assert.NotContains(t, r.stderr, "\x1b[", "defaults apply and stderr is not a terminal")
}

func TestCommitLint_UnderRoot(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := NewRootCmd()
	var stderr bytes.Buffer
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"commit-msg", writeMessage(t, "docs!: rewrite guide")})

	assert.Equal(t, 0, Execute(context.Background(), cmd, &stderr))
	assert.Empty(t, stderr.String())
}
