// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const fieldSep = "\x1f"

// logFormat carries the fields of `--pretty=format:- %ad %h %s` plus the
// metadata the commit-health report needs, unit-separated.
var logFormat = strings.Join([]string{"%H", "%h", "%ad", "%an", "%ae", "%s"}, "%x1f")

// ExecSource runs `git log` in a working directory.
type ExecSource struct {
	dir string
}

// NewExecSource creates a source that runs git in dir.
func NewExecSource(dir string) *ExecSource {
	return &ExecSource{dir: dir}
}

// Entries runs git log for the current branch. A failing git invocation is
// returned as is, with git's stderr attached.
func (s *ExecSource) Entries(ctx context.Context) ([]Entry, error) {
	cmd := exec.CommandContext(ctx, "git", "log", "--date=short", "--pretty=format:"+logFormat)
	cmd.Dir = s.dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("git log failed: %w", err)
	}
	return parseLog(string(out))
}

func parseLog(out string) ([]Entry, error) {
	var entries []Entry
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, fieldSep, 6)
		if len(fields) != 6 {
			return nil, fmt.Errorf("unexpected git log line %q", line)
		}
		entries = append(entries, Entry{
			Hash:        fields[0],
			ShortHash:   fields[1],
			Date:        fields[2],
			AuthorName:  fields[3],
			AuthorEmail: fields[4],
			Subject:     fields[5],
		})
	}
	return entries, nil
}
