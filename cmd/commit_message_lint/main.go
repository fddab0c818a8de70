// SPDX-License-Identifier: AGPL-3.0-or-later

// Command commit_message_lint validates the subject line of a commit message
// file. Install it as a git commit-msg hook.
package main

import (
	"context"
	"os"

	"github.com/bartekus/devhooks/cmd/devhooks/commands"
)

func main() {
	os.Exit(commands.Execute(context.Background(), commands.NewCommitLintCmd(commands.LintProgram), os.Stderr))
}
