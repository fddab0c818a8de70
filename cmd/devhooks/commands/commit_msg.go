// SPDX-License-Identifier: AGPL-3.0-or-later

/*
devhooks - commit discipline and changelog tooling for git repositories.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/bartekus/devhooks/cmd/devhooks/internal/clierr"
	"github.com/bartekus/devhooks/cmd/devhooks/internal/runenv"
	"github.com/bartekus/devhooks/internal/commitmsg"
)

// LintProgram prefixes every usage and not-found message of the validator,
// whichever binary runs it.
const LintProgram = "commit_message_lint"

// NewCommitLintCmd returns the commit message validator. use is the command
// name: "commit_message_lint" for the standalone binary, "commit-msg" under
// devhooks.
func NewCommitLintCmd(use string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <commit-message-file>",
		Short: "Validate a commit message subject against Conventional Commits",
		Long: `Reads the commit message file git passes to the commit-msg hook and checks
its first line: at most 72 characters, formatted as
<type>(<optional-scope>)[!]: <imperative message>.

Every violation is reported on stderr. Exit status is 0 when the subject
passes and 1 otherwise.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCommitLint,
	}
}

func runCommitLint(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return clierr.New(clierr.KindUsage, LintProgram+": no commit message file provided.")
	}
	path := args[0]

	res, err := commitmsg.ValidateFile(path)
	if err != nil {
		if errors.Is(err, commitmsg.ErrNotFound) {
			return clierr.Newf(clierr.KindNotFound, "%s: file '%s' not found.", LintProgram, path)
		}
		return clierr.Wrap(clierr.KindRuntime, LintProgram, err)
	}

	if res.OK() {
		return nil
	}

	// Settings only pick the report colour, so they are read after the
	// verdict and never turn it into a failure.
	env := runenv.LoadLenient(cmd)
	env.Log.Debug("validated subject", "subject", res.Subject, "violations", len(res.Diagnostics))

	stderr := cmd.ErrOrStderr()
	if err := commitmsg.WriteReport(stderr, res, env.Colorize(stderr)); err != nil {
		return clierr.Wrap(clierr.KindRuntime, LintProgram, err)
	}
	return clierr.Silent(clierr.KindValidation)
}
