// SPDX-License-Identifier: AGPL-3.0-or-later

/*
devhooks - commit discipline and changelog tooling for git repositories.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/devhooks/cmd/devhooks/commands/reports"
)

// NewRootCmd constructs the devhooks root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("DEVHOOKS_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "devhooks",
		Short:         "devhooks - commit message and changelog tooling",
		Long:          "devhooks validates Conventional Commits subjects, regenerates CHANGELOG.md from git history and reports on commit discipline.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of devhooks",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "devhooks version %s\n", version)
		},
	})

	cmd.AddCommand(NewCommitLintCmd("commit-msg"))
	cmd.AddCommand(NewChangelogCmd("changelog"))
	cmd.AddCommand(reports.NewReportsCommand())
	cmd.AddCommand(NewHooksCommand())
	cmd.AddCommand(NewConfigCommand())

	return cmd
}
