// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reports contains the `devhooks reports` subcommands.
package reports

import (
	"github.com/spf13/cobra"
)

// NewReportsCommand returns the `devhooks reports` command.
func NewReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Report generators for devhooks",
		Long:  "Report commands describing commit discipline across repository history",
	}

	cmd.AddCommand(NewCommitHealthCommand())

	return cmd
}
