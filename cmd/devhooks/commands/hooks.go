// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/devhooks/cmd/devhooks/internal/clierr"
	"github.com/bartekus/devhooks/cmd/devhooks/internal/runenv"
	"github.com/bartekus/devhooks/internal/hooks"
)

// NewHooksCommand returns the `devhooks hooks` command group.
func NewHooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage git hooks",
	}

	install := &cobra.Command{
		Use:   "install",
		Short: "Install the commit-msg hook that runs commit_message_lint",
		Long: `Writes a commit-msg hook that runs the validator on every commit.

The hook goes to core.hooksPath when the repository or global git config sets
it, and to the shared hooks directory of the repository otherwise. From a
linked worktree that is the hooks directory of the main checkout.`,
		Args:  cobra.NoArgs,
		RunE:  runHooksInstall,
	}
	install.Flags().Bool("force", false, "replace an existing commit-msg hook not written by devhooks")
	install.Flags().String("linter", LintProgram, "validator command the hook executes")

	cmd.AddCommand(install)
	return cmd
}

func runHooksInstall(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	linter, _ := cmd.Flags().GetString("linter")

	env, err := runenv.Load(cmd, true)
	if err != nil {
		return clierr.Wrap(clierr.KindRuntime, "hooks install", err)
	}

	dir, err := hooks.Dir(env.Root)
	if err != nil {
		return clierr.Wrap(clierr.KindRuntime, "hooks install", err)
	}

	path, err := hooks.Install(dir, linter, force)
	if err != nil {
		return clierr.Wrap(clierr.KindUsage, "hooks install", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Installed %s\n", path)
	return nil
}
