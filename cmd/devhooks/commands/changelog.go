// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/bartekus/devhooks/cmd/devhooks/internal/clierr"
	"github.com/bartekus/devhooks/cmd/devhooks/internal/runenv"
	"github.com/bartekus/devhooks/internal/changelog"
	"github.com/bartekus/devhooks/internal/config"
	"github.com/bartekus/devhooks/internal/history"
)

// ChangelogProgram prefixes changelog failures.
const ChangelogProgram = "update_changelog"

// now is replaced in tests.
var now = time.Now

// NewChangelogCmd returns the changelog writer. use is "update_changelog" for
// the standalone binary and "changelog" under devhooks.
func NewChangelogCmd(use string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "Regenerate CHANGELOG.md from git history",
		Long: `Writes CHANGELOG.md at the repository root from the current branch history,
one "- <date> <short-hash> <subject>" line per commit under a generated
timestamp header. The file is replaced on every run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runChangelog,
	}
}

func runChangelog(cmd *cobra.Command, _ []string) error {
	env, err := runenv.Load(cmd, true)
	if err != nil {
		return clierr.Wrap(clierr.KindRuntime, ChangelogProgram, err)
	}

	src, err := history.New(history.Kind(env.Config.Changelog.Source), env.Root)
	if err != nil {
		return clierr.Wrap(clierr.KindRuntime, ChangelogProgram, err)
	}

	path := config.Resolve(env.Root, env.Config.Changelog.Output)
	opts := changelog.Options{
		BranchLabel: env.Config.Changelog.BranchLabel,
		Now:         now,
	}
	if err := changelog.Generate(cmd.Context(), src, path, opts); err != nil {
		return clierr.Wrap(clierr.KindRuntime, ChangelogProgram, err)
	}

	env.Log.Debug("changelog written", "path", path, "source", env.Config.Changelog.Source)
	return nil
}
