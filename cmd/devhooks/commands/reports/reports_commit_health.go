// SPDX-License-Identifier: AGPL-3.0-or-later

package reports

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/devhooks/cmd/devhooks/internal/clierr"
	"github.com/bartekus/devhooks/cmd/devhooks/internal/runenv"
	"github.com/bartekus/devhooks/internal/config"
	"github.com/bartekus/devhooks/internal/history"
	"github.com/bartekus/devhooks/internal/reports/commithealth"
)

// ReportFileName is written under reports.dir with --write.
const ReportFileName = "commit-health.json"

// newSource is replaced in tests.
var newSource = func(env *runenv.Env) (commithealth.HistorySource, error) {
	src, err := history.New(history.Kind(env.Config.Changelog.Source), env.Root)
	if err != nil {
		return nil, err
	}
	return commithealth.FromHistory(src), nil
}

func NewCommitHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit-health",
		Short: "Check every commit subject in history against Conventional Commits",
		Long: `Validates the subject of each commit reachable from HEAD with the same rule
as commit_message_lint and summarizes compliance.`,
		Args: cobra.NoArgs,
		RunE: runCommitHealth,
	}

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().Bool("fail-on-violation", false, "Exit 1 when any commit violates the rule")
	cmd.Flags().String("format", "text", "Output format: text (default) or json")
	cmd.Flags().Int("limit", 0, "Only check the N most recent commits (0 = all)")
	cmd.Flags().Bool("write", false, "Also write the JSON report to <reports.dir>/"+ReportFileName)

	return cmd
}

func runCommitHealth(cmd *cobra.Command, _ []string) error {
	failOnViolation, _ := cmd.Flags().GetBool("fail-on-violation")
	formatFlag, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")
	write, _ := cmd.Flags().GetBool("write")

	if formatFlag != "text" && formatFlag != "json" {
		return clierr.Newf(clierr.KindUsage, "invalid format: %s (must be 'text' or 'json')", formatFlag)
	}
	if limit < 0 {
		return clierr.Newf(clierr.KindUsage, "invalid limit: %d (must be >= 0)", limit)
	}

	env, err := runenv.Load(cmd, true)
	if err != nil {
		return clierr.Wrap(clierr.KindRuntime, "commit health", err)
	}

	src, err := newSource(env)
	if err != nil {
		return clierr.Wrap(clierr.KindRuntime, "commit health", err)
	}

	report, err := commithealth.Generate(cmd.Context(), src, commithealth.Options{Limit: limit})
	if err != nil {
		return clierr.Wrap(clierr.KindRuntime, "commit health", err)
	}

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return clierr.Wrap(clierr.KindRuntime, "commit health: marshaling JSON", err)
	}
	jsonData = append(jsonData, '\n')

	if write {
		path := filepath.Join(config.Resolve(env.Root, env.Config.Reports.Dir), ReportFileName)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return clierr.Wrap(clierr.KindRuntime, "commit health: create report directory", err)
		}
		if err := os.WriteFile(path, jsonData, 0o600); err != nil {
			return clierr.Wrap(clierr.KindRuntime, fmt.Sprintf("commit health: write %q", path), err)
		}
		env.Log.Debug("report written", "path", path)
	}

	out := []byte(commithealth.FormatText(report))
	if formatFlag == "json" {
		out = jsonData
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return clierr.Wrap(clierr.KindRuntime, "commit health: writing output", err)
	}

	if failOnViolation && report.Violations > 0 {
		return clierr.Silent(clierr.KindValidation)
	}
	return nil
}
