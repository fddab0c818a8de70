// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads devhooks settings using koanf.
// Priority: environment variables (DEVHOOKS_*) > project file (.devhooks.yml
// at the repository root) > defaults. The commit subject rule itself is fixed
// and has no settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/bartekus/devhooks/internal/changelog"
	"github.com/bartekus/devhooks/internal/history"
)

const (
	// ProjectFileName is looked up at the repository root.
	ProjectFileName = ".devhooks.yml"
	// EnvPrefix prefixes environment overrides. A double underscore nests:
	// DEVHOOKS_CHANGELOG__BRANCH_LABEL sets changelog.branch_label.
	EnvPrefix = "DEVHOOKS_"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective configuration.
type Config struct {
	Color     string          `koanf:"color" yaml:"color"`
	Changelog ChangelogConfig `koanf:"changelog" yaml:"changelog"`
	Reports   ReportsConfig   `koanf:"reports" yaml:"reports"`
}

type ChangelogConfig struct {
	// Output is relative to the repository root unless absolute.
	Output      string `koanf:"output" yaml:"output"`
	BranchLabel string `koanf:"branch_label" yaml:"branch_label"`
	// Source selects the history reader: "git" or "go-git".
	Source string `koanf:"source" yaml:"source"`
}

type ReportsConfig struct {
	Dir string `koanf:"dir" yaml:"dir"`
}

// DefaultReportsDir holds generated reports, relative to the repository root.
const DefaultReportsDir = ".devhooks/reports"

// Defaults returns the flat key/value defaults.
func Defaults() map[string]any {
	return map[string]any{
		"color":                  ColorAuto,
		"changelog.output":       changelog.DefaultFileName,
		"changelog.branch_label": changelog.DefaultBranchLabel,
		"changelog.source":       string(history.KindExec),
		"reports.dir":            DefaultReportsDir,
	}
}

// Default returns the configuration used when nothing overrides the defaults.
func Default() *Config {
	return &Config{
		Color: ColorAuto,
		Changelog: ChangelogConfig{
			Output:      changelog.DefaultFileName,
			BranchLabel: changelog.DefaultBranchLabel,
			Source:      string(history.KindExec),
		},
		Reports: ReportsConfig{Dir: DefaultReportsDir},
	}
}

// Load builds the configuration for the repository rooted at root. An empty
// root skips the project file.
func Load(root string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if root != "" {
		path := filepath.Join(root, ProjectFileName)
		if fileExists(path) {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("loading project config %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks enumerated values and required paths.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: invalid value %q (must be auto, always or never)", c.Color)
	}
	switch history.Kind(c.Changelog.Source) {
	case history.KindExec, history.KindRepo:
	default:
		return fmt.Errorf("changelog.source: invalid value %q (must be git or go-git)", c.Changelog.Source)
	}
	if strings.TrimSpace(c.Changelog.Output) == "" {
		return fmt.Errorf("changelog.output: must not be empty")
	}
	if strings.TrimSpace(c.Reports.Dir) == "" {
		return fmt.Errorf("reports.dir: must not be empty")
	}
	return nil
}

// Resolve anchors a configured path at root unless it is absolute.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// YAML renders the configuration as a project file would contain it.
func (c *Config) YAML() ([]byte, error) {
	return yamlv3.Marshal(c)
}

// envTransform maps DEVHOOKS_CHANGELOG__BRANCH_LABEL to changelog.branch_label.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
