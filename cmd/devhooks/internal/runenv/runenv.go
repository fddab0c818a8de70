// Package runenv resolves what every devhooks command needs before it runs:
// the repository root, the effective configuration and a logger.
package runenv

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bartekus/devhooks/internal/config"
	"github.com/bartekus/devhooks/internal/logging"
	"github.com/bartekus/devhooks/internal/projectroot"
)

// Env is resolved once per command invocation.
type Env struct {
	// Root is empty when the command runs outside a repository and did not
	// require one.
	Root   string
	Config *config.Config
	Log    *slog.Logger
}

// Load resolves the environment for cmd. With requireRepo set, running
// outside a git repository is an error.
func Load(cmd *cobra.Command, requireRepo bool) (*Env, error) {
	log := logging.New(cmd.ErrOrStderr(), verbose(cmd))

	root, err := projectroot.Find(".")
	if err != nil {
		if requireRepo || !errors.Is(err, projectroot.ErrNotRepository) {
			return nil, err
		}
		log.Debug("no repository found, using defaults", "err", err)
		root = ""
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	log.Debug("environment loaded", "root", root, "changelog_source", cfg.Changelog.Source)

	return &Env{Root: root, Config: cfg, Log: log}, nil
}

// LoadLenient resolves the environment without failing: a missing
// repository or an invalid configuration is logged at WARN and the defaults
// are used instead.
func LoadLenient(cmd *cobra.Command) *Env {
	env, err := Load(cmd, false)
	if err == nil {
		return env
	}
	log := logging.New(cmd.ErrOrStderr(), verbose(cmd))
	log.Warn("ignoring devhooks configuration", "err", err)
	return &Env{Config: config.Default(), Log: log}
}

// Colorize decides whether output written to w may carry ANSI colors.
func (e *Env) Colorize(w io.Writer) bool {
	switch e.Config.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func verbose(cmd *cobra.Command) bool {
	f := cmd.Flag("verbose")
	return f != nil && f.Value.String() == "true"
}
