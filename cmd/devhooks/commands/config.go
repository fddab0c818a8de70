package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/devhooks/cmd/devhooks/internal/clierr"
	"github.com/bartekus/devhooks/cmd/devhooks/internal/runenv"
)

// NewConfigCommand returns `devhooks config`.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect devhooks configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := runenv.Load(cmd, false)
			if err != nil {
				return clierr.Wrap(clierr.KindRuntime, "config show", err)
			}
			data, err := env.Config.YAML()
			if err != nil {
				return clierr.Wrap(clierr.KindRuntime, "config show: marshal", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return cmd
}
