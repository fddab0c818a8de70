package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bartekus/devhooks/cmd/devhooks/internal/clierr"
)

// Execute runs cmd and returns the process exit code. Errors are printed to
// stderr unless the command already reported them.
func Execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if !clierr.IsSilent(err) {
		_, _ = fmt.Fprintln(stderr, err)
	}
	return clierr.ExitCodeOf(err)
}
