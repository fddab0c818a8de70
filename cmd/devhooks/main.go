// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"os"

	"github.com/bartekus/devhooks/cmd/devhooks/commands"
)

func main() {
	os.Exit(commands.Execute(context.Background(), commands.NewRootCmd(), os.Stderr))
}
