// SPDX-License-Identifier: AGPL-3.0-or-later

// Command update_changelog rewrites CHANGELOG.md at the repository root from
// git history.
package main

import (
	"context"
	"os"

	"github.com/bartekus/devhooks/cmd/devhooks/commands"
)

func main() {
	os.Exit(commands.Execute(context.Background(), commands.NewChangelogCmd(commands.ChangelogProgram), os.Stderr))
}
