// Command regioncat inspects and edits Anvil-format region files directly,
// without needing a running world server. It is a thin wrapper over the
// region package.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&listCommand{}, "")
	subcommands.Register(&readCommand{}, "")
	subcommands.Register(&rmCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
