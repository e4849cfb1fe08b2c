package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/OCharnyshevich/anvilregion/region"
)

type readCommand struct {
	path string
	cx   int
	cz   int
}

func (*readCommand) Name() string     { return "read" }
func (*readCommand) Synopsis() string { return "Decode and print one chunk's NBT tree." }
func (*readCommand) Usage() string {
	return `read -region <path> -cx <n> -cz <n>
Decode the chunk at local coordinates (cx, cz) and print its tag tree.

`
}

func (c *readCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "region", "", "path to the .mca region file")
	f.IntVar(&c.cx, "cx", 0, "chunk x within the region, [0,32)")
	f.IntVar(&c.cz, "cz", 0, "chunk z within the region, [0,32)")
}

func (c *readCommand) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.path == "" {
		fmt.Fprintln(os.Stderr, "-region is required")
		return subcommands.ExitUsageError
	}
	if c.cx < 0 || c.cx >= 32 || c.cz < 0 || c.cz >= 32 {
		fmt.Fprintln(os.Stderr, "-cx and -cz must be in [0,32)")
		return subcommands.ExitUsageError
	}

	r, err := region.OpenFile(c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open region: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	tree, err := r.ReadChunk(region.ChunkPosition{CX: uint8(c.cx), CZ: uint8(c.cz)})
	if err != nil {
		if errors.Is(err, region.ErrChunkNotFound) {
			fmt.Fprintf(os.Stderr, "no chunk at (%d,%d)\n", c.cx, c.cz)
		} else {
			fmt.Fprintf(os.Stderr, "read chunk: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	dumpTree(os.Stdout, "", tree, 0)
	return subcommands.ExitSuccess
}
