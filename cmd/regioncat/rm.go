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

type rmCommand struct {
	path string
	cx   int
	cz   int
}

func (*rmCommand) Name() string     { return "rm" }
func (*rmCommand) Synopsis() string { return "Delete one chunk from a region file." }
func (*rmCommand) Usage() string {
	return `rm -region <path> -cx <n> -cz <n>
Delete the chunk at local coordinates (cx, cz), freeing its sectors.

`
}

func (c *rmCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "region", "", "path to the .mca region file")
	f.IntVar(&c.cx, "cx", 0, "chunk x within the region, [0,32)")
	f.IntVar(&c.cz, "cz", 0, "chunk z within the region, [0,32)")
}

func (c *rmCommand) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.path == "" {
		fmt.Fprintln(os.Stderr, "-region is required")
		return subcommands.ExitUsageError
	}

	r, err := region.OpenFile(c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open region: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	err = r.DeleteChunk(region.ChunkPosition{CX: uint8(c.cx), CZ: uint8(c.cz)})
	if err != nil {
		if errors.Is(err, region.ErrChunkNotFound) {
			fmt.Fprintf(os.Stderr, "no chunk at (%d,%d)\n", c.cx, c.cz)
		} else {
			fmt.Fprintf(os.Stderr, "delete chunk: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
