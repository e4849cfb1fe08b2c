package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	units "github.com/docker/go-units"
	"github.com/google/subcommands"

	"github.com/OCharnyshevich/anvilregion/region"
)

type listCommand struct {
	path string
}

func (*listCommand) Name() string     { return "list" }
func (*listCommand) Synopsis() string { return "List occupied chunk slots in a region file." }
func (*listCommand) Usage() string {
	return `list -region <path>
List every occupied chunk slot in a region file: its local (cx,cz),
sector count, allocated size (sector count x 4096 bytes, not the exact
compressed length), and last-write timestamp.

`
}

func (c *listCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "region", "", "path to the .mca region file")
}

func (c *listCommand) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	slots := r.Slots()
	fmt.Printf("%-8s %-8s %-6s %-10s %s\n", "cx", "cz", "count", "size", "written")
	for _, s := range slots {
		size := int64(s.Count) * 4096
		ts := time.Unix(int64(s.Timestamp), 0).UTC().Format(time.RFC3339)
		fmt.Printf("%-8d %-8d %-6d %-10s %s\n", s.Pos.CX, s.Pos.CZ, s.Count, humanSize(size), ts)
	}
	fmt.Printf("%d chunk(s)\n", len(slots))
	return subcommands.ExitSuccess
}

// humanSize renders n bytes the way operators expect to read them, e.g.
// "4KiB" instead of a raw byte count.
func humanSize(n int64) string {
	return units.BytesSize(float64(n))
}
