package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/OCharnyshevich/anvilregion/internal/nbt"
)

// dumpTree prints t as indented text, for humans inspecting a chunk's
// contents on the command line. It has no relation to the region file
// format itself.
func dumpTree(w io.Writer, name string, t nbt.Tree, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t.Kind {
	case nbt.TagCompound:
		fmt.Fprintf(w, "%s%s:\n", indent, label(name))
		for _, f := range t.Compound {
			dumpTree(w, f.Name, f.Value, depth+1)
		}
	case nbt.TagList:
		fmt.Fprintf(w, "%s%s: [%d]\n", indent, label(name), len(t.List))
		for i, elem := range t.List {
			dumpTree(w, fmt.Sprintf("[%d]", i), elem, depth+1)
		}
	case nbt.TagByteArray:
		fmt.Fprintf(w, "%s%s: byte[%d]\n", indent, label(name), len(t.ByteArray))
	case nbt.TagIntArray:
		fmt.Fprintf(w, "%s%s: int[%d]\n", indent, label(name), len(t.IntArray))
	case nbt.TagString:
		fmt.Fprintf(w, "%s%s: %q\n", indent, label(name), t.Str)
	default:
		fmt.Fprintf(w, "%s%s: %s\n", indent, label(name), scalar(t))
	}
}

func label(name string) string {
	if name == "" {
		return "(root)"
	}
	return name
}

func scalar(t nbt.Tree) string {
	switch t.Kind {
	case nbt.TagByte:
		return fmt.Sprintf("%d", t.Byte)
	case nbt.TagShort:
		return fmt.Sprintf("%d", t.Short)
	case nbt.TagInt:
		return fmt.Sprintf("%d", t.Int)
	case nbt.TagLong:
		return fmt.Sprintf("%d", t.Long)
	case nbt.TagFloat:
		return fmt.Sprintf("%g", t.Float)
	case nbt.TagDouble:
		return fmt.Sprintf("%g", t.Double)
	default:
		return ""
	}
}
