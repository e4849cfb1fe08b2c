package nbt

import (
	"bytes"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	tree := Compound(
		F("Level", Compound(
			F("xPos", Int(4)),
			F("zPos", Int(2)),
			F("LastUpdate", Long(123456789)),
			F("Biomes", ByteArray([]byte{1, 2, 3, 4})),
			F("Heightmap", IntArray([]int32{10, 20, 30})),
			F("TerrainPopulated", Byte(1)),
			F("Sections", List(TagCompound, []Tree{
				Compound(F("Y", Byte(0))),
				Compound(F("Y", Byte(1))),
			})),
			F("Name", String("overworld")),
			F("Pitch", Float(1.5)),
			F("Health", Double(20.0)),
		)),
	)

	var buf bytes.Buffer
	if err := Write(&buf, "", tree); err != nil {
		t.Fatalf("Write: %v", err)
	}

	name, got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if name != "" {
		t.Errorf("name = %q, want empty", name)
	}
	if !got.Equal(tree) {
		t.Fatalf("round-tripped tree does not equal original\nwant: %+v\ngot:  %+v", tree, got)
	}
}

func TestGet(t *testing.T) {
	tree := Compound(F("a", Int(1)), F("b", Int(2)))
	v, ok := tree.Get("b")
	if !ok || v.Int != 2 {
		t.Fatalf("Get(b) = %v, %v", v, ok)
	}
	if _, ok := tree.Get("missing"); ok {
		t.Fatal("Get(missing) reported present")
	}
}

func TestEmptyCompoundRoundTrip(t *testing.T) {
	tree := Compound()
	var buf bytes.Buffer
	if err := Write(&buf, "root", tree); err != nil {
		t.Fatalf("Write: %v", err)
	}
	name, got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if name != "root" {
		t.Errorf("name = %q, want root", name)
	}
	if !got.Equal(tree) {
		t.Fatalf("got %+v, want %+v", got, tree)
	}
}
