// Package nbt implements a minimal reader and writer for the Named Binary
// Tag format used to encode chunk payloads. Region only needs an opaque
// bytes-in/bytes-out tree with a notion of equality; it never inspects tag
// contents itself.
package nbt

import "fmt"

// Tag type IDs, as they appear on the wire.
const (
	TagEnd       byte = 0
	TagByte      byte = 1
	TagShort     byte = 2
	TagInt       byte = 3
	TagLong      byte = 4
	TagFloat     byte = 5
	TagDouble    byte = 6
	TagByteArray byte = 7
	TagString    byte = 8
	TagList      byte = 9
	TagCompound  byte = 10
	TagIntArray  byte = 11
)

// Tree is a single NBT value. Exactly one of the typed fields is
// meaningful, selected by Kind.
type Tree struct {
	Kind byte

	Byte      byte
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	Str       string
	IntArray  []int32

	// List holds the elements of a TagList; ListKind is the tag type of
	// every element (NBT lists are homogeneous).
	List     []Tree
	ListKind byte

	// Compound holds named children of a TagCompound, in insertion order
	// so re-serialization is deterministic.
	Compound []Field
}

// Field is one named entry of a compound tag.
type Field struct {
	Name  string
	Value Tree
}

func Compound(fields ...Field) Tree { return Tree{Kind: TagCompound, Compound: fields} }
func F(name string, v Tree) Field   { return Field{Name: name, Value: v} }

func Byte(v byte) Tree            { return Tree{Kind: TagByte, Byte: v} }
func Short(v int16) Tree          { return Tree{Kind: TagShort, Short: v} }
func Int(v int32) Tree            { return Tree{Kind: TagInt, Int: v} }
func Long(v int64) Tree           { return Tree{Kind: TagLong, Long: v} }
func Float(v float32) Tree        { return Tree{Kind: TagFloat, Float: v} }
func Double(v float64) Tree       { return Tree{Kind: TagDouble, Double: v} }
func ByteArray(v []byte) Tree     { return Tree{Kind: TagByteArray, ByteArray: v} }
func String(v string) Tree        { return Tree{Kind: TagString, Str: v} }
func IntArray(v []int32) Tree     { return Tree{Kind: TagIntArray, IntArray: v} }
func List(kind byte, v []Tree) Tree {
	return Tree{Kind: TagList, ListKind: kind, List: v}
}

// Get returns the value of the named child of a compound tag, and whether
// it was present.
func (t Tree) Get(name string) (Tree, bool) {
	for _, f := range t.Compound {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Tree{}, false
}

// Equal reports whether t and other describe the same tree. Byte/int/float
// slices are compared by value, not identity.
func (t Tree) Equal(other Tree) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TagByte:
		return t.Byte == other.Byte
	case TagShort:
		return t.Short == other.Short
	case TagInt:
		return t.Int == other.Int
	case TagLong:
		return t.Long == other.Long
	case TagFloat:
		return t.Float == other.Float
	case TagDouble:
		return t.Double == other.Double
	case TagByteArray:
		return bytesEqual(t.ByteArray, other.ByteArray)
	case TagString:
		return t.Str == other.Str
	case TagIntArray:
		if len(t.IntArray) != len(other.IntArray) {
			return false
		}
		for i, v := range t.IntArray {
			if other.IntArray[i] != v {
				return false
			}
		}
		return true
	case TagList:
		if t.ListKind != other.ListKind || len(t.List) != len(other.List) {
			return false
		}
		for i, v := range t.List {
			if !v.Equal(other.List[i]) {
				return false
			}
		}
		return true
	case TagCompound:
		if len(t.Compound) != len(other.Compound) {
			return false
		}
		for i, f := range t.Compound {
			if f.Name != other.Compound[i].Name || !f.Value.Equal(other.Compound[i].Value) {
				return false
			}
		}
		return true
	case TagEnd:
		return true
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (t Tree) String() string {
	return fmt.Sprintf("Tree{kind=%d}", t.Kind)
}
