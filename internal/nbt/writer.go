package nbt

import (
	"encoding/binary"
	"io"
	"math"
)

// writer writes NBT binary data to an io.Writer in big-endian format. All
// put methods accumulate errors internally; the caller checks err once at
// the end rather than after every field.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) write(data []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(data)
}

func (w *writer) putByte(v byte) {
	w.write([]byte{v})
}

func (w *writer) putUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.write(buf[:])
}

func (w *writer) putInt32(v int32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	w.write(buf[:])
}

func (w *writer) putInt64(v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	w.write(buf[:])
}

func (w *writer) putName(name string) {
	w.putUint16(uint16(len(name)))
	if len(name) > 0 {
		w.write([]byte(name))
	}
}

func (w *writer) writeTagHeader(tagType byte, name string) {
	w.putByte(tagType)
	w.putName(name)
}

// writePayload writes the bytes of t, not including any tag header; list
// elements are written this way, with no header of their own.
func (w *writer) writePayload(t Tree) {
	switch t.Kind {
	case TagByte:
		w.putByte(t.Byte)
	case TagShort:
		w.putUint16(uint16(t.Short))
	case TagInt:
		w.putInt32(t.Int)
	case TagLong:
		w.putInt64(t.Long)
	case TagFloat:
		w.putInt32(int32(math.Float32bits(t.Float)))
	case TagDouble:
		w.putInt64(int64(math.Float64bits(t.Double)))
	case TagByteArray:
		w.putInt32(int32(len(t.ByteArray)))
		w.write(t.ByteArray)
	case TagString:
		w.putName(t.Str)
	case TagIntArray:
		w.putInt32(int32(len(t.IntArray)))
		for _, v := range t.IntArray {
			w.putInt32(v)
		}
	case TagList:
		w.putByte(t.ListKind)
		w.putInt32(int32(len(t.List)))
		for _, elem := range t.List {
			w.writePayload(elem)
		}
	case TagCompound:
		for _, f := range t.Compound {
			w.writeTagHeader(f.Value.Kind, f.Name)
			w.writePayload(f.Value)
		}
		w.putByte(TagEnd)
	case TagEnd:
		// nothing
	}
}

// Write serializes t as a single named top-level tag.
func Write(w io.Writer, name string, t Tree) error {
	nw := &writer{w: w}
	nw.writeTagHeader(t.Kind, name)
	nw.writePayload(t)
	return nw.err
}
