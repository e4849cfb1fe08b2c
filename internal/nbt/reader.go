package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// reader mirrors writer: it reads NBT binary data in big-endian format and
// accumulates the first error encountered.
type reader struct {
	r   io.Reader
	err error
}

func (r *reader) read(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		r.err = err
		return nil
	}
	return buf
}

func (r *reader) getByte() byte {
	b := r.read(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) getUint16() uint16 {
	b := r.read(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *reader) getInt32() int32 {
	b := r.read(4)
	if b == nil {
		return 0
	}
	return int32(binary.BigEndian.Uint32(b))
}

func (r *reader) getInt64() int64 {
	b := r.read(8)
	if b == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b))
}

func (r *reader) getName() string {
	n := r.getUint16()
	if r.err != nil || n == 0 {
		return ""
	}
	b := r.read(int(n))
	return string(b)
}

// readPayload reads the body of a tag whose type is already known.
func (r *reader) readPayload(kind byte) Tree {
	switch kind {
	case TagEnd:
		return Tree{Kind: TagEnd}
	case TagByte:
		return Tree{Kind: TagByte, Byte: r.getByte()}
	case TagShort:
		return Tree{Kind: TagShort, Short: int16(r.getUint16())}
	case TagInt:
		return Tree{Kind: TagInt, Int: r.getInt32()}
	case TagLong:
		return Tree{Kind: TagLong, Long: r.getInt64()}
	case TagFloat:
		return Tree{Kind: TagFloat, Float: math.Float32frombits(uint32(r.getInt32()))}
	case TagDouble:
		return Tree{Kind: TagDouble, Double: math.Float64frombits(uint64(r.getInt64()))}
	case TagByteArray:
		n := r.getInt32()
		if r.err != nil || n < 0 {
			return Tree{Kind: TagByteArray}
		}
		return Tree{Kind: TagByteArray, ByteArray: r.read(int(n))}
	case TagString:
		return Tree{Kind: TagString, Str: r.getName()}
	case TagIntArray:
		n := r.getInt32()
		if r.err != nil || n < 0 {
			return Tree{Kind: TagIntArray}
		}
		arr := make([]int32, n)
		for i := range arr {
			arr[i] = r.getInt32()
		}
		return Tree{Kind: TagIntArray, IntArray: arr}
	case TagList:
		elemKind := r.getByte()
		n := r.getInt32()
		if r.err != nil || n < 0 {
			return Tree{Kind: TagList, ListKind: elemKind}
		}
		elems := make([]Tree, n)
		for i := range elems {
			elems[i] = r.readPayload(elemKind)
		}
		return Tree{Kind: TagList, ListKind: elemKind, List: elems}
	case TagCompound:
		var fields []Field
		for r.err == nil {
			childKind := r.getByte()
			if r.err != nil || childKind == TagEnd {
				break
			}
			name := r.getName()
			val := r.readPayload(childKind)
			fields = append(fields, Field{Name: name, Value: val})
		}
		return Tree{Kind: TagCompound, Compound: fields}
	default:
		r.err = fmt.Errorf("nbt: unknown tag type %d", kind)
		return Tree{}
	}
}

// Read parses a single named top-level tag, returning its name and value.
func Read(r io.Reader) (name string, t Tree, err error) {
	nr := &reader{r: r}
	kind := nr.getByte()
	if nr.err != nil {
		return "", Tree{}, nr.err
	}
	name = nr.getName()
	t = nr.readPayload(kind)
	return name, t, nr.err
}
