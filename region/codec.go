package region

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/OCharnyshevich/anvilregion/internal/compress"
	"github.com/OCharnyshevich/anvilregion/internal/nbt"
)

// encodeFrame serializes t via the NBT writer, compresses it with codec,
// and frames the result as length||compression||compressed, per spec.md
// §4.3.
func encodeFrame(t nbt.Tree, codec compress.Codec) ([]byte, error) {
	var raw bytes.Buffer
	if err := nbt.Write(&raw, "", t); err != nil {
		return nil, fmt.Errorf("region: serialize tag tree: %w", err)
	}

	var compressed bytes.Buffer
	cw, err := codec.NewWriter(&compressed)
	if err != nil {
		return nil, fmt.Errorf("region: create compressor: %w", err)
	}
	if _, err := cw.Write(raw.Bytes()); err != nil {
		return nil, fmt.Errorf("region: compress chunk: %w", err)
	}
	if err := cw.Close(); err != nil {
		return nil, fmt.Errorf("region: close compressor: %w", err)
	}

	payloadLen := 1 + compressed.Len()
	frame := make([]byte, 4+payloadLen)
	binary.BigEndian.PutUint32(frame[0:4], uint32(payloadLen))
	frame[4] = codec.Tag()
	copy(frame[5:], compressed.Bytes())
	return frame, nil
}

// decodeFrame reverses encodeFrame. data holds exactly sectorCount*4096
// bytes read from the chunk's reserved sectors; trailing bytes beyond the
// encoded length are padding and are ignored.
func decodeFrame(data []byte, sectorCount uint8) (nbt.Tree, error) {
	if len(data) < 5 {
		return nbt.Tree{}, fmt.Errorf("%w: frame shorter than header", ErrCorruptFrame)
	}

	maxLen := int(sectorCount)*sectorSize - 4
	length := binary.BigEndian.Uint32(data[0:4])
	if length == 0 || int(length) > maxLen {
		return nbt.Tree{}, fmt.Errorf("%w: length %d out of range (max %d)", ErrCorruptFrame, length, maxLen)
	}

	compression := data[4]
	codec, ok := compress.ByTag(compression)
	if !ok {
		return nbt.Tree{}, fmt.Errorf("%w: tag %d", ErrUnsupportedCompression, compression)
	}

	need := int(length) - 1
	if len(data) < 5+need {
		return nbt.Tree{}, fmt.Errorf("%w: short read (need %d, have %d)", ErrCorruptFrame, need, len(data)-5)
	}

	cr, err := codec.NewReader(bytes.NewReader(data[5 : 5+need]))
	if err != nil {
		return nbt.Tree{}, fmt.Errorf("%w: open decompressor: %v", ErrCorruptFrame, err)
	}
	defer cr.Close()

	_, tree, err := nbt.Read(cr)
	if err != nil {
		return nbt.Tree{}, fmt.Errorf("%w: decode tag tree: %v", ErrCorruptFrame, err)
	}
	return tree, nil
}
