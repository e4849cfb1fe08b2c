package region

import "encoding/binary"

const (
	sectorSize    = 4096
	headerSectors = 2
	slotCount     = 1024
)

// header is the in-memory mirror of a region file's two header sectors:
// the location table and the timestamp table. Each is 1024 packed 32-bit
// big-endian entries, serialized on demand rather than dirty-tracked —
// correct but not the most efficient possible implementation.
type header struct {
	locations  [slotCount]uint32 // (offset<<8)|count, packed
	timestamps [slotCount]uint32
}

// location returns the sector offset and count recorded for slot. A count
// of zero means absent, and offset is always 0 in that case.
func (h *header) location(slot int) (offset uint32, count uint8) {
	v := h.locations[slot]
	if uint8(v) == 0 {
		return 0, 0
	}
	return v >> 8, uint8(v)
}

// setLocation records offset and count for slot. count == 0 forces
// offset to 0, so absent slots are always (0, 0).
func (h *header) setLocation(slot int, offset uint32, count uint8) {
	if count == 0 {
		offset = 0
	}
	h.locations[slot] = (offset << 8) | uint32(count)
}

func (h *header) timestamp(slot int) uint32 {
	return h.timestamps[slot]
}

func (h *header) setTimestamp(slot int, ts uint32) {
	h.timestamps[slot] = ts
}

// serializeLocations renders the location table as its 4096-byte on-disk
// form.
func (h *header) serializeLocations() []byte {
	buf := make([]byte, sectorSize)
	for i, v := range h.locations {
		binary.BigEndian.PutUint32(buf[i*4:i*4+4], v)
	}
	return buf
}

// serializeTimestamps renders the timestamp table as its 4096-byte on-disk
// form.
func (h *header) serializeTimestamps() []byte {
	buf := make([]byte, sectorSize)
	for i, v := range h.timestamps {
		binary.BigEndian.PutUint32(buf[i*4:i*4+4], v)
	}
	return buf
}

// parseHeader decodes the two 4096-byte header sectors read from a region
// file. Both slices must hold at least a full sector; shorter slices cause
// a panic. It does not itself validate offset/count ranges (that is the
// allocator's job, via newAllocatorFromHeader).
func parseHeader(locBytes, tsBytes []byte) *header {
	h := &header{}
	for i := 0; i < slotCount; i++ {
		h.locations[i] = binary.BigEndian.Uint32(locBytes[i*4 : i*4+4])
		h.timestamps[i] = binary.BigEndian.Uint32(tsBytes[i*4 : i*4+4])
	}
	return h
}
