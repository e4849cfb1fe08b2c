package region

import "errors"

// Sentinel errors returned by Region operations. Callers should compare
// with errors.Is, since I/O failures are wrapped around these with
// additional context via fmt.Errorf("...: %w", ...).
var (
	// ErrChunkNotFound is returned by ReadChunk and DeleteChunk when a
	// slot's header entry is absent.
	ErrChunkNotFound = errors.New("region: chunk not found")

	// ErrCorruptHeader is returned when opening a region whose location
	// table describes overlapping or out-of-range sector ranges.
	ErrCorruptHeader = errors.New("region: corrupt header")

	// ErrCorruptFrame is returned when a chunk's length prefix, payload,
	// or decompression/decoding fails.
	ErrCorruptFrame = errors.New("region: corrupt chunk frame")

	// ErrUnsupportedCompression is returned when a frame's compression
	// tag is not one this package knows how to decode.
	ErrUnsupportedCompression = errors.New("region: unsupported compression")

	// ErrRegionTooLarge is returned when a chunk's encoded frame would
	// need more than 255 sectors, which the 8-bit count field cannot
	// represent.
	ErrRegionTooLarge = errors.New("region: chunk too large for region file format")
)
