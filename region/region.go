package region

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/anvilregion/internal/compress"
	"github.com/OCharnyshevich/anvilregion/internal/nbt"
)

// Region orchestrates the sector allocator, header tables, and chunk codec
// against a single open region file. It holds exclusive logical ownership
// of that file for its lifetime; see DESIGN.md and spec.md §5 for the
// single-writer discipline this depends on the caller upholding.
type Region struct {
	id   uuid.UUID
	path string
	file *os.File
	hdr  *header
	alloc *allocator
	log  *slog.Logger

	writeCodec compress.Codec
	onClose    func()
}

// openRegion opens an existing, already header-initialized region file
// and validates its header by reconstructing the sector allocator from
// it. A malformed header (overlapping or out-of-range location entries)
// fails with ErrCorruptHeader and no Region is returned, per spec.md §7.
func openRegion(path string, file *os.File, log *slog.Logger) (*Region, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("region: stat %s: %w", path, err)
	}
	if info.Size() < headerSectors*sectorSize {
		return nil, fmt.Errorf("%w: %s is shorter than the header (%d bytes)", ErrCorruptHeader, path, info.Size())
	}

	headerBuf := make([]byte, headerSectors*sectorSize)
	if _, err := io.ReadFull(io.NewSectionReader(file, 0, headerSectors*sectorSize), headerBuf); err != nil {
		return nil, fmt.Errorf("region: read header of %s: %w", path, err)
	}
	hdr := parseHeader(headerBuf[:sectorSize], headerBuf[sectorSize:headerSectors*sectorSize])

	totalSectors := uint32(info.Size() / sectorSize)
	alloc, err := newAllocatorFromHeader(hdr, totalSectors)
	if err != nil {
		return nil, err
	}

	return &Region{
		id:         uuid.New(),
		path:       path,
		file:       file,
		hdr:        hdr,
		alloc:      alloc,
		log:        log,
		writeCodec: compress.Zlib{},
	}, nil
}

// ReadChunk decodes the chunk at pos. It returns ErrChunkNotFound if no
// chunk has been written there.
func (r *Region) ReadChunk(pos ChunkPosition) (nbt.Tree, error) {
	slot := pos.slot()
	offset, count := r.hdr.location(slot)
	if count == 0 {
		return nbt.Tree{}, ErrChunkNotFound
	}

	buf := make([]byte, int(count)*sectorSize)
	if _, err := r.file.ReadAt(buf, int64(offset)*sectorSize); err != nil && !errors.Is(err, io.EOF) {
		return nbt.Tree{}, fmt.Errorf("region: read chunk (%d,%d) from %s: %w", pos.CX, pos.CZ, r.path, err)
	}

	tree, err := decodeFrame(buf, count)
	if err != nil {
		return nbt.Tree{}, err
	}
	return tree, nil
}

// WriteChunk encodes and stores t at pos, allocating or reusing sectors as
// needed and always rewriting both header sectors afterward. Payload is
// written before the header update. A frame that needs the same number of
// sectors as the old one overwrites the old sectors in place, and a newly
// reserved run may start inside the old chunk's released sectors, so a
// crash mid-write can leave the old header entry pointing at a partially
// written frame.
func (r *Region) WriteChunk(pos ChunkPosition, t nbt.Tree) error {
	frame, err := encodeFrame(t, r.writeCodec)
	if err != nil {
		return fmt.Errorf("region: encode chunk (%d,%d): %w", pos.CX, pos.CZ, err)
	}

	needed := (len(frame) + sectorSize - 1) / sectorSize
	if needed == 0 {
		needed = 1
	}
	if needed > 255 {
		return ErrRegionTooLarge
	}

	slot := pos.slot()
	oldOffset, oldCount := r.hdr.location(slot)

	offset := oldOffset
	if oldCount == 0 || int(oldCount) != needed {
		if oldCount > 0 {
			r.alloc.release(oldOffset, oldCount)
		}
		offset, err = r.alloc.reserve(needed)
		if err != nil {
			return err
		}
	}

	padded := make([]byte, needed*sectorSize)
	copy(padded, frame)
	if _, err := r.file.WriteAt(padded, int64(offset)*sectorSize); err != nil {
		return fmt.Errorf("region: write chunk (%d,%d) to %s: %w", pos.CX, pos.CZ, r.path, err)
	}

	if err := r.file.Truncate(int64(r.alloc.sectorCount()) * sectorSize); err != nil {
		return fmt.Errorf("region: grow %s: %w", r.path, err)
	}

	r.hdr.setLocation(slot, offset, uint8(needed))
	r.hdr.setTimestamp(slot, uint32(time.Now().Unix()))
	return r.flushHeader()
}

// DeleteChunk removes the chunk at pos, releasing its sectors. A second
// call for the same, now-absent slot returns ErrChunkNotFound; spec.md §9
// leaves this choice open, and tests of this package rely on that
// specific (but documented) behavior.
func (r *Region) DeleteChunk(pos ChunkPosition) error {
	slot := pos.slot()
	offset, count := r.hdr.location(slot)
	if count == 0 {
		return ErrChunkNotFound
	}

	r.alloc.release(offset, count)
	r.hdr.setLocation(slot, 0, 0)
	r.hdr.setTimestamp(slot, 0)
	return r.flushHeader()
}

// ForEachChunk decodes every occupied slot in the region and calls fn with
// its position and tree, stopping at the first error fn returns.
func (r *Region) ForEachChunk(fn func(ChunkPosition, nbt.Tree) error) error {
	for slot := 0; slot < slotCount; slot++ {
		_, count := r.hdr.location(slot)
		if count == 0 {
			continue
		}
		pos := ChunkPosition{CX: uint8(slot % 32), CZ: uint8(slot / 32)}
		tree, err := r.ReadChunk(pos)
		if err != nil {
			return err
		}
		if err := fn(pos, tree); err != nil {
			return err
		}
	}
	return nil
}

// SlotInfo describes one occupied header entry, for inspection tools that
// want the raw layout without decoding the chunk payload.
type SlotInfo struct {
	Pos       ChunkPosition
	Offset    uint32
	Count     uint8
	Timestamp uint32
}

// Slots returns the layout of every occupied slot, in ascending slot
// order.
func (r *Region) Slots() []SlotInfo {
	var slots []SlotInfo
	for slot := 0; slot < slotCount; slot++ {
		offset, count := r.hdr.location(slot)
		if count == 0 {
			continue
		}
		slots = append(slots, SlotInfo{
			Pos:       ChunkPosition{CX: uint8(slot % 32), CZ: uint8(slot / 32)},
			Offset:    offset,
			Count:     count,
			Timestamp: r.hdr.timestamp(slot),
		})
	}
	return slots
}

func (r *Region) flushHeader() error {
	if _, err := r.file.WriteAt(r.hdr.serializeLocations(), 0); err != nil {
		return fmt.Errorf("region: write locations to %s: %w", r.path, err)
	}
	if _, err := r.file.WriteAt(r.hdr.serializeTimestamps(), sectorSize); err != nil {
		return fmt.Errorf("region: write timestamps to %s: %w", r.path, err)
	}
	if err := r.file.Sync(); err != nil {
		return fmt.Errorf("region: sync %s: %w", r.path, err)
	}
	return nil
}

// Close releases the backing file. All header changes are already
// flushed synchronously by WriteChunk/DeleteChunk, so Close has nothing
// left to persist.
func (r *Region) Close() error {
	if r.onClose != nil {
		r.onClose()
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("region: close %s: %w", r.path, err)
	}
	return nil
}

// Path returns the backing file path, useful for logging.
func (r *Region) Path() string { return r.path }

// HandleID returns the opaque identity stamped on this handle at Open
// time, used to correlate single-writer-discipline warnings (see
// FolderProvider and spec.md §5).
func (r *Region) HandleID() uuid.UUID { return r.id }
