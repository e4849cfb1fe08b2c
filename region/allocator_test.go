package region

import (
	"errors"
	"testing"
)

func TestNewAllocatorReservesHeaderSectors(t *testing.T) {
	a := newAllocator(10)
	if !a.test(0) || !a.test(1) {
		t.Fatal("header sectors 0 and 1 must start occupied")
	}
	for i := uint32(2); i < 10; i++ {
		if a.test(i) {
			t.Fatalf("sector %d should start free", i)
		}
	}
}

func TestReserveFirstFit(t *testing.T) {
	a := newAllocator(2)

	off1, err := a.reserve(1)
	if err != nil || off1 != 2 {
		t.Fatalf("reserve(1) = (%d, %v), want (2, nil)", off1, err)
	}

	off2, err := a.reserve(3)
	if err != nil || off2 != 3 {
		t.Fatalf("reserve(3) = (%d, %v), want (3, nil)", off2, err)
	}

	// Release the first single-sector run and reserve a 1-sector chunk
	// again: it must reuse the freed low sector, not append at the end.
	a.release(off1, 1)
	off3, err := a.reserve(1)
	if err != nil || off3 != off1 {
		t.Fatalf("reserve(1) after release = (%d, %v), want (%d, nil)", off3, err, off1)
	}
}

func TestReserveGrowsFileWhenNoRunFits(t *testing.T) {
	a := newAllocator(2)
	off, err := a.reserve(5)
	if err != nil {
		t.Fatalf("reserve(5): %v", err)
	}
	if off != 2 {
		t.Fatalf("reserve(5) = %d, want 2", off)
	}
	if a.sectorCount() != 7 {
		t.Fatalf("sectorCount() = %d, want 7", a.sectorCount())
	}
}

func TestReserveTooLarge(t *testing.T) {
	a := newAllocator(2)
	if _, err := a.reserve(256); !errors.Is(err, ErrRegionTooLarge) {
		t.Fatalf("reserve(256) err = %v, want ErrRegionTooLarge", err)
	}
}

func TestReleaseZeroCountIsNoop(t *testing.T) {
	a := newAllocator(4)
	before := append([]uint64(nil), a.words...)
	a.release(2, 0)
	for i, w := range a.words {
		if w != before[i] {
			t.Fatalf("release(_, 0) mutated bitmap: word %d = %d, want %d", i, w, before[i])
		}
	}
}

func TestNewAllocatorFromHeaderDetectsOverlap(t *testing.T) {
	h := &header{}
	h.setLocation(0, 2, 2) // sectors [2,4)
	h.setLocation(1, 3, 2) // sectors [3,5) overlaps slot 0
	if _, err := newAllocatorFromHeader(h, 10); !errors.Is(err, ErrCorruptHeader) {
		t.Fatalf("err = %v, want ErrCorruptHeader", err)
	}
}

func TestNewAllocatorFromHeaderDetectsOutOfRange(t *testing.T) {
	h := &header{}
	h.setLocation(0, 2, 20) // [2,22) but file only has 10 sectors
	if _, err := newAllocatorFromHeader(h, 10); !errors.Is(err, ErrCorruptHeader) {
		t.Fatalf("err = %v, want ErrCorruptHeader", err)
	}
}

func TestNewAllocatorFromHeaderDetectsHeaderOverlap(t *testing.T) {
	h := &header{}
	h.setLocation(0, 1, 1) // offset 1 is a header sector
	if _, err := newAllocatorFromHeader(h, 10); !errors.Is(err, ErrCorruptHeader) {
		t.Fatalf("err = %v, want ErrCorruptHeader", err)
	}
}

func TestNewAllocatorFromHeaderAcceptsValidLayout(t *testing.T) {
	h := &header{}
	h.setLocation(0, 2, 1)
	h.setLocation(1, 3, 4)
	a, err := newAllocatorFromHeader(h, 10)
	if err != nil {
		t.Fatalf("newAllocatorFromHeader: %v", err)
	}
	for i := uint32(2); i < 7; i++ {
		if !a.test(i) {
			t.Errorf("sector %d should be occupied", i)
		}
	}
	for i := uint32(7); i < 10; i++ {
		if a.test(i) {
			t.Errorf("sector %d should be free", i)
		}
	}
}
