package compress

import (
	"bytes"
	"io"
	"testing"
)

func TestZlibRoundTrip(t *testing.T) {
	testRoundTrip(t, Zlib{})
}

func TestGzipRoundTrip(t *testing.T) {
	testRoundTrip(t, Gzip{})
}

func testRoundTrip(t *testing.T, c Codec) {
	t.Helper()
	want := []byte("hello region file")

	var buf bytes.Buffer
	w, err := c.NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := w.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := c.NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestByTag(t *testing.T) {
	if c, ok := ByTag(2); !ok || c.Tag() != 2 {
		t.Fatalf("ByTag(2) = %v, %v", c, ok)
	}
	if c, ok := ByTag(1); !ok || c.Tag() != 1 {
		t.Fatalf("ByTag(1) = %v, %v", c, ok)
	}
	if _, ok := ByTag(99); ok {
		t.Fatal("ByTag(99) reported found")
	}
}
