// Package compress adapts compression codecs to the decode(reader)->reader /
// encode(writer)->writer shape the chunk codec needs. It is a thin wrapper
// over github.com/klauspost/compress rather than the standard library's
// compress/zlib and compress/gzip, matching how this kind of stream codec
// is pulled in elsewhere in the corpus.
package compress

import "io"

// Codec adapts one compression scheme to the chunk frame format. Tag is the
// single byte recorded in the frame header.
type Codec interface {
	Tag() byte
	NewReader(r io.Reader) (io.ReadCloser, error)
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

var registry = map[byte]Codec{
	Zlib{}.Tag(): Zlib{},
	Gzip{}.Tag(): Gzip{},
}

// ByTag resolves the codec registered for a frame's compression tag.
func ByTag(tag byte) (Codec, bool) {
	c, ok := registry[tag]
	return c, ok
}
