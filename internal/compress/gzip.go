package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// Gzip is compression tag 1. Legacy region files may use it; readers must
// support it even though writers default to Zlib.
type Gzip struct{}

func (Gzip) Tag() byte { return 1 }

func (Gzip) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (Gzip) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
