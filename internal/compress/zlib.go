package compress

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

// Zlib is compression tag 2, the recommended default for writes.
type Zlib struct{}

func (Zlib) Tag() byte { return 2 }

func (Zlib) NewReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

func (Zlib) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriter(w), nil
}
