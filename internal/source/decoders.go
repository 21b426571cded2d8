package source

import (
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type zstdDecoder struct{}

func (zstdDecoder) CanDecode(filename string) bool { return hasSuffix(filename, ".zst", ".zstd") }

func (zstdDecoder) Decode(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}

type gzipDecoder struct{}

func (gzipDecoder) CanDecode(filename string) bool { return hasSuffix(filename, ".gz") }

func (gzipDecoder) Decode(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// snappyDecoder reads the framed snappy stream format.
type snappyDecoder struct{}

func (snappyDecoder) CanDecode(filename string) bool { return hasSuffix(filename, ".sz") }

func (snappyDecoder) Decode(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}
