// Package source opens table inputs, decompressing them by file suffix.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aidan2b/data-describer/internal/dataset"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Decoder wraps a raw stream for one file format.
type Decoder interface {
	CanDecode(filename string) bool
	Decode(r io.Reader) (io.ReadCloser, error)
}

var registry []Decoder

// Register adds a decoder implementation to the registry.
func Register(d Decoder) {
	registry = append(registry, d)
}

// Open returns a reader over the decoded table at path. Failures wrap
// dataset.ErrInputUnavailable.
func Open(path string) (io.ReadCloser, error) {
	var raw io.ReadCloser
	if path == Stdin {
		raw = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, &dataset.InputError{Source: path, Err: fmt.Errorf("open: %w", err)}
		}
		raw = f
	}
	for _, d := range registry {
		if !d.CanDecode(path) {
			continue
		}
		rc, err := d.Decode(raw)
		if err != nil {
			_ = raw.Close()
			return nil, &dataset.InputError{Source: path, Err: fmt.Errorf("decode: %w", err)}
		}
		return &stacked{ReadCloser: rc, under: raw}, nil
	}
	return raw, nil
}

// Strip removes a recognized compression suffix from name.
func Strip(name string) string {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return name[:len(name)-len(s)]
		}
	}
	return name
}

var suffixes = []string{".zst", ".zstd", ".gz", ".sz"}

// stacked closes the decoder and then the underlying stream.
type stacked struct {
	io.ReadCloser
	under io.Closer
}

func (s *stacked) Close() error {
	return errors.Join(s.ReadCloser.Close(), s.under.Close())
}

func hasSuffix(name string, exts ...string) bool {
	lower := strings.ToLower(name)
	for _, e := range exts {
		if strings.HasSuffix(lower, e) {
			return true
		}
	}
	return false
}

func init() {
	Register(zstdDecoder{})
	Register(gzipDecoder{})
	Register(snappyDecoder{})
}
