package codec

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a stream compression wrapped around a document.
type Compression string

const (
	None Compression = ""
	Zstd Compression = "zstd"
	LZ4  Compression = "lz4"
)

// CompressionFor picks the compression from a document name's extension
// (".zst", ".zstd", ".lz4"). Any other extension means None.
func CompressionFor(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// ParseCompression resolves a configured compression name.
func ParseCompression(name string) (Compression, error) {
	switch c := Compression(strings.ToLower(name)); c {
	case None, Zstd, LZ4:
		return c, nil
	case "none":
		return None, nil
	default:
		return None, fmt.Errorf("codec: unknown compression %q", name)
	}
}

// NewReader wraps r so that reads return decompressed bytes.
func NewReader(c Compression, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("codec: zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("codec: unknown compression %q", string(c))
	}
}

// NewWriter wraps w so that written bytes are compressed. Close flushes the
// compressor but does not close w.
func NewWriter(c Compression, w io.Writer) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("codec: zstd writer: %w", err)
		}
		return enc, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("codec: unknown compression %q", string(c))
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
