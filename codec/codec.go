// Package codec centralizes how tree documents are encoded and compressed.
//
// A document is a nested {role, children} value. Codecs turn it into bytes
// and back; Compression wraps the byte stream. Both are selected by name so
// stored documents stay self-describing (for example "page.json.zst").
package codec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCodec is returned by ByName for names no built-in codec carries.
var ErrUnknownCodec = errors.New("codec: unknown codec")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// builtin lists the document codecs in the order Names reports them.
var builtin = []Codec{JSON{}, GoJSON{}}

// Names returns the stable names of the built-in codecs.
func Names() []string {
	names := make([]string, len(builtin))
	for i, c := range builtin {
		names[i] = c.Name()
	}
	return names
}

// ByName returns a built-in codec by its stable name. Names are matched
// case-insensitively; the empty name selects Default.
func ByName(name string) (Codec, error) {
	if name == "" {
		return Default, nil
	}
	for _, c := range builtin {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownCodec, name, strings.Join(Names(), ", "))
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
