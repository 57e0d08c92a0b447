package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Role     int   `json:"role"`
	Children []doc `json:"children"`
}

func sampleDoc(depth, fanout int) doc {
	d := doc{Role: depth}
	if depth == 0 {
		return d
	}
	for range fanout {
		d.Children = append(d.Children, sampleDoc(depth-1, fanout))
	}
	return d
}

func TestCodecs_AgreeOnDocuments(t *testing.T) {
	in := sampleDoc(4, 3)

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal(in)
			require.NoError(t, err)

			var out doc
			require.NoError(t, c.Unmarshal(b, &out))
			assert.Equal(t, in, out)
		})
	}

	a := MustMarshal(JSON{}, in)
	b := MustMarshal(GoJSON{}, in)
	assert.JSONEq(t, string(a), string(b))
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"json", "go-json"}, Names())

	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	c, err := ByName("GO-JSON")
	require.NoError(t, err)
	assert.Equal(t, "go-json", c.Name())

	c, err = ByName("")
	require.NoError(t, err)
	assert.Equal(t, Default, c)

	_, err = ByName("gob")
	require.ErrorIs(t, err, ErrUnknownCodec)
	assert.Contains(t, err.Error(), `"gob"`)
	assert.Contains(t, err.Error(), "json, go-json")

	assert.Equal(t, "go-json", Default.Name())
}

func TestMustMarshal_Panics(t *testing.T) {
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}

func TestCompressionFor(t *testing.T) {
	assert.Equal(t, Zstd, CompressionFor("page.json.zst"))
	assert.Equal(t, Zstd, CompressionFor("page.JSON.ZSTD"))
	assert.Equal(t, LZ4, CompressionFor("dumps/page.json.lz4"))
	assert.Equal(t, None, CompressionFor("page.json"))
	assert.Equal(t, None, CompressionFor("page"))
}

func TestParseCompression(t *testing.T) {
	for in, want := range map[string]Compression{"": None, "none": None, "zstd": Zstd, "LZ4": LZ4} {
		got, err := ParseCompression(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseCompression("brotli")
	assert.Error(t, err)
}

func TestCompression_RoundTrip(t *testing.T) {
	payload := MustMarshal(Default, sampleDoc(5, 3))

	for _, c := range []Compression{None, Zstd, LZ4} {
		t.Run(string(c)+"-stream", func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(c, &buf)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if c != None {
				assert.Less(t, buf.Len(), len(payload))
			}

			r, err := NewReader(c, &buf)
			require.NoError(t, err)
			defer r.Close()
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestCompression_Unknown(t *testing.T) {
	_, err := NewReader("brotli", bytes.NewReader(nil))
	assert.Error(t, err)
	_, err = NewWriter("brotli", io.Discard)
	assert.Error(t, err)
}

func BenchmarkCodecUnmarshal(b *testing.B) {
	data := MustMarshal(JSON{}, sampleDoc(6, 4))
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				var out doc
				if err := c.Unmarshal(data, &out); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
