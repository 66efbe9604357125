package msgpack

import (
	"bytes"
	"testing"

	"github.com/tinylib/msgp/msgp"

	"github.com/hupe1980/flatvec/internal/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamRoundTrip(t *testing.T) {
	for _, p := range []buffer.Precision{buffer.Single, buffer.Double} {
		t.Run(p.String(), func(t *testing.T) {
			src := fromValues(t, p, 0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9)

			var buf bytes.Buffer
			w := msgp.NewWriter(&buf)
			require.NoError(t, Write(w, src))
			require.NoError(t, w.Flush())

			want, err := Encode(src)
			require.NoError(t, err)
			assert.Equal(t, want, buf.Bytes(), "stream and byte encodings match")

			got, err := ReadFrom(msgp.NewReader(&buf))
			require.NoError(t, err)
			assert.Equal(t, p, got.Precision())
			assert.Equal(t, src.Bytes(), got.Bytes())
		})
	}
}

func TestReadFromErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"Empty", nil},
		{"NotAnArray", []byte{0xc0}},
		{"EmptyArray", []byte{0x90}},
		{"IntElement", []byte{0x91, 0x01}},
		{"MissingElement", []byte{0x92, 0xca, 0, 0, 0, 0}},
		{"Truncated", []byte{0x91, 0xcb, 0, 0}},
		{"MixedTags", []byte{0x92, 0xca, 0, 0, 0, 0, 0xcb, 0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ReadFrom(msgp.NewReader(bytes.NewReader(tt.data)))
			require.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, b)
		})
	}

	t.Run("MixedTagsOffset", func(t *testing.T) {
		_, err := ReadFrom(msgp.NewReader(bytes.NewReader([]byte{0x92, 0xca, 0, 0, 0, 0, 0xcb, 0, 0, 0, 0, 0, 0, 0, 0})))
		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, 6, de.Offset)
	})
}
