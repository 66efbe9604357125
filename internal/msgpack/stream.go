package msgpack

import (
	"math"

	"github.com/tinylib/msgp/msgp"

	"github.com/hupe1980/flatvec/internal/buffer"
	"github.com/hupe1980/flatvec/internal/conv"
)

// readChunk caps how many elements are buffered before the declared length
// is confirmed by the stream itself.
const readChunk = 4096

// Write streams the MessagePack form of b to w.
func Write(w *msgp.Writer, b *buffer.Buffer) error {
	if _, err := EncodedSize(b.Dimensions(), b.Precision()); err != nil {
		return err
	}
	dims, err := conv.IntToUint32(b.Dimensions())
	if err != nil {
		return err
	}
	if err := w.WriteArrayHeader(dims); err != nil {
		return err
	}

	for i := range b.Dimensions() {
		if b.Precision() == buffer.Single {
			err = w.WriteFloat32(b.Float32At(i))
		} else {
			err = w.WriteFloat64(b.Float64At(i))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadFrom decodes one vector from r with the same validation as Read. The
// input length is unknown up front, so elements are collected before the
// buffer is allocated.
func ReadFrom(r *msgp.Reader) (*buffer.Buffer, error) {
	sz, err := r.ReadArrayHeader()
	if err != nil {
		return nil, malformed(0, err, "invalid array header")
	}
	if sz == 0 {
		return nil, malformed(0, nil, "empty array")
	}
	if sz > math.MaxInt32 {
		return nil, malformed(0, nil, "array length %d exceeds math.MaxInt32", sz)
	}
	n, err := conv.Uint32ToInt(sz)
	if err != nil {
		return nil, malformed(0, err, "array length %d", sz)
	}
	offset := headerSize(n)

	first, err := r.NextType()
	if err != nil {
		return nil, malformed(offset, err, "missing first element")
	}

	var p buffer.Precision
	switch first {
	case msgp.Float32Type:
		p = buffer.Single
	case msgp.Float64Type:
		p = buffer.Double
	default:
		return nil, malformed(offset, nil, "unsupported element type %s", first)
	}
	step := 1 + p.Size()

	values := make([]float64, 0, min(n, readChunk))
	for i := range n {
		pos := offset + i*step
		t, err := r.NextType()
		if err != nil {
			return nil, malformed(pos, err, "element %d", i)
		}
		if t != first {
			return nil, malformed(pos, nil, "element %d has type %s, want %s", i, t, first)
		}
		if p == buffer.Single {
			f, err := r.ReadFloat32()
			if err != nil {
				return nil, malformed(pos, err, "element %d", i)
			}
			values = append(values, float64(f))
			continue
		}
		f, err := r.ReadFloat64()
		if err != nil {
			return nil, malformed(pos, err, "element %d", i)
		}
		values = append(values, f)
	}

	b, err := buffer.New(n, p)
	if err != nil {
		return nil, malformed(offset, err, "%d elements", n)
	}
	for i, v := range values {
		b.Put(i, v)
	}
	return b, nil
}
