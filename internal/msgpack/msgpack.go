package msgpack

import (
	"errors"
	"fmt"
	"math"

	"github.com/tinylib/msgp/msgp"

	"github.com/hupe1980/flatvec/internal/buffer"
	"github.com/hupe1980/flatvec/internal/conv"
)

const (
	tagFloat32 byte = 0xca
	tagFloat64 byte = 0xcb
)

var (
	// ErrMalformed is matched by every DecodeError.
	ErrMalformed = errors.New("could not deserialize the buffer as a vector")
	// ErrTooLarge is returned when the encoded form would exceed math.MaxInt32 bytes.
	ErrTooLarge = errors.New("could not serialize the vector: encoded size exceeds math.MaxInt32 bytes")
)

// DecodeError describes why and where decoding failed.
type DecodeError struct {
	Offset int
	Reason string
	cause  error
}

func (e *DecodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s at offset %d: %v", ErrMalformed, e.Reason, e.Offset, e.cause)
	}
	return fmt.Sprintf("%s: %s at offset %d", ErrMalformed, e.Reason, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.cause }

// Is makes errors.Is(err, ErrMalformed) hold for every DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrMalformed }

func malformed(offset int, cause error, format string, args ...any) error {
	return &DecodeError{Offset: offset, Reason: fmt.Sprintf(format, args...), cause: cause}
}

func tagFor(p buffer.Precision) byte {
	if p == buffer.Single {
		return tagFloat32
	}
	return tagFloat64
}

func headerSize(n int) int {
	switch {
	case n <= 15:
		return 1
	case n <= math.MaxUint16:
		return 3
	default:
		return msgp.ArrayHeaderSize
	}
}

// EncodedSize returns the exact number of bytes Append writes for a vector
// of the given shape.
func EncodedSize(dimensions int, p buffer.Precision) (int, error) {
	body, err := conv.ByteLength(dimensions, 1+p.Size())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}
	n, err := conv.AddLength(headerSize(dimensions), body)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTooLarge, err)
	}
	return n, nil
}

// Encode returns the MessagePack form of b.
func Encode(b *buffer.Buffer) ([]byte, error) {
	return Append(nil, b)
}

// Append appends the MessagePack form of b to dst.
func Append(dst []byte, b *buffer.Buffer) ([]byte, error) {
	n, err := EncodedSize(b.Dimensions(), b.Precision())
	if err != nil {
		return dst, err
	}
	dims, err := conv.IntToUint32(b.Dimensions())
	if err != nil {
		return dst, err
	}

	dst = msgp.Require(dst, n)
	dst = msgp.AppendArrayHeader(dst, dims)

	if b.Precision() == buffer.Single {
		for i := range b.Dimensions() {
			dst = msgp.AppendFloat32(dst, b.Float32At(i))
		}
		return dst, nil
	}
	for i := range b.Dimensions() {
		dst = msgp.AppendFloat64(dst, b.Float64At(i))
	}
	return dst, nil
}

// Decode parses a complete vector from data. Bytes after the last element
// are ignored.
func Decode(data []byte) (*buffer.Buffer, error) {
	b, _, err := Read(data)
	return b, err
}

// Read parses one vector from the front of data and returns the remaining
// bytes. On error no buffer is returned.
func Read(data []byte) (*buffer.Buffer, []byte, error) {
	if len(data) < 1 {
		return nil, data, malformed(0, nil, "empty input")
	}

	sz, rest, err := msgp.ReadArrayHeaderBytes(data)
	if err != nil {
		return nil, data, malformed(0, err, "invalid array header 0x%02x", data[0])
	}
	offset := len(data) - len(rest)

	if sz == 0 {
		return nil, data, malformed(0, nil, "empty array")
	}
	if sz > math.MaxInt32 {
		return nil, data, malformed(0, nil, "array length %d exceeds math.MaxInt32", sz)
	}
	n, err := conv.Uint32ToInt(sz)
	if err != nil {
		return nil, data, malformed(0, err, "array length %d", sz)
	}

	if len(rest) < 1 {
		return nil, data, malformed(offset, msgp.ErrShortBytes, "missing first element")
	}

	var p buffer.Precision
	switch rest[0] {
	case tagFloat32:
		p = buffer.Single
	case tagFloat64:
		p = buffer.Double
	default:
		return nil, data, malformed(offset, nil, "unsupported element type %s", msgp.NextType(rest))
	}

	need, err := conv.ByteLength(n, 1+p.Size())
	if err != nil {
		return nil, data, malformed(offset, err, "%d elements", n)
	}
	if len(rest) < need {
		return nil, data, malformed(offset, msgp.ErrShortBytes, "need %d bytes for %d elements, have %d", need, n, len(rest))
	}

	b, err := buffer.New(n, p)
	if err != nil {
		return nil, data, malformed(offset, err, "%d elements", n)
	}

	tag := tagFor(p)
	for i := range n {
		pos := len(data) - len(rest)
		if rest[0] != tag {
			return nil, data, malformed(pos, nil, "element %d has tag 0x%02x, want 0x%02x", i, rest[0], tag)
		}
		if p == buffer.Single {
			var f float32
			if f, rest, err = msgp.ReadFloat32Bytes(rest); err != nil {
				return nil, data, malformed(pos, err, "element %d", i)
			}
			b.PutFloat32(i, f)
			continue
		}
		var f float64
		if f, rest, err = msgp.ReadFloat64Bytes(rest); err != nil {
			return nil, data, malformed(pos, err, "element %d", i)
		}
		b.PutFloat64(i, f)
	}

	return b, rest, nil
}
