package buffer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/flatvec/internal/conv"
	"github.com/hupe1980/flatvec/internal/mem"
)

var (
	// ErrInvalidDimensions is returned when dimensions < 1.
	ErrInvalidDimensions = errors.New("dimensions must be >= 1")
	// ErrInvalidPrecision is returned for element sizes other than 4 and 8.
	ErrInvalidPrecision = errors.New("precision must be 4 or 8 bytes")
	// ErrIndexOutOfRange is returned by Get and Set for indices outside [0, MaxIndex].
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Buffer is an owned block of little-endian floating point elements.
type Buffer struct {
	data []byte
	dims int
	prec Precision
}

// New allocates a zero-filled buffer. dimensions*precision must not exceed
// math.MaxInt32 bytes.
func New(dimensions int, p Precision) (*Buffer, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPrecision, uint8(p))
	}
	if dimensions < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimensions, dimensions)
	}
	n, err := conv.ByteLength(dimensions, p.Size())
	if err != nil {
		return nil, err
	}
	return &Buffer{
		data: mem.AllocAligned(n),
		dims: dimensions,
		prec: p,
	}, nil
}

// Dimensions returns the number of elements.
func (b *Buffer) Dimensions() int { return b.dims }

// MaxIndex returns Dimensions()-1.
func (b *Buffer) MaxIndex() int { return b.dims - 1 }

// Precision returns the element precision.
func (b *Buffer) Precision() Precision { return b.prec }

// Bytes exposes the raw little-endian storage. Callers must not retain or
// resize it.
func (b *Buffer) Bytes() []byte { return b.data }

// SameShape reports whether o has the same dimensions and precision.
func (b *Buffer) SameShape(o *Buffer) bool {
	return b.dims == o.dims && b.prec == o.prec
}

func (b *Buffer) checkIndex(i int) error {
	if i < 0 || i >= b.dims {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, i, b.MaxIndex())
	}
	return nil
}

// Get returns the element at i.
func (b *Buffer) Get(i int) (float64, error) {
	if err := b.checkIndex(i); err != nil {
		return 0, err
	}
	return b.At(i), nil
}

// Set stores v at i, rounding to float32 for Single buffers. An invalid index
// leaves the buffer untouched.
func (b *Buffer) Set(i int, v float64) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.Put(i, v)
	return nil
}

// At returns the element at i without the range check of Get.
func (b *Buffer) At(i int) float64 {
	if b.prec == Single {
		return float64(b.Float32At(i))
	}
	return b.Float64At(i)
}

// Put stores v at i without the range check of Set.
func (b *Buffer) Put(i int, v float64) {
	if b.prec == Single {
		b.PutFloat32(i, float32(v))
		return
	}
	b.PutFloat64(i, v)
}

// Float32At reads element i of a Single buffer.
func (b *Buffer) Float32At(i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b.data[i*4:]))
}

// PutFloat32 writes element i of a Single buffer.
func (b *Buffer) PutFloat32(i int, v float32) {
	binary.LittleEndian.PutUint32(b.data[i*4:], math.Float32bits(v))
}

// Float64At reads element i of a Double buffer.
func (b *Buffer) Float64At(i int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b.data[i*8:]))
}

// PutFloat64 writes element i of a Double buffer.
func (b *Buffer) PutFloat64(i int, v float64) {
	binary.LittleEndian.PutUint64(b.data[i*8:], math.Float64bits(v))
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		data: mem.AllocAligned(len(b.data)),
		dims: b.dims,
		prec: b.prec,
	}
	copy(c.data, b.data)
	return c
}

// Like returns a zero-filled buffer with the same shape as b.
func Like(b *Buffer) *Buffer {
	return &Buffer{
		data: mem.AllocAligned(len(b.data)),
		dims: b.dims,
		prec: b.prec,
	}
}
