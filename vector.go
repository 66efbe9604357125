package flatvec

import (
	"fmt"
	"math"

	"github.com/hupe1980/flatvec/engine"
	"github.com/hupe1980/flatvec/internal/buffer"
)

// Vector is a fixed-length vector of float32 or float64 elements.
//
// Shape is immutable; elements change in place through Set, Fill and
// Indexer.SetAt. Binary operations always return a new Vector.
//
// The zero value is only usable as a target of UnmarshalBinary,
// UnmarshalMsg or DecodeMsg.
type Vector struct {
	buf        *buffer.Buffer
	eng        *engine.Engine
	noIndexing bool
}

func (o options) vector(buf *buffer.Buffer) *Vector {
	return &Vector{
		buf:        buf,
		eng:        o.engine,
		noIndexing: o.noIndexing,
	}
}

func (o options) alloc(dimensions int, p Precision) (*buffer.Buffer, error) {
	buf, err := o.engine.Alloc(dimensions, p)
	if err != nil {
		return nil, translateAllocError(err, dimensions, p)
	}
	return buf, nil
}

// derive wraps a computed buffer with the settings of v.
func (v *Vector) derive(buf *buffer.Buffer) *Vector {
	return &Vector{
		buf:        buf,
		eng:        v.eng,
		noIndexing: v.noIndexing,
	}
}

// New returns a zero-filled vector.
func New(dimensions int, optFns ...Option) (*Vector, error) {
	opts := newOptions(optFns)

	buf, err := opts.alloc(dimensions, opts.precision)
	if err != nil {
		return nil, err
	}
	return opts.vector(buf), nil
}

// Ones returns a vector with every element set to 1.
func Ones(dimensions int, optFns ...Option) (*Vector, error) {
	v, err := New(dimensions, optFns...)
	if err != nil {
		return nil, err
	}
	v.Fill(1)
	return v, nil
}

// FromValues returns a vector holding values. Every value must be finite;
// the first NaN or infinity fails with *ErrInvalidElement before anything is
// allocated.
func FromValues(values []float64, optFns ...Option) (*Vector, error) {
	opts := newOptions(optFns)

	for i, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &ErrInvalidElement{Index: i, Value: x}
		}
	}

	buf, err := opts.alloc(len(values), opts.precision)
	if err != nil {
		return nil, err
	}
	for i, x := range values {
		buf.Put(i, x)
	}
	return opts.vector(buf), nil
}

// FromFloat32s returns a Single precision vector holding a copy of values.
func FromFloat32s(values []float32, optFns ...Option) (*Vector, error) {
	opts := newOptions(optFns)

	buf, err := opts.alloc(len(values), Single)
	if err != nil {
		return nil, err
	}
	for i, x := range values {
		buf.PutFloat32(i, x)
	}
	return opts.vector(buf), nil
}

// FromFloat64s returns a Double precision vector holding a copy of values.
func FromFloat64s(values []float64, optFns ...Option) (*Vector, error) {
	opts := newOptions(optFns)

	buf, err := opts.alloc(len(values), Double)
	if err != nil {
		return nil, err
	}
	for i, x := range values {
		buf.PutFloat64(i, x)
	}
	return opts.vector(buf), nil
}

// FromBytes decodes a vector serialized by MarshalBinary. Dimensions and
// precision come from data; bytes after the last element are ignored.
func FromBytes(data []byte, optFns ...Option) (*Vector, error) {
	opts := newOptions(optFns)

	buf, _, err := opts.engine.Decode(data)
	if err != nil {
		return nil, translateError(err)
	}
	return opts.vector(buf), nil
}

// Clone returns a deep copy bound to the same engine.
func (v *Vector) Clone() *Vector {
	return v.derive(v.buf.Clone())
}

// Dimensions returns the number of elements.
func (v *Vector) Dimensions() int { return v.buf.Dimensions() }

// MaxIndex returns Dimensions() - 1.
func (v *Vector) MaxIndex() int { return v.buf.MaxIndex() }

// Precision returns the element precision.
func (v *Vector) Precision() Precision { return v.buf.Precision() }

// Is64Bit reports whether elements are float64.
func (v *Vector) Is64Bit() bool { return v.buf.Precision().Is64Bit() }

// ElementByteSize returns 4 or 8.
func (v *Vector) ElementByteSize() int { return v.buf.Precision().Size() }

// ArrayIndexing reports whether Index is available.
func (v *Vector) ArrayIndexing() bool { return !v.noIndexing }

// Engine returns the engine the vector is bound to.
func (v *Vector) Engine() *engine.Engine { return v.eng }

// Get returns the element at i. ok is false when i is outside
// [0, MaxIndex()].
func (v *Vector) Get(i int) (x float64, ok bool) {
	x, err := v.buf.Get(i)
	if err != nil {
		return 0, false
	}
	return x, true
}

// Set stores x at i, rounded to float32 for Single precision. It returns
// false and leaves the vector unchanged when i is outside [0, MaxIndex()].
func (v *Vector) Set(i int, x float64) bool {
	return v.buf.Set(i, x) == nil
}

// Fill stores x in every element.
func (v *Vector) Fill(x float64) {
	v.eng.Fill(v.buf, x)
}

// Float64s returns a copy of the elements.
func (v *Vector) Float64s() []float64 {
	out := make([]float64, v.buf.Dimensions())
	for i := range out {
		out[i] = v.buf.At(i)
	}
	return out
}

// Float32s returns a copy of the elements rounded to float32.
func (v *Vector) Float32s() []float32 {
	out := make([]float32, v.buf.Dimensions())
	for i := range out {
		out[i] = float32(v.buf.At(i))
	}
	return out
}

// Equal reports whether o has the same precision, dimensions and element
// values as v. Elements compare with ==, so a NaN element is never equal.
func (v *Vector) Equal(o *Vector) bool {
	if v == o {
		return v == nil || v.equalElements(o)
	}
	if v == nil || o == nil || !v.buf.SameShape(o.buf) {
		return false
	}
	return v.equalElements(o)
}

func (v *Vector) equalElements(o *Vector) bool {
	for i := range v.buf.Dimensions() {
		if v.buf.At(i) != o.buf.At(i) {
			return false
		}
	}
	return true
}

func (v *Vector) String() string {
	if v.buf.Precision() == Single {
		return fmt.Sprintf("%s%v", v.buf.Precision(), v.Float32s())
	}
	return fmt.Sprintf("%s%v", v.buf.Precision(), v.Float64s())
}
