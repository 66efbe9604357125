package engine

import (
	"time"

	"github.com/tinylib/msgp/msgp"

	"github.com/hupe1980/flatvec/internal/buffer"
	"github.com/hupe1980/flatvec/internal/kernel"
	"github.com/hupe1980/flatvec/internal/msgpack"
)

// The methods below are the entry points used by package flatvec. They take
// internal buffer types and are not usable outside this module. Callers
// validate operand shapes before calling a binary entry point.

func (e *Engine) start() time.Time {
	if e.metrics == nil {
		return time.Time{}
	}
	return time.Now()
}

func (e *Engine) track(op kernel.Op, dimensions int, start time.Time, err error) {
	if e.metrics == nil {
		return
	}
	e.metrics.RecordOp(op.String(), dimensions, time.Since(start), err)
}

// Reject records an operation that failed validation before computing.
func (e *Engine) Reject(op kernel.Op, dimensions int, err error) {
	e.logger.LogRejected(op.String(), dimensions, err)
	if e.metrics != nil {
		e.metrics.RecordOp(op.String(), dimensions, 0, err)
	}
}

// Alloc creates a zero-filled buffer.
func (e *Engine) Alloc(dimensions int, p buffer.Precision) (*buffer.Buffer, error) {
	return buffer.New(dimensions, p)
}

// Binary computes a fresh buffer holding a op b.
func (e *Engine) Binary(op kernel.Op, a, b *buffer.Buffer) *buffer.Buffer {
	defer e.track(op, a.Dimensions(), e.start(), nil)

	dst := buffer.Like(a)
	e.forEach(op, a.Dimensions(), func(lo, hi int) {
		kernel.Binary(op, dst, a, b, lo, hi)
	})
	return dst
}

// Neg computes a fresh buffer holding -src.
func (e *Engine) Neg(src *buffer.Buffer) *buffer.Buffer {
	defer e.track(kernel.OpNeg, src.Dimensions(), e.start(), nil)

	dst := buffer.Like(src)
	e.forEach(kernel.OpNeg, src.Dimensions(), func(lo, hi int) {
		kernel.Neg(dst, src, lo, hi)
	})
	return dst
}

// Fill stores v in every slot of dst.
func (e *Engine) Fill(dst *buffer.Buffer, v float64) {
	defer e.track(kernel.OpFill, dst.Dimensions(), e.start(), nil)

	e.forEach(kernel.OpFill, dst.Dimensions(), func(lo, hi int) {
		kernel.Fill(dst, v, lo, hi)
	})
}

// Cmp returns the per-element three-way comparison of a and b.
func (e *Engine) Cmp(a, b *buffer.Buffer) []int8 {
	defer e.track(kernel.OpCmp, a.Dimensions(), e.start(), nil)

	out := make([]int8, a.Dimensions())
	e.forEach(kernel.OpCmp, a.Dimensions(), func(lo, hi int) {
		kernel.Cmp(out, a, b, lo, hi)
	})
	return out
}

// Sum returns the element sum.
func (e *Engine) Sum(b *buffer.Buffer) float64 {
	defer e.track(kernel.OpSum, b.Dimensions(), e.start(), nil)
	return kernel.Sum(b)
}

// ArithmeticMean returns the element mean.
func (e *Engine) ArithmeticMean(b *buffer.Buffer) float64 {
	defer e.track(kernel.OpMean, b.Dimensions(), e.start(), nil)
	return kernel.ArithmeticMean(b)
}

// GeometricMean returns the geometric mean of strictly positive elements.
func (e *Engine) GeometricMean(b *buffer.Buffer) (v float64, err error) {
	defer func(t time.Time) { e.track(kernel.OpGeometricMean, b.Dimensions(), t, err) }(e.start())
	return kernel.GeometricMean(b)
}

// Min returns the smallest element.
func (e *Engine) Min(b *buffer.Buffer) float64 {
	defer e.track(kernel.OpMin, b.Dimensions(), e.start(), nil)
	return kernel.Min(b)
}

// Max returns the largest element.
func (e *Engine) Max(b *buffer.Buffer) float64 {
	defer e.track(kernel.OpMax, b.Dimensions(), e.start(), nil)
	return kernel.Max(b)
}

// IndexOfMin returns the first index holding the smallest element.
func (e *Engine) IndexOfMin(b *buffer.Buffer) int {
	defer e.track(kernel.OpIndexOfMin, b.Dimensions(), e.start(), nil)
	return kernel.IndexOfMin(b)
}

// IndexOfMax returns the first index holding the largest element.
func (e *Engine) IndexOfMax(b *buffer.Buffer) int {
	defer e.track(kernel.OpIndexOfMax, b.Dimensions(), e.start(), nil)
	return kernel.IndexOfMax(b)
}

// InfinityNorm returns the largest absolute element.
func (e *Engine) InfinityNorm(b *buffer.Buffer) float64 {
	defer e.track(kernel.OpInfinityNorm, b.Dimensions(), e.start(), nil)
	return kernel.InfinityNorm(b)
}

// PNorm returns the p-norm for p in {1, 2}.
func (e *Engine) PNorm(b *buffer.Buffer, p float64) (v float64, err error) {
	defer func(t time.Time) { e.track(kernel.OpPNorm, b.Dimensions(), t, err) }(e.start())
	return kernel.PNorm(b, p)
}

// Dot returns the dot product of a and b.
func (e *Engine) Dot(a, b *buffer.Buffer) float64 {
	defer e.track(kernel.OpDot, a.Dimensions(), e.start(), nil)
	return kernel.Dot(a, b)
}

// CosineSimilarity returns the cosine of the angle between a and b.
func (e *Engine) CosineSimilarity(a, b *buffer.Buffer) float64 {
	defer e.track(kernel.OpCosine, a.Dimensions(), e.start(), nil)
	return kernel.CosineSimilarity(a, b)
}

// Modality classifies the mode of the element distribution.
func (e *Engine) Modality(b *buffer.Buffer) (kernel.Kind, []float64) {
	defer e.track(kernel.OpModality, b.Dimensions(), e.start(), nil)
	return kernel.Modality(b)
}

// Encode appends the MessagePack form of b to dst.
func (e *Engine) Encode(dst []byte, b *buffer.Buffer) (out []byte, err error) {
	defer func(t time.Time) { e.track(kernel.OpEncode, b.Dimensions(), t, err) }(e.start())
	return msgpack.Append(dst, b)
}

// EncodedSize returns the encoded length of b.
func (e *Engine) EncodedSize(b *buffer.Buffer) (int, error) {
	return msgpack.EncodedSize(b.Dimensions(), b.Precision())
}

// Decode parses one vector from the front of data and returns the bytes
// after it.
func (e *Engine) Decode(data []byte) (b *buffer.Buffer, rest []byte, err error) {
	defer func(t time.Time) {
		dims := 0
		if b != nil {
			dims = b.Dimensions()
		}
		e.track(kernel.OpDecode, dims, t, err)
		e.logger.LogDecode(len(data), err)
	}(e.start())
	return msgpack.Read(data)
}

// EncodeTo streams the MessagePack form of b to w.
func (e *Engine) EncodeTo(w *msgp.Writer, b *buffer.Buffer) (err error) {
	defer func(t time.Time) { e.track(kernel.OpEncode, b.Dimensions(), t, err) }(e.start())
	return msgpack.Write(w, b)
}

// DecodeFrom reads one vector from r.
func (e *Engine) DecodeFrom(r *msgp.Reader) (b *buffer.Buffer, err error) {
	defer func(t time.Time) {
		dims := 0
		if b != nil {
			dims = b.Dimensions()
		}
		e.track(kernel.OpDecode, dims, t, err)
		e.logger.LogDecode(r.Buffered(), err)
	}(e.start())
	return msgpack.ReadFrom(r)
}
