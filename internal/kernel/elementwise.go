package kernel

import (
	"github.com/hupe1980/flatvec/internal/buffer"
	"github.com/hupe1980/flatvec/internal/cpu"
)

var (
	binaryImpl = binaryGeneric
	negImpl    = negGeneric
)

func init() {
	if cpu.ActiveISA().Wide() {
		binaryImpl = binaryUnrolled
		negImpl = negUnrolled
	}
}

// Binary computes dst[i] = a[i] op b[i] for i in [lo, hi).
// Single precision operands are widened, combined in float64 and rounded
// back to float32.
func Binary(op Op, dst, a, b *buffer.Buffer, lo, hi int) {
	binaryImpl(op.scalar(), dst, a, b, lo, hi)
}

// Neg computes dst[i] = src[i] * -1 for i in [lo, hi).
func Neg(dst, src *buffer.Buffer, lo, hi int) {
	negImpl(dst, src, lo, hi)
}

// Fill stores v (rounded for Single) at every index in [lo, hi).
func Fill(dst *buffer.Buffer, v float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		dst.Put(i, v)
	}
}

// Cmp writes the three-way comparison of a and b into dst for i in [lo, hi):
// -1 when a[i] < b[i], 1 when a[i] > b[i] and 0 otherwise, including when
// either side is NaN.
func Cmp(dst []int8, a, b *buffer.Buffer, lo, hi int) {
	for i := lo; i < hi; i++ {
		dst[i] = compare(a.At(i), b.At(i))
	}
}

func compare(x, y float64) int8 {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func binaryGeneric(fn func(x, y float64) float64, dst, a, b *buffer.Buffer, lo, hi int) {
	for i := lo; i < hi; i++ {
		dst.Put(i, fn(a.At(i), b.At(i)))
	}
}

func negGeneric(dst, src *buffer.Buffer, lo, hi int) {
	for i := lo; i < hi; i++ {
		dst.Put(i, src.At(i)*-1)
	}
}
