package kernel

import (
	"encoding/binary"
	"math"

	"github.com/hupe1980/flatvec/internal/buffer"
)

// The unrolled kernels decode four elements per iteration straight from the
// little-endian storage, specialized per precision. They produce the same
// bits as the generic kernels.

func binaryUnrolled(fn func(x, y float64) float64, dst, a, b *buffer.Buffer, lo, hi int) {
	if a.Precision() == buffer.Single {
		binaryUnrolled32(fn, dst.Bytes(), a.Bytes(), b.Bytes(), lo, hi)
		return
	}
	binaryUnrolled64(fn, dst.Bytes(), a.Bytes(), b.Bytes(), lo, hi)
}

func binaryUnrolled64(fn func(x, y float64) float64, dst, a, b []byte, lo, hi int) {
	i := lo
	for ; i+4 <= hi; i += 4 {
		off := i * 8
		as := a[off : off+32]
		bs := b[off : off+32]
		ds := dst[off : off+32]
		for k := 0; k < 32; k += 8 {
			x := math.Float64frombits(binary.LittleEndian.Uint64(as[k:]))
			y := math.Float64frombits(binary.LittleEndian.Uint64(bs[k:]))
			binary.LittleEndian.PutUint64(ds[k:], math.Float64bits(fn(x, y)))
		}
	}
	for ; i < hi; i++ {
		off := i * 8
		x := math.Float64frombits(binary.LittleEndian.Uint64(a[off:]))
		y := math.Float64frombits(binary.LittleEndian.Uint64(b[off:]))
		binary.LittleEndian.PutUint64(dst[off:], math.Float64bits(fn(x, y)))
	}
}

func binaryUnrolled32(fn func(x, y float64) float64, dst, a, b []byte, lo, hi int) {
	i := lo
	for ; i+4 <= hi; i += 4 {
		off := i * 4
		as := a[off : off+16]
		bs := b[off : off+16]
		ds := dst[off : off+16]
		for k := 0; k < 16; k += 4 {
			x := math.Float32frombits(binary.LittleEndian.Uint32(as[k:]))
			y := math.Float32frombits(binary.LittleEndian.Uint32(bs[k:]))
			r := float32(fn(float64(x), float64(y)))
			binary.LittleEndian.PutUint32(ds[k:], math.Float32bits(r))
		}
	}
	for ; i < hi; i++ {
		off := i * 4
		x := math.Float32frombits(binary.LittleEndian.Uint32(a[off:]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
		r := float32(fn(float64(x), float64(y)))
		binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(r))
	}
}

func negUnrolled(dst, src *buffer.Buffer, lo, hi int) {
	d, s := dst.Bytes(), src.Bytes()
	if src.Precision() == buffer.Single {
		for i := lo; i < hi; i++ {
			off := i * 4
			x := math.Float32frombits(binary.LittleEndian.Uint32(s[off:]))
			binary.LittleEndian.PutUint32(d[off:], math.Float32bits(x*-1))
		}
		return
	}
	i := lo
	for ; i+4 <= hi; i += 4 {
		off := i * 8
		ss := s[off : off+32]
		ds := d[off : off+32]
		for k := 0; k < 32; k += 8 {
			x := math.Float64frombits(binary.LittleEndian.Uint64(ss[k:]))
			binary.LittleEndian.PutUint64(ds[k:], math.Float64bits(x*-1))
		}
	}
	for ; i < hi; i++ {
		off := i * 8
		x := math.Float64frombits(binary.LittleEndian.Uint64(s[off:]))
		binary.LittleEndian.PutUint64(d[off:], math.Float64bits(x*-1))
	}
}
