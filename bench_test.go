package flatvec

import (
	"fmt"
	"testing"

	"github.com/hupe1980/flatvec/testutil"
)

func BenchmarkAdd(b *testing.B) {
	rng := testutil.NewRNG(1)
	for _, p := range precisions {
		for _, d := range []int{128, 4096, 1 << 18} {
			b.Run(fmt.Sprintf("%s/%d", p, d), func(b *testing.B) {
				x := mustValues(b, rng.Uniform(d), WithPrecision(p))
				y := mustValues(b, rng.Uniform(d), WithPrecision(p))

				b.SetBytes(int64(d * int(p)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = Add(x, y)
				}
			})
		}
	}
}

func BenchmarkDot(b *testing.B) {
	rng := testutil.NewRNG(2)
	for _, d := range []int{128, 1536} {
		b.Run(fmt.Sprintf("%d", d), func(b *testing.B) {
			x := mustValues(b, rng.Uniform(d))
			y := mustValues(b, rng.Uniform(d))

			b.ReportAllocs()
			for b.Loop() {
				_, _ = Dot(x, y)
			}
		})
	}
}

func BenchmarkModality(b *testing.B) {
	rng := testutil.NewRNG(3)
	v := mustValues(b, rng.Pool(4096, 64))

	b.ReportAllocs()
	for b.Loop() {
		_ = v.Modality()
	}
}

func BenchmarkMarshalBinary(b *testing.B) {
	rng := testutil.NewRNG(4)
	for _, p := range precisions {
		b.Run(p.String(), func(b *testing.B) {
			v := mustValues(b, rng.Uniform(1536), WithPrecision(p))
			data, _ := v.MarshalBinary()

			b.Run("Encode", func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					_, _ = v.MarshalBinary()
				}
			})
			b.Run("Decode", func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					_, _ = FromBytes(data)
				}
			})
		})
	}
}
