package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/flatvec/internal/buffer"
)

var (
	// ErrNonPositive is returned by GeometricMean when an element is <= 0.
	ErrNonPositive = errors.New("encountered a zero or negative element")
	// ErrInvalidP is returned by PNorm for p other than 1 and 2.
	ErrInvalidP = errors.New("p must be 1 or 2")
)

// Sum returns the sum of all elements.
func Sum(b *buffer.Buffer) float64 {
	return buffer.Round(b.Precision(), sum(b))
}

func sum(b *buffer.Buffer) float64 {
	var s float64
	for i := range b.Dimensions() {
		s += b.At(i)
	}
	return s
}

// ArithmeticMean returns Sum / Dimensions.
func ArithmeticMean(b *buffer.Buffer) float64 {
	return buffer.Round(b.Precision(), sum(b)/float64(b.Dimensions()))
}

// GeometricMean returns exp(mean(ln(x))). Every element must be > 0.
func GeometricMean(b *buffer.Buffer) (float64, error) {
	var logs float64
	for i := range b.Dimensions() {
		v := b.At(i)
		if v <= 0 {
			return 0, fmt.Errorf("%w: %v at index %d", ErrNonPositive, v, i)
		}
		logs += math.Log(v)
	}
	return buffer.Round(b.Precision(), math.Exp(logs/float64(b.Dimensions()))), nil
}

// Min returns the smallest element. Element 0 is the initial candidate and
// only a strictly smaller value replaces it.
func Min(b *buffer.Buffer) float64 {
	_, v := extreme(b, func(x, best float64) bool { return x < best })
	return v
}

// Max returns the largest element.
func Max(b *buffer.Buffer) float64 {
	_, v := extreme(b, func(x, best float64) bool { return x > best })
	return v
}

// IndexOfMin returns the index of the first occurrence of the minimum.
func IndexOfMin(b *buffer.Buffer) int {
	i, _ := extreme(b, func(x, best float64) bool { return x < best })
	return i
}

// IndexOfMax returns the index of the first occurrence of the maximum.
func IndexOfMax(b *buffer.Buffer) int {
	i, _ := extreme(b, func(x, best float64) bool { return x > best })
	return i
}

func extreme(b *buffer.Buffer, better func(x, best float64) bool) (int, float64) {
	idx, best := 0, b.At(0)
	for i := 1; i < b.Dimensions(); i++ {
		if v := b.At(i); better(v, best) {
			idx, best = i, v
		}
	}
	return idx, best
}

// InfinityNorm returns max(|x|).
func InfinityNorm(b *buffer.Buffer) float64 {
	best := math.Abs(b.At(0))
	for i := 1; i < b.Dimensions(); i++ {
		if v := math.Abs(b.At(i)); v > best {
			best = v
		}
	}
	return best
}

// PNorm returns (sum |x|^p)^(1/p) for p in {1, 2}.
func PNorm(b *buffer.Buffer, p float64) (float64, error) {
	var s float64
	switch p {
	case 1:
		for i := range b.Dimensions() {
			s += math.Abs(b.At(i))
		}
	case 2:
		for i := range b.Dimensions() {
			v := b.At(i)
			s += float64(v * v)
		}
		s = math.Sqrt(s)
	default:
		return 0, fmt.Errorf("%w: got %v", ErrInvalidP, p)
	}
	return buffer.Round(b.Precision(), s), nil
}

// Dot returns sum a[i]*b[i].
func Dot(a, b *buffer.Buffer) float64 {
	var s float64
	for i := range a.Dimensions() {
		s += float64(a.At(i) * b.At(i))
	}
	return buffer.Round(a.Precision(), s)
}

// CosineSimilarity returns dot(a, b) / (|a| * |b|). A zero vector on either
// side yields NaN.
func CosineSimilarity(a, b *buffer.Buffer) float64 {
	var dot, na, nb float64
	for i := range a.Dimensions() {
		x, y := a.At(i), b.At(i)
		dot += float64(x * y)
		na += float64(x * x)
		nb += float64(y * y)
	}
	return buffer.Round(a.Precision(), dot/(math.Sqrt(na)*math.Sqrt(nb)))
}
