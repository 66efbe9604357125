package flatvec

import (
	"errors"

	"github.com/hupe1980/flatvec/internal/kernel"
)

// Neg returns a new vector with every element negated.
func (v *Vector) Neg() *Vector {
	return v.derive(v.eng.Neg(v.buf))
}

// Sum returns the sum of all elements.
func (v *Vector) Sum() float64 { return v.eng.Sum(v.buf) }

// ArithmeticMean returns Sum() / Dimensions().
func (v *Vector) ArithmeticMean() float64 { return v.eng.ArithmeticMean(v.buf) }

// GeometricMean returns exp(mean(ln(x))). It fails with
// ErrNonPositiveElement when any element is <= 0.
func (v *Vector) GeometricMean() (float64, error) {
	g, err := v.eng.GeometricMean(v.buf)
	if err != nil {
		return 0, translateError(err)
	}
	return g, nil
}

// Min returns the smallest element.
func (v *Vector) Min() float64 { return v.eng.Min(v.buf) }

// Max returns the largest element.
func (v *Vector) Max() float64 { return v.eng.Max(v.buf) }

// IndexOfMin returns the lowest index holding the smallest element.
func (v *Vector) IndexOfMin() int { return v.eng.IndexOfMin(v.buf) }

// IndexOfMax returns the lowest index holding the largest element.
func (v *Vector) IndexOfMax() int { return v.eng.IndexOfMax(v.buf) }

// InfinityNorm returns the largest absolute element.
func (v *Vector) InfinityNorm() float64 { return v.eng.InfinityNorm(v.buf) }

// PNorm returns (Σ|x|^p)^(1/p). Only p = 1 and p = 2 are supported; other
// values fail with *ErrInvalidP.
func (v *Vector) PNorm(p float64) (float64, error) {
	n, err := v.eng.PNorm(v.buf, p)
	if errors.Is(err, kernel.ErrInvalidP) {
		return 0, &ErrInvalidP{P: p, cause: err}
	}
	if err != nil {
		return 0, translateError(err)
	}
	return n, nil
}

// Modality classifies the mode of the element distribution.
func (v *Vector) Modality() Modality {
	kind, values := v.eng.Modality(v.buf)
	return Modality{Kind: kind, Values: values}
}
