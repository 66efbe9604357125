package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uniform returns n values in range [0, 1).
func (r *RNG) Uniform(n int) []float64 {
	return r.UniformRange(n, 0, 1)
}

// UniformRange returns n values in range [minVal, maxVal).
// Locks only once per call.
func (r *RNG) UniformRange(n int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	dst := make([]float64, n)
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
	return dst
}

// Gaussian returns n values from a standard normal distribution.
func (r *RNG) Gaussian(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	dst := make([]float64, n)
	for i := range dst {
		dst[i] = r.rand.NormFloat64()
	}
	return dst
}

// Positive returns n values in range [0.5, 2), never zero or negative.
func (r *RNG) Positive(n int) []float64 {
	return r.UniformRange(n, 0.5, 2)
}

// NonZero returns n values in range [-10, 10) with |x| >= 0.25, usable as
// divisors.
func (r *RNG) NonZero(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	dst := make([]float64, n)
	for i := range dst {
		v := 0.25 + r.rand.Float64()*9.75
		if r.rand.Intn(2) == 0 {
			v = -v
		}
		dst[i] = v
	}
	return dst
}

// Pool returns n values drawn from `distinct` small integers, so values
// repeat and ties between counts are likely.
func (r *RNG) Pool(n, distinct int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	dst := make([]float64, n)
	for i := range dst {
		dst[i] = float64(r.rand.Intn(distinct))
	}
	return dst
}

// Float32s rounds every value of src to float32.
func Float32s(src []float64) []float32 {
	dst := make([]float32, len(src))
	for i, v := range src {
		dst[i] = float32(v)
	}
	return dst
}

// Rounded returns a copy of src with every value rounded to float32 and
// widened back, matching what a single precision vector stores.
func Rounded(src []float64) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(float32(v))
	}
	return dst
}

// Step returns [start, start+step, ...] with n values, computed by
// multiplication so values do not drift.
func Step(n int, start, step float64) []float64 {
	dst := make([]float64, n)
	for i := range dst {
		dst[i] = start + float64(i)*step
	}
	return dst
}

// Reversed returns a reversed copy of src.
func Reversed(src []float64) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[len(src)-1-i] = v
	}
	return dst
}

// IsFloat32Exact reports whether x survives a float32 round trip.
func IsFloat32Exact(x float64) bool {
	return math.IsNaN(x) || float64(float32(x)) == x
}
