// Package testutil provides testing utilities for flatvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source that produces element slices shaped for
// the different vector operations.
//
// # Random Element Generation
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Uniform(128)              // uniform [0, 1)
//	ys := rng.UniformRange(128, -5, 5)  // uniform [-5, 5)
//	zs := rng.Gaussian(128)             // standard normal
//	ps := rng.Positive(128)             // strictly positive, for geometric means
//	ms := rng.Pool(128, 4)              // drawn from 4 distinct values, for modality
package testutil
