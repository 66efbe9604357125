// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Validating caller supplied dimensions before any allocation
//   - Validating lengths decoded from untrusted serialized data
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices bounded by a validated dimension), use direct type casts instead.
package conv
