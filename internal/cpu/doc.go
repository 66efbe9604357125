// Package cpu detects the SIMD instruction sets available on the host.
//
// Detection runs once at package init through golang.org/x/sys/cpu. The
// FLATVEC_ISA environment variable (generic, neon, sve2, avx2, avx512) forces
// a specific ISA when the CPU supports it; an unsupported or unknown value
// falls back to auto-detection.
//
// The kernel package reads ActiveISA to pick between its generic and unrolled
// element-wise loops.
package cpu
