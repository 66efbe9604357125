package cpu

import (
	"os"
	"runtime"
	"strings"
)

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "FLATVEC_ISA"

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents plain scalar Go code.
	Generic ISA = iota
	// NEON represents ARM64 NEON (128-bit SIMD, ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2 (scalable vectors, 128-2048 bit).
	SVE2
	// AVX2 represents x86-64 AVX2 (256-bit SIMD with FMA).
	AVX2
	// AVX512 represents x86-64 AVX-512 (512-bit SIMD).
	AVX512
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Wide reports whether the ISA has vector registers of at least 128 bits.
func (i ISA) Wide() bool {
	return i != Generic && i <= AVX512
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "neon":
		return NEON, true
	case "sve2":
		return SVE2, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Package-level state, written only during init.
var (
	activeISA   ISA
	hasOverride bool

	hasASIMD    bool // ARM64 NEON
	hasSVE2     bool // ARM64 SVE2
	hasAVX2     bool // x86-64 AVX2 + FMA
	hasAVX512F  bool // x86-64 AVX-512 Foundation
	hasAVX512BW bool // x86-64 AVX-512 Byte/Word
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeISA, hasOverride = resolve(os.Getenv(EnvOverride))
}

func resolve(override string) (ISA, bool) {
	if override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			return isa, true
		}
	}
	return selectBestISA(), false
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return hasASIMD
	case SVE2:
		return hasSVE2
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512F && hasAVX512BW
	default:
		return false
	}
}

func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		// Apple's SVE2 support is emulated, NEON wins there.
		if hasSVE2 && runtime.GOOS != "darwin" {
			return SVE2
		}
		if hasASIMD {
			return NEON
		}
	case "amd64":
		if hasAVX512F && hasAVX512BW {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
	}
	return Generic
}

// ActiveISA returns the ISA selected at init.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if FLATVEC_ISA selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// Available reports whether isa can run on this CPU.
func Available(isa ISA) bool {
	return isISAAvailable(isa)
}
