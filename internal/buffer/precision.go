package buffer

import "fmt"

// Precision is the element width in bytes.
type Precision uint8

const (
	// Single stores IEEE-754 binary32 elements.
	Single Precision = 4
	// Double stores IEEE-754 binary64 elements.
	Double Precision = 8
)

// Valid reports whether p is Single or Double.
func (p Precision) Valid() bool {
	return p == Single || p == Double
}

// Size returns the element byte size.
func (p Precision) Size() int {
	return int(p)
}

// Is64Bit reports whether p is Double.
func (p Precision) Is64Bit() bool {
	return p == Double
}

func (p Precision) String() string {
	switch p {
	case Single:
		return "float32"
	case Double:
		return "float64"
	default:
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
}

// Round rounds x to the nearest float32 when p is Single and returns x
// unchanged otherwise.
func Round(p Precision, x float64) float64 {
	if p == Single {
		return float64(float32(x))
	}
	return x
}
