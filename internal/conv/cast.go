package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrSizeOverflow is returned when a buffer size exceeds the 31-bit limit.
var ErrSizeOverflow = errors.New("size exceeds math.MaxInt32 bytes")

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// ByteLength returns count*size, failing with ErrSizeOverflow when the
// product does not fit in math.MaxInt32. Both operands must be non-negative.
func ByteLength(count, size int) (int, error) {
	if count < 0 || size < 0 {
		return 0, fmt.Errorf("invalid byte length operands: %d x %d", count, size)
	}
	if size != 0 && uint64(count) > uint64(math.MaxInt32)/uint64(size) {
		return 0, fmt.Errorf("%w: %d x %d", ErrSizeOverflow, count, size)
	}
	return count * size, nil
}

// AddLength returns a+b, failing with ErrSizeOverflow when the sum does not
// fit in math.MaxInt32. Both operands must be non-negative.
func AddLength(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("invalid byte length operands: %d + %d", a, b)
	}
	if uint64(a)+uint64(b) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d + %d", ErrSizeOverflow, a, b)
	}
	return a + b, nil
}
