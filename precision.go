package flatvec

import "github.com/hupe1980/flatvec/internal/buffer"

// Precision is the element width of a vector in bytes.
type Precision = buffer.Precision

const (
	// Single stores float32 elements (4 bytes).
	Single = buffer.Single
	// Double stores float64 elements (8 bytes).
	Double = buffer.Double
)
