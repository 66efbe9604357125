package flatvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/flatvec/internal/buffer"
	"github.com/hupe1980/flatvec/internal/conv"
	"github.com/hupe1980/flatvec/internal/kernel"
	"github.com/hupe1980/flatvec/internal/msgpack"
)

var (
	// ErrEngineMismatch is returned when binary operands were created by
	// different engines.
	ErrEngineMismatch = errors.New("operands belong to different engines")

	// ErrNonPositiveElement is returned by GeometricMean when an element is <= 0.
	ErrNonPositiveElement = errors.New("geometric mean requires positive elements")

	// ErrVectorTooLarge is returned when the serialized form would exceed
	// math.MaxInt32 bytes.
	ErrVectorTooLarge = errors.New("vector too large to serialize")

	// ErrArrayIndexingDisabled is returned by Index for vectors created with
	// WithArrayIndexing(false).
	ErrArrayIndexingDisabled = errors.New("array indexing is disabled")
)

// ErrInvalidDimensions indicates a dimension count < 1 or a byte size above
// math.MaxInt32.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimensions struct {
	Dimensions int
	cause      error
}

func (e *ErrInvalidDimensions) Error() string {
	return fmt.Sprintf("invalid dimensions: %d", e.Dimensions)
}

func (e *ErrInvalidDimensions) Unwrap() error { return e.cause }

// ErrInvalidPrecision indicates a precision other than Single or Double.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidPrecision struct {
	Precision Precision
	cause     error
}

func (e *ErrInvalidPrecision) Error() string {
	return fmt.Sprintf("invalid precision: %d", uint8(e.Precision))
}

func (e *ErrInvalidPrecision) Unwrap() error { return e.cause }

// ErrInvalidElement indicates a NaN or infinite construction value.
type ErrInvalidElement struct {
	Index int
	Value float64
}

func (e *ErrInvalidElement) Error() string {
	return fmt.Sprintf("invalid element at index %d: %v is not a finite number", e.Index, e.Value)
}

// ErrOperandMismatch indicates binary operands with different dimensions or
// precision.
type ErrOperandMismatch struct {
	Op              string
	LeftDimensions  int
	RightDimensions int
	LeftPrecision   Precision
	RightPrecision  Precision
}

func (e *ErrOperandMismatch) Error() string {
	return fmt.Sprintf("%s: operand mismatch: %d x %s vs %d x %s",
		e.Op, e.LeftDimensions, e.LeftPrecision, e.RightDimensions, e.RightPrecision)
}

// ErrIndexOutOfRange is the panic value of Indexer.At and Indexer.SetAt.
type ErrIndexOutOfRange struct {
	Index    int
	MaxIndex int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range [%d] with max index %d", e.Index, e.MaxIndex)
}

// ErrInvalidP indicates a p-norm order other than 1 or 2.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidP struct {
	P     float64
	cause error
}

func (e *ErrInvalidP) Error() string {
	return fmt.Sprintf("invalid p-norm order: %v (want 1 or 2)", e.P)
}

func (e *ErrInvalidP) Unwrap() error { return e.cause }

// ErrDeserialize indicates bytes that are not a valid serialized vector.
// Offset is the byte position where decoding failed.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDeserialize struct {
	Offset int
	Reason string
	cause  error
}

func (e *ErrDeserialize) Error() string {
	return fmt.Sprintf("deserialize vector: %s at offset %d", e.Reason, e.Offset)
}

func (e *ErrDeserialize) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var de *msgpack.DecodeError
	if errors.As(err, &de) {
		return &ErrDeserialize{Offset: de.Offset, Reason: de.Reason, cause: err}
	}
	if errors.Is(err, msgpack.ErrTooLarge) {
		return fmt.Errorf("%w: %w", ErrVectorTooLarge, err)
	}
	if errors.Is(err, kernel.ErrNonPositive) {
		return fmt.Errorf("%w: %w", ErrNonPositiveElement, err)
	}

	return err
}

// translateAllocError maps buffer construction failures for the requested
// shape to public errors.
func translateAllocError(err error, dimensions int, p Precision) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, buffer.ErrInvalidPrecision):
		return &ErrInvalidPrecision{Precision: p, cause: err}
	case errors.Is(err, buffer.ErrInvalidDimensions), errors.Is(err, conv.ErrSizeOverflow):
		return &ErrInvalidDimensions{Dimensions: dimensions, cause: err}
	default:
		return translateError(err)
	}
}
