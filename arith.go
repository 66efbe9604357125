package flatvec

import (
	"fmt"

	"github.com/hupe1980/flatvec/internal/kernel"
)

// checkOperands verifies a and b can be combined by op.
func checkOperands(op kernel.Op, a, b *Vector) error {
	if a.eng != b.eng {
		err := fmt.Errorf("%s: %w", op, ErrEngineMismatch)
		a.eng.Reject(op, a.Dimensions(), err)
		return err
	}
	if !a.buf.SameShape(b.buf) {
		err := &ErrOperandMismatch{
			Op:              op.String(),
			LeftDimensions:  a.Dimensions(),
			RightDimensions: b.Dimensions(),
			LeftPrecision:   a.Precision(),
			RightPrecision:  b.Precision(),
		}
		a.eng.Reject(op, a.Dimensions(), err)
		return err
	}
	return nil
}

func binary(op kernel.Op, a, b *Vector) (*Vector, error) {
	if err := checkOperands(op, a, b); err != nil {
		return nil, err
	}
	return a.derive(a.eng.Binary(op, a.buf, b.buf)), nil
}

// Add returns a + b element-wise.
func Add(a, b *Vector) (*Vector, error) { return binary(kernel.OpAdd, a, b) }

// Sub returns a - b element-wise.
func Sub(a, b *Vector) (*Vector, error) { return binary(kernel.OpSub, a, b) }

// Mul returns a * b element-wise.
func Mul(a, b *Vector) (*Vector, error) { return binary(kernel.OpMul, a, b) }

// Div returns a / b element-wise. Division by zero follows IEEE-754.
func Div(a, b *Vector) (*Vector, error) { return binary(kernel.OpDiv, a, b) }

// Mod returns the floating-point remainder of a / b element-wise, as
// math.Mod: the result has the sign of a, and x mod 0 is NaN.
func Mod(a, b *Vector) (*Vector, error) { return binary(kernel.OpMod, a, b) }

// Cmp compares a and b element-wise, yielding -1 where a < b, 1 where a > b
// and 0 otherwise. A NaN on either side yields 0.
func Cmp(a, b *Vector) ([]int8, error) {
	if err := checkOperands(kernel.OpCmp, a, b); err != nil {
		return nil, err
	}
	return a.eng.Cmp(a.buf, b.buf), nil
}

func predicate(a, b *Vector, keep func(c int8) bool) (*Mask, error) {
	c, err := Cmp(a, b)
	if err != nil {
		return nil, err
	}
	return newMask(c, keep), nil
}

// Eq reports per element whether Cmp yields 0. NaN elements compare equal.
func Eq(a, b *Vector) (*Mask, error) {
	return predicate(a, b, func(c int8) bool { return c == 0 })
}

// Ne reports per element whether Cmp yields -1 or 1.
func Ne(a, b *Vector) (*Mask, error) {
	return predicate(a, b, func(c int8) bool { return c != 0 })
}

// Lt reports per element whether a < b.
func Lt(a, b *Vector) (*Mask, error) {
	return predicate(a, b, func(c int8) bool { return c < 0 })
}

// Le reports per element whether Cmp yields -1 or 0.
func Le(a, b *Vector) (*Mask, error) {
	return predicate(a, b, func(c int8) bool { return c <= 0 })
}

// Gt reports per element whether a > b.
func Gt(a, b *Vector) (*Mask, error) {
	return predicate(a, b, func(c int8) bool { return c > 0 })
}

// Ge reports per element whether Cmp yields 0 or 1.
func Ge(a, b *Vector) (*Mask, error) {
	return predicate(a, b, func(c int8) bool { return c >= 0 })
}

// Dot returns the dot product of a and b.
func Dot(a, b *Vector) (float64, error) {
	if err := checkOperands(kernel.OpDot, a, b); err != nil {
		return 0, err
	}
	return a.eng.Dot(a.buf, b.buf), nil
}

// CosineSimilarity returns dot(a, b) / (|a| * |b|). It is NaN when either
// vector is all zeros.
func CosineSimilarity(a, b *Vector) (float64, error) {
	if err := checkOperands(kernel.OpCosine, a, b); err != nil {
		return 0, err
	}
	return a.eng.CosineSimilarity(a.buf, b.buf), nil
}
