package kernel

import (
	"fmt"
	"math"
)

// Op identifies a vector operation.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpNeg
	OpFill
	OpCmp
	OpDot
	OpCosine
	OpSum
	OpMean
	OpGeometricMean
	OpMin
	OpMax
	OpIndexOfMin
	OpIndexOfMax
	OpInfinityNorm
	OpPNorm
	OpModality
	OpEncode
	OpDecode
)

var opNames = [...]string{
	OpAdd:           "add",
	OpSub:           "sub",
	OpMul:           "mul",
	OpDiv:           "div",
	OpMod:           "mod",
	OpNeg:           "neg",
	OpFill:          "fill",
	OpCmp:           "cmp",
	OpDot:           "dot",
	OpCosine:        "cosine_similarity",
	OpSum:           "sum",
	OpMean:          "arithmetic_mean",
	OpGeometricMean: "geometric_mean",
	OpMin:           "min",
	OpMax:           "max",
	OpIndexOfMin:    "index_of_min",
	OpIndexOfMax:    "index_of_max",
	OpInfinityNorm:  "infinity_norm",
	OpPNorm:         "p_norm",
	OpModality:      "modality",
	OpEncode:        "encode",
	OpDecode:        "decode",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Binary reports whether o is an element-wise operation on two operands.
func (o Op) Binary() bool {
	return o <= OpMod
}

// scalar returns the float64 function applied per element for binary ops.
func (o Op) scalar() func(x, y float64) float64 {
	switch o {
	case OpAdd:
		return func(x, y float64) float64 { return x + y }
	case OpSub:
		return func(x, y float64) float64 { return x - y }
	case OpMul:
		return func(x, y float64) float64 { return x * y }
	case OpDiv:
		return func(x, y float64) float64 { return x / y }
	case OpMod:
		// Sign follows the dividend and x mod 0 is NaN, as C fmod.
		return math.Mod
	default:
		panic(fmt.Sprintf("kernel: %s is not a binary operation", o))
	}
}
