package flatvec

import (
	"github.com/bits-and-blooms/bitset"
)

// Mask holds one boolean per element, produced by the comparison predicates
// Eq, Ne, Lt, Le, Gt and Ge.
type Mask struct {
	bits *bitset.BitSet
	n    int
}

func newMask(cmp []int8, keep func(c int8) bool) *Mask {
	bits := bitset.New(uint(len(cmp)))
	for i, c := range cmp {
		if keep(c) {
			bits.Set(uint(i))
		}
	}
	return &Mask{bits: bits, n: len(cmp)}
}

// Len returns the number of elements covered by the mask.
func (m *Mask) Len() int { return m.n }

// Test reports whether element i is set. Out of range indices report false.
func (m *Mask) Test(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits.Test(uint(i))
}

// Count returns the number of set elements.
func (m *Mask) Count() int { return int(m.bits.Count()) }

// All reports whether every element is set.
func (m *Mask) All() bool { return m.Count() == m.n }

// Any reports whether at least one element is set.
func (m *Mask) Any() bool { return m.bits.Any() }

// None reports whether no element is set.
func (m *Mask) None() bool { return m.bits.None() }

// Indices returns the set element indices in ascending order.
func (m *Mask) Indices() []int {
	out := make([]int, 0, m.Count())
	for i, ok := m.bits.NextSet(0); ok; i, ok = m.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// BitSet returns a copy of the underlying bit set.
func (m *Mask) BitSet() *bitset.BitSet { return m.bits.Clone() }

func (m *Mask) String() string {
	buf := make([]byte, m.n)
	for i := range m.n {
		if m.bits.Test(uint(i)) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
