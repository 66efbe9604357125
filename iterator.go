package flatvec

import "iter"

// Values returns a sequence over the elements in index order. Each call
// starts a fresh pass.
func (v *Vector) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range v.buf.Dimensions() {
			if !yield(v.buf.At(i)) {
				return
			}
		}
	}
}

// All returns a sequence of index and element pairs in index order.
func (v *Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := range v.buf.Dimensions() {
			if !yield(i, v.buf.At(i)) {
				return
			}
		}
	}
}

// Iterator walks the elements of a vector in index order.
type Iterator struct {
	v    *Vector
	next int
}

// Iterator returns an iterator positioned before the first element.
func (v *Vector) Iterator() *Iterator {
	return &Iterator{v: v}
}

// Next returns the next element, or false once every element was returned.
func (it *Iterator) Next() (float64, bool) {
	if it.next >= it.v.buf.Dimensions() {
		return 0, false
	}
	x := it.v.buf.At(it.next)
	it.next++
	return x, true
}

// Reset moves the iterator back before the first element.
func (it *Iterator) Reset() { it.next = 0 }
