package flatvec

// Indexer is slice-like element access. Like a Go slice it panics on an out
// of range index; the panic value is *ErrIndexOutOfRange.
type Indexer struct {
	v *Vector
}

// Index returns an Indexer for v, or ErrArrayIndexingDisabled when v was
// created with WithArrayIndexing(false).
func (v *Vector) Index() (*Indexer, error) {
	if v.noIndexing {
		return nil, ErrArrayIndexingDisabled
	}
	return &Indexer{v: v}, nil
}

// Len returns the number of elements.
func (ix *Indexer) Len() int { return ix.v.buf.Dimensions() }

// At returns element i.
func (ix *Indexer) At(i int) float64 {
	ix.check(i)
	return ix.v.buf.At(i)
}

// SetAt stores x at i.
func (ix *Indexer) SetAt(i int, x float64) {
	ix.check(i)
	ix.v.buf.Put(i, x)
}

func (ix *Indexer) check(i int) {
	if i < 0 || i > ix.v.buf.MaxIndex() {
		panic(&ErrIndexOutOfRange{Index: i, MaxIndex: ix.v.buf.MaxIndex()})
	}
}
