package flatvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	a := mustValues(t, []float64{1, 5, 3, 7})
	b := mustValues(t, []float64{2, 2, 3, 2})

	m, err := Gt(a, b)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, []int{1, 3}, m.Indices())
	assert.True(t, m.Test(1))
	assert.False(t, m.Test(0))
	assert.False(t, m.Test(-1))
	assert.False(t, m.Test(4))
	assert.True(t, m.Any())
	assert.False(t, m.None())
	assert.False(t, m.All())

	bs := m.BitSet()
	bs.Set(0)
	assert.False(t, m.Test(0), "BitSet returns a copy")

	all, err := Eq(a, a)
	require.NoError(t, err)
	assert.True(t, all.All())
	assert.Equal(t, []int{0, 1, 2, 3}, all.Indices())

	none, err := Ne(a, a)
	require.NoError(t, err)
	assert.True(t, none.None())
	assert.Empty(t, none.Indices())
	assert.Equal(t, "0000", none.String())
}
