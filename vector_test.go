package flatvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/flatvec/engine"
	"github.com/hupe1980/flatvec/testutil"
)

var tenths = []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

var precisions = []Precision{Single, Double}

func mustValues(t testing.TB, values []float64, opts ...Option) *Vector {
	t.Helper()
	v, err := FromValues(values, opts...)
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	for _, p := range precisions {
		t.Run(p.String(), func(t *testing.T) {
			for _, d := range []int{1, 2, 15, 16, 1000} {
				v, err := New(d, WithPrecision(p))
				require.NoError(t, err)

				assert.Equal(t, d, v.Dimensions())
				assert.Equal(t, d-1, v.MaxIndex())
				assert.Equal(t, p, v.Precision())
				assert.Equal(t, p == Double, v.Is64Bit())
				assert.Equal(t, int(p), v.ElementByteSize())
				for x := range v.Values() {
					assert.Zero(t, x)
				}
			}
		})
	}

	t.Run("DefaultsToDouble", func(t *testing.T) {
		v, err := New(3)
		require.NoError(t, err)
		assert.Equal(t, Double, v.Precision())
		assert.True(t, v.ArrayIndexing())
		assert.Same(t, engine.Default(), v.Engine())
	})
}

func TestConstructionErrors(t *testing.T) {
	t.Run("Dimensions", func(t *testing.T) {
		for _, d := range []int{0, -1} {
			_, err := New(d)
			var de *ErrInvalidDimensions
			require.ErrorAs(t, err, &de)
			assert.Equal(t, d, de.Dimensions)
		}
	})

	t.Run("SizeOverflow", func(t *testing.T) {
		_, err := New(math.MaxInt32/8+1, WithPrecision(Double))
		var de *ErrInvalidDimensions
		require.ErrorAs(t, err, &de)
		assert.Equal(t, math.MaxInt32/8+1, de.Dimensions)
	})

	t.Run("Precision", func(t *testing.T) {
		_, err := New(3, WithPrecision(Precision(2)))
		var pe *ErrInvalidPrecision
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, Precision(2), pe.Precision)
	})

	t.Run("EmptyValues", func(t *testing.T) {
		_, err := FromValues(nil)
		var de *ErrInvalidDimensions
		require.ErrorAs(t, err, &de)
		assert.Zero(t, de.Dimensions)

		_, err = FromFloat32s([]float32{})
		require.ErrorAs(t, err, &de)
		_, err = FromFloat64s([]float64{})
		require.ErrorAs(t, err, &de)
	})

	t.Run("InvalidElements", func(t *testing.T) {
		tests := []struct {
			name  string
			input []float64
			index int
		}{
			{"NaN", []float64{1, math.NaN()}, 1},
			{"PosInf", []float64{math.Inf(1), 2}, 0},
			{"NegInf", []float64{1, 2, math.Inf(-1)}, 2},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				v, err := FromValues(tt.input)
				var ee *ErrInvalidElement
				require.ErrorAs(t, err, &ee)
				assert.Equal(t, tt.index, ee.Index)
				assert.Nil(t, v)
			})
		}
	})
}

func TestFromSlices(t *testing.T) {
	t.Run("Values", func(t *testing.T) {
		for _, p := range precisions {
			v := mustValues(t, tenths, WithPrecision(p))
			want := tenths
			if p == Single {
				want = testutil.Rounded(tenths)
			}
			assert.Equal(t, want, v.Float64s())
		}
	})

	t.Run("Float32s", func(t *testing.T) {
		src := testutil.Float32s(tenths)
		v, err := FromFloat32s(src, WithPrecision(Double))
		require.NoError(t, err)
		assert.Equal(t, Single, v.Precision(), "slice kind fixes the precision")
		assert.Equal(t, src, v.Float32s())

		src[0] = 42
		assert.Zero(t, v.Float32s()[0], "input is copied")
	})

	t.Run("Float64s", func(t *testing.T) {
		v, err := FromFloat64s(tenths, WithPrecision(Single))
		require.NoError(t, err)
		assert.Equal(t, Double, v.Precision())
		assert.Equal(t, tenths, v.Float64s())
	})

	t.Run("Ones", func(t *testing.T) {
		v, err := Ones(4, WithPrecision(Single))
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1, 1, 1}, v.Float64s())

		_, err = Ones(0)
		require.Error(t, err)
	})
}

func TestGetSet(t *testing.T) {
	for _, p := range precisions {
		t.Run(p.String(), func(t *testing.T) {
			v, err := New(10, WithPrecision(p))
			require.NoError(t, err)

			for i, x := range tenths {
				require.True(t, v.Set(i, x))
			}
			for i, x := range tenths {
				got, ok := v.Get(i)
				require.True(t, ok)
				if p == Single {
					assert.Equal(t, float64(float32(x)), got)
				} else {
					assert.Equal(t, x, got)
				}
			}

			before := v.Float64s()
			for _, i := range []int{-1, 10, 1 << 40} {
				got, ok := v.Get(i)
				assert.False(t, ok)
				assert.Zero(t, got)
				assert.False(t, v.Set(i, 123))
			}
			assert.Equal(t, before, v.Float64s(), "failed Set leaves the vector unchanged")
		})
	}

	t.Run("SingleRoundsOnWrite", func(t *testing.T) {
		v, err := New(1, WithPrecision(Single))
		require.NoError(t, err)

		v.Set(0, 0.1)
		got, _ := v.Get(0)
		assert.Equal(t, 0.10000000149011612, got)
		assert.True(t, testutil.IsFloat32Exact(got))
	})
}

func TestFill(t *testing.T) {
	for _, p := range precisions {
		v, err := New(5, WithPrecision(p))
		require.NoError(t, err)

		v.Fill(0.3)
		for x := range v.Values() {
			assert.Equal(t, v.Float64s()[0], x)
		}
		if p == Single {
			assert.Equal(t, float64(float32(0.3)), v.Float64s()[0])
		}
	}
}

func TestCloneAndEqual(t *testing.T) {
	v := mustValues(t, tenths)
	c := v.Clone()

	assert.True(t, v.Equal(c))
	assert.Same(t, v.Engine(), c.Engine())

	c.Set(0, 5)
	assert.False(t, v.Equal(c))
	assert.Equal(t, 0.0, v.Float64s()[0], "clone owns its buffer")

	single := mustValues(t, tenths, WithPrecision(Single))
	assert.False(t, v.Equal(single), "precision differs")
	assert.False(t, v.Equal(mustValues(t, tenths[:5])), "dimensions differ")
	assert.False(t, v.Equal(nil))

	nan, err := FromFloat64s([]float64{math.NaN()})
	require.NoError(t, err)
	assert.False(t, nan.Equal(nan.Clone()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "float64[1 2.5]", mustValues(t, []float64{1, 2.5}).String())
	assert.Equal(t, "float32[0.1 2]", mustValues(t, []float64{0.1, 2}, WithPrecision(Single)).String())
}

func TestWithEngine(t *testing.T) {
	eng, err := engine.Load(engine.WithWorkers(1))
	require.NoError(t, err)

	v, err := New(2, WithEngine(eng))
	require.NoError(t, err)
	assert.Same(t, eng, v.Engine())
	assert.Same(t, eng, v.Clone().Engine())
	assert.Same(t, eng, v.Neg().Engine())

	d, err := New(2, WithEngine(nil))
	require.NoError(t, err)
	assert.Same(t, engine.Default(), d.Engine())
}

func TestIndexer(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		v := mustValues(t, []float64{1, 2, 3}, WithPrecision(Single))
		ix, err := v.Index()
		require.NoError(t, err)

		assert.Equal(t, 3, ix.Len())
		assert.Equal(t, 2.0, ix.At(1))

		ix.SetAt(2, 0.1)
		got, _ := v.Get(2)
		assert.Equal(t, float64(float32(0.1)), got)
	})

	t.Run("PanicsOutOfRange", func(t *testing.T) {
		v := mustValues(t, []float64{1, 2, 3})
		ix, err := v.Index()
		require.NoError(t, err)

		assert.PanicsWithError(t, (&ErrIndexOutOfRange{Index: 3, MaxIndex: 2}).Error(), func() { ix.At(3) })
		assert.Panics(t, func() { ix.SetAt(-1, 0) })
		assert.Equal(t, []float64{1, 2, 3}, v.Float64s())
	})

	t.Run("Disabled", func(t *testing.T) {
		v, err := New(3, WithArrayIndexing(false))
		require.NoError(t, err)
		assert.False(t, v.ArrayIndexing())

		_, err = v.Index()
		require.ErrorIs(t, err, ErrArrayIndexingDisabled)

		assert.False(t, v.Clone().ArrayIndexing(), "derived vectors keep the setting")

		w, err := New(3)
		require.NoError(t, err)
		assert.True(t, w.ArrayIndexing(), "setting is per construction")
	})
}

func TestIteration(t *testing.T) {
	v := mustValues(t, tenths, WithPrecision(Single))
	want := testutil.Rounded(tenths)

	var got []float64
	for x := range v.Values() {
		got = append(got, x)
	}
	assert.Equal(t, want, got)

	got = got[:0]
	for x := range v.Values() {
		got = append(got, x)
	}
	assert.Equal(t, want, got, "sequences restart")

	for i, x := range v.All() {
		assert.Equal(t, want[i], x)
		if i == 3 {
			break
		}
	}

	it := v.Iterator()
	for i := range want {
		x, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, want[i], x)
	}
	_, ok := it.Next()
	assert.False(t, ok)

	it.Reset()
	x, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, want[0], x)
}
