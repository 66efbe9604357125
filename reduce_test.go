package flatvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/flatvec/testutil"
)

func TestReductions(t *testing.T) {
	for _, p := range precisions {
		t.Run(p.String(), func(t *testing.T) {
			a := mustValues(t, tenths, WithPrecision(p))

			assert.InDelta(t, 4.5, a.Sum(), 1e-6)
			assert.InDelta(t, 0.45, a.ArithmeticMean(), 1e-6)
			assert.Equal(t, 0.0, a.Min())
			assert.InDelta(t, 0.9, a.Max(), 1e-6)
			assert.InDelta(t, 0.9, a.InfinityNorm(), 1e-6)

			if p == Single {
				for _, x := range []float64{a.Sum(), a.ArithmeticMean(), a.Max()} {
					assert.True(t, testutil.IsFloat32Exact(x), "%v is float32 exact", x)
				}
			}
		})
	}
}

func TestExtremeIndices(t *testing.T) {
	v := mustValues(t, []float64{0.1, 0.0, 0.3, 0.2, 0.5, 0.4, 0.7, 0.6, 0.9, 0.8})
	assert.Equal(t, 8, v.IndexOfMax())
	assert.Equal(t, 1, v.IndexOfMin())

	ties := mustValues(t, []float64{3, 1, 3, 1})
	assert.Equal(t, 0, ties.IndexOfMax())
	assert.Equal(t, 1, ties.IndexOfMin())
}

func TestNeg(t *testing.T) {
	v := mustValues(t, []float64{1, -2, 0})
	n := v.Neg()

	assert.Equal(t, []float64{-1, 2, 0}, n.Float64s())
	assert.True(t, math.Signbit(n.Float64s()[2]), "0 * -1 is -0")
	assert.Equal(t, []float64{1, -2, 0}, v.Float64s())
}

func TestGeometricMean(t *testing.T) {
	g, err := mustValues(t, []float64{1, 2, 4, 8}).GeometricMean()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(8), g, 1e-12)

	for _, input := range [][]float64{{1, 0, 2}, {1, -3}} {
		_, err := mustValues(t, input).GeometricMean()
		require.ErrorIs(t, err, ErrNonPositiveElement)
	}
}

func TestPNorm(t *testing.T) {
	v := mustValues(t, []float64{3, -4})

	n, err := v.PNorm(1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, n)

	n, err = v.PNorm(2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, n)

	for _, p := range []float64{0, 1.5, 3, math.Inf(1), math.NaN()} {
		_, err := v.PNorm(p)
		var pe *ErrInvalidP
		require.ErrorAs(t, err, &pe)
		if !math.IsNaN(p) {
			assert.Equal(t, p, pe.P)
		}
	}
}

func TestModality(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		kind   ModalityKind
		values []float64
	}{
		{"Distinct", []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, Nullimodal, nil},
		{"Constant", []float64{1, 1, 1, 1, 1}, Unimodal, []float64{1}},
		{"Bimodal", []float64{0, 1, 2, 1, 2, 1, 2, 1, 2, 3}, Bimodal, []float64{1, 2}},
		{"FirstOccurrenceOrder", []float64{3, 1, 2, 2, 1, 3}, Multimodal, []float64{3, 1, 2}},
		{"SignedZero", []float64{0, math.Copysign(0, -1), 1}, Unimodal, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustValues(t, tt.input).Modality()
			assert.Equal(t, tt.kind, m.Kind)
			assert.Equal(t, tt.values, m.Values)
		})
	}

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "nullimodal", Modality{Kind: Nullimodal}.String())
		assert.Equal(t, "bimodal[1 2]", Modality{Kind: Bimodal, Values: []float64{1, 2}}.String())
	})
}
