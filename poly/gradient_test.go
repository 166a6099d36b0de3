package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/pkg/errors"
)

func TestPolynomialGradientProductRule(t *testing.T) {
	surrogate := uniformPoly(t, []int{2, 2})

	grads, err := surrogate.PolynomialGradient(points2D(0.3, -0.4))
	require.NoError(t, err)
	require.Len(t, grads, 2)

	// d/dx P2 = 3x; cross term (1,1) differentiates one factor and keeps
	// the other.
	wantDir0 := []float64{0, 1, 0, 0.9, -0.4, 0}
	wantDir1 := []float64{0, 0, 1, 0, 0.3, -1.2}
	for i := range wantDir0 {
		assert.InDelta(t, wantDir0[i], grads[0].At(i, 0), 1e-12, "direction 0 term %d", i)
		assert.InDelta(t, wantDir1[i], grads[1].At(i, 0), 1e-12, "direction 1 term %d", i)
	}
}

func TestPolynomialGradientOneDimension(t *testing.T) {
	surrogate := uniformPoly(t, []int{2})

	grads, err := surrogate.PolynomialGradient(mat.NewDense(2, 1, []float64{0.5, -1}))
	require.NoError(t, err)
	require.Len(t, grads, 1)

	// One dimension still yields derivative rows, not value rows.
	want := [][]float64{
		{0, 0},
		{1, 1},
		{1.5, -3},
	}
	for i, row := range want {
		for j, w := range row {
			assert.InDelta(t, w, grads[0].At(i, j), 1e-12, "term %d point %d", i, j)
		}
	}
}

func TestPolynomialGradientMatchesFiniteDifferences(t *testing.T) {
	surrogate := uniformPoly(t, []int{3, 3})

	queries := [][]float64{{0.2, -0.3}, {-0.7, 0.6}}
	const h = 1e-6

	for _, q := range queries {
		grads, err := surrogate.PolynomialGradient(mat.NewDense(1, 2, append([]float64(nil), q...)))
		require.NoError(t, err)

		for v := 0; v < 2; v++ {
			hi := append([]float64(nil), q...)
			lo := append([]float64(nil), q...)
			hi[v] += h
			lo[v] -= h

			valsHi, err := surrogate.Polynomial(mat.NewDense(1, 2, hi))
			require.NoError(t, err)
			valsLo, err := surrogate.Polynomial(mat.NewDense(1, 2, lo))
			require.NoError(t, err)

			for i := 0; i < surrogate.Terms(); i++ {
				fd := (valsHi.At(i, 0) - valsLo.At(i, 0)) / (2 * h)
				assert.InDelta(t, fd, grads[v].At(i, 0), 1e-8,
					"term %d direction %d at %v", i, v, q)
			}
		}
	}
}

func TestPolynomialGradientValidation(t *testing.T) {
	surrogate := uniformPoly(t, []int{2, 2})

	var dimErr *errors.DimensionError
	_, err := surrogate.PolynomialGradient(mat.NewDense(1, 3, nil))
	assert.True(t, errors.As(err, &dimErr), "column mismatch: got %v", err)

	_, err = surrogate.PolynomialGradient(emptyMatrix{cols: 2})
	assert.True(t, errors.Is(err, errors.ErrEmptyData), "empty input: got %v", err)
}
