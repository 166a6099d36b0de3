package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyuq/polyuq/basis"
	"github.com/polyuq/polyuq/param"
	"github.com/polyuq/polyuq/pkg/errors"
	"github.com/polyuq/polyuq/poly"
)

func TestIntegrateRecoversPolynomial(t *testing.T) {
	surrogate := canonicalSurrogate(t, []int{2, 2})

	model := func(x []float64) float64 {
		return 2 + 0.5*x[0] - x[1] + 0.3*(3*x[0]*x[0]-1)/2
	}

	require.NoError(t, Integrate(surrogate, model))
	require.True(t, surrogate.IsFitted())

	coeffs := surrogate.Coefficients()
	want := []float64{2, 0.5, -1, 0.3, 0, 0}
	for i, w := range want {
		assert.InDelta(t, w, coeffs.AtVec(i), 1e-10, "coefficient %d", i)
	}

	// Design matrix: one row per node of the doubled 5x5 grid.
	design := surrogate.DesignMatrix()
	require.NotNil(t, design)
	rows, cols := design.Dims()
	assert.Equal(t, 25, rows)
	assert.Equal(t, surrogate.Terms(), cols)
}

func TestIntegrateOnPhysicalDomain(t *testing.T) {
	uniform, err := param.New(param.Uniform, param.WithOrder(1), param.WithBounds(0, 10))
	require.NoError(t, err)
	b, err := basis.TotalOrder([]int{1})
	require.NoError(t, err)
	surrogate, err := poly.New([]*param.Parameter{uniform}, b)
	require.NoError(t, err)

	identity := func(x []float64) float64 { return x[0] }
	require.NoError(t, Integrate(surrogate, identity))

	// x = 5 + 5 P1(s(x)) on [0, 10].
	coeffs := surrogate.Coefficients()
	assert.InDelta(t, 5.0, coeffs.AtVec(0), 1e-10)
	assert.InDelta(t, 5.0, coeffs.AtVec(1), 1e-10)
}

func TestIntegrateGaussianSquare(t *testing.T) {
	gaussian, err := param.New(param.Gaussian, param.WithOrder(2))
	require.NoError(t, err)
	b, err := basis.TotalOrder([]int{2})
	require.NoError(t, err)
	surrogate, err := poly.New([]*param.Parameter{gaussian}, b)
	require.NoError(t, err)

	square := func(x []float64) float64 { return x[0] * x[0] }
	require.NoError(t, Integrate(surrogate, square))

	// x^2 = He2(x) + 1 for a standard normal input.
	coeffs := surrogate.Coefficients()
	assert.InDelta(t, 1.0, coeffs.AtVec(0), 1e-10)
	assert.InDelta(t, 0.0, coeffs.AtVec(1), 1e-10)
	assert.InDelta(t, 1.0, coeffs.AtVec(2), 1e-10)
}

func TestIntegrateWithExplicitRule(t *testing.T) {
	surrogate := canonicalSurrogate(t, []int{2})
	model := func(x []float64) float64 { return 1 + x[0] + (3*x[0]*x[0]-1)/2 }

	require.NoError(t, Integrate(surrogate, model, WithRule(poly.TensorGrid)))

	coeffs := surrogate.Coefficients()
	want := []float64{1, 1, 1}
	for i, w := range want {
		assert.InDelta(t, w, coeffs.AtVec(i), 1e-10, "coefficient %d", i)
	}
}

func TestIntegrateWithTensorOrders(t *testing.T) {
	surrogate := canonicalSurrogate(t, []int{2})
	model := func(x []float64) float64 { return (3*x[0]*x[0] - 1) / 2 }

	require.NoError(t, Integrate(surrogate, model, WithTensorOrders([]int{6})))

	coeffs := surrogate.Coefficients()
	assert.InDelta(t, 0.0, coeffs.AtVec(0), 1e-12)
	assert.InDelta(t, 0.0, coeffs.AtVec(1), 1e-12)
	assert.InDelta(t, 1.0, coeffs.AtVec(2), 1e-12)
}

func TestIntegrateRejectsNilModel(t *testing.T) {
	surrogate := canonicalSurrogate(t, []int{1})

	var valueErr *errors.ValueError
	err := Integrate(surrogate, nil)
	assert.True(t, errors.As(err, &valueErr), "nil model: got %v", err)
}
