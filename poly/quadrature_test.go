package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyuq/polyuq/param"
	"github.com/polyuq/polyuq/pkg/errors"
)

func TestParseRule(t *testing.T) {
	cases := []struct {
		name string
		want Rule
	}{
		{"tensor-grid", TensorGrid},
		{"Tensor Grid", TensorGrid},
		{" TENSOR-GRID ", TensorGrid},
		{"monte-carlo", MonteCarlo},
		{"qmc", MonteCarlo},
	}
	for _, tc := range cases {
		got, err := ParseRule(tc.name)
		assert.NoError(t, err, "ParseRule(%q)", tc.name)
		assert.Equal(t, tc.want, got, "ParseRule(%q)", tc.name)
	}

	_, err := ParseRule("sparse-grid")
	var optErr *errors.UnsupportedOptionError
	require.True(t, errors.As(err, &optErr), "unknown rule: got %v", err)
	assert.Equal(t, "sparse-grid", optErr.Option)
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "tensor-grid", TensorGrid.String())
	assert.Equal(t, "monte-carlo", MonteCarlo.String())
	assert.Equal(t, "rule(42)", Rule(42).String())
}

func TestQuadratureRuleAutoUsesDoubledTensorGrid(t *testing.T) {
	surrogate := uniformPoly(t, []int{2, 2})

	points, weights, err := surrogate.QuadratureRule(Auto)
	require.NoError(t, err)

	rows, cols := points.Dims()
	assert.Equal(t, 25, rows, "order 2 doubles to 5 points per dimension")
	assert.Equal(t, 2, cols)
	require.Equal(t, 25, weights.Len())

	var sum, second, cross float64
	for j := 0; j < rows; j++ {
		w := weights.AtVec(j)
		sum += w
		second += w * points.At(j, 0) * points.At(j, 0)
		cross += w * points.At(j, 0) * points.At(j, 1)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.InDelta(t, 1.0/3, second, 1e-12, "rule must integrate x^2 exactly")
	assert.InDelta(t, 0.0, cross, 1e-12)
}

func TestQuadratureRuleAutoBelowDimensionBoundary(t *testing.T) {
	surrogate := uniformPoly(t, []int{1, 1, 1, 1, 1, 1, 1})

	points, _, err := surrogate.QuadratureRule(Auto)
	require.NoError(t, err)

	rows, cols := points.Dims()
	assert.Equal(t, 2187, rows, "3^7 doubled-order tensor points")
	assert.Equal(t, 7, cols)
}

func TestQuadratureRuleAutoSwitchesToMonteCarlo(t *testing.T) {
	surrogate := uniformPoly(t, []int{1, 1, 1, 1, 1, 1, 1, 1})

	points, weights, err := surrogate.QuadratureRule(Auto)
	require.NoError(t, err)

	rows, cols := points.Dims()
	assert.Equal(t, DefaultMonteCarloSamples, rows, "eight dimensions take the Monte Carlo branch")
	assert.Equal(t, 8, cols)

	var sum float64
	for j := 0; j < weights.Len(); j++ {
		sum += weights.AtVec(j)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestQuadratureRuleUnknownMode(t *testing.T) {
	surrogate := uniformPoly(t, []int{1})

	_, _, err := surrogate.QuadratureRule(Rule(42))
	var optErr *errors.UnsupportedOptionError
	assert.True(t, errors.As(err, &optErr), "unknown mode: got %v", err)
}

func TestTensorGridRuleDefaultsToParameterOrders(t *testing.T) {
	surrogate := uniformPoly(t, []int{1})

	points, weights, err := surrogate.TensorGridRule(nil)
	require.NoError(t, err)

	rows, _ := points.Dims()
	require.Equal(t, 2, rows)
	invSqrt3 := 1 / math.Sqrt(3)
	assert.InDelta(t, -invSqrt3, points.At(0, 0), 1e-12)
	assert.InDelta(t, invSqrt3, points.At(1, 0), 1e-12)
	assert.InDelta(t, 0.5, weights.AtVec(0), 1e-12)
	assert.InDelta(t, 0.5, weights.AtVec(1), 1e-12)
}

func TestTensorGridRuleExplicitOrders(t *testing.T) {
	surrogate := uniformPoly(t, []int{1})

	points, weights, err := surrogate.TensorGridRule([]int{2})
	require.NoError(t, err)

	rows, _ := points.Dims()
	require.Equal(t, 3, rows)
	node := math.Sqrt(0.6)
	wantNodes := []float64{-node, 0, node}
	wantWeights := []float64{5.0 / 18, 8.0 / 18, 5.0 / 18}
	for j := range wantNodes {
		assert.InDelta(t, wantNodes[j], points.At(j, 0), 1e-12, "node %d", j)
		assert.InDelta(t, wantWeights[j], weights.AtVec(j), 1e-12, "weight %d", j)
	}
}

func TestTensorGridRulePhysicalDomain(t *testing.T) {
	uniform := mustUniform(t, param.WithOrder(1), param.WithBounds(0, 10))
	b := mustTotalOrder(t, []int{1})
	surrogate, err := New([]*param.Parameter{uniform}, b)
	require.NoError(t, err)

	points, _, err := surrogate.TensorGridRule(nil)
	require.NoError(t, err)

	half := 5 / math.Sqrt(3)
	assert.InDelta(t, 5-half, points.At(0, 0), 1e-12)
	assert.InDelta(t, 5+half, points.At(1, 0), 1e-12)
}

func TestTensorGridRuleOrdersLastDimensionFastest(t *testing.T) {
	surrogate := uniformPoly(t, []int{1, 1})

	points, _, err := surrogate.TensorGridRule(nil)
	require.NoError(t, err)

	x := 1 / math.Sqrt(3)
	want := [][]float64{
		{-x, -x},
		{-x, x},
		{x, -x},
		{x, x},
	}
	for i, row := range want {
		for k, w := range row {
			assert.InDelta(t, w, points.At(i, k), 1e-12, "row %d column %d", i, k)
		}
	}
}

func TestTensorGridRuleValidation(t *testing.T) {
	surrogate := uniformPoly(t, []int{1, 1})

	var dimErr *errors.DimensionError
	_, _, err := surrogate.TensorGridRule([]int{1})
	assert.True(t, errors.As(err, &dimErr), "length mismatch: got %v", err)

	var validationErr *errors.ValidationError
	_, _, err = surrogate.TensorGridRule([]int{1, -1})
	assert.True(t, errors.As(err, &validationErr), "negative order: got %v", err)
}

func TestMonteCarloRuleSamplesInsideSupport(t *testing.T) {
	uniform := mustUniform(t, param.WithOrder(1), param.WithBounds(2, 4))
	b := mustTotalOrder(t, []int{1})
	surrogate, err := New([]*param.Parameter{uniform}, b)
	require.NoError(t, err)

	const n = 512
	points, weights, err := surrogate.MonteCarloRule(n)
	require.NoError(t, err)

	rows, cols := points.Dims()
	require.Equal(t, n, rows)
	require.Equal(t, 1, cols)

	var sum float64
	for i := 0; i < n; i++ {
		x := points.At(i, 0)
		if x < 2 || x > 4 {
			t.Fatalf("sample %d = %v outside [2, 4]", i, x)
		}
		sum += weights.AtVec(i)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.InDelta(t, 1.0/n, weights.AtVec(0), 1e-15)
}

func TestMonteCarloRuleRejectsNonPositiveCount(t *testing.T) {
	surrogate := uniformPoly(t, []int{1})

	var valueErr *errors.ValueError
	_, _, err := surrogate.MonteCarloRule(0)
	assert.True(t, errors.As(err, &valueErr), "zero samples: got %v", err)
}

func TestTensorPointCount(t *testing.T) {
	assert.Equal(t, int64(20), tensorPointCount([]int{3, 4}))
	assert.Equal(t, tensorGridPointLimit, tensorPointCount([]int{1<<20 - 1}))

	// Past the advisory limit the count is a lower bound; it must still
	// register as over the limit without overflowing.
	over := tensorPointCount([]int{1 << 21, 1 << 21, 1 << 21})
	assert.Greater(t, over, tensorGridPointLimit)
}

func TestTensorCombineOrderingAndWeights(t *testing.T) {
	points, weights := tensorCombine(
		[][]float64{{0, 1}, {10, 20, 30}},
		[][]float64{{0.5, 0.5}, {0.2, 0.3, 0.5}},
	)

	wantRows := [][]float64{
		{0, 10}, {0, 20}, {0, 30},
		{1, 10}, {1, 20}, {1, 30},
	}
	wantWeights := []float64{0.1, 0.15, 0.25, 0.1, 0.15, 0.25}
	for i, row := range wantRows {
		for k, w := range row {
			assert.Equal(t, w, points.At(i, k), "row %d column %d", i, k)
		}
		assert.InDelta(t, wantWeights[i], weights.AtVec(i), 1e-15, "weight %d", i)
	}
}
