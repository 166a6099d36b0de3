// Package stats turns a fitted polynomial surrogate into summary
// statistics of its output distribution. It consumes the handoff tuple
// assembled by the core (coefficients, basis, parameters, quadrature
// nodes, weights and basis evaluations) and computes spectral moments,
// quadrature-based higher moments and Sobol' sensitivity indices. Nothing
// here re-evaluates the surrogate; the tuple carries everything needed.
package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/basis"
	"github.com/polyuq/polyuq/param"
	"github.com/polyuq/polyuq/pkg/errors"
)

// Statistics holds a fitted expansion together with a quadrature rule
// over its input distribution. Construct it with New; all methods are
// pure and safe for concurrent use.
type Statistics struct {
	coefficients *mat.VecDense
	basis        *basis.Basis
	params       []*param.Parameter
	points       *mat.Dense
	weights      *mat.VecDense
	evals        *mat.Dense

	norms       []float64 // per-term squared norms E[psi_i^2]
	predictions []float64 // surrogate values at the quadrature nodes
	zeroTerm    int       // row of the all-zero multi-index, -1 if absent
}

// New validates the handoff tuple and precomputes per-term squared norms.
// coefficients has one entry per basis term; points and evals come from
// the same rule, so evals is terms x nodes and weights has one entry per
// node.
func New(coefficients *mat.VecDense, b *basis.Basis, params []*param.Parameter,
	points *mat.Dense, weights *mat.VecDense, evals *mat.Dense) (*Statistics, error) {

	if coefficients == nil {
		return nil, errors.NewValueError("stats.New", "coefficient vector must not be nil")
	}
	if b == nil {
		return nil, errors.NewValueError("stats.New", "basis must not be nil")
	}
	if points == nil || weights == nil || evals == nil {
		return nil, errors.NewValueError("stats.New", "quadrature nodes, weights and evaluations must not be nil")
	}

	m := b.Cardinality()
	d := b.Dimensions()
	if coefficients.Len() != m {
		return nil, errors.NewDimensionError("stats.New", m, coefficients.Len(), 0)
	}
	if len(params) != d {
		return nil, errors.NewDimensionError("stats.New", d, len(params), 1)
	}

	n := weights.Len()
	pr, pc := points.Dims()
	if pr != n {
		return nil, errors.NewDimensionError("stats.New", n, pr, 0)
	}
	if pc != d {
		return nil, errors.NewDimensionError("stats.New", d, pc, 1)
	}
	er, ec := evals.Dims()
	if er != m {
		return nil, errors.NewDimensionError("stats.New", m, er, 0)
	}
	if ec != n {
		return nil, errors.NewDimensionError("stats.New", n, ec, 1)
	}

	norms, err := termNorms(b, params)
	if err != nil {
		return nil, err
	}

	var pred mat.VecDense
	pred.MulVec(evals.T(), coefficients)
	predictions := make([]float64, n)
	for j := 0; j < n; j++ {
		predictions[j] = pred.AtVec(j)
	}

	zeroTerm := -1
	for i := 0; i < m; i++ {
		allZero := true
		for k := 0; k < d; k++ {
			if b.Index(i, k) != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			zeroTerm = i
			break
		}
	}

	return &Statistics{
		coefficients: coefficients,
		basis:        b,
		params:       params,
		points:       points,
		weights:      weights,
		evals:        evals,
		norms:        norms,
		predictions:  predictions,
		zeroTerm:     zeroTerm,
	}, nil
}

// termNorms computes E[psi_i^2] for every basis term as the product of
// the univariate squared norms selected by the term's multi-index.
func termNorms(b *basis.Basis, params []*param.Parameter) ([]float64, error) {
	maxDegrees := b.MaxDegrees()
	univariate := make([][]float64, len(params))
	for k, p := range params {
		norms, err := p.SquaredNorms(maxDegrees[k])
		if err != nil {
			return nil, err
		}
		univariate[k] = norms
	}

	out := make([]float64, b.Cardinality())
	for i := range out {
		prod := 1.0
		for k := range params {
			prod *= univariate[k][b.Index(i, k)]
		}
		out[i] = prod
	}
	return out, nil
}

// Mean returns the spectral mean of the surrogate output: the coefficient
// of the all-zero multi-index, since every other term has zero
// expectation under the input measure.
func (s *Statistics) Mean() float64 {
	if s.zeroTerm < 0 {
		return 0
	}
	return s.coefficients.AtVec(s.zeroTerm)
}

// Variance returns the spectral variance: the squared-norm-weighted sum
// of the squared coefficients of every non-constant term.
func (s *Statistics) Variance() float64 {
	var v float64
	for i := 0; i < s.coefficients.Len(); i++ {
		if i == s.zeroTerm {
			continue
		}
		c := s.coefficients.AtVec(i)
		v += c * c * s.norms[i]
	}
	return v
}

// MeanAndVariance returns both spectral moments in one call.
func (s *Statistics) MeanAndVariance() (mean, variance float64) {
	return s.Mean(), s.Variance()
}

// Skewness returns the standardized third central moment, estimated from
// the weighted surrogate values at the quadrature nodes and centered on
// the spectral moments. A degenerate surrogate with zero variance reports
// zero skewness.
func (s *Statistics) Skewness() float64 {
	mean := s.Mean()
	sigma := math.Sqrt(s.Variance())

	var third float64
	for j, y := range s.predictions {
		dev := y - mean
		third += s.weights.AtVec(j) * dev * dev * dev
	}
	return errors.SafeDivide(third, sigma*sigma*sigma)
}

// Kurtosis returns the standardized fourth central moment, estimated from
// the weighted surrogate values at the quadrature nodes and centered on
// the spectral moments. A degenerate surrogate with zero variance reports
// zero kurtosis.
func (s *Statistics) Kurtosis() float64 {
	mean := s.Mean()
	variance := s.Variance()

	var fourth float64
	for j, y := range s.predictions {
		dev := y - mean
		fourth += s.weights.AtVec(j) * dev * dev * dev * dev
	}
	return errors.SafeDivide(fourth, variance*variance)
}

// FirstOrderSobol returns the first-order Sobol' index of every input
// dimension: the variance share of the terms that involve that dimension
// alone. Indices are clipped to [0, 1]; a zero-variance surrogate reports
// all zeros.
func (s *Statistics) FirstOrderSobol() []float64 {
	variance := s.Variance()
	d := s.basis.Dimensions()

	out := make([]float64, d)
	for k := 0; k < d; k++ {
		var share float64
		for i := 0; i < s.coefficients.Len(); i++ {
			if !s.touchesOnly(i, k) {
				continue
			}
			c := s.coefficients.AtVec(i)
			share += c * c * s.norms[i]
		}
		out[k] = errors.ClipValue(errors.SafeDivide(share, variance), 0, 1)
	}
	return out
}

// TotalSobol returns the total Sobol' index of every input dimension: the
// variance share of all terms that involve that dimension, including
// interactions. Indices are clipped to [0, 1]; a zero-variance surrogate
// reports all zeros.
func (s *Statistics) TotalSobol() []float64 {
	variance := s.Variance()
	d := s.basis.Dimensions()

	out := make([]float64, d)
	for k := 0; k < d; k++ {
		var share float64
		for i := 0; i < s.coefficients.Len(); i++ {
			if s.basis.Index(i, k) == 0 {
				continue
			}
			c := s.coefficients.AtVec(i)
			share += c * c * s.norms[i]
		}
		out[k] = errors.ClipValue(errors.SafeDivide(share, variance), 0, 1)
	}
	return out
}

// touchesOnly reports whether term i involves dimension k and no other.
func (s *Statistics) touchesOnly(i, k int) bool {
	if s.basis.Index(i, k) == 0 {
		return false
	}
	for j := 0; j < s.basis.Dimensions(); j++ {
		if j != k && s.basis.Index(i, j) != 0 {
			return false
		}
	}
	return true
}

// Points returns the quadrature nodes of the underlying rule, in the
// physical domain. The matrix is shared; treat it as read-only.
func (s *Statistics) Points() *mat.Dense { return s.points }

// Weights returns the quadrature weights of the underlying rule. The
// vector is shared; treat it as read-only.
func (s *Statistics) Weights() *mat.VecDense { return s.weights }
