// Package regression computes surrogate coefficients. LeastSquares solves
// the linear system assembled from basis evaluations at training points,
// optionally weighted per sample; Integrate projects a model function onto
// the basis with a quadrature rule. Both install the result on the given
// surrogate through SetCoefficients, so the surrogate passed in comes out
// fitted. Use Poly.Clone first to keep an already fitted instance intact.
package regression

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/pkg/errors"
	"github.com/polyuq/polyuq/pkg/log"
	"github.com/polyuq/polyuq/poly"
)

// defaultConditionThreshold is the design-matrix condition number above
// which LeastSquares emits a ConditioningWarning.
const defaultConditionThreshold = 1e8

type config struct {
	weights            []float64
	rule               poly.Rule
	tensorOrders       []int
	conditionThreshold float64
}

// Option configures a fitting routine.
type Option func(*config)

// WithWeights attaches one nonnegative least-squares weight per training
// sample. LeastSquares scales each design row and observation by the
// square root of its weight.
func WithWeights(weights []float64) Option {
	return func(cfg *config) {
		cfg.weights = weights
	}
}

// WithRule selects the quadrature construction mode used by Integrate.
// The default is poly.Auto.
func WithRule(rule poly.Rule) Option {
	return func(cfg *config) {
		cfg.rule = rule
	}
}

// WithTensorOrders forces Integrate onto a tensor grid with the given
// per-dimension orders, overriding WithRule.
func WithTensorOrders(orders []int) Option {
	return func(cfg *config) {
		cfg.tensorOrders = orders
	}
}

// WithConditionThreshold overrides the condition number above which
// LeastSquares emits a ConditioningWarning.
func WithConditionThreshold(threshold float64) Option {
	return func(cfg *config) {
		cfg.conditionThreshold = threshold
	}
}

// LeastSquares fits the surrogate's coefficients to observations y at
// training points X, one row per sample. The design matrix is the basis
// evaluated at the scaled points; the minimum-residual solution comes
// from a QR factorization. The design matrix is stored on the surrogate
// for diagnostics. At least as many samples as basis terms are required.
func LeastSquares(surrogate *poly.Poly, X mat.Matrix, y []float64, opts ...Option) (err error) {
	defer errors.Recover(&err, "regression.LeastSquares")

	start := time.Now()
	cfg := config{rule: poly.Auto, conditionThreshold: defaultConditionThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	n, _ := X.Dims()
	if len(y) != n {
		return errors.NewDimensionError("regression.LeastSquares", n, len(y), 0)
	}
	m := surrogate.Terms()
	if n < m {
		return errors.NewValidationError("y",
			fmt.Sprintf("%d samples cannot determine %d coefficients", n, m), n)
	}
	if cfg.weights != nil {
		if len(cfg.weights) != n {
			return errors.NewDimensionError("regression.LeastSquares", n, len(cfg.weights), 0)
		}
		for i, w := range cfg.weights {
			if w < 0 {
				return errors.NewValidationError("weights",
					fmt.Sprintf("weight %d is negative", i), w)
			}
		}
	}
	if err := errors.CheckNumericalStability("regression.LeastSquares", y); err != nil {
		return err
	}

	scaled, err := surrogate.ScaleInputs(X)
	if err != nil {
		return err
	}
	basisVals, err := surrogate.Polynomial(scaled)
	if err != nil {
		return err
	}

	var design mat.Dense
	design.CloneFrom(basisVals.T())
	if err := errors.CheckMatrix("regression.LeastSquares", &design, n, m); err != nil {
		return err
	}

	solveA := &design
	rhs := mat.NewVecDense(n, append([]float64(nil), y...))
	if cfg.weights != nil {
		var weighted mat.Dense
		weighted.CloneFrom(&design)
		for i := 0; i < n; i++ {
			sw := math.Sqrt(cfg.weights[i])
			row := weighted.RawRowView(i)
			for j := range row {
				row[j] *= sw
			}
			rhs.SetVec(i, rhs.AtVec(i)*sw)
		}
		solveA = &weighted
	}

	condition := mat.Cond(solveA, 2)
	if condition > cfg.conditionThreshold {
		errors.Warn(errors.NewConditioningWarning("regression.LeastSquares",
			condition, cfg.conditionThreshold))
	}

	coefficients := mat.NewVecDense(m, nil)
	if err := coefficients.SolveVec(solveA, rhs); err != nil {
		var conditioned mat.Condition
		if !errors.As(err, &conditioned) {
			return errors.Wrap(errors.ErrSingularMatrix, "regression.LeastSquares")
		}
	}
	if err := errors.CheckNumericalStability("regression.LeastSquares",
		coefficients.RawVector().Data); err != nil {
		return err
	}

	if err := surrogate.SetDesignMatrix(&design); err != nil {
		return err
	}
	if err := surrogate.SetCoefficients(coefficients.RawVector().Data); err != nil {
		return err
	}

	log.GetLoggerWithName("regression").Debug("fitted surrogate by least squares",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, n,
		log.BasisTermsKey, m,
		log.ConditionNumberKey, condition,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}
