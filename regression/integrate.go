package regression

import (
	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/pkg/errors"
	"github.com/polyuq/polyuq/pkg/log"
	"github.com/polyuq/polyuq/poly"
)

// Integrate fits the surrogate by pseudo-spectral projection: each
// coefficient is the quadrature estimate of the model's projection onto
// its basis term, divided by the term's squared norm. f is called once
// per quadrature point with a physical-domain coordinate slice; the slice
// is reused between calls, so f must copy it if it retains it.
//
// With the default Auto rule the doubled-order tensor grid integrates
// products of basis terms exactly, so a model that already lies in the
// basis is recovered to rounding error.
func Integrate(surrogate *poly.Poly, f func(x []float64) float64, opts ...Option) (err error) {
	defer errors.Recover(&err, "regression.Integrate")

	cfg := config{rule: poly.Auto, conditionThreshold: defaultConditionThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}
	if f == nil {
		return errors.NewValueError("regression.Integrate", "model function must not be nil")
	}

	var (
		points  *mat.Dense
		weights *mat.VecDense
	)
	if cfg.tensorOrders != nil {
		points, weights, err = surrogate.TensorGridRule(cfg.tensorOrders)
	} else {
		points, weights, err = surrogate.QuadratureRule(cfg.rule)
	}
	if err != nil {
		return err
	}

	n, d := points.Dims()
	modelVals := make([]float64, n)
	x := make([]float64, d)
	for j := 0; j < n; j++ {
		mat.Row(x, j, points)
		modelVals[j] = f(x)
	}
	if err := errors.CheckNumericalStability("regression.Integrate", modelVals); err != nil {
		return err
	}

	scaled, err := surrogate.ScaleInputs(points)
	if err != nil {
		return err
	}
	evals, err := surrogate.Polynomial(scaled)
	if err != nil {
		return err
	}

	b := surrogate.Basis()
	params := surrogate.Parameters()
	maxDegrees := b.MaxDegrees()
	univariate := make([][]float64, d)
	for k, marginal := range params {
		norms, err := marginal.SquaredNorms(maxDegrees[k])
		if err != nil {
			return err
		}
		univariate[k] = norms
	}

	m := surrogate.Terms()
	coefficients := make([]float64, m)
	for i := 0; i < m; i++ {
		norm := 1.0
		for k := 0; k < d; k++ {
			norm *= univariate[k][b.Index(i, k)]
		}
		var projection float64
		for j := 0; j < n; j++ {
			projection += weights.AtVec(j) * modelVals[j] * evals.At(i, j)
		}
		coefficients[i] = projection / norm
	}

	var design mat.Dense
	design.CloneFrom(evals.T())
	if err := surrogate.SetDesignMatrix(&design); err != nil {
		return err
	}
	if err := surrogate.SetCoefficients(coefficients); err != nil {
		return err
	}

	log.GetLoggerWithName("regression").Debug("fitted surrogate by projection",
		log.OperationKey, log.OperationFit,
		log.QuadraturePointsKey, n,
		log.BasisTermsKey, m,
	)
	return nil
}
