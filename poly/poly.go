// Package poly implements the multivariate polynomial surrogate core. A
// Poly couples a list of param.Parameter marginals with a basis.Basis
// multi-index set and evaluates the resulting tensor-product expansion:
// basis-matrix assembly, per-dimension gradients, tensor-grid and Monte
// Carlo quadrature rules, and fitted-surrogate predictions once an
// external fitting routine has supplied coefficients through
// SetCoefficients.
//
// Query points live in the physical domain of the parameters; evaluation
// internally routes them through ScaleInputs onto each family's canonical
// domain. Quadrature rules are returned in the physical domain so their
// nodes can be fed straight back into surrogate evaluation.
package poly

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/basis"
	"github.com/polyuq/polyuq/core/model"
	"github.com/polyuq/polyuq/param"
	"github.com/polyuq/polyuq/pkg/errors"
)

// Row/term loops switch to the chunked workers above this size.
const parallelThreshold = 1000

// Poly satisfies the evaluation contracts in core/model.
var (
	_ model.Evaluator         = (*Poly)(nil)
	_ model.GradientEvaluator = (*Poly)(nil)
	_ model.InputScaler       = (*Poly)(nil)
	_ model.Surrogate         = (*Poly)(nil)
)

// Poly is a multivariate polynomial surrogate: parameters, a basis and,
// once fitted, a coefficient vector. The zero coefficient state rejects
// every Fit Evaluator call with a NotFittedError.
type Poly struct {
	model.FitState

	params       []*param.Parameter
	basis        *basis.Basis
	orders       []int
	coefficients *mat.VecDense
	designMatrix *mat.Dense
}

// New constructs an unfitted surrogate over the given parameters and
// basis. The basis must have one column per parameter, and its columnwise
// maximum degree must stay within each parameter's order; the basis is
// never mutated.
func New(params []*param.Parameter, b *basis.Basis) (*Poly, error) {
	if b == nil {
		return nil, errors.NewValueError("poly.New", "basis must not be nil")
	}
	if len(params) != b.Dimensions() {
		return nil, errors.NewDimensionError("poly.New", b.Dimensions(), len(params), 1)
	}

	orders := make([]int, len(params))
	maxDegrees := b.MaxDegrees()
	for k, p := range params {
		if p == nil {
			return nil, errors.NewValidationError("params",
				fmt.Sprintf("parameter %d is nil", k), nil)
		}
		if maxDegrees[k] > p.Order() {
			return nil, errors.NewValidationError("basis",
				fmt.Sprintf("max degree %d in dimension %d exceeds the parameter order %d",
					maxDegrees[k], k, p.Order()), maxDegrees[k])
		}
		orders[k] = p.Order()
	}

	return &Poly{
		params: params,
		basis:  b,
		orders: orders,
	}, nil
}

// SetCoefficients installs a fitted coefficient vector. The length must
// equal the basis cardinality. Fitting routines call this once per pass;
// a later call replaces the previous fit.
func (p *Poly) SetCoefficients(c []float64) error {
	if len(c) != p.Terms() {
		return errors.NewDimensionError("Poly.SetCoefficients", p.Terms(), len(c), 0)
	}
	if err := errors.CheckNumericalStability("Poly.SetCoefficients", c); err != nil {
		return err
	}
	p.coefficients = mat.NewVecDense(len(c), append([]float64(nil), c...))
	p.SetFitted()
	return nil
}

// Coefficients returns a copy of the fitted coefficient vector, or nil
// before fitting.
func (p *Poly) Coefficients() *mat.VecDense {
	if p.coefficients == nil {
		return nil
	}
	out := mat.NewVecDense(p.coefficients.Len(), nil)
	out.CopyVec(p.coefficients)
	return out
}

// SetDesignMatrix stores the design matrix produced by a fitting routine.
// The column count must equal the basis cardinality. The matrix is
// retained, not copied.
func (p *Poly) SetDesignMatrix(design *mat.Dense) error {
	if design != nil {
		if _, cols := design.Dims(); cols != p.Terms() {
			return errors.NewDimensionError("Poly.SetDesignMatrix", p.Terms(), cols, 1)
		}
	}
	p.designMatrix = design
	return nil
}

// DesignMatrix returns the stored design matrix, or nil when no fitting
// routine has supplied one.
func (p *Poly) DesignMatrix() *mat.Dense { return p.designMatrix }

// Clone returns a fresh unfitted surrogate sharing this one's parameters
// and basis. Coefficients and the design matrix do not carry over, so
// fitting routines can iterate on the clone without touching a
// previously fitted instance.
func (p *Poly) Clone() *Poly {
	return &Poly{
		params: p.params,
		basis:  p.basis,
		orders: append([]int(nil), p.orders...),
	}
}

// Dimensions returns the number of input dimensions.
func (p *Poly) Dimensions() int { return len(p.params) }

// Terms returns the number of expansion terms, the basis cardinality.
func (p *Poly) Terms() int { return p.basis.Cardinality() }

// Parameters returns the parameter list. The slice is shared, not copied;
// parameters are immutable once constructed.
func (p *Poly) Parameters() []*param.Parameter { return p.params }

// Basis returns the multi-index set.
func (p *Poly) Basis() *basis.Basis { return p.basis }

// Orders returns the per-dimension parameter orders.
func (p *Poly) Orders() []int { return append([]int(nil), p.orders...) }
