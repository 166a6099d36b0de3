package model

import (
	"gonum.org/v1/gonum/mat"
)

// Evaluator computes basis values over a set of points already mapped to
// the canonical domain. The result has one row per basis term and one
// column per point.
type Evaluator interface {
	Polynomial(points mat.Matrix) (*mat.Dense, error)
}

// GradientEvaluator computes per-dimension basis derivatives over a set of
// canonical points, one matrix per input dimension.
type GradientEvaluator interface {
	PolynomialGradient(points mat.Matrix) ([]*mat.Dense, error)
}

// InputScaler maps points from the physical input domain to the canonical
// domain of each dimension's polynomial family.
type InputScaler interface {
	ScaleInputs(X mat.Matrix) (*mat.Dense, error)
}

// Surrogate is the evaluation surface of a fitted model: predictions and
// derivative estimates at physical-domain query points. Methods return
// NotFittedError until coefficients have been set.
type Surrogate interface {
	EvaluateFit(X mat.Matrix) (*mat.VecDense, error)
	EvaluateGradFit(X mat.Matrix) (*mat.Dense, error)
}
