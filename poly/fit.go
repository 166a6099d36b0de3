package poly

import (
	"gonum.org/v1/gonum/mat"
)

// EvaluateFit predicts the surrogate at physical-domain query points, one
// prediction per row of X. It fails with a NotFittedError until
// SetCoefficients has run.
func (p *Poly) EvaluateFit(X mat.Matrix) (*mat.VecDense, error) {
	if err := p.RequireFitted("Poly", "EvaluateFit"); err != nil {
		return nil, err
	}

	scaled, err := p.ScaleInputs(X)
	if err != nil {
		return nil, err
	}
	basisVals, err := p.Polynomial(scaled)
	if err != nil {
		return nil, err
	}

	n, _ := scaled.Dims()
	out := mat.NewVecDense(n, nil)
	out.MulVec(basisVals.T(), p.coefficients)
	return out, nil
}

// EvaluateGradFit evaluates the surrogate's partial derivatives at
// physical-domain query points. The result is d x n: row v holds the
// derivative in direction v at every query point, with respect to the
// canonical coordinates. It fails with a NotFittedError until
// SetCoefficients has run.
func (p *Poly) EvaluateGradFit(X mat.Matrix) (*mat.Dense, error) {
	if err := p.RequireFitted("Poly", "EvaluateGradFit"); err != nil {
		return nil, err
	}

	scaled, err := p.ScaleInputs(X)
	if err != nil {
		return nil, err
	}
	grads, err := p.PolynomialGradient(scaled)
	if err != nil {
		return nil, err
	}

	n, _ := scaled.Dims()
	out := mat.NewDense(p.Dimensions(), n, nil)
	var dir mat.VecDense
	for v, grad := range grads {
		dir.MulVec(grad.T(), p.coefficients)
		for j := 0; j < n; j++ {
			out.Set(v, j, dir.AtVec(j))
		}
	}
	return out, nil
}

// FitFunction returns the prediction routine bound to this surrogate, for
// callers that want to hand the fitted model around as a plain function.
// It fails with a NotFittedError until SetCoefficients has run.
func (p *Poly) FitFunction() (func(mat.Matrix) (*mat.VecDense, error), error) {
	if err := p.RequireFitted("Poly", "FitFunction"); err != nil {
		return nil, err
	}
	return p.EvaluateFit, nil
}
