package poly

import (
	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/core/parallel"
	"github.com/polyuq/polyuq/pkg/errors"
)

// ScaleInputs maps an n x d matrix of physical-domain points onto the
// canonical domain, one column per dimension: uniform columns to [-1, 1],
// beta columns to [0, 1], gaussian columns to the standardized variable.
// The input is left untouched.
func (p *Poly) ScaleInputs(X mat.Matrix) (*mat.Dense, error) {
	n, d := X.Dims()
	if d != p.Dimensions() {
		return nil, errors.NewDimensionError("Poly.ScaleInputs", p.Dimensions(), d, 1)
	}
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Poly.ScaleInputs")
	}

	out := mat.NewDense(n, d, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for k := 0; k < d; k++ {
				out.Set(i, k, p.params[k].ToCanonical(X.At(i, k)))
			}
		}
	})
	return out, nil
}

// unscalePoints maps canonical-domain rows back to the physical domain in
// place. The quadrature builder uses it so every returned rule lives in
// the same domain as user query points.
func (p *Poly) unscalePoints(points *mat.Dense) {
	n, d := points.Dims()
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for k := 0; k < d; k++ {
				points.Set(i, k, p.params[k].FromCanonical(points.At(i, k)))
			}
		}
	})
}
