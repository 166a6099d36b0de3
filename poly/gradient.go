package poly

import (
	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/core/parallel"
	"github.com/polyuq/polyuq/pkg/errors"
)

// PolynomialGradient evaluates the partial derivative of every basis term
// with respect to each input dimension, at a set of canonical-domain
// points. The result holds one m x n matrix per dimension; matrix v is
// the term-wise derivative in direction v, built by the product rule:
// the univariate derivative table replaces the value table in dimension v
// only. Derivatives are taken with respect to the canonical coordinates.
// The one-dimensional shortcut returns derivative rows, consistent with
// the multivariate product rule.
func (p *Poly) PolynomialGradient(points mat.Matrix) ([]*mat.Dense, error) {
	n, d := points.Dims()
	if d != p.Dimensions() {
		return nil, errors.NewDimensionError("Poly.PolynomialGradient", p.Dimensions(), d, 1)
	}
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Poly.PolynomialGradient")
	}

	maxDegrees := p.basis.MaxDegrees()
	values := make([]*mat.Dense, d)
	derivs := make([]*mat.Dense, d)
	col := make([]float64, n)
	for k := 0; k < d; k++ {
		for i := 0; i < n; i++ {
			col[i] = points.At(i, k)
		}
		v, dv, err := p.params[k].OrthoPoly(col, maxDegrees[k])
		if err != nil {
			return nil, err
		}
		values[k], derivs[k] = v, dv
	}

	m := p.Terms()

	if d == 1 {
		out := mat.NewDense(m, n, nil)
		for i := 0; i < m; i++ {
			degree := p.basis.Index(i, 0)
			for j := 0; j < n; j++ {
				out.Set(i, j, derivs[0].At(degree, j))
			}
		}
		return []*mat.Dense{out}, nil
	}

	grads := make([]*mat.Dense, d)
	for v := 0; v < d; v++ {
		out := mat.NewDense(m, n, nil)
		parallel.ParallelizeWithThreshold(m, parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				for j := 0; j < n; j++ {
					prod := 1.0
					for k := 0; k < d; k++ {
						degree := p.basis.Index(i, k)
						if k == v {
							prod *= derivs[k].At(degree, j)
						} else {
							prod *= values[k].At(degree, j)
						}
					}
					out.Set(i, j, prod)
				}
			}
		})
		grads[v] = out
	}
	return grads, nil
}
