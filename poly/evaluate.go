package poly

import (
	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/core/parallel"
	"github.com/polyuq/polyuq/pkg/errors"
)

// Polynomial evaluates every basis term at a set of canonical-domain
// points. The input is n x d; the result is m x n with row i holding term
// i of the basis, in basis row order. Term values are products of the
// univariate polynomial values selected by the term's multi-index.
func (p *Poly) Polynomial(points mat.Matrix) (*mat.Dense, error) {
	n, d := points.Dims()
	if d != p.Dimensions() {
		return nil, errors.NewDimensionError("Poly.Polynomial", p.Dimensions(), d, 1)
	}
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Poly.Polynomial")
	}

	tables, err := p.univariateValues(points)
	if err != nil {
		return nil, err
	}

	m := p.Terms()
	out := mat.NewDense(m, n, nil)

	if d == 1 {
		// One dimension: each term is a single univariate value, so rows
		// map straight onto table rows without product accumulation.
		for i := 0; i < m; i++ {
			degree := p.basis.Index(i, 0)
			for j := 0; j < n; j++ {
				out.Set(i, j, tables[0].At(degree, j))
			}
		}
		return out, nil
	}

	parallel.ParallelizeWithThreshold(m, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < n; j++ {
				prod := 1.0
				for k := 0; k < d; k++ {
					prod *= tables[k].At(p.basis.Index(i, k), j)
				}
				out.Set(i, j, prod)
			}
		}
	})
	return out, nil
}

// univariateValues evaluates each dimension's polynomial family on its
// column of points, up to that dimension's maximum basis degree.
func (p *Poly) univariateValues(points mat.Matrix) ([]*mat.Dense, error) {
	n, d := points.Dims()
	maxDegrees := p.basis.MaxDegrees()

	tables := make([]*mat.Dense, d)
	col := make([]float64, n)
	for k := 0; k < d; k++ {
		for i := 0; i < n; i++ {
			col[i] = points.At(i, k)
		}
		vals, _, err := p.params[k].OrthoPoly(col, maxDegrees[k])
		if err != nil {
			return nil, err
		}
		tables[k] = vals
	}
	return tables, nil
}
