package poly

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/pkg/errors"
	"github.com/polyuq/polyuq/pkg/log"
)

// Rule selects a quadrature construction mode.
type Rule int

const (
	// Auto picks a tensor grid below eight dimensions and Monte Carlo at
	// eight and above.
	Auto Rule = iota
	// TensorGrid builds the exact Kronecker-product Gauss rule.
	TensorGrid
	// MonteCarlo draws independent samples with uniform weights.
	MonteCarlo
)

func (r Rule) String() string {
	switch r {
	case Auto:
		return "auto"
	case TensorGrid:
		return "tensor-grid"
	case MonteCarlo:
		return "monte-carlo"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// ParseRule maps a rule-selection string to its Rule. Matching is
// case-insensitive; "tensor grid" and "qmc" are accepted spellings.
func ParseRule(name string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tensor-grid", "tensor grid":
		return TensorGrid, nil
	case "monte-carlo", "qmc":
		return MonteCarlo, nil
	default:
		return Auto, errors.NewUnsupportedOptionError("poly.ParseRule", name,
			[]string{"tensor-grid", "monte-carlo"})
	}
}

// DefaultMonteCarloSamples is the sample count of a Monte Carlo rule when
// no explicit count is given.
const DefaultMonteCarloSamples = 20000

// autoTensorDimensionLimit is the first dimension count the Auto policy
// sends to Monte Carlo. The boundary itself takes the Monte Carlo branch:
// a doubled-order tensor rule over eight dimensions holds at least 5^8
// points for quadratic marginals and grows without bound from there.
const autoTensorDimensionLimit = 8

// tensorGridPointLimit is the advisory size above which tensor-grid
// construction emits a TensorGridSizeWarning before proceeding.
const tensorGridPointLimit int64 = 1 << 20

// QuadratureRule builds an integration rule for the surrogate's input
// distribution. Points are n x d in the physical domain; weights have one
// entry per point and sum to 1.
//
// Auto doubles the per-dimension parameter orders for the tensor grid so
// the rule stays exact for products of basis terms, or falls back to
// DefaultMonteCarloSamples draws in high dimension. TensorGrid and
// MonteCarlo force their mode with default sizing; TensorGridRule and
// MonteCarloRule expose explicit overrides.
func (p *Poly) QuadratureRule(rule Rule) (*mat.Dense, *mat.VecDense, error) {
	switch rule {
	case Auto:
		if p.Dimensions() < autoTensorDimensionLimit {
			doubled := make([]int, len(p.orders))
			for k, o := range p.orders {
				doubled[k] = 2 * o
			}
			return p.TensorGridRule(doubled)
		}
		return p.MonteCarloRule(DefaultMonteCarloSamples)
	case TensorGrid:
		return p.TensorGridRule(nil)
	case MonteCarlo:
		return p.MonteCarloRule(DefaultMonteCarloSamples)
	default:
		return nil, nil, errors.NewUnsupportedOptionError("Poly.QuadratureRule", rule.String(),
			[]string{"auto", "tensor-grid", "monte-carlo"})
	}
}

// TensorGridRule builds the Kronecker-product Gauss rule with orders[k]+1
// points in dimension k. A nil orders slice uses the parameter orders.
// Points are returned in the physical domain; weights multiply out from
// the probability-normalized univariate rules, so they sum to 1.
func (p *Poly) TensorGridRule(orders []int) (*mat.Dense, *mat.VecDense, error) {
	d := p.Dimensions()
	if orders == nil {
		orders = p.Orders()
	}
	if len(orders) != d {
		return nil, nil, errors.NewDimensionError("Poly.TensorGridRule", d, len(orders), 1)
	}
	for k, o := range orders {
		if o < 0 {
			return nil, nil, errors.NewValidationError("orders",
				fmt.Sprintf("order %d in dimension %d is negative", o, k), o)
		}
	}

	if total := tensorPointCount(orders); total > tensorGridPointLimit {
		errors.Warn(&errors.TensorGridSizeWarning{
			Dimensions: d,
			Points:     total,
			Limit:      tensorGridPointLimit,
		})
	}

	nodes := make([][]float64, d)
	weights := make([][]float64, d)
	for k := 0; k < d; k++ {
		nk, wk, err := p.params[k].LocalQuadrature(orders[k] + 1)
		if err != nil {
			return nil, nil, err
		}
		nodes[k], weights[k] = nk, wk
	}

	points, combined := tensorCombine(nodes, weights)
	p.unscalePoints(points)

	rows, _ := points.Dims()
	log.GetLoggerWithName("poly.quadrature").Debug("built tensor-grid rule",
		log.QuadratureModeKey, TensorGrid.String(),
		log.QuadraturePointsKey, rows,
		log.DimensionsKey, d,
	)
	return points, combined, nil
}

// MonteCarloRule draws n independent physical-domain samples, one column
// per dimension, each carrying weight 1/n.
func (p *Poly) MonteCarloRule(n int) (*mat.Dense, *mat.VecDense, error) {
	if n <= 0 {
		return nil, nil, errors.NewValueError("Poly.MonteCarloRule", "the number of samples must be positive")
	}

	d := p.Dimensions()
	points := mat.NewDense(n, d, nil)
	for k := 0; k < d; k++ {
		draws, err := p.params[k].Sample(n)
		if err != nil {
			return nil, nil, err
		}
		for i := 0; i < n; i++ {
			points.Set(i, k, draws[i])
		}
	}

	weights := mat.NewVecDense(n, nil)
	w := 1 / float64(n)
	for i := 0; i < n; i++ {
		weights.SetVec(i, w)
	}

	log.GetLoggerWithName("poly.quadrature").Debug("built monte-carlo rule",
		log.QuadratureModeKey, MonteCarlo.String(),
		log.QuadraturePointsKey, n,
		log.DimensionsKey, d,
	)
	return points, weights, nil
}

// tensorPointCount multiplies out the grid size, stopping once the
// product crosses the advisory limit so it cannot overflow. The result is
// exact below the limit and a lower bound above it.
func tensorPointCount(orders []int) int64 {
	total := int64(1)
	for _, o := range orders {
		total *= int64(o) + 1
		if total > tensorGridPointLimit {
			break
		}
	}
	return total
}

// tensorCombine grows a multivariate rule one dimension at a time from
// univariate node and weight slices: points by cartesian expansion with
// the newest dimension cycling fastest, weights by Kronecker product.
// Earlier dimensions therefore vary slower, matching the tensor-grid
// basis ordering.
func tensorCombine(nodes, weights [][]float64) (*mat.Dense, *mat.VecDense) {
	d := len(nodes)

	prefixes := [][]float64{nil}
	combined := []float64{1}
	for k := 0; k < d; k++ {
		grown := make([][]float64, 0, len(prefixes)*len(nodes[k]))
		grownW := make([]float64, 0, len(combined)*len(nodes[k]))
		for i, prefix := range prefixes {
			for j, x := range nodes[k] {
				row := make([]float64, len(prefix)+1)
				copy(row, prefix)
				row[len(prefix)] = x
				grown = append(grown, row)
				grownW = append(grownW, combined[i]*weights[k][j])
			}
		}
		prefixes, combined = grown, grownW
	}

	points := mat.NewDense(len(prefixes), d, nil)
	for i, row := range prefixes {
		points.SetRow(i, row)
	}
	return points, mat.NewVecDense(len(combined), combined)
}
