// Package basis builds the multi-index sets that define a multivariate
// polynomial expansion. A Basis is an ordered table of multi-indices, one
// row per expansion term and one column per input dimension; row i names
// the per-dimension degrees of term i. Four index-set rules are available:
// full tensor grids, total-order sets, hyperbolic cross sets and euclidean
// degree sets. The element table is rebuilt only by SetOrders; accessors
// hand out copies so callers cannot mutate it.
package basis

import (
	"math"

	"github.com/polyuq/polyuq/pkg/errors"
)

type rule int

const (
	ruleTensorGrid rule = iota
	ruleTotalOrder
	ruleHyperbolic
	ruleEuclidean
)

func (r rule) String() string {
	switch r {
	case ruleTensorGrid:
		return "tensor-grid"
	case ruleTotalOrder:
		return "total-order"
	case ruleHyperbolic:
		return "hyperbolic"
	default:
		return "euclidean"
	}
}

// Basis is an ordered multi-index set. Construct one with TensorGrid,
// TotalOrder, Hyperbolic or Euclidean. A Basis is safe for concurrent
// reads; SetOrders must not race with readers.
type Basis struct {
	elements   [][]int
	orders     []int
	maxDegrees []int
	rule       rule
	q          float64
}

// TensorGrid builds the full tensor-product set: every index with
// i_k <= orders[k]. Rows are ordered with the last dimension cycling
// fastest. The cardinality is the product of (orders[k]+1), so high
// dimension counts grow quickly.
func TensorGrid(orders []int) (*Basis, error) {
	return newBasis(ruleTensorGrid, orders, 0)
}

// TotalOrder builds the set of indices with i_k <= orders[k] whose total
// degree does not exceed max(orders). Rows are graded by total degree,
// ascending; rows of equal degree are in lexicographically descending
// order, so for orders [2, 2] the table reads (0,0), (1,0), (0,1), (2,0),
// (1,1), (0,2).
func TotalOrder(orders []int) (*Basis, error) {
	return newBasis(ruleTotalOrder, orders, 0)
}

// Hyperbolic builds the hyperbolic cross set: indices whose q-quasi-norm
// (sum of i_k^q)^(1/q) does not exceed max(orders), with 0 < q <= 1.
// Smaller q discards interaction terms and keeps the near-axis indices;
// q = 1 recovers the total-order set. Row ordering matches TotalOrder.
func Hyperbolic(orders []int, q float64) (*Basis, error) {
	if q <= 0 || q > 1 {
		return nil, errors.NewValidationError("q", "must lie in (0, 1]", q)
	}
	return newBasis(ruleHyperbolic, orders, q)
}

// Euclidean builds the euclidean degree set: indices with
// sum of i_k^2 <= max(orders)^2. It keeps more interaction terms than the
// total-order set of the same order. Row ordering matches TotalOrder.
func Euclidean(orders []int) (*Basis, error) {
	return newBasis(ruleEuclidean, orders, 0)
}

func newBasis(r rule, orders []int, q float64) (*Basis, error) {
	if err := validateOrders(orders); err != nil {
		return nil, err
	}
	b := &Basis{
		orders: append([]int(nil), orders...),
		rule:   r,
		q:      q,
	}
	b.rebuild()
	return b, nil
}

func validateOrders(orders []int) error {
	if len(orders) == 0 {
		return errors.NewValidationError("orders", "must name at least one dimension", orders)
	}
	for _, o := range orders {
		if o < 0 {
			return errors.NewValidationError("orders", "must be non-negative", orders)
		}
	}
	return nil
}

// Type returns the index-set rule name: "tensor-grid", "total-order",
// "hyperbolic" or "euclidean".
func (b *Basis) Type() string { return b.rule.String() }

// Q returns the quasi-norm exponent of a hyperbolic basis, and zero for
// the other rules.
func (b *Basis) Q() float64 {
	if b.rule != ruleHyperbolic {
		return 0
	}
	return b.q
}

// Cardinality returns the number of expansion terms.
func (b *Basis) Cardinality() int { return len(b.elements) }

// Dimensions returns the number of input dimensions.
func (b *Basis) Dimensions() int { return len(b.orders) }

// Element returns a copy of row i of the multi-index table.
func (b *Basis) Element(i int) []int {
	return append([]int(nil), b.elements[i]...)
}

// Elements returns a copy of the full multi-index table.
func (b *Basis) Elements() [][]int {
	out := make([][]int, len(b.elements))
	for i, row := range b.elements {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Index returns the degree of term i in dimension k without copying.
func (b *Basis) Index(i, k int) int { return b.elements[i][k] }

// MaxDegrees returns the columnwise maximum degree of the table.
func (b *Basis) MaxDegrees() []int {
	return append([]int(nil), b.maxDegrees...)
}

// Orders returns the per-dimension orders the set was built from.
func (b *Basis) Orders() []int {
	return append([]int(nil), b.orders...)
}

// SetOrders replaces the per-dimension orders and rebuilds the element
// table under the same rule. The dimension count cannot change.
func (b *Basis) SetOrders(orders []int) error {
	if len(orders) != len(b.orders) {
		return errors.NewDimensionError("Basis.SetOrders", len(b.orders), len(orders), 1)
	}
	if err := validateOrders(orders); err != nil {
		return err
	}
	b.orders = append([]int(nil), orders...)
	b.rebuild()
	return nil
}

func (b *Basis) rebuild() {
	switch b.rule {
	case ruleTensorGrid:
		b.elements = tensorElements(b.orders)
	case ruleTotalOrder:
		b.elements = gradedElements(b.orders, maxOrder(b.orders), nil)
	case ruleHyperbolic:
		b.elements = hyperbolicElements(b.orders, b.q)
	case ruleEuclidean:
		b.elements = euclideanElements(b.orders)
	}

	b.maxDegrees = make([]int, len(b.orders))
	for _, row := range b.elements {
		for k, deg := range row {
			if deg > b.maxDegrees[k] {
				b.maxDegrees[k] = deg
			}
		}
	}
}

func maxOrder(orders []int) int {
	m := orders[0]
	for _, o := range orders[1:] {
		if o > m {
			m = o
		}
	}
	return m
}

// tensorElements enumerates the full grid like an odometer: the last
// dimension cycles fastest, matching the tensor quadrature combination
// order.
func tensorElements(orders []int) [][]int {
	d := len(orders)
	total := 1
	for _, o := range orders {
		total *= o + 1
	}

	rows := make([][]int, 0, total)
	cur := make([]int, d)
	for {
		rows = append(rows, append([]int(nil), cur...))
		k := d - 1
		for k >= 0 {
			cur[k]++
			if cur[k] <= orders[k] {
				break
			}
			cur[k] = 0
			k--
		}
		if k < 0 {
			return rows
		}
	}
}

// gradedElements enumerates indices with per-dimension caps, grouped by
// total degree ascending and lexicographically descending within each
// degree. keep, when non-nil, filters candidates.
func gradedElements(caps []int, maxTotal int, keep func([]int) bool) [][]int {
	d := len(caps)
	var rows [][]int
	idx := make([]int, d)

	var expand func(dim, remaining int)
	expand = func(dim, remaining int) {
		if dim == d-1 {
			if remaining <= caps[dim] {
				idx[dim] = remaining
				if keep == nil || keep(idx) {
					rows = append(rows, append([]int(nil), idx...))
				}
			}
			return
		}
		hi := remaining
		if hi > caps[dim] {
			hi = caps[dim]
		}
		for v := hi; v >= 0; v-- {
			idx[dim] = v
			expand(dim+1, remaining-v)
		}
	}

	for degree := 0; degree <= maxTotal; degree++ {
		expand(0, degree)
	}
	return rows
}

func hyperbolicElements(orders []int, q float64) [][]int {
	m := maxOrder(orders)
	bound := float64(m)
	// For q <= 1 the quasi-norm dominates the total degree, so graded
	// candidates up to max(orders) cover the whole set. The tolerance
	// absorbs math.Pow roundoff on axis indices.
	return gradedElements(orders, m, func(idx []int) bool {
		var sum float64
		for _, i := range idx {
			sum += math.Pow(float64(i), q)
		}
		return math.Pow(sum, 1/q) <= bound+1e-9
	})
}

func euclideanElements(orders []int) [][]int {
	m := maxOrder(orders)
	// Total degree of a member never exceeds m^2 because each i_k <= i_k^2.
	return gradedElements(orders, m*m, func(idx []int) bool {
		var sum int
		for _, i := range idx {
			sum += i * i
		}
		return sum <= m*m
	})
}
