package param

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/polyuq/polyuq/pkg/errors"
)

func TestLocalQuadratureUniformKnownRules(t *testing.T) {
	p, err := New(Uniform)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name        string
		n           int
		wantNodes   []float64
		wantWeights []float64
	}{
		{"one point", 1, []float64{0}, []float64{1}},
		{"two points", 2,
			[]float64{-1 / math.Sqrt(3), 1 / math.Sqrt(3)},
			[]float64{0.5, 0.5}},
		{"three points", 3,
			[]float64{-math.Sqrt(0.6), 0, math.Sqrt(0.6)},
			[]float64{5.0 / 18, 8.0 / 18, 5.0 / 18}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, weights, err := p.LocalQuadrature(tt.n)
			if err != nil {
				t.Fatalf("LocalQuadrature(%d) error = %v", tt.n, err)
			}
			for i := range tt.wantNodes {
				if math.Abs(nodes[i]-tt.wantNodes[i]) > 1e-12 {
					t.Errorf("node %d = %v, want %v", i, nodes[i], tt.wantNodes[i])
				}
				if math.Abs(weights[i]-tt.wantWeights[i]) > 1e-12 {
					t.Errorf("weight %d = %v, want %v", i, weights[i], tt.wantWeights[i])
				}
			}
		})
	}
}

// The uniform rule must agree with gonum's Gauss-Legendre quadrature on
// every monomial inside its exactness range. The rule weights are
// probability-normalized, so the comparison rescales by the interval
// length.
func TestLocalQuadratureUniformMatchesGonumQuad(t *testing.T) {
	p, err := New(Uniform)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, n := range []int{2, 4, 6} {
		nodes, weights, err := p.LocalQuadrature(n)
		if err != nil {
			t.Fatalf("LocalQuadrature(%d) error = %v", n, err)
		}
		for degree := 0; degree <= 2*n-1; degree++ {
			f := func(x float64) float64 { return math.Pow(x, float64(degree)) }

			var mine float64
			for j, w := range weights {
				mine += 2 * w * f(nodes[j])
			}
			ref := quad.Fixed(f, -1, 1, n, quad.Legendre{}, 0)
			if math.Abs(mine-ref) > 1e-10 {
				t.Errorf("n=%d degree=%d: rule gives %v, quad.Fixed gives %v", n, degree, mine, ref)
			}
		}
	}
}

func TestLocalQuadratureGaussianKnownRules(t *testing.T) {
	p, err := New(Gaussian)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name        string
		n           int
		wantNodes   []float64
		wantWeights []float64
	}{
		{"two points", 2, []float64{-1, 1}, []float64{0.5, 0.5}},
		{"three points", 3,
			[]float64{-math.Sqrt(3), 0, math.Sqrt(3)},
			[]float64{1.0 / 6, 2.0 / 3, 1.0 / 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, weights, err := p.LocalQuadrature(tt.n)
			if err != nil {
				t.Fatalf("LocalQuadrature(%d) error = %v", tt.n, err)
			}
			for i := range tt.wantNodes {
				if math.Abs(nodes[i]-tt.wantNodes[i]) > 1e-12 {
					t.Errorf("node %d = %v, want %v", i, nodes[i], tt.wantNodes[i])
				}
				if math.Abs(weights[i]-tt.wantWeights[i]) > 1e-12 {
					t.Errorf("weight %d = %v, want %v", i, weights[i], tt.wantWeights[i])
				}
			}
		})
	}
}

// A one-point Gauss rule sits at the mean of the measure. For a
// Beta(shapeA, shapeB) parameter on [0, 1] that is shapeA/(shapeA+shapeB).
func TestLocalQuadratureBetaMeanNode(t *testing.T) {
	tests := []struct {
		name           string
		shapeA, shapeB float64
		want           float64
	}{
		{"symmetric", 2, 2, 0.5},
		{"right skewed", 2, 5, 2.0 / 7},
		{"left skewed", 5, 2, 5.0 / 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(Beta, WithShape(tt.shapeA, tt.shapeB))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			nodes, weights, err := p.LocalQuadrature(1)
			if err != nil {
				t.Fatalf("LocalQuadrature(1) error = %v", err)
			}
			if math.Abs(nodes[0]-tt.want) > 1e-12 {
				t.Errorf("node = %v, want %v", nodes[0], tt.want)
			}
			if math.Abs(weights[0]-1) > 1e-12 {
				t.Errorf("weight = %v, want 1", weights[0])
			}
		})
	}
}

func TestLocalQuadratureWeightsSumToOne(t *testing.T) {
	params := map[string]*Parameter{
		"uniform":  mustNew(t, Uniform),
		"beta":     mustNew(t, Beta, WithShape(3, 2)),
		"gaussian": mustNew(t, Gaussian),
	}

	for name, p := range params {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{1, 3, 7, 15} {
				_, weights, err := p.LocalQuadrature(n)
				if err != nil {
					t.Fatalf("LocalQuadrature(%d) error = %v", n, err)
				}
				var sum float64
				for _, w := range weights {
					sum += w
				}
				if math.Abs(sum-1) > 1e-12 {
					t.Errorf("n=%d: weights sum to %v, want 1", n, sum)
				}
			}
		})
	}
}

// Discrete orthogonality: with an (order+1)-point rule, the weighted
// product of two basis polynomials up to that order integrates exactly,
// so off-diagonal entries must vanish.
func TestLocalQuadratureOrthogonality(t *testing.T) {
	params := map[string]*Parameter{
		"uniform":  mustNew(t, Uniform),
		"beta":     mustNew(t, Beta, WithShape(2.5, 1.5)),
		"gaussian": mustNew(t, Gaussian),
	}

	const maxDegree = 5

	for name, p := range params {
		t.Run(name, func(t *testing.T) {
			nodes, weights, err := p.LocalQuadrature(maxDegree + 1)
			if err != nil {
				t.Fatalf("LocalQuadrature error = %v", err)
			}
			vals, _, err := p.OrthoPoly(nodes, maxDegree)
			if err != nil {
				t.Fatalf("OrthoPoly error = %v", err)
			}

			for a := 0; a <= maxDegree; a++ {
				for b := 0; b <= maxDegree; b++ {
					var sum float64
					for j, w := range weights {
						sum += w * vals.At(a, j) * vals.At(b, j)
					}
					switch {
					case a == b && sum <= 0:
						t.Errorf("squared norm of degree %d is %v, want positive", a, sum)
					case a != b && math.Abs(sum) > 1e-10:
						t.Errorf("degrees %d and %d are not orthogonal: %v", a, b, sum)
					}
				}
			}
		})
	}
}

func TestSquaredNormsLegendre(t *testing.T) {
	p := mustNew(t, Uniform)
	norms, err := p.SquaredNorms(6)
	if err != nil {
		t.Fatalf("SquaredNorms error = %v", err)
	}
	// E[P_k^2] = 1/(2k+1) under the uniform measure on [-1, 1].
	for k, norm := range norms {
		want := 1 / (2*float64(k) + 1)
		if math.Abs(norm-want) > 1e-12 {
			t.Errorf("norm %d = %v, want %v", k, norm, want)
		}
	}
}

func TestSquaredNormsHermite(t *testing.T) {
	p := mustNew(t, Gaussian)
	norms, err := p.SquaredNorms(6)
	if err != nil {
		t.Fatalf("SquaredNorms error = %v", err)
	}
	// E[He_k^2] = k! under the standard normal measure.
	want := []float64{1, 1, 2, 6, 24, 120, 720}
	for k, norm := range norms {
		if math.Abs(norm-want[k]) > 1e-9*want[k] {
			t.Errorf("norm %d = %v, want %v", k, norm, want[k])
		}
	}
}

func TestSquaredNormsBetaUniformShape(t *testing.T) {
	// Beta(1, 1) is uniform on [0, 1]; shifted Legendre norms carry over.
	p := mustNew(t, Beta, WithShape(1, 1))
	norms, err := p.SquaredNorms(5)
	if err != nil {
		t.Fatalf("SquaredNorms error = %v", err)
	}
	for k, norm := range norms {
		want := 1 / (2*float64(k) + 1)
		if math.Abs(norm-want) > 1e-12 {
			t.Errorf("norm %d = %v, want %v", k, norm, want)
		}
	}
}

func TestLocalQuadratureRejectsNonPositiveCount(t *testing.T) {
	p := mustNew(t, Uniform)
	for _, n := range []int{0, -3} {
		_, _, err := p.LocalQuadrature(n)
		var valueErr *errors.ValueError
		if !errors.As(err, &valueErr) {
			t.Errorf("LocalQuadrature(%d) error = %v, want ValueError", n, err)
		}
	}
}

func mustNew(t *testing.T, kind Kind, opts ...Option) *Parameter {
	t.Helper()
	p, err := New(kind, opts...)
	if err != nil {
		t.Fatalf("New(%q) error = %v", kind, err)
	}
	return p
}
