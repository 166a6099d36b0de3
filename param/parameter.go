// Package param defines the marginal input distributions of a surrogate
// model. A Parameter couples a distribution kind with the matching family
// of orthogonal polynomials: uniform inputs use Legendre polynomials, beta
// inputs use shifted Jacobi polynomials and gaussian inputs use the
// probabilists' Hermite polynomials. Each parameter evaluates its family,
// builds Gauss quadrature rules for its probability measure, maps between
// its physical support and the family's canonical domain, and draws
// samples.
package param

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/pkg/errors"
)

// config collects constructor options before validation.
type config struct {
	kind      Kind
	lower     float64
	upper     float64
	order     int
	shapeA    float64
	shapeB    float64
	mean      float64
	variance  float64
	hasBounds bool
	hasShape  bool
	src       rand.Source
}

// Option configures a Parameter under construction.
type Option func(*config)

// WithBounds sets the physical support [lower, upper]. Uniform parameters
// default to [-1, 1] and beta parameters to [0, 1]. Gaussian parameters
// ignore bounds; their support is the whole real line.
func WithBounds(lower, upper float64) Option {
	return func(c *config) {
		c.lower, c.upper = lower, upper
		c.hasBounds = true
	}
}

// WithOrder sets the marginal polynomial order. The default is 1.
func WithOrder(order int) Option {
	return func(c *config) { c.order = order }
}

// WithShape sets the beta shape parameters. Beta parameters must provide
// this option; other kinds ignore it.
func WithShape(shapeA, shapeB float64) Option {
	return func(c *config) {
		c.shapeA, c.shapeB = shapeA, shapeB
		c.hasShape = true
	}
}

// WithMoments sets the gaussian mean and variance. The defaults are 0
// and 1. Other kinds ignore it.
func WithMoments(mean, variance float64) Option {
	return func(c *config) { c.mean, c.variance = mean, variance }
}

// WithSource sets the random source used by Sample. When unset, sampling
// uses the global source.
func WithSource(src rand.Source) Option {
	return func(c *config) { c.src = src }
}

// Parameter is one input dimension of a surrogate model: a distribution
// kind, its physical support and the marginal polynomial order.
type Parameter struct {
	kind     Kind
	lower    float64
	upper    float64
	order    int
	shapeA   float64
	shapeB   float64
	mean     float64
	variance float64
	dist     distribution
	src      rand.Source
}

// New constructs a Parameter of the given kind. Kind names are matched
// case-insensitively, so both param.Uniform and "Uniform" are accepted.
// Unknown kinds fail with an UnsupportedDistributionError; inconsistent
// options fail with a ValidationError.
func New(kind Kind, opts ...Option) (*Parameter, error) {
	canonical, err := ParseKind(string(kind))
	if err != nil {
		return nil, err
	}

	cfg := &config{kind: canonical, order: 1, variance: 1}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.order < 0 {
		return nil, errors.NewValidationError("order", "must be non-negative", cfg.order)
	}

	switch canonical {
	case Uniform:
		if !cfg.hasBounds {
			cfg.lower, cfg.upper = -1, 1
		}
	case Beta:
		if !cfg.hasBounds {
			cfg.lower, cfg.upper = 0, 1
		}
	case Gaussian:
		cfg.lower, cfg.upper = math.Inf(-1), math.Inf(1)
	}

	if canonical != Gaussian && cfg.upper <= cfg.lower {
		return nil, errors.NewValidationError("bounds",
			"the upper bound must exceed the lower bound", [2]float64{cfg.lower, cfg.upper})
	}
	if canonical == Beta {
		if !cfg.hasShape {
			return nil, errors.NewValidationError("shape",
				"beta parameters require shape values via WithShape", nil)
		}
		if cfg.shapeA <= 0 || cfg.shapeB <= 0 {
			return nil, errors.NewValidationError("shape",
				"shape parameters must be positive", [2]float64{cfg.shapeA, cfg.shapeB})
		}
	}
	if canonical == Gaussian && cfg.variance <= 0 {
		return nil, errors.NewValidationError("variance", "must be positive", cfg.variance)
	}

	dist, err := newDistribution(cfg)
	if err != nil {
		return nil, err
	}

	p := &Parameter{
		kind:  canonical,
		lower: cfg.lower,
		upper: cfg.upper,
		order: cfg.order,
		dist:  dist,
		src:   cfg.src,
	}
	switch canonical {
	case Beta:
		p.shapeA, p.shapeB = cfg.shapeA, cfg.shapeB
	case Gaussian:
		p.mean, p.variance = cfg.mean, cfg.variance
	}
	return p, nil
}

// Kind returns the distribution kind.
func (p *Parameter) Kind() Kind { return p.kind }

// Lower returns the lower support bound. Gaussian parameters report -Inf.
func (p *Parameter) Lower() float64 { return p.lower }

// Upper returns the upper support bound. Gaussian parameters report +Inf.
func (p *Parameter) Upper() float64 { return p.upper }

// Order returns the marginal polynomial order.
func (p *Parameter) Order() int { return p.order }

// Shape returns the shape values of a beta parameter, and zeros for the
// other kinds.
func (p *Parameter) Shape() (shapeA, shapeB float64) { return p.shapeA, p.shapeB }

// Moments returns the mean and variance of a gaussian parameter, and
// zeros for the other kinds.
func (p *Parameter) Moments() (mean, variance float64) { return p.mean, p.variance }

// ToCanonical maps a physical-domain value onto the canonical domain of
// the parameter's polynomial family.
func (p *Parameter) ToCanonical(x float64) float64 { return p.dist.toCanonical(x) }

// FromCanonical maps a canonical-domain value back onto the physical
// support.
func (p *Parameter) FromCanonical(u float64) float64 { return p.dist.fromCanonical(u) }

// OrthoPoly evaluates the parameter's orthogonal polynomials and their
// derivatives at canonical-domain points for degrees 0 through maxDegree.
// Row k of each returned matrix holds degree k, with one column per
// point. Derivatives are taken with respect to the canonical coordinate.
func (p *Parameter) OrthoPoly(points []float64, maxDegree int) (vals, derivs *mat.Dense, err error) {
	if maxDegree < 0 {
		return nil, nil, errors.NewValueError("Parameter.OrthoPoly", "maxDegree must be non-negative")
	}
	if len(points) == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "Parameter.OrthoPoly")
	}
	vals, derivs = p.dist.orthoPoly(points, maxDegree)
	return vals, derivs, nil
}

// LocalQuadrature returns the n-point Gauss rule of the parameter's
// probability measure on the canonical domain. The rule integrates
// polynomials up to degree 2n-1 exactly and its weights sum to one.
func (p *Parameter) LocalQuadrature(n int) (nodes, weights []float64, err error) {
	if n <= 0 {
		return nil, nil, errors.NewValueError("Parameter.LocalQuadrature", "the number of points must be positive")
	}
	defer errors.Recover(&err, "Parameter.LocalQuadrature")

	alpha, beta := p.dist.recurrence(n)
	nodes, weights, err = golubWelsch(alpha, beta)
	if err != nil {
		return nil, nil, err
	}
	if err := errors.CheckNumericalStability("Parameter.LocalQuadrature", nodes); err != nil {
		return nil, nil, err
	}
	return nodes, weights, nil
}

// Sample draws n independent physical-domain values from the parameter's
// distribution.
func (p *Parameter) Sample(n int) ([]float64, error) {
	if n <= 0 {
		return nil, errors.NewValueError("Parameter.Sample", "the number of samples must be positive")
	}
	return p.dist.sample(n, p.src), nil
}

// SquaredNorms returns E[psi_k^2] for degrees 0 through maxDegree under
// the parameter's probability measure. A (maxDegree+1)-point local rule
// integrates every squared polynomial exactly.
func (p *Parameter) SquaredNorms(maxDegree int) ([]float64, error) {
	if maxDegree < 0 {
		return nil, errors.NewValueError("Parameter.SquaredNorms", "maxDegree must be non-negative")
	}
	nodes, weights, err := p.LocalQuadrature(maxDegree + 1)
	if err != nil {
		return nil, err
	}
	vals, _, err := p.OrthoPoly(nodes, maxDegree)
	if err != nil {
		return nil, err
	}

	norms := make([]float64, maxDegree+1)
	for k := 0; k <= maxDegree; k++ {
		var sum float64
		for j, w := range weights {
			v := vals.At(k, j)
			sum += w * v * v
		}
		norms[k] = sum
	}
	return norms, nil
}
