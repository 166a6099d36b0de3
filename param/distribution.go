package param

import (
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/pkg/errors"
)

// Kind names a supported input distribution.
type Kind string

// Supported distribution kinds. Each kind pairs with the orthogonal
// polynomial family for its probability measure: uniform with Legendre,
// beta with shifted Jacobi, gaussian with probabilists' Hermite.
const (
	Uniform  Kind = "uniform"
	Beta     Kind = "beta"
	Gaussian Kind = "gaussian"
)

// supportedKinds lists the accepted kind names for error messages.
func supportedKinds() []string {
	return []string{string(Uniform), string(Beta), string(Gaussian)}
}

// ParseKind maps a distribution name to its Kind. Matching is
// case-insensitive; "normal" is accepted as an alias for gaussian.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uniform":
		return Uniform, nil
	case "beta":
		return Beta, nil
	case "gaussian", "normal":
		return Gaussian, nil
	default:
		return "", errors.NewUnsupportedDistributionError(name, supportedKinds())
	}
}

// distribution is the strategy a Parameter dispatches to. One
// implementation exists per Kind; each owns its polynomial recurrence, its
// canonical domain transform, its monic recurrence coefficients for
// quadrature construction, and its sampler.
type distribution interface {
	kind() Kind

	// orthoPoly evaluates the family's polynomials and their derivatives
	// on canonical-domain points for degrees 0..maxDegree. Both returned
	// matrices are (maxDegree+1) x len(points); derivatives are taken with
	// respect to the canonical coordinate.
	orthoPoly(points []float64, maxDegree int) (vals, derivs *mat.Dense)

	// recurrence returns the monic three-term recurrence coefficients
	// alpha[0..n-1], beta[0..n-1] of the family's probability measure on
	// the canonical domain. beta[0] is unused by the quadrature builder.
	recurrence(n int) (alpha, beta []float64)

	// toCanonical maps a physical-domain point into the canonical domain.
	toCanonical(x float64) float64

	// fromCanonical maps a canonical-domain point back to the physical
	// domain.
	fromCanonical(u float64) float64

	// sample draws n independent physical-domain variates. src may be nil,
	// in which case the global source is used.
	sample(n int, src rand.Source) []float64
}

// newDistribution builds the strategy for a validated configuration.
// Unknown kinds surface as UnsupportedDistributionError.
func newDistribution(cfg *config) (distribution, error) {
	switch cfg.kind {
	case Uniform:
		return newLegendre(cfg.lower, cfg.upper), nil
	case Beta:
		return newShiftedJacobi(cfg.lower, cfg.upper, cfg.shapeA, cfg.shapeB), nil
	case Gaussian:
		return newHermite(cfg.mean, cfg.variance), nil
	default:
		return nil, errors.NewUnsupportedDistributionError(string(cfg.kind), supportedKinds())
	}
}
