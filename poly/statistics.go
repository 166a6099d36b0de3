package poly

import (
	"github.com/polyuq/polyuq/pkg/log"
	"github.com/polyuq/polyuq/stats"
)

// Statistics builds the statistics view of the fitted surrogate: it
// obtains a quadrature rule, evaluates the basis at the scaled nodes and
// hands coefficients, basis, parameters, nodes, weights and evaluations
// to the stats package. Moment and sensitivity computation happens there;
// the core contributes only the tuple. It fails with a NotFittedError
// until SetCoefficients has run.
func (p *Poly) Statistics(rule Rule) (*stats.Statistics, error) {
	if err := p.RequireFitted("Poly", "Statistics"); err != nil {
		return nil, err
	}

	points, weights, err := p.QuadratureRule(rule)
	if err != nil {
		return nil, err
	}
	scaled, err := p.ScaleInputs(points)
	if err != nil {
		return nil, err
	}
	evals, err := p.Polynomial(scaled)
	if err != nil {
		return nil, err
	}

	log.GetLoggerWithName("poly").Debug("assembled statistics handoff",
		log.OperationKey, log.OperationStatistics,
		log.BasisTermsKey, p.Terms(),
		log.QuadraturePointsKey, weights.Len(),
	)
	return stats.New(p.Coefficients(), p.basis, p.params, points, weights, evals)
}
