package param

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/pkg/errors"
)

// golubWelsch computes an n-point Gauss rule from the monic recurrence
// coefficients of a probability measure. The symmetric tridiagonal Jacobi
// matrix has alpha on the diagonal and sqrt(beta) off it; its eigenvalues
// are the nodes and the squared first components of its eigenvectors are
// the weights. Weights sum to one because the measure is normalized.
func golubWelsch(alpha, beta []float64) (nodes, weights []float64, err error) {
	n := len(alpha)
	jacobi := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		jacobi.SetSym(i, i, alpha[i])
		if i > 0 {
			jacobi.SetSym(i-1, i, math.Sqrt(beta[i]))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(jacobi, true) {
		return nil, nil, errors.NewNumericalInstabilityError("Parameter.LocalQuadrature", nil)
	}

	nodes = eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	weights = make([]float64, n)
	for j := 0; j < n; j++ {
		v0 := vecs.At(0, j)
		weights[j] = v0 * v0
	}
	return nodes, weights, nil
}
