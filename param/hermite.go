package param

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// hermite is the strategy for Gaussian inputs. Basis functions are the
// probabilists' Hermite polynomials He_k, orthogonal under the standard
// normal weight. The canonical variable is the standardized one, so a
// physical sample x maps to (x - mean) / sigma.
type hermite struct {
	mean, variance float64
	sigma          float64
}

func newHermite(mean, variance float64) *hermite {
	return &hermite{mean: mean, variance: variance, sigma: math.Sqrt(variance)}
}

func (h *hermite) kind() Kind { return Gaussian }

// orthoPoly runs the recurrence
//
//	He_{k+1}(x) = x He_k(x) - k He_{k-1}(x)
//
// and fills derivative rows from the identity He'_k(x) = k He_{k-1}(x).
func (h *hermite) orthoPoly(points []float64, maxDegree int) (vals, derivs *mat.Dense) {
	n := len(points)
	vals = mat.NewDense(maxDegree+1, n, nil)
	derivs = mat.NewDense(maxDegree+1, n, nil)

	for j, x := range points {
		vals.Set(0, j, 1)
		if maxDegree >= 1 {
			vals.Set(1, j, x)
		}
		for k := 1; k < maxDegree; k++ {
			vals.Set(k+1, j, x*vals.At(k, j)-float64(k)*vals.At(k-1, j))
		}
		for k := 1; k <= maxDegree; k++ {
			derivs.Set(k, j, float64(k)*vals.At(k-1, j))
		}
	}
	return vals, derivs
}

// recurrence returns the monic coefficients of the standard normal
// measure: alpha_k = 0, beta_k = k.
func (h *hermite) recurrence(n int) (alpha, beta []float64) {
	alpha = make([]float64, n)
	beta = make([]float64, n)
	for k := 1; k < n; k++ {
		beta[k] = float64(k)
	}
	return alpha, beta
}

func (h *hermite) toCanonical(x float64) float64 {
	return (x - h.mean) / h.sigma
}

func (h *hermite) fromCanonical(u float64) float64 {
	return h.mean + h.sigma*u
}

func (h *hermite) sample(n int, src rand.Source) []float64 {
	dist := distuv.Normal{Mu: h.mean, Sigma: h.sigma, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}
