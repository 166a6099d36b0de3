package param

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// legendre is the strategy for uniform inputs. Basis functions are the
// classical Legendre polynomials P_k on the canonical interval [-1, 1],
// normalized so that P_k(1) = 1.
type legendre struct {
	lower, upper float64
}

func newLegendre(lower, upper float64) *legendre {
	return &legendre{lower: lower, upper: upper}
}

func (l *legendre) kind() Kind { return Uniform }

// orthoPoly runs the three-term recurrence
//
//	(k+1) P_{k+1}(x) = (2k+1) x P_k(x) - k P_{k-1}(x)
//
// together with its differentiated form for the derivative rows.
func (l *legendre) orthoPoly(points []float64, maxDegree int) (vals, derivs *mat.Dense) {
	n := len(points)
	vals = mat.NewDense(maxDegree+1, n, nil)
	derivs = mat.NewDense(maxDegree+1, n, nil)

	for j, x := range points {
		vals.Set(0, j, 1)
		if maxDegree >= 1 {
			vals.Set(1, j, x)
			derivs.Set(1, j, 1)
		}
		for k := 1; k < maxDegree; k++ {
			a := (2*float64(k) + 1) / (float64(k) + 1)
			c := float64(k) / (float64(k) + 1)
			pk, pkm1 := vals.At(k, j), vals.At(k-1, j)
			dk, dkm1 := derivs.At(k, j), derivs.At(k-1, j)
			vals.Set(k+1, j, a*x*pk-c*pkm1)
			derivs.Set(k+1, j, a*(pk+x*dk)-c*dkm1)
		}
	}
	return vals, derivs
}

// recurrence returns the monic coefficients of the uniform probability
// measure on [-1, 1]: alpha_k = 0, beta_k = k^2 / ((2k-1)(2k+1)).
func (l *legendre) recurrence(n int) (alpha, beta []float64) {
	alpha = make([]float64, n)
	beta = make([]float64, n)
	for k := 1; k < n; k++ {
		fk := float64(k)
		beta[k] = fk * fk / ((2*fk - 1) * (2*fk + 1))
	}
	return alpha, beta
}

func (l *legendre) toCanonical(x float64) float64 {
	return 2*(x-l.lower)/(l.upper-l.lower) - 1
}

func (l *legendre) fromCanonical(u float64) float64 {
	return l.lower + (u+1)/2*(l.upper-l.lower)
}

func (l *legendre) sample(n int, src rand.Source) []float64 {
	dist := distuv.Uniform{Min: l.lower, Max: l.upper, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}
