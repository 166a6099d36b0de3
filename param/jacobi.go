package param

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// shiftedJacobi is the strategy for beta inputs. A Beta(shapeA, shapeB)
// weight on the canonical interval [0, 1] matches the Jacobi weight
// (1-x)^a (1+x)^b on [-1, 1] under x = 2t - 1 with a = shapeB - 1 and
// b = shapeA - 1. Basis functions are the shifted classical Jacobi
// polynomials P_k^(a,b)(2t - 1).
type shiftedJacobi struct {
	lower, upper   float64
	shapeA, shapeB float64
	a, b           float64 // Jacobi exponents
}

func newShiftedJacobi(lower, upper, shapeA, shapeB float64) *shiftedJacobi {
	return &shiftedJacobi{
		lower:  lower,
		upper:  upper,
		shapeA: shapeA,
		shapeB: shapeB,
		a:      shapeB - 1,
		b:      shapeA - 1,
	}
}

func (s *shiftedJacobi) kind() Kind { return Beta }

// orthoPoly evaluates the shifted Jacobi family. Points arrive in the
// canonical [0, 1] domain; values come from the classical recurrence
//
//	P_{k+1}(x) = (A_k x + B_k) P_k(x) - C_k P_{k-1}(x)
//
// at x = 2t - 1, and derivative rows carry the chain-rule factor 2 from
// the shift.
func (s *shiftedJacobi) orthoPoly(points []float64, maxDegree int) (vals, derivs *mat.Dense) {
	n := len(points)
	vals = mat.NewDense(maxDegree+1, n, nil)
	derivs = mat.NewDense(maxDegree+1, n, nil)
	a, b := s.a, s.b

	for j, t := range points {
		x := 2*t - 1
		vals.Set(0, j, 1)
		if maxDegree == 0 {
			continue
		}

		p1 := (a+b+2)*x/2 + (a-b)/2
		d1 := (a + b + 2) / 2
		vals.Set(1, j, p1)
		derivs.Set(1, j, d1)

		pk, pkm1 := p1, 1.0
		dk, dkm1 := d1, 0.0
		for k := 1; k < maxDegree; k++ {
			fk := float64(k)
			h := 2*fk + a + b
			c1 := 2 * (fk + 1) * (fk + a + b + 1) * h
			ak := (h + 1) * (h + 2) * h / c1
			bk := (h + 1) * (a*a - b*b) / c1
			ck := 2 * (fk + a) * (fk + b) * (h + 2) / c1

			pkp1 := (ak*x+bk)*pk - ck*pkm1
			dkp1 := ak*pk + (ak*x+bk)*dk - ck*dkm1

			vals.Set(k+1, j, pkp1)
			derivs.Set(k+1, j, dkp1)
			pkm1, pk = pk, pkp1
			dkm1, dk = dk, dkp1
		}
		// d/dt = 2 d/dx under the shift to [0, 1].
		for k := 1; k <= maxDegree; k++ {
			derivs.Set(k, j, 2*derivs.At(k, j))
		}
	}
	return vals, derivs
}

// recurrence returns the monic coefficients of the Beta probability
// measure on [0, 1]: the classical Jacobi coefficients on [-1, 1],
// shifted by alpha' = (alpha+1)/2 and beta' = beta/4.
func (s *shiftedJacobi) recurrence(n int) (alpha, beta []float64) {
	alpha = make([]float64, n)
	beta = make([]float64, n)
	a, b := s.a, s.b

	alpha[0] = ((b-a)/(a+b+2) + 1) / 2
	for k := 1; k < n; k++ {
		fk := float64(k)
		h := 2*fk + a + b
		alpha[k] = ((b*b-a*a)/(h*(h+2)) + 1) / 2
		if k == 1 {
			beta[k] = 4 * (a + 1) * (b + 1) / ((a + b + 2) * (a + b + 2) * (a + b + 3)) / 4
		} else {
			beta[k] = 4 * fk * (fk + a) * (fk + b) * (fk + a + b) / (h * h * (h + 1) * (h - 1)) / 4
		}
	}
	return alpha, beta
}

func (s *shiftedJacobi) toCanonical(x float64) float64 {
	return (x - s.lower) / (s.upper - s.lower)
}

func (s *shiftedJacobi) fromCanonical(u float64) float64 {
	return s.lower + u*(s.upper-s.lower)
}

func (s *shiftedJacobi) sample(n int, src rand.Source) []float64 {
	dist := distuv.Beta{Alpha: s.shapeA, Beta: s.shapeB, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.lower + dist.Rand()*(s.upper-s.lower)
	}
	return out
}
