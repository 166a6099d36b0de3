// Package polyuq builds multivariate polynomial chaos surrogates for
// uncertainty quantification in Go.
//
// PolyUQ replaces an expensive computational model with an orthogonal
// polynomial expansion over its uncertain inputs. Once fitted, the
// surrogate evaluates in microseconds and exposes the output mean,
// variance, higher moments and Sobol sensitivity indices directly from
// its spectral coefficients.
//
// # Features
//
// - Uniform, beta and gaussian input distributions with the matching
// Legendre, Jacobi and Hermite polynomial families
// - Tensor-grid, total-order, hyperbolic and euclidean basis truncations
// - Gauss quadrature and Monte Carlo rules for training-point generation
// - Least-squares and spectral-projection fitting on gonum linear algebra
// - Moments and global sensitivity analysis without re-sampling the model
//
// # Installation
//
// Install PolyUQ using go get:
//
//	go get github.com/polyuq/polyuq
//
// # Quick Start
//
// Fit a surrogate to a bivariate model and query its statistics:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "math"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/polyuq/polyuq/basis"
//	    "github.com/polyuq/polyuq/param"
//	    "github.com/polyuq/polyuq/poly"
//	    "github.com/polyuq/polyuq/regression"
//	)
//
//	func main() {
//	    x1, _ := param.New(param.Uniform, param.WithOrder(3))
//	    x2, _ := param.New(param.Uniform, param.WithOrder(3))
//	    b, _ := basis.TotalOrder([]int{3, 3})
//
//	    surrogate, err := poly.New([]*param.Parameter{x1, x2}, b)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model := func(x []float64) float64 {
//	        return math.Exp(0.5*x[0]) * math.Sin(x[1])
//	    }
//	    if err := regression.Integrate(surrogate, model); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    predictions, err := surrogate.EvaluateFit(
//	        mat.NewDense(1, 2, []float64{0.2, -0.4}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Prediction:", predictions.AtVec(0))
//
//	    st, err := surrogate.Statistics(poly.Auto)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    mean, variance := st.MeanAndVariance()
//	    fmt.Println("Mean:", mean, "Variance:", variance)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - param: Input distributions and their orthogonal polynomial families
//   - basis: Multi-index sets that truncate the expansion
//   - poly: Surrogate evaluation, gradients and quadrature rules
//   - regression: Least-squares and spectral-projection fitting
//   - stats: Moments and Sobol indices of a fitted surrogate
//   - metrics: Accuracy scores for surrogate validation
//   - core/model: Shared lifecycle state and evaluation contracts
//   - core/parallel: Parallel processing utilities
//
// # Performance
//
// Evaluation is parallelized automatically:
//
//   - Chunked workers kick in for query batches above 1000 rows
//   - CPU core detection and optimal worker allocation
//   - Fitted surrogates are safe for concurrent evaluation
//
// # License
//
// PolyUQ is released under the MIT License.
package polyuq
