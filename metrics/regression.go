// Package metrics provides accuracy scores for validating a fitted
// surrogate against held-out model evaluations.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/polyuq/polyuq/pkg/errors"
)

// MSE computes the mean squared error between observed and predicted
// values.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("metrics.MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("metrics.MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error between observed and
// predicted values.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error between observed and predicted
// values.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("metrics.MAE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("metrics.MAE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// MaxAbsError computes the largest pointwise absolute error. Spectral
// approximations of smooth models are usually judged by this worst case
// rather than by an average.
func MaxAbsError(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("metrics.MaxAbsError", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("metrics.MaxAbsError", n, yPred.Len(), 0)
	}

	var worst float64
	for i := 0; i < n; i++ {
		if diff := math.Abs(yTrue.AtVec(i) - yPred.AtVec(i)); diff > worst {
			worst = diff
		}
	}
	return worst, nil
}

// R2Score computes the coefficient of determination. A score of 1 means
// the surrogate reproduces the observations exactly; 0 means it does no
// better than the observed mean. Observations with no variance have no
// defined score and yield an error.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("metrics.R2Score", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("metrics.R2Score", n, yPred.Len(), 0)
	}

	var mean float64
	for i := 0; i < n; i++ {
		mean += yTrue.AtVec(i)
	}
	mean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		observed := yTrue.AtVec(i)
		predicted := yPred.AtVec(i)
		tss += (observed - mean) * (observed - mean)
		rss += (observed - predicted) * (observed - predicted)
	}
	if tss == 0 {
		return 0, errors.NewValueError("metrics.R2Score", "observations have no variance")
	}
	return 1 - rss/tss, nil
}
