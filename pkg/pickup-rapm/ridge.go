package pickuprapm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// fitRidge solves a ridge regression with no intercept by the normal
// equations: (XᵀX + λI)β = Xᵀy. An intercept would be unidentifiable given
// the zero-sum ±1 structure of a typical game row, so none is fitted. For
// λ > 0 the system is positive definite and always solvable, even when the
// participation data alone is rank deficient.
func fitRidge(x mat.Matrix, y []float64, lambda float64) ([]float64, error) {
	rows, cols := x.Dims()
	if rows != len(y) {
		return nil, fmt.Errorf("design matrix has %d rows but target has %d entries", rows, len(y))
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	for j := 0; j < cols; j++ {
		xtx.Set(j, j, xtx.At(j, j)+lambda)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), mat.NewVecDense(len(y), y))

	var coef mat.VecDense
	if err := coef.SolveVec(&xtx, &xty); err != nil {
		return nil, fmt.Errorf("solving ridge system: %w", err)
	}

	out := make([]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = coef.AtVec(j)
	}
	return out, nil
}

// predictRidge computes Xβ for a fitted coefficient vector.
func predictRidge(x mat.Matrix, coef []float64) []float64 {
	rows, _ := x.Dims()
	var pred mat.VecDense
	pred.MulVec(x, mat.NewVecDense(len(coef), coef))

	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = pred.AtVec(i)
	}
	return out
}

// rootMeanSquaredError returns the RMSE between predictions and actuals.
func rootMeanSquaredError(predicted, actual []float64) float64 {
	residuals := make([]float64, len(actual))
	copy(residuals, predicted)
	floats.Sub(residuals, actual)
	return math.Sqrt(floats.Dot(residuals, residuals) / float64(len(actual)))
}
