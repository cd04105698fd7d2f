package pickuprapm

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// SelectLambda picks the ridge strength with the lowest cross-validated
// RMSE. For every candidate, every seed gets its own shuffled k-fold
// partition; RMSE is averaged over all folds and seeds. A single k-fold
// split is noisy on sparse, collinear participation data, so repeating the
// split under several seeds stabilizes the choice. Ties go to the earliest
// candidate. The shuffles are seeded, so identical inputs always select the
// identical strength.
func SelectLambda(x *mat.Dense, y []float64, candidates []float64, kFolds int, seeds []int64, debug bool) (float64, []LambdaScore, error) {
	n, _ := x.Dims()

	if len(candidates) == 0 {
		return 0, nil, fmt.Errorf("no candidate strengths provided")
	}
	if len(seeds) == 0 {
		return 0, nil, fmt.Errorf("no cross-validation seeds provided")
	}
	if kFolds < 2 {
		return 0, nil, fmt.Errorf("cross-validation requires at least 2 folds, got %d", kFolds)
	}
	if kFolds > n {
		return 0, nil, fmt.Errorf("cannot split %d games into %d folds", n, kFolds)
	}

	scores := make([]LambdaScore, 0, len(candidates))
	for _, lambda := range candidates {
		totalRMSE := 0.0
		foldCount := 0

		for _, seed := range seeds {
			for _, fold := range kFoldSplits(n, kFolds, seed) {
				trainX, trainY, valX, valY := splitFold(x, y, fold)

				coef, err := fitRidge(trainX, trainY, lambda)
				if err != nil {
					return 0, nil, fmt.Errorf("cross-validation fit at lambda=%g: %w", lambda, err)
				}

				predicted := predictRidge(valX, coef)
				totalRMSE += rootMeanSquaredError(predicted, valY)
				foldCount++
			}
		}

		meanRMSE := totalRMSE / float64(foldCount)
		scores = append(scores, LambdaScore{Lambda: lambda, MeanRMSE: meanRMSE})

		if debug {
			fmt.Printf("  lambda=%-8g mean RMSE=%.4f (%d folds)\n", lambda, meanRMSE, foldCount)
		}
	}

	best := scores[0]
	for _, score := range scores[1:] {
		if score.MeanRMSE < best.MeanRMSE {
			best = score
		}
	}

	if debug {
		fmt.Printf("✅ Best lambda: %g with RMSE: %.4f\n", best.Lambda, best.MeanRMSE)
	}

	return best.Lambda, scores, nil
}

// kFoldSplits partitions 0..n-1 into k shuffled folds. The permutation is a
// pure function of the seed. The first n mod k folds carry one extra sample,
// matching the usual shuffled k-fold convention.
func kFoldSplits(n, k int, seed int64) [][]int {
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	folds := make([][]int, 0, k)
	base := n / k
	extra := n % k

	start := 0
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		folds = append(folds, perm[start:start+size])
		start += size
	}

	return folds
}

// splitFold separates the design matrix and target into training rows
// (everything outside the fold) and validation rows (the fold itself).
func splitFold(x *mat.Dense, y []float64, fold []int) (trainX *mat.Dense, trainY []float64, valX *mat.Dense, valY []float64) {
	n, cols := x.Dims()

	inFold := make(map[int]bool, len(fold))
	for _, i := range fold {
		inFold[i] = true
	}

	trainX = mat.NewDense(n-len(fold), cols, nil)
	trainY = make([]float64, 0, n-len(fold))
	valX = mat.NewDense(len(fold), cols, nil)
	valY = make([]float64, 0, len(fold))

	trainRow, valRow := 0, 0
	for i := 0; i < n; i++ {
		if inFold[i] {
			valX.SetRow(valRow, x.RawRowView(i))
			valY = append(valY, y[i])
			valRow++
		} else {
			trainX.SetRow(trainRow, x.RawRowView(i))
			trainY = append(trainY, y[i])
			trainRow++
		}
	}

	return trainX, trainY, valX, valY
}
