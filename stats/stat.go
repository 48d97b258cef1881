// Package stats computes diagnostics of a finished fit from its residuals and predictors.
package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrFeatureLenMismatch = errors.New("predictors have different lengths")
	ErrFeatureLen         = errors.New("must have at least 2 points per predictor")
	ErrConstantFeature    = errors.New("predictor has no variance")
)

// Outliers returns the indices of the values lying strictly outside the Tukey fences. The fences
// are the lowerPerc and upperPerc empirical quantiles widened by tukeyFactor times their range.
func Outliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	if len(y) == 0 {
		return nil
	}
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	sorted := make([]float64, len(y))
	copy(sorted, y)
	sort.Float64s(sorted)

	lower := stat.Quantile(lowerPerc, stat.Empirical, sorted, nil)
	upper := stat.Quantile(upperPerc, stat.Empirical, sorted, nil)
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i, v := range y {
		if v > upper || v < lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}

// VarianceInflation returns 1/(1-r²) where r is the correlation of the two predictors. It is 1 for
// uncorrelated predictors and grows without bound as they approach collinearity.
func VarianceInflation(x1, x2 []float64) (float64, error) {
	if len(x1) != len(x2) {
		return 0, ErrFeatureLenMismatch
	}
	if len(x1) < 2 {
		return 0, ErrFeatureLen
	}
	if stat.Variance(x1, nil) == 0 || stat.Variance(x2, nil) == 0 {
		return 0, ErrConstantFeature
	}

	r2 := math.Pow(stat.Correlation(x1, x2, nil), 2)
	if r2 >= 1 {
		return math.Inf(1), nil
	}
	return 1 / (1 - r2), nil
}
