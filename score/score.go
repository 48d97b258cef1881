// Package score measures how closely the values of a fitted equation follow the observed
// responses it was fitted to.
package score

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrLenMismatch = errors.New("fitted and observed responses have different lengths")

// Scores summarizes the residuals of one fit.
type Scores struct {
	MSE  float64 `json:"mean_squared_error"`
	MAPE float64 `json:"mean_average_percent_error"`
	R2   float64 `json:"r_squared"`
}

// NewScores scores fitted values, ŷ of every point, against the observed responses y.
func NewScores(fitted, observed []float64) (*Scores, error) {
	if err := checkLen(fitted, observed); err != nil {
		return nil, err
	}
	mse, _ := MSE(fitted, observed)
	mape, _ := MAPE(fitted, observed)
	r2, _ := RSquared(fitted, observed)
	return &Scores{
		MSE:  mse,
		MAPE: mape,
		R2:   r2,
	}, nil
}

// MSE is Σ(y-ŷ)²/n, the residual sum of squares the fit minimized divided by the point count.
func MSE(fitted, observed []float64) (float64, error) {
	if err := checkLen(fitted, observed); err != nil {
		return 0, err
	}
	if len(observed) == 0 {
		return 0, nil
	}
	res := floats.SubTo(make([]float64, len(observed)), observed, fitted)
	return floats.Dot(res, res) / float64(len(res)), nil
}

// MAPE is Σ|(y-ŷ)/y|/n. Points observed at y = 0 add nothing but still count towards n.
func MAPE(fitted, observed []float64) (float64, error) {
	if err := checkLen(fitted, observed); err != nil {
		return 0, err
	}
	if len(observed) == 0 {
		return 0, nil
	}
	var sum float64
	for i, y := range observed {
		if y == 0 {
			continue
		}
		sum += math.Abs((y - fitted[i]) / y)
	}
	return sum / float64(len(observed)), nil
}

// RSquared is the coefficient of determination of the fit. A constant response reproduced exactly
// has no variance to explain and scores 1.
func RSquared(fitted, observed []float64) (float64, error) {
	if err := checkLen(fitted, observed); err != nil {
		return 0, err
	}
	r2 := stat.RSquaredFrom(fitted, observed, nil)
	if math.IsNaN(r2) {
		return 1, nil
	}
	return r2, nil
}

func checkLen(fitted, observed []float64) error {
	if len(fitted) != len(observed) {
		return fmt.Errorf("%d fitted for %d observed, %w", len(fitted), len(observed), ErrLenMismatch)
	}
	return nil
}
