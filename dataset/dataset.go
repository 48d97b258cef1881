// Package dataset holds the observations a least squares fit is computed from.
package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput       = errors.New("no points to fit")
	ErrInsufficientData = errors.New("not enough points for the number of model coefficients")
	ErrColMismatch      = errors.New("column size mismatch")
)

// Observation is any point that can be reduced to up to two predictors and a response.
// Single variable points report x2 as 0.
type Observation interface {
	Coords() (x1, x2, y float64)
}

// Point2D is one observation for the single variable models.
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (p Point2D) Coords() (float64, float64, float64) {
	return p.X, 0, p.Y
}

// Point3D is one observation for the two predictor model.
type Point3D struct {
	X1 float64 `json:"x1" yaml:"x1"`
	X2 float64 `json:"x2" yaml:"x2"`
	Y  float64 `json:"y" yaml:"y"`
}

func (p Point3D) Coords() (float64, float64, float64) {
	return p.X1, p.X2, p.Y
}

// NewPoints2D converts rows of (x, y) into points. Every row must have exactly 2 columns.
func NewPoints2D(rows [][]float64) ([]Point2D, error) {
	if err := checkCols(rows, 2); err != nil {
		return nil, err
	}
	points := make([]Point2D, 0, len(rows))
	for _, row := range rows {
		points = append(points, Point2D{X: row[0], Y: row[1]})
	}
	return points, nil
}

// NewPoints3D converts rows of (x1, x2, y) into points. Every row must have exactly 3 columns.
func NewPoints3D(rows [][]float64) ([]Point3D, error) {
	if err := checkCols(rows, 3); err != nil {
		return nil, err
	}
	points := make([]Point3D, 0, len(rows))
	for _, row := range rows {
		points = append(points, Point3D{X1: row[0], X2: row[1], Y: row[2]})
	}
	return points, nil
}

func checkCols(rows [][]float64, n int) error {
	for i, row := range rows {
		if len(row) != n {
			return fmt.Errorf("at row %d expected %d columns but got %d, %w", i, n, len(row), ErrColMismatch)
		}
	}
	return nil
}

// Validate checks that a point set of size n can determine minPoints coefficients.
func Validate(n, minPoints int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if n < minPoints {
		return fmt.Errorf("got %d points but need at least %d, %w", n, minPoints, ErrInsufficientData)
	}
	return nil
}

// Responses returns the y value of every observation in order.
func Responses[P Observation](points []P) []float64 {
	y := make([]float64, len(points))
	for i, p := range points {
		_, _, y[i] = p.Coords()
	}
	return y
}
