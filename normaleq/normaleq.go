// Package normaleq arranges accumulated sums into the least squares normal equations.
package normaleq

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-leastsquares/family"
	mat_ "github.com/aouyang1/go-leastsquares/mat"
	"github.com/aouyang1/go-leastsquares/solver"
	"github.com/aouyang1/go-leastsquares/sums"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Count is the layout symbol for the number of points.
const Count = "n"

// degenerateTol bounds the relative gap between n·Σx² and (Σx)² below which the closed form is
// refused. The comparison is relative only so that small scale x values still fit.
const degenerateTol = 1e-12

var ErrInvalidCount = errors.New("point count must be positive")

// Layout returns the symbolic augmented matrix of a family. Each cell is either Count or a
// sums.Kind label. The last column is the right hand side.
func Layout(kind family.Kind) [][]string {
	switch kind {
	case family.Linear:
		return [][]string{
			{Count, sums.X.String(), sums.Y.String()},
			{sums.X.String(), sums.XSq.String(), sums.XY.String()},
		}
	case family.Polynomial:
		return [][]string{
			{Count, sums.X.String(), sums.XSq.String(), sums.Y.String()},
			{sums.X.String(), sums.XSq.String(), sums.XCube.String(), sums.XY.String()},
			{sums.XSq.String(), sums.XCube.String(), sums.XQuad.String(), sums.XSqY.String()},
		}
	case family.Multiple:
		return [][]string{
			{Count, sums.X1.String(), sums.X2.String(), sums.Y.String()},
			{sums.X1.String(), sums.X1Sq.String(), sums.X1X2.String(), sums.X1Y.String()},
			{sums.X2.String(), sums.X1X2.String(), sums.X2Sq.String(), sums.X2Y.String()},
		}
	default:
		return nil
	}
}

// Build fills the family's layout with values from t and n. No solving is done.
func Build(kind family.Kind, t sums.Table, n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("got %d, %w", n, ErrInvalidCount)
	}
	layout := Layout(kind)
	if layout == nil {
		return nil, fmt.Errorf("%s, %w", kind, family.ErrUnknownFamily)
	}

	rows := make([][]float64, len(layout))
	for i, symbols := range layout {
		rows[i] = make([]float64, len(symbols))
		for j, sym := range symbols {
			if sym == Count {
				rows[i][j] = float64(n)
				continue
			}
			v, err := t.Get(sums.Kind(sym))
			if err != nil {
				return nil, fmt.Errorf("unable to build %s normal equations, %w", kind, err)
			}
			rows[i][j] = v
		}
	}
	return mat_.NewDenseFromArray(rows)
}

// LinearSolution holds the closed form simple linear fit and the intermediates it was derived from.
type LinearSolution struct {
	N           int
	Numerator   float64 // n·Σxy − Σx·Σy
	Denominator float64 // n·Σx² − (Σx)²
	MeanX       float64
	MeanY       float64
	A0          float64
	A1          float64
}

// Coefficients returns [a0, a1].
func (l LinearSolution) Coefficients() []float64 {
	return []float64{l.A0, l.A1}
}

// SolveLinear computes a1 = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²) and a0 = ȳ − a1·x̄. All x being equal
// makes the denominator vanish and returns solver.ErrSingularSystem.
func SolveLinear(t sums.Table, n int) (LinearSolution, error) {
	if n <= 0 {
		return LinearSolution{}, fmt.Errorf("got %d, %w", n, ErrInvalidCount)
	}
	vals := make(map[sums.Kind]float64, 4)
	for _, k := range sums.Required(family.Linear) {
		v, err := t.Get(k)
		if err != nil {
			return LinearSolution{}, fmt.Errorf("unable to solve linear closed form, %w", err)
		}
		vals[k] = v
	}
	sx, sy, sxy, sxx := vals[sums.X], vals[sums.Y], vals[sums.XY], vals[sums.XSq]
	nf := float64(n)

	nsxx := nf * sxx
	sxsx := sx * sx
	if scalar.EqualWithinRel(nsxx, sxsx, degenerateTol) {
		return LinearSolution{}, fmt.Errorf("n·Σx² equals (Σx)², every x is the same, %w", solver.ErrSingularSystem)
	}

	sol := LinearSolution{
		N:           n,
		Numerator:   nf*sxy - sx*sy,
		Denominator: nsxx - sxsx,
		MeanX:       sx / nf,
		MeanY:       sy / nf,
	}
	sol.A1 = sol.Numerator / sol.Denominator
	sol.A0 = sol.MeanY - sol.A1*sol.MeanX
	return sol, nil
}
