package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultPivotTolerance is the pivot magnitude, relative to the largest coefficient of A,
// below which a column is considered to have no usable pivot.
const DefaultPivotTolerance = 1e-12

// Gauss solves by forward elimination with partial row pivoting followed by back substitution.
type Gauss struct {
	PivotTolerance float64
}

func NewGauss() Gauss {
	return Gauss{PivotTolerance: DefaultPivotTolerance}
}

func (g Gauss) Solve(augmented mat.Matrix) ([]float64, error) {
	a, b, err := split(augmented)
	if err != nil {
		return nil, err
	}
	k := b.Len()

	scale := mat.Norm(a, math.Inf(1))
	if scale == 0 {
		return nil, fmt.Errorf("all coefficients are zero, %w", ErrSingularSystem)
	}
	tol := g.PivotTolerance * scale

	for col := 0; col < k; col++ {
		// pick the row with the largest magnitude in this column
		pivotRow := col
		for r := col + 1; r < k; r++ {
			if math.Abs(a.At(r, col)) > math.Abs(a.At(pivotRow, col)) {
				pivotRow = r
			}
		}
		pivot := a.At(pivotRow, col)
		if math.Abs(pivot) <= tol {
			return nil, fmt.Errorf("zero pivot in column %d, %w", col, ErrSingularSystem)
		}
		if pivotRow != col {
			swapRows(a, b, pivotRow, col)
		}

		for r := col + 1; r < k; r++ {
			factor := a.At(r, col) / pivot
			if factor == 0 {
				continue
			}
			for c := col; c < k; c++ {
				a.Set(r, c, a.At(r, c)-factor*a.At(col, c))
			}
			b.SetVec(r, b.AtVec(r)-factor*b.AtVec(col))
		}
	}

	x := make([]float64, k)
	for i := k - 1; i >= 0; i-- {
		x[i] = b.AtVec(i)
		for j := i + 1; j < k; j++ {
			x[i] -= a.At(i, j) * x[j]
		}
		x[i] /= a.At(i, i)
	}
	return x, nil
}

func swapRows(a *mat.Dense, b *mat.VecDense, i, j int) {
	ri := mat.Row(nil, i, a)
	rj := mat.Row(nil, j, a)
	a.SetRow(i, rj)
	a.SetRow(j, ri)

	bi := b.AtVec(i)
	b.SetVec(i, b.AtVec(j))
	b.SetVec(j, bi)
}
