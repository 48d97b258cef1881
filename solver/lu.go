package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LU solves through gonum's LU factorization with partial pivoting. Systems gonum reports as
// singular or too ill conditioned are returned as ErrSingularSystem.
type LU struct{}

func (LU) Solve(augmented mat.Matrix) ([]float64, error) {
	a, b, err := split(augmented)
	if err != nil {
		return nil, err
	}

	var lu mat.LU
	lu.Factorize(a)

	x := mat.NewVecDense(b.Len(), nil)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("condition number %g, %w", float64(cond), ErrSingularSystem)
		}
		return nil, err
	}
	return mat.Col(nil, 0, x), nil
}
