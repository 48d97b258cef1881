// Package solver solves square linear systems given in augmented form [A | b].
package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrSingularSystem = errors.New("system has no unique solution")
	ErrNotAugmented   = errors.New("matrix is not a k x (k+1) augmented system")
	ErrNoMatrix       = errors.New("no matrix to solve")
)

// Solver returns the unique solution x of A·x = b for an augmented k x (k+1) matrix [A | b].
// Implementations must return ErrSingularSystem, possibly wrapped, when no unique solution exists.
type Solver interface {
	Solve(augmented mat.Matrix) ([]float64, error)
}

// New returns the solver registered under name, "gauss" or "lu".
func New(name string) (Solver, error) {
	switch name {
	case "", "gauss":
		return NewGauss(), nil
	case "lu":
		return LU{}, nil
	default:
		return nil, fmt.Errorf("unknown solver %q", name)
	}
}

func split(augmented mat.Matrix) (*mat.Dense, *mat.VecDense, error) {
	if augmented == nil {
		return nil, nil, ErrNoMatrix
	}
	k, c := augmented.Dims()
	if k == 0 || c != k+1 {
		return nil, nil, fmt.Errorf("got %d x %d, %w", k, c, ErrNotAugmented)
	}
	a := mat.DenseCopyOf(augmented)
	b := mat.NewVecDense(k, mat.Col(nil, k, augmented))
	return a.Slice(0, k, 0, k).(*mat.Dense), b, nil
}
