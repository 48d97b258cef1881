// Package sums reduces a point set into the power sums and cross sums the normal equations
// are assembled from.
package sums

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/family"
)

var (
	ErrUnknownSum = errors.New("unknown sum kind")
	ErrMissingSum = errors.New("sum not present in table")
)

// Kind names one accumulated sum. The value doubles as its display label.
type Kind string

const (
	X     Kind = "Σx"
	Y     Kind = "Σy"
	XY    Kind = "Σxy"
	XSq   Kind = "Σx²"
	XCube Kind = "Σx³"
	XQuad Kind = "Σx⁴"
	XSqY  Kind = "Σx²y"

	X1   Kind = "Σx1"
	X2   Kind = "Σx2"
	X1Sq Kind = "Σx1²"
	X2Sq Kind = "Σx2²"
	X1X2 Kind = "Σx1x2"
	X1Y  Kind = "Σx1y"
	X2Y  Kind = "Σx2y"
)

func (k Kind) String() string {
	return string(k)
}

// Column is the label of the per point quantity that k sums, e.g. "x²" for Σx².
func (k Kind) Column() string {
	return strings.TrimPrefix(string(k), "Σ")
}

// Term evaluates the per point quantity that k sums. Single variable points pass x as x1.
func (k Kind) Term(x1, x2, y float64) (float64, error) {
	switch k {
	case X, X1:
		return x1, nil
	case X2:
		return x2, nil
	case Y:
		return y, nil
	case XY, X1Y:
		return x1 * y, nil
	case XSq, X1Sq:
		return x1 * x1, nil
	case XCube:
		return x1 * x1 * x1, nil
	case XQuad:
		sq := x1 * x1
		return sq * sq, nil
	case XSqY:
		return x1 * x1 * y, nil
	case X2Sq:
		return x2 * x2, nil
	case X1X2:
		return x1 * x2, nil
	case X2Y:
		return x2 * y, nil
	default:
		return 0, fmt.Errorf("%q, %w", string(k), ErrUnknownSum)
	}
}

// Required lists the sums a family's normal equations need, in display order.
func Required(kind family.Kind) []Kind {
	switch kind {
	case family.Linear:
		return []Kind{X, Y, XY, XSq}
	case family.Polynomial:
		return []Kind{X, XSq, XCube, XQuad, Y, XY, XSqY}
	case family.Multiple:
		return []Kind{X1, X2, Y, X1Sq, X2Sq, X1X2, X1Y, X2Y}
	default:
		return nil
	}
}

// Columns lists the per point quantities tabulated for a family, in table order.
func Columns(kind family.Kind) []Kind {
	switch kind {
	case family.Linear:
		return []Kind{X, Y, XSq, XY}
	case family.Polynomial:
		return []Kind{X, Y, XSq, XCube, XQuad, XY, XSqY}
	case family.Multiple:
		return []Kind{X1, X2, Y, X1Sq, X2Sq, X1X2, X1Y, X2Y}
	default:
		return nil
	}
}

// Table maps each accumulated sum to its value.
type Table map[Kind]float64

// Get returns the value of sum k or ErrMissingSum if it was never accumulated.
func (t Table) Get(k Kind) (float64, error) {
	v, exists := t[k]
	if !exists {
		return 0, fmt.Errorf("%s, %w", k, ErrMissingSum)
	}
	return v, nil
}

// Accumulate computes every required sum in a single pass over points. Values are added in point
// order with plain float64 arithmetic.
func Accumulate[P dataset.Observation](points []P, required []Kind) (Table, error) {
	if len(points) == 0 {
		return nil, dataset.ErrEmptyInput
	}

	acc := make([]float64, len(required))
	for _, p := range points {
		x1, x2, y := p.Coords()
		for i, k := range required {
			term, err := k.Term(x1, x2, y)
			if err != nil {
				return nil, err
			}
			acc[i] += term
		}
	}

	t := make(Table, len(required))
	for i, k := range required {
		t[k] = acc[i]
	}
	return t, nil
}
