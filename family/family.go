// Package family enumerates the supported regression model families.
package family

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFamily = errors.New("unknown model family")

// Kind identifies a model family. Each family has a fixed number of coefficients.
type Kind uint8

const (
	Unknown Kind = iota
	// Linear is the simple linear model y = a0 + a1x
	Linear
	// Polynomial is the degree 2 polynomial y = a0 + a1x + a2x²
	Polynomial
	// Multiple is the two predictor linear model y = a0 + a1x1 + a2x2
	Multiple
)

var kindNames = map[Kind]string{
	Linear:     "linear",
	Polynomial: "polynomial",
	Multiple:   "multiple",
}

// All lists every supported family in a fixed order.
func All() []Kind {
	return []Kind{Linear, Polynomial, Multiple}
}

func (k Kind) String() string {
	if name, exists := kindNames[k]; exists {
		return name
	}
	return "unknown"
}

// Valid reports whether k is a supported family.
func (k Kind) Valid() bool {
	_, exists := kindNames[k]
	return exists
}

// Coefficients is the number of unknown coefficients a0..a(k-1) of the family.
func (k Kind) Coefficients() int {
	switch k {
	case Linear:
		return 2
	case Polynomial, Multiple:
		return 3
	default:
		return 0
	}
}

// MinPoints is the smallest point count that does not guarantee a singular system.
func (k Kind) MinPoints() int {
	return k.Coefficients()
}

// Predictors is the number of independent variables per observation.
func (k Kind) Predictors() int {
	if k == Multiple {
		return 2
	}
	return 1
}

// Columns is the width of a raw observation row, the predictors plus the response.
func (k Kind) Columns() int {
	return k.Predictors() + 1
}

// Title is the human readable heading for the fitted equation.
func (k Kind) Title() string {
	switch k {
	case Linear:
		return "Line equation"
	case Polynomial:
		return "Parabola equation"
	case Multiple:
		return "Linear function equation"
	default:
		return ""
	}
}

// Parse resolves a family from its name, ignoring case and surrounding space.
func Parse(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return Unknown, fmt.Errorf("%q, %w", s, ErrUnknownFamily)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%d, %w", uint8(k), ErrUnknownFamily)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
