package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aouyang1/go-leastsquares/family"
)

var ErrCoefficientCount = errors.New("coefficient count does not match model family")

// termSuffixes names the variable multiplied by each coefficient a0..a2.
func termSuffixes(kind family.Kind) []string {
	switch kind {
	case family.Linear:
		return []string{"", "x"}
	case family.Polynomial:
		return []string{"", "x", "x²"}
	case family.Multiple:
		return []string{"", "x1", "x2"}
	default:
		return nil
	}
}

// Equation renders coefficients in the family's canonical form, e.g. y = 1.000000 + 2.000000x.
// Coefficients are joined with " + " whatever their sign.
func Equation(coef []float64, kind family.Kind, precision int) (string, error) {
	suffixes := termSuffixes(kind)
	if suffixes == nil {
		return "", fmt.Errorf("%s, %w", kind, family.ErrUnknownFamily)
	}
	if len(coef) != len(suffixes) {
		return "", fmt.Errorf("got %d coefficients for %s model, expected %d, %w",
			len(coef), kind, len(suffixes), ErrCoefficientCount)
	}

	var sb strings.Builder
	sb.WriteString("y = ")
	for i, c := range coef {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(Float(c, precision))
		sb.WriteString(suffixes[i])
	}
	return sb.String(), nil
}

// EquationTitled prefixes Equation with the family's heading line.
func EquationTitled(coef []float64, kind family.Kind, precision int) (string, error) {
	eq, err := Equation(coef, kind, precision)
	if err != nil {
		return "", err
	}
	return kind.Title() + ":\n" + eq, nil
}
