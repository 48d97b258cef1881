// Package format renders fit inputs and results as fixed decimal text. Every function is pure and
// takes the precision explicitly so no formatting state is shared.
package format

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimal places used for every displayed quantity.
const DefaultPrecision = 6

// Float renders v in fixed decimal notation with precision digits after the point. The output does
// not depend on the host locale. A value that rounds to zero is printed without a sign.
func Float(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

// Floats renders every value of v with Float.
func Floats(v []float64, precision int) []string {
	out := make([]string, len(v))
	for i, val := range v {
		out[i] = Float(val, precision)
	}
	return out
}
