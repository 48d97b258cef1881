package format

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/family"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testData := map[string]struct {
		v         float64
		precision int
		expected  string
	}{
		"zero":              {0, 6, "0.000000"},
		"integer":           {2, 6, "2.000000"},
		"negative":          {-1.5, 6, "-1.500000"},
		"rounds up":         {1.0000006, 6, "1.000001"},
		"large":             {1234567.25, 6, "1234567.250000"},
		"tiny negative":     {-1e-12, 6, "0.000000"},
		"negative zero":     {-0.0, 6, "0.000000"},
		"two places":        {1.4444, 2, "1.44"},
		"zero precision":    {2.6, 0, "3"},
		"negative precison": {2.6, -1, "3"},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, Float(td.v, td.precision))
		})
	}
}

func TestEquation(t *testing.T) {
	testData := map[string]struct {
		coef     []float64
		kind     family.Kind
		expected string
		err      error
	}{
		"linear": {
			coef:     []float64{1.0, 2.0},
			kind:     family.Linear,
			expected: "y = 1.000000 + 2.000000x",
		},
		"polynomial": {
			coef:     []float64{1.0, 2.0, 1.0},
			kind:     family.Polynomial,
			expected: "y = 1.000000 + 2.000000x + 1.000000x²",
		},
		"multiple": {
			coef:     []float64{5.0, 2.0, 3.0},
			kind:     family.Multiple,
			expected: "y = 5.000000 + 2.000000x1 + 3.000000x2",
		},
		"negative slope": {
			coef:     []float64{1.0, -2.5},
			kind:     family.Linear,
			expected: "y = 1.000000 + -2.500000x",
		},
		"too few coefficients": {
			coef: []float64{1.0},
			kind: family.Polynomial,
			err:  ErrCoefficientCount,
		},
		"unknown family": {
			coef: []float64{1.0},
			kind: family.Unknown,
			err:  family.ErrUnknownFamily,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			eq, err := Equation(td.coef, td.kind, DefaultPrecision)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, eq)
		})
	}
}

func TestEquationTitled(t *testing.T) {
	eq, err := EquationTitled([]float64{5.0, 2.0, 3.0}, family.Multiple, DefaultPrecision)
	require.Nil(t, err)
	assert.Equal(t, "Linear function equation:\ny = 5.000000 + 2.000000x1 + 3.000000x2", eq)
	assert.Contains(t, eq, "y = 5.000000 + 2.000000x1 + 3.000000x2")

	_, err = EquationTitled(nil, family.Linear, DefaultPrecision)
	assert.ErrorIs(t, err, ErrCoefficientCount)
}

func TestTable2D(t *testing.T) {
	linear := []dataset.Point2D{{X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}, {X: 4, Y: 9}}
	noisy := dataset.AddNoise(dataset.GeneratePolynomial(dataset.GenerateX(9, -1.3, 0.7), 1, 2, 1), 0.3, 11)

	testData := map[string]struct {
		points []dataset.Point2D
		kind   family.Kind
		header []string
		cols   int
	}{
		"linear": {
			points: linear,
			kind:   family.Linear,
			header: []string{"i", "x", "y", "x²", "xy"},
			cols:   5,
		},
		"polynomial": {
			points: noisy,
			kind:   family.Polynomial,
			header: []string{"i", "x", "y", "x²", "x³", "x⁴", "xy", "x²y"},
			cols:   8,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			g, err := Table(td.points, td.kind, DefaultPrecision)
			require.Nil(t, err)
			checkGrid(t, g, len(td.points), td.cols)
			assert.Equal(t, td.header, g.Header)
		})
	}
}

func TestTable3D(t *testing.T) {
	points := []dataset.Point3D{{X1: 1, X2: 2, Y: 13}, {X1: 2, X2: 1, Y: 12}, {X1: 3, X2: 4, Y: 23}, {X1: 4, X2: 3, Y: 22}}

	g, err := Table(points, family.Multiple, DefaultPrecision)
	require.Nil(t, err)
	checkGrid(t, g, len(points), 9)
	assert.Equal(t, []string{"i", "x1", "x2", "y", "x1²", "x2²", "x1x2", "x1y", "x2y"}, g.Header)
	assert.Equal(t, []string{"1", "1.000000", "2.000000", "13.000000", "1.000000", "4.000000", "2.000000", "13.000000", "26.000000"}, g.Rows[0])
	assert.Equal(t, []float64{10, 10, 70, 30, 30, 28, 194, 196}, g.Totals())
}

func TestTableErrors(t *testing.T) {
	_, err := Table([]dataset.Point2D{}, family.Linear, DefaultPrecision)
	assert.ErrorIs(t, err, dataset.ErrEmptyInput)

	_, err = Table([]dataset.Point2D{{X: 1, Y: 1}}, family.Unknown, DefaultPrecision)
	assert.ErrorIs(t, err, family.ErrUnknownFamily)
}

func checkGrid(t *testing.T, g *Grid, n, cols int) {
	t.Helper()

	require.Len(t, g.Rows, n+1)
	require.Len(t, g.Values, n+1)
	require.Len(t, g.Header, cols)

	for i, row := range g.Rows {
		assert.Len(t, row, cols, "row %d", i)
		if i < n {
			assert.Equal(t, strconv.Itoa(i+1), row[0])
		}
	}
	last := g.Rows[n]
	assert.Equal(t, TotalsMarker, last[0])

	colSums := make([]float64, cols-1)
	for i := 0; i < n; i++ {
		for j, v := range g.Values[i] {
			colSums[j] += v
		}
	}
	assert.Equal(t, colSums, g.Totals())
	assert.Equal(t, Floats(colSums, DefaultPrecision), last[1:])
}

func TestGridRender(t *testing.T) {
	points := []dataset.Point2D{{X: 1, Y: 3}, {X: 2, Y: 5}}
	g, err := Table(points, family.Linear, DefaultPrecision)
	require.Nil(t, err)

	var buf bytes.Buffer
	g.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "x²")
	assert.Contains(t, out, "10.000000")
	assert.Contains(t, out, TotalsMarker)
	// header, two rows, footer and the borders between them
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 6)
}
