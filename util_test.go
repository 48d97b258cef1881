package leastsquares

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/family"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndentExpand(t *testing.T) {
	testData := map[string]struct {
		indent   string
		growth   int
		expected string
	}{
		"no growth":  {indent: "  ", growth: 0, expected: ""},
		"one level":  {indent: "  ", growth: 1, expected: "  "},
		"two levels": {indent: "**", growth: 2, expected: "****"},
		"no indent":  {indent: "", growth: 3, expected: ""},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, indentExpand(td.indent, td.growth))
		})
	}
}

func TestLineFit(t *testing.T) {
	line := &Result{Model: family.Linear, Precision: 2, Coefficients: []float64{1, 2}}
	plane := &Result{Model: family.Multiple, Precision: 6, Coefficients: []float64{5, 2, 3}}

	testData := map[string]struct {
		res   *Result
		rows  [][]float64
		xAxis []string
		err   error
	}{
		"linear sorted by x": {
			res:   line,
			rows:  [][]float64{{3, 7}, {1, 3}, {2, 5}},
			xAxis: []string{"1.00", "2.00", "3.00"},
		},
		"multiple by row": {
			res:   plane,
			rows:  [][]float64{{1, 2, 13}, {2, 1, 12}},
			xAxis: []string{"1", "2"},
		},
		"no result": {
			rows: [][]float64{{1, 3}},
			err:  ErrNoResult,
		},
		"no rows": {
			res: line,
			err: ErrEmptyInput,
		},
		"wrong width": {
			res:  plane,
			rows: [][]float64{{1, 2}},
			err:  dataset.ErrColMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			chart, err := LineFit(td.res, td.rows)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			require.NotEmpty(t, chart.XAxisList)
			assert.Equal(t, td.xAxis, chart.XAxisList[0].Data)
		})
	}
}

func TestPlotFit(t *testing.T) {
	e := newTestEngine(t, nil)
	_, err := e.FitPolynomial(parabolaPoints)
	require.Nil(t, err)
	res, err := e.Result()
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, PlotFit(&buf, res, [][]float64{{1, 4}, {2, 9}, {3, 16}, {4, 25}}))
	assert.Contains(t, buf.String(), "</html>")
	assert.Contains(t, buf.String(), "echarts")

	assert.ErrorIs(t, PlotFit(&buf, nil, nil), ErrNoResult)
}
