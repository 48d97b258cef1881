package leastsquares

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/family"
	"github.com/aouyang1/go-leastsquares/format"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func indentExpand(indent string, growth int) string {
	indentByte := []byte(indent)
	out := make([]byte, 0, len(indent)*growth)
	for i := 0; i < growth; i++ {
		out = append(out, indentByte...)
	}
	return string(out)
}

// LineFit generates an echart line chart of the observed responses against the fitted values.
// Single variable models are plotted in increasing x; the multiple model is plotted by row.
func LineFit(res *Result, rows [][]float64) (*charts.Line, error) {
	if res == nil {
		return nil, ErrNoResult
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	title, err := res.Equation()
	if err != nil {
		return nil, err
	}

	type plotPoint struct {
		label  string
		x1, x2 float64
		y      float64
	}
	pts := make([]plotPoint, 0, len(rows))
	switch res.Model {
	case family.Multiple:
		points, err := dataset.NewPoints3D(rows)
		if err != nil {
			return nil, err
		}
		for i, p := range points {
			pts = append(pts, plotPoint{label: strconv.Itoa(i + 1), x1: p.X1, x2: p.X2, y: p.Y})
		}
	default:
		points, err := dataset.NewPoints2D(rows)
		if err != nil {
			return nil, err
		}
		slices.SortStableFunc(points, func(a, b dataset.Point2D) int {
			switch {
			case a.X < b.X:
				return -1
			case a.X > b.X:
				return 1
			}
			return 0
		})
		for _, p := range points {
			pts = append(pts, plotPoint{label: format.Float(p.X, res.Precision), x1: p.X, y: p.Y})
		}
	}

	xAxis := make([]string, 0, len(pts))
	lineDataActual := make([]opts.LineData, 0, len(pts))
	lineDataFit := make([]opts.LineData, 0, len(pts))
	for _, p := range pts {
		xAxis = append(xAxis, p.label)
		lineDataActual = append(lineDataActual, opts.LineData{Value: p.y})
		lineDataFit = append(lineDataFit, opts.LineData{Value: res.evaluate(p.x1, p.x2)})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title:    fmt.Sprintf("Least Squares Fit (%s)", res.Model),
				Subtitle: title,
			},
		),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	line.SetXAxis(xAxis).
		AddSeries("Actual", lineDataActual).
		AddSeries("Fit", lineDataFit)
	return line, nil
}

// PlotFit renders LineFit as an html page.
func PlotFit(w io.Writer, res *Result, rows [][]float64) error {
	line, err := LineFit(res, rows)
	if err != nil {
		return err
	}
	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}
