package format

import (
	"io"
	"strconv"

	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/family"
	"github.com/aouyang1/go-leastsquares/sums"
	"github.com/olekukonko/tablewriter"
)

// TotalsMarker replaces the row number on the final row of a Grid.
const TotalsMarker = "Σ"

// Grid is the per point breakdown of every quantity a fit sums, plus a totals row.
type Grid struct {
	// Header labels the row number column followed by one label per quantity
	Header []string
	// Rows holds n point rows and a final totals row, all rendered as text
	Rows [][]string
	// Values holds the numbers behind Rows without the row number column
	Values [][]float64
}

// Table tabulates every point's derived values for the family. Row i holds the 1-based row number,
// the final row holds TotalsMarker and the column sums.
func Table[P dataset.Observation](points []P, kind family.Kind, precision int) (*Grid, error) {
	if len(points) == 0 {
		return nil, dataset.ErrEmptyInput
	}
	cols := sums.Columns(kind)
	if cols == nil {
		return nil, family.ErrUnknownFamily
	}

	g := &Grid{
		Header: make([]string, 0, len(cols)+1),
		Rows:   make([][]string, 0, len(points)+1),
		Values: make([][]float64, 0, len(points)+1),
	}
	g.Header = append(g.Header, "i")
	for _, c := range cols {
		g.Header = append(g.Header, c.Column())
	}

	for i, p := range points {
		x1, x2, y := p.Coords()
		vals := make([]float64, len(cols))
		for j, c := range cols {
			v, err := c.Term(x1, x2, y)
			if err != nil {
				return nil, err
			}
			vals[j] = v
		}
		g.Values = append(g.Values, vals)
		g.Rows = append(g.Rows, append([]string{strconv.Itoa(i + 1)}, Floats(vals, precision)...))
	}

	totals, err := sums.Accumulate(points, cols)
	if err != nil {
		return nil, err
	}
	totalVals := make([]float64, len(cols))
	for j, c := range cols {
		totalVals[j] = totals[c]
	}
	g.Values = append(g.Values, totalVals)
	g.Rows = append(g.Rows, append([]string{TotalsMarker}, Floats(totalVals, precision)...))
	return g, nil
}

// Totals returns the final row's values.
func (g *Grid) Totals() []float64 {
	if g == nil || len(g.Values) == 0 {
		return nil
	}
	return g.Values[len(g.Values)-1]
}

// Render draws the grid as a bordered text table with the totals as footer.
func (g *Grid) Render(w io.Writer) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	tbl.SetHeader(g.Header)
	if len(g.Rows) > 0 {
		tbl.AppendBulk(g.Rows[:len(g.Rows)-1])
		tbl.SetFooter(g.Rows[len(g.Rows)-1])
	}
	tbl.Render()
}
