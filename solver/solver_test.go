package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func solvers() map[string]Solver {
	return map[string]Solver{
		"gauss": NewGauss(),
		"lu":    LU{},
	}
}

func TestSolve(t *testing.T) {
	testData := map[string]struct {
		rows     int
		cols     int
		data     []float64
		expected []float64
		err      error
	}{
		"polynomial normal equations": {
			3, 4,
			[]float64{
				4, 10, 30, 54,
				10, 30, 100, 170,
				30, 100, 354, 584,
			},
			[]float64{1, 2, 1},
			nil,
		},
		"multiple normal equations": {
			3, 4,
			[]float64{
				4, 10, 10, 70,
				10, 30, 28, 194,
				10, 28, 30, 196,
			},
			[]float64{5, 2, 3},
			nil,
		},
		"requires row exchange": {
			2, 3,
			[]float64{
				0, 1, 3,
				2, 1, 5,
			},
			[]float64{1, 3},
			nil,
		},
		"single unknown": {
			1, 2,
			[]float64{4, 8},
			[]float64{2},
			nil,
		},
		"singular duplicated row": {
			3, 4,
			[]float64{
				1, 2, 3, 6,
				2, 4, 6, 12,
				1, 0, 1, 2,
			},
			nil,
			ErrSingularSystem,
		},
		"all zeros": {
			2, 3,
			[]float64{0, 0, 0, 0, 0, 0},
			nil,
			ErrSingularSystem,
		},
		"square matrix": {
			2, 2,
			[]float64{1, 0, 0, 1},
			nil,
			ErrNotAugmented,
		},
		"too wide": {
			2, 4,
			[]float64{1, 0, 0, 1, 0, 1, 0, 1},
			nil,
			ErrNotAugmented,
		},
	}

	for solverName, s := range solvers() {
		for name, td := range testData {
			t.Run(solverName+"/"+name, func(t *testing.T) {
				x, err := s.Solve(mat.NewDense(td.rows, td.cols, td.data))
				if td.err != nil {
					require.ErrorIs(t, err, td.err)
					return
				}
				require.Nil(t, err)
				assert.InDeltaSlice(t, td.expected, x, 1e-9)
			})
		}
	}
}

func TestSolveNil(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			_, err := s.Solve(nil)
			assert.ErrorIs(t, err, ErrNoMatrix)
		})
	}
}

func TestSolveLeavesInputUntouched(t *testing.T) {
	data := []float64{
		0, 1, 3,
		2, 1, 5,
	}
	aug := mat.NewDense(2, 3, append([]float64(nil), data...))

	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			_, err := s.Solve(aug)
			require.Nil(t, err)
			assert.Equal(t, data, aug.RawMatrix().Data)
		})
	}
}

func TestNew(t *testing.T) {
	s, err := New("")
	require.Nil(t, err)
	assert.IsType(t, Gauss{}, s)

	s, err = New("lu")
	require.Nil(t, err)
	assert.IsType(t, LU{}, s)

	_, err = New("qr")
	assert.NotNil(t, err)
}
