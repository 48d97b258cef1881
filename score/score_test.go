package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScores(t *testing.T) {
	testData := map[string]struct {
		fitted   []float64
		observed []float64
		expected *Scores
		err      error
	}{
		"perfect": {
			fitted:   []float64{3, 5, 7, 9},
			observed: []float64{3, 5, 7, 9},
			expected: &Scores{MSE: 0, MAPE: 0, R2: 1},
		},
		"off by one": {
			fitted:   []float64{2, 4, 6, 8},
			observed: []float64{1, 3, 5, 7},
			expected: &Scores{MSE: 1, MAPE: (1.0 + 1.0/3 + 1.0/5 + 1.0/7) / 4, R2: 1 - 4.0/20},
		},
		"zero observed skipped in mape": {
			fitted:   []float64{1, 2},
			observed: []float64{0, 2},
			expected: &Scores{MSE: 0.5, MAPE: 0, R2: 0.5},
		},
		"length mismatch": {
			fitted:   []float64{1},
			observed: []float64{1, 2},
			err:      ErrLenMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := NewScores(td.fitted, td.observed)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDelta(t, td.expected.MSE, s.MSE, 1e-9, "mse")
			assert.InDelta(t, td.expected.MAPE, s.MAPE, 1e-9, "mape")
			assert.InDelta(t, td.expected.R2, s.R2, 1e-9, "r2")
		})
	}
}

func TestConstantResponse(t *testing.T) {
	r2, err := RSquared([]float64{4, 4, 4}, []float64{4, 4, 4})
	require.Nil(t, err)
	assert.Equal(t, 1.0, r2)
}

func TestEmpty(t *testing.T) {
	mse, err := MSE(nil, nil)
	require.Nil(t, err)
	assert.Equal(t, 0.0, mse)

	mape, err := MAPE(nil, nil)
	require.Nil(t, err)
	assert.Equal(t, 0.0, mape)
}
