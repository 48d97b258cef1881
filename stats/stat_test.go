package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutliers(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		factor   float64
		expected []int
	}{
		"single spike": {
			y:        []float64{0.1, -0.2, 0.05, 0.0, -0.1, 5.0, 0.15, -0.05},
			factor:   1.5,
			expected: []int{5},
		},
		"spikes on both sides": {
			y:        []float64{-4.0, 0.1, -0.2, 0.05, 0.0, -0.1, 5.0, 0.15, -0.05},
			factor:   1.5,
			expected: []int{0, 6},
		},
		"perfect fit": {
			y:      []float64{0, 0, 0, 0},
			factor: 1.5,
		},
		"empty": {
			factor: 1.5,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, Outliers(td.y, 0.25, 0.75, td.factor))
		})
	}
}

func TestVarianceInflation(t *testing.T) {
	testData := map[string]struct {
		x1       []float64
		x2       []float64
		expected float64
		err      error
	}{
		"correlated": {
			x1:       []float64{1, 2, 3, 4},
			x2:       []float64{2, 1, 4, 3},
			expected: 1.5625,
		},
		"uncorrelated": {
			x1:       []float64{1, 2, 1, 2},
			x2:       []float64{1, 1, 2, 2},
			expected: 1,
		},
		"collinear": {
			x1:       []float64{1, 2, 3},
			x2:       []float64{2, 4, 6},
			expected: math.Inf(1),
		},
		"constant": {
			x1:  []float64{1, 2, 3},
			x2:  []float64{5, 5, 5},
			err: ErrConstantFeature,
		},
		"length mismatch": {
			x1:  []float64{1, 2, 3},
			x2:  []float64{1, 2},
			err: ErrFeatureLenMismatch,
		},
		"too short": {
			x1:  []float64{1},
			x2:  []float64{1},
			err: ErrFeatureLen,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			vif, err := VarianceInflation(td.x1, td.x2)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			if math.IsInf(td.expected, 1) {
				assert.True(t, vif > 1e12)
				return
			}
			assert.InDelta(t, td.expected, vif, 1e-9)
		})
	}
}
