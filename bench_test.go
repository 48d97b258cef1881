package leastsquares

import (
	"testing"

	"github.com/aouyang1/go-leastsquares/dataset"
	"github.com/aouyang1/go-leastsquares/solver"
	"github.com/pkg/profile"
)

var benchCoef []float64

func benchPoints() ([]dataset.Point2D, []dataset.Point3D) {
	x := dataset.GenerateX(10000, -50, 0.01)
	parabola := dataset.AddNoise(dataset.GeneratePolynomial(x, 3, -1, 0.5), 2.0, 1)

	x2 := make([]float64, len(x))
	for i := range x2 {
		x2[i] = float64(i%37) - 18
	}
	plane := dataset.AddNoise(dataset.GeneratePlane(x, x2, 5, 2, 3), 2.0, 2)
	return parabola, plane
}

func BenchmarkFitLinear(b *testing.B) {
	parabola, _ := benchPoints()
	e, err := New(nil)
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	for b.Loop() {
		benchCoef, err = e.FitLinear(parabola)
		if err != nil {
			panic(err)
		}
	}
}

func BenchmarkFitPolynomial(b *testing.B) {
	parabola, _ := benchPoints()
	testData := map[string]*Options{
		"gauss": {Solver: solver.NewGauss()},
		"lu":    {Solver: solver.LU{}},
	}
	for name, opt := range testData {
		b.Run(name, func(b *testing.B) {
			e, err := New(opt)
			if err != nil {
				panic(err)
			}
			b.ResetTimer()
			for b.Loop() {
				benchCoef, err = e.FitPolynomial(parabola)
				if err != nil {
					panic(err)
				}
			}
		})
	}
}

func BenchmarkFitMultipleCrossCheck(b *testing.B) {
	_, plane := benchPoints()
	e, err := New(&Options{CrossCheck: true})
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchCoef, err = e.FitMultiple(plane)
		if err != nil {
			panic(err)
		}
	}
}
