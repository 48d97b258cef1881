package dataset

import (
	"math/rand/v2"
)

// GenerateX returns n evenly spaced values starting at start.
func GenerateX(n int, start, step float64) []float64 {
	x := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, start+step*float64(i))
	}
	return x
}

// GeneratePolynomial evaluates y = c[0] + c[1]x + c[2]x^2 + ... at every x.
func GeneratePolynomial(x []float64, c ...float64) []Point2D {
	points := make([]Point2D, 0, len(x))
	for _, xi := range x {
		var y, p float64 = 0, 1
		for _, ci := range c {
			y += ci * p
			p *= xi
		}
		points = append(points, Point2D{X: xi, Y: y})
	}
	return points
}

// GeneratePlane evaluates y = a0 + a1*x1 + a2*x2 over every pairing of x1[i] with x2[i].
func GeneratePlane(x1, x2 []float64, a0, a1, a2 float64) []Point3D {
	n := min(len(x1), len(x2))
	points := make([]Point3D, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, Point3D{X1: x1[i], X2: x2[i], Y: a0 + a1*x1[i] + a2*x2[i]})
	}
	return points
}

// AddNoise perturbs the response of every point with gaussian noise of the given standard deviation.
// The seed makes the perturbation reproducible.
func AddNoise[P Point2D | Point3D](points []P, stddev float64, seed uint64) []P {
	r := rand.New(rand.NewPCG(seed, seed))
	out := make([]P, len(points))
	for i, p := range points {
		noise := r.NormFloat64() * stddev
		switch v := any(p).(type) {
		case Point2D:
			v.Y += noise
			out[i] = any(v).(P)
		case Point3D:
			v.Y += noise
			out[i] = any(v).(P)
		}
	}
	return out
}
