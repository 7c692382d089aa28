package distance

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute tolerance used when comparing computed distances.
const Epsilon = 1e-6

// DistFunc computes the distance between (x1, y1) and (x2, y2).
type DistFunc func(x1, y1, x2, y2 int) float64

// Point is an integer coordinate pair on the plane.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ComputeDistance returns the Euclidean distance between (x1, y1) and (x2, y2).
func ComputeDistance(x1, y1, x2, y2 int) float64 {
	// Convert before subtracting so wide coordinates do not wrap around.
	dx := float64(x2) - float64(x1)
	dy := float64(y2) - float64(y1)
	return math.Sqrt(dx*dx + dy*dy)
}

func Between(a, b Point) float64 {
	return ComputeDistance(a.X, a.Y, b.X, b.Y)
}

// ApproxEqual reports whether got is within tol of want.
func ApproxEqual(got, want, tol float64) bool {
	return scalar.EqualWithinAbs(got, want, tol)
}
