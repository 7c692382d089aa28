package distance

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pointTable = []struct {
	name string
	a    Point
	b    Point
	want float64
}{
	{"Given", Point{4, 3}, Point{5, 1}, 2.236068},
	{"Triangle", Point{0, 0}, Point{3, 4}, 5},
	{"Same", Point{2, 2}, Point{2, 2}, 0},
	{"Negative", Point{-1, -1}, Point{2, 3}, 5},
	{"Horizontal", Point{0, 0}, Point{10, 0}, 10},
	{"Vertical", Point{7, -3}, Point{7, 9}, 12},
	{"Origin", Point{0, 0}, Point{0, 0}, 0},
}

func TestComputeDistance(t *testing.T) {
	for _, tt := range pointTable {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDistance(tt.a.X, tt.a.Y, tt.b.X, tt.b.Y)
			assert.InDelta(t, tt.want, got, Epsilon)
		})
	}
}

func TestBetween(t *testing.T) {
	for _, tt := range pointTable {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Between(tt.a, tt.b), Epsilon)
			// Swapping the points must not change the result
			assert.InDelta(t, tt.want, Between(tt.b, tt.a), Epsilon)
		})
	}
}

func TestExactValues(t *testing.T) {
	require.Equal(t, 5.0, ComputeDistance(0, 0, 3, 4))
	require.Equal(t, 0.0, ComputeDistance(2, 2, 2, 2))
	require.Equal(t, 5.0, ComputeDistance(-1, -1, 2, 3))
}

func TestWideCoordinates(t *testing.T) {
	// The difference itself does not fit in an int
	got := ComputeDistance(math.MinInt, 0, math.MaxInt, 0)
	require.False(t, math.IsInf(got, 0))
	require.False(t, math.IsNaN(got))
	require.InEpsilon(t, float64(math.MaxInt)-float64(math.MinInt), got, 1e-12)
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		a := Point{rng.Intn(2001) - 1000, rng.Intn(2001) - 1000}
		b := Point{rng.Intn(2001) - 1000, rng.Intn(2001) - 1000}
		ab := Between(a, b)
		require.GreaterOrEqual(t, ab, 0.0)
		require.InDelta(t, ab, Between(b, a), Epsilon)
		require.Equal(t, 0.0, Between(a, a))
	}
}

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
		tol  float64
		ok   bool
	}{
		{"Exact", 5, 5, Epsilon, true},
		{"WithinTolerance", 2.2360679, 2.236068, Epsilon, true},
		{"OutsideTolerance", 2.23607, 2.236068, Epsilon, false},
		{"ZeroTolerance", 1, 1.0000001, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, ApproxEqual(tt.got, tt.want, tt.tol))
		})
	}
}

// ---------------------------

var benchSizes = []int{10, 1 << 20}

func BenchmarkComputeDistance(b *testing.B) {
	for _, size := range benchSizes {
		x1, y1, x2, y2 := rand.Intn(size), rand.Intn(size), rand.Intn(size), rand.Intn(size)
		b.Run(fmt.Sprintf("range-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ComputeDistance(x1, y1, x2, y2)
			}
		})
	}
}
