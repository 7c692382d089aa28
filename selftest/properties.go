package selftest

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/schollz/progressbar/v3"
	"github.com/semafind/distcalc/distance"
)

var ErrPropertyViolated = errors.New("distance property violated")

// Coordinates are drawn from [-propertyRange, propertyRange].
const propertyRange = 1_000_000

// CheckProperties draws n random point pairs and verifies symmetry, identity
// and non-negativity of fn. Progress is drawn on progress when it is not nil.
func CheckProperties(fn distance.DistFunc, n int, seed int64, progress io.Writer) error {
	rng := rand.New(rand.NewSource(seed))
	randPoint := func() distance.Point {
		return distance.Point{
			X: rng.Intn(2*propertyRange+1) - propertyRange,
			Y: rng.Intn(2*propertyRange+1) - propertyRange,
		}
	}
	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(n,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("checking distance properties"),
			progressbar.OptionClearOnFinish())
	}
	// ---------------------------
	for i := 0; i < n; i++ {
		a, b := randPoint(), randPoint()
		ab := fn(a.X, a.Y, b.X, b.Y)
		ba := fn(b.X, b.Y, a.X, a.Y)
		if math.IsNaN(ab) || ab < 0 {
			return fmt.Errorf("%w: non-negativity: distance(%v, %v) = %v", ErrPropertyViolated, a, b, ab)
		}
		if !distance.ApproxEqual(ab, ba, distance.Epsilon) {
			return fmt.Errorf("%w: symmetry: distance(%v, %v) = %v but distance(%v, %v) = %v", ErrPropertyViolated, a, b, ab, b, a, ba)
		}
		if aa := fn(a.X, a.Y, a.X, a.Y); aa != 0 {
			return fmt.Errorf("%w: identity: distance(%v, %v) = %v", ErrPropertyViolated, a, a, aa)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return nil
}
