// Package pointio reads and writes points in the (x, y) console form.
package pointio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/semafind/distcalc/distance"
)

var ErrMalformedPoint = errors.New("malformed point")

// ParsePoint reads a point written as "(x, y)". The parentheses and the comma
// only delimit the two integers; surrounding whitespace is ignored and the
// parentheses may be left out altogether.
func ParsePoint(input string) (distance.Point, error) {
	body := strings.TrimSpace(input)
	hasOpen := strings.HasPrefix(body, "(")
	hasClose := strings.HasSuffix(body, ")")
	if hasOpen != hasClose {
		return distance.Point{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrMalformedPoint, input)
	}
	if hasOpen {
		body = body[1 : len(body)-1]
	}
	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return distance.Point{}, fmt.Errorf("%w: expected two comma separated coordinates in %q", ErrMalformedPoint, input)
	}
	coords := [2]int{}
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return distance.Point{}, fmt.Errorf("%w: coordinate %q: %w", ErrMalformedPoint, strings.TrimSpace(part), err)
		}
		coords[i] = v
	}
	return distance.Point{X: coords[0], Y: coords[1]}, nil
}

// FormatPoint echoes a point under the given suffix, e.g. "(x1, y1) = (4, 3)".
func FormatPoint(suffix string, p distance.Point) string {
	return fmt.Sprintf("(x%s, y%s) = (%d, %d)", suffix, suffix, p.X, p.Y)
}

// FormatValue rounds a distance to two decimal places.
func FormatValue(d float64) string {
	return strconv.FormatFloat(d, 'f', 2, 64)
}

func FormatDistance(d float64) string {
	return "Distance between the points = " + FormatValue(d)
}
