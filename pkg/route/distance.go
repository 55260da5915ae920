package route

import (
	"math"
	"strconv"

	"github.com/driftcli/drift/pkg/errors"
)

// Displacement is the net offset from the origin after executing a token
// sequence. Forward/back move the vertical axis, right/left the horizontal.
type Displacement struct {
	Horizontal float64 `json:"horizontal"`
	Vertical   float64 `json:"vertical"`
}

// Distance returns the Euclidean distance from the origin to the
// displaced position.
func (d Displacement) Distance() float64 {
	return math.Sqrt(d.Horizontal*d.Horizontal + d.Vertical*d.Vertical)
}

// Displace accumulates the net displacement of a validated token sequence.
// Accumulation is commutative, so token order does not affect the result.
//
// Magnitudes are trusted to be digit runs per the tokenizer's contract, but
// a magnitude that fails to parse is still reported as an explicit
// ErrCodeMagnitudeParse error rather than silently treated as zero.
func Displace(tokens []Token) (Displacement, error) {
	var d Displacement
	for _, t := range tokens {
		m, err := strconv.ParseFloat(t.Magnitude, 64)
		if err != nil {
			return Displacement{}, errors.Wrap(errors.ErrCodeMagnitudeParse, err,
				"step count %q is not a number", t.Magnitude)
		}
		h, v := t.Direction.Unit()
		d.Horizontal += float64(h) * m
		d.Vertical += float64(v) * m
	}
	return d, nil
}

// ComputeDistance reduces a validated token sequence to the straight-line
// distance from the origin. An empty sequence yields 0.
func ComputeDistance(tokens []Token) (float64, error) {
	d, err := Displace(tokens)
	if err != nil {
		return 0, err
	}
	return d.Distance(), nil
}

// Point is a waypoint on the walked path.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Waypoints returns the positions visited while executing the token
// sequence in order, starting at the origin. The result has len(tokens)+1
// entries. Unlike the final distance, waypoints depend on token order.
func Waypoints(tokens []Token) ([]Point, error) {
	points := make([]Point, 1, len(tokens)+1)
	var x, y float64
	for _, t := range tokens {
		m, err := strconv.ParseFloat(t.Magnitude, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMagnitudeParse, err,
				"step count %q is not a number", t.Magnitude)
		}
		h, v := t.Direction.Unit()
		x += float64(h) * m
		y += float64(v) * m
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}
