/*

Package vec provides the coordinate vector type shared by the cascade
generator, the sign oracle, and the evaluator.

A Vec always carries all three axes. Predicates that operate in fewer
than 3 dimensions simply ignore the unused trailing axes -- this
mirrors how sdfx keeps a single v3.Vec type around rather than a
separate struct per dimension.

*/

package vec

import "math"

// Vec is a 3-component coordinate vector. Only the first d components
// are meaningful to a predicate operating in d dimensions.
type Vec struct {
	X, Y, Z float64
}

// New builds a Vec from between 1 and 3 coordinate values.
func New(c ...float64) Vec {
	var v Vec
	switch len(c) {
	case 3:
		v.Z = c[2]
		fallthrough
	case 2:
		v.Y = c[1]
		fallthrough
	case 1:
		v.X = c[0]
	default:
		panic("vec.New: expected 1 to 3 coordinates")
	}
	return v
}

// Coord returns the j'th axis value, j in [0,3).
func (v Vec) Coord(j int) float64 {
	switch j {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("vec.Vec.Coord: axis out of range")
	}
}

// Mag2 returns the squared magnitude using only the first d axes.
func (v Vec) Mag2(d int) float64 {
	var sum float64
	for j := 0; j < d; j++ {
		c := v.Coord(j)
		sum += c * c
	}
	return sum
}

// Equal reports whether a and b agree on the first d axes.
func (v Vec) Equal(o Vec, d int) bool {
	for j := 0; j < d; j++ {
		if v.Coord(j) != o.Coord(j) {
			return false
		}
	}
	return true
}

// IsFinite reports whether all of a Vec's axes are finite. Non-finite
// coordinates are undefined behaviour per the package contract; this
// helper exists for callers that want to assert their own inputs.
func IsFinite(v Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
