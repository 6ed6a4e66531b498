/*

Package oracle supplies the sign-of-small-determinant primitive the
cascade evaluator leans on once simplification has reduced a predicate
down to one of a handful of fixed-shape matrices. The exactness of
that primitive -- whether it is allowed to round, or must be exact --
is entirely the caller's concern; the evaluator only ever asks for a
sign.

The single required capability is SignDet: every named pattern the
evaluator recognises (orient_2d, in_circle, sign_det_x_x2y2, and so on)
is just a specific matrix shape handed to SignDet. Keeping the
interface to one method makes it trivial to inject a different
exactness strategy -- interval arithmetic, exact rational arithmetic,
adaptive floating point -- without touching the evaluator at all.

*/

package oracle

import "github.com/robustgeom/sos/vec"

// Oracle returns a real value whose sign equals the true sign of
// det(rows), where rows is a square matrix given row-major. It must
// return exactly 0 iff the determinant is exactly zero; the evaluator
// depends on the sign alone, never the magnitude.
type Oracle interface {
	SignDet(rows [][]float64) float64
}

func row(v vec.Vec, d int, extra ...float64) []float64 {
	r := make([]float64, 0, d+len(extra)+1)
	for j := 0; j < d; j++ {
		r = append(r, v.Coord(j))
	}
	r = append(r, extra...)
	r = append(r, 1)
	return r
}

// Orient2D is the sign of twice the signed area of triangle (a,b,c).
func Orient2D(o Oracle, a, b, c vec.Vec) float64 {
	return o.SignDet([][]float64{row(a, 2), row(b, 2), row(c, 2)})
}

// Orient3D is the determinant of the rows (x, y, z, 1) of a, b, c, d:
// minus six times the signed volume det(b-a, c-a, d-a), so it is
// negative for a right-handed tetrahedron.
func Orient3D(o Oracle, a, b, c, d vec.Vec) float64 {
	return o.SignDet([][]float64{row(a, 3), row(b, 3), row(c, 3), row(d, 3)})
}

// OrientAxes is orient_2d/orient_3d generalised to an arbitrary,
// explicit ordered subset of axes: the P3 pattern, where the cascade
// has already eliminated every axis except the ones named here.
// len(axes) must be 2 or 3; passing 0..d-1 in order reduces it to
// Orient2D/Orient3D.
func OrientAxes(o Oracle, axes []int, pts ...vec.Vec) float64 {
	rows := make([][]float64, len(pts))
	for i, p := range pts {
		r := make([]float64, 0, len(axes)+1)
		for _, ax := range axes {
			r = append(r, p.Coord(ax))
		}
		rows[i] = append(r, 1)
	}
	return o.SignDet(rows)
}

// magnitudeCmp is the sign of |a|^2 - |b|^2, expressed as a 2x2
// determinant so it goes through the same SignDet primitive as
// everything else.
func magnitudeCmp(o Oracle, a, b vec.Vec, d int) float64 {
	return o.SignDet([][]float64{{a.Mag2(d), 1}, {b.Mag2(d), 1}})
}

// MagnitudeCmp2D is the sign of |a|^2 - |b|^2 using the first 2 axes.
func MagnitudeCmp2D(o Oracle, a, b vec.Vec) float64 { return magnitudeCmp(o, a, b, 2) }

// MagnitudeCmp3D is the sign of |a|^2 - |b|^2 using all 3 axes.
func MagnitudeCmp3D(o Oracle, a, b vec.Vec) float64 { return magnitudeCmp(o, a, b, 3) }

// SignDetXX2Y2 is the mixed 3x3 determinant over columns (axis,
// x^2+y^2, 1), the P1 shape left over in a 2D in-circle test when one
// coordinate axis and the magnitude column survive elimination.
func SignDetXX2Y2(o Oracle, axis int, a, b, c vec.Vec) float64 {
	return o.SignDet([][]float64{
		{a.Coord(axis), a.Mag2(2), 1},
		{b.Coord(axis), b.Mag2(2), 1},
		{c.Coord(axis), c.Mag2(2), 1},
	})
}

// SignDetXX2Y2Z2 is the mixed 3x3 determinant over columns (axis,
// x^2+y^2+z^2, 1), the P1 shape left over in a 3D in-sphere test when
// one coordinate axis and the magnitude column survive elimination.
func SignDetXX2Y2Z2(o Oracle, axis int, a, b, c vec.Vec) float64 {
	return o.SignDet([][]float64{
		{a.Coord(axis), a.Mag2(3), 1},
		{b.Coord(axis), b.Mag2(3), 1},
		{c.Coord(axis), c.Mag2(3), 1},
	})
}

// SignDetXYX2Y2Z2 is the mixed 4x4 determinant over columns (axisX,
// axisY, x^2+y^2+z^2, 1), the P1 shape left over in a 3D in-sphere
// test when two coordinate axes and the magnitude column survive
// elimination.
func SignDetXYX2Y2Z2(o Oracle, axisX, axisY int, a, b, c, d vec.Vec) float64 {
	return o.SignDet([][]float64{
		{a.Coord(axisX), a.Coord(axisY), a.Mag2(3), 1},
		{b.Coord(axisX), b.Coord(axisY), b.Mag2(3), 1},
		{c.Coord(axisX), c.Coord(axisY), c.Mag2(3), 1},
		{d.Coord(axisX), d.Coord(axisY), d.Mag2(3), 1},
	})
}

// InCircle is the canonical 4x4 in-circle determinant: when a, b, c
// are counter-clockwise it is positive iff d lies inside the circle
// through them; when they are clockwise the sign is reversed.
func InCircle(o Oracle, a, b, c, d vec.Vec) float64 {
	return o.SignDet([][]float64{row(a, 2, a.Mag2(2)), row(b, 2, b.Mag2(2)), row(c, 2, c.Mag2(2)), row(d, 2, d.Mag2(2))})
}

// InSphere is the canonical 5x5 in-sphere determinant: positive iff e
// lies inside the oriented sphere through a, b, c, d.
func InSphere(o Oracle, a, b, c, d, e vec.Vec) float64 {
	return o.SignDet([][]float64{
		row(a, 3, a.Mag2(3)), row(b, 3, b.Mag2(3)), row(c, 3, c.Mag2(3)), row(d, 3, d.Mag2(3)), row(e, 3, e.Mag2(3)),
	})
}

// Orient projects to the named 2D/3D orientation oracle; it panics for
// any other dimension, matching the cascade's own support range.
func Orient(o Oracle, d int, pts ...vec.Vec) float64 {
	switch d {
	case 2:
		return Orient2D(o, pts[0], pts[1], pts[2])
	case 3:
		return Orient3D(o, pts[0], pts[1], pts[2], pts[3])
	default:
		panic("oracle: Orient only supports d = 2 or d = 3")
	}
}
