package sos

import (
	"github.com/robustgeom/sos/cascade"
	"github.com/robustgeom/sos/oracle"
	"github.com/robustgeom/sos/vec"
)

// DefaultOracle is used by every exported predicate. It is the plain
// floating-point gonum determinant: fast, and correct for the
// overwhelming majority of inputs, but not a hard exactness guarantee.
// Callers needing a different sign oracle reassign this package
// variable directly, since the predicates take no oracle parameter.
var DefaultOracle oracle.Oracle = oracle.Gonum{}

var (
	tableOrient2D = cascade.BuildTable(2, false)
	tableOrient3D = cascade.BuildTable(3, false)
	tableInCircle = cascade.BuildTable(2, true)
	tableInSphere = cascade.BuildTable(3, true)
)

// evalTable walks tb in order, resolving each case until one returns
// a nonzero sign, per §4.2's algorithm. pts must already be in sorted
// index order and d must match the table's dimension.
func evalTable(tb *cascade.Table, d int, pts []vec.Vec, o oracle.Oracle, odd bool) bool {
	for _, c := range tb.Cases {
		if sign := evalCase(c, d, pts, o); sign != 0 {
			return (sign > 0) != odd
		}
	}
	// Unreachable for distinct points: the table's terminal case is
	// always KindTrivial, which never returns zero.
	return !odd
}

func evalCase(c cascade.Case, d int, pts []vec.Vec, o oracle.Oracle) int {
	switch c.Kind {
	case cascade.KindTrivial:
		// Nothing left to compare: the perturbation scheme guarantees
		// this case is always decisive and always positive.
		return 1
	case cascade.KindCoord:
		t := c.Sum.Terms[0]
		axis := t.Det.Cols[0]
		r0, r1 := t.Det.Rows[0], t.Det.Rows[1]
		return signOf(pts[r0].Coord(axis) - pts[r1].Coord(axis))
	case cascade.KindFull:
		return signOf(evalFull(c.Sum.Terms[0], d, pts, o))
	case cascade.KindOrient:
		return signOf(evalOrient(c.Sum.Terms[0], pts, o))
	case cascade.KindMixed:
		return signOf(evalMixed(c.Sum.Terms[0], d, pts, o))
	default:
		var total float64
		for _, t := range c.Sum.Terms {
			total += contribution(t, d, pts, o)
		}
		return signOf(total)
	}
}

// evalFull routes the P0 case -- nothing eliminated, the whole
// extended matrix survives -- through the named orient_2d/orient_3d or
// in_circle/in_sphere oracle call, per §4.3.
func evalFull(t cascade.Term, d int, pts []vec.Vec, o oracle.Oracle) float64 {
	rows := fromIndices(pts, t.Det.Rows)
	if len(t.Det.Cols) == d {
		return oracle.Orient(o, d, rows...)
	}
	switch d {
	case 2:
		return oracle.InCircle(o, rows[0], rows[1], rows[2], rows[3])
	case 3:
		return oracle.InSphere(o, rows[0], rows[1], rows[2], rows[3], rows[4])
	default:
		panic("sos: evalFull only supports d = 2 or d = 3")
	}
}

// evalOrient routes the P3 case -- an orientation test projected onto
// a proper subset of the axes -- through oracle.OrientAxes.
func evalOrient(t cascade.Term, pts []vec.Vec, o oracle.Oracle) float64 {
	return oracle.OrientAxes(o, t.Det.Cols, fromIndices(pts, t.Det.Rows)...)
}

// evalMixed routes the P1 case -- one or two coordinate axes plus the
// magnitude column survive -- through the named mixed-determinant
// oracle calls.
func evalMixed(t cascade.Term, d int, pts []vec.Vec, o oracle.Oracle) float64 {
	var axes []int
	for _, c := range t.Det.Cols {
		if c != d {
			axes = append(axes, c)
		}
	}
	rows := fromIndices(pts, t.Det.Rows)
	switch len(axes) {
	case 1:
		if d == 2 {
			return oracle.SignDetXX2Y2(o, axes[0], rows[0], rows[1], rows[2])
		}
		return oracle.SignDetXX2Y2Z2(o, axes[0], rows[0], rows[1], rows[2])
	case 2:
		return oracle.SignDetXYX2Y2Z2(o, axes[0], axes[1], rows[0], rows[1], rows[2], rows[3])
	default:
		panic("sos: evalMixed: unexpected surviving axis count")
	}
}

func fromIndices(pts []vec.Vec, rows []int) []vec.Vec {
	out := make([]vec.Vec, len(rows))
	for i, r := range rows {
		out[i] = pts[r]
	}
	return out
}

// contribution is the signed real value of one term: its constant
// coefficient, times its variable multiplier (if any), times the
// oracle's value for its subdeterminant.
func contribution(t cascade.Term, d int, pts []vec.Vec, o oracle.Oracle) float64 {
	val := o.SignDet(detRows(t.Det, d, pts))
	if t.VarMult != nil {
		val *= pts[t.VarMult[0]].Coord(t.VarMult[1])
	}
	return float64(t.Const) * val
}

// detRows materialises a Subdeterminant's numeric matrix: one row per
// Det.Rows point, one column per Det.Cols entry (the magnitude
// sentinel d reads the point's squared magnitude instead of a
// coordinate), plus the always-implicit trailing column of 1s.
func detRows(det cascade.Subdeterminant, d int, pts []vec.Vec) [][]float64 {
	rows := make([][]float64, len(det.Rows))
	for i, r := range det.Rows {
		row := make([]float64, 0, len(det.Cols)+1)
		for _, c := range det.Cols {
			if c == d {
				row = append(row, pts[r].Mag2(d))
			} else {
				row = append(row, pts[r].Coord(c))
			}
		}
		rows[i] = append(row, 1)
	}
	return rows
}

func signOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
