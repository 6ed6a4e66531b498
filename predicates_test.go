package sos

import (
	"testing"

	"github.com/robustgeom/sos/vec"
)

func idx2(list []vec.Vec, i int) vec.Vec { return list[i] }

func Test_OrientKD_2d_ccw(t *testing.T) {
	pts := []vec.Vec{vec.New(0, 0), vec.New(1, 0), vec.New(0, 1)}
	if !OrientKD(pts, idx2, 0, 1, 2) {
		t.Fatal("expected counter-clockwise triangle to be positively oriented")
	}
}

func Test_OrientKD_2d_cw(t *testing.T) {
	pts := []vec.Vec{vec.New(0, 0), vec.New(0, 1), vec.New(1, 0)}
	if OrientKD(pts, idx2, 0, 1, 2) {
		t.Fatal("expected clockwise triangle to be negatively oriented")
	}
}

func Test_OrientKD_2d_swapFlipsResult(t *testing.T) {
	pts := []vec.Vec{vec.New(0, 0), vec.New(1, 0), vec.New(0, 1)}
	a := OrientKD(pts, idx2, 0, 1, 2)
	b := OrientKD(pts, idx2, 1, 0, 2)
	if a == b {
		t.Fatalf("swapping two indices did not flip the result: %v == %v", a, b)
	}
}

// The orientation is the sign of the determinant of rows (x, y, z, 1);
// for this right-handed tetrahedron that determinant is -1.
func Test_OrientKD_3d_rightHandedIsNegative(t *testing.T) {
	pts := []vec.Vec{vec.New(0, 0, 0), vec.New(1, 0, 0), vec.New(0, 1, 0), vec.New(0, 0, 1)}
	if OrientKD(pts, idx2, 0, 1, 2, 3) {
		t.Fatal("expected right-handed tetrahedron to be negatively oriented")
	}
}

// Collinear points force the cascade past the dominant case into the
// degenerate ones; the predicate must still return a consistent
// answer instead of panicking, and for this exact configuration (§8
// concrete scenario 2) the tie is broken favouring lower-index-first
// order, giving a literal expected value of true.
func Test_OrientKD_2d_collinearIsDeterministic(t *testing.T) {
	pts := []vec.Vec{vec.New(0, 0), vec.New(1, 1), vec.New(2, 2)}
	a := OrientKD(pts, idx2, 0, 1, 2)
	b := OrientKD(pts, idx2, 0, 1, 2)
	if a != b {
		t.Fatal("repeated calls on the same degenerate input disagreed")
	}
	if !a {
		t.Fatal("orient_2d([(0,0),(1,1),(2,2)], [0,1,2]) should be true")
	}
}

// Coincident points (degenerate even beyond collinearity) still never
// panic -- the cascade has a case for every configuration of distinct
// indices, even if coordinates collide.
func Test_OrientKD_2d_coincidentPointDoesNotPanic(t *testing.T) {
	pts := []vec.Vec{vec.New(0, 0), vec.New(0, 0), vec.New(1, 1)}
	_ = OrientKD(pts, idx2, 0, 1, 2)
}

func Test_InCircle_centerIsInside(t *testing.T) {
	pts := []vec.Vec{vec.New(1, 0), vec.New(-1, 0), vec.New(0, 1), vec.New(0, 0)}
	if !InCircle(pts, idx2, 0, 1, 2, 3) {
		t.Fatal("expected the circle's own center to be inside")
	}
}

func Test_InCircle_farPointIsOutside(t *testing.T) {
	pts := []vec.Vec{vec.New(1, 0), vec.New(-1, 0), vec.New(0, 1), vec.New(50, 50)}
	if InCircle(pts, idx2, 0, 1, 2, 3) {
		t.Fatal("expected a distant point to be outside")
	}
}

func Test_InSphere_centerIsInside(t *testing.T) {
	pts := []vec.Vec{
		vec.New(1, 0, 0), vec.New(-1, 0, 0), vec.New(0, 1, 0), vec.New(0, 0, 1),
		vec.New(0, 0, 0),
	}
	if !InSphere(pts, idx2, 0, 1, 2, 3, 4) {
		t.Fatal("expected the sphere's own center to be inside")
	}
}

func coord1(list []float64, i int) float64 { return list[i] }

func Test_Orient1D_distinctCoordinates(t *testing.T) {
	list := []float64{1, 5}
	if !Orient1D(list, coord1, 0, 1) {
		t.Fatal("expected ascending coordinates to orient true")
	}
	if Orient1D(list, coord1, 1, 0) {
		t.Fatal("expected descending coordinates to orient false")
	}
}

func Test_Orient1D_tieBreaksOnIndexOrder(t *testing.T) {
	list := []float64{3, 3}
	if !Orient1D(list, coord1, 0, 1) {
		t.Fatal("expected a tie to orient true when the lower index comes first")
	}
	if Orient1D(list, coord1, 1, 0) {
		t.Fatal("expected a tie to orient false when the lower index comes second")
	}
}

func Test_Orient4D_panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Orient4D to panic")
		}
	}()
	Orient4D[vec.Vec](nil, idx2, 0, 1, 2, 3, 4)
}
