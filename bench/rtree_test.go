package bench

import (
	"testing"

	"github.com/robustgeom/sos/vec"
)

func Test_NearDuplicates_findsCoincidentPoints(t *testing.T) {
	pts := []vec.Vec{
		vec.New(0, 0),
		vec.New(0, 0),
		vec.New(10, 10),
		vec.New(1e-10, 1e-10),
	}
	got := NearDuplicates(pts, 2, 1e-6)
	want := [][2]int{{0, 1}, {0, 3}, {1, 3}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func Test_NearDuplicates_emptyInput(t *testing.T) {
	if got := NearDuplicates(nil, 2, 1e-6); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func Test_NearDuplicates_noFalsePositives(t *testing.T) {
	pts := []vec.Vec{vec.New(0, 0), vec.New(10, 10), vec.New(-5, 5)}
	if got := NearDuplicates(pts, 2, 1e-6); len(got) != 0 {
		t.Fatalf("expected no pairs, got %v", got)
	}
}

func Test_NearCollinear_findsExactAndNearLines(t *testing.T) {
	pts := []vec.Vec{
		vec.New(0, 0), vec.New(1, 1), vec.New(2, 2), // exactly collinear
		vec.New(2, 2.0001), // near the same line
		vec.New(5, -5),     // off the line
	}
	got := NearCollinear(pts, 1e-3)
	found, foundNear := false, false
	for _, tri := range got {
		if tri == [3]int{0, 1, 2} {
			found = true
		}
		if tri == [3]int{0, 1, 3} {
			foundNear = true
		}
	}
	if !found {
		t.Errorf("expected triple (0,1,2) to be reported collinear, got %v", got)
	}
	if !foundNear {
		t.Errorf("expected triple (0,1,3) to be reported near-collinear, got %v", got)
	}
}
