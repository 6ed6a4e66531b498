package cascade

import "testing"

// A useful decision table must offer more than just the two
// endpoints: if every case in between collapsed away, the generator's
// elimination rules would be over-aggressive and degenerate geometric
// configurations (coplanar, collinear, magnitude-equal) would have no
// case left to decide them.
func Test_BuildTable_kindCoverage(t *testing.T) {
	tests := []struct {
		name   string
		d      int
		hasMag bool
	}{
		{"orient_2d", 2, false},
		{"orient_3d", 3, false},
		{"in_circle", 2, true},
		{"in_sphere", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := BuildTable(tt.d, tt.hasMag)
			seen := make(map[Kind]int)
			for _, c := range tb.Cases {
				seen[c.Kind]++
			}
			if seen[KindFull] != 1 {
				t.Errorf("expected exactly one Full case, got %d", seen[KindFull])
			}
			if seen[KindTrivial] != 1 {
				t.Errorf("expected exactly one Trivial case, got %d", seen[KindTrivial])
			}
			if len(tb.Cases) < 3 {
				t.Errorf("table has only %d cases, too few to cover any intermediate degeneracy", len(tb.Cases))
			}
			t.Logf("%s: %d cases, kind counts = %v", tt.name, len(tb.Cases), seen)
		})
	}
}
