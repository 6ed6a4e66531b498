package cascade

import "testing"

// Every case's surviving terms must end with the implicit final row
// (index n) on every subdeterminant, and every row/col index must be
// in range.
func Test_BuildTable_wellFormed(t *testing.T) {
	tests := []struct {
		name   string
		d      int
		hasMag bool
	}{
		{"orient_1d", 1, false},
		{"orient_2d", 2, false},
		{"orient_3d", 3, false},
		{"in_circle", 2, true},
		{"in_sphere", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := BuildTable(tt.d, tt.hasMag)
			if len(tb.Cases) == 0 {
				t.Fatalf("no cases produced")
			}
			n := tt.d
			if tt.hasMag {
				n = tt.d + 1
			}
			if tb.N != n {
				t.Fatalf("N = %d, want %d", tb.N, n)
			}
			for ci, c := range tb.Cases {
				if len(c.Sum.Terms) == 0 {
					t.Fatalf("case %d has no terms", ci)
				}
				for ti, term := range c.Sum.Terms {
					rows := term.Det.Rows
					if len(rows) == 0 || rows[len(rows)-1] != n {
						t.Fatalf("case %d term %d: rows %v missing trailing implicit row %d", ci, ti, rows, n)
					}
					for _, r := range rows {
						if r < 0 || r > n {
							t.Fatalf("case %d term %d: row %d out of range", ci, ti, r)
						}
					}
					for _, c := range term.Det.Cols {
						if c < 0 || c >= n {
							t.Fatalf("case %d term %d: col %d out of range", ci, ti, c)
						}
					}
				}
			}
		})
	}
}

// The dominant first case of every table is the full, unperturbed
// extended matrix: every column still present.
func Test_BuildTable_firstCaseIsFull(t *testing.T) {
	tb := BuildTable(3, true)
	first := tb.Cases[0]
	if first.Kind != KindFull {
		t.Fatalf("first case kind = %v, want Full", first.Kind)
	}
}

// The last case reachable by any table is the fully-degenerate one:
// no coordinate columns left to compare, decided by parity alone.
func Test_BuildTable_lastCaseIsTrivial(t *testing.T) {
	for _, tt := range []struct {
		d      int
		hasMag bool
	}{{2, false}, {3, false}, {2, true}, {3, true}} {
		tb := BuildTable(tt.d, tt.hasMag)
		last := tb.Cases[len(tb.Cases)-1]
		if last.Kind != KindTrivial {
			t.Errorf("d=%d hasMag=%v: last case kind = %v, want Trivial", tt.d, tt.hasMag, last.Kind)
		}
	}
}

// A table's cases must be in strictly ascending ε-factor dominance
// order: two buckets can never tie, because EpsFactor's base-3
// encoding is injective over position sets of bounded multiplicity.
func Test_rawTerms_noDuplicateEpsFactorOrdering(t *testing.T) {
	entries := rawTerms(2, 3, true)
	buckets := bucketByEpsFactor(entries)
	for i := 1; i < len(buckets); i++ {
		if buckets[i].e <= buckets[i-1].e {
			t.Fatalf("buckets not strictly ascending at %d: %d <= %d", i, buckets[i].e, buckets[i-1].e)
		}
	}
}

func Test_forEachInjection(t *testing.T) {
	var got [][]int
	forEachInjection([]int{0, 1, 2}, 2, func(seq []int) bool {
		got = append(got, append([]int(nil), seq...))
		return true
	})
	if len(got) != 6 {
		t.Fatalf("got %d sequences, want 6 (3P2)", len(got))
	}
	seen := make(map[[2]int]bool)
	for _, s := range got {
		seen[[2]int{s[0], s[1]}] = true
	}
	if len(seen) != 6 {
		t.Fatalf("sequences not distinct: %v", got)
	}
}
