package cascade

import "fmt"

// Verbose, when set, makes BuildTable narrate its progress with
// fmt.Printf -- there is no structured logging here, matching how the
// teacher's render package logs marching-cubes progress directly.
var Verbose bool

// Table is the ordered, fully simplified decision table for one
// (dimension, predicate) pair: the sequence of cases the evaluator
// walks from the dominant ε-factor down.
type Table struct {
	D      int // spatial dimension
	HasMag bool
	N      int // grid size before the implicit final row/column (= arity-1)
	Cases  []Case
}

// BuildTable derives the decision table for a predicate of spatial
// dimension d. hasMag selects an orientation predicate (false, arity
// d+1) or an in-sphere/in-circle predicate (true, arity d+2).
func BuildTable(d int, hasMag bool) *Table {
	n := d
	if hasMag {
		n = d + 1
	}

	entries := rawTerms(d, n, hasMag)
	buckets := bucketByEpsFactor(entries)

	zero := newZeroSet()
	var cases []Case
	for _, b := range buckets {
		sum, ok := withoutZeroDets(b.sum, d, zero)
		if !ok {
			if Verbose {
				fmt.Printf("cascade: d=%d hasMag=%v e=%v impossible, dropped\n", d, hasMag, b.e)
			}
			continue
		}
		prepareForCase(&sum, n)
		c := classify(sum, d, n)
		cases = append(cases, c)
		if Verbose {
			fmt.Printf("cascade: d=%d hasMag=%v e=%v kind=%v\n", d, hasMag, b.e, c.Kind)
		}
		// A Trivial case always decides, so no later case is reachable.
		if c.Kind == KindTrivial {
			break
		}
	}

	return &Table{D: d, HasMag: hasMag, N: n, Cases: cases}
}

type bucket struct {
	e   EpsFactor
	sum TermSum
}

func bucketByEpsFactor(entries []termEntry) []bucket {
	idx := make(map[EpsFactor]int)
	var buckets []bucket
	for _, ent := range entries {
		if i, ok := idx[ent.e]; ok {
			buckets[i].sum.Terms = append(buckets[i].sum.Terms, ent.t)
			continue
		}
		idx[ent.e] = len(buckets)
		buckets = append(buckets, bucket{e: ent.e, sum: TermSum{Terms: []Term{ent.t}}})
	}
	// Ascending ε-factor order: most dominant (smallest) first.
	for i := 1; i < len(buckets); i++ {
		for j := i; j > 0 && buckets[j].e < buckets[j-1].e; j-- {
			buckets[j], buckets[j-1] = buckets[j-1], buckets[j]
		}
	}
	return buckets
}

type termEntry struct {
	e EpsFactor
	t Term
}

// rawTerms enumerates every term of the perturbed determinant's
// expansion, up to the truncation bound described in §4.1. d is the
// spatial dimension (used for the ε-exponent formula and to bound the
// magnitude expansion); n is the grid size (d for orientation, d+1
// for in-sphere/in-circle).
func rawTerms(d, n int, hasMag bool) []termEntry {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	var out []termEntry

	// The dominant, undisturbed term: the full (n x n) grid, no
	// perturbation at all.
	out = append(out, termEntry{
		e: newEpsFactor(d, nil),
		t: newTerm(1, nil, newSubdeterminant(all, all)),
	})

	var bigE EpsFactor
	if hasMag {
		var pos [][2]int
		for i := 0; i <= d-2; i++ {
			pos = append(pos, [2]int{i, i})
		}
		pos = append(pos, [2]int{d - 1, d - 1}, [2]int{d - 1, d - 1}, [2]int{d, d - 1})
		bigE = newEpsFactor(d, pos)
	}

	magCol := d // only ever present among 0..n-1 when hasMag

	for i := 1; i <= n; i++ {
		forEachCombination(all, i, func(rowCombo []int) bool {
			forEachInjection(all, i, func(colSeq []int) bool {
				mult := 1
				pairs := make([][2]int, i)
				for m := 0; m < i; m++ {
					pairs[m] = [2]int{rowCombo[m], colSeq[m]}
					if (rowCombo[m]+colSeq[m])%2 == 1 {
						mult *= -1
					}
				}

				det := newSubdeterminant(setMinus(all, rowCombo), setMinus(all, colSeq))

				magRow, hasMagPos := -1, false
				var rest [][2]int
				for _, p := range pairs {
					if hasMag && p[1] == magCol && !hasMagPos {
						magRow, hasMagPos = p[0], true
						continue
					}
					rest = append(rest, p)
				}

				if hasMagPos {
					for j := 0; j < d; j++ {
						linear := append(append([][2]int{}, rest...), [2]int{magRow, j})
						e := newEpsFactor(d, linear)
						if !hasMag || e <= bigE {
							v := [2]int{magRow, j}
							out = append(out, termEntry{e: e, t: newTerm(mult*2, &v, det.clone())})
						}

						quad := append(append([][2]int{}, rest...), [2]int{magRow, j}, [2]int{magRow, j})
						e2 := newEpsFactor(d, quad)
						if !hasMag || e2 <= bigE {
							out = append(out, termEntry{e: e2, t: newTerm(mult, nil, det.clone())})
						}
					}
				} else {
					e := newEpsFactor(d, pairs)
					if !hasMag || e <= bigE {
						out = append(out, termEntry{e: e, t: newTerm(mult, nil, det)})
					}
				}
				return true
			})
			return true
		})
	}

	return out
}

// prepareForCase appends the implicit final row (the last point,
// index n) to every term's subdeterminant, and normalises negative
// constants by swapping the last two rows (swapping two rows of a
// determinant negates it, so this absorbs the sign).
func prepareForCase(sum *TermSum, n int) {
	for i := range sum.Terms {
		t := &sum.Terms[i]
		before := len(t.Det.Rows)
		t.Det.Rows = append(append([]int(nil), t.Det.Rows...), n)
		if t.Const < 0 {
			t.Const = -t.Const
			// The fully-degenerate (0 rows, 0 cols) term has nothing left
			// to swap; its sign is fixed by construction of the
			// perturbation scheme itself, not by row order.
			if before >= 1 {
				last := len(t.Det.Rows) - 1
				t.Det.Rows[last], t.Det.Rows[last-1] = t.Det.Rows[last-1], t.Det.Rows[last]
			}
		}
	}
}

func setMinus(all, remove []int) []int {
	skip := make(map[int]bool, len(remove))
	for _, r := range remove {
		skip[r] = true
	}
	out := make([]int, 0, len(all)-len(remove))
	for _, v := range all {
		if !skip[v] {
			out = append(out, v)
		}
	}
	return out
}

// forEachInjection calls f with every ordered k-length sequence of
// distinct elements drawn from items (a k-permutation of items).
func forEachInjection(items []int, k int, f func(seq []int) bool) {
	n := len(items)
	used := make([]bool, n)
	seq := make([]int, k)
	var rec func(pos int) bool
	rec = func(pos int) bool {
		if pos == k {
			return f(seq)
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			seq[pos] = items[i]
			if !rec(pos + 1) {
				used[i] = false
				return false
			}
			used[i] = false
		}
		return true
	}
	rec(0)
}
