/*

Package cascade implements the symbolic Simulation-of-Simplicity
generator: given a predicate's dimension and arity, it derives the
ordered decision table of subdeterminant sign tests the evaluator
walks at runtime. See the evaluator package (at the module root) for
the runtime side.

The generator is the "compile-time" half of the design; BuildTable is
normally called once per table, from the evaluator package's
package-level variable initialisers, and its result is then treated
as immutable constant data.

*/

package cascade

// Subdeterminant designates a square submatrix of a predicate's
// extended matrix. Rows are point indices into the sorted, canonical
// tuple of arity-many points (0-based); columns are 0..d-1 for the
// coordinate axes, plus d for the magnitude column when the predicate
// has one. The final column (the column of 1s) is always implicitly
// present and is never stored here.
//
// The terms rawTerms produces leave out the final row (the last
// point) as well, so their Rows and Cols have the same length: every
// elimination step removes one row and one column together.
// prepareForCase then adds the final row to Rows, so in the cases of
// a built Table, Rows holds one more entry than Cols.
type Subdeterminant struct {
	Rows []int
	Cols []int
}

func newSubdeterminant(rows, cols []int) Subdeterminant {
	return Subdeterminant{Rows: append([]int(nil), rows...), Cols: append([]int(nil), cols...)}
}

func (s Subdeterminant) clone() Subdeterminant {
	return newSubdeterminant(s.Rows, s.Cols)
}

// equal reports structural equality, used by the zero-determinant set.
func (s Subdeterminant) equal(o Subdeterminant) bool {
	if len(s.Rows) != len(o.Rows) || len(s.Cols) != len(o.Cols) {
		return false
	}
	for i := range s.Rows {
		if s.Rows[i] != o.Rows[i] {
			return false
		}
	}
	for i := range s.Cols {
		if s.Cols[i] != o.Cols[i] {
			return false
		}
	}
	return true
}

// key gives a Subdeterminant a value usable as a map key. Row/col
// indices never exceed single digits for the arities this package
// supports, so a plain decimal join is unambiguous.
type subdetKey string

func (s Subdeterminant) key() subdetKey {
	var buf []byte
	for _, r := range s.Rows {
		buf = append(buf, '0'+byte(r), ',')
	}
	buf = append(buf, '|')
	for _, c := range s.Cols {
		buf = append(buf, '0'+byte(c), ',')
	}
	return subdetKey(buf)
}

// EpsFactor is the ε-factor of a term: the exponent of ε in the
// dominance order, represented per §3 of the design as an integer
// whose base-3 digits count how many times each perturbation divides
// the term. Smaller values are more dominant; zero is the undisturbed
// predicate.
type EpsFactor int64

// positions accumulates (row, col) perturbation positions into an
// EpsFactor. d is the spatial dimension (the number of coordinate
// axes); each position contributes 3^(d*row + d-1-col) per
// occurrence, so up to 2 occurrences of the same position never
// carries into the next digit.
func newEpsFactor(d int, positions [][2]int) EpsFactor {
	var e EpsFactor
	for _, p := range positions {
		row, col := p[0], p[1]
		rank := d*row + d - 1 - col
		e += EpsFactor(pow3(rank))
	}
	return e
}

func pow3(n int) int64 {
	r := int64(1)
	for i := 0; i < n; i++ {
		r *= 3
	}
	return r
}
