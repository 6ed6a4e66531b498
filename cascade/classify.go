package cascade

import "fmt"

// Kind names the shape a case's TermSum reduces to, which in turn
// picks which oracle call (if any) the evaluator makes for it. See
// §4.2 for the correspondence between shape and oracle method.
type Kind int

const (
	// KindTrivial is the terminal case with nothing left to compare:
	// the whole extended matrix has been permuted away. The sign is
	// whatever the accumulated permutation parity says it is.
	KindTrivial Kind = iota
	// KindCoord is a single term with exactly one coordinate column
	// left: the sign is the sign of a single coordinate difference,
	// decided without consulting the oracle at all.
	KindCoord
	// KindOrient is a single term, var-mult-free, with two or more
	// coordinate columns: an orientation oracle call on the
	// corresponding projected points.
	KindOrient
	// KindFull is the dominant, unperturbed case: the full extended
	// matrix, answered directly by the predicate's own oracle method
	// (InCircle, InSphere, or the top-level orientation test).
	KindFull
	// KindMixed is a single variable-multiplier-free term whose
	// columns include the magnitude column but are not the full
	// extended matrix: answered by one of the SignDet* mixed oracle
	// calls.
	KindMixed
	// KindComposite is two terms, one variable-multiplier-free and one
	// carrying a multiplier: the evaluator sums each term's constant
	// times multiplier times SignDet value and takes the sign.
	KindComposite
	// KindGuarded is two terms, both carrying variable multipliers
	// over the same subdeterminant: evaluated like KindComposite, by
	// summing the two terms' contributions and taking the sign.
	KindGuarded
)

func (k Kind) String() string {
	switch k {
	case KindTrivial:
		return "Trivial"
	case KindCoord:
		return "Coord"
	case KindOrient:
		return "Orient"
	case KindFull:
		return "Full"
	case KindMixed:
		return "Mixed"
	case KindComposite:
		return "Composite"
	case KindGuarded:
		return "Guarded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Case is one row of a decision table: a classified TermSum, tried in
// table order until one of its oracle calls returns a nonzero sign.
type Case struct {
	Sum  TermSum
	Kind Kind
}

// classify assigns a Kind to a simplified TermSum. n is the grid size
// BuildTable derives from d (before the implicit final row/column).
func classify(sum TermSum, d, n int) Case {
	if len(sum.Terms) == 1 {
		t := sum.Terms[0]
		if t.VarMult != nil {
			// A lone variable-multiplier term never survives simplification
			// on its own -- it is always paired with a companion term into
			// KindComposite or KindGuarded below.
			panic("cascade: lone variable-multiplier term has no pattern")
		}
		if len(t.Det.Cols) == n && n >= 2 {
			return Case{Sum: sum, Kind: KindFull}
		}
		if containsCol(t.Det.Cols, d) {
			return Case{Sum: sum, Kind: KindMixed}
		}
		switch len(t.Det.Cols) {
		case 0:
			return Case{Sum: sum, Kind: KindTrivial}
		case 1:
			return Case{Sum: sum, Kind: KindCoord}
		default:
			return Case{Sum: sum, Kind: KindOrient}
		}
	}

	if len(sum.Terms) == 2 {
		a, b := sum.Terms[0], sum.Terms[1]
		aVar, bVar := a.VarMult != nil, b.VarMult != nil
		switch {
		case aVar != bVar:
			return Case{Sum: sum, Kind: KindComposite}
		case aVar && bVar && a.Det.equal(b.Det):
			return Case{Sum: sum, Kind: KindGuarded}
		}
	}

	// No case in the derivation produces any other shape; a table
	// built from a shape outside P0-P5 indicates the generator itself
	// is wrong, not a runtime condition to recover from.
	panic(fmt.Sprintf("cascade: unclassifiable term sum with %d terms", len(sum.Terms)))
}

func containsCol(cols []int, c int) bool {
	for _, v := range cols {
		if v == c {
			return true
		}
	}
	return false
}
