package cascade

// Term is a single symbolic product contributing to a term sum: a
// small integer constant, an optional variable multiplier (the
// unperturbed coordinate at [row, axis]), and the Subdeterminant it
// multiplies.
type Term struct {
	Const   int
	VarMult *[2]int // row, axis; nil if this term has no variable multiplier
	Det     Subdeterminant
}

func newTerm(c int, varMult *[2]int, det Subdeterminant) Term {
	return Term{Const: c, VarMult: varMult, Det: det}
}

// nonzero drops a term whose subdeterminant is already known to
// vanish. It also applies the generalised minor-expansion rule: a
// term's subdeterminant is zero if some smaller subdeterminant formed
// by any equal-sized subset of its rows against all equal-sized
// subsets of its columns is itself known to be zero (the whole
// corresponding row/column combination must vanish).
func (t Term) nonzero(zero *zeroSet) (Term, bool) {
	if zero.dropped(t.Det) {
		return Term{}, false
	}
	return t, true
}

// TermSum is the unordered collection of terms sharing one ε-factor:
// the coefficient of that ε-factor in the perturbed determinant's
// expansion.
type TermSum struct {
	Terms []Term
}

// withoutZeroDets removes terms whose subdeterminant is known to
// vanish, and -- if the sum then reduces to exactly one
// variable-multiplier-free term -- records that term's subdeterminant
// as zero for all smaller (less dominant) cases still to come, per
// §4.1's elimination rule. Returns ok=false if every term vanished
// (the case is impossible and is dropped from the table).
func withoutZeroDets(sum TermSum, d int, zero *zeroSet) (TermSum, bool) {
	var kept []Term
	for _, t := range sum.Terms {
		if nz, ok := t.nonzero(zero); ok {
			kept = append(kept, nz)
		}
	}
	if len(kept) == 0 {
		return TermSum{}, false
	}
	sum = TermSum{Terms: kept}

	if len(sum.Terms) == 1 && sum.Terms[0].VarMult == nil {
		det := sum.Terms[0].Det
		zero.record(det)

		// Coordinates equal on every axis implies the magnitude column
		// is equal too.
		if len(det.Cols) == 1 && len(det.Rows) == 1 {
			allAxesZero := true
			for axis := 0; axis < d; axis++ {
				if !zero.contains(newSubdeterminant(det.Rows, []int{axis})) {
					allAxesZero = false
					break
				}
			}
			if allAxesZero {
				zero.record(newSubdeterminant(det.Rows, []int{d}))
			}
		}
	}
	return sum, true
}
