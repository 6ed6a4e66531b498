package cascade

// zeroSet is the running record of subdeterminants proven to vanish
// during one table build, threaded through cases from most dominant
// to least. It is scoped to a single BuildTable call -- see §9's note
// that this is the only shared mutable state in the generator.
type zeroSet struct {
	m map[subdetKey]Subdeterminant
}

func newZeroSet() *zeroSet {
	return &zeroSet{m: make(map[subdetKey]Subdeterminant)}
}

func (z *zeroSet) record(det Subdeterminant) {
	z.m[det.key()] = det
}

func (z *zeroSet) contains(det Subdeterminant) bool {
	_, ok := z.m[det.key()]
	return ok
}

// dropped reports whether det is known to vanish, either directly or
// by the generalised minor-expansion rule: some i-row subset of det,
// restricted to every i-column subset, is already a known zero. By
// Laplace expansion along those rows, every term of det's own
// expansion then vanishes too.
func (z *zeroSet) dropped(det Subdeterminant) bool {
	if z.contains(det) {
		return true
	}
	n := len(det.Cols)
	for i := 1; i < n; i++ {
		found := false
		forEachCombination(det.Rows, i, func(rowCombo []int) bool {
			allZero := true
			forEachCombination(det.Cols, i, func(colCombo []int) bool {
				if !z.contains(newSubdeterminant(rowCombo, colCombo)) {
					allZero = false
					return false
				}
				return true
			})
			if allZero {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

// forEachCombination calls f with every size-k combination of items,
// in increasing index order, stopping early if f returns false.
func forEachCombination(items []int, k int, f func(combo []int) bool) {
	n := len(items)
	if k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	combo := make([]int, k)
	for {
		for i, j := range idx {
			combo[i] = items[j]
		}
		if !f(combo) {
			return
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
