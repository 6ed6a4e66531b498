package sos

import "github.com/robustgeom/sos/vec"

// Indexer fetches the coordinate vector for point i of list. It must
// be pure and side-effect-free: OrientKD calls it once per index, in
// sorted-index order; InCircle and InSphere call it a second time for
// each of their first k-1 indices (for the orientation test), so they
// rely on repeated calls with the same (list, i) returning equal
// vectors.
type Indexer[T any] func(list []T, i int) vec.Vec

// sortWithParity returns idx sorted ascending, plus the parity of the
// permutation that sorted it (true if an odd number of adjacent
// transpositions were needed). Insertion sort is used deliberately: k
// is always small (2 to 5), and counting its own transpositions is
// what makes the parity bookkeeping trivial.
func sortWithParity(idx []int) ([]int, bool) {
	sorted := append([]int(nil), idx...)
	odd := false
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
			odd = !odd
		}
	}
	return sorted, odd
}
