package sos

import (
	"fmt"

	"github.com/robustgeom/sos/cascade"
	"github.com/robustgeom/sos/vec"
)

func fetch[T any](list []T, idx Indexer[T], sorted []int) []vec.Vec {
	pts := make([]vec.Vec, len(sorted))
	for i, s := range sorted {
		pts[i] = idx(list, s)
	}
	return pts
}

func orientTable(d int) *cascade.Table {
	switch d {
	case 2:
		return tableOrient2D
	case 3:
		return tableOrient3D
	default:
		panic(fmt.Sprintf("sos: orient_%dd not implemented (only d = 2, 3 are supported; see Orient1D and Orient4D)", d))
	}
}

// OrientKD reports whether indices[0..k) are in positive orientation
// in d = k-1 dimensions, after Simulation-of-Simplicity perturbation.
// k must be 3 (d=2) or 4 (d=3); use Orient1D for d=1.
func OrientKD[T any](list []T, idx Indexer[T], indices ...int) bool {
	d := len(indices) - 1
	tb := orientTable(d)
	sorted, odd := sortWithParity(indices)
	pts := fetch(list, idx, sorted)
	return evalTable(tb, d, pts, DefaultOracle, odd)
}

// Orient4D would be the d=4 orientation predicate. Higher-dimensional
// SoS cascades are not implemented.
func Orient4D[T any](list []T, idx Indexer[T], i, j, k, l, m int) bool {
	panic("sos: Orient4D not implemented")
}

// Orient1D reports whether j comes after i along the perturbed real
// line. coord fetches the single scalar coordinate for an index. When
// the two coordinates are exactly equal, the result is decided by
// index order alone, encoding the perturbation direction directly.
func Orient1D[T any](list []T, coord func(list []T, i int) float64, i, j int) bool {
	sorted, odd := sortWithParity([]int{i, j})
	a, b := coord(list, sorted[0]), coord(list, sorted[1])
	return (b >= a) != odd
}

// InCircle reports whether l lies inside the oriented circle through
// i, j, k, after Simulation-of-Simplicity perturbation. The result is
// independent of the order of i, j, k, l modulo the orientation of
// i, j, k.
func InCircle[T any](list []T, idx Indexer[T], i, j, k, l int) bool {
	sorted, odd := sortWithParity([]int{i, j, k, l})
	flip := !OrientKD(list, idx, i, j, k)
	odd = odd != flip
	pts := fetch(list, idx, sorted)
	return evalTable(tableInCircle, 2, pts, DefaultOracle, odd)
}

// InSphere reports whether m lies inside the oriented sphere through
// i, j, k, l, after Simulation-of-Simplicity perturbation.
func InSphere[T any](list []T, idx Indexer[T], i, j, k, l, m int) bool {
	sorted, odd := sortWithParity([]int{i, j, k, l, m})
	flip := !OrientKD(list, idx, i, j, k, l)
	odd = odd != flip
	pts := fetch(list, idx, sorted)
	return evalTable(tableInSphere, 3, pts, DefaultOracle, odd)
}
