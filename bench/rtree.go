/*

Package bench finds degenerate and near-degenerate point
configurations in a point set -- coincident points, near-duplicates,
near-collinear triples -- the kind of input that forces a predicate's
cascade past its dominant case. It exists to drive the decision-table
coverage tests in the root package: a random point set alone rarely
reaches anything past KindFull, so tests instead seed the cascade with
configurations this package locates.

*/

package bench

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/robustgeom/sos/vec"
)

type indexedPoint struct {
	idx int
	v   vec.Vec
	d   int
}

func (p *indexedPoint) Bounds() *rtreego.Rect {
	pt := make(rtreego.Point, p.d)
	lengths := make([]float64, p.d)
	for j := 0; j < p.d; j++ {
		pt[j] = p.v.Coord(j)
		lengths[j] = 1e-12
	}
	r, err := rtreego.NewRect(pt, lengths)
	if err != nil {
		// Only possible if p.d == 0 or a length is non-positive,
		// neither of which this constructor ever produces.
		panic(err)
	}
	return r
}

// NearDuplicates returns every pair of indices (i<j, deduplicated and
// sorted) whose points lie within eps of each other across the first
// d axes. It builds an r-tree over pts so the search is sub-quadratic
// for large point sets, then confirms each candidate pair with an
// exact distance check (the tree's bounding boxes only prune, they
// don't decide).
func NearDuplicates(pts []vec.Vec, d int, eps float64) [][2]int {
	if len(pts) == 0 {
		return nil
	}
	tree := rtreego.NewTree(d, 4, 16)
	items := make([]*indexedPoint, len(pts))
	for i, v := range pts {
		items[i] = &indexedPoint{idx: i, v: v, d: d}
		tree.Insert(items[i])
	}

	seen := make(map[[2]int]bool)
	var out [][2]int
	for _, it := range items {
		origin := make(rtreego.Point, d)
		lengths := make([]float64, d)
		for j := 0; j < d; j++ {
			origin[j] = it.v.Coord(j) - eps
			lengths[j] = 2 * eps
		}
		box, err := rtreego.NewRect(origin, lengths)
		if err != nil {
			continue
		}
		for _, hit := range tree.SearchIntersect(box) {
			other := hit.(*indexedPoint)
			if other.idx == it.idx {
				continue
			}
			if sqDist(it.v, other.v, d) > eps*eps {
				continue
			}
			key := [2]int{it.idx, other.idx}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if !seen[key] {
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

func sqDist(a, b vec.Vec, d int) float64 {
	var s float64
	for j := 0; j < d; j++ {
		diff := a.Coord(j) - b.Coord(j)
		s += diff * diff
	}
	return s
}

// NearCollinear returns every index triple (i<j<k) in 2D whose points
// are within eps of exact collinearity, measured as the distance of
// point k from the line through points i and j. It is a brute-force
// scan: callers use it on moderate-sized curated point sets for
// coverage testing, not on production-sized inputs.
func NearCollinear(pts []vec.Vec, eps float64) [][3]int {
	var out [][3]int
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			base := sqDist(pts[i], pts[j], 2)
			if base == 0 {
				continue
			}
			for k := j + 1; k < len(pts); k++ {
				cross := (pts[j].X-pts[i].X)*(pts[k].Y-pts[i].Y) - (pts[j].Y-pts[i].Y)*(pts[k].X-pts[i].X)
				height := (cross * cross) / base
				if height <= eps*eps {
					out = append(out, [3]int{i, j, k})
				}
			}
		}
	}
	return out
}
