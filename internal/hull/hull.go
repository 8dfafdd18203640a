package hull

import (
	"sort"

	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/wide"
)

// vertex is one candidate point during the scan: its slope from the
// extremal starting point, a stable id for tie-breaking, and whether
// it has been ruled out of the final hull.
type vertex struct {
	point   fixed.Point
	slope   geom.Slope
	id      int
	discard bool
}

// Compute returns the convex hull of points, in hull order starting
// from the lowest point (ties broken by smallest x): the remaining
// points follow in the order of their slope from that point.
func Compute(points []fixed.Point) []fixed.Point {
	n := len(points)
	if n == 0 {
		return nil
	}

	pts := append([]fixed.Point(nil), points...)
	extreme := 0
	for idx := 1; idx < n; idx++ {
		p, e := pts[idx], pts[extreme]
		if p.Y < e.Y || (p.Y == e.Y && p.X < e.X) {
			extreme = idx
		}
	}
	pts[0], pts[extreme] = pts[extreme], pts[0]

	verts := make([]vertex, n)
	for idx, p := range pts {
		v := vertex{point: p, slope: geom.SlopeBetween(pts[0], p), id: idx}
		if idx != 0 && v.slope.IsZero() {
			v.discard = true
		}
		verts[idx] = v
	}

	rest := verts[1:]
	sort.SliceStable(rest, func(a, b int) bool {
		return compare(&rest[a], &rest[b]) < 0
	})

	eliminateConcave(verts)

	out := make([]fixed.Point, 0, n)
	for _, v := range verts {
		if !v.discard {
			out = append(out, v.point)
		}
	}
	return out
}

func slopeLength(s geom.Slope) int64 {
	return wide.MulS32x32(s.Dx, s.Dx) + wide.MulS32x32(s.Dy, s.Dy)
}

// compare orders two vertices by slope from the extremal point. Ties
// (exactly collinear candidates) are broken by distance, discarding the
// nearer point and its id as a last resort — and, as a side effect,
// marking the losing vertex's discard flag right here so a later pass
// doesn't need to re-detect the tie.
func compare(a, b *vertex) int {
	ret := geom.SlopeCompare(a.slope, b.slope)
	if ret != 0 {
		return ret
	}

	la, lb := slopeLength(a.slope), slopeLength(b.slope)
	cmp := 0
	switch {
	case la < lb:
		cmp = -1
	case la > lb:
		cmp = 1
	}

	if cmp < 0 || (cmp == 0 && a.id < b.id) {
		a.discard = true
		return -1
	}
	b.discard = true
	return 1
}

func prevValid(hull []vertex, index int) int {
	if index == 0 {
		return 0
	}
	for {
		index--
		if !hull[index].discard {
			return index
		}
	}
}

func nextValid(hull []vertex, index int) int {
	n := len(hull)
	for {
		index = (index + 1) % n
		if !hull[index].discard {
			return index
		}
	}
}

// turn returns the sign of ij.Dx*jk.Dy - jk.Dx*ij.Dy. Unlike
// geom.SlopeCompare it has no vertical-slope shortcut, so an upward
// vertical edge (Dy < 0) turns the same way its cross product says.
func turn(ij, jk geom.Slope) int {
	c := wide.MulS32x32(ij.Dx, jk.Dy) - wide.MulS32x32(jk.Dx, ij.Dy)
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	}
	return 0
}

// eliminateConcave walks the slope-sorted ring and discards any vertex
// that makes a reflex (non-left) turn, leaving only the hull boundary.
func eliminateConcave(hull []vertex) {
	i := 0
	j := nextValid(hull, i)
	k := nextValid(hull, j)

	for {
		ij := geom.SlopeBetween(hull[i].point, hull[j].point)
		jk := geom.SlopeBetween(hull[j].point, hull[k].point)

		if turn(ij, jk) >= 0 {
			if i == k {
				return
			}
			hull[j].discard = true
			j = i
			i = prevValid(hull, j)
		} else {
			i = j
			j = k
			k = nextValid(hull, j)
		}

		if j == 0 {
			return
		}
	}
}
