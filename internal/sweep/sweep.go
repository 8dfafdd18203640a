package sweep

import (
	"sort"

	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/polygon"
	"github.com/gogpu/pathtess/internal/traps"
)

// FillRule selects how the accumulated winding number at a scanline
// position decides inside vs outside, per spec.md §6.
type FillRule int

const (
	// Winding: inside wherever the signed edge-crossing count is nonzero.
	Winding FillRule = iota
	// EvenOdd: inside wherever the edge-crossing count is odd.
	EvenOdd
)

func inside(count int, rule FillRule) bool {
	if rule == EvenOdd {
		return count%2 != 0
	}
	return count != 0
}

// edgeLinePair keys a pendingTrap (a trapezoid still open for coalescing
// with the next band) by its bounding edge lines.
type edgeLinePair struct{ left, right geom.Line }

type pendingTrap struct {
	top, bottom fixed.Scalar
}

// Tessellate walks poly's edges under rule and appends the resulting
// trapezoids to out. See the package doc for the batched-band strategy
// this uses in place of comac's incremental active-edge list.
func Tessellate(poly *polygon.Polygon, rule FillRule, out *traps.Traps) error {
	var edges []geom.Edge
	poly.ForEach(func(e geom.Edge) bool {
		edges = append(edges, e)
		return true
	})
	if len(edges) == 0 {
		return nil
	}

	breaks := collectBreakpoints(edges)
	pending := make(map[edgeLinePair]*pendingTrap)
	var finishedKeys []edgeLinePair
	finished := make(map[edgeLinePair][]pendingTrap)

	for i := 0; i+1 < len(breaks); i++ {
		y0, y1 := breaks[i], breaks[i+1]

		var active []geom.Edge
		for _, e := range edges {
			if e.Top <= y0 && e.Bottom > y0 {
				active = append(active, e)
			}
		}
		if len(active) == 0 {
			continue
		}
		sort.SliceStable(active, func(i, j int) bool {
			return geom.LineCompareAtY(active[i], active[j], y0) < 0
		})

		seenThisBand := make(map[edgeLinePair]bool)
		count := 0
		wasInside := false
		var leftEdge geom.Edge
		for _, e := range active {
			count = nextCount(count, e.Dir, rule)
			isInside := inside(count, rule)
			switch {
			case !wasInside && isInside:
				leftEdge = e
			case wasInside && !isInside:
				key := edgeLinePair{left: leftEdge.Line, right: e.Line}
				seenThisBand[key] = true
				if pt, ok := pending[key]; ok && pt.bottom == y0 {
					pt.bottom = y1
				} else {
					pending[key] = &pendingTrap{top: y0, bottom: y1}
				}
			}
			wasInside = isInside
		}

		for key, pt := range pending {
			if !seenThisBand[key] {
				finished[key] = append(finished[key], *pt)
				finishedKeys = append(finishedKeys, key)
				delete(pending, key)
			}
		}
	}

	for key, pt := range pending {
		finished[key] = append(finished[key], *pt)
		finishedKeys = append(finishedKeys, key)
	}

	sort.SliceStable(finishedKeys, func(i, j int) bool {
		a, b := finishedKeys[i], finishedKeys[j]
		if a.left.P1.X != b.left.P1.X {
			return a.left.P1.X < b.left.P1.X
		}
		return a.left.P1.Y < b.left.P1.Y
	})

	emitted := make(map[edgeLinePair]bool)
	for _, key := range finishedKeys {
		if emitted[key] {
			continue
		}
		emitted[key] = true
		traps_ := finished[key]
		sort.Slice(traps_, func(i, j int) bool { return traps_[i].top < traps_[j].top })
		for _, t := range traps_ {
			if err := out.AddTrap(t.top, t.bottom, key.left, key.right); err != nil {
				return err
			}
		}
	}
	return nil
}

func nextCount(count int, dir int32, rule FillRule) int {
	if rule == EvenOdd {
		return count + 1
	}
	return count + int(dir)
}

// collectBreakpoints returns the sorted, deduplicated set of y values a
// band boundary can occur at: every edge's top and bottom, plus the y of
// every pairwise edge crossing inside both edges' bands.
func collectBreakpoints(edges []geom.Edge) []fixed.Scalar {
	seen := make(map[fixed.Scalar]bool)
	var ys []fixed.Scalar
	add := func(y fixed.Scalar) {
		if !seen[y] {
			seen[y] = true
			ys = append(ys, y)
		}
	}

	for _, e := range edges {
		add(e.Top)
		add(e.Bottom)
	}

	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			a, b := edges[i], edges[j]
			top := a.Top
			if b.Top > top {
				top = b.Top
			}
			bottom := a.Bottom
			if b.Bottom < bottom {
				bottom = b.Bottom
			}
			if top >= bottom {
				continue
			}
			_, y, ok := intersectLines(a.Line, b.Line)
			if !ok {
				continue
			}
			if y > a.Top && y < a.Bottom && y > b.Top && y < b.Bottom {
				add(y)
			}
		}
	}

	sort.Slice(ys, func(i, j int) bool { return ys[i] < ys[j] })
	return ys
}
