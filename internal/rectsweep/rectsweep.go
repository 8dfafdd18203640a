package rectsweep

import (
	"sort"

	"github.com/gogpu/pathtess/internal/boxes"
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/polygon"
	"github.com/gogpu/pathtess/internal/traps"
)

// FillRule selects how the accumulated edge-crossing count at a scan
// position decides inside vs outside. Mirrors internal/sweep's FillRule;
// BR is a standalone sibling of BO, not built on top of it, so it keeps
// its own copy rather than importing BO for an enum.
type FillRule int

const (
	Winding FillRule = iota
	EvenOdd
)

func inside(count int, rule FillRule) bool {
	if rule == EvenOdd {
		return count%2 != 0
	}
	return count != 0
}

func nextCount(count int, dir int32, rule FillRule) int {
	if rule == EvenOdd {
		return count + 1
	}
	return count + int(dir)
}

type edgeLinePair struct{ left, right geom.Line }

type span struct{ top, bottom fixed.Scalar }

// emitFunc receives one finished trapezoid (always a rectangle here,
// since every edge is vertical): [top, bottom] bracketed by left and
// right's constant x.
type emitFunc func(top, bottom fixed.Scalar, left, right geom.Line) error

// tessellate partitions poly's y-extent into bands at every edge top and
// bottom — no crossing search is needed, since two vertical edges never
// cross — and walks each band's edges left to right by x, coalescing a
// span across bands while its bounding edge pair stays the same.
func tessellate(poly *polygon.Polygon, rule FillRule, emit emitFunc) error {
	var edges []geom.Edge
	poly.ForEach(func(e geom.Edge) bool {
		edges = append(edges, e)
		return true
	})
	if len(edges) == 0 {
		return nil
	}

	seen := make(map[fixed.Scalar]bool)
	var breaks []fixed.Scalar
	for _, e := range edges {
		if !seen[e.Top] {
			seen[e.Top] = true
			breaks = append(breaks, e.Top)
		}
		if !seen[e.Bottom] {
			seen[e.Bottom] = true
			breaks = append(breaks, e.Bottom)
		}
	}
	sort.Slice(breaks, func(i, j int) bool { return breaks[i] < breaks[j] })

	pending := make(map[edgeLinePair]*span)
	var finishedKeys []edgeLinePair
	finished := make(map[edgeLinePair][]span)

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
				if s, ok := pending[key]; ok && s.bottom == y0 {
					s.bottom = y1
				} else {
					pending[key] = &span{top: y0, bottom: y1}
				}
			}
			wasInside = isInside
		}

		for key, s := range pending {
			if !seenThisBand[key] {
				finished[key] = append(finished[key], *s)
				finishedKeys = append(finishedKeys, key)
				delete(pending, key)
			}
		}
	}

	for key, s := range pending {
		finished[key] = append(finished[key], *s)
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
		spans := finished[key]
		sort.Slice(spans, func(i, j int) bool { return spans[i].top < spans[j].top })
		for _, s := range spans {
			if err := emit(s.top, s.bottom, key.left, key.right); err != nil {
				return err
			}
		}
	}
	return nil
}

// TessellateToTraps tessellates poly into out, marking the set
// rectilinear first since BR never produces a slanted trapezoid.
func TessellateToTraps(poly *polygon.Polygon, rule FillRule, out *traps.Traps) error {
	out.SetRectilinear(true)
	return tessellate(poly, rule, out.AddTrap)
}

// TessellateToBoxes tessellates poly directly into a box set, bypassing
// trapezoid construction entirely — the fast path spec.md 4.BR and
// comac-bentley-ottmann-rectilinear.c's do_traps == FALSE mode describe.
func TessellateToBoxes(poly *polygon.Polygon, rule FillRule, out *boxes.Boxes) error {
	return tessellate(poly, rule, func(top, bottom fixed.Scalar, left, right geom.Line) error {
		box := geom.Box{P1: fixed.Pt(left.P1.X, top), P2: fixed.Pt(right.P1.X, bottom)}
		return out.Add(box, false)
	})
}
