package polygon

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/status"
)

// Polygon is an ordered list of external edges, plus an optional list of
// clip limit boxes and an overall extents box. It carries no notion of
// "inside" on its own; a fill rule applied by the sweep line decides
// that from the edges' directions.
type Polygon struct {
	edges edgeChunks

	hasExtents bool
	extents    geom.Box

	limits   []geom.Box
	hasLimit bool
	limit    geom.Box

	// isRectilinear is true until an edge with nonzero Dx is added.
	isRectilinear bool

	Status status.Sticky
}

// New returns an empty polygon with no clip limits.
func New() *Polygon {
	return &Polygon{isRectilinear: true}
}

// NewWithLimits returns an empty polygon clipped to the union band of
// limits, per spec.md 4's polygon definition: every added edge is
// clipped to the union [min_y, max_y] and split/duplicated per limit
// region.
func NewWithLimits(limits []geom.Box) *Polygon {
	p := New()
	p.SetLimits(limits)
	return p
}

// SetLimits installs (or replaces) the clip limit list.
func (p *Polygon) SetLimits(limits []geom.Box) {
	p.limits = limits
	p.hasLimit = len(limits) > 0
	if !p.hasLimit {
		return
	}
	p.limit = limits[0]
	for _, l := range limits[1:] {
		p.limit.AddBox(l)
	}
}

// AddExternalEdge adds the edge between p1 and p2, deriving its
// direction from which endpoint comes first in y: dir is +1 when the
// edge descends (p1.Y < p2.Y) and -1 when it ascends, with the line's
// own top/bottom always stored in top <= bottom order regardless of
// which endpoint the caller passed first. A horizontal edge (p1.Y ==
// p2.Y) contributes nothing to any scanline and is dropped.
func (p *Polygon) AddExternalEdge(p1, p2 fixed.Point) error {
	switch {
	case p1.Y < p2.Y:
		return p.AddLine(geom.NewLine(p1, p2), p1.Y, p2.Y, 1)
	case p1.Y > p2.Y:
		return p.AddLine(geom.NewLine(p2, p1), p2.Y, p1.Y, -1)
	default:
		return nil
	}
}

// AddLine adds an edge along line, bounded by [top, bottom] (top <=
// bottom required), with winding direction dir. If the polygon has
// limits installed, the edge is clipped to the union band and a copy is
// appended for each limit region it overlaps in y.
func (p *Polygon) AddLine(line geom.Line, top, bottom fixed.Scalar, dir int32) error {
	if !p.Status.OK() {
		return p.Status.Status()
	}
	if top >= bottom {
		return nil
	}

	if !p.hasLimit {
		p.appendEdge(geom.Edge{Line: line, Top: top, Bottom: bottom, Dir: dir})
		return nil
	}

	if top >= p.limit.P2.Y || bottom <= p.limit.P1.Y {
		return nil
	}

	for _, lim := range p.limits {
		t, b := top, bottom
		if t < lim.P1.Y {
			t = lim.P1.Y
		}
		if b > lim.P2.Y {
			b = lim.P2.Y
		}
		if t >= b {
			continue
		}
		p.appendEdge(geom.Edge{Line: line, Top: t, Bottom: b, Dir: dir})
	}
	return nil
}

func (p *Polygon) appendEdge(e geom.Edge) {
	p.edges.append(e)

	if p.isRectilinear && e.Line.Dx() != 0 {
		p.isRectilinear = false
	}

	x1, x2 := e.Line.P1.X, e.Line.P2.X
	box := geom.NewBox(fixed.Pt(x1, e.Top), fixed.Pt(x2, e.Bottom))
	if !p.hasExtents {
		p.extents = box
		p.hasExtents = true
	} else {
		p.extents.AddBox(box)
	}
}

// Len returns the number of stored edges.
func (p *Polygon) Len() int { return p.edges.len }

// At returns the edge at index i.
func (p *Polygon) At(i int) geom.Edge { return p.edges.at(i) }

// ForEach visits every stored edge in insertion order, stopping early if
// fn returns false. Returns false iff fn did.
func (p *Polygon) ForEach(fn func(geom.Edge) bool) bool {
	return p.edges.forEach(fn)
}

// Extents returns the polygon's bounding box.
func (p *Polygon) Extents() geom.Box { return p.extents }

// IsEmpty reports whether the polygon has no edges, or its extents have
// collapsed to zero width.
func (p *Polygon) IsEmpty() bool {
	return p.edges.len == 0 || p.extents.P2.X <= p.extents.P1.X
}

// IsRectilinear reports whether every stored edge is vertical.
func (p *Polygon) IsRectilinear() bool { return p.isRectilinear }

// Clear empties the polygon, keeping any installed limits.
func (p *Polygon) Clear() {
	p.edges.reset()
	p.hasExtents = false
	p.extents = geom.Box{}
	p.isRectilinear = true
	p.Status = status.Sticky{}
}
