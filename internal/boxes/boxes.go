package boxes

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/status"
)

// Boxes is an append-only set of rectangles, optionally clipped to a
// list of limiting boxes as they're added.
type Boxes struct {
	chunks         boxChunks
	isPixelAligned bool

	limits   []geom.Box
	hasLimit bool
	limit    geom.Box

	Status status.Sticky
}

// New returns an empty box set.
func New() *Boxes {
	return &Boxes{isPixelAligned: true}
}

// NewFromRectangle returns a box set containing the single rectangle
// (x, y, x+w, y+h).
func NewFromRectangle(x, y, w, h fixed.Scalar) *Boxes {
	b := New()
	b.chunks.append(geom.Box{P1: fixed.Pt(x, y), P2: fixed.Pt(x+w, y+h)})
	b.isPixelAligned = b.isPixelAligned && b.chunks.at(0).IsPixelAligned()
	return b
}

// SetLimits installs limits as both the clip list future Add calls are
// tested against and, via their union bounding box, a cheap early-out
// test before walking the full list.
func (b *Boxes) SetLimits(limits []geom.Box) {
	b.limits = limits
	b.hasLimit = len(limits) > 0
	if !b.hasLimit {
		return
	}
	b.limit = limits[0]
	for _, l := range limits[1:] {
		if l.P1.X < b.limit.P1.X {
			b.limit.P1.X = l.P1.X
		}
		if l.P1.Y < b.limit.P1.Y {
			b.limit.P1.Y = l.P1.Y
		}
		if l.P2.X > b.limit.P2.X {
			b.limit.P2.X = l.P2.X
		}
		if l.P2.Y > b.limit.P2.Y {
			b.limit.P2.Y = l.P2.Y
		}
	}
}

// Add appends box to the set, clipping it against any installed limits
// and preserving its winding (which corner is P1 vs P2) through the
// clip. If roundDown is set (the spec's antialias-none path) every
// corner is snapped toward the pixel grid before the degenerate check,
// so a box that rounds down to zero width or height is dropped rather
// than stored.
func (b *Boxes) Add(box geom.Box, roundDown bool) error {
	if !b.Status.OK() {
		return b.Status.Status()
	}

	if roundDown {
		box = geom.Box{
			P1: fixed.Pt(fixed.RoundDown(box.P1.X), fixed.RoundDown(box.P1.Y)),
			P2: fixed.Pt(fixed.RoundDown(box.P2.X), fixed.RoundDown(box.P2.Y)),
		}
	}

	if box.P1.Y == box.P2.Y || box.P1.X == box.P2.X {
		return nil
	}

	if !b.hasLimit {
		b.addInternal(box)
		return nil
	}

	reversed := false
	var p1x, p2x fixed.Scalar
	if box.P1.X < box.P2.X {
		p1x, p2x = box.P1.X, box.P2.X
	} else {
		p2x, p1x = box.P1.X, box.P2.X
		reversed = !reversed
	}
	if p1x >= b.limit.P2.X || p2x <= b.limit.P1.X {
		return nil
	}

	var p1y, p2y fixed.Scalar
	if box.P1.Y < box.P2.Y {
		p1y, p2y = box.P1.Y, box.P2.Y
	} else {
		p2y, p1y = box.P1.Y, box.P2.Y
		reversed = !reversed
	}
	if p1y >= b.limit.P2.Y || p2y <= b.limit.P1.Y {
		return nil
	}

	for _, lim := range b.limits {
		if p1x >= lim.P2.X || p2x <= lim.P1.X {
			continue
		}
		if p1y >= lim.P2.Y || p2y <= lim.P1.Y {
			continue
		}

		cx1, cy1 := p1x, p1y
		if cx1 < lim.P1.X {
			cx1 = lim.P1.X
		}
		if cy1 < lim.P1.Y {
			cy1 = lim.P1.Y
		}
		cx2, cy2 := p2x, p2y
		if cx2 > lim.P2.X {
			cx2 = lim.P2.X
		}
		if cy2 > lim.P2.Y {
			cy2 = lim.P2.Y
		}
		if cy2 <= cy1 || cx2 <= cx1 {
			continue
		}

		var clipped geom.Box
		clipped.P1.Y, clipped.P2.Y = cy1, cy2
		if reversed {
			clipped.P1.X, clipped.P2.X = cx2, cx1
		} else {
			clipped.P1.X, clipped.P2.X = cx1, cx2
		}
		b.addInternal(clipped)
	}
	return nil
}

func (b *Boxes) addInternal(box geom.Box) {
	b.chunks.append(box)
	if b.isPixelAligned {
		b.isPixelAligned = box.IsPixelAligned()
	}
}

// Len returns the number of stored boxes.
func (b *Boxes) Len() int { return b.chunks.len }

// At returns the box at index i.
func (b *Boxes) At(i int) geom.Box { return b.chunks.at(i) }

// IsPixelAligned reports whether every box added so far has integer
// coordinates. Monotonic: once false, stays false.
func (b *Boxes) IsPixelAligned() bool { return b.isPixelAligned }

// Extents returns the union bounding box of every stored box.
func (b *Boxes) Extents() geom.Box {
	if b.chunks.len == 0 {
		return geom.Box{}
	}
	first := b.chunks.at(0)
	ext := geom.NewBox(first.P1, first.P2)
	b.chunks.forEach(func(box geom.Box) bool {
		ext.AddPoint(box.P1)
		ext.AddPoint(box.P2)
		return true
	})
	return ext
}

// Clear empties the set, keeping any installed limits.
func (b *Boxes) Clear() {
	b.chunks.reset()
	b.isPixelAligned = true
	b.Status = status.Sticky{}
}

// ForEach visits every stored box in insertion order, stopping early if
// fn returns false. Returns false iff fn did.
func (b *Boxes) ForEach(fn func(geom.Box) bool) bool {
	return b.chunks.forEach(fn)
}

// ToSlice copies every stored box into a freshly allocated slice.
func (b *Boxes) ToSlice() []geom.Box {
	out := make([]geom.Box, 0, b.chunks.len)
	b.chunks.forEach(func(box geom.Box) bool {
		out = append(out, box)
		return true
	})
	return out
}
