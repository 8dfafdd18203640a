package traps

import (
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/status"
)

// Trapezoid is bounded above by Top, below by Bottom, and on its two
// sides by the (possibly slanted) Left and Right edge lines, each taken
// as the infinite line through its two points.
type Trapezoid struct {
	Top, Bottom fixed.Scalar
	Left, Right geom.Line
}

// IsRectilinear reports whether both side edges of the trapezoid are
// vertical, making it an axis-aligned rectangle.
func (t Trapezoid) IsRectilinear() bool {
	return t.Left.Dx() == 0 && t.Right.Dx() == 0
}

// Box returns the trapezoid's rectangle and true, if it is one.
func (t Trapezoid) Box() (geom.Box, bool) {
	if !t.IsRectilinear() {
		return geom.Box{}, false
	}
	return geom.Box{
		P1: fixed.Pt(t.Left.P1.X, t.Top),
		P2: fixed.Pt(t.Right.P1.X, t.Bottom),
	}, true
}

// Traps is an append-only set of trapezoids, the direct output of the
// sweep-line tessellator before it is walked into a polygon mesh.
type Traps struct {
	chunks trapChunks

	hasBounds bool
	bounds    geom.Box

	limits   []geom.Box
	hasLimit bool
	limit    geom.Box

	// isRectilinear is a hint set by the driver that produced this set
	// (BR always sets it before tessellating), not computed per trap.
	isRectilinear bool
	maybeRegion   bool

	Status status.Sticky
}

// New returns an empty trapezoid set.
func New() *Traps {
	return &Traps{maybeRegion: true}
}

// SetLimits installs a clip limit list, mirroring boxes.Boxes.SetLimits.
// AddTrap drops any trapezoid whose [Top, Bottom] band, after clamping
// to the union of limits, is empty.
func (t *Traps) SetLimits(limits []geom.Box) {
	t.limits = limits
	t.hasLimit = len(limits) > 0
	if !t.hasLimit {
		return
	}
	t.limit = limits[0]
	for _, l := range limits[1:] {
		t.limit.AddBox(l)
	}
}

// SetRectilinear marks every trapezoid added after this call (and any
// added before it) as guaranteed axis-aligned. Called by internal/rectsweep,
// which only ever produces rectangles, before it starts tessellating.
func (t *Traps) SetRectilinear(v bool) { t.isRectilinear = v }

// IsRectilinear reports whether the set is known to contain only
// axis-aligned trapezoids.
func (t *Traps) IsRectilinear() bool { return t.isRectilinear }

// MaybeRegion is a conservative hint: false means the set definitely
// cannot be represented as a pixel-aligned region, true means it still
// might be (the caller must still check each trapezoid).
func (t *Traps) MaybeRegion() bool { return t.maybeRegion }

// AddTrap appends the trapezoid bounded by [top, bottom] and the left and
// right edge lines. Trapezoids with non-positive height are silently
// dropped, mirroring the "Only emit (trivial) non-degenerate trapezoids
// with positive height" rule the sweep line relies on when it closes out
// an edge pair.
func (t *Traps) AddTrap(top, bottom fixed.Scalar, left, right geom.Line) error {
	if !t.Status.OK() {
		return t.Status.Status()
	}
	if top >= bottom {
		return nil
	}

	if t.hasLimit {
		if top >= t.limit.P2.Y || bottom <= t.limit.P1.Y {
			return nil
		}
		if top < t.limit.P1.Y {
			top = t.limit.P1.Y
		}
		if bottom > t.limit.P2.Y {
			bottom = t.limit.P2.Y
		}
		if top >= bottom {
			return nil
		}
	}

	trap := Trapezoid{Top: top, Bottom: bottom, Left: left, Right: right}
	t.chunks.append(trap)

	if t.maybeRegion && !trap.IsRectilinear() {
		t.maybeRegion = false
	}

	le, re := geom.Edge{Line: left}, geom.Edge{Line: right}
	lx1, lx2 := le.XAtY(top), le.XAtY(bottom)
	rx1, rx2 := re.XAtY(top), re.XAtY(bottom)
	box := geom.Box{P1: fixed.Pt(lx1, top), P2: fixed.Pt(rx1, bottom)}
	box.AddPoint(fixed.Pt(lx2, bottom))
	box.AddPoint(fixed.Pt(rx2, top))
	if !t.hasBounds {
		t.bounds = box
		t.hasBounds = true
	} else {
		t.bounds.AddBox(box)
	}

	return nil
}

// Len returns the number of stored trapezoids.
func (t *Traps) Len() int { return t.chunks.len }

// At returns the trapezoid at index i.
func (t *Traps) At(i int) Trapezoid { return t.chunks.at(i) }

// Extents returns the bounding box of every stored trapezoid.
func (t *Traps) Extents() geom.Box { return t.bounds }

// ForEach visits every stored trapezoid in insertion order, stopping
// early if fn returns false. Returns false iff fn did.
func (t *Traps) ForEach(fn func(Trapezoid) bool) bool {
	return t.chunks.forEach(fn)
}

// ToBoxes converts every trapezoid to a geom.Box, returning false if any
// trapezoid is not axis-aligned.
func (t *Traps) ToBoxes() ([]geom.Box, bool) {
	out := make([]geom.Box, 0, t.chunks.len)
	ok := t.chunks.forEach(func(trap Trapezoid) bool {
		box, isBox := trap.Box()
		if !isBox {
			return false
		}
		out = append(out, box)
		return true
	})
	if !ok {
		return nil, false
	}
	return out, true
}

// Clear empties the set, keeping any installed limits but dropping the
// rectilinear/region hints back to their conservative defaults.
func (t *Traps) Clear() {
	t.chunks.reset()
	t.hasBounds = false
	t.bounds = geom.Box{}
	t.isRectilinear = false
	t.maybeRegion = true
	t.Status = status.Sticky{}
}
