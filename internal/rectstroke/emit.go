package rectstroke

import (
	"math"

	"github.com/gogpu/pathtess/internal/boxes"
	"github.com/gogpu/pathtess/internal/dash"
	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/style"
)

// segmentBox expands seg into its stroke box, extending the p1 end
// and/or p2 end along the segment's own axis by its own-axis half
// width when the corresponding lengthen flag is set. Two segments
// meeting at a right-angle join each get the adjoining axis's half
// width extended toward the other, so the pair's boxes overlap
// exactly over the corner square rather than leaving a gap.
func segmentBox(seg segment, lengthenP1, lengthenP2 bool, halfX, halfY fixed.Scalar) geom.Box {
	if seg.horizontal() {
		lo, hi := seg.p1.X, seg.p2.X
		l1, l2 := lengthenP1, lengthenP2
		if !seg.forwards() {
			lo, hi = hi, lo
			l1, l2 = l2, l1
		}
		if l1 {
			lo -= halfX
		}
		if l2 {
			hi += halfX
		}
		y := seg.p1.Y
		box := geom.Box{P1: fixed.Pt(lo, y-halfY), P2: fixed.Pt(hi, y+halfY)}
		box.Canonicalize()
		return box
	}

	lo, hi := seg.p1.Y, seg.p2.Y
	l1, l2 := lengthenP1, lengthenP2
	if !seg.forwards() {
		lo, hi = hi, lo
		l1, l2 = l2, l1
	}
	if l1 {
		lo -= halfY
	}
	if l2 {
		hi += halfY
	}
	x := seg.p1.X
	box := geom.Box{P1: fixed.Pt(x-halfX, lo), P2: fixed.Pt(x+halfX, hi)}
	box.Canonicalize()
	return box
}

// neighbors returns the segment immediately before and after segs[i]
// within its subpath, accounting for wraparound when closed is set.
func neighbors(segs []segment, i int, closed bool) (prev, next *segment) {
	n := len(segs)
	if i > 0 {
		prev = &segs[i-1]
	} else if closed && n > 1 {
		prev = &segs[n-1]
	}
	if i < n-1 {
		next = &segs[i+1]
	} else if closed && n > 1 {
		next = &segs[0]
	}
	return
}

// emitSegments expands every segment of an un-dashed subpath into a
// box, lengthening each end at a join (opposite-axis neighbor) or,
// for an open subpath's own ends, when capStyle is Square.
func emitSegments(segs []segment, closed bool, capStyle style.LineCap, halfX, halfY fixed.Scalar, out *boxes.Boxes) error {
	for i, seg := range segs {
		prev, next := neighbors(segs, i, closed)

		lengthenP1 := capStyle == style.CapSquare
		if prev != nil {
			lengthenP1 = prev.horizontal() != seg.horizontal()
		}
		lengthenP2 := capStyle == style.CapSquare
		if next != nil {
			lengthenP2 = next.horizontal() != seg.horizontal()
		}

		box := segmentBox(seg, lengthenP1, lengthenP2, halfX, halfY)
		if err := out.Add(box, false); err != nil {
			return err
		}
	}
	return nil
}

func segmentLengthDevice(seg segment) float64 {
	if seg.horizontal() {
		return math.Abs(fixed.ToFloat64(seg.p2.X - seg.p1.X))
	}
	return math.Abs(fixed.ToFloat64(seg.p2.Y - seg.p1.Y))
}

// subSegment returns the portion of seg spanning device-length [from,
// to] measured from p1 along the direction p1->p2, preserving seg's
// horizontal/forwards flags.
func subSegment(seg segment, from, to, total float64) segment {
	if total <= 0 {
		return segment{p1: seg.p1, p2: seg.p1, flags: seg.flags}
	}
	t0, t1 := from/total, to/total
	if seg.horizontal() {
		dx := fixed.ToFloat64(seg.p2.X - seg.p1.X)
		x0 := fixed.ToFloat64(seg.p1.X) + dx*t0
		x1 := fixed.ToFloat64(seg.p1.X) + dx*t1
		y := seg.p1.Y
		return segment{p1: fixed.Pt(fixed.FromFloat64(x0), y), p2: fixed.Pt(fixed.FromFloat64(x1), y), flags: seg.flags}
	}
	dy := fixed.ToFloat64(seg.p2.Y - seg.p1.Y)
	y0 := fixed.ToFloat64(seg.p1.Y) + dy*t0
	y1 := fixed.ToFloat64(seg.p1.Y) + dy*t1
	x := seg.p1.X
	return segment{p1: fixed.Pt(x, fixed.FromFloat64(y0)), p2: fixed.Pt(x, fixed.FromFloat64(y1)), flags: seg.flags}
}

// emitSegmentsDashed walks segs under a shared dash cursor, emitting
// one box per on-phase sub-run. A Square cap extends only the
// subpath's true outer ends, not the cut ends an off-phase leaves
// mid-segment. At a vertex where the dash stays on across a change of
// axis, a half-width corner patch box is added, the rectilinear
// analogue of comac's mid-segment join square: without it, two
// differently oriented on-runs that meet exactly at the original
// vertex would leave the corner's notch uncovered, since neither run
// extends past its own flush end there.
func emitSegmentsDashed(segs []segment, closed bool, capStyle style.LineCap, halfX, halfY fixed.Scalar, d *dash.State, out *boxes.Boxes) error {
	n := len(segs)
	for i, seg := range segs {
		total := segmentLengthDevice(seg)
		if total == 0 {
			continue
		}
		pos := 0.0
		for pos < total {
			on := d.On()
			step := d.Remain()
			if pos+step > total {
				step = total - pos
			}
			if step < 0 {
				step = 0
			}
			if on && step > 0 {
				sub := subSegment(seg, pos, pos+step, total)
				lengthenP1 := pos == 0 && capStyle == style.CapSquare
				lengthenP2 := pos+step >= total && capStyle == style.CapSquare
				box := segmentBox(sub, lengthenP1, lengthenP2, halfX, halfY)
				if err := out.Add(box, false); err != nil {
					return err
				}
			}
			d.Step(step)
			pos += step
			if step == 0 {
				// A zero-length dash entry would otherwise spin
				// forever; treat it as an instantaneous phase flip.
				break
			}
		}

		if seg.hasJoin() && d.On() {
			var next segment
			if i < n-1 {
				next = segs[i+1]
			} else {
				next = segs[0]
			}
			if next.horizontal() != seg.horizontal() {
				v := seg.p2
				patch := geom.Box{
					P1: fixed.Pt(v.X-halfX, v.Y-halfY),
					P2: fixed.Pt(v.X+halfX, v.Y+halfY),
				}
				if err := out.Add(patch, false); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
