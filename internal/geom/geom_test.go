package geom

import (
	"testing"

	"github.com/gogpu/pathtess/internal/fixed"
)

func pt(x, y int32) fixed.Point { return fixed.Pt(fixed.FromInt(x), fixed.FromInt(y)) }

func TestBoxCanonicalize(t *testing.T) {
	b := NewBox(pt(10, 10), pt(0, 0))
	if b.P1 != pt(0, 0) || b.P2 != pt(10, 10) {
		t.Fatalf("canonicalize failed: %+v", b)
	}
}

func TestBoxAddPoint(t *testing.T) {
	b := NewBox(pt(0, 0), pt(10, 10))
	b.AddPoint(pt(-5, 20))
	if b.P1.X != fixed.FromInt(-5) || b.P2.Y != fixed.FromInt(20) {
		t.Fatalf("AddPoint failed: %+v", b)
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(pt(0, 0), pt(10, 10))
	if !b.ContainsPoint(pt(5, 5)) {
		t.Error("expected point inside")
	}
	if b.ContainsPoint(pt(11, 5)) {
		t.Error("expected point outside")
	}
	inner := NewBox(pt(1, 1), pt(2, 2))
	if !b.ContainsBox(inner) {
		t.Error("expected box containment")
	}
}

func TestBoxEmpty(t *testing.T) {
	if !(Box{P1: pt(0, 0), P2: pt(0, 5)}).Empty() {
		t.Error("zero-width box should be empty")
	}
	if (Box{P1: pt(0, 0), P2: pt(1, 1)}).Empty() {
		t.Error("non-degenerate box should not be empty")
	}
}

func TestBoxIsPixelAligned(t *testing.T) {
	b := NewBox(pt(0, 0), pt(10, 10))
	if !b.IsPixelAligned() {
		t.Error("integer box should be pixel aligned")
	}
	b.P2.X++
	if b.IsPixelAligned() {
		t.Error("box with fractional corner should not be pixel aligned")
	}
}

func TestBoxIntersectsSegment(t *testing.T) {
	b := NewBox(pt(0, 0), pt(10, 10))
	diag := NewLine(pt(-5, -5), pt(5, 5))
	if !b.IntersectsSegment(diag) {
		t.Error("expected diagonal through corner to intersect")
	}
	miss := NewLine(pt(20, 20), pt(30, 30))
	if b.IntersectsSegment(miss) {
		t.Error("expected far segment not to intersect")
	}
	tangent := NewLine(pt(-5, 0), pt(-1, 0))
	if b.IntersectsSegment(tangent) {
		t.Error("expected segment entirely left of box not to intersect")
	}
}

func TestSlopeCompareVerticalAsymmetry(t *testing.T) {
	vertical := Slope{Dx: 0, Dy: fixed.FromInt(10)}
	rightLeaning := Slope{Dx: fixed.FromInt(1), Dy: fixed.FromInt(10)}
	if SlopeCompare(vertical, rightLeaning) >= 0 {
		t.Error("vertical should compare less than a right-leaning slope")
	}
	leftLeaning := Slope{Dx: -fixed.FromInt(1), Dy: fixed.FromInt(10)}
	if SlopeCompare(vertical, leftLeaning) <= 0 {
		t.Error("vertical should compare greater than a left-leaning slope")
	}
}

func TestSlopeCompareOrdering(t *testing.T) {
	shallow := Slope{Dx: fixed.FromInt(10), Dy: fixed.FromInt(1)}
	steep := Slope{Dx: fixed.FromInt(1), Dy: fixed.FromInt(10)}
	if SlopeCompare(shallow, steep) == SlopeCompare(steep, shallow) {
		t.Error("slope comparison should be antisymmetric")
	}
}

func TestLineCompareAtYTieBreak(t *testing.T) {
	y := fixed.FromInt(0)
	shortEdge := Edge{Line: NewLine(pt(0, 0), pt(0, 5)), Top: fixed.FromInt(0), Bottom: fixed.FromInt(5)}
	longEdge := Edge{Line: NewLine(pt(0, 0), pt(0, 10)), Top: fixed.FromInt(0), Bottom: fixed.FromInt(10)}
	if LineCompareAtY(shortEdge, longEdge, y) <= 0 {
		t.Error("edge extending further should sort first (less) at a shared top")
	}
}
