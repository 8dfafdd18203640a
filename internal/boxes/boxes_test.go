package boxes

import (
	"testing"

	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
)

func i(v int32) fixed.Scalar { return fixed.FromInt(v) }

func box(x1, y1, x2, y2 int32) geom.Box {
	return geom.Box{P1: fixed.Pt(i(x1), i(y1)), P2: fixed.Pt(i(x2), i(y2))}
}

func TestAddWithoutLimitsStoresAsIs(t *testing.T) {
	b := New()
	mustOK(t, b.Add(box(0, 0, 10, 10), false))
	mustOK(t, b.Add(box(5, 5, 20, 20), false))
	if b.Len() != 2 {
		t.Fatalf("expected 2 boxes, got %d", b.Len())
	}
	ext := b.Extents()
	if ext != box(0, 0, 20, 20) {
		t.Fatalf("got extents %+v", ext)
	}
}

func TestAddDropsDegenerateBox(t *testing.T) {
	b := New()
	mustOK(t, b.Add(box(0, 0, 10, 0), false)) // zero height
	mustOK(t, b.Add(box(0, 0, 0, 10), false)) // zero width
	if b.Len() != 0 {
		t.Fatalf("expected degenerate boxes dropped, got %d", b.Len())
	}
}

func TestAddClipsToLimits(t *testing.T) {
	b := New()
	b.SetLimits([]geom.Box{box(5, 5, 15, 15)})
	mustOK(t, b.Add(box(0, 0, 10, 10), false))
	if b.Len() != 1 {
		t.Fatalf("expected the box to survive clipped, got %d", b.Len())
	}
	got := b.At(0)
	if got != box(5, 5, 10, 10) {
		t.Fatalf("got %+v", got)
	}
}

func TestAddOutsideLimitsIsDropped(t *testing.T) {
	b := New()
	b.SetLimits([]geom.Box{box(100, 100, 200, 200)})
	mustOK(t, b.Add(box(0, 0, 10, 10), false))
	if b.Len() != 0 {
		t.Fatalf("expected box outside limits to be dropped, got %d", b.Len())
	}
}

func TestAddPreservesReversedWindingThroughClip(t *testing.T) {
	b := New()
	b.SetLimits([]geom.Box{box(5, 5, 15, 15)})
	// P1.X > P2.X: counter-clockwise winding.
	reversedBox := geom.Box{P1: fixed.Pt(i(10), i(0)), P2: fixed.Pt(i(0), i(10))}
	mustOK(t, b.Add(reversedBox, false))
	if b.Len() != 1 {
		t.Fatalf("expected 1 clipped box, got %d", b.Len())
	}
	got := b.At(0)
	if got.P1.X <= got.P2.X {
		t.Fatalf("expected winding preserved (P1.X > P2.X), got %+v", got)
	}
}

func TestIsPixelAlignedTracksWholeSet(t *testing.T) {
	b := New()
	if !b.IsPixelAligned() {
		t.Fatal("empty set should start pixel-aligned")
	}
	mustOK(t, b.Add(box(0, 0, 10, 10), false))
	if !b.IsPixelAligned() {
		t.Fatal("integer box should keep pixel-aligned true")
	}
	fractional := geom.Box{P1: fixed.Pt(i(0)+1, i(0)), P2: fixed.Pt(i(10), i(10))}
	mustOK(t, b.Add(fractional, false))
	if b.IsPixelAligned() {
		t.Fatal("a fractional box should clear pixel-aligned for good")
	}
	mustOK(t, b.Add(box(1, 1, 2, 2), false))
	if b.IsPixelAligned() {
		t.Fatal("pixel-aligned must stay false once cleared")
	}
}

func TestClearResetsState(t *testing.T) {
	b := New()
	mustOK(t, b.Add(box(0, 0, 10, 10), false))
	b.Clear()
	if b.Len() != 0 || !b.IsPixelAligned() {
		t.Fatal("Clear should empty the set and reset the pixel-aligned hint")
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
