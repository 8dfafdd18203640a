package fillpoly

import (
	"testing"

	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/path"
)

func i(v int32) fixed.Scalar { return fixed.FromInt(v) }

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func square(t *testing.T) *path.Path {
	t.Helper()
	p := path.New()
	mustOK(t, p.MoveTo(i(0), i(0)))
	mustOK(t, p.LineTo(i(10), i(0)))
	mustOK(t, p.LineTo(i(10), i(10)))
	mustOK(t, p.LineTo(i(0), i(10)))
	mustOK(t, p.ClosePath())
	return p
}

func TestFillSquareProducesFourEdges(t *testing.T) {
	poly, err := Fill(square(t), 0.25, nil)
	mustOK(t, err)
	// The explicit close-path plus the trailing closeSubpath both try to
	// close the same already-closed subpath; the second is a degenerate
	// (zero-length) edge and is dropped. The polygon also drops the two
	// horizontal sides, leaving exactly the two vertical sides.
	if poly.Len() != 2 {
		t.Fatalf("expected 2 edges, got %d", poly.Len())
	}
	ext := poly.Extents()
	want := geom.Box{P1: fixed.Pt(i(0), i(0)), P2: fixed.Pt(i(10), i(10))}
	if ext != want {
		t.Fatalf("got extents %+v want %+v", ext, want)
	}
}

func TestFillOpenSubpathIsImplicitlyClosed(t *testing.T) {
	p := path.New()
	mustOK(t, p.MoveTo(i(0), i(0)))
	mustOK(t, p.LineTo(i(10), i(0)))
	mustOK(t, p.LineTo(i(10), i(10)))
	// No ClosePath call: Fill must still close back to (0,0).
	poly, err := Fill(p, 0.25, nil)
	mustOK(t, err)
	// The horizontal first segment is dropped by the polygon.
	if poly.Len() != 2 {
		t.Fatalf("expected 2 edges (vertical drawn side + implicit close), got %d", poly.Len())
	}
}

func TestFillMultipleSubpathsEachGetClosed(t *testing.T) {
	p := path.New()
	mustOK(t, p.MoveTo(i(0), i(0)))
	mustOK(t, p.LineTo(i(10), i(0)))
	mustOK(t, p.LineTo(i(10), i(10)))
	mustOK(t, p.MoveTo(i(20), i(20)))
	mustOK(t, p.LineTo(i(30), i(20)))
	poly, err := Fill(p, 0.25, nil)
	mustOK(t, err)
	// Horizontal edges are dropped by the polygon: the second subpath and
	// its implicit close are both horizontal, leaving the first subpath's
	// vertical side and its diagonal implicit close.
	if poly.Len() != 2 {
		t.Fatalf("expected 2 edges (1 drawn + 1 implicit close), got %d", poly.Len())
	}
}

func TestFillRectilinearRoundsDownFractionalVertices(t *testing.T) {
	p := path.New()
	mustOK(t, p.MoveTo(i(0)+fixed.Half, i(0)))
	mustOK(t, p.LineTo(i(10)+fixed.Half, i(0)))
	mustOK(t, p.LineTo(i(10)+fixed.Half, i(10)))
	mustOK(t, p.ClosePath())

	poly, err := FillRectilinear(p, nil)
	mustOK(t, err)
	found := false
	poly.ForEach(func(e geom.Edge) bool {
		if e.Line.P1.X == i(0) || e.Line.P2.X == i(0) {
			found = true
		}
		return true
	})
	if !found {
		t.Fatal("expected the fractional x=0.5 vertex rounded down to 0")
	}
}

func TestFillClipsToLimits(t *testing.T) {
	limits := []geom.Box{{P1: fixed.Pt(i(5), i(0)), P2: fixed.Pt(i(15), i(10))}}
	poly, err := Fill(square(t), 0.25, limits)
	mustOK(t, err)
	if poly.Len() == 0 {
		t.Fatal("expected clipped edges to survive")
	}
	ext := poly.Extents()
	if ext.P1.Y < i(0) || ext.P2.Y > i(10) {
		t.Fatalf("expected band clamped to limit's y range, got %+v", ext)
	}
}
