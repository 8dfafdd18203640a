package path

import (
	"testing"

	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
)

func i(v int32) fixed.Scalar { return fixed.FromInt(v) }

func TestLineToWithNoCurrentPointDegeneratesToMoveTo(t *testing.T) {
	p := New()
	if err := p.LineTo(i(5), i(5)); err != nil {
		t.Fatal(err)
	}
	if !p.HasCurrentPoint() {
		t.Fatal("expected current point after degenerate line_to")
	}
	if p.CurrentPoint() != fixed.Pt(i(5), i(5)) {
		t.Fatalf("got %+v", p.CurrentPoint())
	}
	if len(p.ops) != 0 {
		t.Fatalf("no op should be recorded yet: %v", p.ops)
	}
}

func TestLineToDropsDegenerateSegment(t *testing.T) {
	p := New()
	mustOK(t, p.MoveTo(i(0), i(0)))
	mustOK(t, p.LineTo(i(10), i(0)))
	mustOK(t, p.LineTo(i(10), i(0))) // degenerate, should be dropped
	if len(p.ops) != 2 {
		t.Fatalf("expected move+line only, got %v", p.ops)
	}
}

func TestLineToMergesCollinearRun(t *testing.T) {
	p := New()
	mustOK(t, p.MoveTo(i(0), i(0)))
	mustOK(t, p.LineTo(i(5), i(0)))
	mustOK(t, p.LineTo(i(10), i(0)))
	if len(p.ops) != 2 {
		t.Fatalf("expected the two collinear lines to merge, got %v", p.ops)
	}
	if p.CurrentPoint() != fixed.Pt(i(10), i(0)) {
		t.Fatalf("merged endpoint wrong: %+v", p.CurrentPoint())
	}
}

func TestLineToDoesNotMergeAntiParallelSegment(t *testing.T) {
	p := New()
	mustOK(t, p.MoveTo(i(0), i(0)))
	mustOK(t, p.LineTo(i(10), i(0)))
	mustOK(t, p.LineTo(i(0), i(0))) // backtracks over the same line
	if len(p.ops) != 3 {
		t.Fatalf("anti-parallel segment should not merge, got %v", p.ops)
	}
}

func TestClosePathOnEmptySubpathIsNoOp(t *testing.T) {
	p := New()
	if err := p.ClosePath(); err != nil {
		t.Fatal(err)
	}
	if len(p.ops) != 0 {
		t.Fatalf("expected no ops, got %v", p.ops)
	}
}

func TestClosePathDropsDegenerateClosingLine(t *testing.T) {
	p := New()
	mustOK(t, p.MoveTo(i(0), i(0)))
	mustOK(t, p.LineTo(i(10), i(0)))
	mustOK(t, p.LineTo(i(10), i(10)))
	mustOK(t, p.LineTo(i(0), i(10)))
	mustOK(t, p.ClosePath())
	box, ok := p.IsStrokeBox()
	if !ok {
		t.Fatalf("expected stroke-box shape, got ops %v", p.ops)
	}
	want := geom.NewBox(fixed.Pt(i(0), i(0)), fixed.Pt(i(10), i(10)))
	if box != want {
		t.Fatalf("got %+v want %+v", box, want)
	}
}

func TestRelOpsRequireCurrentPoint(t *testing.T) {
	p := New()
	if err := p.RelLineTo(i(1), i(1)); err == nil {
		t.Fatal("expected NoCurrentPoint error")
	}
	if err := p.RelMoveTo(i(1), i(1)); err == nil {
		t.Fatal("expected NoCurrentPoint error")
	}
	if err := p.RelCurveTo(i(1), i(1), i(2), i(2), i(3), i(3)); err == nil {
		t.Fatal("expected NoCurrentPoint error")
	}
}

func TestCurveToWithCoincidentPointsCollapsesToLineTo(t *testing.T) {
	p := New()
	mustOK(t, p.MoveTo(i(5), i(5)))
	mustOK(t, p.CurveTo(i(5), i(5), i(5), i(5), i(5), i(5)))
	if len(p.ops) != 2 || p.ops[0] != OpMoveTo || p.ops[1] != OpLineTo {
		t.Fatalf("expected move_to+line_to, got %v", p.ops)
	}
	if p.HasCurveTo() {
		t.Fatal("collapsed curve should not set HasCurveTo")
	}
}

func TestCurveToSetsRectilinearFlagsFalse(t *testing.T) {
	p := New()
	mustOK(t, p.MoveTo(i(0), i(0)))
	mustOK(t, p.CurveTo(i(1), i(1), i(2), i(2), i(3), i(0)))
	if p.StrokeIsRectilinear() || p.FillIsRectilinear() || p.FillMaybeRegion() {
		t.Fatal("a real curve must clear every rectilinear/region flag")
	}
	if !p.HasCurveTo() {
		t.Fatal("expected HasCurveTo")
	}
}

func TestIsBoxDetectsRectangle(t *testing.T) {
	p := New()
	mustOK(t, p.MoveTo(i(1), i(1)))
	mustOK(t, p.LineTo(i(4), i(1)))
	mustOK(t, p.LineTo(i(4), i(3)))
	mustOK(t, p.LineTo(i(1), i(3)))
	mustOK(t, p.ClosePath())
	box, ok := p.IsBox()
	if !ok {
		t.Fatal("expected box detection to succeed")
	}
	want := geom.NewBox(fixed.Pt(i(1), i(1)), fixed.Pt(i(4), i(3)))
	if box != want {
		t.Fatalf("got %+v want %+v", box, want)
	}
	if _, ok := p.IsRectangle(); !ok {
		t.Fatal("closed box should also satisfy IsRectangle")
	}
}

func TestBoxIterWalksMultipleRectangles(t *testing.T) {
	p := New()
	mustOK(t, p.MoveTo(i(0), i(0)))
	mustOK(t, p.LineTo(i(2), i(0)))
	mustOK(t, p.LineTo(i(2), i(2)))
	mustOK(t, p.LineTo(i(0), i(2)))
	mustOK(t, p.ClosePath())
	mustOK(t, p.MoveTo(i(5), i(5)))
	mustOK(t, p.LineTo(i(7), i(5)))
	mustOK(t, p.LineTo(i(7), i(7)))
	mustOK(t, p.LineTo(i(5), i(7)))
	mustOK(t, p.ClosePath())

	it := p.NewBoxIter()
	b1, ok := it.NextFillBox()
	if !ok {
		t.Fatal("expected first box")
	}
	if b1 != geom.NewBox(fixed.Pt(i(0), i(0)), fixed.Pt(i(2), i(2))) {
		t.Fatalf("first box wrong: %+v", b1)
	}
	b2, ok := it.NextFillBox()
	if !ok {
		t.Fatal("expected second box")
	}
	if b2 != geom.NewBox(fixed.Pt(i(5), i(5)), fixed.Pt(i(7), i(7))) {
		t.Fatalf("second box wrong: %+v", b2)
	}
	if !it.AtEnd() {
		t.Fatal("expected iterator exhausted")
	}
}

func TestInterpretFlatFlattensCurves(t *testing.T) {
	p := New()
	mustOK(t, p.MoveTo(i(0), i(0)))
	mustOK(t, p.CurveTo(i(0), i(10), i(10), i(10), i(10), i(0)))
	var lines int
	err := p.InterpretFlat(
		func(fixed.Point) error { return nil },
		func(fixed.Point) error { lines++; return nil },
		func() error { return nil },
		0.1,
	)
	if err != nil {
		t.Fatal(err)
	}
	if lines < 2 {
		t.Fatalf("expected a curve to flatten into multiple lines, got %d", lines)
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
