package rectstroke

import (
	"testing"

	"github.com/gogpu/pathtess/internal/fixed"
	"github.com/gogpu/pathtess/internal/geom"
	"github.com/gogpu/pathtess/internal/path"
	"github.com/gogpu/pathtess/internal/status"
	"github.com/gogpu/pathtess/internal/style"
)

func i(v int32) fixed.Scalar { return fixed.FromInt(v) }

func butt() style.Stroke {
	return style.Stroke{
		LineWidth:  2,
		LineCap:    style.CapButt,
		LineJoin:   style.JoinMiter,
		MiterLimit: 10,
	}
}

// S4: a straight horizontal segment, butt cap, line width 2, identity
// CTM: the fast path must emit exactly one box (0,-1)-(10,1).
func TestStrokeAxisAlignedButtLine(t *testing.T) {
	p := path.New()
	must(t, p.MoveTo(i(0), i(0)))
	must(t, p.LineTo(i(10), i(0)))

	out, st := Stroke(p, butt(), style.Identity())
	if st != status.Success {
		t.Fatalf("got status %v", st)
	}
	if out.Len() != 1 {
		t.Fatalf("expected 1 box, got %d", out.Len())
	}
	want := geom.Box{P1: fixed.Pt(i(0), i(-1)), P2: fixed.Pt(i(10), i(1))}
	if out.At(0) != want {
		t.Fatalf("got %+v want %+v", out.At(0), want)
	}
}

func TestStrokeSquareCapExtendsEnds(t *testing.T) {
	st := butt()
	st.LineCap = style.CapSquare

	p := path.New()
	must(t, p.MoveTo(i(0), i(0)))
	must(t, p.LineTo(i(10), i(0)))

	out, gotStatus := Stroke(p, st, style.Identity())
	if gotStatus != status.Success {
		t.Fatalf("got status %v", gotStatus)
	}
	if out.Len() != 1 {
		t.Fatalf("expected 1 box, got %d", out.Len())
	}
	want := geom.Box{P1: fixed.Pt(i(-1), i(-1)), P2: fixed.Pt(i(11), i(1))}
	if out.At(0) != want {
		t.Fatalf("got %+v want %+v", out.At(0), want)
	}
}

func TestStrokeSingleBoxUsesExtremeFastPath(t *testing.T) {
	p := path.New()
	must(t, p.MoveTo(i(0), i(0)))
	must(t, p.LineTo(i(10), i(0)))
	must(t, p.LineTo(i(10), i(10)))
	must(t, p.LineTo(i(0), i(10)))
	must(t, p.ClosePath())

	out, st := Stroke(p, butt(), style.Identity())
	if st != status.Success {
		t.Fatalf("got status %v", st)
	}
	if out.Len() != 4 {
		t.Fatalf("expected 4 side boxes, got %d", out.Len())
	}
	// The four sides must tile the stroke frame with no interior hole:
	// check a point on each side is covered and the box's own center
	// is not.
	covers := func(pt fixed.Point) bool {
		for idx := 0; idx < out.Len(); idx++ {
			b := out.At(idx)
			if pt.X >= b.P1.X && pt.X <= b.P2.X && pt.Y >= b.P1.Y && pt.Y <= b.P2.Y {
				return true
			}
		}
		return false
	}
	if !covers(fixed.Pt(i(5), i(0))) {
		t.Error("expected top edge covered")
	}
	if covers(fixed.Pt(i(5), i(5))) {
		t.Error("expected box interior not covered")
	}
}

func TestStrokeRejectsNonRectilinearPath(t *testing.T) {
	p := path.New()
	must(t, p.MoveTo(i(0), i(0)))
	must(t, p.LineTo(i(10), i(10)))

	_, st := Stroke(p, butt(), style.Identity())
	if st != status.Unsupported {
		t.Fatalf("expected Unsupported, got %v", st)
	}
}

func TestStrokeRejectsRoundJoin(t *testing.T) {
	p := path.New()
	must(t, p.MoveTo(i(0), i(0)))
	must(t, p.LineTo(i(10), i(0)))

	st := butt()
	st.LineJoin = style.JoinRound
	if Enabled(st, style.Identity()) {
		t.Error("round join must not enable the fast path")
	}
}

func TestStrokeRightAngleJoinFillsCorner(t *testing.T) {
	p := path.New()
	must(t, p.MoveTo(i(0), i(0)))
	must(t, p.LineTo(i(10), i(0)))
	must(t, p.LineTo(i(10), i(10)))

	out, st := Stroke(p, butt(), style.Identity())
	if st != status.Success {
		t.Fatalf("got status %v", st)
	}
	corner := fixed.Pt(i(10), i(0))
	found := false
	for idx := 0; idx < out.Len(); idx++ {
		b := out.At(idx)
		if corner.X >= b.P1.X && corner.X <= b.P2.X && corner.Y >= b.P1.Y && corner.Y <= b.P2.Y {
			found = true
		}
	}
	if !found {
		t.Error("expected the join corner to be covered by some box")
	}
}

func TestStrokeDashedEmitsGaps(t *testing.T) {
	st := butt()
	st.Dash = []float64{4, 2}

	p := path.New()
	must(t, p.MoveTo(i(0), i(0)))
	must(t, p.LineTo(i(12), i(0)))

	out, s := Stroke(p, st, style.Identity())
	if s != status.Success {
		t.Fatalf("got status %v", s)
	}
	if out.Len() == 0 {
		t.Fatal("expected at least one dash box")
	}
	// The gap at x in [4,6] must not be covered by any box.
	for idx := 0; idx < out.Len(); idx++ {
		b := out.At(idx)
		if i(5) >= b.P1.X && i(5) <= b.P2.X && i(0) >= b.P1.Y && i(0) <= b.P2.Y {
			t.Fatal("expected a gap at x=5")
		}
	}
}

// S6: dashes [2,2], offset 0, butt cap, line width 2, over a single
// horizontal segment (0,0)-(10,0). Three on-runs of length 2 each
// produce one box apiece, spaced by the 2-unit gaps.
func TestStrokeDashedRectilinearS6(t *testing.T) {
	st := butt()
	st.Dash = []float64{2, 2}

	p := path.New()
	must(t, p.MoveTo(i(0), i(0)))
	must(t, p.LineTo(i(10), i(0)))

	out, gotStatus := Stroke(p, st, style.Identity())
	if gotStatus != status.Success {
		t.Fatalf("got status %v", gotStatus)
	}
	want := []geom.Box{
		{P1: fixed.Pt(i(0), i(-1)), P2: fixed.Pt(i(2), i(1))},
		{P1: fixed.Pt(i(4), i(-1)), P2: fixed.Pt(i(6), i(1))},
		{P1: fixed.Pt(i(8), i(-1)), P2: fixed.Pt(i(10), i(1))},
	}
	if out.Len() != len(want) {
		t.Fatalf("expected %d boxes, got %d", len(want), out.Len())
	}
	for _, w := range want {
		found := false
		for idx := 0; idx < out.Len(); idx++ {
			if out.At(idx) == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing expected box %+v", w)
		}
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
