package geom

import (
	"testing"

	"github.com/gogpu/pathtess/internal/fixed"
)

func TestToXImageRectangleRoundTrip(t *testing.T) {
	b := Box{P1: pt(1, 2), P2: pt(10, 20)}
	r := b.ToXImageRectangle()

	got := Box{P1: FromXImagePoint(r.Min), P2: FromXImagePoint(r.Max)}
	if got != b {
		t.Errorf("round trip = %+v, want %+v", got, b)
	}
}

func TestToXImagePointScalesFractionalBits(t *testing.T) {
	// 1.25 in Q24.8 is One + One/4; in 26.6 it should be 64 + 16 = 80.
	p := fixed.Pt(fixed.One+fixed.One/4, 0)
	got := ToXImagePoint(p)
	if got.X != 80 {
		t.Errorf("X = %v, want 80", got.X)
	}
}
