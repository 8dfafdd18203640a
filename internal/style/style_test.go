package style

import "testing"

func TestStrokeDashedRequiresPositiveEntry(t *testing.T) {
	if (Stroke{Dash: nil}).Dashed() {
		t.Error("no dash array should not be dashed")
	}
	if (Stroke{Dash: []float64{0, 0}}).Dashed() {
		t.Error("all-zero dash array should not be dashed")
	}
	if !(Stroke{Dash: []float64{4, 2}}).Dashed() {
		t.Error("expected a positive dash entry to mark dashed")
	}
}

func TestMatrixIsScale(t *testing.T) {
	if !(Matrix{XX: 2, YY: 3}).IsScale() {
		t.Error("pure scale should report IsScale")
	}
	if (Matrix{XX: 1, XY: 0.5, YY: 1}).IsScale() {
		t.Error("sheared matrix should not report IsScale")
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Matrix{XX: 2, YY: 4, X0: 1, Y0: -3}
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	x, y := m.TransformPoint(5, 7)
	bx, by := inv.TransformPoint(x, y)
	if diff := bx - 5; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("got x=%v want 5", bx)
	}
	if diff := by - 7; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("got y=%v want 7", by)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	_, ok := Matrix{}.Invert()
	if ok {
		t.Error("expected zero matrix to be singular")
	}
}
