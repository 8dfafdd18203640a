package dash

import "testing"

func TestNewUndashedWhenEmpty(t *testing.T) {
	s := New(nil, 0)
	if s.Dashed() {
		t.Error("nil pattern should not be dashed")
	}
}

func TestNewUndashedWhenAllZero(t *testing.T) {
	s := New([]float64{0, 0}, 0)
	if s.Dashed() {
		t.Error("all-zero pattern should not be dashed")
	}
}

func TestStartNoOffsetBeginsOn(t *testing.T) {
	s := New([]float64{4, 2}, 0)
	if !s.On() {
		t.Error("expected pen down at start of first dash")
	}
	if !s.StartsOn() {
		t.Error("expected StartsOn true")
	}
	if s.Remain() != 4 {
		t.Errorf("got remain %v want 4", s.Remain())
	}
}

func TestStartOffsetIntoFirstDash(t *testing.T) {
	s := New([]float64{4, 2}, 1)
	if !s.On() {
		t.Error("expected still on 1 unit into a 4-unit dash")
	}
	if s.Remain() != 3 {
		t.Errorf("got remain %v want 3", s.Remain())
	}
}

func TestStartOffsetIntoGap(t *testing.T) {
	s := New([]float64{4, 2}, 5)
	if s.On() {
		t.Error("expected pen up 1 unit into the 2-unit gap")
	}
	if !almostEqual(s.Remain(), 1) {
		t.Errorf("got remain %v want 1", s.Remain())
	}
}

func TestStartOffsetWrapsPastPattern(t *testing.T) {
	// total period 6; offset 7 wraps to 1, same as offset 1.
	s := New([]float64{4, 2}, 7)
	if !s.On() {
		t.Error("expected on after wrapping offset")
	}
	if !almostEqual(s.Remain(), 3) {
		t.Errorf("got remain %v want 3", s.Remain())
	}
}

func TestOddLengthArrayDoubles(t *testing.T) {
	// [3] doubles to [3, 3]: on for 3, off for 3, repeating.
	s := New([]float64{3}, 4)
	if s.On() {
		t.Error("expected off 1 unit into the off half of the doubled pattern")
	}
	if !almostEqual(s.Remain(), 2) {
		t.Errorf("got remain %v want 2", s.Remain())
	}
}

func TestStepStaysWithinSegment(t *testing.T) {
	s := New([]float64{4, 2}, 0)
	s.Step(2)
	if !s.On() {
		t.Error("expected still on")
	}
	if !almostEqual(s.Remain(), 2) {
		t.Errorf("got remain %v want 2", s.Remain())
	}
}

func TestStepCrossesOneBoundary(t *testing.T) {
	s := New([]float64{4, 2}, 0)
	s.Step(5)
	if s.On() {
		t.Error("expected pen up after crossing into the gap")
	}
	if !almostEqual(s.Remain(), 1) {
		t.Errorf("got remain %v want 1", s.Remain())
	}
}

func TestStepWrapsMultipleBoundaries(t *testing.T) {
	s := New([]float64{4, 2}, 0)
	s.Step(13) // 4 on, 2 off, 4 on, 2 off, 1 into next on => on, remain 3
	if !s.On() {
		t.Error("expected pen down after wrapping two full periods plus one")
	}
	if !almostEqual(s.Remain(), 3) {
		t.Errorf("got remain %v want 3", s.Remain())
	}
}

func TestStartResetsAfterSteps(t *testing.T) {
	s := New([]float64{4, 2}, 0)
	s.Step(5)
	s.Start()
	if !s.On() || !almostEqual(s.Remain(), 4) {
		t.Error("expected Start to reset to the initial offset state")
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
