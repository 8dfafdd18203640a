package pathtess

import "math"

// Dash is a dash pattern for stroking: alternating dash and gap
// lengths in user-space units, plus a starting offset into the cycle.
// An odd-length Array is logically duplicated ([5] behaves as [5, 5])
// when the pattern is walked, matching stroke.go's comac-derived
// convention.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash builds a Dash from alternating dash/gap lengths, taking the
// absolute value of any negative length. Returns nil if no lengths are
// given or every length is zero, the canonical "not dashed" form.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	allZero := true
	for _, l := range lengths {
		if l != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}
	return &Dash{Array: normalized}
}

// WithOffset returns a copy of d with Offset set.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// IsDashed reports whether d represents an actual dash pattern rather
// than a solid line: non-nil with at least one positive length.
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of d.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)
	return &Dash{Array: arrayCopy, Offset: d.Offset}
}

// effectiveArray returns Array, duplicated to even length if Array has
// an odd number of entries.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}
