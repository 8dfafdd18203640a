package pathtess

// LineCap selects how an open subpath's endpoints are finished.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin selects how two stroked segments meet at a vertex.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// FillRule selects how a path's winding decides inside vs outside.
type FillRule int

const (
	FillRuleWinding FillRule = iota
	FillRuleEvenOdd
)

// Antialias selects the rasterizer's edge-coverage behavior.
// AntialiasNone is the only value that changes the tessellation path
// taken internally: it enables the rectilinear box fast paths.
type Antialias int

const (
	AntialiasDefault Antialias = iota
	AntialiasNone
	AntialiasGray
	AntialiasSubpixel
)

// Style defines the style used for both filling and stroking paths.
// It encapsulates all stroke-related properties in a single struct,
// following the tiny-skia/kurbo pattern for unified stroke configuration,
// plus the fill-side knobs (Tolerance, Antialias, FillRule) Fill needs.
type Style struct {
	// Width is the line width in user-space units. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 4.0 (common default, matches SVG)
	MiterLimit float64

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash *Dash

	// Tolerance bounds how far a flattened curve may deviate from the
	// true Bezier, in user-space units. Default: 0.1
	Tolerance float64

	// Antialias selects the edge-coverage behavior used during
	// tessellation. Default: AntialiasDefault
	Antialias Antialias

	// FillRule selects the inside/outside test for Fill. Unused by
	// Stroke, which always fills its expanded outline by nonzero
	// winding. Default: FillRuleWinding
	FillRule FillRule
}

// DefaultStyle returns a Style with default settings.
// This creates a solid 1-unit-wide line with butt caps, miter joins,
// and nonzero-winding fill.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
		Dash:       nil,
		Tolerance:  0.1,
		Antialias:  AntialiasDefault,
		FillRule:   FillRuleWinding,
	}
}

// WithWidth returns a copy of the Style with the given width.
func (s Style) WithWidth(w float64) Style {
	s.Width = w
	return s
}

// WithCap returns a copy of the Style with the given line cap style.
func (s Style) WithCap(lineCap LineCap) Style {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Style with the given line join style.
func (s Style) WithJoin(join LineJoin) Style {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Style with the given miter limit.
// The miter limit controls when miter joins are converted to bevel joins.
// A value of 1.0 effectively disables miter joins.
func (s Style) WithMiterLimit(limit float64) Style {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the Style with the given dash pattern.
// Pass nil to remove dashing and return to solid lines.
func (s Style) WithDash(dash *Dash) Style {
	if dash == nil {
		s.Dash = nil
	} else {
		s.Dash = dash.Clone()
	}
	return s
}

// WithDashPattern returns a copy of the Style with a dash pattern
// created from the given lengths.
//
// Example:
//
//	style.WithDashPattern(5, 3) // 5 units dash, 3 units gap
func (s Style) WithDashPattern(lengths ...float64) Style {
	s.Dash = NewDash(lengths...)
	return s
}

// WithDashOffset returns a copy of the Style with the dash offset set.
// If there is no dash pattern, this has no effect.
func (s Style) WithDashOffset(offset float64) Style {
	if s.Dash != nil {
		s.Dash = s.Dash.WithOffset(offset)
	}
	return s
}

// WithTolerance returns a copy of the Style with the given flattening
// tolerance.
func (s Style) WithTolerance(tolerance float64) Style {
	s.Tolerance = tolerance
	return s
}

// WithAntialias returns a copy of the Style with the given antialias mode.
func (s Style) WithAntialias(aa Antialias) Style {
	s.Antialias = aa
	return s
}

// WithFillRule returns a copy of the Style with the given fill rule.
func (s Style) WithFillRule(rule FillRule) Style {
	s.FillRule = rule
	return s
}

// IsDashed returns true if this style has a dash pattern.
func (s Style) IsDashed() bool {
	return s.Dash != nil && s.Dash.IsDashed()
}

// Clone creates a deep copy of the Style.
func (s Style) Clone() Style {
	result := s
	if s.Dash != nil {
		result.Dash = s.Dash.Clone()
	}
	return result
}

// Thin returns a thin stroke style (0.5 units).
func Thin() Style {
	return DefaultStyle().WithWidth(0.5)
}

// Thick returns a thick stroke style (3 units).
func Thick() Style {
	return DefaultStyle().WithWidth(3.0)
}

// Bold returns a bold stroke style (5 units).
func Bold() Style {
	return DefaultStyle().WithWidth(5.0)
}

// RoundStroke returns a style with round caps and joins.
func RoundStroke() Style {
	return DefaultStyle().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

// SquareStroke returns a style with square caps.
func SquareStroke() Style {
	return DefaultStyle().WithCap(LineCapSquare)
}

// DashedStroke returns a dashed style with the given pattern.
func DashedStroke(lengths ...float64) Style {
	return DefaultStyle().WithDashPattern(lengths...)
}

// DottedStroke returns a dotted style.
// Uses round caps with a 0.1-unit dash and a 4-unit gap (2-unit width).
func DottedStroke() Style {
	return Style{
		Width:      2.0,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: 4.0,
		Dash:       NewDash(0.1, 4),
		Tolerance:  0.1,
	}
}
