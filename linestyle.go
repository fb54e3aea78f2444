package plotmark

// LineStyle describes how a path border is stroked: width, cap, join,
// dash pattern, and color. A nil *LineStyle on a Symbol means no border
// is drawn.
type LineStyle struct {
	// Width is the stroke width in logical units.
	Width float64

	// Cap is the shape of line endpoints.
	Cap LineCap

	// Join is the shape of line joins.
	Join LineJoin

	// MiterLimit is the miter cutoff for sharp joins.
	MiterLimit float64

	// Dash is the dash pattern. Nil means a solid line.
	Dash *Dash

	// Color is the stroke color.
	Color RGBA
}

// NewLineStyle creates a solid line style with the given width and color,
// butt caps, miter joins, and the conventional miter limit of 10.
func NewLineStyle(width float64, color RGBA) *LineStyle {
	return &LineStyle{
		Width:      width,
		MiterLimit: 10,
		Color:      color,
	}
}

// StrokePath strokes the path into the context using this style.
func (ls *LineStyle) StrokePath(ctx *Context, path *Path) error {
	return ctx.StrokePath(path, ls)
}

// Clone creates a deep copy of the line style.
// Returns nil when called on a nil style.
func (ls *LineStyle) Clone() *LineStyle {
	if ls == nil {
		return nil
	}
	result := *ls
	result.Dash = ls.Dash.Clone()
	return &result
}

// Equal reports whether two line styles describe the same stroke.
func (ls *LineStyle) Equal(other *LineStyle) bool {
	if ls == nil || other == nil {
		return ls == other
	}
	return ls.Width == other.Width &&
		ls.Cap == other.Cap &&
		ls.Join == other.Join &&
		ls.MiterLimit == other.MiterLimit &&
		ls.Color == other.Color &&
		ls.Dash.Equal(other.Dash)
}
