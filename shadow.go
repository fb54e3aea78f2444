package plotmark

// Shadow describes a drop shadow: an offset, a blur radius, and a color.
// A nil *Shadow on a Symbol means no shadow is drawn.
//
// Shadows take effect when a transparency layer is composited, so the
// shadow of a symbol is cast once by the combined fill and stroke rather
// than separately by each.
type Shadow struct {
	// Offset is the shadow displacement in logical units.
	Offset Point

	// BlurRadius is the Gaussian blur radius in logical units.
	BlurRadius float64

	// Color is the shadow color.
	Color RGBA
}

// NewShadow creates a shadow with the given offset and blur, in black at
// half opacity.
func NewShadow(offsetX, offsetY, blurRadius float64) *Shadow {
	return &Shadow{
		Offset:     Pt(offsetX, offsetY),
		BlurRadius: blurRadius,
		Color:      RGBA{A: 0.5},
	}
}

// ApplyTo sets the shadow state on the context. The shadow is cast when
// the next transparency layer is composited.
func (s *Shadow) ApplyTo(ctx *Context) {
	ctx.SetShadow(s)
}

// Clone creates a deep copy of the shadow.
// Returns nil when called on a nil shadow.
func (s *Shadow) Clone() *Shadow {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

// Equal reports whether two shadows are identical.
func (s *Shadow) Equal(other *Shadow) bool {
	if s == nil || other == nil {
		return s == other
	}
	return *s == *other
}

// margin returns the per-axis inflation a shadow adds to a drawing:
// absolute offset plus blur radius.
func (s *Shadow) margin() (x, y float64) {
	if s == nil {
		return 0, 0
	}
	x = abs(s.Offset.X) + s.BlurRadius
	y = abs(s.Offset.Y) + s.BlurRadius
	return x, y
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
