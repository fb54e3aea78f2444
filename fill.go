package plotmark

import "math"

// Texture supplies a color for each device pixel. It is consumed by the
// renderer when filling or stroking.
type Texture interface {
	// ColorAt returns the color at the given device coordinates.
	ColorAt(x, y float64) RGBA
}

// solidTexture is a Texture with a single color everywhere.
type solidTexture struct {
	color RGBA
}

func (t solidTexture) ColorAt(_, _ float64) RGBA { return t.color }

// textureFunc adapts a function to the Texture interface.
type textureFunc func(x, y float64) RGBA

func (f textureFunc) ColorAt(x, y float64) RGBA { return f(x, y) }

// Fill is the capability of painting the interior of a region.
//
// Fills operate on rectangles rather than paths: a symbol's interior is
// painted by clipping the context to the outline and filling the outline's
// bounding rectangle. This keeps gradient fills positioned relative to the
// symbol's bounding box instead of being stretched to the path's own shape.
type Fill interface {
	// FillRect fills the rectangle in the context's current user space,
	// honoring the current clip.
	FillRect(ctx *Context, rect Rect) error

	// Clone creates a deep copy of the fill.
	Clone() Fill

	// Equal reports whether the fill is identical to another.
	Equal(other Fill) bool
}

// SolidFill fills with a single color.
type SolidFill struct {
	Color RGBA
}

// NewSolidFill creates a solid color fill.
func NewSolidFill(c RGBA) *SolidFill {
	return &SolidFill{Color: c}
}

// FillRect implements Fill.
func (f *SolidFill) FillRect(ctx *Context, rect Rect) error {
	return ctx.FillRect(rect, solidTexture{color: f.Color})
}

// Clone implements Fill.
func (f *SolidFill) Clone() Fill {
	clone := *f
	return &clone
}

// Equal implements Fill.
func (f *SolidFill) Equal(other Fill) bool {
	o, ok := other.(*SolidFill)
	return ok && f.Color == o.Color
}

// ColorStop is a gradient stop at a normalized offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// LinearGradientFill fills with a linear gradient. Start and End are
// expressed as fractional positions within the filled rectangle, so the
// gradient follows the symbol's bounding box regardless of its size.
type LinearGradientFill struct {
	// Start is the gradient start, fractional within the rect.
	Start Point

	// End is the gradient end, fractional within the rect.
	End Point

	// Stops are the color stops, sorted by offset.
	Stops []ColorStop
}

// NewLinearGradientFill creates a gradient fill between two fractional
// positions within the filled rectangle.
func NewLinearGradientFill(start, end Point, stops ...ColorStop) *LinearGradientFill {
	g := &LinearGradientFill{Start: start, End: end}
	g.Stops = append(g.Stops, stops...)
	return g
}

// FillRect implements Fill.
func (g *LinearGradientFill) FillRect(ctx *Context, rect Rect) error {
	// Resolve the gradient axis in device space so ColorAt can work on
	// raw device pixels.
	m := ctx.CurrentTransform()
	p0 := m.TransformPoint(Pt(rect.X+g.Start.X*rect.W, rect.Y+g.Start.Y*rect.H))
	p1 := m.TransformPoint(Pt(rect.X+g.End.X*rect.W, rect.Y+g.End.Y*rect.H))

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	lenSq := dx*dx + dy*dy

	tex := textureFunc(func(x, y float64) RGBA {
		if lenSq == 0 {
			return g.colorAt(0)
		}
		t := ((x-p0.X)*dx + (y-p0.Y)*dy) / lenSq
		return g.colorAt(t)
	})
	return ctx.FillRect(rect, tex)
}

// colorAt interpolates the gradient color at offset t, clamping outside [0,1].
func (g *LinearGradientFill) colorAt(t float64) RGBA {
	if len(g.Stops) == 0 {
		return Transparent
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		s0, s1 := g.Stops[i-1], g.Stops[i]
		if t <= s1.Offset {
			span := s1.Offset - s0.Offset
			if span <= 0 {
				return s1.Color
			}
			return lerpColor(s0.Color, s1.Color, (t-s0.Offset)/span)
		}
	}
	return last.Color
}

// Clone implements Fill.
func (g *LinearGradientFill) Clone() Fill {
	clone := &LinearGradientFill{Start: g.Start, End: g.End}
	clone.Stops = append(clone.Stops, g.Stops...)
	return clone
}

// Equal implements Fill.
func (g *LinearGradientFill) Equal(other Fill) bool {
	o, ok := other.(*LinearGradientFill)
	if !ok || g.Start != o.Start || g.End != o.End || len(g.Stops) != len(o.Stops) {
		return false
	}
	for i, s := range g.Stops {
		if s != o.Stops[i] {
			return false
		}
	}
	return true
}

// fillsEqual compares two possibly-nil fills.
func fillsEqual(a, b Fill) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func lerpColor(c1, c2 RGBA, t float64) RGBA {
	t = math.Max(0, math.Min(1, t))
	return RGBA{
		R: c1.R + (c2.R-c1.R)*t,
		G: c1.G + (c2.G-c1.G)*t,
		B: c1.B + (c2.B-c1.B)*t,
		A: c1.A + (c2.A-c1.A)*t,
	}
}
