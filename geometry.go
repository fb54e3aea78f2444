package plotmark

// Vertex constants for the regular pentagon and the five-pointed star,
// both oriented with a vertex pointing up. Values are sines and cosines
// of multiples of 36 degrees, precomputed so every build of the same
// shape is bit-identical.
const (
	sin36 = 0.58778525229
	cos36 = 0.80901699437
	sin72 = 0.95105651630
	cos72 = 0.30901699437

	// Inner vertices of the pentagram, as fractions of the half extents.
	starInnerX36 = 0.22451398829
	starInnerX72 = 0.36327126400
	starInnerY36 = 0.11803398875
	starInnerY0  = 0.38196601125

	// sqrt(3)/2: horizontal half extent of the hexagon and triangle.
	root3Half = 0.86602540378
)

// buildOutline constructs the vector outline for a symbol in local
// coordinates: centered at the origin, y growing downward, fitting the
// rectangle [-w/2, -h/2, w/2, h/2]. Shapes with a distinguished vertex
// (triangle, pentagon, star) point up, toward negative y.
//
// A zero-area size or a missing custom path yields an empty outline.
func buildOutline(t SymbolType, size Size, custom *Path) *Path {
	p := NewPath()
	if size.IsEmpty() && t != SymbolCustom {
		return p
	}
	hw := size.Width / 2
	hh := size.Height / 2

	switch t {
	case SymbolRectangle:
		p.Rectangle(-hw, -hh, size.Width, size.Height)

	case SymbolEllipse:
		p.EllipseInRect(R(-hw, -hh, size.Width, size.Height))

	case SymbolCross:
		p.MoveTo(-hw, -hh)
		p.LineTo(hw, hh)
		p.MoveTo(hw, -hh)
		p.LineTo(-hw, hh)

	case SymbolPlus:
		p.MoveTo(0, -hh)
		p.LineTo(0, hh)
		p.MoveTo(-hw, 0)
		p.LineTo(hw, 0)

	case SymbolDash:
		p.MoveTo(-hw, 0)
		p.LineTo(hw, 0)

	case SymbolSnow:
		p.MoveTo(0, -hh)
		p.LineTo(0, hh)
		p.MoveTo(hw*root3Half, -hh/2)
		p.LineTo(-hw*root3Half, hh/2)
		p.MoveTo(-hw*root3Half, -hh/2)
		p.LineTo(hw*root3Half, hh/2)

	case SymbolDiamond:
		p.MoveTo(0, -hh)
		p.LineTo(hw, 0)
		p.LineTo(0, hh)
		p.LineTo(-hw, 0)
		p.Close()

	case SymbolTriangle:
		p.MoveTo(0, -hh)
		p.LineTo(hw*root3Half, hh/2)
		p.LineTo(-hw*root3Half, hh/2)
		p.Close()

	case SymbolPentagon:
		p.MoveTo(0, -hh)
		p.LineTo(hw*sin72, -hh*cos72)
		p.LineTo(hw*sin36, hh*cos36)
		p.LineTo(-hw*sin36, hh*cos36)
		p.LineTo(-hw*sin72, -hh*cos72)
		p.Close()

	case SymbolHexagon:
		p.MoveTo(0, -hh)
		p.LineTo(hw*root3Half, -hh/2)
		p.LineTo(hw*root3Half, hh/2)
		p.LineTo(0, hh)
		p.LineTo(-hw*root3Half, hh/2)
		p.LineTo(-hw*root3Half, -hh/2)
		p.Close()

	case SymbolStar:
		// Outer and inner vertices alternate, starting at the top point.
		p.MoveTo(0, -hh)
		p.LineTo(hw*starInnerX36, -hh*cos72)
		p.LineTo(hw*sin72, -hh*cos72)
		p.LineTo(hw*starInnerX72, hh*starInnerY36)
		p.LineTo(hw*sin36, hh*cos36)
		p.LineTo(0, hh*starInnerY0)
		p.LineTo(-hw*sin36, hh*cos36)
		p.LineTo(-hw*starInnerX72, hh*starInnerY36)
		p.LineTo(-hw*sin72, -hh*cos72)
		p.LineTo(-hw*starInnerX36, -hh*cos72)
		p.Close()

	case SymbolCustom:
		return fitCustomPath(custom, size)
	}
	return p
}

// fitCustomPath scales the caller-supplied path to the symbol size and
// recenters it at the origin. The path's own bounding box defines its
// extent; a degenerate axis (zero width or height) is translated but not
// scaled.
func fitCustomPath(custom *Path, size Size) *Path {
	if custom == nil || custom.IsEmpty() {
		return NewPath()
	}
	bounds := custom.Bounds()

	sx, sy := 1.0, 1.0
	if bounds.W > 0 {
		sx = size.Width / bounds.W
	}
	if bounds.H > 0 {
		sy = size.Height / bounds.H
	}

	center := bounds.Center()
	m := ScaleMatrix(sx, sy).Multiply(Translate(-center.X, -center.Y))
	return custom.Transform(m)
}
