package plotmark

import "fmt"

// SymbolType identifies the shape of a plot symbol.
type SymbolType int

// Symbol types.
const (
	// SymbolNone draws nothing.
	SymbolNone SymbolType = iota
	// SymbolRectangle is an axis-aligned rectangle.
	SymbolRectangle
	// SymbolEllipse is the ellipse inscribed in the symbol bounds.
	SymbolEllipse
	// SymbolCross is an X: two diagonal segments between opposite corners.
	SymbolCross
	// SymbolPlus is a +: a vertical and a horizontal segment.
	SymbolPlus
	// SymbolStar is a five-pointed star polygon (pentagram interior).
	SymbolStar
	// SymbolDiamond is a quadrilateral through the edge midpoints.
	SymbolDiamond
	// SymbolTriangle is a triangle with its apex on the vertical axis.
	SymbolTriangle
	// SymbolPentagon is a regular pentagon with a vertex on the vertical axis.
	SymbolPentagon
	// SymbolHexagon is a regular hexagon with vertices on the vertical axis.
	SymbolHexagon
	// SymbolDash is a single horizontal segment.
	SymbolDash
	// SymbolSnow is a snowflake: three segments through the center.
	SymbolSnow
	// SymbolCustom uses a caller-supplied outline scaled to the symbol size.
	SymbolCustom
)

var symbolTypeNames = map[SymbolType]string{
	SymbolNone:      "none",
	SymbolRectangle: "rectangle",
	SymbolEllipse:   "ellipse",
	SymbolCross:     "cross",
	SymbolPlus:      "plus",
	SymbolStar:      "star",
	SymbolDiamond:   "diamond",
	SymbolTriangle:  "triangle",
	SymbolPentagon:  "pentagon",
	SymbolHexagon:   "hexagon",
	SymbolDash:      "dash",
	SymbolSnow:      "snow",
	SymbolCustom:    "custom",
}

// String returns the symbol type name.
func (t SymbolType) String() string {
	if name, ok := symbolTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SymbolType(%d)", int(t))
}

// defaultSymbolSize is the size a symbol is created with.
var defaultSymbolSize = Sz(5, 5)

// Symbol describes a plot marker: its shape, size, anchor point, stroke,
// fill, and shadow. A Symbol owns two derived caches — the vector outline
// and a pre-rendered raster image — which are invalidated eagerly on
// mutation and rebuilt lazily on the next draw.
//
// A Symbol is not safe for concurrent use; it is expected to be owned and
// mutated by a single plot series.
type Symbol struct {
	symbolType SymbolType
	size       Size
	anchor     Point
	lineStyle  *LineStyle
	fill       Fill
	shadow     *Shadow
	customPath *Path
	evenOdd    bool

	cachedOutline *Path
	cachedRaster  *rasterImage
}

// rasterImage is the cached pre-rendered symbol, always rendered with a
// centered anchor at a specific scale.
type rasterImage struct {
	pixmap *Pixmap
	scale  float64
}

// NewSymbol creates a symbol of the given type with the default size and
// a centered anchor. No line style or fill is set; configure them before
// drawing or nothing will appear.
func NewSymbol(t SymbolType) *Symbol {
	return &Symbol{
		symbolType: t,
		size:       defaultSymbolSize,
		anchor:     Pt(0.5, 0.5),
	}
}

// Per-type factories.

// RectangleSymbol creates a rectangle symbol.
func RectangleSymbol() *Symbol { return NewSymbol(SymbolRectangle) }

// EllipseSymbol creates an ellipse symbol.
func EllipseSymbol() *Symbol { return NewSymbol(SymbolEllipse) }

// CrossSymbol creates a cross (X) symbol.
func CrossSymbol() *Symbol { return NewSymbol(SymbolCross) }

// PlusSymbol creates a plus (+) symbol.
func PlusSymbol() *Symbol { return NewSymbol(SymbolPlus) }

// StarSymbol creates a five-pointed star symbol.
func StarSymbol() *Symbol { return NewSymbol(SymbolStar) }

// DiamondSymbol creates a diamond symbol.
func DiamondSymbol() *Symbol { return NewSymbol(SymbolDiamond) }

// TriangleSymbol creates a triangle symbol.
func TriangleSymbol() *Symbol { return NewSymbol(SymbolTriangle) }

// PentagonSymbol creates a pentagon symbol.
func PentagonSymbol() *Symbol { return NewSymbol(SymbolPentagon) }

// HexagonSymbol creates a hexagon symbol.
func HexagonSymbol() *Symbol { return NewSymbol(SymbolHexagon) }

// DashSymbol creates a dash (horizontal segment) symbol.
func DashSymbol() *Symbol { return NewSymbol(SymbolDash) }

// SnowSymbol creates a snowflake symbol.
func SnowSymbol() *Symbol { return NewSymbol(SymbolSnow) }

// CustomSymbol creates a symbol from an arbitrary outline. The outline is
// deep-copied and will be scaled to the symbol size and centered when
// drawn. A nil outline yields an empty symbol.
func CustomSymbol(outline *Path) *Symbol {
	s := NewSymbol(SymbolCustom)
	s.customPath = outline.Clone()
	return s
}

// Type returns the symbol type.
func (s *Symbol) Type() SymbolType {
	return s.symbolType
}

// SetType changes the symbol type, invalidating the outline and raster
// caches. Setting the current type is a no-op.
func (s *Symbol) SetType(t SymbolType) {
	if t == s.symbolType {
		return
	}
	s.symbolType = t
	s.invalidateOutline()
}

// Size returns the symbol size in logical units.
func (s *Symbol) Size() Size {
	return s.size
}

// SetSize changes the symbol size, invalidating the outline and raster
// caches. Setting an equal size is a no-op.
func (s *Symbol) SetSize(size Size) {
	if size == s.size {
		return
	}
	s.size = size
	s.invalidateOutline()
}

// AnchorPoint returns the anchor point.
func (s *Symbol) AnchorPoint() Point {
	return s.anchor
}

// SetAnchorPoint sets the fractional offset within the symbol's bounding
// box that is placed at the draw point. (0.5, 0.5) — the default — centers
// the symbol; (0, 0) puts the box's top-left corner at the draw point.
// Values are not clamped to [0, 1].
//
// The anchor is applied at placement time only, so changing it never
// invalidates the caches.
func (s *Symbol) SetAnchorPoint(anchor Point) {
	s.anchor = anchor
}

// LineStyle returns the border line style, or nil if no border is drawn.
func (s *Symbol) LineStyle() *LineStyle {
	return s.lineStyle
}

// SetLineStyle sets the border line style. Pass nil for no border.
// The raster cache is invalidated; the outline is geometry-only and kept.
func (s *Symbol) SetLineStyle(ls *LineStyle) {
	if s.lineStyle.Equal(ls) {
		return
	}
	s.lineStyle = ls.Clone()
	s.InvalidateRaster()
}

// Fill returns the interior fill, or nil if the symbol is not filled.
func (s *Symbol) Fill() Fill {
	return s.fill
}

// SetFill sets the interior fill. Pass nil for no fill.
// The raster cache is invalidated; the outline is geometry-only and kept.
func (s *Symbol) SetFill(f Fill) {
	if fillsEqual(s.fill, f) {
		return
	}
	if f == nil {
		s.fill = nil
	} else {
		s.fill = f.Clone()
	}
	s.InvalidateRaster()
}

// Shadow returns the drop shadow, or nil if no shadow is cast.
func (s *Symbol) Shadow() *Shadow {
	return s.shadow
}

// SetShadow sets the drop shadow. Pass nil for no shadow.
// Invalidates the outline and raster caches: the shadow participates in
// the cached raster's layer sizing.
func (s *Symbol) SetShadow(sh *Shadow) {
	if s.shadow.Equal(sh) {
		return
	}
	s.shadow = sh.Clone()
	s.invalidateOutline()
}

// CustomPath returns a copy of the custom outline, or nil if none is set.
func (s *Symbol) CustomPath() *Path {
	return s.customPath.Clone()
}

// SetCustomPath sets the outline used by SymbolCustom. The path is
// deep-copied. Invalidates the outline and raster caches.
func (s *Symbol) SetCustomPath(p *Path) {
	if s.customPath.Equal(p) {
		return
	}
	s.customPath = p.Clone()
	s.invalidateOutline()
}

// UsesEvenOddClipRule returns whether fills and clips use the even-odd
// winding rule instead of non-zero.
func (s *Symbol) UsesEvenOddClipRule() bool {
	return s.evenOdd
}

// SetUsesEvenOddClipRule selects the fill/clip winding rule. For
// self-intersecting shapes such as the star this changes which interior
// regions are filled. The raster cache is invalidated.
func (s *Symbol) SetUsesEvenOddClipRule(evenOdd bool) {
	if evenOdd == s.evenOdd {
		return
	}
	s.evenOdd = evenOdd
	s.InvalidateRaster()
}

// fillRule returns the winding rule selected by UsesEvenOddClipRule.
func (s *Symbol) fillRule() FillRule {
	if s.evenOdd {
		return FillRuleEvenOdd
	}
	return FillRuleNonZero
}

// Outline returns the symbol's vector outline in local coordinates
// centered at the origin, building and caching it if needed. The returned
// path is owned by the symbol; callers must not mutate it.
func (s *Symbol) Outline() *Path {
	if s.cachedOutline == nil {
		Logger().Debug("plotmark: rebuilding outline",
			"type", s.symbolType.String(),
			"width", s.size.Width, "height", s.size.Height)
		s.cachedOutline = buildOutline(s.symbolType, s.size, s.customPath)
	}
	return s.cachedOutline
}

// invalidateOutline discards the cached outline. Raster invalidation
// cascades: a raster rendered from a stale outline is never kept.
func (s *Symbol) invalidateOutline() {
	s.cachedOutline = nil
	s.InvalidateRaster()
}

// InvalidateRaster discards the cached raster image. The next cached draw
// re-renders it. Called automatically by every setter that affects the
// symbol's appearance; exposed for consumers that mutate shared style
// objects in place.
func (s *Symbol) InvalidateRaster() {
	s.cachedRaster = nil
}

// Clone creates an independent copy of the symbol. Styles, fill, shadow,
// and the custom path are deep-copied; the caches are not copied and will
// be rebuilt lazily by the clone.
func (s *Symbol) Clone() *Symbol {
	return &Symbol{
		symbolType: s.symbolType,
		size:       s.size,
		anchor:     s.anchor,
		lineStyle:  s.lineStyle.Clone(),
		fill:       cloneFill(s.fill),
		shadow:     s.shadow.Clone(),
		customPath: s.customPath.Clone(),
		evenOdd:    s.evenOdd,
	}
}

// Equal reports whether two symbols describe the same marker, ignoring
// cache state.
func (s *Symbol) Equal(other *Symbol) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.symbolType == other.symbolType &&
		s.size == other.size &&
		s.anchor == other.anchor &&
		s.evenOdd == other.evenOdd &&
		s.lineStyle.Equal(other.lineStyle) &&
		fillsEqual(s.fill, other.fill) &&
		s.shadow.Equal(other.shadow) &&
		s.customPath.Equal(other.customPath)
}

// String returns a short description for diagnostics.
func (s *Symbol) String() string {
	return fmt.Sprintf("Symbol(%s %gx%g)", s.symbolType, s.size.Width, s.size.Height)
}

func cloneFill(f Fill) Fill {
	if f == nil {
		return nil
	}
	return f.Clone()
}
