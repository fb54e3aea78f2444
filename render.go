package plotmark

import (
	"fmt"
	"math"
)

const (
	// rasterMargin is the extra padding, in device pixels, added around
	// the cached raster so anti-aliased edges are never clipped.
	rasterMargin = 2

	// maxRasterDim caps the cached raster's dimensions. Symbols larger
	// than this fall back to vector drawing.
	maxRasterDim = 4096
)

// supportsFill reports whether a symbol type has an interior that can be
// filled. Open shapes made of bare segments cannot.
func supportsFill(t SymbolType) bool {
	switch t {
	case SymbolRectangle, SymbolEllipse, SymbolDiamond, SymbolTriangle,
		SymbolStar, SymbolPentagon, SymbolHexagon, SymbolCustom:
		return true
	}
	return false
}

// supportsStroke reports whether a symbol type has an outline that can be
// stroked. Only SymbolNone has none.
func supportsStroke(t SymbolType) bool {
	return t != SymbolNone
}

// Draw renders the symbol as vector geometry with the draw point placed
// at the symbol's anchor. scale is the rasterization density in device
// pixels per logical unit and must be positive; pass 1 when the context
// maps logical units directly to pixels.
//
// The fill and stroke are drawn inside a single transparency layer, so a
// shadow is cast once by their combined silhouette. The interior is
// painted by clipping to the outline and filling its bounding rectangle,
// which keeps gradient fills aligned with the symbol's bounding box.
//
// A symbol with no applicable line style and no applicable fill draws
// nothing and returns nil.
func (s *Symbol) Draw(ctx *Context, center Point, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidScale, scale)
	}
	doStroke := s.lineStyle != nil && supportsStroke(s.symbolType)
	doFill := s.fill != nil && supportsFill(s.symbolType)
	if !doStroke && !doFill {
		return nil
	}
	outline := s.Outline()
	if outline.IsEmpty() {
		return nil
	}

	ctx.Push()
	defer ctx.Pop()

	// The translation places the anchor at the draw point; the anchor
	// displacement is in placement units and is not scaled.
	ctx.Translate(
		center.X+s.size.Width*(0.5-s.anchor.X),
		center.Y+s.size.Height*(0.5-s.anchor.Y),
	)
	ctx.Scale(scale, scale)

	if s.shadow != nil {
		s.shadow.ApplyTo(ctx)
	}
	ctx.BeginTransparencyLayer()
	defer ctx.EndTransparencyLayer()

	if doFill {
		ctx.Push()
		err := ctx.ClipPath(outline, s.fillRule())
		if err == nil {
			err = s.fill.FillRect(ctx, outline.Bounds())
		}
		ctx.Pop()
		if err != nil {
			return err
		}
	}

	if doStroke {
		if err := s.lineStyle.StrokePath(ctx, outline); err != nil {
			return err
		}
	}
	return nil
}

// DrawCached renders the symbol from its cached raster image, rebuilding
// the raster first if it is missing or was rendered at a different scale.
// Plots drawing the same symbol at thousands of data points pay the
// vector rendering cost once.
//
// When alignToPixels is true the raster's placement is snapped to whole
// device pixels (whole units of 1/scale when scale is not 1), so every
// copy of the symbol lands on the pixel grid identically.
//
// If the raster cannot be built — for example the symbol's padded size
// exceeds the maximum raster dimension — the symbol is drawn as vectors
// instead and the build error is returned.
func (s *Symbol) DrawCached(ctx *Context, center Point, scale float64, alignToPixels bool) error {
	if scale <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidScale, scale)
	}
	if s.symbolType == SymbolNone {
		return nil
	}

	raster := s.cachedRaster
	if raster == nil || raster.scale != scale {
		built, err := s.renderRaster(scale)
		if err != nil {
			Logger().Warn("plotmark: raster cache unavailable, drawing vector",
				"symbol", s.String(), "error", err)
			if derr := s.Draw(ctx, center, scale); derr != nil {
				return derr
			}
			return err
		}
		raster = built
		s.cachedRaster = built
	}

	logicalW := float64(raster.pixmap.Width()) / scale
	logicalH := float64(raster.pixmap.Height()) / scale

	origin := Pt(
		center.X-logicalW/2+s.size.Width*(0.5-s.anchor.X),
		center.Y-logicalH/2+s.size.Height*(0.5-s.anchor.Y),
	)
	if alignToPixels {
		if scale == 1 {
			origin = Pt(math.Round(origin.X), math.Round(origin.Y))
		} else {
			origin = Pt(
				math.Round(origin.X*scale)/scale,
				math.Round(origin.Y*scale)/scale,
			)
		}
	}

	ctx.DrawPixmap(raster.pixmap, R(origin.X, origin.Y, logicalW, logicalH))
	return nil
}

// renderRaster renders the symbol into an offscreen pixmap at the given
// scale. The raster is padded for the stroke width and the shadow's
// offset and blur so nothing the symbol draws is cropped.
func (s *Symbol) renderRaster(scale float64) (*rasterImage, error) {
	shadowX, shadowY := s.shadow.margin()
	var lineWidth float64
	if s.lineStyle != nil {
		lineWidth = s.lineStyle.Width
	}
	logicalW := s.size.Width + 2*shadowX + lineWidth
	logicalH := s.size.Height + 2*shadowY + lineWidth

	pxW := int(math.Ceil(logicalW*scale)) + rasterMargin
	pxH := int(math.Ceil(logicalH*scale)) + rasterMargin
	if pxW > maxRasterDim || pxH > maxRasterDim {
		return nil, fmt.Errorf("%w: %dx%d raster exceeds %d px",
			ErrResourceAllocation, pxW, pxH, maxRasterDim)
	}

	Logger().Debug("plotmark: rendering symbol raster",
		"symbol", s.String(), "scale", scale, "width", pxW, "height", pxH)

	offscreen := NewContext(pxW, pxH)

	// The raster is always rendered centered; the anchor is applied when
	// the raster is placed, so anchor changes never invalidate it.
	savedAnchor := s.anchor
	s.anchor = Pt(0.5, 0.5)
	err := s.Draw(offscreen, Pt(float64(pxW)/2, float64(pxH)/2), scale)
	s.anchor = savedAnchor
	if err != nil {
		return nil, err
	}

	return &rasterImage{pixmap: offscreen.Pixmap(), scale: scale}, nil
}
