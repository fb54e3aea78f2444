package plotmark

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

// opaqueBounds returns the bounding box of pixels with meaningful alpha.
func opaqueBounds(pm *Pixmap) image.Rectangle {
	var r image.Rectangle
	first := true
	data := pm.Data()
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if data[(y*pm.Width()+x)*4+3] < 32 {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if first {
				r = px
				first = false
			} else {
				r = r.Union(px)
			}
		}
	}
	return r
}

// within reports whether got matches want with a per-edge tolerance in
// pixels, absorbing anti-aliasing fringe.
func within(got, want image.Rectangle, tol int) bool {
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	return abs(got.Min.X-want.Min.X) <= tol && abs(got.Min.Y-want.Min.Y) <= tol &&
		abs(got.Max.X-want.Max.X) <= tol && abs(got.Max.Y-want.Max.Y) <= tol
}

func filledRect(size Size) *Symbol {
	s := RectangleSymbol()
	s.SetSize(size)
	s.SetFill(NewSolidFill(Black))
	return s
}

func TestDrawPlacement(t *testing.T) {
	tests := []struct {
		name   string
		anchor Point
		want   image.Rectangle
	}{
		{"centered", Pt(0.5, 0.5), image.Rect(15, 15, 25, 25)},
		{"topLeft", Pt(0, 0), image.Rect(20, 20, 30, 30)},
		{"bottomRight", Pt(1, 1), image.Rect(10, 10, 20, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := filledRect(Sz(10, 10))
			s.SetAnchorPoint(tt.anchor)

			dc := NewContext(40, 40)
			if err := s.Draw(dc, Pt(20, 20), 1); err != nil {
				t.Fatalf("Draw() = %v", err)
			}
			if got := opaqueBounds(dc.Pixmap()); !within(got, tt.want, 1) {
				t.Errorf("filled area = %v, want ~%v", got, tt.want)
			}
		})
	}
}

func TestDrawCachedPlacement(t *testing.T) {
	// Cached drawing must place the symbol where vector drawing would.
	for _, anchor := range []Point{Pt(0.5, 0.5), Pt(0, 0)} {
		s := filledRect(Sz(10, 10))
		s.SetAnchorPoint(anchor)

		vec := NewContext(40, 40)
		if err := s.Draw(vec, Pt(20, 20), 1); err != nil {
			t.Fatalf("Draw() = %v", err)
		}
		cached := NewContext(40, 40)
		if err := s.DrawCached(cached, Pt(20, 20), 1, true); err != nil {
			t.Fatalf("DrawCached() = %v", err)
		}

		got := opaqueBounds(cached.Pixmap())
		want := opaqueBounds(vec.Pixmap())
		if !within(got, want, 1) {
			t.Errorf("anchor %+v: cached area = %v, vector area = %v", anchor, got, want)
		}
	}
}

func TestDrawCachedPixelAlignment(t *testing.T) {
	// With alignment on, a fractional draw point must produce the same
	// pixels as the nearest whole point: (100.3, 50.7) snaps to (100, 51).
	s := filledRect(Sz(10, 10))

	fractional := NewContext(128, 128)
	if err := s.DrawCached(fractional, Pt(100.3, 50.7), 1, true); err != nil {
		t.Fatalf("DrawCached() = %v", err)
	}
	whole := NewContext(128, 128)
	if err := s.DrawCached(whole, Pt(100, 51), 1, true); err != nil {
		t.Fatalf("DrawCached() = %v", err)
	}

	if !bytes.Equal(fractional.Pixmap().Data(), whole.Pixmap().Data()) {
		t.Error("aligned draw at (100.3, 50.7) should match draw at (100, 51)")
	}
}

func TestDrawCachedReusesRaster(t *testing.T) {
	s := filledRect(Sz(10, 10))
	dc := NewContext(40, 40)

	if err := s.DrawCached(dc, Pt(20, 20), 1, true); err != nil {
		t.Fatalf("DrawCached() = %v", err)
	}
	first := s.cachedRaster
	if first == nil {
		t.Fatal("raster not cached after draw")
	}

	if err := s.DrawCached(dc, Pt(10, 10), 1, true); err != nil {
		t.Fatalf("DrawCached() = %v", err)
	}
	if s.cachedRaster != first {
		t.Error("second draw at the same scale should reuse the raster")
	}

	// A different scale forces a rebuild.
	if err := s.DrawCached(dc, Pt(20, 20), 2, true); err != nil {
		t.Fatalf("DrawCached() = %v", err)
	}
	if s.cachedRaster == first {
		t.Error("draw at a new scale should rebuild the raster")
	}
	if s.cachedRaster.scale != 2 {
		t.Errorf("raster scale = %g, want 2", s.cachedRaster.scale)
	}
}

func TestDrawCachedReflectsMutation(t *testing.T) {
	// A cached draw after SetSize must not show the stale raster.
	s := filledRect(Sz(6, 6))
	dc := NewContext(64, 64)
	if err := s.DrawCached(dc, Pt(32, 32), 1, true); err != nil {
		t.Fatalf("DrawCached() = %v", err)
	}

	s.SetSize(Sz(20, 20))
	dc.Clear()
	if err := s.DrawCached(dc, Pt(32, 32), 1, true); err != nil {
		t.Fatalf("DrawCached() = %v", err)
	}

	got := opaqueBounds(dc.Pixmap())
	if got.Dx() < 18 {
		t.Errorf("filled width = %d px, want ~20 after resize", got.Dx())
	}
}

func TestDrawCachedReflectsStyleChange(t *testing.T) {
	s := RectangleSymbol()
	s.SetSize(Sz(10, 10))
	s.SetFill(NewSolidFill(RGBA{R: 1, A: 1}))

	dc := NewContext(40, 40)
	if err := s.DrawCached(dc, Pt(20, 20), 1, true); err != nil {
		t.Fatalf("DrawCached() = %v", err)
	}

	s.SetFill(NewSolidFill(RGBA{B: 1, A: 1}))
	dc.Clear()
	if err := s.DrawCached(dc, Pt(20, 20), 1, true); err != nil {
		t.Fatalf("DrawCached() = %v", err)
	}

	c := dc.Pixmap().GetPixel(20, 20)
	if c.B < 0.9 || c.R > 0.1 {
		t.Errorf("center pixel = %+v, want blue after fill change", c)
	}
}

func TestDrawInvalidScale(t *testing.T) {
	s := filledRect(Sz(10, 10))
	dc := NewContext(40, 40)

	for _, scale := range []float64{0, -1} {
		if err := s.Draw(dc, Pt(20, 20), scale); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("Draw(scale=%g) = %v, want ErrInvalidScale", scale, err)
		}
		if err := s.DrawCached(dc, Pt(20, 20), scale, true); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("DrawCached(scale=%g) = %v, want ErrInvalidScale", scale, err)
		}
	}
}

func TestDrawCachedOversizeFallsBack(t *testing.T) {
	// A symbol too large for the raster cache reports the allocation
	// failure but still draws as vectors.
	s := filledRect(Sz(8000, 8000))
	dc := NewContext(32, 32)

	err := s.DrawCached(dc, Pt(16, 16), 1, true)
	if !errors.Is(err, ErrResourceAllocation) {
		t.Fatalf("DrawCached() = %v, want ErrResourceAllocation", err)
	}
	if s.cachedRaster != nil {
		t.Error("oversize symbol should not populate the raster cache")
	}
	if opaqueBounds(dc.Pixmap()).Empty() {
		t.Error("vector fallback should still have drawn the symbol")
	}
}

func TestDrawNothingToDo(t *testing.T) {
	dc := NewContext(32, 32)

	// No line style and no fill.
	bare := StarSymbol()
	if err := bare.Draw(dc, Pt(16, 16), 1); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	// SymbolNone ignores styling entirely.
	none := NewSymbol(SymbolNone)
	none.SetLineStyle(redStroke())
	none.SetFill(NewSolidFill(Black))
	if err := none.Draw(dc, Pt(16, 16), 1); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	// Open shapes have no interior: a fill alone draws nothing.
	cross := CrossSymbol()
	cross.SetFill(NewSolidFill(Black))
	if err := cross.Draw(dc, Pt(16, 16), 1); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	if !opaqueBounds(dc.Pixmap()).Empty() {
		t.Error("no pixels should have been drawn")
	}
}

func TestDrawStrokeOnlyShapes(t *testing.T) {
	for _, st := range []SymbolType{SymbolCross, SymbolPlus, SymbolDash, SymbolSnow} {
		s := NewSymbol(st)
		s.SetSize(Sz(12, 12))
		s.SetLineStyle(NewLineStyle(2, Black))

		dc := NewContext(32, 32)
		if err := s.Draw(dc, Pt(16, 16), 1); err != nil {
			t.Fatalf("%s: Draw() = %v", st, err)
		}
		if opaqueBounds(dc.Pixmap()).Empty() {
			t.Errorf("%s: stroke drew nothing", st)
		}
	}
}

func TestDrawShadow(t *testing.T) {
	s := filledRect(Sz(10, 10))
	s.SetShadow(&Shadow{Offset: Pt(4, 4), Color: RGBA{R: 1, A: 1}})

	dc := NewContext(48, 48)
	if err := s.Draw(dc, Pt(20, 20), 1); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	// The body covers [15,25); the shadow peeks out at its lower right.
	shadowPx := dc.Pixmap().GetPixel(27, 27)
	if shadowPx.A < 0.5 || shadowPx.R < 0.9 {
		t.Errorf("pixel in shadow region = %+v, want opaque red", shadowPx)
	}
	bodyPx := dc.Pixmap().GetPixel(20, 20)
	if bodyPx.R > 0.1 {
		t.Errorf("body pixel = %+v, want black body over shadow", bodyPx)
	}
}

func TestDrawCachedShadowNotCropped(t *testing.T) {
	// The raster must be padded so an offset shadow survives caching.
	s := filledRect(Sz(10, 10))
	s.SetShadow(&Shadow{Offset: Pt(4, 4), Color: RGBA{R: 1, A: 1}})

	dc := NewContext(48, 48)
	if err := s.DrawCached(dc, Pt(20, 20), 1, true); err != nil {
		t.Fatalf("DrawCached() = %v", err)
	}
	shadowPx := dc.Pixmap().GetPixel(27, 27)
	if shadowPx.A < 0.5 || shadowPx.R < 0.9 {
		t.Errorf("pixel in shadow region = %+v, want opaque red", shadowPx)
	}
}

func TestDrawGradientFollowsBounds(t *testing.T) {
	s := RectangleSymbol()
	s.SetSize(Sz(20, 20))
	s.SetFill(NewLinearGradientFill(
		Pt(0, 0), Pt(0, 1),
		ColorStop{Offset: 0, Color: RGBA{R: 1, A: 1}},
		ColorStop{Offset: 1, Color: RGBA{B: 1, A: 1}},
	))

	dc := NewContext(40, 40)
	if err := s.Draw(dc, Pt(20, 20), 1); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	top := dc.Pixmap().GetPixel(20, 12)
	bottom := dc.Pixmap().GetPixel(20, 28)
	if top.R < 0.7 || top.B > 0.3 {
		t.Errorf("top pixel = %+v, want red end of gradient", top)
	}
	if bottom.B < 0.7 || bottom.R > 0.3 {
		t.Errorf("bottom pixel = %+v, want blue end of gradient", bottom)
	}
}

func TestDrawEvenOddStar(t *testing.T) {
	// Under non-zero winding the pentagram's core is filled; under
	// even-odd it is not.
	draw := func(evenOdd bool) RGBA {
		s := StarSymbol()
		s.SetSize(Sz(30, 30))
		s.SetFill(NewSolidFill(Black))
		s.SetUsesEvenOddClipRule(evenOdd)

		dc := NewContext(40, 40)
		if err := s.Draw(dc, Pt(20, 20), 1); err != nil {
			t.Fatalf("Draw() = %v", err)
		}
		// Sample just above the center, inside the pentagonal core.
		return dc.Pixmap().GetPixel(20, 19)
	}

	if c := draw(false); c.A < 0.9 {
		t.Errorf("non-zero core pixel = %+v, want filled", c)
	}
	if c := draw(true); c.A > 0.1 {
		t.Errorf("even-odd core pixel = %+v, want unfilled", c)
	}
}

func BenchmarkDrawCached(b *testing.B) {
	s := StarSymbol()
	s.SetSize(Sz(12, 12))
	s.SetLineStyle(NewLineStyle(1, Black))
	s.SetFill(NewSolidFill(White))

	dc := NewContext(256, 256)
	if err := s.DrawCached(dc, Pt(128, 128), 1, true); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.DrawCached(dc, Pt(float64(i%200+20), 128), 1, true)
	}
}

func BenchmarkDrawVector(b *testing.B) {
	s := StarSymbol()
	s.SetSize(Sz(12, 12))
	s.SetLineStyle(NewLineStyle(1, Black))
	s.SetFill(NewSolidFill(White))

	dc := NewContext(256, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Draw(dc, Pt(float64(i%200+20), 128), 1)
	}
}
