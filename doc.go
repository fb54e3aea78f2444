// Package plotmark renders plot symbols (chart markers) such as crosses,
// stars, diamonds, and custom outlines at arbitrary points on a 2D surface.
//
// # Overview
//
// A [Symbol] describes a marker: its shape, size, anchor point, stroke, fill,
// and shadow. Symbols are drawn either directly as vector paths or through a
// cached raster image that amortizes path construction and anti-aliased
// stroke/fill cost across thousands of draws — the common case when plotting
// large scatter series.
//
// # Quick Start
//
//	import "github.com/gogpu/plotmark"
//
//	dc := plotmark.NewContext(512, 512)
//
//	sym := plotmark.StarSymbol()
//	sym.SetSize(plotmark.Sz(12, 12))
//	sym.SetLineStyle(plotmark.NewLineStyle(1, plotmark.RGBA{A: 1}))
//	sym.SetFill(plotmark.NewSolidFill(plotmark.RGBA{R: 1, A: 1}))
//
//	for _, p := range points {
//		sym.DrawCached(dc, p, 1, true)
//	}
//
//	dc.SavePNG("scatter.png")
//
// # Caching
//
// Each Symbol holds two derived artifacts: the vector outline and a
// pre-rendered raster image. Geometry mutations (size, type, shadow, custom
// path) discard the outline, which in turn discards the raster; style
// mutations (line style, fill, winding rule) discard only the raster. Both
// are rebuilt lazily on the next read. The raster is always rendered with a
// centered anchor — the symbol's actual anchor is applied at placement time,
// so anchor changes never invalidate anything.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Symbol outlines live in a local space centered at the origin.
//
// # Rendering
//
// The software renderer rasterizes through github.com/srwiley/rasterx.
// A custom [Renderer] can be injected with [WithRenderer].
package plotmark

// Version is the current version of the library.
const Version = "0.1.0"
