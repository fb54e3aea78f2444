package plotmark

import (
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// SoftwareRenderer rasterizes paths on the CPU through rasterx.
// It is stateless and safe to share between contexts that are not used
// concurrently.
type SoftwareRenderer struct{}

// NewSoftwareRenderer creates a software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Fill implements Renderer.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, path *Path, rule FillRule, tex Texture) error {
	if path.IsEmpty() {
		return nil
	}

	img := pixmap.RGBA()
	scanner := rasterx.NewScannerGV(pixmap.Width(), pixmap.Height(), img, img.Bounds())
	scanner.SetColor(scanColor(tex))

	filler := rasterx.NewFiller(pixmap.Width(), pixmap.Height(), scanner)
	filler.SetWinding(rule == FillRuleNonZero)
	addPath(filler, path, true)
	filler.Draw()
	return nil
}

// Stroke implements Renderer.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, path *Path, style *LineStyle) error {
	if path.IsEmpty() || style == nil || style.Width <= 0 {
		return nil
	}

	img := pixmap.RGBA()
	scanner := rasterx.NewScannerGV(pixmap.Width(), pixmap.Height(), img, img.Bounds())
	scanner.SetColor(style.Color.Color())

	var dashes []float64
	var dashOffset float64
	if style.Dash != nil {
		dashes = style.Dash.Lengths
		dashOffset = style.Dash.Offset
	}

	dasher := rasterx.NewDasher(pixmap.Width(), pixmap.Height(), scanner)
	dasher.SetStroke(
		toFixed(style.Width), toFixed(style.MiterLimit),
		capFunc(style.Cap), capFunc(style.Cap), rasterx.FlatGap,
		joinMode(style.Join), dashes, dashOffset,
	)
	addPath(dasher, path, false)
	dasher.Draw()
	return nil
}

// rasterAdder is the subset of the rasterx path sink shared by Filler
// and Dasher.
type rasterAdder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

// addPath feeds a path into a rasterx sink. closeOpen controls whether
// subpaths left open are closed implicitly, which is required for fills
// but wrong for strokes.
func addPath(sink rasterAdder, path *Path, closeOpen bool) {
	open := false
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				sink.Stop(closeOpen)
			}
			sink.Start(toFixedPoint(e.Point))
			open = true
		case LineTo:
			sink.Line(toFixedPoint(e.Point))
		case QuadTo:
			sink.QuadBezier(toFixedPoint(e.Control), toFixedPoint(e.Point))
		case CubicTo:
			sink.CubeBezier(toFixedPoint(e.Control1), toFixedPoint(e.Control2), toFixedPoint(e.Point))
		case Close:
			sink.Stop(true)
			open = false
		}
	}
	if open {
		sink.Stop(closeOpen)
	}
}

// scanColor converts a Texture into a rasterx color argument: plain
// colors pass through, anything else becomes a per-pixel color function.
func scanColor(tex Texture) interface{} {
	if solid, ok := tex.(solidTexture); ok {
		return solid.color.Color()
	}
	return rasterx.ColorFunc(func(x, y int) color.Color {
		return tex.ColorAt(float64(x)+0.5, float64(y)+0.5).Color()
	})
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

func toFixedPoint(p Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

func capFunc(c LineCap) rasterx.CapFunc {
	switch c {
	case LineCapRound:
		return rasterx.RoundCap
	case LineCapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func joinMode(j LineJoin) rasterx.JoinMode {
	switch j {
	case LineJoinRound:
		return rasterx.Round
	case LineJoinBevel:
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}
