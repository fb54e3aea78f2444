package plotmark

import (
	"image"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Context is a drawing surface for plot symbols.
// It maintains a pixmap target, a transformation stack, a clip mask,
// shadow state, and a stack of transparency layers.
type Context struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer

	matrix Matrix
	clip   []uint8 // per-pixel clip coverage, nil when unclipped
	shadow *Shadow

	stack []contextState

	layers     []*layer
	basePixmap *Pixmap
}

// contextState is the state saved by Push and restored by Pop.
type contextState struct {
	matrix Matrix
	clip   []uint8
	shadow *Shadow
}

// NewContext creates a new drawing context with the given dimensions.
// Optional ContextOption arguments can be used for dependency injection:
//
//	// Default software rendering through rasterx
//	dc := plotmark.NewContext(800, 600)
//
//	// Custom renderer (dependency injection)
//	dc := plotmark.NewContext(800, 600, plotmark.WithRenderer(r))
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer()
	}

	return &Context{
		width:    width,
		height:   height,
		pixmap:   pixmap,
		renderer: renderer,
		matrix:   Identity(),
		stack:    make([]contextState, 0, 8),
	}
}

// Width returns the width of the context in pixels.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context in pixels.
func (c *Context) Height() int {
	return c.height
}

// Pixmap returns the current drawing target.
// While a transparency layer is open this is the layer's pixmap.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns the context's image.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// SavePNG saves the context to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// EncodePNG writes the image as PNG to the given writer.
func (c *Context) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// Clear makes the entire context transparent.
func (c *Context) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills the entire context with a specific color.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// Push saves the current state (transform, clip, and shadow).
func (c *Context) Push() {
	c.stack = append(c.stack, contextState{
		matrix: c.matrix,
		clip:   c.clip, // clip masks are immutable once set; sharing is safe
		shadow: c.shadow,
	})
}

// Pop restores the last saved state.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	state := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix = state.matrix
	c.clip = state.clip
	c.shadow = state.shadow
}

// Translate applies a translation to the transformation matrix.
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Context) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(ScaleMatrix(x, y))
}

// CurrentTransform returns a copy of the current transformation matrix.
func (c *Context) CurrentTransform() Matrix {
	return c.matrix
}

// SetShadow sets the shadow state. The shadow is cast when the next
// transparency layer is composited. Pass nil to disable.
func (c *Context) SetShadow(s *Shadow) {
	c.shadow = s.Clone()
}

// FillPath fills a path (in user space) with the texture, honoring the
// current transform, clip, and fill rule.
func (c *Context) FillPath(path *Path, rule FillRule, tex Texture) error {
	device := path.Transform(c.matrix)
	return c.render(func(target *Pixmap) error {
		return c.renderer.Fill(target, device, rule, tex)
	})
}

// FillRect fills an axis-aligned rectangle (in user space) with the
// texture, honoring the current transform and clip.
func (c *Context) FillRect(rect Rect, tex Texture) error {
	path := NewPath()
	path.Rectangle(rect.X, rect.Y, rect.W, rect.H)
	return c.FillPath(path, FillRuleNonZero, tex)
}

// StrokePath strokes a path (in user space) with the line style, honoring
// the current transform and clip. The style's width and dash pattern are
// in user units and are scaled along with the path.
func (c *Context) StrokePath(path *Path, style *LineStyle) error {
	if style == nil {
		return nil
	}
	device := path.Transform(c.matrix)

	effective := style
	if sf := c.matrix.ScaleFactor(); sf != 1 {
		effective = style.Clone()
		effective.Width *= sf
		if effective.Dash != nil {
			for i := range effective.Dash.Lengths {
				effective.Dash.Lengths[i] *= sf
			}
			effective.Dash.Offset *= sf
		}
	}

	return c.render(func(target *Pixmap) error {
		return c.renderer.Stroke(target, device, effective)
	})
}

// DrawPixmap composites a pixmap into the given rectangle in user space.
// The destination rectangle is transformed by the current matrix and
// rounded to whole device pixels; the source is scaled to fit it.
func (c *Context) DrawPixmap(pm *Pixmap, rect Rect) {
	p0 := c.matrix.TransformPoint(Pt(rect.X, rect.Y))
	p1 := c.matrix.TransformPoint(Pt(rect.MaxX(), rect.MaxY()))

	dstRect := image.Rect(
		int(math.Round(math.Min(p0.X, p1.X))),
		int(math.Round(math.Min(p0.Y, p1.Y))),
		int(math.Round(math.Max(p0.X, p1.X))),
		int(math.Round(math.Max(p0.Y, p1.Y))),
	)
	if dstRect.Empty() {
		return
	}

	src := pm.RGBA()
	blit := func(target *Pixmap) error {
		dst := target.RGBA()
		if dstRect.Dx() == pm.Width() && dstRect.Dy() == pm.Height() {
			xdraw.Draw(dst, dstRect, src, image.Point{}, xdraw.Over)
		} else {
			xdraw.CatmullRom.Scale(dst, dstRect, src, src.Bounds(), xdraw.Over, nil)
		}
		return nil
	}
	_ = c.render(blit)
}

// render runs a raster operation against the current target, routing
// through a scratch pixmap when a clip mask is active.
func (c *Context) render(op func(target *Pixmap) error) error {
	if c.clip == nil {
		return op(c.pixmap)
	}
	scratch := NewPixmap(c.width, c.height)
	if err := op(scratch); err != nil {
		return err
	}
	c.pixmap.CompositeOver(scratch, c.clip)
	return nil
}
