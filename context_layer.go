package plotmark

import (
	"math"

	"github.com/gogpu/plotmark/internal/filter"
)

// layer is a transparency layer: an isolated pixmap composited onto its
// parent when the layer ends, together with the shadow state captured
// when the layer began.
type layer struct {
	pixmap *Pixmap
	parent *Pixmap
	shadow *Shadow
	scale  float64 // device scale captured at begin, for shadow geometry
}

// BeginTransparencyLayer redirects drawing into an isolated layer.
// When the matching EndTransparencyLayer is called, the layer content is
// composited onto the previous target in a single operation. If a shadow
// is set, it is cast once by the combined layer content rather than by
// each drawing operation individually.
func (c *Context) BeginTransparencyLayer() {
	lp := NewPixmap(c.width, c.height)

	if len(c.layers) == 0 && c.basePixmap == nil {
		c.basePixmap = c.pixmap
	}

	c.layers = append(c.layers, &layer{
		pixmap: lp,
		parent: c.pixmap,
		shadow: c.shadow,
		scale:  c.matrix.ScaleFactor(),
	})
	c.pixmap = lp

	// Shadow state is consumed by the layer; drawing inside the layer
	// starts shadow-free.
	c.shadow = nil
}

// EndTransparencyLayer composites the current transparency layer onto its
// parent, casting the captured shadow first when one was set.
// If there is no open layer, this function does nothing.
func (c *Context) EndTransparencyLayer() {
	if len(c.layers) == 0 {
		return
	}

	l := c.layers[len(c.layers)-1]
	c.layers = c.layers[:len(c.layers)-1]
	c.pixmap = l.parent
	if len(c.layers) == 0 {
		c.basePixmap = nil
	}

	if l.shadow != nil {
		sh := l.shadow
		filter.DropShadow(
			c.pixmap.Data(), l.pixmap.Data(), c.width, c.height,
			int(math.Round(sh.Offset.X*l.scale)),
			int(math.Round(sh.Offset.Y*l.scale)),
			sh.BlurRadius*l.scale,
			sh.Color.R, sh.Color.G, sh.Color.B, sh.Color.A,
		)
	}

	c.pixmap.CompositeOver(l.pixmap, nil)

	// Restore the shadow state that was active before the layer began.
	c.shadow = l.shadow
}
