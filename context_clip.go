package plotmark

// ClipPath intersects the clip region with a path (in user space),
// using the given winding rule. Subsequent drawing operations only
// affect pixels covered by the path.
//
// The clip is anti-aliased: partially covered pixels receive partial
// coverage. Use Push/Pop to restore the previous clip region.
func (c *Context) ClipPath(path *Path, rule FillRule) error {
	device := path.Transform(c.matrix)

	// Rasterize the path into a coverage buffer. The scratch pixmap's
	// alpha channel is the coverage.
	scratch := NewPixmap(c.width, c.height)
	if err := c.renderer.Fill(scratch, device, rule, solidTexture{color: White}); err != nil {
		return err
	}

	mask := make([]uint8, c.width*c.height)
	data := scratch.Data()
	if c.clip == nil {
		for i := range mask {
			mask[i] = data[i*4+3]
		}
	} else {
		// Intersect with the existing clip.
		for i := range mask {
			mask[i] = uint8(uint32(data[i*4+3]) * uint32(c.clip[i]) / 255)
		}
	}

	c.clip = mask
	return nil
}

// ClipRect intersects the clip region with an axis-aligned rectangle
// in user space.
func (c *Context) ClipRect(rect Rect) error {
	path := NewPath()
	path.Rectangle(rect.X, rect.Y, rect.W, rect.H)
	return c.ClipPath(path, FillRuleNonZero)
}

// ResetClip removes all clipping, restoring the full surface as drawable.
func (c *Context) ResetClip() {
	c.clip = nil
}
