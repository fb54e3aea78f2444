package plotmark

// Renderer is the interface for rasterizing paths into a pixmap.
// Paths are in device coordinates; any transform has already been applied.
type Renderer interface {
	// Fill fills a path with the given texture using the given fill rule.
	// Returns an error if the rendering operation fails.
	Fill(pixmap *Pixmap, path *Path, rule FillRule, tex Texture) error

	// Stroke strokes a path with the given line style. The style's width
	// and dash lengths are in device units.
	// Returns an error if the rendering operation fails.
	Stroke(pixmap *Pixmap, path *Path, style *LineStyle) error
}
