package plotmark

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, matching
// the layout of image.RGBA so the buffer can be wrapped without copying.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// RGBA wraps the pixmap as an image.RGBA sharing the same pixel memory.
// Drawing into the returned image mutates the pixmap.
func (p *Pixmap) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * c.A * 255))
	p.data[i+1] = uint8(clamp255(c.G * c.A * 255))
	p.data[i+2] = uint8(clamp255(c.B * c.A * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	a := float64(p.data[i+3]) / 255
	if a == 0 {
		return Transparent
	}
	return RGBA{
		R: float64(p.data[i+0]) / 255 / a,
		G: float64(p.data[i+1]) / 255 / a,
		B: float64(p.data[i+2]) / 255 / a,
		A: a,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * c.A * 255))
	g := uint8(clamp255(c.G * c.A * 255))
	b := uint8(clamp255(c.B * c.A * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone creates a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	result := NewPixmap(p.width, p.height)
	copy(result.data, p.data)
	return result
}

// CompositeOver composites src onto p with source-over blending,
// optionally modulated by a per-pixel alpha mask of the same dimensions.
// Src must have the same dimensions as p. A nil mask means full coverage.
func (p *Pixmap) CompositeOver(src *Pixmap, mask []uint8) {
	if src.width != p.width || src.height != p.height {
		return
	}
	for i, px := 0, 0; i < len(p.data); i, px = i+4, px+1 {
		sr := uint32(src.data[i+0])
		sg := uint32(src.data[i+1])
		sb := uint32(src.data[i+2])
		sa := uint32(src.data[i+3])

		if mask != nil {
			m := uint32(mask[px])
			sr = sr * m / 255
			sg = sg * m / 255
			sb = sb * m / 255
			sa = sa * m / 255
		}
		if sa == 0 && sr == 0 && sg == 0 && sb == 0 {
			continue
		}

		inv := 255 - sa
		p.data[i+0] = uint8(sr + uint32(p.data[i+0])*inv/255)
		p.data[i+1] = uint8(sg + uint32(p.data[i+1])*inv/255)
		p.data[i+2] = uint8(sb + uint32(p.data[i+2])*inv/255)
		p.data[i+3] = uint8(sa + uint32(p.data[i+3])*inv/255)
	}
}

// ToImage converts the pixmap to a new image.RGBA copy.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
