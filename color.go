package plotmark

import "image/color"

// RGBA is a color with float64 components in [0, 1].
// Unlike image/color types, components are not premultiplied by alpha.
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// Color converts to a standard library color.Color.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard library color to RGBA.
func FromColor(c color.Color) RGBA {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(nrgba.R) / 255,
		G: float64(nrgba.G) / 255,
		B: float64(nrgba.B) / 255,
		A: float64(nrgba.A) / 255,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
