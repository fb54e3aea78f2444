package filter

// DropShadow draws the shadow of src onto dst.
//
// Both buffers are premultiplied RGBA of the same width and height. The
// algorithm extracts the alpha channel of src displaced by the offset,
// blurs it with a Gaussian kernel, colorizes it with the shadow color,
// and composites the result onto dst with source-over blending. The
// caller is expected to composite src itself on top afterwards.
func DropShadow(dst, src []uint8, width, height int,
	offsetX, offsetY int, blurRadius float64, r, g, b, a float64) {
	if width <= 0 || height <= 0 {
		return
	}

	// Extract the alpha channel with the offset applied.
	alpha := make([]float32, width*height)
	for y := 0; y < height; y++ {
		srcY := y - offsetY
		if srcY < 0 || srcY >= height {
			continue
		}
		for x := 0; x < width; x++ {
			srcX := x - offsetX
			if srcX < 0 || srcX >= width {
				continue
			}
			alpha[y*width+x] = float32(src[(srcY*width+srcX)*4+3]) / 255
		}
	}

	if blurRadius > 0 {
		alpha = blurAlpha(alpha, width, height, blurRadius)
	}

	// Colorize and composite onto dst (source-over, premultiplied).
	sr := float32(r * a * 255)
	sg := float32(g * a * 255)
	sb := float32(b * a * 255)
	sa := float32(a * 255)

	for px, cov := range alpha {
		if cov <= 0 {
			continue
		}
		if cov > 1 {
			cov = 1
		}
		i := px * 4

		shR := sr * cov
		shG := sg * cov
		shB := sb * cov
		shA := sa * cov

		inv := 1 - shA/255
		dst[i+0] = clampUint8(shR + float32(dst[i+0])*inv)
		dst[i+1] = clampUint8(shG + float32(dst[i+1])*inv)
		dst[i+2] = clampUint8(shB + float32(dst[i+2])*inv)
		dst[i+3] = clampUint8(shA + float32(dst[i+3])*inv)
	}
}

func clampUint8(x float32) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x + 0.5)
}
