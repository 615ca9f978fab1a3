package stdimg

import (
	"image"
	"image/color"
)

// CircleMask returns a w x h mask holding a filled circle of value 255
// centered at (w/2, h/2) with the given radius; everything outside stays 0.
// radius <= 0 yields an all-zero mask.
func CircleMask(w, h, radius int) *image.Gray {
	mask := NewGrayMask(w, h, 0)
	if radius <= 0 {
		return mask
	}
	cx := float64(w) / 2.0
	cy := float64(h) / 2.0
	rr := float64(radius) * float64(radius)
	for y := 0; y < h; y++ {
		dy := float64(y) - cy
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy <= rr {
				mask.Pix[mask.PixOffset(x, y)] = 255
			}
		}
	}
	return mask
}

// AddVignette composites src against a black background through a soft
// circular mask. intensity is the fraction of min(width,height) that defines
// the unveiled central radius; the mask is blurred with sigma radius/4 so the
// falloff is smooth. intensity <= 0 produces near-black output, very large
// intensities leave the image effectively untouched; neither crashes.
// Returns a new image of the same dimensions; src is not modified.
func AddVignette(src *image.NRGBA, intensity float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	minDim := w
	if h < minDim {
		minDim = h
	}
	radius := int(float64(minDim) * intensity)

	mask := CircleMask(w, h, radius)
	mask = BlurGray(mask, float64(radius)/4.0)

	black := makeSolidNRGBA(w, h, color.NRGBA{A: 255})
	return CompositeMask(src, black, mask)
}
