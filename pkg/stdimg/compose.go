package stdimg

import (
	"image"
)

// CompositeMask blends fg over bg using a single-channel mask of the same
// dimensions: a mask value of 255 keeps the foreground pixel, 0 keeps the
// background pixel, intermediate values blend linearly. The result takes the
// foreground's bounds; bg and mask are sampled clamped, so smaller inputs
// degrade gracefully instead of panicking. Neither input is modified.
func CompositeMask(fg, bg *image.NRGBA, mask *image.Gray) *image.NRGBA {
	if fg == nil {
		return nil
	}
	b := fg.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			fi := fg.PixOffset(x, y)
			m := 1.0
			if mask != nil {
				m = float64(sampleGrayClamped(mask, x, y)) / 255.0
			}
			var br, bg_, bb, ba float64
			if bg != nil {
				c := samplePixelClamped(bg, x, y)
				br = float64(c.R)
				bg_ = float64(c.G)
				bb = float64(c.B)
				ba = float64(c.A)
			}
			out.Pix[fi+0] = clampFloatToUint8(br + m*(float64(fg.Pix[fi+0])-br))
			out.Pix[fi+1] = clampFloatToUint8(bg_ + m*(float64(fg.Pix[fi+1])-bg_))
			out.Pix[fi+2] = clampFloatToUint8(bb + m*(float64(fg.Pix[fi+2])-bb))
			out.Pix[fi+3] = clampFloatToUint8(ba + m*(float64(fg.Pix[fi+3])-ba))
		}
	}
	return out
}
