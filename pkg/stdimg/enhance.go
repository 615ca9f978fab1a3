package stdimg

import (
	"image"
)

// luma601 returns the ITU-R 601 grayscale value for an 8-bit RGB triple.
// Integer arithmetic matches the common L-mode conversion: (299R+587G+114B)/1000.
func luma601(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}

// meanGray computes the mean ITU-R 601 gray level of the image, rounded to the
// nearest integer. An empty image yields 0.
func meanGray(src *image.NRGBA) uint8 {
	b := src.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return 0
	}
	var sum uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			sum += uint64(luma601(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2]))
		}
	}
	return uint8((sum + uint64(n)/2) / uint64(n))
}

// Saturate blends each pixel between its grayscale equivalent and its original
// color. factor 0 yields grayscale, 1 is the identity, >1 oversaturates;
// results are extrapolated linearly and clamped to [0,255]. Alpha is untouched.
func Saturate(src *image.NRGBA, factor float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			r := src.Pix[i+0]
			g := src.Pix[i+1]
			b_ := src.Pix[i+2]
			gray := float64(luma601(r, g, b_))
			out.Pix[i+0] = clampFloatToUint8(gray + factor*(float64(r)-gray))
			out.Pix[i+1] = clampFloatToUint8(gray + factor*(float64(g)-gray))
			out.Pix[i+2] = clampFloatToUint8(gray + factor*(float64(b_)-gray))
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}

// Contrast blends each pixel between the image's mean gray level and its
// original value. factor 0 flattens to uniform gray, 1 is the identity,
// >1 increases contrast with clamping. Alpha is untouched.
func Contrast(src *image.NRGBA, factor float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	mean := float64(meanGray(src))
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			out.Pix[i+0] = clampFloatToUint8(mean + factor*(float64(src.Pix[i+0])-mean))
			out.Pix[i+1] = clampFloatToUint8(mean + factor*(float64(src.Pix[i+1])-mean))
			out.Pix[i+2] = clampFloatToUint8(mean + factor*(float64(src.Pix[i+2])-mean))
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}

// Enhance applies saturation then contrast scaling and returns a new image of
// identical dimensions. The input is never modified. Factors are unconstrained
// floats; values <=0 produce fully desaturated or flat output.
func Enhance(src *image.NRGBA, saturation, contrast float64) *image.NRGBA {
	if src == nil {
		return nil
	}
	return Contrast(Saturate(src, saturation), contrast)
}
