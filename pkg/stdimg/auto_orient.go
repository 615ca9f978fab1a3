package stdimg

import (
	"image"
)

// AutoOrient applies an EXIF orientation (1..8) to an image and returns a new
// image. Orientation 1 or out-of-range values return the input unchanged.
func AutoOrient(img image.Image, orientation int) image.Image {
	if img == nil {
		return nil
	}
	if orientation <= 1 || orientation > 8 {
		return img
	}
	src := ToNRGBA(img)
	switch orientation {
	case 2:
		return mirrorH(src)
	case 3:
		return rotate180(src)
	case 4:
		return mirrorV(src)
	case 5:
		// transpose: rotate 90 CW then mirror horizontally
		return mirrorH(rotate90CW(src))
	case 6:
		return rotate90CW(src)
	case 7:
		// transverse: rotate 90 CCW then mirror horizontally
		return mirrorH(rotate90CCW(src))
	case 8:
		return rotate90CCW(src)
	}
	return img
}

// remap builds a same-pixel-count image whose (x,y) comes from srcAt(x,y).
func remap(src *image.NRGBA, w, h int, srcAt func(x, y int) int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := srcAt(x, y)
			di := out.PixOffset(x, y)
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return out
}

func mirrorH(src *image.NRGBA) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return remap(src, w, h, func(x, y int) int { return src.PixOffset(w-1-x, y) })
}

func mirrorV(src *image.NRGBA) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return remap(src, w, h, func(x, y int) int { return src.PixOffset(x, h-1-y) })
}

func rotate180(src *image.NRGBA) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return remap(src, w, h, func(x, y int) int { return src.PixOffset(w-1-x, h-1-y) })
}

func rotate90CW(src *image.NRGBA) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return remap(src, h, w, func(x, y int) int { return src.PixOffset(y, h-1-x) })
}

func rotate90CCW(src *image.NRGBA) *image.NRGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return remap(src, h, w, func(x, y int) int { return src.PixOffset(w-1-y, x) })
}
