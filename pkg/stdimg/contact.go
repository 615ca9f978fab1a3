package stdimg

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SideBySide concatenates left and right horizontally into a new image. The
// canvas height is the taller of the two; shorter panels are padded with
// black. Non-empty labels are drawn into the top-left corner of each panel.
func SideBySide(left, right *image.NRGBA, leftLabel, rightLabel string) *image.NRGBA {
	if left == nil {
		return CloneNRGBA(right)
	}
	if right == nil {
		return CloneNRGBA(left)
	}
	lb := left.Bounds()
	rb := right.Bounds()
	h := lb.Dy()
	if rb.Dy() > h {
		h = rb.Dy()
	}
	out := makeSolidNRGBA(lb.Dx()+rb.Dx(), h, color.NRGBA{A: 255})

	blit(out, left, 0)
	blit(out, right, lb.Dx())

	if leftLabel != "" {
		drawLabel(out, leftLabel, 4)
	}
	if rightLabel != "" {
		drawLabel(out, rightLabel, lb.Dx()+4)
	}
	return out
}

// blit copies src into dst at horizontal offset xoff, row by row.
func blit(dst, src *image.NRGBA, xoff int) {
	sb := src.Bounds()
	for y := 0; y < sb.Dy(); y++ {
		si := src.PixOffset(sb.Min.X, sb.Min.Y+y)
		di := dst.PixOffset(xoff, y)
		copy(dst.Pix[di:di+sb.Dx()*4], src.Pix[si:si+sb.Dx()*4])
	}
}

// drawLabel renders text with the built-in basic font, white on whatever is
// underneath. Kept simple: previews are transient, not outputs.
func drawLabel(dst *image.NRGBA, text string, x int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(13)},
	}
	d.DrawString(text)
}
