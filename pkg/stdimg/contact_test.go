package stdimg

import (
	"image/color"
	"testing"
)

func TestSideBySideDimensions(t *testing.T) {
	left := makeSolidNRGBA(30, 20, color.NRGBA{R: 255, A: 255})
	right := makeSolidNRGBA(30, 25, color.NRGBA{B: 255, A: 255})
	out := SideBySide(left, right, "", "")
	if out.Bounds().Dx() != 60 || out.Bounds().Dy() != 25 {
		t.Fatalf("expected 60x25 sheet, got %v", out.Bounds())
	}
	// left panel pixel
	i := out.PixOffset(5, 5)
	if out.Pix[i+0] != 255 || out.Pix[i+2] != 0 {
		t.Fatalf("left panel not copied")
	}
	// right panel pixel
	i = out.PixOffset(35, 5)
	if out.Pix[i+2] != 255 || out.Pix[i+0] != 0 {
		t.Fatalf("right panel not copied")
	}
	// padding below the shorter left panel is black
	i = out.PixOffset(5, 22)
	if out.Pix[i+0] != 0 || out.Pix[i+1] != 0 || out.Pix[i+2] != 0 {
		t.Fatalf("padding should be black")
	}
}

func TestSideBySideLabels(t *testing.T) {
	left := makeSolidNRGBA(50, 30, color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	right := makeSolidNRGBA(50, 30, color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	out := SideBySide(left, right, "original", "enhanced")
	// some pixel in the label strip should differ from the flat background
	changed := false
	for x := 0; x < 50 && !changed; x++ {
		for y := 0; y < 14; y++ {
			i := out.PixOffset(x, y)
			if out.Pix[i+0] != 40 {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Fatalf("expected label text to draw non-background pixels")
	}
}

func TestSideBySideNilPanel(t *testing.T) {
	right := makeSolidNRGBA(10, 10, color.NRGBA{G: 255, A: 255})
	out := SideBySide(nil, right, "", "")
	if out.Bounds() != right.Bounds() {
		t.Fatalf("nil left should yield a copy of right")
	}
}
