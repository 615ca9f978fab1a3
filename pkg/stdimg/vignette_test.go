package stdimg

import (
	"image/color"
	"testing"
)

func TestVignetteKeepsDimensions(t *testing.T) {
	src := makeSolidNRGBA(60, 40, color.NRGBA{R: 120, G: 140, B: 160, A: 255})
	out := AddVignette(src, 0.8)
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v -> %v", src.Bounds(), out.Bounds())
	}
}

func TestVignettePreservesCenter(t *testing.T) {
	src := makeSolidNRGBA(100, 100, color.NRGBA{R: 200, G: 150, B: 100, A: 255})
	out := AddVignette(src, 0.5)
	i := out.PixOffset(50, 50)
	if out.Pix[i+0] != 200 || out.Pix[i+1] != 150 || out.Pix[i+2] != 100 {
		t.Fatalf("center pixel must survive intensity 0.5, got %d,%d,%d",
			out.Pix[i+0], out.Pix[i+1], out.Pix[i+2])
	}
}

func TestVignetteDarkensCorners(t *testing.T) {
	src := makeSolidNRGBA(100, 100, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	out := AddVignette(src, 0.05)
	i := out.PixOffset(1, 1)
	if out.Pix[i+0] != 0 || out.Pix[i+1] != 0 || out.Pix[i+2] != 0 {
		t.Fatalf("far corner should be black at tiny intensity, got %d,%d,%d",
			out.Pix[i+0], out.Pix[i+1], out.Pix[i+2])
	}
	// center keeps the original color
	c := out.PixOffset(50, 50)
	if out.Pix[c+0] != 200 {
		t.Fatalf("center should stay lit, got %d", out.Pix[c+0])
	}
}

func TestVignetteDegenerateIntensities(t *testing.T) {
	src := makeSolidNRGBA(16, 16, color.NRGBA{R: 90, G: 90, B: 90, A: 255})

	// intensity 0: all-dark mask, fully black output
	out := AddVignette(src, 0)
	for _, px := range []int{out.PixOffset(0, 0), out.PixOffset(8, 8), out.PixOffset(15, 15)} {
		if out.Pix[px+0] != 0 || out.Pix[px+1] != 0 || out.Pix[px+2] != 0 {
			t.Fatalf("intensity 0 should black out the image")
		}
	}

	// negative intensity behaves like 0, must not panic
	out = AddVignette(src, -2)
	if out.Bounds() != src.Bounds() {
		t.Fatalf("negative intensity changed bounds")
	}

	// huge intensity: mask saturates, image passes through unchanged
	out = AddVignette(src, 10)
	i := out.PixOffset(0, 0)
	if out.Pix[i+0] != 90 || out.Pix[i+1] != 90 || out.Pix[i+2] != 90 {
		t.Fatalf("huge intensity should leave pixels untouched, got %d,%d,%d",
			out.Pix[i+0], out.Pix[i+1], out.Pix[i+2])
	}
}

func TestCircleMaskRadius(t *testing.T) {
	m := CircleMask(40, 40, 10)
	if m.Pix[m.PixOffset(20, 20)] != 255 {
		t.Fatalf("center must be inside the circle")
	}
	if m.Pix[m.PixOffset(0, 0)] != 0 {
		t.Fatalf("corner must be outside the circle")
	}
	if m.Pix[m.PixOffset(20, 5)] != 0 {
		t.Fatalf("pixel beyond radius must stay 0")
	}
}

func TestCompositeMaskBlend(t *testing.T) {
	fg := makeSolidNRGBA(2, 2, color.NRGBA{R: 200, G: 100, B: 0, A: 255})
	bg := makeSolidNRGBA(2, 2, color.NRGBA{A: 255})
	mask := NewGrayMask(2, 2, 128)
	out := CompositeMask(fg, bg, mask)
	i := out.PixOffset(0, 0)
	// 128/255 of the way from black to the foreground, rounded
	if out.Pix[i+0] < 99 || out.Pix[i+0] > 102 {
		t.Fatalf("expected ~half blend on red, got %d", out.Pix[i+0])
	}
	if out.Pix[i+2] != 0 {
		t.Fatalf("blue should stay 0, got %d", out.Pix[i+2])
	}
}
