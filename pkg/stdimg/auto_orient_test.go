package stdimg

import (
	"image"
	"image/color"
	"testing"
)

// twoPixels returns a 2x1 image: A on the left, B on the right.
func twoPixels(a, b color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, a)
	img.SetNRGBA(1, 0, b)
	return img
}

func TestAutoOrientIdentity(t *testing.T) {
	src := twoPixels(color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 255, 0, 255})
	for _, o := range []int{0, 1, 9, -3} {
		if got := AutoOrient(src, o); got != image.Image(src) {
			t.Errorf("orientation %d: expected the input back unchanged", o)
		}
	}
}

func TestAutoOrientTransforms(t *testing.T) {
	a := color.NRGBA{255, 0, 0, 255}
	b := color.NRGBA{0, 255, 0, 255}
	src := twoPixels(a, b)

	at := func(img image.Image, x, y int) color.NRGBA {
		return img.(*image.NRGBA).NRGBAAt(x, y)
	}

	// mirror horizontal swaps the two pixels
	m := AutoOrient(src, 2)
	if at(m, 0, 0) != b || at(m, 1, 0) != a {
		t.Errorf("orientation 2: got %v %v", at(m, 0, 0), at(m, 1, 0))
	}

	// 180 degrees also swaps them for a single row
	r := AutoOrient(src, 3)
	if at(r, 0, 0) != b || at(r, 1, 0) != a {
		t.Errorf("orientation 3: got %v %v", at(r, 0, 0), at(r, 1, 0))
	}

	// 90 CW turns the row into a column, left pixel on top
	cw := AutoOrient(src, 6)
	if cw.Bounds().Dx() != 1 || cw.Bounds().Dy() != 2 {
		t.Fatalf("orientation 6: bounds %v, want 1x2", cw.Bounds())
	}
	if at(cw, 0, 0) != a || at(cw, 0, 1) != b {
		t.Errorf("orientation 6: got %v %v", at(cw, 0, 0), at(cw, 0, 1))
	}

	// 90 CCW puts the right pixel on top
	ccw := AutoOrient(src, 8)
	if at(ccw, 0, 0) != b || at(ccw, 0, 1) != a {
		t.Errorf("orientation 8: got %v %v", at(ccw, 0, 0), at(ccw, 0, 1))
	}
}

func TestAutoOrientDoesNotMutateInput(t *testing.T) {
	a := color.NRGBA{10, 20, 30, 255}
	b := color.NRGBA{40, 50, 60, 255}
	src := twoPixels(a, b)
	_ = AutoOrient(src, 6)
	if src.NRGBAAt(0, 0) != a || src.NRGBAAt(1, 0) != b {
		t.Errorf("input was mutated")
	}
}
