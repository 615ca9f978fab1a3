package stdimg

import (
	"image"
	"math"
	"sync"
)

// gaussianKernel1D generates a 1D Gaussian kernel with given sigma. Returns kernel and half-width radius.
func gaussianKernel1D(sigma float64) ([]float64, int) {
	if sigma <= 0 {
		return []float64{1.0}, 0
	}
	// choose radius ~ ceil(3*sigma)
	radius := int(math.Ceil(3 * sigma))
	sz := radius*2 + 1
	kern := make([]float64, sz)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-0.5 * (float64(i) * float64(i)) / (sigma * sigma))
		kern[i+radius] = v
		sum += v
	}
	// normalize
	for i := range kern {
		kern[i] /= sum
	}
	return kern, radius
}

// BlurGray applies a separable gaussian blur to a single-channel mask and
// returns a new *image.Gray. sigma<=0 returns an unblurred copy.
func BlurGray(src *image.Gray, sigma float64) *image.Gray {
	if src == nil {
		return nil
	}
	kern, radius := gaussianKernel1D(sigma)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if radius == 0 {
		out := image.NewGray(image.Rect(0, 0, w, h))
		copy(out.Pix, src.Pix)
		return out
	}
	// temporary buffer for horiz pass
	tmp := image.NewGray(image.Rect(0, 0, w, h))
	dst := image.NewGray(image.Rect(0, 0, w, h))

	// horizontal pass
	var wg sync.WaitGroup
	for y := 0; y < h; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			for x := 0; x < w; x++ {
				acc := 0.0
				for k := -radius; k <= radius; k++ {
					acc += float64(sampleGrayClamped(src, x+k, y)) * kern[k+radius]
				}
				tmp.Pix[tmp.PixOffset(x, y)] = clampFloatToUint8(acc)
			}
		}(y)
	}
	wg.Wait()

	// vertical pass
	for x := 0; x < w; x++ {
		wg.Add(1)
		go func(x int) {
			defer wg.Done()
			for y := 0; y < h; y++ {
				acc := 0.0
				for k := -radius; k <= radius; k++ {
					acc += float64(sampleGrayClamped(tmp, x, y+k)) * kern[k+radius]
				}
				dst.Pix[dst.PixOffset(x, y)] = clampFloatToUint8(acc)
			}
		}(x)
	}
	wg.Wait()
	return dst
}
