//go:build magick

package cli

import (
	"sync"

	"gopkg.in/gographics/imagick.v3/imagick"

	"github.com/pbakke/bimp/pkg/stdimg"
)

// ImageMagick-backed engine, selected with -tags magick. Saturation maps to
// modulate, contrast to brightness-contrast percent, and the vignette to
// ImageMagick's own vignette operator, so results are close to but not
// bit-identical with the pure-Go engine.

var magickInit sync.Once

// enhanceFile runs the full pipeline for one file through a MagickWand.
func enhanceFile(src, dst string, p stdimg.Params) error {
	magickInit.Do(imagick.Initialize)

	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	if err := mw.ReadImage(src); err != nil {
		return err
	}
	if err := mw.ModulateImage(100, p.Saturation*100, 100); err != nil {
		return err
	}
	contrastPct := (p.Contrast - 1) * 100
	if contrastPct > 100 {
		contrastPct = 100
	}
	if contrastPct < -100 {
		contrastPct = -100
	}
	if err := mw.BrightnessContrastImage(0, contrastPct); err != nil {
		return err
	}
	w := int(mw.GetImageWidth())
	h := int(mw.GetImageHeight())
	minDim := w
	if h < minDim {
		minDim = h
	}
	radius := float64(minDim) * p.Vignette
	if radius > 0 {
		if err := mw.VignetteImage(radius, radius/4, 0, 0); err != nil {
			return err
		}
	}
	return mw.WriteImage(dst)
}
