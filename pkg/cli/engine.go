//go:build !magick

package cli

import (
	"github.com/pbakke/bimp/pkg/stdimg"
)

// enhanceFile runs the full pipeline for one file on the pure-Go engine:
// decode, saturation+contrast, vignette, encode.
func enhanceFile(src, dst string, p stdimg.Params) error {
	img, _, err := LoadImage(src)
	if err != nil {
		return err
	}
	out := stdimg.AddVignette(stdimg.Enhance(img, p.Saturation, p.Contrast), p.Vignette)
	return SaveImage(dst, out)
}
