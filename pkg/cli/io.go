package cli

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/pbakke/bimp/pkg/stdimg"
)

// DefaultExtensions is the canonical supported-extension set, matched
// case-insensitively against filenames.
var DefaultExtensions = []string{".png", ".jpeg", ".jpg", ".bmp"}

// NamingScheme selects how output filenames are derived from the source name.
type NamingScheme int

const (
	// NamingSuffix produces "photo_enhanced.jpg" from "photo.jpg".
	NamingSuffix NamingScheme = iota
	// NamingPrefix produces "enhanced_photo.jpg" from "photo.jpg".
	NamingPrefix
)

// OutputPath derives the output filename for a source path. The original
// extension is preserved byte-for-byte, including its case, and the result
// never collides with the source.
func OutputPath(path string, scheme NamingScheme) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	switch scheme {
	case NamingPrefix:
		return filepath.Join(dir, "enhanced_"+base)
	default:
		return filepath.Join(dir, name+"_enhanced"+ext)
	}
}

// SupportedExtension reports whether the filename carries one of the
// configured extensions (case-insensitive).
func SupportedExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// LoadImage loads a file from disk into an *image.NRGBA. Supports PNG, JPEG
// and BMP. JPEGs are auto-oriented using the EXIF orientation tag so camera
// photos come in upright. The detected container format ("png"/"jpeg"/"bmp")
// is returned for preview encoding hints.
func LoadImage(path string) (*image.NRGBA, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	// quick format detection via magic bytes
	format := ""
	switch {
	case len(b) >= 3 && bytes.Equal(b[:3], []byte{0xFF, 0xD8, 0xFF}):
		format = "jpeg"
	case len(b) >= 8 && bytes.Equal(b[:8], []byte("\x89PNG\r\n\x1a\n")):
		format = "png"
	case len(b) >= 2 && b[0] == 'B' && b[1] == 'M':
		format = "bmp"
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if format == "jpeg" {
		if o, oerr := extractJPEGOrientation(b); oerr == nil && o > 1 {
			img = stdimg.AutoOrient(img, o)
		}
	}
	return stdimg.ToNRGBA(img), format, nil
}

// SaveImage writes an image to disk using the format inferred from the file
// extension. Supports .png, .jpg/.jpeg and .bmp; anything else is written as
// PNG.
func SaveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	case ".bmp":
		return bmp.Encode(f, img)
	default:
		return png.Encode(f, img)
	}
}
