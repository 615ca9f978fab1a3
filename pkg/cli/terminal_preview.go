package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"
)

// Terminal preview helper for kitty and iTerm2-style inline-image protocols,
// with sixel and chafa fallbacks.
//
//   - kitty-compatible terminals get the kitty graphics protocol (chunked
//     base64 inside ESC _G ... ESC \).
//   - iTerm2/WezTerm/Warp-style terminals get the OSC 1337 inline sequence.
//   - sixel-capable terminals get img2sixel output.
//   - anything else falls back to chafa block rendering when it is on PATH.
//
// Debug logging is controlled by BIMP_PREVIEW_DEBUG=1; the preferred backend
// can be forced with BIMP_PREVIEW_BACKEND (kitty|inline|sixel|chafa). Both may
// come from a .env file.

var previewDebug bool

func init() {
	// .env is optional; ignore a missing file like godotenv callers usually do
	_ = godotenv.Load()

	debug := os.Getenv("BIMP_PREVIEW_DEBUG")
	if debug == "1" || debug == "true" {
		previewDebug = true
	}
}

func debugf(format string, args ...interface{}) {
	if previewDebug {
		fmt.Fprintf(os.Stderr, "bimp-preview: "+format+"\n", args...)
	}
}

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	// ghostty and konsole implement the kitty graphics protocol too
	if strings.Contains(term, "kitty") || strings.Contains(term, "ghostty") {
		return true
	}
	return os.Getenv("KONSOLE_VERSION") != ""
}

func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "Hyper", "vscode", "VSCode", "Tabby":
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "wezterm") || strings.Contains(term, "warp") ||
		strings.Contains(term, "tabby") || strings.Contains(term, "vscode") {
		return true
	}
	return os.Getenv("ITERM_SESSION_ID") != ""
}

func isSixelCapable() bool {
	if os.Getenv("SIXEL_PREVIEW") == "1" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "foot") {
		return true
	}
	return os.Getenv("WT_SESSION") != ""
}

func hasChafa() bool {
	_, err := exec.LookPath("chafa")
	return err == nil
}

// PreviewSupported returns true if the running environment likely supports an
// inline terminal preview; chafa counts as a valid fallback.
func PreviewSupported() bool {
	supported := isKitty() || isInlineImageCapable() || isSixelCapable() || hasChafa()
	debugf("PreviewSupported -> %v (kitty=%v inline=%v sixel=%v chafa=%v)",
		supported, isKitty(), isInlineImageCapable(), isSixelCapable(), hasChafa())
	return supported
}

// PreviewSize conveys a target placement for terminal preview backends.
type PreviewSize struct {
	Cols        int // terminal character columns
	Rows        int // terminal character rows
	PixelWidth  int
	PixelHeight int
}

// computePreviewSize maps image pixel dimensions into terminal character
// cells, preserving aspect ratio and never scaling up.
func computePreviewSize(img image.Image) PreviewSize {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	const charW = 8
	const charH = 16
	const minCols, minRows = 6, 3
	const maxCols, maxRows = 80, 40

	scaleW := float64(maxCols*charW) / float64(w)
	scaleH := float64(maxRows*charH) / float64(h)
	scale := math.Min(1.0, math.Min(scaleW, scaleH))

	cols := int(math.Round(float64(w) * scale / charW))
	rows := int(math.Round(float64(h) * scale / charH))

	if cols < minCols {
		cols = minCols
	}
	if cols > maxCols {
		cols = maxCols
	}
	if rows < minRows {
		rows = minRows
	}
	if rows > maxRows {
		rows = maxRows
	}
	return PreviewSize{Cols: cols, Rows: rows, PixelWidth: cols * charW, PixelHeight: rows * charH}
}

// PreviewImage encodes the image and renders it in the terminal. format is a
// container hint like "png" or "jpeg"; kitty always gets PNG.
func PreviewImage(img image.Image, format string) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	f := strings.ToLower(format)
	if isKitty() || os.Getenv("BIMP_PREVIEW_BACKEND") == "kitty" {
		f = "png"
	}
	var buf bytes.Buffer
	if f == "jpeg" || f == "jpg" {
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 92}); err != nil {
			return fmt.Errorf("jpeg encode failed: %w", err)
		}
		f = "jpeg"
	} else {
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode failed: %w", err)
		}
		f = "png"
	}
	return previewBytes(buf.Bytes(), f, computePreviewSize(img))
}

// previewBytes picks a backend and sends the encoded bytes.
func previewBytes(blob []byte, format string, size PreviewSize) error {
	if len(blob) == 0 {
		return fmt.Errorf("empty image blob")
	}

	// explicit override first, then detection order: inline, kitty, sixel, chafa
	if v := strings.ToLower(os.Getenv("BIMP_PREVIEW_BACKEND")); v != "" {
		debugf("backend override: %s", v)
		var err error
		switch v {
		case "kitty":
			err = sendKittyImage(blob, size)
		case "inline", "iterm", "wezterm":
			err = sendInlineImage(blob, format, size)
		case "sixel":
			err = sendSixelImage(blob, size)
		case "chafa":
			err = sendChafaImage(blob, size)
		default:
			err = fmt.Errorf("unknown BIMP_PREVIEW_BACKEND: %s", v)
		}
		if err == nil {
			return nil
		}
		debugf("override backend failed: %v", err)
	}

	if isInlineImageCapable() {
		if err := sendInlineImage(blob, format, size); err == nil {
			return nil
		} else {
			debugf("inline protocol failed: %v", err)
		}
	}
	if isKitty() {
		if err := sendKittyImage(blob, size); err == nil {
			return nil
		} else {
			debugf("kitty protocol failed: %v", err)
		}
	}
	if isSixelCapable() {
		if err := sendSixelImage(blob, size); err == nil {
			return nil
		} else {
			debugf("sixel failed: %v", err)
		}
	}
	if hasChafa() {
		if err := sendChafaImage(blob, size); err == nil {
			return nil
		} else {
			debugf("chafa failed: %v", err)
		}
	}
	return fmt.Errorf("no preview protocol matched")
}

// postImageNewlines returns how many blank lines to emit after an image so
// the next prompt lands under it rather than on top of it.
func postImageNewlines(rows int) int {
	switch {
	case rows > 0 && rows <= 2:
		return 1
	case rows > 2 && rows <= 6:
		return 2
	case rows > 6 && rows <= 20:
		return 3
	case rows > 20:
		return 4
	}
	return 1
}

// sendKittyImage transmits PNG bytes via the kitty graphics protocol, chunking
// the base64 payload into <=4096-byte pieces as the protocol requires. q=2 suppresses
// terminal responses.
func sendKittyImage(data []byte, size PreviewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096

	first := true
	for pos := 0; pos < len(enc); pos += chunkSize {
		end := pos + chunkSize
		if end > len(enc) {
			end = len(enc)
		}
		chunk := enc[pos:end]
		mVal := "1"
		if end == len(enc) {
			mVal = "0"
		}
		var seq string
		if first {
			// a=T transmit+display, f=100 PNG, t=d direct payload,
			// c/r request a placement area
			seq = fmt.Sprintf("\x1b_Ga=T,f=100,t=d,q=2,c=%d,r=%d,m=%s;%s\x1b\\",
				size.Cols, size.Rows, mVal, chunk)
			first = false
		} else {
			seq = "\x1b_Gm=" + mVal + ";" + chunk + "\x1b\\"
		}
		if _, err := os.Stdout.WriteString(seq); err != nil {
			return err
		}
	}
	for i := 0; i < postImageNewlines(size.Rows); i++ {
		fmt.Println()
	}
	return nil
}

// sendInlineImage emits the iTerm2-style OSC 1337 inline file sequence.
func sendInlineImage(data []byte, format string, size PreviewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	enc := base64.StdEncoding.EncodeToString(data)
	name := "preview.png"
	if strings.HasPrefix(format, "j") {
		name = "preview.jpg"
	}
	meta := fmt.Sprintf("size=%d;", len(data))
	if size.PixelWidth > 0 && size.PixelHeight > 0 {
		meta += fmt.Sprintf("width=%dpx;height=%dpx;", size.PixelWidth, size.PixelHeight)
	}
	seq := "\x1b]1337;File=name=" + name + ";inline=1;" + meta + ":" + enc + "\a"
	if _, err := os.Stdout.WriteString(seq); err != nil {
		return err
	}
	for i := 0; i < postImageNewlines(0); i++ {
		fmt.Println()
	}
	return nil
}

// sendSixelImage pipes the bytes through img2sixel; falls back to chafa.
func sendSixelImage(data []byte, size PreviewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	cmd := exec.Command("img2sixel", "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err == nil {
		for i := 0; i < postImageNewlines(0); i++ {
			fmt.Println()
		}
		return nil
	}
	return sendChafaImage(data, size)
}

// sendChafaImage invokes chafa for a block-symbol rendering that works in most
// terminals.
func sendChafaImage(data []byte, size PreviewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	if _, err := exec.LookPath("chafa"); err != nil {
		return fmt.Errorf("chafa not found in PATH: %w", err)
	}
	chafaSize := fmt.Sprintf("%dx%d", size.Cols, size.Rows)
	cmd := exec.Command("chafa", "--fill=block", "--symbols=block", "-s", chafaSize, "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("chafa failed: %w", err)
	}
	for i := 0; i < postImageNewlines(size.Rows); i++ {
		fmt.Println()
	}
	return nil
}
