package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pbakke/bimp/pkg/stdimg"
)

// RunInteractive walks the supported files in dir one by one. For each file
// the user is prompted for the three factors, shown an original-beside-result
// preview, and asked to confirm the save. Declining restarts the parameter
// prompts for the same file; only a successful save advances to the next one.
func RunInteractive(dir string, reader *bufio.Reader, opts Options) (BatchResult, error) {
	var res BatchResult
	entries, err := os.ReadDir(dir)
	if err != nil {
		return res, fmt.Errorf("read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !SupportedExtension(entry.Name(), opts.Extensions) {
			res.Skipped++
			continue
		}
		if isDerivedName(entry.Name(), opts.Naming) {
			res.Skipped++
			continue
		}
		src := filepath.Join(dir, entry.Name())
		img, format, err := LoadImage(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to process %s: %v\n", entry.Name(), err)
			res.Failed = append(res.Failed, entry.Name())
			continue
		}
		fmt.Printf("\n%s (%dx%d)\n", entry.Name(), img.Bounds().Dx(), img.Bounds().Dy())

		for {
			p, err := PromptParams(reader)
			if err != nil {
				return res, err
			}
			out := stdimg.AddVignette(stdimg.Enhance(img, p.Saturation, p.Contrast), p.Vignette)

			if PreviewSupported() {
				sheet := stdimg.SideBySide(img, out, "original", "enhanced")
				_ = PreviewImage(sheet, format)
			}

			save, err := PromptYesNo(reader, "Save this result? (y/n): ")
			if err != nil {
				return res, err
			}
			if !save {
				// fresh parameters for the same file
				continue
			}
			dst := OutputPath(src, opts.Naming)
			if err := SaveImage(dst, out); err != nil {
				fmt.Fprintf(os.Stderr, "failed to save %s: %v\n", filepath.Base(dst), err)
				res.Failed = append(res.Failed, entry.Name())
				break
			}
			fmt.Printf("saved %s\n", filepath.Base(dst))
			res.Saved++
			break
		}
	}
	return res, nil
}
