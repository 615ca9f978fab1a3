package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pbakke/bimp/pkg/stdimg"
)

// Options configures a directory run. The zero value is not useful; use
// DefaultOptions and override.
type Options struct {
	Naming     NamingScheme
	Extensions []string
	Preview    bool // show each result inline when the terminal supports it
}

// DefaultOptions returns suffix naming over the canonical extension set.
func DefaultOptions() Options {
	return Options{Naming: NamingSuffix, Extensions: DefaultExtensions}
}

// BatchResult reports what a directory scan did. Failed holds the base names
// of files that decoded or encoded with an error.
type BatchResult struct {
	Saved   int
	Skipped int
	Failed  []string
}

// ProcessDirectory enhances every supported image in dir with the given
// parameters. One file's failure never stops the batch: the file is logged,
// recorded in the result, and the scan moves on. Files already carrying the
// output name for the configured scheme are skipped so re-runs do not
// enhance their own output.
func ProcessDirectory(dir string, p stdimg.Params, opts Options) (BatchResult, error) {
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
		src := filepath.Join(dir, entry.Name())
		dst := OutputPath(src, opts.Naming)
		if src == dst || isDerivedName(entry.Name(), opts.Naming) {
			res.Skipped++
			continue
		}
		if err := enhanceFile(src, dst, p); err != nil {
			fmt.Fprintf(os.Stderr, "failed to process %s: %v\n", entry.Name(), err)
			res.Failed = append(res.Failed, entry.Name())
			continue
		}
		fmt.Printf("saved %s\n", filepath.Base(dst))
		res.Saved++
		if opts.Preview && PreviewSupported() {
			if img, format, err := LoadImage(dst); err == nil {
				_ = PreviewImage(img, format)
			}
		}
	}
	return res, nil
}

// isDerivedName reports whether a filename already looks like this run's
// output, so batches are re-runnable without compounding effects.
func isDerivedName(name string, scheme NamingScheme) bool {
	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]
	switch scheme {
	case NamingPrefix:
		return len(name) > len("enhanced_") && name[:len("enhanced_")] == "enhanced_"
	default:
		suffix := "_enhanced"
		return len(stem) > len(suffix) && stem[len(stem)-len(suffix):] == suffix
	}
}
