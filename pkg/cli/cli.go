package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pbakke/bimp/pkg/stdimg"
)

// Run is the program entry point behind main. It returns the process exit
// code so main stays a one-liner.
func Run() int {
	fs := flag.NewFlagSet("bimp", flag.ContinueOnError)
	defaults := stdimg.DefaultParams()
	var (
		dir       = fs.String("dir", "", "directory of images to enhance (default: pick with fzf, falling back to the current directory)")
		prefix    = fs.Bool("prefix", false, "name outputs enhanced_<name> instead of <name>_enhanced")
		exts      = fs.String("ext", strings.Join(DefaultExtensions, ","), "comma-separated extensions to process")
		noPreview = fs.Bool("no-preview", false, "disable inline terminal previews")
		batch     = fs.Bool("batch", false, "enhance the whole directory without prompting, using the factor flags")
		satFlag   = fs.Float64("saturation", defaults.Saturation, "saturation factor for -batch")
		conFlag   = fs.Float64("contrast", defaults.Contrast, "contrast factor for -batch")
		vigFlag   = fs.Float64("vignette", defaults.Vignette, "vignette intensity for -batch")
		version   = fs.Bool("version", false, "print the version and exit")
		update    = fs.Bool("update", false, "check for a newer release and exit")
	)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	if *version {
		fmt.Printf("bimp %s\n", Version)
		return 0
	}
	if *update {
		if err := CheckForUpdates(); err != nil {
			fmt.Fprintf(os.Stderr, "update check failed: %v\n", err)
			return 1
		}
		return 0
	}

	applyEnvDefaults()

	opts := DefaultOptions()
	if *prefix {
		opts.Naming = NamingPrefix
	}
	opts.Extensions = splitExtensions(*exts)
	opts.Preview = !*noPreview

	target := *dir
	if target == "" && fs.NArg() > 0 {
		target = fs.Arg(0)
	}
	if target == "" {
		// fzf is optional; a missing binary just means we stay in the
		// current directory.
		if picked, err := SelectDirWithFzf("."); err == nil && picked != "" {
			target = picked
		} else {
			target = "."
		}
	}
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "not a directory: %s\n", target)
		return 1
	}

	if *batch {
		p := batchParams(fs, *satFlag, *conFlag, *vigFlag)
		res, err := ProcessDirectory(target, p, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		fmt.Printf("done: %d saved, %d skipped, %d failed\n", res.Saved, res.Skipped, len(res.Failed))
		return 0
	}

	reader := bufio.NewReader(os.Stdin)
	all, err := PromptYesNo(reader, "Apply effects to all images? (y/n): ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input error: %v\n", err)
		return 1
	}

	var res BatchResult
	if all {
		p, perr := PromptParams(reader)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "read input error: %v\n", perr)
			return 1
		}
		res, err = ProcessDirectory(target, p, opts)
	} else {
		res, err = RunInteractive(target, reader, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	fmt.Printf("done: %d saved, %d skipped, %d failed\n", res.Saved, res.Skipped, len(res.Failed))
	return 0
}

// batchParams resolves the factors for a -batch run: explicitly set flags
// win, then any BIMP_* environment defaults, then the built-ins.
func batchParams(fs *flag.FlagSet, sat, con, vig float64) stdimg.Params {
	p := stdimg.DefaultParams()
	for _, spec := range stdimg.ParamSpecs {
		// applyEnvDefaults has already folded the env into the registry
		_ = p.Set(spec.Name, spec.Default)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "saturation":
			p.Saturation = sat
		case "contrast":
			p.Contrast = con
		case "vignette":
			p.Vignette = vig
		}
	})
	return p
}

// applyEnvDefaults lets BIMP_SATURATION, BIMP_CONTRAST and BIMP_VIGNETTE
// (settable from a .env file next to the binary) override the built-in
// prompt defaults. The prompts still run; only the empty-input answer
// changes.
func applyEnvDefaults() {
	for i, spec := range stdimg.ParamSpecs {
		key := "BIMP_" + strings.ToUpper(spec.Name)
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ignoring %s=%q: %v\n", key, raw, err)
			continue
		}
		stdimg.ParamSpecs[i].Default = v
	}
}

// splitExtensions normalizes a comma-separated extension list to lowercase
// dotted form. An empty or all-blank list falls back to the defaults.
func splitExtensions(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		out = append(out, part)
	}
	if len(out) == 0 {
		return DefaultExtensions
	}
	return out
}
