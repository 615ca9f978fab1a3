package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// SelectDirWithFzf launches fzf over the directories under startDir and
// returns the selected path. The preview pane lists the image files the
// selection contains so the user can see what a run would touch. Requires
// `find` and `fzf` on PATH; callers fall back to a typed prompt on error.
func SelectDirWithFzf(startDir string) (string, error) {
	quotedDir := strconv.Quote(startDir)

	// fzf --preview takes a single command line; {} is the current selection.
	previewCmd := "find {} -maxdepth 1 -type f \\( -iname '*.jpg' -o -iname '*.jpeg' -o -iname '*.png' -o -iname '*.bmp' \\) 2>/dev/null | head -40"

	cmdStr := fmt.Sprintf(
		"find %s -type d | fzf --height 100%% --border --prompt='Directory> ' --preview=%q --preview-window='right:50%%'",
		quotedDir, previewCmd,
	)
	cmd := exec.Command("bash", "-lc", cmdStr)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		clearKittyImages()
		return "", fmt.Errorf("error running fzf: %w", err)
	}
	clearKittyImages()

	selection := strings.TrimSpace(out.String())
	if selection == "" {
		return "", fmt.Errorf("no directory selected")
	}
	return selection, nil
}

// clearKittyImages emits the kitty graphics "delete" control sequence.
// Terminals that don't understand it will ignore it.
func clearKittyImages() {
	fmt.Fprint(os.Stdout, "\x1b_Ga=d\x1b\\")
}
