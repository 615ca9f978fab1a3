package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbakke/bimp/pkg/stdimg"
)

// PromptLine displays a prompt and reads a full line of input from the user.
// The returned string is trimmed of surrounding whitespace (including the newline).
func PromptLine(prompt string) (string, error) {
	return PromptLineReader(bufio.NewReader(os.Stdin), prompt)
}

// PromptLineReader is the reader-injecting variant of PromptLine. Callers that
// already hold a bufio.Reader should use this so buffered input is not lost to
// a second reader (tests use it too).
func PromptLineReader(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptFactor asks for one enhancement factor and re-prompts indefinitely on
// input that does not parse as a float. An empty line accepts the default.
func PromptFactor(reader *bufio.Reader, spec stdimg.ParamSpec) (float64, error) {
	for {
		raw, err := PromptLineReader(reader, spec.PromptText())
		if err != nil {
			return 0, err
		}
		v, perr := spec.ParseFactor(raw)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "%v\n", perr)
			continue
		}
		return v, nil
	}
}

// PromptParams walks the parameter registry and fills a Params from the
// user's answers, re-prompting per field until each parses.
func PromptParams(reader *bufio.Reader) (stdimg.Params, error) {
	p := stdimg.DefaultParams()
	for _, spec := range stdimg.ParamSpecs {
		v, err := PromptFactor(reader, spec)
		if err != nil {
			return p, err
		}
		if err := p.Set(spec.Name, v); err != nil {
			return p, err
		}
	}
	return p, nil
}

// PromptYesNo asks a y/n question and re-asks until the answer is one of
// y/yes/n/no (case-insensitive). Only the question is repeated; callers keep
// whatever state they were holding.
func PromptYesNo(reader *bufio.Reader, prompt string) (bool, error) {
	for {
		raw, err := PromptLineReader(reader, prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(os.Stderr, "please answer y or n\n")
	}
}
