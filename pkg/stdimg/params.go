// Package stdimg implements the pure-Go enhancement engine: saturation and
// contrast scaling followed by a radial vignette composite. All operations
// return new images; inputs are never mutated.
package stdimg

import (
	"fmt"
	"strconv"
	"strings"
)

// Params holds the three enhancement factors. The transforms do not care
// whether the values came from defaults, flags, env, or interactive prompts.
type Params struct {
	Saturation float64 // 1.0 = unchanged, 0 = grayscale
	Contrast   float64 // 1.0 = unchanged, 0 = flat gray
	Vignette   float64 // fraction of min(w,h) left unveiled before darkening
}

// DefaultParams returns the stock treatment.
func DefaultParams() Params {
	return Params{Saturation: 1.3, Contrast: 1.1, Vignette: 0.8}
}

// ParamSpec describes one prompt-able parameter. Fields are textual and meant
// for help/prompt UI rather than machine-enforced typing.
type ParamSpec struct {
	Name        string
	Default     float64
	Description string
}

// ParamSpecs is the authoritative prompt order and help text for Params.
var ParamSpecs = []ParamSpec{
	{
		Name:        "saturation",
		Default:     1.3,
		Description: "color intensity multiplier (1.0 = unchanged, 0 = grayscale)",
	},
	{
		Name:        "contrast",
		Default:     1.1,
		Description: "contrast multiplier (1.0 = unchanged, 0 = flat gray)",
	},
	{
		Name:        "vignette",
		Default:     0.8,
		Description: "unveiled radius as a fraction of the shorter dimension (0..1]",
	},
}

// PromptText returns the prompt label for a spec, e.g.
// "saturation (color intensity multiplier ...) [1.3]: ".
func (p ParamSpec) PromptText() string {
	return fmt.Sprintf("%s (%s) [%s]: ", p.Name, p.Description,
		strconv.FormatFloat(p.Default, 'g', -1, 64))
}

// ParseFactor parses a parameter value. An empty string yields the spec's
// default; anything else must parse as a float.
func (p ParamSpec) ParseFactor(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return p.Default, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: expected a number, got %q", p.Name, raw)
	}
	return v, nil
}

// Set assigns a parsed value to the matching Params field.
func (pr *Params) Set(name string, v float64) error {
	switch name {
	case "saturation":
		pr.Saturation = v
	case "contrast":
		pr.Contrast = v
	case "vignette":
		pr.Vignette = v
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}
