package cli

import (
	"bufio"
	"strings"
	"testing"

	"github.com/pbakke/bimp/pkg/stdimg"
)

func promptReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestPromptFactorAcceptsValue(t *testing.T) {
	v, err := PromptFactor(promptReader("1.5\n"), stdimg.ParamSpecs[0])
	if err != nil {
		t.Fatalf("PromptFactor: %v", err)
	}
	if v != 1.5 {
		t.Errorf("got %v, want 1.5", v)
	}
}

func TestPromptFactorEmptyUsesDefault(t *testing.T) {
	spec := stdimg.ParamSpecs[0]
	v, err := PromptFactor(promptReader("\n"), spec)
	if err != nil {
		t.Fatalf("PromptFactor: %v", err)
	}
	if v != spec.Default {
		t.Errorf("got %v, want default %v", v, spec.Default)
	}
}

func TestPromptFactorRepromptsOnGarbage(t *testing.T) {
	v, err := PromptFactor(promptReader("abc\n..\n2.25\n"), stdimg.ParamSpecs[0])
	if err != nil {
		t.Fatalf("PromptFactor: %v", err)
	}
	if v != 2.25 {
		t.Errorf("got %v, want 2.25 after re-prompts", v)
	}
}

func TestPromptParamsDefaults(t *testing.T) {
	p, err := PromptParams(promptReader("\n\n\n"))
	if err != nil {
		t.Fatalf("PromptParams: %v", err)
	}
	want := stdimg.DefaultParams()
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}
}

func TestPromptParamsMixed(t *testing.T) {
	// saturation overridden, contrast default, vignette overridden
	p, err := PromptParams(promptReader("2.0\n\n0.5\n"))
	if err != nil {
		t.Fatalf("PromptParams: %v", err)
	}
	if p.Saturation != 2.0 || p.Contrast != stdimg.DefaultParams().Contrast || p.Vignette != 0.5 {
		t.Errorf("got %+v", p)
	}
}

func TestPromptYesNo(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"No\n", false},
		{"maybe\nwhat\ny\n", true},
	}
	for _, c := range cases {
		got, err := PromptYesNo(promptReader(c.input), "ok? ")
		if err != nil {
			t.Fatalf("PromptYesNo(%q): %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("PromptYesNo(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestSplitExtensions(t *testing.T) {
	got := splitExtensions("PNG, .jpg ,,webp")
	want := []string{".png", ".jpg", ".webp"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}
