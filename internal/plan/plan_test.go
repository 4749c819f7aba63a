// SPDX-License-Identifier: MPL-2.0

package plan

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := Parse(strings.NewReader(`
[[run]]
suite = "offscreen"
prefix = "fill"

[[run]]
suite = "glerr"

[[run]]
suite = "offscreen"
prefix = "readback"
`), "bench.toml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []Step{
		{Suite: "offscreen", Prefix: "fill"},
		{Suite: "glerr"},
		{Suite: "offscreen", Prefix: "readback"},
	}
	if !slices.Equal(p.Steps, want) {
		t.Errorf("Steps = %+v, want %+v", p.Steps, want)
	}
	if got := p.Suites(); !slices.Equal(got, []string{"offscreen", "glerr", "offscreen"}) {
		t.Errorf("Suites() = %v", got)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantIs   error
		wantLine int
	}{
		{name: "empty", input: "", wantIs: ErrEmptyPlan},
		{name: "missing suite", input: "[[run]]\nprefix = \"Run\"\n", wantIs: ErrMissingSuite},
		{name: "blank suite", input: "[[run]]\nsuite = \"  \"\n", wantIs: ErrMissingSuite},
		{name: "syntax error", input: "[[run]]\nsuite = \n", wantLine: 2},
		{name: "unknown key", input: "[[run]]\nsuite = \"glerr\"\nrepeat = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(strings.NewReader(tt.input), "bench.toml")
			if !errors.Is(err, ErrInvalidPlan) {
				t.Fatalf("error = %v, want ErrInvalidPlan", err)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want %v", err, tt.wantIs)
			}

			var perr *InvalidPlanError
			if !errors.As(err, &perr) {
				t.Fatalf("error should be *InvalidPlanError, got %T", err)
			}
			if perr.Source != "bench.toml" {
				t.Errorf("Source = %q", perr.Source)
			}
			if tt.wantLine != 0 && perr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", perr.Line, tt.wantLine)
			}
		})
	}
}

func TestParse_UnknownKeyIsStrictError(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("[[run]]\nsuite = \"glerr\"\nrepeat = 3\n"), "bench.toml")

	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		t.Fatalf("error should wrap *toml.StrictMissingError, got %v", err)
	}
}

func TestValidate_ReportsEveryStep(t *testing.T) {
	t.Parallel()

	p := &Plan{Steps: []Step{{Suite: ""}, {Suite: "glinfo"}, {Suite: " "}}}
	err := p.Validate()

	var stepErr *InvalidStepError
	if !errors.As(err, &stepErr) || stepErr.Index != 0 {
		t.Fatalf("error = %v, want first InvalidStepError at index 0", err)
	}
	if !strings.Contains(err.Error(), "run[2]") {
		t.Errorf("error should mention run[2], got %q", err)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bench.toml")
	if err := os.WriteFile(path, []byte("[[run]]\nsuite = \"glinfo\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(p.Steps) != 1 || p.Steps[0].Suite != "glinfo" {
		t.Errorf("Steps = %+v", p.Steps)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}
