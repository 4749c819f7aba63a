// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Surface: {
	name:    string
	width:   int & >=1
	height?: int & >=1
}
`

type surface struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	got, err := ParseAndDecode[surface](testSchema, []byte(`name: "pbuffer"
width: 64
`), "#Surface")
	if err != nil {
		t.Fatalf("ParseAndDecode() error: %v", err)
	}
	if got.Name != "pbuffer" || got.Width != 64 || got.Height != 0 {
		t.Errorf("ParseAndDecode() = %+v", got)
	}
}

func TestParseAndDecode_IntoMap(t *testing.T) {
	t.Parallel()

	got, err := ParseAndDecode[map[string]any](testSchema, []byte("name: \"a\"\nwidth: 8\n"), "#Surface", WithConcrete(false))
	if err != nil {
		t.Fatalf("ParseAndDecode() error: %v", err)
	}
	if _, ok := (*got)["width"]; !ok {
		t.Errorf("decoded map %v lacks width", *got)
	}
}

func TestParseAndDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		opts    []Option
		wantSub string
	}{
		{
			name:    "out of bound value",
			data:    "name: \"a\"\nwidth: 0\n",
			opts:    []Option{WithFilename("surface.cue")},
			wantSub: "surface.cue: width: invalid value 0",
		},
		{
			name:    "wrong type",
			data:    "name: 3\nwidth: 1\n",
			opts:    []Option{WithFilename("surface.cue")},
			wantSub: "name",
		},
		{
			name:    "unknown field",
			data:    "name: \"a\"\nwidth: 1\ndepth: 2\n",
			wantSub: "<input>",
		},
		{
			name:    "syntax error",
			data:    "name: {",
			opts:    []Option{WithFilename("broken.cue")},
			wantSub: "broken.cue",
		},
		{
			name:    "too large",
			data:    "name: \"abcdefgh\"\nwidth: 1\n",
			opts:    []Option{WithMaxFileSize(4)},
			wantSub: "exceeds maximum 4 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseAndDecode[surface](testSchema, []byte(tt.data), "#Surface", tt.opts...)
			if err == nil {
				t.Fatal("ParseAndDecode() expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should contain %q", err, tt.wantSub)
			}
			if strings.Contains(err.Error(), "#Surface.") {
				t.Errorf("error %q should not name the schema definition", err)
			}
		})
	}
}

func TestParseAndDecode_MissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecode[surface](testSchema, []byte(`name: "a"`), "#Missing")
	if err == nil || !strings.Contains(err.Error(), "#Missing") {
		t.Errorf("error = %v, want missing definition", err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"log"}, "log"},
		{[]string{"offscreen", "width"}, "offscreen.width"},
		{[]string{"run", "suites", "0"}, "run.suites[0]"},
		{[]string{"0", "x"}, "0.x"},
		{[]string{"#Config", "offscreen", "width"}, "offscreen.width"},
		{[]string{"#Config", "run", "suites", "1"}, "run.suites[1]"},
		{[]string{"#Config"}, ""},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize([]byte("1234"), 4, "f"); err != nil {
		t.Errorf("CheckFileSize at limit: %v", err)
	}
	if err := CheckFileSize([]byte("12345"), 4, "f"); err == nil {
		t.Error("CheckFileSize over limit should fail")
	}
}

func TestFormatError_Nil(t *testing.T) {
	t.Parallel()

	if FormatError(nil, "x") != nil {
		t.Error("FormatError(nil) should be nil")
	}
}
