// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	t.Parallel()

	ids := []Id{
		ConfigLoadFailedId,
		SuiteNotFoundId,
		BenchmarkFailedId,
		ContextCreateFailedId,
		PlanParseErrorId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true

		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil", id)
		}
	}

	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1", ConfigLoadFailedId)
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	if got := Get(Id(9999)); got != nil {
		t.Errorf("Get(9999) = %v, want nil", got)
	}
}

func TestValues_OrderedById(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not ordered: %d before %d", values[i-1].Id(), values[i].Id())
		}
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	t.Parallel()

	msg := Get(SuiteNotFoundId).MarkdownMsg()
	if !strings.Contains(string(msg), "Suite not found") {
		t.Errorf("MarkdownMsg() = %q, should mention the missing suite", msg)
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	t.Parallel()

	i := &Issue{id: BenchmarkFailedId, docLinks: []HttpLink{"https://example.com/docs"}}
	links := i.DocLinks()
	links[0] = "changed"

	if i.DocLinks()[0] != "https://example.com/docs" {
		t.Error("DocLinks() should return a copy")
	}
	if len(i.ExtLinks()) != 0 {
		t.Errorf("ExtLinks() = %v, want empty", i.ExtLinks())
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	for _, i := range Values() {
		out, err := i.Render("dark")
		if err != nil {
			t.Errorf("Render(%d) error: %v", i.Id(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("Render(%d) returned empty output", i.Id())
		}
	}
}

func TestIssue_RenderIncludesLinks(t *testing.T) {
	t.Parallel()

	i := &Issue{
		id:       PlanParseErrorId,
		mdMsg:    "# Plan",
		extLinks: []HttpLink{"https://toml.io/en/v1.0.0"},
	}
	out, err := i.Render("notty")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "toml.io") {
		t.Errorf("Render() output should contain the external link:\n%s", out)
	}
}
