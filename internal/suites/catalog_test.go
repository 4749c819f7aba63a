// SPDX-License-Identifier: MPL-2.0

package suites

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/glbench/glbench/internal/benchmark"
	"github.com/glbench/glbench/internal/glerr"
	"github.com/glbench/glbench/internal/offscreen"

	"github.com/charmbracelet/log"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := Default(Options{Offscreen: offscreen.Config{Width: 16, Height: 16}})
	if err != nil {
		t.Fatalf("Default() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func newQuietRunner() *benchmark.Runner {
	return benchmark.NewRunner(
		benchmark.WithSink(nil),
		benchmark.WithLogger(log.NewWithOptions(io.Discard, log.Options{})),
	)
}

func TestDefault_Names(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	want := []string{OffscreenSuiteName, ErrorSuiteName, InfoSuiteName}
	if got := c.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestDefault_InvalidOffscreenConfig(t *testing.T) {
	t.Parallel()

	_, err := Default(Options{Offscreen: offscreen.Config{Width: -1, Height: 16}})
	if !errors.Is(err, glerr.ErrBadParameter) {
		t.Errorf("Default() error = %v, want EGL_BAD_PARAMETER", err)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	s, err := c.Lookup(ErrorSuiteName)
	if err != nil {
		t.Fatalf("Lookup(%q) unexpected error: %v", ErrorSuiteName, err)
	}
	if s.Name() != ErrorSuiteName {
		t.Errorf("Lookup() returned suite %q", s.Name())
	}

	_, err = c.Lookup("vulkan")
	if !errors.Is(err, ErrSuiteNotFound) {
		t.Fatalf("Lookup(vulkan) error = %v, want ErrSuiteNotFound", err)
	}
	var notFound *SuiteNotFoundError
	if !errors.As(err, &notFound) || !slices.Equal(notFound.Available, c.Names()) {
		t.Errorf("SuiteNotFoundError should list available suites, got: %v", err)
	}
}

func TestCatalog_Resolve(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	all, err := c.Resolve()
	if err != nil || len(all) != 3 {
		t.Fatalf("Resolve() = %d suites, %v; want 3, nil", len(all), err)
	}

	picked, err := c.Resolve(InfoSuiteName, OffscreenSuiteName)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if picked[0].Name() != InfoSuiteName || picked[1].Name() != OffscreenSuiteName {
		t.Errorf("Resolve() should keep the requested order, got %s, %s", picked[0].Name(), picked[1].Name())
	}

	if _, err := c.Resolve(InfoSuiteName, "missing"); !errors.Is(err, ErrSuiteNotFound) {
		t.Errorf("Resolve() with an unknown name error = %v", err)
	}
}

func TestCatalog_RegisterDuplicate(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	if err := c.Register(NewErrorSuite()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if err := c.Register(NewErrorSuite()); !errors.Is(err, ErrDuplicateSuite) {
		t.Errorf("second Register() error = %v, want ErrDuplicateSuite", err)
	}
}
