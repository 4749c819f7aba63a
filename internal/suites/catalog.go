// SPDX-License-Identifier: MPL-2.0

package suites

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/glbench/glbench/internal/benchmark"
	"github.com/glbench/glbench/internal/offscreen"
)

var (
	// ErrSuiteNotFound is the sentinel error wrapped by SuiteNotFoundError.
	ErrSuiteNotFound = errors.New("suite not found")
	// ErrDuplicateSuite is returned when two suites with the same name are registered.
	ErrDuplicateSuite = errors.New("duplicate suite")
)

type (
	// Catalog holds suites in registration order, together with the fixtures
	// they depend on.
	Catalog struct {
		suites   []*benchmark.Suite
		byName   map[string]*benchmark.Suite
		fixtures []io.Closer
	}

	// Options configures the fixtures of the default catalog.
	Options struct {
		Offscreen offscreen.Config
	}

	// SuiteNotFoundError is returned by Lookup for unregistered names.
	// It wraps ErrSuiteNotFound for errors.Is() compatibility.
	SuiteNotFoundError struct {
		Name      string
		Available []string
	}
)

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]*benchmark.Suite)}
}

// Default builds the catalog of built-in suites: offscreen, glerr, glinfo.
// The returned catalog owns an offscreen context; call Close when done.
func Default(opts Options) (*Catalog, error) {
	if opts.Offscreen == (offscreen.Config{}) {
		opts.Offscreen = offscreen.DefaultConfig()
	}

	surface, err := offscreen.New(opts.Offscreen)
	if err != nil {
		return nil, fmt.Errorf("create offscreen fixture: %w", err)
	}

	c := NewCatalog()
	c.fixtures = append(c.fixtures, surface)

	for _, s := range []*benchmark.Suite{
		NewOffscreenSuite(surface),
		NewErrorSuite(),
		NewInfoSuite(),
	} {
		if err := c.Register(s); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}

// Register adds a suite to the end of the catalog.
func (c *Catalog) Register(s *benchmark.Suite) error {
	if _, exists := c.byName[s.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSuite, s.Name())
	}
	c.byName[s.Name()] = s
	c.suites = append(c.suites, s)
	return nil
}

// Lookup returns the suite registered under name.
func (c *Catalog) Lookup(name string) (*benchmark.Suite, error) {
	s, ok := c.byName[name]
	if !ok {
		return nil, &SuiteNotFoundError{Name: name, Available: c.Names()}
	}
	return s, nil
}

// Resolve looks up each name in order. With no names it returns every suite.
func (c *Catalog) Resolve(names ...string) ([]*benchmark.Suite, error) {
	if len(names) == 0 {
		return c.Suites(), nil
	}
	out := make([]*benchmark.Suite, 0, len(names))
	for _, name := range names {
		s, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Suites returns the registered suites in order.
func (c *Catalog) Suites() []*benchmark.Suite {
	out := make([]*benchmark.Suite, len(c.suites))
	copy(out, c.suites)
	return out
}

// Names returns the registered suite names in order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.suites))
	for _, s := range c.suites {
		names = append(names, s.Name())
	}
	return names
}

// Close releases the fixtures owned by the catalog.
func (c *Catalog) Close() error {
	var errs []error
	for _, f := range c.fixtures {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.fixtures = nil
	return errors.Join(errs...)
}

// Error implements the error interface for SuiteNotFoundError.
func (e *SuiteNotFoundError) Error() string {
	return fmt.Sprintf("suite %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Unwrap returns ErrSuiteNotFound for errors.Is() compatibility.
func (e *SuiteNotFoundError) Unwrap() error { return ErrSuiteNotFound }
