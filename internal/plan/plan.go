// SPDX-License-Identifier: MPL-2.0

package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glbench/glbench/internal/cueutil"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrInvalidPlan is the sentinel error wrapped by every plan parse failure.
	ErrInvalidPlan = errors.New("invalid run plan")
	// ErrEmptyPlan is returned for a plan without [[run]] entries.
	ErrEmptyPlan = errors.New("run plan has no [[run]] entries")
	// ErrMissingSuite is returned for a step without a suite name.
	ErrMissingSuite = errors.New("suite is required")
)

type (
	// Step selects the benchmarks of one suite.
	Step struct {
		Suite string `toml:"suite"`
		// Prefix filters operation ids; empty selects every benchmark.
		Prefix string `toml:"prefix"`
	}

	// Plan is an ordered list of steps.
	Plan struct {
		Steps []Step `toml:"run"`
	}

	// InvalidPlanError describes a plan that could not be decoded or validated.
	InvalidPlanError struct {
		Source string
		// Line is the 1-based line of a syntax error, or 0.
		Line  int
		Cause error
	}

	// InvalidStepError identifies the offending [[run]] entry.
	InvalidStepError struct {
		// Index is the 0-based position in the plan.
		Index int
		Cause error
	}
)

// Load reads and validates the plan at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run plan: %w", err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, &InvalidPlanError{Source: path, Cause: err}
	}
	return Parse(bytes.NewReader(data), path)
}

// Parse decodes and validates a plan. Unknown keys are rejected.
func Parse(r io.Reader, source string) (*Plan, error) {
	var p Plan
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		perr := &InvalidPlanError{Source: source, Cause: err}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			perr.Line, _ = decodeErr.Position()
		}
		return nil, perr
	}

	if err := p.Validate(); err != nil {
		return nil, &InvalidPlanError{Source: source, Cause: err}
	}
	return &p, nil
}

// Validate checks that the plan has at least one step and every step names a suite.
func (p *Plan) Validate() error {
	if len(p.Steps) == 0 {
		return ErrEmptyPlan
	}
	var errs []error
	for i, step := range p.Steps {
		if strings.TrimSpace(step.Suite) == "" {
			errs = append(errs, &InvalidStepError{Index: i, Cause: ErrMissingSuite})
		}
	}
	return errors.Join(errs...)
}

// Suites returns the suite names in plan order, duplicates included.
func (p *Plan) Suites() []string {
	names := make([]string, 0, len(p.Steps))
	for _, step := range p.Steps {
		names = append(names, step.Suite)
	}
	return names
}

// Error implements the error interface for InvalidPlanError.
func (e *InvalidPlanError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Cause)
}

// Unwrap returns ErrInvalidPlan and the underlying cause.
func (e *InvalidPlanError) Unwrap() []error {
	return []error{ErrInvalidPlan, e.Cause}
}

// Error implements the error interface for InvalidStepError.
func (e *InvalidStepError) Error() string {
	return fmt.Sprintf("run[%d]: %v", e.Index, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *InvalidStepError) Unwrap() error {
	return e.Cause
}
