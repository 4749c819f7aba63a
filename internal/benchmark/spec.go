// SPDX-License-Identifier: MPL-2.0

package benchmark

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultRepetitions is the repetition count of a Spec declared without WithRepetitions.
const DefaultRepetitions = 1

var (
	// ErrInvalidSpec is the sentinel error wrapped by InvalidSpecError.
	ErrInvalidSpec = errors.New("invalid benchmark spec")
	// ErrEmptyName is returned when a Spec is declared without a name.
	ErrEmptyName = errors.New("benchmark name must not be empty")
	// ErrInvalidRepetitions is returned when a Spec carries a non-positive repetition count.
	ErrInvalidRepetitions = errors.New("benchmark repetitions must be positive")
)

type (
	// Spec is the declaration attached to a benchmark operation: the name shown in
	// reports and the number of invocations timed per report.
	//
	// The name is fixed at construction. Repetitions may be changed at the
	// declaration site before the Spec is attached to an operation. The count is
	// captured on attachment; later changes are ignored. The harness never
	// modifies it.
	Spec struct {
		name string
		// Repetitions is the number of times the operation is invoked per report.
		Repetitions int

		attached bool
	}

	// SpecOption customizes a Spec at declaration time.
	SpecOption func(*Spec)

	// InvalidSpecError is returned when a Spec cannot be declared or attached.
	// It wraps ErrInvalidSpec for errors.Is() compatibility and carries the
	// field-level cause.
	InvalidSpecError struct {
		Name  string
		Cause error
	}
)

// WithRepetitions sets the number of invocations timed per report.
func WithRepetitions(n int) SpecOption {
	return func(s *Spec) {
		s.Repetitions = n
	}
}

// NewSpec declares a benchmark with the given display name.
// It fails when the name is empty or whitespace-only.
func NewSpec(name string, opts ...SpecOption) (*Spec, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &InvalidSpecError{Name: name, Cause: ErrEmptyName}
	}

	s := &Spec{name: name, Repetitions: DefaultRepetitions}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// MustSpec is like NewSpec but panics when the declaration is invalid.
// It is intended for suite definitions, where a missing name is a programming error.
func MustSpec(name string, opts ...SpecOption) *Spec {
	s, err := NewSpec(name, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the display name used in reports.
func (s *Spec) Name() string {
	return s.name
}

// Validate reports whether the Spec can be attached to an operation.
func (s *Spec) Validate() error {
	if strings.TrimSpace(s.name) == "" {
		return &InvalidSpecError{Name: s.name, Cause: ErrEmptyName}
	}
	if s.Repetitions < 1 {
		return &InvalidSpecError{
			Name:  s.name,
			Cause: fmt.Errorf("%w: got %d", ErrInvalidRepetitions, s.Repetitions),
		}
	}
	return nil
}

// Error implements the error interface for InvalidSpecError.
func (e *InvalidSpecError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid benchmark spec: %v", e.Cause)
	}
	return fmt.Sprintf("invalid benchmark spec %q: %v", e.Name, e.Cause)
}

// Unwrap returns ErrInvalidSpec and the field-level cause for errors.Is() compatibility.
func (e *InvalidSpecError) Unwrap() []error {
	return []error{ErrInvalidSpec, e.Cause}
}
