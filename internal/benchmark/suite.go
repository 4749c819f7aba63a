// SPDX-License-Identifier: MPL-2.0

package benchmark

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOperation is the sentinel error wrapped by InvalidOperationError.
	ErrInvalidOperation = errors.New("invalid benchmark operation")
	// ErrDuplicateOperation is returned when an operation id is registered twice on a suite.
	ErrDuplicateOperation = errors.New("duplicate operation id")
	// ErrSpecAlreadyAttached is returned when one Spec is attached to a second operation.
	ErrSpecAlreadyAttached = errors.New("spec is already attached to another operation")
)

type (
	// Func is a benchmark operation. It takes no arguments and reports only
	// whether it failed.
	Func func() error

	// Operation is a registered suite member. Spec is nil for operations that
	// are not benchmarks; those are never executed by the Runner.
	Operation struct {
		ID   string
		Func Func
		Spec *Spec
		// Repetitions is Spec.Repetitions as validated at registration. Later
		// changes to the Spec do not affect it.
		Repetitions int
	}

	// Suite is an ordered registry of operations. Registration order is the
	// execution order.
	Suite struct {
		name string
		ops  []Operation
		ids  map[string]struct{}
	}

	// InvalidOperationError is returned when an operation cannot be registered.
	// It wraps ErrInvalidOperation for errors.Is() compatibility.
	InvalidOperationError struct {
		Suite string
		ID    string
		Cause error
	}
)

// NewSuite creates an empty suite.
func NewSuite(name string) *Suite {
	return &Suite{name: name, ids: make(map[string]struct{})}
}

// Name returns the suite name.
func (s *Suite) Name() string {
	return s.name
}

// Add registers an operation under id. A nil spec registers an unmarked operation.
func (s *Suite) Add(id string, fn Func, spec *Spec) error {
	if strings.TrimSpace(id) == "" {
		return &InvalidOperationError{Suite: s.name, ID: id, Cause: errors.New("operation id must not be empty")}
	}
	if fn == nil {
		return &InvalidOperationError{Suite: s.name, ID: id, Cause: errors.New("operation func must not be nil")}
	}
	if _, exists := s.ids[id]; exists {
		return &InvalidOperationError{Suite: s.name, ID: id, Cause: ErrDuplicateOperation}
	}
	var repetitions int
	if spec != nil {
		if spec.attached {
			return &InvalidOperationError{Suite: s.name, ID: id, Cause: ErrSpecAlreadyAttached}
		}
		if err := spec.Validate(); err != nil {
			return &InvalidOperationError{Suite: s.name, ID: id, Cause: err}
		}
		spec.attached = true
		repetitions = spec.Repetitions
	}

	s.ids[id] = struct{}{}
	s.ops = append(s.ops, Operation{ID: id, Func: fn, Spec: spec, Repetitions: repetitions})
	return nil
}

// MustAdd is like Add but panics on a registration error. It returns the suite
// so that registrations can be chained at construction time.
func (s *Suite) MustAdd(id string, fn Func, spec *Spec) *Suite {
	if err := s.Add(id, fn, spec); err != nil {
		panic(err)
	}
	return s
}

// Operations returns every registered operation in registration order.
func (s *Suite) Operations() []Operation {
	out := make([]Operation, len(s.ops))
	copy(out, s.ops)
	return out
}

// Select returns the benchmark operations whose id starts with prefix, in
// registration order. The comparison is case-sensitive. An empty prefix selects
// every operation that carries a Spec.
func (s *Suite) Select(prefix string) []Operation {
	var selected []Operation
	for _, op := range s.ops {
		if !strings.HasPrefix(op.ID, prefix) {
			continue
		}
		if op.Spec == nil {
			continue
		}
		selected = append(selected, op)
	}
	return selected
}

// Error implements the error interface for InvalidOperationError.
func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("suite %q: operation %q: %v", e.Suite, e.ID, e.Cause)
}

// Unwrap returns ErrInvalidOperation and the cause for errors.Is() compatibility.
func (e *InvalidOperationError) Unwrap() []error {
	return []error{ErrInvalidOperation, e.Cause}
}
