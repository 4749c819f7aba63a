// SPDX-License-Identifier: MPL-2.0

package benchmark

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
)

var (
	// ErrBenchmarkFailed is the sentinel error wrapped by RunError.
	ErrBenchmarkFailed = errors.New("benchmark failed")
	// ErrNilSuite is returned when RunBenchmarks is called without a suite.
	ErrNilSuite = errors.New("suite must not be nil")
)

type (
	// Runner times the benchmark operations of a suite. It keeps no state
	// between RunBenchmarks calls.
	Runner struct {
		clock  Clock
		sink   Sink
		logger *log.Logger
	}

	// RunnerOption configures a Runner.
	RunnerOption func(*Runner)

	// Outcome is the result of executing one benchmark: a Report on success,
	// or the error that stopped it.
	Outcome struct {
		Report Report
		Err    error
	}

	// RunError describes the benchmark that stopped a run. It wraps
	// ErrBenchmarkFailed and the error returned by the operation.
	RunError struct {
		Suite     string
		Benchmark string
		Operation string
		// Repetition is the 1-based invocation that failed.
		Repetition  int
		Repetitions int
		Cause       error
	}

	// PanicError is the cause recorded when a benchmark operation panics.
	PanicError struct {
		Value any
		Stack []byte
	}
)

// WithClock sets the time source used to measure benchmarks.
func WithClock(c Clock) RunnerOption {
	return func(r *Runner) {
		r.clock = c
	}
}

// WithSink sets where reports are emitted. The default discards them.
func WithSink(s Sink) RunnerOption {
	return func(r *Runner) {
		r.sink = s
	}
}

// WithOutput emits report lines to w.
func WithOutput(w io.Writer) RunnerOption {
	return WithSink(NewWriterSink(w))
}

// WithLogger sets the logger used for per-benchmark diagnostics.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner creates a Runner using the monotonic clock, writing report lines to
// stdout unless configured otherwise.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		clock: monotonicClock{},
		sink:  NewWriterSink(os.Stdout),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.clock == nil {
		r.clock = monotonicClock{}
	}
	if r.sink == nil {
		r.sink = discardSink{}
	}
	if r.logger == nil {
		r.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "benchmark"})
	}
	return r
}

// RunBenchmarks executes every operation of suite that carries a Spec and whose
// id starts with prefix (an empty prefix selects all of them), in registration
// order. Each benchmark is invoked the number of times its Spec declared when it
// was registered, back to back, and its total elapsed time is emitted as one Report.
//
// The run stops at the first failing invocation: the reports of the benchmarks
// that completed are returned together with a *RunError. No report is emitted
// for the failing benchmark.
func (r *Runner) RunBenchmarks(suite *Suite, prefix string) ([]Report, error) {
	if suite == nil {
		return nil, ErrNilSuite
	}

	selected := suite.Select(prefix)
	r.logger.Debug("running suite", "suite", suite.Name(), "prefix", prefix, "benchmarks", len(selected))

	reports := make([]Report, 0, len(selected))
	for _, op := range selected {
		outcome := r.execute(suite.Name(), op)
		if outcome.Err != nil {
			return reports, outcome.Err
		}
		if err := r.sink.Emit(outcome.Report); err != nil {
			return reports, fmt.Errorf("emit report %q: %w", outcome.Report.Name, err)
		}
		reports = append(reports, outcome.Report)
	}

	return reports, nil
}

// execute times a single benchmark operation.
func (r *Runner) execute(suiteName string, op Operation) Outcome {
	spec := op.Spec
	r.logger.Debug("starting benchmark", "benchmark", spec.Name(), "operation", op.ID, "repetitions", op.Repetitions)

	start := r.clock.Now()
	for i := 1; i <= op.Repetitions; i++ {
		if err := invoke(op.Func); err != nil {
			r.logger.Debug("benchmark failed", "benchmark", spec.Name(), "repetition", i, "err", err)
			return Outcome{Err: &RunError{
				Suite:       suiteName,
				Benchmark:   spec.Name(),
				Operation:   op.ID,
				Repetition:  i,
				Repetitions: op.Repetitions,
				Cause:       err,
			}}
		}
	}
	elapsed := r.clock.Since(start)

	r.logger.Debug("finished benchmark", "benchmark", spec.Name(), "elapsed", elapsed)
	return Outcome{Report: Report{Name: spec.Name(), Elapsed: elapsed}}
}

// invoke calls fn, converting a panic into a *PanicError.
func invoke(fn Func) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// Failed reports whether the benchmark stopped with an error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Error implements the error interface for RunError.
func (e *RunError) Error() string {
	return fmt.Sprintf("benchmark %q (suite %q, operation %s) failed on repetition %d/%d: %v",
		e.Benchmark, e.Suite, e.Operation, e.Repetition, e.Repetitions, e.Cause)
}

// Unwrap returns ErrBenchmarkFailed and the operation error for errors.Is() compatibility.
func (e *RunError) Unwrap() []error {
	return []error{ErrBenchmarkFailed, e.Cause}
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("benchmark panicked: %v", e.Value)
}
