// SPDX-License-Identifier: MPL-2.0

package benchmark

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

type (
	// Report is the timing of one benchmark: the Spec name and the wall-clock
	// duration of all its repetitions combined.
	Report struct {
		Name    string
		Elapsed time.Duration
	}

	// Sink receives one Report per executed benchmark.
	Sink interface {
		Emit(r Report) error
	}

	// WriterSink writes each report as a single line to an io.Writer.
	WriterSink struct {
		w io.Writer
	}

	// LogSink writes each report through a structured logger.
	LogSink struct {
		logger *log.Logger
	}

	// MultiSink emits every report to each of its sinks in order.
	MultiSink []Sink

	// discardSink drops reports.
	discardSink struct{}
)

// ElapsedMillis returns the elapsed time in whole milliseconds, never negative.
func (r Report) ElapsedMillis() int64 {
	if r.Elapsed < 0 {
		return 0
	}
	return r.Elapsed.Milliseconds()
}

// String renders the report as "<name>: <elapsedMillis> [ms]".
func (r Report) String() string {
	return fmt.Sprintf("%s: %d [ms]", r.Name, r.ElapsedMillis())
}

// NewWriterSink creates a sink writing report lines to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes the report line.
func (s *WriterSink) Emit(r Report) error {
	_, err := fmt.Fprintln(s.w, r.String())
	return err
}

// NewLogSink creates a sink logging report lines at info level.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit logs the report line with the name and elapsed milliseconds as fields.
func (s *LogSink) Emit(r Report) error {
	s.logger.Info(r.String(), "benchmark", r.Name, "elapsed_ms", r.ElapsedMillis())
	return nil
}

// Emit forwards the report to every sink, stopping at the first error.
func (m MultiSink) Emit(r Report) error {
	for _, s := range m {
		if err := s.Emit(r); err != nil {
			return err
		}
	}
	return nil
}

func (discardSink) Emit(Report) error { return nil }
