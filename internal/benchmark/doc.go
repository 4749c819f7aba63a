// SPDX-License-Identifier: MPL-2.0

// Package benchmark declares, registers and times micro-benchmarks for the graphics
// binding layer.
//
// A benchmark is a zero-argument operation registered on a Suite together with a
// Spec (display name and repetition count). Operations registered without a Spec
// are kept in the suite but never executed. The Runner selects the marked
// operations of a suite, optionally restricted to ids starting with a prefix, and
// times each one over its declared repetitions:
//
//	suite := benchmark.NewSuite("offscreen").
//		MustAdd("RunClear", clear, benchmark.MustSpec("clear", benchmark.WithRepetitions(100))).
//		MustAdd("ResetState", reset, nil)
//
//	reports, err := benchmark.NewRunner().RunBenchmarks(suite, "Run")
//
// Execution is strictly sequential and stops at the first failing repetition.
package benchmark
