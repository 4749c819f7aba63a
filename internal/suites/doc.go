// SPDX-License-Identifier: MPL-2.0

// Package suites defines the built-in benchmark suites and the catalog the CLI
// selects them from.
//
// Suites are registered explicitly, in a fixed order, instead of being found by
// scanning for marked functions. Each suite also carries helper operations that
// are not benchmarks; the runner skips them even when their id matches a prefix.
package suites
