// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by glbench tests: a controllable
// clock for deterministic benchmark timings, counting operations, and
// environment isolation for configuration lookups.
package testutil
