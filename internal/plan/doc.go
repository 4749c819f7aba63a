// SPDX-License-Identifier: MPL-2.0

// Package plan reads run plans: TOML files listing the suites to benchmark, in
// order, each with an optional operation prefix.
//
//	[[run]]
//	suite = "offscreen"
//	prefix = "Run"
//
//	[[run]]
//	suite = "glerr"
package plan
