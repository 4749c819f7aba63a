// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the glbench CLI.
//
// The command tree is built by NewRootCommand from an App, which carries the
// configuration provider, the suite catalog factory and the output streams.
// Execute wires the production App and runs the tree through fang.
package cmd
