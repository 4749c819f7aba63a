// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and hints
// for fixing it. The issue catalog holds Markdown guidance for the failures a
// glbench user can hit, rendered with glamour when verbose output is requested.
package issue
