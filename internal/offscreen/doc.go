// SPDX-License-Identifier: MPL-2.0

// Package offscreen stands up an offscreen rendering context for benchmarks and
// tests. It renders in software through github.com/gogpu/gg, so no display,
// window or GPU driver is needed.
//
// Failures are reported with the EGL error a pbuffer-backed context would raise
// in the same situation (see package glerr), so callers written against the
// native binding layer can branch on the same sentinels.
package offscreen
