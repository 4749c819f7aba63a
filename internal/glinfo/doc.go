// SPDX-License-Identifier: MPL-2.0

// Package glinfo interprets the strings a GL context reports about itself:
// the GL_VERSION string, the space-separated GL_EXTENSIONS list, and which
// entry points a given API version exposes.
package glinfo
