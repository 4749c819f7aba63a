// SPDX-License-Identifier: MPL-2.0

// Package glerr maps GL and EGL error codes returned by the native binding layer
// to Go errors.
//
// Each non-success code has a sentinel (ErrInvalidEnum, ErrBadSurface, ...) so
// callers can branch with errors.Is, while *Error keeps the raw code and the name
// of the call that produced it:
//
//	err := glerr.Call("glTexImage2D", func() glerr.Code { return gl.GetError() })
//	if errors.Is(err, glerr.ErrOutOfMemory) { ... }
package glerr
