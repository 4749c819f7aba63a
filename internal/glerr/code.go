// SPDX-License-Identifier: MPL-2.0

package glerr

import "fmt"

// GL error codes, as returned by glGetError.
const (
	NoError                     Code = 0
	InvalidEnum                 Code = 0x0500
	InvalidValue                Code = 0x0501
	InvalidOperation            Code = 0x0502
	StackOverflow               Code = 0x0503
	StackUnderflow              Code = 0x0504
	OutOfMemory                 Code = 0x0505
	InvalidFramebufferOperation Code = 0x0506
	ContextLost                 Code = 0x0507
)

// EGL error codes, as returned by eglGetError.
const (
	EGLSuccess           Code = 0x3000
	EGLNotInitialized    Code = 0x3001
	EGLBadAccess         Code = 0x3002
	EGLBadAlloc          Code = 0x3003
	EGLBadAttribute      Code = 0x3004
	EGLBadConfig         Code = 0x3005
	EGLBadContext        Code = 0x3006
	EGLBadCurrentSurface Code = 0x3007
	EGLBadDisplay        Code = 0x3008
	EGLBadMatch          Code = 0x3009
	EGLBadNativePixmap   Code = 0x300A
	EGLBadNativeWindow   Code = 0x300B
	EGLBadParameter      Code = 0x300C
	EGLBadSurface        Code = 0x300D
	EGLContextLost       Code = 0x300E
)

// Code is a GL or EGL error code.
type Code uint32

var codeNames = map[Code]string{
	NoError:                     "GL_NO_ERROR",
	InvalidEnum:                 "GL_INVALID_ENUM",
	InvalidValue:                "GL_INVALID_VALUE",
	InvalidOperation:            "GL_INVALID_OPERATION",
	StackOverflow:               "GL_STACK_OVERFLOW",
	StackUnderflow:              "GL_STACK_UNDERFLOW",
	OutOfMemory:                 "GL_OUT_OF_MEMORY",
	InvalidFramebufferOperation: "GL_INVALID_FRAMEBUFFER_OPERATION",
	ContextLost:                 "GL_CONTEXT_LOST",

	EGLSuccess:           "EGL_SUCCESS",
	EGLNotInitialized:    "EGL_NOT_INITIALIZED",
	EGLBadAccess:         "EGL_BAD_ACCESS",
	EGLBadAlloc:          "EGL_BAD_ALLOC",
	EGLBadAttribute:      "EGL_BAD_ATTRIBUTE",
	EGLBadConfig:         "EGL_BAD_CONFIG",
	EGLBadContext:        "EGL_BAD_CONTEXT",
	EGLBadCurrentSurface: "EGL_BAD_CURRENT_SURFACE",
	EGLBadDisplay:        "EGL_BAD_DISPLAY",
	EGLBadMatch:          "EGL_BAD_MATCH",
	EGLBadNativePixmap:   "EGL_BAD_NATIVE_PIXMAP",
	EGLBadNativeWindow:   "EGL_BAD_NATIVE_WINDOW",
	EGLBadParameter:      "EGL_BAD_PARAMETER",
	EGLBadSurface:        "EGL_BAD_SURFACE",
	EGLContextLost:       "EGL_CONTEXT_LOST",
}

// String returns the symbolic name of the code, or its hex value when unknown.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint32(c))
}

// IsSuccess reports whether the code signals no error.
func (c Code) IsSuccess() bool {
	return c == NoError || c == EGLSuccess
}

// IsEGL reports whether the code belongs to the EGL range.
func (c Code) IsEGL() bool {
	return c >= EGLSuccess && c <= EGLContextLost
}
