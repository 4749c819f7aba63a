// SPDX-License-Identifier: MPL-2.0

package glerr

import (
	"errors"
	"fmt"
)

var (
	// Sentinels for GL codes.
	ErrInvalidEnum                 = errors.New("invalid enum")
	ErrInvalidValue                = errors.New("invalid value")
	ErrInvalidOperation            = errors.New("invalid operation")
	ErrStackOverflow               = errors.New("stack overflow")
	ErrStackUnderflow              = errors.New("stack underflow")
	ErrOutOfMemory                 = errors.New("out of memory")
	ErrInvalidFramebufferOperation = errors.New("invalid framebuffer operation")
	ErrContextLost                 = errors.New("context lost")

	// Sentinels for EGL codes.
	ErrNotInitialized    = errors.New("display not initialized")
	ErrBadAccess         = errors.New("bad access")
	ErrBadAlloc          = errors.New("bad alloc")
	ErrBadAttribute      = errors.New("bad attribute")
	ErrBadConfig         = errors.New("bad config")
	ErrBadContext        = errors.New("bad context")
	ErrBadCurrentSurface = errors.New("bad current surface")
	ErrBadDisplay        = errors.New("bad display")
	ErrBadMatch          = errors.New("bad match")
	ErrBadNativePixmap   = errors.New("bad native pixmap")
	ErrBadNativeWindow   = errors.New("bad native window")
	ErrBadParameter      = errors.New("bad parameter")
	ErrBadSurface        = errors.New("bad surface")

	// ErrUnknown matches codes outside the GL and EGL tables.
	ErrUnknown = errors.New("unknown error code")
)

// sentinels maps each failure code to its sentinel. GL_CONTEXT_LOST and
// EGL_CONTEXT_LOST share ErrContextLost.
var sentinels = map[Code]error{
	InvalidEnum:                 ErrInvalidEnum,
	InvalidValue:                ErrInvalidValue,
	InvalidOperation:            ErrInvalidOperation,
	StackOverflow:               ErrStackOverflow,
	StackUnderflow:              ErrStackUnderflow,
	OutOfMemory:                 ErrOutOfMemory,
	InvalidFramebufferOperation: ErrInvalidFramebufferOperation,
	ContextLost:                 ErrContextLost,

	EGLNotInitialized:    ErrNotInitialized,
	EGLBadAccess:         ErrBadAccess,
	EGLBadAlloc:          ErrBadAlloc,
	EGLBadAttribute:      ErrBadAttribute,
	EGLBadConfig:         ErrBadConfig,
	EGLBadContext:        ErrBadContext,
	EGLBadCurrentSurface: ErrBadCurrentSurface,
	EGLBadDisplay:        ErrBadDisplay,
	EGLBadMatch:          ErrBadMatch,
	EGLBadNativePixmap:   ErrBadNativePixmap,
	EGLBadNativeWindow:   ErrBadNativeWindow,
	EGLBadParameter:      ErrBadParameter,
	EGLBadSurface:        ErrBadSurface,
	EGLContextLost:       ErrContextLost,
}

// Error is a failed GL or EGL call.
type Error struct {
	Code Code
	// Op names the native call, when known.
	Op string
}

// New returns the error for code, or nil for a success code.
func New(code Code) error {
	return Wrap("", code)
}

// Wrap returns the error for code attributed to op, or nil for a success code.
func Wrap(op string, code Code) error {
	if code.IsSuccess() {
		return nil
	}
	return &Error{Code: code, Op: op}
}

// Call invokes fn and converts the code it returns.
func Call(op string, fn func() Code) error {
	return Wrap(op, fn())
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Code, e.sentinel())
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.sentinel())
}

// Unwrap returns the sentinel for the code for errors.Is() compatibility.
func (e *Error) Unwrap() error {
	return e.sentinel()
}

func (e *Error) sentinel() error {
	if err, ok := sentinels[e.Code]; ok {
		return err
	}
	return ErrUnknown
}

// CodeOf extracts the code from err, returning false when err is not an *Error.
func CodeOf(err error) (Code, bool) {
	var glErr *Error
	if errors.As(err, &glErr) {
		return glErr.Code, true
	}
	return 0, false
}
