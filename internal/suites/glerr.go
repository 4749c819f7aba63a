// SPDX-License-Identifier: MPL-2.0

package suites

import (
	"errors"
	"fmt"

	"github.com/glbench/glbench/internal/benchmark"
	"github.com/glbench/glbench/internal/glerr"
)

// ErrorSuiteName is the name of the error-mapping suite.
const ErrorSuiteName = "glerr"

var (
	glCodes = []glerr.Code{
		glerr.InvalidEnum, glerr.InvalidValue, glerr.InvalidOperation, glerr.StackOverflow,
		glerr.StackUnderflow, glerr.OutOfMemory, glerr.InvalidFramebufferOperation, glerr.ContextLost,
	}
	eglCodes = []glerr.Code{
		glerr.EGLNotInitialized, glerr.EGLBadAccess, glerr.EGLBadAlloc, glerr.EGLBadAttribute,
		glerr.EGLBadConfig, glerr.EGLBadContext, glerr.EGLBadCurrentSurface, glerr.EGLBadDisplay,
		glerr.EGLBadMatch, glerr.EGLBadNativePixmap, glerr.EGLBadNativeWindow, glerr.EGLBadParameter,
		glerr.EGLBadSurface, glerr.EGLContextLost,
	}
)

// NewErrorSuite benchmarks the conversion of native error codes into Go errors.
func NewErrorSuite() *benchmark.Suite {
	return benchmark.NewSuite(ErrorSuiteName).
		MustAdd("RunMapGLErrors", func() error {
			return mapCodes(glCodes)
		}, benchmark.MustSpec("map-gl-errors", benchmark.WithRepetitions(1000))).
		MustAdd("RunMapEGLErrors", func() error {
			return mapCodes(eglCodes)
		}, benchmark.MustSpec("map-egl-errors", benchmark.WithRepetitions(1000))).
		MustAdd("RunCallSuccess", func() error {
			return glerr.Call("glFlush", func() glerr.Code { return glerr.NoError })
		}, benchmark.MustSpec("call-success", benchmark.WithRepetitions(10000))).
		MustAdd("CheckRoundTrip", func() error {
			return mapCodes(append(append([]glerr.Code{}, glCodes...), eglCodes...))
		}, nil)
}

// mapCodes converts each code and checks that the code survives the round trip.
func mapCodes(codes []glerr.Code) error {
	for _, code := range codes {
		err := glerr.Wrap("glGetError", code)
		if err == nil || errors.Is(err, glerr.ErrUnknown) {
			return fmt.Errorf("code %s has no sentinel", code)
		}
		if got, ok := glerr.CodeOf(err); !ok || got != code {
			return fmt.Errorf("code %s mapped back to %s", code, got)
		}
	}
	return nil
}
