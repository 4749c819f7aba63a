// SPDX-License-Identifier: MPL-2.0

package suites

import (
	"image/color"

	"github.com/glbench/glbench/internal/benchmark"
	"github.com/glbench/glbench/internal/offscreen"
)

// OffscreenSuiteName is the name of the rendering suite.
const OffscreenSuiteName = "offscreen"

var (
	clearColor = color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}
	fillColor  = color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF}
)

// NewOffscreenSuite benchmarks draw and readback calls against surface. The
// surface is shared by every operation; ResetState restores it between runs.
func NewOffscreenSuite(surface *offscreen.Context) *benchmark.Suite {
	w, h := float64(surface.Width()), float64(surface.Height())

	return benchmark.NewSuite(OffscreenSuiteName).
		MustAdd("RunClear", func() error {
			return surface.Clear(clearColor)
		}, benchmark.MustSpec("clear", benchmark.WithRepetitions(100))).
		MustAdd("RunFillRect", func() error {
			return surface.FillRect(w/4, h/4, w/2, h/2, fillColor)
		}, benchmark.MustSpec("fill-rect", benchmark.WithRepetitions(100))).
		MustAdd("RunFillCircle", func() error {
			return surface.FillCircle(w/2, h/2, min(w, h)/3, fillColor)
		}, benchmark.MustSpec("fill-circle", benchmark.WithRepetitions(100))).
		MustAdd("RunReadback", func() error {
			_, err := surface.Readback()
			return err
		}, benchmark.MustSpec("readback", benchmark.WithRepetitions(10))).
		MustAdd("RunReadbackScaled", func() error {
			_, err := surface.ReadbackScaled(surface.Width()/2, surface.Height()/2)
			return err
		}, benchmark.MustSpec("readback-scaled", benchmark.WithRepetitions(10))).
		MustAdd("ResetState", func() error {
			return surface.Clear(color.Black)
		}, nil)
}
