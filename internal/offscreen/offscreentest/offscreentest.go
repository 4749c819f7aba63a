// SPDX-License-Identifier: MPL-2.0

// Package offscreentest provides test helpers that stand up offscreen contexts.
package offscreentest

import (
	"testing"

	"github.com/glbench/glbench/internal/offscreen"
)

// New creates an offscreen context of the given size and closes it when the
// test finishes. The test fails immediately if the context cannot be created.
func New(t testing.TB, width, height int) *offscreen.Context {
	t.Helper()

	ctx, err := offscreen.New(offscreen.Config{Width: width, Height: height})
	if err != nil {
		t.Fatalf("failed to create %dx%d offscreen context: %v", width, height, err)
	}
	t.Cleanup(func() {
		if err := ctx.Close(); err != nil {
			t.Errorf("failed to close offscreen context: %v", err)
		}
	})
	return ctx
}
