// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"testing"
	"time"
)

func TestFakeClock_DefaultTime(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(time.Time{})
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := clock.Now(); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
}

func TestFakeClock_AdvanceAndSince(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(time.Time{})
	start := clock.Now()
	clock.Advance(3 * time.Millisecond)
	clock.Advance(2 * time.Millisecond)

	if got := clock.Since(start); got != 5*time.Millisecond {
		t.Errorf("Since() = %v, want 5ms", got)
	}
}

func TestFakeClock_Set(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(time.Time{})
	target := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	clock.Set(target)

	if got := clock.Now(); !got.Equal(target) {
		t.Errorf("Now() = %v, want %v", got, target)
	}
}

func TestCounter_FailingOp(t *testing.T) {
	t.Parallel()

	var c Counter
	op := c.FailingOp(2, errSentinel)
	if err := op(); err != nil {
		t.Fatalf("first call: unexpected error %v", err)
	}
	if err := op(); err != errSentinel {
		t.Fatalf("second call: got %v, want %v", err, errSentinel)
	}
	if c.Calls != 2 {
		t.Errorf("Calls = %d, want 2", c.Calls)
	}
}
