// SPDX-License-Identifier: MPL-2.0

package benchmark

import "time"

type (
	// Clock is the time source used to measure benchmarks.
	// testutil.FakeClock satisfies it for deterministic tests.
	Clock interface {
		Now() time.Time
		Since(t time.Time) time.Duration
	}

	monotonicClock struct{}
)

// Now returns the current time, including its monotonic reading.
func (monotonicClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t using the monotonic reading.
func (monotonicClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
