// SPDX-License-Identifier: MPL-2.0

package testutil

import "time"

// Counter records invocations of benchmark operations built from it.
type Counter struct {
	Calls int
}

// Op returns an operation that increments the counter.
func (c *Counter) Op() func() error {
	return func() error {
		c.Calls++
		return nil
	}
}

// TimedOp returns an operation that increments the counter and advances clock by step.
func (c *Counter) TimedOp(clock *FakeClock, step time.Duration) func() error {
	return func() error {
		c.Calls++
		clock.Advance(step)
		return nil
	}
}

// FailingOp returns an operation that increments the counter and returns err on
// the failAt-th call (1-based) and on every call after it.
func (c *Counter) FailingOp(failAt int, err error) func() error {
	return func() error {
		c.Calls++
		if c.Calls >= failAt {
			return err
		}
		return nil
	}
}
