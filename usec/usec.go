// Package usec implements time helpers with microsecond precision.
//
// All values are plain uint64 microseconds, which store a bit over
// 584,000 years.
package usec

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// FromNsec converts nanoseconds to microseconds, truncating.
func FromNsec(nsec uint64) uint64 {
	return nsec / 1000
}

// FromMsec converts milliseconds to microseconds.
func FromMsec(msec uint64) uint64 {
	return msec * 1000
}

// FromSec converts seconds to microseconds.
func FromSec(sec uint64) uint64 {
	return sec * 1000 * 1000
}

// FromTimespec converts ts to microseconds.
func FromTimespec(ts *unix.Timespec) uint64 {
	return FromSec(uint64(ts.Sec)) + FromNsec(uint64(ts.Nsec))
}

// FromTimeval converts tv to microseconds.
func FromTimeval(tv *unix.Timeval) uint64 {
	return FromSec(uint64(tv.Sec)) + uint64(tv.Usec)
}

// FromClock reads the clock identified by clock (unix.CLOCK_MONOTONIC
// and friends) in microseconds. The caller must pass a clock that is
// valid on the machine; a failing read is a caller bug and panics.
func FromClock(clock int32) uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(clock, &ts); err != nil {
		panic(fmt.Errorf("usec: clock_gettime(%d): %w", clock, err))
	}
	return FromTimespec(&ts)
}
