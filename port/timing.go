package port

import (
	"math"
	"time"
)

// Cycles is a count of elementary CPU clock cycles.
type Cycles uint64

// Clock is a CPU clock frequency in Hz.
type Clock uint32

// Common clock frequencies.
const (
	ClockAVR20MHz Clock = 20_000_000
	ClockRP2040   Clock = 125_000_000
)

// Duration returns the wall-clock time n cycles take at frequency c.
// It panics if c is zero.
func (c Clock) Duration(n Cycles) time.Duration {
	hz := uint64(c)
	whole := uint64(n) / hz
	rem := uint64(n) % hz
	return time.Duration(whole)*time.Second + time.Duration(rem*uint64(time.Second)/hz)
}

// Cycles returns the number of whole cycles that fit in d at frequency c.
func (c Clock) Cycles(d time.Duration) Cycles {
	if d <= 0 {
		return 0
	}
	hz := uint64(c)
	whole := uint64(d / time.Second)
	rem := uint64(d % time.Second)
	return Cycles(whole*hz + rem*hz/uint64(time.Second))
}

// Loop2 returns the cost of the AVR 16-bit busy loop run count times.
// Each iteration is a 2-cycle decrement plus a 2-cycle taken branch.
func Loop2(count uint16) Cycles {
	return 4 * Cycles(count)
}

// Timing describes how long each value is held on the port. A hold is
// Repeats back-to-back waits of WaitCycles each.
type Timing struct {
	Clock      Clock
	WaitCycles Cycles
	Repeats    uint8
}

// DefaultTiming holds each value for 50 waits of 30000 cycles on a 20MHz
// clock: 1.5M cycles, 75ms per value and 19.2s per 256-value cycle.
func DefaultTiming() Timing {
	return Timing{
		Clock:      ClockAVR20MHz,
		WaitCycles: 30000,
		Repeats:    50,
	}
}

// Validate returns a non-nil error if the timing cannot produce a hold or
// its period does not fit in a time.Duration.
func (t Timing) Validate() error {
	switch {
	case t.Clock == 0:
		return ErrZeroClock
	case t.WaitCycles == 0:
		return ErrZeroWait
	case t.Repeats == 0:
		return ErrZeroRepeats
	}
	hold := uint64(t.WaitCycles)
	if hold > math.MaxUint64/uint64(t.Repeats) {
		return ErrTimingOverflow
	}
	hold *= uint64(t.Repeats)
	if hold > math.MaxUint64/256 {
		return ErrTimingOverflow
	}
	// Period must fit in a time.Duration.
	if 256*hold/uint64(t.Clock) >= uint64(math.MaxInt64/time.Second) {
		return ErrTimingOverflow
	}
	return nil
}

// Unit is the duration of a single wait.
func (t Timing) Unit() time.Duration { return t.Clock.Duration(t.WaitCycles) }

// HoldCycles is the number of cycles each value is held for.
func (t Timing) HoldCycles() Cycles { return t.WaitCycles * Cycles(t.Repeats) }

// Hold is how long each value is held on the port: Repeats waits of Unit.
// Unit is truncated to whole nanoseconds, so Hold can be slightly shorter
// than HoldCycles at Clock.
func (t Timing) Hold() time.Duration { return time.Duration(t.Repeats) * t.Unit() }

// Period is the duration of a full 0..255 cycle.
func (t Timing) Period() time.Duration { return 256 * t.Hold() }
