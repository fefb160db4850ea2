//go:build tinygo

package portlib

import (
	"machine"

	"tinygo.org/x/drivers/shiftregister"
)

// ShiftPort is an 8-bit port on a 74HC595 serial-in parallel-out shift
// register. The chip has no per-pin direction, so pins configured as inputs
// are held low.
type ShiftPort struct {
	dev *shiftregister.Device
	dir uint8
}

// NewShiftPort configures latch, clock and data pins and returns the port.
func NewShiftPort(latch, clock, data machine.Pin) *ShiftPort {
	dev := shiftregister.New(shiftregister.EIGHT_BITS, latch, clock, data)
	dev.Configure()
	return &ShiftPort{dev: dev}
}

// SetDirection records which outputs may be driven high.
func (s *ShiftPort) SetDirection(mask uint8) { s.dir = mask }

// Write shifts v out and latches it onto the outputs.
func (s *ShiftPort) Write(v uint8) {
	s.dev.WriteMask(shiftOutputs(v, s.dir))
}
