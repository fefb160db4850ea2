package portlib

import "errors"

// The PIO port runs a single instruction, `out pins, 8`, with autopull every
// 8 bits. Each word pushed into the TX FIFO lands on the pins as soon as the
// state machine pulls it, and the pins hold it until the next one.

// ErrPinRange is returned when the 8 port pins do not all fit on the GPIOs a
// PIO block can drive.
var ErrPinRange = errors.New("portlib: PIO port pins out of range")

const (
	portWidth = 8
	// Number of GPIOs a PIO block can address without a GPIO base offset.
	pioPinCount = 30
)

func checkPortPins(base uint8) error {
	if uint32(base)+portWidth > pioPinCount {
		return ErrPinRange
	}
	return nil
}

// portPinMasks maps a port direction byte onto the GPIO masks taken by
// StateMachine.SetPindirsMasked for a port starting at GPIO base.
func portPinMasks(base, dir uint8) (dirMask, pinMask uint32) {
	return uint32(dir) << base, (1<<portWidth - 1) << base
}
