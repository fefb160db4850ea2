//go:build avr

package portlib

import (
	"device/avr"
	"runtime/volatile"
)

// AVRPort is one of the 8-bit I/O ports of an AVR: a DDRx direction register
// and a PORTx output register.
type AVRPort struct {
	ddr  *volatile.Register8
	port *volatile.Register8
}

// NewAVRPort returns a port backed by the given DDRx and PORTx registers.
func NewAVRPort(ddr, port *volatile.Register8) *AVRPort {
	return &AVRPort{ddr: ddr, port: port}
}

// PortB returns PORTB, present on every AVR supported by TinyGo.
func PortB() *AVRPort { return NewAVRPort(avr.DDRB, avr.PORTB) }

// SetDirection writes mask to DDRx.
func (p *AVRPort) SetDirection(mask uint8) { p.ddr.Set(mask) }

// Write writes v to PORTx.
func (p *AVRPort) Write(v uint8) { p.port.Set(v) }
