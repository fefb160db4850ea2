// Package port drives an 8-bit output port through a counting pattern.
//
// The port itself is abstracted behind Device so the same loop runs on an AVR
// PORTx register, a PIO state machine, a shift register or a host fake.
// Timing is expressed in CPU cycles against a Clock and turned into
// durations handed to a Delayer.
package port

import (
	"errors"
	"io"
	"log/slog"
)

// Device is an 8-bit parallel output port.
//
// Implementations must not fail: a backend that needs to wait for the
// hardware (a full FIFO, a slow bus) blocks until the value is accepted.
type Device interface {
	// SetDirection configures each pin of the port. A set bit makes the
	// corresponding pin an output.
	SetDirection(mask uint8)
	// Write drives value onto the port's output pins.
	Write(value uint8)
}

// Port errors.
var (
	ErrNilDevice   = errors.New("port: nil device")
	ErrZeroClock   = errors.New("port: zero clock frequency")
	ErrZeroWait    = errors.New("port: zero wait cycles")
	ErrZeroRepeats = errors.New("port: zero delay repeats")

	ErrTimingOverflow = errors.New("port: hold period overflows")
)

// Config is the blinker configuration.
type Config struct {
	Timing Timing
	// Direction is written once to the port before anything else.
	Direction uint8
	// Initial is the value the port holds right after configuration.
	Initial uint8
	// Logger receives configuration and cycle events. May be nil.
	Logger *slog.Logger
}

// DefaultConfig returns the atmega1284p board configuration: every pin an
// output, port cleared, and DefaultTiming.
func DefaultConfig() Config {
	return Config{
		Timing:    DefaultTiming(),
		Direction: 0xff,
		Initial:   0x00,
	}
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(127), // Discard everything.
	}))
}
