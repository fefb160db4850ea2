//go:build rp2040 || rp2350

package main

import (
	"context"
	"machine"

	"github.com/tinygo-org/portblink/port"
	"github.com/tinygo-org/portblink/port/portlib"
)

// 74HC595 wiring.
const (
	latchPin = machine.GPIO17 // RCLK
	clockPin = machine.GPIO18 // SRCLK
	dataPin  = machine.GPIO16 // SER
)

func main() {
	dev := portlib.NewShiftPort(latchPin, clockPin, dataPin)
	cfg := port.DefaultConfig()
	cfg.Timing.Clock = port.Clock(machine.CPUFrequency())
	// Same 1.5ms unit and 75ms hold, counted in core clock cycles.
	cfg.Timing.WaitCycles = port.Cycles(cfg.Timing.Clock) * 3 / 2000
	b, err := port.NewBlinker(dev, nil, cfg)
	if err != nil {
		panic(err.Error())
	}
	b.Run(context.Background())
}
