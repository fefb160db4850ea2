//go:build rp2040

package main

import (
	"context"
	"log/slog"
	"machine"
	"time"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/portblink/port"
	"github.com/tinygo-org/portblink/port/portlib"
)

func main() {
	// Sleep to catch prints.
	time.Sleep(2 * time.Second)
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		panic(err.Error())
	}
	dev, err := portlib.NewPIOPort(sm, machine.GPIO0)
	if err != nil {
		panic(err.Error())
	}
	cfg := port.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b, err := port.NewBlinker(dev, port.Spinner{}, cfg)
	if err != nil {
		panic(err.Error())
	}
	println("Counting GPIO0..7 every", cfg.Timing.Hold().String())
	b.Run(context.Background())
}
