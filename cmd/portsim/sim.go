package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/tinygo-org/portblink/port"
	"github.com/tinygo-org/portblink/port/portlib"
)

type simOptions struct {
	clock      uint32
	waitCycles uint64
	repeats    uint8
	cycles     uint64
	sleep      bool
	verbose    bool
}

func (o simOptions) config(logger *slog.Logger) port.Config {
	cfg := port.DefaultConfig()
	cfg.Timing = port.Timing{
		Clock:      port.Clock(o.clock),
		WaitCycles: port.Cycles(o.waitCycles),
		Repeats:    o.repeats,
	}
	cfg.Logger = logger
	return cfg
}

// cycleLimit forwards writes to a port and cancels the run once the blinker
// has completed a number of cycles.
type cycleLimit struct {
	port.Device
	blinker *port.Blinker
	limit   uint64
	cancel  context.CancelFunc
}

func (c *cycleLimit) Write(v uint8) {
	c.Device.Write(v)
	if c.blinker != nil && c.blinker.Cycles() >= c.limit {
		c.cancel()
	}
}

func simulate(ctx context.Context, opts simOptions, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var delay port.Delayer = port.Spinner{}
	if opts.sleep {
		delay = port.Sleeper{}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	bar := portlib.NewLEDBar(stdout)
	var dev port.Device = bar
	var limit *cycleLimit
	if opts.cycles > 0 {
		limit = &cycleLimit{Device: bar, limit: opts.cycles, cancel: cancel}
		dev = limit
	}

	b, err := port.NewBlinker(dev, delay, opts.config(logger))
	if err != nil {
		return err
	}
	if limit != nil {
		limit.blinker = b
	}
	b.Run(ctx)
	logger.Info("simulation stopped", slog.Uint64("cycles", b.Cycles()))
	return bar.Err()
}
