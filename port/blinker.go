package port

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Sequence yields the port values 0, 1, ..., 255 and wraps back to 0.
// The zero value starts at 0.
type Sequence struct {
	next uint8
}

// Next returns the next value of the sequence.
func (s *Sequence) Next() uint8 {
	v := s.next
	s.next++
	return v
}

// Blinker counts a Device through every 8-bit value, holding each one for
// the configured Timing.
type Blinker struct {
	dev    Device
	delay  Delayer
	cfg    Config
	log    *slog.Logger
	cycles atomic.Uint64
}

// NewBlinker returns a Blinker driving dev. A nil Delayer defaults to Spinner.
func NewBlinker(dev Device, d Delayer, cfg Config) (*Blinker, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	if err := cfg.Timing.Validate(); err != nil {
		return nil, err
	}
	if d == nil {
		d = Spinner{}
	}
	return &Blinker{
		dev:   dev,
		delay: d,
		cfg:   cfg,
		log:   cfg.logger(),
	}, nil
}

// Cycles returns the number of full 256-value cycles completed. Safe to call
// while Run is executing.
func (b *Blinker) Cycles() uint64 { return b.cycles.Load() }

// Run configures the port and counts through its values until ctx is done.
// Cancellation is observed between wait units, so Run returns at most one
// Timing.Unit after ctx is done. Run never returns if ctx is never done.
func (b *Blinker) Run(ctx context.Context) {
	b.dev.SetDirection(b.cfg.Direction)
	b.dev.Write(b.cfg.Initial)
	t := b.cfg.Timing
	b.log.Info("port configured",
		slog.Int("direction", int(b.cfg.Direction)),
		slog.Int("initial", int(b.cfg.Initial)),
		slog.Duration("hold", t.Hold()),
		slog.Duration("period", t.Period()),
	)

	unit := t.Unit()
	var seq Sequence
	for {
		v := seq.Next()
		b.dev.Write(v)
		for counter := uint8(0); counter != t.Repeats; counter++ {
			if ctx.Err() != nil {
				b.log.Debug("blinker stopped", slog.Int("value", int(v)), slog.Uint64("cycles", b.Cycles()))
				return
			}
			b.delay.Delay(unit)
		}
		if v == 0xff {
			n := b.cycles.Add(1)
			b.log.Debug("cycle complete", slog.Uint64("cycles", n))
		}
	}
}
