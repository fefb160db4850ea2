package port

import "time"

// Delayer blocks the calling goroutine for a duration.
type Delayer interface {
	Delay(d time.Duration)
}

// Spinner is a busy-wait Delayer. It polls the clock in a tight loop and
// never yields the processor.
type Spinner struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Delay spins until d has elapsed.
func (s Spinner) Delay(d time.Duration) {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	start := now()
	for now().Sub(start) < d {
	}
}

// Sleeper is a Delayer backed by time.Sleep. Useful on a hosted OS where
// spinning would pin a core.
type Sleeper struct{}

// Delay sleeps for d.
func (Sleeper) Delay(d time.Duration) { time.Sleep(d) }
