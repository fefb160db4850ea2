package portlib

import "sync"

// Recorder is an in-memory port. It keeps the state of the direction and
// data registers and a log of every value written. It is safe to inspect
// from another goroutine while a blinker drives it.
type Recorder struct {
	mu        sync.Mutex
	dir       uint8
	data      uint8
	dirWrites int
	writes    []uint8
}

// SetDirection sets the direction register.
func (r *Recorder) SetDirection(mask uint8) {
	r.mu.Lock()
	r.dir = mask
	r.dirWrites++
	r.mu.Unlock()
}

// Write sets the data register and appends v to the write log.
func (r *Recorder) Write(v uint8) {
	r.mu.Lock()
	r.data = v
	r.writes = append(r.writes, v)
	r.mu.Unlock()
}

// Direction returns the direction register.
func (r *Recorder) Direction() uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dir
}

// Data returns the data register.
func (r *Recorder) Data() uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data
}

// DirectionWrites returns how many times SetDirection was called.
func (r *Recorder) DirectionWrites() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dirWrites
}

// Writes returns a copy of the write log.
func (r *Recorder) Writes() []uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint8(nil), r.writes...)
}
