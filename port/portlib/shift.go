package portlib

// shiftOutputs is the byte latched onto a 74HC595 for value v: pins whose
// direction bit is clear are held low.
func shiftOutputs(v, dir uint8) uint32 { return uint32(v & dir) }
