package portlib

import "io"

// LED glyphs used by LEDBar.
const (
	LEDOn    = '#'
	LEDOff   = '.'
	LEDInput = '-'
)

const hexDigits = "0123456789abcdef"

// LEDBar renders a port as a row of 8 LEDs, most significant bit first,
// followed by the port value in hex. One line is written per port write.
type LEDBar struct {
	w   io.Writer
	dir uint8
	err error
	buf [12]byte
}

// NewLEDBar returns an LEDBar writing to w. All pins start as inputs.
func NewLEDBar(w io.Writer) *LEDBar {
	return &LEDBar{w: w}
}

// SetDirection sets which pins are drawn as outputs.
func (l *LEDBar) SetDirection(mask uint8) { l.dir = mask }

// Write renders v. Writer errors are not returned; the first one is kept and
// later writes are dropped.
func (l *LEDBar) Write(v uint8) {
	if l.err != nil {
		return
	}
	line := l.render(v)
	_, l.err = l.w.Write(line)
}

// Err returns the first error returned by the underlying writer.
func (l *LEDBar) Err() error { return l.err }

func (l *LEDBar) render(v uint8) []byte {
	for i := 0; i < 8; i++ {
		bit := uint8(0x80) >> i
		switch {
		case l.dir&bit == 0:
			l.buf[i] = LEDInput
		case v&bit != 0:
			l.buf[i] = LEDOn
		default:
			l.buf[i] = LEDOff
		}
	}
	l.buf[8] = ' '
	l.buf[9] = hexDigits[v>>4]
	l.buf[10] = hexDigits[v&0xf]
	l.buf[11] = '\n'
	return l.buf[:]
}
