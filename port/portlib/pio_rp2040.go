//go:build rp2040

package portlib

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
)

var portProgram = []uint16{
	//     .wrap_target
	pio.AssemblerV0{}.Out(pio.OutDestPins, portWidth).Encode(), //  0: out    pins, 8
	//     .wrap
}

// Relocatable.
const portOrigin = -1

// PIOPort drives 8 consecutive GPIOs from one PIO state machine. The
// direction and data of the pins are both owned by the state machine.
type PIOPort struct {
	sm   pio.StateMachine
	base machine.Pin
}

func portConfig(offset uint8, base machine.Pin) pio.StateMachineConfig {
	cfg := pio.DefaultStateMachineConfig()
	cfg.SetWrap(offset, offset+uint8(len(portProgram))-1)
	cfg.SetOutPins(base, portWidth)
	// Only the TX FIFO is used.
	cfg.SetFIFOJoin(pio.FifoJoinTx)
	cfg.SetOutShift(true, true, portWidth)
	return cfg
}

// NewPIOPort loads the port program into sm's PIO block and routes the 8
// GPIOs starting at base to sm. The pins start as inputs until SetDirection
// is called.
func NewPIOPort(sm pio.StateMachine, base machine.Pin) (*PIOPort, error) {
	sm.TryClaim() // SM should be claimed beforehand, we just guarantee it's claimed.
	if err := checkPortPins(uint8(base)); err != nil {
		return nil, err
	}
	Pio := sm.PIO()
	offset, err := Pio.AddProgram(portProgram, portOrigin)
	if err != nil {
		return nil, err
	}
	for pin := base; pin < base+portWidth; pin++ {
		pin.Configure(machine.PinConfig{Mode: Pio.PinMode()})
	}
	sm.SetPindirsConsecutive(base, portWidth, false)
	sm.Init(offset, portConfig(offset, base))
	sm.SetEnabled(true)
	return &PIOPort{sm: sm, base: base}, nil
}

// SetDirection sets the pin directions from the state machine so they stay
// in sync with the data pins. Pending writes are discarded.
func (p *PIOPort) SetDirection(mask uint8) {
	p.sm.SetEnabled(false)
	p.sm.ClearFIFOs()
	p.sm.SetPindirsMasked(portPinMasks(uint8(p.base), mask))
	p.sm.SetEnabled(true)
}

// Write waits for room in the TX FIFO and queues v for the pins.
func (p *PIOPort) Write(v uint8) {
	for p.sm.IsTxFIFOFull() {
	}
	p.sm.TxPut(uint32(v))
}
