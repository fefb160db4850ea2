//go:build avr

// Command avrblink counts PORTB of an AVR through every 8-bit value, holding
// each one for 75ms.
package main

import (
	"context"

	"github.com/tinygo-org/portblink/port"
	"github.com/tinygo-org/portblink/port/portlib"
)

func main() {
	b, err := port.NewBlinker(portlib.PortB(), port.Spinner{}, port.DefaultConfig())
	if err != nil {
		panic(err.Error())
	}
	b.Run(context.Background())
}
