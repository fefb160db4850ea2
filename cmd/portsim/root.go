package main

import (
	"github.com/spf13/cobra"

	"github.com/tinygo-org/portblink/port"
)

var (
	simOpts simOptions

	rootCmd = &cobra.Command{
		Use:   "portsim",
		Short: "Simulate the 8-bit counting blinker",
		Long: "Drive a simulated 8-bit output port through 0..255 and draw every value as a row of LEDs. " +
			"Timing is given in CPU cycles at --clock, exactly like on the board.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulate(cmd.Context(), simOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
)

func init() {
	d := port.DefaultTiming()
	flags := rootCmd.Flags()
	flags.Uint32Var(&simOpts.clock, "clock", uint32(d.Clock), "simulated CPU clock in Hz")
	flags.Uint64Var(&simOpts.waitCycles, "wait-cycles", uint64(d.WaitCycles), "cycles per wait unit")
	flags.Uint8Var(&simOpts.repeats, "repeats", d.Repeats, "wait units per value")
	flags.Uint64VarP(&simOpts.cycles, "cycles", "n", 0, "stop after this many full 0..255 cycles, 0 runs forever")
	flags.BoolVar(&simOpts.sleep, "sleep", false, "sleep between values instead of spinning")
	flags.BoolVarP(&simOpts.verbose, "verbose", "v", false, "log every completed cycle")
}
