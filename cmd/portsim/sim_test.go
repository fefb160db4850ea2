package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tinygo-org/portblink/port"
)

func fastOptions() simOptions {
	return simOptions{clock: 1_000_000, waitCycles: 5, repeats: 2, cycles: 1}
}

func TestSimulateOneCycle(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := simulate(context.Background(), fastOptions(), &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	// Initial clear, 256 values, and the wrap to 0 that ends the run.
	if len(lines) != 258 {
		t.Fatalf("got %d lines", len(lines))
	}
	for i, want := range map[int]string{
		0:   "........ 00",
		1:   "........ 00",
		2:   ".......# 01",
		256: "######## ff",
		257: "........ 00",
	} {
		if lines[i] != want {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want)
		}
	}
	if !strings.Contains(stderr.String(), "simulation stopped") || !strings.Contains(stderr.String(), "cycles=1") {
		t.Errorf("unexpected log:\n%s", stderr.String())
	}
}

func TestSimulateSleepVerbose(t *testing.T) {
	opts := fastOptions()
	opts.sleep = true
	opts.verbose = true
	opts.repeats = 1
	var stdout, stderr bytes.Buffer
	if err := simulate(context.Background(), opts, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "cycle complete") {
		t.Errorf("verbose log missing cycle event:\n%s", stderr.String())
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := fastOptions()
	opts.cycles = 0
	var stdout, stderr bytes.Buffer
	if err := simulate(ctx, opts, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(stdout.String(), "\n"); got != 2 {
		t.Errorf("got %d lines on a cancelled run", got)
	}
}

func TestSimulateInvalidTiming(t *testing.T) {
	for _, tc := range []struct {
		mod  func(*simOptions)
		want error
	}{
		{mod: func(o *simOptions) { o.clock = 0 }, want: port.ErrZeroClock},
		{mod: func(o *simOptions) { o.waitCycles = 0 }, want: port.ErrZeroWait},
		{mod: func(o *simOptions) { o.repeats = 0 }, want: port.ErrZeroRepeats},
		{mod: func(o *simOptions) { o.clock = 1; o.waitCycles = 1 << 62 }, want: port.ErrTimingOverflow},
	} {
		opts := fastOptions()
		tc.mod(&opts)
		var stdout, stderr bytes.Buffer
		if err := simulate(context.Background(), opts, &stdout, &stderr); !errors.Is(err, tc.want) {
			t.Errorf("got %v, want %v", err, tc.want)
		}
		if stdout.Len() != 0 {
			t.Errorf("output written for invalid timing: %q", stdout.String())
		}
	}
}

func TestRootCommandFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"--clock", "1000000", "--wait-cycles", "5", "--repeats", "1", "-n", "1"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(stdout.String(), "\n"); got != 258 {
		t.Errorf("got %d lines", got)
	}

	rootCmd.SetArgs([]string{"--repeats", "0"})
	if err := rootCmd.ExecuteContext(context.Background()); !errors.Is(err, port.ErrZeroRepeats) {
		t.Errorf("zero repeats: got %v", err)
	}
}
