package portlib

import (
	"bytes"
	"errors"
	"testing"
)

func TestLEDBarRender(t *testing.T) {
	for _, tc := range []struct {
		dir, v uint8
		want   string
	}{
		{dir: 0xff, v: 0xa5, want: "#.#..#.# a5\n"},
		{dir: 0xf0, v: 0xa5, want: "#.#.---- a5\n"},
		{dir: 0xff, v: 0x00, want: "........ 00\n"},
		{dir: 0xff, v: 0xff, want: "######## ff\n"},
		{dir: 0x00, v: 0xff, want: "-------- ff\n"},
	} {
		var buf bytes.Buffer
		bar := NewLEDBar(&buf)
		bar.SetDirection(tc.dir)
		bar.Write(tc.v)
		if got := buf.String(); got != tc.want {
			t.Errorf("dir %#02x value %#02x: got %q, want %q", tc.dir, tc.v, got, tc.want)
		}
	}
}

func TestLEDBarOneLinePerWrite(t *testing.T) {
	var buf bytes.Buffer
	bar := NewLEDBar(&buf)
	bar.SetDirection(0xff)
	bar.Write(1)
	bar.Write(2)
	if got := buf.String(); got != ".......# 01\n......#. 02\n" {
		t.Errorf("got %q", got)
	}
	if bar.Err() != nil {
		t.Error(bar.Err())
	}
}

type failWriter struct{ n int }

var errWriterClosed = errors.New("closed")

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errWriterClosed
}

func TestLEDBarKeepsFirstError(t *testing.T) {
	w := &failWriter{}
	bar := NewLEDBar(w)
	bar.Write(1)
	bar.Write(2)
	if bar.Err() != errWriterClosed {
		t.Errorf("got %v", bar.Err())
	}
	if w.n != 1 {
		t.Errorf("writer called %d times after failing", w.n)
	}
}
