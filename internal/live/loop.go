package live

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	clearScreen = "\033[2J\033[H"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// QuitKeys stop the lite loop. Ctrl+C arrives as a byte in raw mode.
var QuitKeys = []byte{'q', 0x03}

// Signal is a one-shot stop flag shared by the listener and the loop.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

func (s *Signal) Fire() { s.once.Do(func() { close(s.ch) }) }

func (s *Signal) Done() <-chan struct{} { return s.ch }

func (s *Signal) Fired() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Listen blocks reading r one byte at a time and fires sig on the first quit
// key. It returns on read error without firing.
func Listen(r io.Reader, sig *Signal, keys ...byte) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 && isKey(buf[0], keys) {
			sig.Fire()
			return
		}
		if err != nil {
			log.Debug("key listener stopped", "err", err)
			return
		}
	}
}

func isKey(b byte, keys []byte) bool {
	for _, k := range keys {
		if b == k {
			return true
		}
	}
	return false
}

// Loop redraws frames in place with plain ANSI sequences.
type Loop struct {
	Frame    FrameFunc
	Out      io.Writer
	Interval time.Duration
	Step     float64
}

// Run draws until sig fires or ctx is done. Each tick sleeps a fixed
// Interval; the loop never blocks on input.
func (l *Loop) Run(ctx context.Context, sig *Signal) error {
	interval := l.Interval
	if interval <= 0 {
		interval = TickInterval
	}
	step := l.Step
	if step == 0 {
		step = TimeStep
	}

	fmt.Fprint(l.Out, hideCursor+clearScreen)
	defer fmt.Fprint(l.Out, showCursor+clearScreen)

	timer := time.NewTimer(interval)
	defer timer.Stop()

	t := 0.0
	for {
		select {
		case <-sig.Done():
			return nil
		case <-ctx.Done():
			return nil
		default:
		}

		t += step
		// Raw mode disables output post-processing, so lines need \r.
		frame := strings.ReplaceAll(l.Frame(t), "\n", "\r\n")
		if _, err := fmt.Fprint(l.Out, cursorHome+frame); err != nil {
			return err
		}

		timer.Reset(interval)
		select {
		case <-sig.Done():
			return nil
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}

// RunLite animates frame with a listener goroutine on in, holding term in
// raw mode for the duration.
func RunLite(ctx context.Context, term Terminal, in io.Reader, out io.Writer, frame FrameFunc) error {
	sig := NewSignal()
	err := RawMode(term, func() error {
		go Listen(in, sig, QuitKeys...)
		loop := &Loop{Frame: frame, Out: out}
		return loop.Run(ctx, sig)
	})
	fmt.Fprintln(out, LiteExitMessage)
	return err
}
