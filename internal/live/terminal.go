package live

import (
	"fmt"

	"golang.org/x/term"
)

// Terminal is a terminal whose input mode can be switched to raw and back.
type Terminal interface {
	MakeRaw() error
	Restore() error
}

// RawMode runs fn with t in raw mode. The original mode is restored on every
// exit path, including a panic inside fn.
func RawMode(t Terminal, fn func() error) (err error) {
	if err := t.MakeRaw(); err != nil {
		return fmt.Errorf("live: enter raw mode: %w", err)
	}
	defer func() {
		if rerr := t.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("live: restore terminal: %w", rerr)
		}
	}()
	return fn()
}

// FDTerminal switches a file descriptor with golang.org/x/term.
type FDTerminal struct {
	fd    int
	state *term.State
}

func NewFDTerminal(fd int) *FDTerminal {
	return &FDTerminal{fd: fd}
}

func (t *FDTerminal) IsTerminal() bool { return term.IsTerminal(t.fd) }

func (t *FDTerminal) MakeRaw() error {
	st, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.state = st
	return nil
}

func (t *FDTerminal) Restore() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(t.fd, t.state)
	t.state = nil
	return err
}
