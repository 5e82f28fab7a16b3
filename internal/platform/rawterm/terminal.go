// Package rawterm drives a session directly on a raw-mode terminal: no
// alternate screen and no styling, one byte of input and one full frame
// per tick.
package rawterm

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Control sequences.
const (
	cursorHome = "\x1b[H"
	clearAll   = "\x1b[2J"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	rowSep     = "\r\n"
)

// ErrNotTerminal is returned by Open when the input is not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Terminal is a raw-mode terminal scope. Close restores the previous mode.
type Terminal struct {
	fd     int
	out    io.Writer
	state  *term.State
	reader cancelreader.CancelReader
	bytes  chan byte
	done   chan struct{}
	once   sync.Once
}

// Open switches in to raw mode and starts forwarding its bytes to an input
// buffer holding up to queueSize bytes. Bytes arriving while the buffer is
// full are dropped. Every failure is a *core.TerminalSetupError.
func Open(in *os.File, out io.Writer, queueSize int) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, &core.TerminalSetupError{Op: "open", Err: ErrNotTerminal}
	}
	if queueSize <= 0 {
		queueSize = core.DefaultQueueSize
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, &core.TerminalSetupError{Op: "raw mode", Err: err}
	}

	reader, err := cancelreader.NewReader(in)
	if err != nil {
		//nolint:errcheck // Best-effort restore, the setup error is what matters
		term.Restore(fd, state)
		return nil, &core.TerminalSetupError{Op: "input reader", Err: err}
	}

	t := &Terminal{
		fd:     fd,
		out:    out,
		state:  state,
		reader: reader,
		bytes:  make(chan byte, queueSize),
		done:   make(chan struct{}),
	}

	go t.readLoop()

	if _, err := io.WriteString(out, hideCursor+clearAll); err != nil {
		t.Close()
		return nil, &core.TerminalSetupError{Op: "write", Err: err}
	}
	return t, nil
}

// readLoop forwards input bytes until the reader is canceled.
func (t *Terminal) readLoop() {
	defer close(t.done)

	buf := make([]byte, 64)
	for {
		n, err := t.reader.Read(buf)
		for _, b := range buf[:n] {
			t.enqueue(b)
		}
		if err != nil {
			return
		}
	}
}

// enqueue buffers b, dropping it when the buffer is full.
func (t *Terminal) enqueue(b byte) bool {
	select {
	case t.bytes <- b:
		return true
	default:
		return false
	}
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (width, height int, err error) {
	width, height, err = term.GetSize(t.fd)
	if err != nil {
		return 0, 0, &core.TerminalSetupError{Op: "size", Err: err}
	}
	return width, height, nil
}

// Poll returns the oldest pending input byte without blocking.
func (t *Terminal) Poll() (byte, bool) {
	select {
	case b := <-t.bytes:
		return b, true
	default:
		return 0, false
	}
}

// Draw homes the cursor and writes the whole frame.
func (t *Terminal) Draw(frame *core.Screen) error {
	if _, err := io.WriteString(t.out, cursorHome+frame.Join(rowSep)); err != nil {
		return &core.RenderError{Err: err}
	}
	return nil
}

// Close stops the input reader and restores the terminal. It is safe to
// call more than once.
func (t *Terminal) Close() error {
	var err error
	t.once.Do(func() {
		if t.reader != nil {
			t.reader.Cancel()
			<-t.done
			t.reader.Close()
		}
		//nolint:errcheck // Nothing useful to do if the terminal is gone
		io.WriteString(t.out, showCursor+clearAll+cursorHome)
		if t.state != nil {
			err = term.Restore(t.fd, t.state)
		}
	})
	return err
}
