package rawterm

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Input yields raw input bytes without blocking.
type Input interface {
	Poll() (byte, bool)
}

// Display shows a complete frame.
type Display interface {
	Draw(frame *core.Screen) error
}

// Session is the simulation driven by the loop.
type Session interface {
	Step(in core.InputFrame) core.StepResult
	Frame() *core.Screen
}

// Run drives s at a fixed interval until a quit action, a draw failure or
// ctx cancellation. Each tick consumes at most one input byte, steps the
// session and draws the frame.
func Run(ctx context.Context, s Session, in Input, out Display, interval time.Duration, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if interval <= 0 {
		interval = core.DefaultConfig().TickInterval()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for ticks := 0; ; ticks++ {
		act := core.ActionNone
		if b, ok := in.Poll(); ok {
			act = core.ActionForByte(b)
		}

		res := s.Step(core.FrameOf(act))
		if res.Quit {
			logger.Info("quit requested", "ticks", ticks)
			return nil
		}

		if err := out.Draw(s.Frame()); err != nil {
			logger.Error("draw failed", "error", err)
			return err
		}

		select {
		case <-ctx.Done():
			logger.Info("loop canceled", "ticks", ticks)
			return nil
		case <-ticker.C:
		}
	}
}

// Play opens the terminal, sizes the session to it and runs the loop.
// The terminal is restored on every exit path, including a panic in the
// session, which is re-raised after the restore.
func Play(ctx context.Context, s Session, resize func(w, h int), queueSize int, interval time.Duration, logger *log.Logger) (err error) {
	t, err := Open(os.Stdin, os.Stdout, queueSize)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			t.Close()
			panic(r)
		}
		if cerr := t.Close(); cerr != nil && err == nil {
			err = &core.TerminalSetupError{Op: "restore", Err: cerr}
		}
	}()

	w, h, err := t.Size()
	if err != nil {
		return err
	}
	if resize != nil {
		resize(w, h)
	}

	return Run(ctx, s, t, t, interval, logger)
}
