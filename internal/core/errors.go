package core

import (
	"errors"
	"fmt"
)

// Process exit codes, one per error category.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitLevelLoad     = 2
	ExitTerminalSetup = 3
	ExitRender        = 4
)

// LevelLoadError reports a level that could not be read or is malformed.
type LevelLoadError struct {
	Path string
	Err  error
}

func (e *LevelLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load level: %v", e.Err)
	}
	return fmt.Sprintf("load level %s: %v", e.Path, e.Err)
}

func (e *LevelLoadError) Unwrap() error { return e.Err }

// RenderError reports a failed write to the display sink.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render frame: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// TerminalSetupError reports a terminal that could not be sized, switched
// to raw mode, or driven by the UI runtime.
type TerminalSetupError struct {
	Op  string
	Err error
}

func (e *TerminalSetupError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalSetupError) Unwrap() error { return e.Err }

// ExitCode maps an error to the process exit code of its category.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var levelErr *LevelLoadError
	var termErr *TerminalSetupError
	var renderErr *RenderError

	switch {
	case errors.As(err, &levelErr):
		return ExitLevelLoad
	case errors.As(err, &termErr):
		return ExitTerminalSetup
	case errors.As(err, &renderErr):
		return ExitRender
	default:
		return ExitFailure
	}
}
