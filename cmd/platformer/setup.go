package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

// maxFPS is the highest --fps that still leaves a whole millisecond per tick.
const maxFPS = 1000

// loadConfig reads the config, applies the preset and the --fps override.
func loadConfig() (config.Config, error) {
	if flagFPS < 0 || flagFPS > maxFPS {
		return config.Config{}, fmt.Errorf("%w: --fps must be between 1 and %d, got %d",
			config.ErrInvalidConfig, maxFPS, flagFPS)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Loop.TickMS = 1000 / flagFPS
	}
	return cfg, cfg.Validate()
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so without --log-file they discard logs; serve logs to stderr.
// The returned function closes the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})
	return logger, closeFn, nil
}

// settings loads config and logger together.
func settings(interactive bool) (tui.Settings, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return tui.Settings{}, nil, err
	}
	logger, closeFn, err := newLogger(interactive)
	if err != nil {
		return tui.Settings{}, nil, err
	}
	logger.Debug("config loaded", "tick_ms", cfg.Loop.TickMS, "preset", flagPreset)
	return tui.Settings{Config: cfg, Logger: logger}, closeFn, nil
}

// terminalSize returns the stdout size, or 80x24 when it is unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
