package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/rawterm"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var flagRaw bool

var playCmd = &cobra.Command{
	Use:   "play [level|file]",
	Short: "Play a level",
	Long: `Start playing a built-in level (by ID) or a level file.

Controls:
  W/Up/Space  - Jump (only from the ground)
  A/Left      - Walk left (press again to stop)
  D/Right     - Walk right (press again to stop)
  P           - Pause
  R           - Restart
  Esc/B       - Leave
  Q/Ctrl+C    - Quit

With --raw only W, A, D and Q are read, one key per tick.

Level files:
  .lvl/.txt   - Text grid: '#' solid, '@' spawn (exactly one)
  .yaml/.yml  - id, name, description, metadata and the grid

Examples:
  platformer play
  platformer play shaft
  platformer play ./levels/1.lvl --raw
  platformer play gaps --preset snappy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRaw, "raw", false, "Use the raw terminal loop instead of the Bubble Tea UI")
}

func runPlay(_ *cobra.Command, args []string) error {
	name := levels.DefaultID
	if len(args) == 1 {
		name = args[0]
	}

	lvl, err := resolveLevel(name)
	if err != nil {
		return err
	}

	s, closeLog, err := settings(true)
	if err != nil {
		return err
	}
	defer closeLog()

	s.Logger.Info("level loaded", "id", lvl.ID, "file", lvl.FilePath, "raw", flagRaw)

	if flagRaw {
		return playRaw(lvl, s)
	}

	width, height := terminalSize()
	return tui.Run(lvl, s, width, height)
}

// resolveLevel picks a registered level by ID, or loads a file.
func resolveLevel(name string) (*level.Level, error) {
	if registry.Exists(name) {
		lvl, err := registry.Create(name)
		if err != nil {
			return nil, &core.LevelLoadError{Path: name, Err: err}
		}
		return lvl, nil
	}

	if _, err := os.Stat(name); err != nil {
		return nil, &core.LevelLoadError{
			Path: name,
			Err:  fmt.Errorf("not a built-in level or readable file (run 'platformer levels'): %w", err),
		}
	}
	return level.LoadFile(name)
}

func playRaw(lvl *level.Level, s tui.Settings) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := s.Config
	g := game.New(lvl, cfg, s.Logger)
	resize := func(w, h int) {
		g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: cfg.TickRate()})
	}

	err := rawterm.Play(ctx, g, resize, cfg.Loop.QueueSize, cfg.TickInterval(), s.Logger)
	st := g.State()
	s.Logger.Info("session ended", "ticks", st.Ticks, "falls", st.Falls, "pos", g.Body().Pos)
	return err
}
