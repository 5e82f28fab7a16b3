// platformer is a terminal platformer: one body, gravity, a tile world and
// a scrolling viewport.
//
// Usage:
//
//	platformer play [level|file]  - Play a level (default: the first built-in level)
//	platformer play --raw         - Play on the raw terminal without the Bubble Tea UI
//	platformer levels             - List built-in levels
//	platformer check <file>       - Validate a level file
//	platformer menu               - Pick a level interactively
//	platformer serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate (default: from config, 50)
//	--config <path>      - Config file (default: search path, then built-in)
//	--preset <name>      - Physics feel: classic, floaty, snappy
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/core"

	// Import the catalog to register built-in levels
	_ "github.com/vovakirdan/tui-platformer/internal/levels"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagPreset   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(core.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A tiny real-time platformer for your terminal",
	Long: `platformer moves a single body through a tile world under gravity,
with a viewport that scrolls to follow it.

Available commands:
  play     - Play a built-in level or a level file
  levels   - Show all built-in levels
  check    - Validate a level file
  menu     - Interactive level picker
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play shaft
  platformer play ./my.lvl --raw
  platformer play gaps --preset floaty
  platformer serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Physics preset: classic, floaty, snappy")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}
